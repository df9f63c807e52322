package handlers

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"c4inventario/internal/domain/models"
	"c4inventario/internal/server/forms"
	"c4inventario/internal/server/middleware"
	"c4inventario/internal/service/inventory"
	"c4inventario/pkg/clients/backend"
)

// ProductHandler serves the product table and the add/edit/delete flows.
type ProductHandler struct {
	client backend.Client
	logger *zap.Logger
}

// NewProductHandler constructs the product handler.
func NewProductHandler(client backend.Client, logger *zap.Logger) *ProductHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductHandler{client: client, logger: logger}
}

// Table renders the sortable, filterable product table. Search, status
// filter and sort state all travel in the query string, so column-header
// links can express the toggle semantics.
func (h *ProductHandler) Table(c *gin.Context) {
	data := viewData(c, "Products", "products")
	data["Statuses"] = models.ProductStatuses
	data["Message"] = c.Query("message")

	query := inventory.ProductQuery{
		Search: c.Query("q"),
		Status: c.DefaultQuery("status", inventory.FilterAll),
		Sort: inventory.SortState{
			Key:       c.Query("sort"),
			Direction: c.DefaultQuery("dir", inventory.Ascending),
		},
	}
	data["Query"] = query
	data["TotalProducts"] = 0

	products, err := h.client.ListProducts(c.Request.Context(), sessionToken(c))
	if err != nil {
		h.logger.Error("failed loading products", zap.Error(err))
		data["Error"] = apiMessage(err, "Could not load products")
		c.HTML(http.StatusOK, "products.html", data)
		return
	}

	data["TotalProducts"] = len(products)
	data["Products"] = inventory.FilterProducts(products, query)
	c.HTML(http.StatusOK, "products.html", data)
}

// NewForm renders an empty product form.
func (h *ProductHandler) NewForm(c *gin.Context) {
	data := h.formData(c, "Add product", forms.ProductForm{Status: models.StatusWarehouse, Quantity: 1}, 0)
	c.HTML(http.StatusOK, "product_form.html", data)
}

// Create validates the draft locally and submits it to the backend. Success
// renders a confirmation that navigates back to the table after a fixed
// delay; failure re-renders the form with the backend message.
func (h *ProductHandler) Create(c *gin.Context) {
	var form forms.ProductForm
	if err := c.ShouldBind(&form); err != nil {
		data := h.formData(c, "Add product", form, 0)
		data["Error"] = "The form contains invalid values"
		c.HTML(http.StatusOK, "product_form.html", data)
		return
	}
	if err := forms.Validate(form); err != nil {
		data := h.formData(c, "Add product", form, 0)
		data["Error"] = err.Error()
		c.HTML(http.StatusOK, "product_form.html", data)
		return
	}

	product := form.ToProduct()
	if sess := middleware.CurrentSession(c); sess != nil {
		product.CreatedBy = sess.Claims.Username
	}

	created, err := h.client.CreateProduct(c.Request.Context(), sessionToken(c), product)
	if err != nil {
		h.logger.Error("failed creating product", zap.Error(err))
		data := h.formData(c, "Add product", form, 0)
		data["Error"] = apiMessage(err, "Could not create the product")
		c.HTML(http.StatusOK, "product_form.html", data)
		return
	}

	h.logger.Info("product created", zap.String("name", created.Name), zap.Int64("id", created.ID))
	data := h.formData(c, "Add product", forms.ProductForm{Status: models.StatusWarehouse, Quantity: 1}, 0)
	data["Success"] = "Product created successfully"
	c.HTML(http.StatusOK, "product_form.html", data)
}

// EditForm loads the product and renders the pre-filled form.
func (h *ProductHandler) EditForm(c *gin.Context) {
	id, ok := h.productID(c)
	if !ok {
		return
	}

	product, err := h.client.GetProduct(c.Request.Context(), sessionToken(c), id)
	if err != nil {
		h.logger.Error("failed loading product", zap.Int64("id", id), zap.Error(err))
		data := h.formData(c, "Edit product", forms.ProductForm{}, id)
		data["Error"] = apiMessage(err, "Could not load the product")
		c.HTML(http.StatusOK, "product_form.html", data)
		return
	}

	form := forms.ProductForm{
		ProductID:      product.ProductID,
		Name:           product.Name,
		Brand:          product.Brand,
		Model:          product.Model,
		SerialNumber:   product.SerialNumber,
		Description:    product.Description,
		Category:       product.Category,
		Status:         product.Status,
		Quantity:       product.Quantity,
		Price:          product.Price,
		Location:       product.Location,
		PurchaseDate:   product.PurchaseDate,
		WarrantyExpiry: product.WarrantyExpiry,
		Notes:          product.Notes,
	}

	data := h.formData(c, "Edit product", form, id)
	data["Audit"] = product
	c.HTML(http.StatusOK, "product_form.html", data)
}

// Update validates and submits the edited draft, stamping the session user
// as the updater.
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := h.productID(c)
	if !ok {
		return
	}

	var form forms.ProductForm
	if err := c.ShouldBind(&form); err != nil {
		data := h.formData(c, "Edit product", form, id)
		data["Error"] = "The form contains invalid values"
		c.HTML(http.StatusOK, "product_form.html", data)
		return
	}
	if err := forms.Validate(form); err != nil {
		data := h.formData(c, "Edit product", form, id)
		data["Error"] = err.Error()
		c.HTML(http.StatusOK, "product_form.html", data)
		return
	}
	if form.ProductID == "" {
		data := h.formData(c, "Edit product", form, id)
		data["Error"] = "product ID is required"
		c.HTML(http.StatusOK, "product_form.html", data)
		return
	}

	product := form.ToProduct()
	product.ID = id
	if sess := middleware.CurrentSession(c); sess != nil {
		product.UpdatedBy = sess.Claims.Username
	}

	if _, err := h.client.UpdateProduct(c.Request.Context(), sessionToken(c), id, product); err != nil {
		h.logger.Error("failed updating product", zap.Int64("id", id), zap.Error(err))
		data := h.formData(c, "Edit product", form, id)
		data["Error"] = apiMessage(err, "Could not update the product")
		c.HTML(http.StatusOK, "product_form.html", data)
		return
	}

	h.logger.Info("product updated", zap.Int64("id", id))
	data := h.formData(c, "Edit product", form, id)
	data["Success"] = "Product updated successfully"
	c.HTML(http.StatusOK, "product_form.html", data)
}

// Delete removes the product and redirects back to the table, which
// re-fetches rather than reconciling the deletion locally.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := h.productID(c)
	if !ok {
		return
	}

	if err := h.client.DeleteProduct(c.Request.Context(), sessionToken(c), id); err != nil {
		h.logger.Error("failed deleting product", zap.Int64("id", id), zap.Error(err))
		c.Redirect(http.StatusSeeOther, "/products?message="+url.QueryEscape(apiMessage(err, "Could not delete the product")))
		return
	}

	h.logger.Info("product deleted", zap.Int64("id", id))
	c.Redirect(http.StatusSeeOther, "/products?message="+url.QueryEscape("Product deleted successfully"))
}

func (h *ProductHandler) formData(c *gin.Context, title string, form forms.ProductForm, id int64) gin.H {
	data := viewData(c, title, "add-product")
	if id != 0 {
		data["Active"] = "products"
		data["EditID"] = id
	}
	data["Form"] = form
	data["Statuses"] = models.ProductStatuses
	data["Categories"] = models.ProductCategories
	return data
}

func (h *ProductHandler) productID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.Redirect(http.StatusSeeOther, "/products")
		c.Abort()
		return 0, false
	}
	return id, true
}
