package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"c4inventario/internal/domain/models"
	"c4inventario/internal/server/forms"
	"c4inventario/internal/server/middleware"
	"c4inventario/internal/service/export"
	"c4inventario/pkg/clients/backend"
)

const excelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// SettingsHandler serves user administration and the spreadsheet export.
type SettingsHandler struct {
	client backend.Client
	logger *zap.Logger
}

// NewSettingsHandler constructs the settings handler.
func NewSettingsHandler(client backend.Client, logger *zap.Logger) *SettingsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SettingsHandler{client: client, logger: logger}
}

// Page renders the settings screen with the account list.
func (h *SettingsHandler) Page(c *gin.Context) {
	data := viewData(c, "Settings", "settings")
	data["Roles"] = []string{models.RoleUser, models.RoleAdmin}
	data["Error"] = c.Query("error")
	data["Success"] = c.Query("message")
	data["EditID"] = c.Query("edit")

	users, err := h.client.ListUsers(c.Request.Context(), sessionToken(c))
	if err != nil {
		h.logger.Error("failed loading users", zap.Error(err))
		if existing, ok := data["Error"].(string); !ok || existing == "" {
			data["Error"] = apiMessage(err, "Could not load users")
		}
		users = nil
	}

	data["Users"] = users
	c.HTML(http.StatusOK, "settings.html", data)
}

// CreateUser validates and submits a new account.
func (h *SettingsHandler) CreateUser(c *gin.Context) {
	var form forms.NewUserForm
	if err := c.ShouldBind(&form); err != nil {
		h.redirect(c, "error", "Username and password are required")
		return
	}
	if err := forms.Validate(form); err != nil {
		h.redirect(c, "error", err.Error())
		return
	}

	user := models.User{Username: form.Username, Password: form.Password, Role: form.Role}
	if _, err := h.client.CreateUser(c.Request.Context(), sessionToken(c), user); err != nil {
		h.logger.Error("failed creating user", zap.String("username", form.Username), zap.Error(err))
		h.redirect(c, "error", apiMessage(err, "Could not create the user"))
		return
	}

	h.logger.Info("user created", zap.String("username", form.Username))
	h.redirect(c, "message", "User created successfully")
}

// UpdateUser validates and submits an account edit. An empty password keeps
// the current one.
func (h *SettingsHandler) UpdateUser(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}

	var form forms.EditUserForm
	if err := c.ShouldBind(&form); err != nil {
		h.redirect(c, "error", "Username is required")
		return
	}
	if err := forms.Validate(form); err != nil {
		h.redirect(c, "error", err.Error())
		return
	}

	user := models.User{Username: form.Username, Password: form.Password, Role: form.Role}
	if _, err := h.client.UpdateUser(c.Request.Context(), sessionToken(c), id, user); err != nil {
		h.logger.Error("failed updating user", zap.Int64("id", id), zap.Error(err))
		h.redirect(c, "error", apiMessage(err, "Could not update the user"))
		return
	}

	h.logger.Info("user updated", zap.Int64("id", id))
	h.redirect(c, "message", "User updated successfully")
}

// DeleteUser removes an account, refusing to delete the signed-in one.
func (h *SettingsHandler) DeleteUser(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}

	if sess := middleware.CurrentSession(c); sess != nil {
		if username := c.PostForm("username"); username != "" && username == sess.Claims.Username {
			h.redirect(c, "error", "You cannot delete your own account")
			return
		}
	}

	if err := h.client.DeleteUser(c.Request.Context(), sessionToken(c), id); err != nil {
		h.logger.Error("failed deleting user", zap.Int64("id", id), zap.Error(err))
		h.redirect(c, "error", apiMessage(err, "Could not delete the user"))
		return
	}

	h.logger.Info("user deleted", zap.Int64("id", id))
	h.redirect(c, "message", "User deleted successfully")
}

// ExportExcel streams the full product workbook.
func (h *SettingsHandler) ExportExcel(c *gin.Context) {
	now := time.Now()

	products, err := h.client.ListProducts(c.Request.Context(), sessionToken(c))
	if err != nil {
		h.logger.Error("failed loading products for export", zap.Error(err))
		h.redirect(c, "error", apiMessage(err, "Could not load products"))
		return
	}

	workbook, err := export.ProductsWorkbook(products)
	if err != nil {
		h.logger.Error("failed building workbook", zap.Error(err))
		h.redirect(c, "error", "Could not generate the export")
		return
	}

	sendAttachment(c, export.Filename("full_inventory", "xlsx", now), excelContentType, workbook)
}

func (h *SettingsHandler) redirect(c *gin.Context, key, message string) {
	c.Redirect(http.StatusSeeOther, "/settings?"+key+"="+url.QueryEscape(message))
}

func (h *SettingsHandler) userID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.Redirect(http.StatusSeeOther, "/settings")
		c.Abort()
		return 0, false
	}
	return id, true
}
