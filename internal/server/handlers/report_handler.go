package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"c4inventario/internal/domain/models"
	"c4inventario/internal/service/export"
	"c4inventario/internal/service/inventory"
	"c4inventario/pkg/clients/backend"
)

// ReportHandler serves the movement/audit reporting screen and its PDF
// downloads.
type ReportHandler struct {
	client backend.Client
	logger *zap.Logger
}

// NewReportHandler constructs the reports handler.
func NewReportHandler(client backend.Client, logger *zap.Logger) *ReportHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportHandler{client: client, logger: logger}
}

// Page renders the reports screen: the movements tab with its date/type/user
// filters and search, and the products tab with the status histogram.
func (h *ReportHandler) Page(c *gin.Context) {
	token := sessionToken(c)
	now := time.Now()

	data := viewData(c, "Reports", "reports")
	data["Tab"] = c.DefaultQuery("tab", "movements")
	data["Types"] = models.MovementTypes

	query := inventory.MovementQuery{
		Window: c.DefaultQuery("window", inventory.WindowAll),
		Type:   c.DefaultQuery("type", inventory.FilterAll),
		User:   c.DefaultQuery("user", inventory.FilterAll),
		Search: c.Query("q"),
	}
	data["Query"] = query
	data["TotalProducts"] = 0

	products, err := h.client.ListProducts(c.Request.Context(), token)
	if err != nil {
		h.logger.Error("failed loading products for reports", zap.Error(err))
		data["Error"] = apiMessage(err, "Could not load report data")
		c.HTML(http.StatusOK, "reports.html", data)
		return
	}

	movements := loadMovements(c.Request.Context(), h.client, token, products, h.logger)
	filtered := inventory.FilterMovements(movements, query, now)

	data["Movements"] = filtered
	data["MovementStats"] = inventory.ComputeMovementStats(filtered)
	data["Users"] = inventory.UniqueUsers(movements)
	data["ByStatus"] = inventory.ComputeStats(products, nil, now).ByStatus
	data["TotalProducts"] = len(products)
	c.HTML(http.StatusOK, "reports.html", data)
}

// MonthlyMovementsPDF streams the last-month movement report.
func (h *ReportHandler) MonthlyMovementsPDF(c *gin.Context) {
	token := sessionToken(c)
	now := time.Now()

	products, err := h.client.ListProducts(c.Request.Context(), token)
	if err != nil {
		h.logger.Error("failed loading products for movement report", zap.Error(err))
		c.String(http.StatusBadGateway, "could not load report data")
		return
	}

	movements := loadMovements(c.Request.Context(), h.client, token, products, h.logger)
	monthly := inventory.FilterMovements(movements, inventory.MovementQuery{Window: inventory.WindowMonth}, now)

	document, err := export.MovementsPDF(monthly, "Movement Report - Last Month", now)
	if err != nil {
		h.logger.Error("failed rendering movement report", zap.Error(err))
		c.String(http.StatusInternalServerError, "could not generate report")
		return
	}

	sendAttachment(c, export.Filename("movements_month", "pdf", now), "application/pdf", document)
}

// InventoryPDF streams the full-inventory report.
func (h *ReportHandler) InventoryPDF(c *gin.Context) {
	token := sessionToken(c)
	now := time.Now()

	products, err := h.client.ListProducts(c.Request.Context(), token)
	if err != nil {
		h.logger.Error("failed loading products for inventory report", zap.Error(err))
		c.String(http.StatusBadGateway, "could not load report data")
		return
	}

	byStatus := inventory.ComputeStats(products, nil, now).ByStatus
	document, err := export.InventoryPDF(products, byStatus, now)
	if err != nil {
		h.logger.Error("failed rendering inventory report", zap.Error(err))
		c.String(http.StatusInternalServerError, "could not generate report")
		return
	}

	sendAttachment(c, export.Filename("full_inventory", "pdf", now), "application/pdf", document)
}
