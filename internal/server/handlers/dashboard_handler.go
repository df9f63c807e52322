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

// DashboardHandler renders the aggregate-metrics landing screen.
type DashboardHandler struct {
	client backend.Client
	logger *zap.Logger
}

// NewDashboardHandler constructs the dashboard handler.
func NewDashboardHandler(client backend.Client, logger *zap.Logger) *DashboardHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardHandler{client: client, logger: logger}
}

// Dashboard fetches products and movements, derives the statistics and
// renders the metric cards, status histogram, top products and recent
// activity.
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	token := sessionToken(c)

	data := viewData(c, "Dashboard", "dashboard")

	products, err := h.client.ListProducts(c.Request.Context(), token)
	if err != nil {
		h.logger.Error("failed loading products for dashboard", zap.Error(err))
		data["Error"] = apiMessage(err, "Could not load dashboard data")
		c.HTML(http.StatusOK, "dashboard.html", data)
		return
	}

	movements := h.dashboardMovements(c, products)
	stats := inventory.ComputeStats(products, movements, time.Now())

	data["Stats"] = stats
	c.HTML(http.StatusOK, "dashboard.html", data)
}

// dashboardMovements loads the history, degrading to the synthesized
// fallback. Only the fallback is capped at ten entries; real history is
// trimmed later by the recent-activity ranking.
func (h *DashboardHandler) dashboardMovements(c *gin.Context, products []models.Product) []models.Movement {
	movements, err := h.client.ListMovements(c.Request.Context(), sessionToken(c))
	if err != nil {
		h.logger.Warn("movement history unavailable, using fallback", zap.Error(err))
		movements = nil
	}
	if len(movements) == 0 {
		movements = inventory.RecentMovements(inventory.SynthesizeMovements(products), 10)
	}
	return movements
}

// QuickReport streams the one-page PDF summary of the current statistics.
func (h *DashboardHandler) QuickReport(c *gin.Context) {
	token := sessionToken(c)
	now := time.Now()

	products, err := h.client.ListProducts(c.Request.Context(), token)
	if err != nil {
		h.logger.Error("failed loading products for quick report", zap.Error(err))
		c.String(http.StatusBadGateway, "could not load products")
		return
	}

	movements := h.dashboardMovements(c, products)
	stats := inventory.ComputeStats(products, movements, now)

	document, err := export.QuickReportPDF(stats, now)
	if err != nil {
		h.logger.Error("failed rendering quick report", zap.Error(err))
		c.String(http.StatusInternalServerError, "could not generate report")
		return
	}

	sendAttachment(c, export.Filename("quick_report", "pdf", now), "application/pdf", document)
}

func sendAttachment(c *gin.Context, filename, contentType string, body []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, body)
}
