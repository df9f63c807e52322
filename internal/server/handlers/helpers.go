package handlers

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"c4inventario/internal/domain/models"
	"c4inventario/internal/server/middleware"
	"c4inventario/internal/service/inventory"
	"c4inventario/pkg/clients/backend"
)

// viewData assembles the fields every protected template expects: the page
// title, the active menu item for sidebar highlighting, and the session user.
func viewData(c *gin.Context, title, active string) gin.H {
	data := gin.H{
		"Title":  title,
		"Active": active,
	}

	if sess := middleware.CurrentSession(c); sess != nil {
		data["UserName"] = sess.Claims.DisplayName()
		data["UserRole"] = sess.Claims.Role
	}

	return data
}

// sessionToken returns the bearer token the guard attached to the request.
func sessionToken(c *gin.Context) string {
	if sess := middleware.CurrentSession(c); sess != nil {
		return sess.Token
	}
	return ""
}

// apiMessage surfaces the backend-provided error message when there is one,
// and the generic fallback otherwise.
func apiMessage(err error, fallback string) string {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// loadMovements fetches the movement history, degrading to the synthesized
// fallback when the backend has none or the call fails. Backend movement
// failures are non-fatal for every screen that shows movements.
func loadMovements(ctx context.Context, client backend.Client, token string, products []models.Product, logger *zap.Logger) []models.Movement {
	movements, err := client.ListMovements(ctx, token)
	if err != nil {
		logger.Warn("movement history unavailable, using fallback", zap.Error(err))
		movements = nil
	}
	if len(movements) == 0 {
		movements = inventory.SynthesizeMovements(products)
	}
	return movements
}
