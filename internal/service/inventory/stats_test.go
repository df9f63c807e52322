package inventory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"c4inventario/internal/domain/models"
)

func TestComputeStatsTotals(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	products := []models.Product{
		{Name: "A", Price: 10, Quantity: 2, Status: models.StatusWarehouse},
		{Name: "B", Price: 5, Quantity: 1, Status: models.StatusInField},
	}

	stats := ComputeStats(products, nil, now)

	assert.Equal(t, 2, stats.TotalProducts)
	assert.InDelta(t, 25.0, stats.TotalValue, 0.001)
	assert.Equal(t, 2, stats.LowStock)

	require.Len(t, stats.TopProducts, 2)
	assert.Equal(t, "A", stats.TopProducts[0].Name)
	assert.InDelta(t, 20.0, stats.TopProducts[0].TotalValue, 0.001)
	assert.Equal(t, "B", stats.TopProducts[1].Name)
	assert.InDelta(t, 5.0, stats.TopProducts[1].TotalValue, 0.001)
}

func TestComputeStatsLowStockThreshold(t *testing.T) {
	products := []models.Product{
		{Name: "scarce", Quantity: 9},
		{Name: "boundary", Quantity: 10},
		{Name: "plenty", Quantity: 50},
	}

	stats := ComputeStats(products, nil, time.Now())
	assert.Equal(t, 1, stats.LowStock)
}

func TestComputeStatsTodayMovements(t *testing.T) {
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)

	movements := []models.Movement{
		{ID: "1", CreatedAt: now.Add(-time.Hour)},
		{ID: "2", CreatedAt: now.Add(-26 * time.Hour)},
		{ID: "3", CreatedAt: time.Date(2026, 8, 31, 23, 59, 0, 0, time.UTC)},
	}

	stats := ComputeStats(nil, movements, now)
	assert.Equal(t, 2, stats.TodayMovements)
}

func TestStatusHistogramPercentages(t *testing.T) {
	products := []models.Product{
		{Status: models.StatusWarehouse},
		{Status: models.StatusWarehouse},
		{Status: models.StatusInField},
	}

	stats := ComputeStats(products, nil, time.Now())
	require.Len(t, stats.ByStatus, 2)

	// Known statuses render in enum order: In field before Warehouse.
	assert.Equal(t, models.StatusInField, stats.ByStatus[0].Status)
	assert.Equal(t, 1, stats.ByStatus[0].Count)
	assert.InDelta(t, 33.3, stats.ByStatus[0].Percentage, 0.001)

	assert.Equal(t, models.StatusWarehouse, stats.ByStatus[1].Status)
	assert.Equal(t, 2, stats.ByStatus[1].Count)
	assert.InDelta(t, 66.7, stats.ByStatus[1].Percentage, 0.001)
}

func TestTopProductsByValueStableTies(t *testing.T) {
	products := []models.Product{
		{Name: "first", Price: 10, Quantity: 1},
		{Name: "second", Price: 5, Quantity: 2},
		{Name: "third", Price: 2, Quantity: 5},
	}

	ranked := TopProductsByValue(products, 5)
	require.Len(t, ranked, 3)

	// All three compute to 10; the original order must survive.
	assert.Equal(t, "first", ranked[0].Name)
	assert.Equal(t, "second", ranked[1].Name)
	assert.Equal(t, "third", ranked[2].Name)
}

func TestTopProductsByValueLimit(t *testing.T) {
	products := make([]models.Product, 8)
	for i := range products {
		products[i] = models.Product{Name: "p", Price: float64(i), Quantity: 1}
	}

	ranked := TopProductsByValue(products, 5)
	assert.Len(t, ranked, 5)
	assert.InDelta(t, 7.0, ranked[0].TotalValue, 0.001)
}

func TestRecentMovements(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	movements := make([]models.Movement, 12)
	for i := range movements {
		movements[i] = models.Movement{
			ID:        string(rune('a' + i)),
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
	}

	recent := RecentMovements(movements, 10)
	require.Len(t, recent, 10)
	assert.Equal(t, movements[11].ID, recent[0].ID)
	for i := 1; i < len(recent); i++ {
		assert.False(t, recent[i].CreatedAt.After(recent[i-1].CreatedAt))
	}

	// The input must not be reordered.
	assert.Equal(t, "a", movements[0].ID)
}

func TestComputeStatsEmptyInput(t *testing.T) {
	stats := ComputeStats(nil, nil, time.Now())

	assert.Zero(t, stats.TotalProducts)
	assert.Zero(t, stats.TotalValue)
	assert.Zero(t, stats.LowStock)
	assert.Zero(t, stats.TodayMovements)
	assert.Empty(t, stats.ByStatus)
	assert.Empty(t, stats.TopProducts)
	assert.Empty(t, stats.RecentActivity)
}
