package inventory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"c4inventario/internal/domain/models"
)

func TestSynthesizeMovements(t *testing.T) {
	created := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	updated := time.Date(2026, 8, 15, 16, 30, 0, 0, time.UTC)

	products := []models.Product{
		{
			ID: 1, ProductID: "C4-001", Name: "Laptop",
			Status: models.StatusWarehouse, Quantity: 3, Location: "HQ",
			CreatedBy: "alice", CreatedAt: created,
			UpdatedBy: "bob", UpdatedAt: updated,
		},
		{
			// No creator on record: nothing to synthesize.
			ID: 2, ProductID: "C4-002", Name: "Monitor",
		},
		{
			// Updated timestamp equals creation, so only the entry appears.
			ID: 3, ProductID: "C4-003", Name: "Router",
			CreatedBy: "carol", CreatedAt: created.Add(time.Hour),
			UpdatedBy: "carol", UpdatedAt: created.Add(time.Hour),
		},
	}

	movements := SynthesizeMovements(products)
	require.Len(t, movements, 3)

	// Newest first.
	assert.Equal(t, "1-updated", movements[0].ID)
	assert.Equal(t, models.MovementAdjustment, movements[0].Type)
	assert.Equal(t, "bob", movements[0].PerformedBy)

	assert.Equal(t, "3-created", movements[1].ID)
	assert.Equal(t, models.MovementEntry, movements[1].Type)

	assert.Equal(t, "1-created", movements[2].ID)
	assert.Equal(t, "alice", movements[2].PerformedBy)
	assert.Equal(t, models.StatusWarehouse, movements[2].ToStatus)
	assert.Equal(t, 3, movements[2].Quantity)
}

func TestSynthesizeMovementsDefaults(t *testing.T) {
	products := []models.Product{
		{ID: 7, Name: "Cable", CreatedBy: "dave", CreatedAt: time.Now()},
	}

	movements := SynthesizeMovements(products)
	require.Len(t, movements, 1)
	assert.Equal(t, "Unspecified", movements[0].Location)
	assert.Equal(t, 1, movements[0].Quantity)
}

func sampleMovements(now time.Time) []models.Movement {
	return []models.Movement{
		{ID: "1", ProductName: "Laptop", Type: models.MovementEntry, PerformedBy: "alice", CreatedAt: now.Add(-time.Hour)},
		{ID: "2", ProductName: "Monitor", Type: models.MovementExit, PerformedBy: "bob", CreatedAt: now.Add(-3 * 24 * time.Hour)},
		{ID: "3", ProductName: "Router", Type: models.MovementEntry, PerformedBy: "alice", CreatedAt: now.Add(-20 * 24 * time.Hour), Notes: "bulk intake"},
		{ID: "4", ProductName: "Switch", Type: models.MovementAdjustment, PerformedBy: "carol", CreatedAt: now.Add(-60 * 24 * time.Hour)},
	}
}

func TestFilterMovementsWindows(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	movements := sampleMovements(now)

	assert.Len(t, FilterMovements(movements, MovementQuery{Window: WindowAll}, now), 4)
	assert.Len(t, FilterMovements(movements, MovementQuery{Window: WindowToday}, now), 1)
	assert.Len(t, FilterMovements(movements, MovementQuery{Window: WindowWeek}, now), 2)
	assert.Len(t, FilterMovements(movements, MovementQuery{Window: WindowMonth}, now), 3)
}

func TestFilterMovementsSelectors(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	movements := sampleMovements(now)

	byType := FilterMovements(movements, MovementQuery{Type: models.MovementEntry}, now)
	require.Len(t, byType, 2)
	for _, m := range byType {
		assert.Equal(t, models.MovementEntry, m.Type)
	}

	byUser := FilterMovements(movements, MovementQuery{User: "alice"}, now)
	assert.Len(t, byUser, 2)

	combined := FilterMovements(movements, MovementQuery{
		Type:   models.MovementEntry,
		User:   "alice",
		Search: "BULK",
	}, now)
	require.Len(t, combined, 1)
	assert.Equal(t, "3", combined[0].ID)
}

func TestFilterMovementsSearch(t *testing.T) {
	now := time.Now()
	movements := sampleMovements(now)

	got := FilterMovements(movements, MovementQuery{Search: "monitor"}, now)
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}

func TestComputeMovementStats(t *testing.T) {
	now := time.Now()
	stats := ComputeMovementStats(sampleMovements(now))

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.ByType[models.MovementEntry])
	assert.Equal(t, 1, stats.ByType[models.MovementExit])
	assert.Equal(t, 0, stats.ByType[models.MovementTransfer])
	assert.Equal(t, 1, stats.ByType[models.MovementAdjustment])
	assert.Equal(t, 2, stats.ByUser["alice"])
	assert.Equal(t, 1, stats.ByUser["carol"])
}

func TestUniqueUsers(t *testing.T) {
	now := time.Now()
	movements := append(sampleMovements(now), models.Movement{ID: "5", PerformedBy: ""})

	users := UniqueUsers(movements)
	assert.Equal(t, []string{"alice", "bob", "carol"}, users)
}
