package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"c4inventario/internal/domain/models"
	"c4inventario/internal/service/inventory"
)

func TestProductsWorkbook(t *testing.T) {
	created := time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC)
	products := []models.Product{
		{
			ProductID: "C4-001", Name: "Laptop", Brand: "Dell",
			Status: models.StatusWarehouse, Quantity: 3, Price: 800,
			CreatedBy: "alice", CreatedAt: created,
		},
		{ProductID: "C4-002", Name: "Monitor", Status: models.StatusInField},
	}

	data, err := ProductsWorkbook(products)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Products")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, ProductColumns, rows[0][:len(ProductColumns)])

	assert.Equal(t, "C4-001", rows[1][0])
	assert.Equal(t, "Laptop", rows[1][1])
	assert.Equal(t, "alice", rows[1][12])
	assert.Equal(t, "2026-08-01 10:30:00", rows[1][14])

	// Zero quantity is exported as 1, matching the on-screen default.
	assert.Equal(t, "1", rows[2][7])
}

func TestInventoryPDF(t *testing.T) {
	products := []models.Product{
		{ProductID: "C4-001", Name: "Laptop", Status: models.StatusWarehouse},
	}
	byStatus := []inventory.StatusCount{{Status: models.StatusWarehouse, Count: 1, Percentage: 100}}

	data, err := InventoryPDF(products, byStatus, time.Now())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "expected a PDF document")
}

func TestMovementsPDF(t *testing.T) {
	movements := []models.Movement{
		{ProductID: "C4-001", ProductName: "Laptop", Type: models.MovementEntry, PerformedBy: "alice", CreatedAt: time.Now()},
	}

	data, err := MovementsPDF(movements, "Movement Report - Last Month", time.Now())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestQuickReportPDF(t *testing.T) {
	stats := inventory.ComputeStats([]models.Product{
		{Name: "Laptop", Price: 800, Quantity: 2, Status: models.StatusWarehouse},
	}, nil, time.Now())

	data, err := QuickReportPDF(stats, time.Now())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestFilename(t *testing.T) {
	now := time.Date(2026, 8, 31, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, "full_inventory_2026-08-31.xlsx", Filename("full_inventory", "xlsx", now))
	assert.Equal(t, "quick_report_2026-08-31.pdf", Filename("quick_report", "pdf", now))
}
