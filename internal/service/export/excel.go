package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"c4inventario/internal/domain/models"
)

const productsSheet = "Products"

// ProductColumns is the header row of the workbook export, matching the
// fields visible on the products screen.
var ProductColumns = []string{
	"Product ID", "Name", "Description", "Brand", "Model", "Serial Number",
	"Status", "Quantity", "Price", "Category", "Location", "Notes",
	"Created By", "Updated By", "Created At", "Updated At",
}

// ProductsWorkbook builds the full-inventory spreadsheet: one sheet, a header
// row, and one row per product.
func ProductsWorkbook(products []models.Product) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", productsSheet)

	if err := f.SetSheetRow(productsSheet, "A1", &ProductColumns); err != nil {
		return nil, fmt.Errorf("write header row: %w", err)
	}

	for i, p := range products {
		quantity := p.Quantity
		if quantity == 0 {
			quantity = 1
		}
		row := []interface{}{
			p.ProductID,
			p.Name,
			p.Description,
			p.Brand,
			p.Model,
			p.SerialNumber,
			p.Status,
			quantity,
			p.Price,
			p.Category,
			p.Location,
			p.Notes,
			p.CreatedBy,
			p.UpdatedBy,
			formatAudit(p.CreatedAt),
			formatAudit(p.UpdatedAt),
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("row coordinates: %w", err)
		}
		if err := f.SetSheetRow(productsSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write product row: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// Filename derives a dated download name, e.g. full_inventory_2026-08-31.xlsx.
func Filename(prefix, extension string, now time.Time) string {
	return fmt.Sprintf("%s_%s.%s", prefix, now.Format("2006-01-02"), extension)
}

func formatAudit(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}
