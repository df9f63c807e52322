package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"c4inventario/internal/domain/models"
	"c4inventario/internal/service/inventory"
)

const timestampLayout = "2006-01-02 15:04"

// MovementsPDF renders the movement report for the given window: title,
// generation line, then one table row per movement with the same columns the
// reports screen shows. Missing fields default to "-".
func MovementsPDF(movements []models.Movement, title string, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(40, 40, 40)
	pdf.Cell(0, 10, title)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", generatedAt.Format(timestampLayout)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Total movements: %d", len(movements)))
	pdf.Ln(10)

	headers := []string{"Date", "Time", "Product ID", "Product", "Type", "Status", "User", "Location"}
	widths := []float64{24, 18, 30, 60, 28, 36, 36, 45}

	writeTableHeader(pdf, headers, widths, 59, 130, 246)

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(40, 40, 40)
	for i, m := range movements {
		row := []string{
			m.CreatedAt.Format("2006-01-02"),
			m.CreatedAt.Format("15:04"),
			orDash(m.ProductID),
			orDash(m.ProductName),
			orDash(m.Type),
			orDash(m.ToStatus),
			orDash(m.PerformedBy),
			orDash(m.Location),
		}
		writeTableRow(pdf, row, widths, i%2 == 1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render movements pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// InventoryPDF renders the full product inventory with the status histogram
// as summary lines above the table.
func InventoryPDF(products []models.Product, byStatus []inventory.StatusCount, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(40, 40, 40)
	pdf.Cell(0, 10, "Full Product Inventory")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", generatedAt.Format(timestampLayout)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Total products: %d", len(products)))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 9)
	for _, bucket := range byStatus {
		pdf.Cell(0, 5, fmt.Sprintf("%s: %d", bucket.Status, bucket.Count))
		pdf.Ln(5)
	}
	pdf.Ln(4)

	headers := []string{"ID", "Name", "Brand", "Model", "Serial", "Status", "Location", "User"}
	widths := []float64{28, 58, 30, 30, 34, 32, 40, 25}

	writeTableHeader(pdf, headers, widths, 34, 197, 94)

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(40, 40, 40)
	for i, p := range products {
		row := []string{
			orDash(p.ProductID),
			orDash(p.Name),
			orDash(p.Brand),
			orDash(p.Model),
			orDash(p.SerialNumber),
			orDash(p.Status),
			orDash(p.Location),
			orDash(p.LastUser()),
		}
		writeTableRow(pdf, row, widths, i%2 == 1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render inventory pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// QuickReportPDF renders the dashboard's one-page summary: headline metrics
// plus the top products table.
func QuickReportPDF(stats inventory.Stats, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(40, 40, 40)
	pdf.Cell(0, 10, "Inventory Quick Report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", generatedAt.Format(timestampLayout)))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(40, 40, 40)
	pdf.Cell(0, 8, fmt.Sprintf("Total products: %d", stats.TotalProducts))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Total value: $%.2f", stats.TotalValue))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Low-stock products: %d", stats.LowStock))
	pdf.Ln(14)

	headers := []string{"Product", "Status", "Location", "Value"}
	widths := []float64{75, 35, 45, 30}

	writeTableHeader(pdf, headers, widths, 59, 130, 246)

	pdf.SetFont("Helvetica", "", 10)
	for i, p := range stats.TopProducts {
		row := []string{
			orDash(p.Name),
			orDash(p.Status),
			orDash(p.Location),
			fmt.Sprintf("$%.2f", p.TotalValue),
		}
		writeTableRow(pdf, row, widths, i%2 == 1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render quick report pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writeTableHeader(pdf *gofpdf.Fpdf, headers []string, widths []float64, r, g, b int) {
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(r, g, b)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)
}

func writeTableRow(pdf *gofpdf.Fpdf, row []string, widths []float64, shaded bool) {
	if shaded {
		pdf.SetFillColor(245, 247, 250)
	} else {
		pdf.SetFillColor(255, 255, 255)
	}
	for i, cell := range row {
		pdf.CellFormat(widths[i], 6, cell, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
