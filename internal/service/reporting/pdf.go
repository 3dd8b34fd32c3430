package reporting

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/lucianorey/libreria/internal/domain/models"
)

var (
	tableHeaders = []string{"Fecha", "Título", "Proveedor", "Venta", "Socio", "Tuya", "%", "Canal"}
	columnWidths = []float64{22, 48, 28, 18, 18, 18, 12, 20}
)

const rowHeight = 7

// renderPDF draws the tabular sales report: title, period line, one bordered
// row per sale, totals block and the authorization footer.
func renderPDF(records []models.SaleRecord, window models.ReportWindow, summary models.ReportSummary) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, tr("Reporte de ventas"), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	period := fmt.Sprintf("Desde: %s  Hasta: %s",
		window.From.Format(models.SaleDateLayout),
		window.To.Format(models.SaleDateLayout))
	pdf.CellFormat(0, 8, period, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 9)
	for i, h := range tableHeaders {
		pdf.CellFormat(columnWidths[i], rowHeight, tr(h), "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for _, r := range records {
		cells := []string{
			r.Date,
			truncate(r.Title, 35),
			r.Supplier,
			"$" + r.SalePrice,
			"$" + r.PartnerShare,
			"$" + r.OwnerShare,
			r.PartnerPercent,
			r.Channel,
		}
		for i, c := range cells {
			pdf.CellFormat(columnWidths[i], rowHeight, tr(c), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, "Resumen final", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Total facturado: $%s", summary.TotalSales.StringFixed(2)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Ganancia del socio: $%s", summary.TotalPartner.StringFixed(2)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Tu ganancia: $%s", summary.TotalOwner.StringFixed(2)), "", 1, "L", false, 0, "")

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Autorizado Luciano Rey", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
