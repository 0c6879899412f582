package report_service

import (
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

func writePDF(path string, doc document) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	// core fonts are cp1252; accents need translating
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, tr(doc.Title))
	pdf.Ln(10)
	pdf.SetDrawColor(40, 145, 108)
	pdf.SetLineWidth(0.5)
	pdf.Line(10, pdf.GetY(), 200, pdf.GetY())
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 10)
	for _, line := range doc.Summary {
		pdf.Cell(0, 6, tr(line))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	for _, sec := range doc.Sections {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 8, tr(sec.Name))
		pdf.Ln(9)

		pdf.SetFont("Arial", "B", 9)
		pdf.SetFillColor(40, 145, 108)
		pdf.SetTextColor(255, 255, 255)
		for i, h := range sec.Header {
			pdf.CellFormat(sec.Widths[i], 8, tr(h), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Arial", "", 9)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFillColor(245, 245, 245)
		if len(sec.Rows) == 0 {
			pdf.SetFont("Arial", "I", 9)
			pdf.Cell(0, 7, tr("Nenhum registro."))
			pdf.Ln(7)
		}
		for n, row := range sec.Rows {
			fill := n%2 == 1
			for i, v := range row {
				align := "L"
				if _, ok := v.(string); !ok {
					align = "R"
				}
				pdf.CellFormat(sec.Widths[i], 7, tr(cellText(v)), "1", 0, align, fill, 0, "")
			}
			pdf.Ln(-1)
		}
		pdf.Ln(6)
	}

	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(100, 100, 100)
	pdf.Cell(0, 5, tr(fmt.Sprintf("%s em %s", footer, time.Now().Format("02/01/2006 15:04"))))

	return pdf.OutputFileAndClose(path)
}
