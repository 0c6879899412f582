package report_service

import (
	"github.com/xuri/excelize/v2"
)

const summarySheet = "Resumo"

func writeXLSX(path string, doc document) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return err
	}
	if err := f.SetCellValue(summarySheet, "A1", doc.Title); err != nil {
		return err
	}
	for i, line := range doc.Summary {
		cell, _ := excelize.CoordinatesToCellName(1, i+3)
		if err := f.SetCellValue(summarySheet, cell, line); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(summarySheet, "A", "A", 60); err != nil {
		return err
	}

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"28916C"}, Pattern: 1},
	})
	if err != nil {
		return err
	}
	moneyFmt := "\"R$\" #,##0.00"
	moneyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFmt})
	if err != nil {
		return err
	}
	percentStyle, err := f.NewStyle(&excelize.Style{NumFmt: 9})
	if err != nil {
		return err
	}

	for _, sec := range doc.Sections {
		if _, err := f.NewSheet(sec.Name); err != nil {
			return err
		}

		headerRow := make([]interface{}, len(sec.Header))
		for i, h := range sec.Header {
			headerRow[i] = h
		}
		if err := f.SetSheetRow(sec.Name, "A1", &headerRow); err != nil {
			return err
		}
		last, _ := excelize.CoordinatesToCellName(len(sec.Header), 1)
		if err := f.SetCellStyle(sec.Name, "A1", last, header); err != nil {
			return err
		}

		for r, row := range sec.Rows {
			for c, v := range row {
				cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
				switch val := v.(type) {
				case moneyValue:
					err = f.SetCellFloat(sec.Name, cell, float64(val), 2, 64)
					if err == nil {
						err = f.SetCellStyle(sec.Name, cell, cell, moneyStyle)
					}
				case percentValue:
					err = f.SetCellFloat(sec.Name, cell, float64(val)/100, 4, 64)
					if err == nil {
						err = f.SetCellStyle(sec.Name, cell, cell, percentStyle)
					}
				default:
					err = f.SetCellValue(sec.Name, cell, v)
				}
				if err != nil {
					return err
				}
			}
		}

		lastCol, _ := excelize.ColumnNumberToName(len(sec.Header))
		if err := f.SetColWidth(sec.Name, "A", lastCol, 22); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}
