package report_service

import (
	"strings"

	"student-control/internal/models"
)

type priceEntry struct {
	course string
	value  float64
}

// coursePrices is matched in order; the first entry whose name is contained
// in the student's course wins.
var coursePrices = []priceEntry{
	{"Desenvolvimento de jogos 2D", 550.00},
	{"Unity 3D", 860.00},
	{"Lógica de programação", 320.00},
	{"Python para dados", 980.00},
}

var fixedExpenses = []models.ExpenseLine{
	{Label: "Aluguel/Espaco", Value: 800.00},
	{Label: "Energia e Internet", Value: 250.00},
	{Label: "Marketing", Value: 150.00},
	{Label: "Softwares", Value: 100.00},
}

// PriceFor returns the monthly fee of a course, 0 when no table entry matches.
func PriceFor(course string) float64 {
	course = strings.ToLower(course)
	for _, p := range coursePrices {
		if strings.Contains(course, strings.ToLower(p.course)) {
			return p.value
		}
	}
	return 0
}

func buildFinancial(month string, students []models.Student) *models.FinancialReport {
	report := &models.FinancialReport{Month: month}
	for _, st := range students {
		price := PriceFor(st.Course)
		if price <= 0 {
			continue
		}
		report.Revenue = append(report.Revenue, models.RevenueLine{Student: st.Name, Course: st.Course, Value: price})
		report.TotalRevenue += price
	}

	report.Expenses = append(report.Expenses, fixedExpenses...)
	for _, e := range fixedExpenses {
		report.TotalExpenses += e.Value
	}
	report.NetProfit = report.TotalRevenue - report.TotalExpenses
	return report
}
