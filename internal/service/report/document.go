package report_service

import (
	"fmt"

	"student-control/internal/models"
	schedule_service "student-control/internal/service/schedule"
)

// document is the tabular form shared by the PDF and XLSX renderers.
type document struct {
	Title    string
	Summary  []string
	Sections []section
}

type section struct {
	Name   string
	Header []string
	Widths []float64 // mm on the PDF page
	Rows   [][]interface{}
}

// Cell values other than plain strings and ints.
type (
	moneyValue   float64
	percentValue float64
)

func toDocument(report interface{}) document {
	switch r := report.(type) {
	case *models.DailyReport:
		return dailyDocument(r)
	case *models.MonthlyReport:
		return monthlyDocument(r)
	case *models.FinancialReport:
		return financialDocument(r)
	}
	return document{Title: fmt.Sprintf("%T", report)}
}

func dailyDocument(r *models.DailyReport) document {
	sum := r.Summary
	sec := section{
		Name:   "Chamada",
		Header: []string{"Horário", "Aluno", "Curso", "Situação", "Observação"},
		Widths: []float64{25, 50, 45, 25, 45},
	}
	for _, e := range sum.Entries {
		sec.Rows = append(sec.Rows, []interface{}{
			schedule_service.ClassTimeLabel(e.ClassTime), e.Name, e.Course, e.Status.Label(), e.Note,
		})
	}
	return document{
		Title: fmt.Sprintf("Relatório Diário - %s (%s)", displayDate(sum.Date), sum.Day.Label()),
		Summary: []string{
			fmt.Sprintf("Total de alunos: %d", sum.Total()),
			fmt.Sprintf("Presentes: %d   Faltas: %d   Pendentes: %d", sum.Present, sum.Absent, sum.Pending),
		},
		Sections: []section{sec},
	}
}

func monthlyDocument(r *models.MonthlyReport) document {
	students := section{
		Name:   "Frequência",
		Header: []string{"Aluno", "Curso", "Presenças", "Faltas", "Frequência"},
		Widths: []float64{55, 55, 25, 25, 30},
	}
	for _, st := range r.Students {
		s := st.Summary()
		students.Rows = append(students.Rows, []interface{}{
			st.Name, st.Course, s.Present, s.Absent, percentValue(s.Percentage),
		})
	}

	ranking := section{
		Name:   "Mais faltas",
		Header: []string{"#", "Aluno", "Faltas"},
		Widths: []float64{15, 110, 25},
	}
	for i, rank := range r.Stats.TopAbsences {
		ranking.Rows = append(ranking.Rows, []interface{}{i + 1, rank.Name, rank.Absences})
	}

	sum := r.Stats.Summary
	return document{
		Title: fmt.Sprintf("Relatório Mensal - %s", displayMonth(r.Month)),
		Summary: []string{
			"Período: " + r.Period,
			fmt.Sprintf("Presenças: %d   Faltas: %d   Frequência geral: %s", sum.Present, sum.Absent, percent(sum.Percentage)),
		},
		Sections: []section{students, ranking},
	}
}

func financialDocument(r *models.FinancialReport) document {
	revenue := section{
		Name:   "Receitas",
		Header: []string{"Aluno", "Curso", "Valor"},
		Widths: []float64{70, 80, 40},
	}
	for _, rev := range r.Revenue {
		revenue.Rows = append(revenue.Rows, []interface{}{rev.Student, rev.Course, moneyValue(rev.Value)})
	}
	revenue.Rows = append(revenue.Rows, []interface{}{"Total", "", moneyValue(r.TotalRevenue)})

	expenses := section{
		Name:   "Despesas",
		Header: []string{"Despesa", "Valor"},
		Widths: []float64{150, 40},
	}
	for _, e := range r.Expenses {
		expenses.Rows = append(expenses.Rows, []interface{}{e.Label, moneyValue(e.Value)})
	}
	expenses.Rows = append(expenses.Rows, []interface{}{"Total", moneyValue(r.TotalExpenses)})

	return document{
		Title: fmt.Sprintf("Relatório Financeiro - %s", displayMonth(r.Month)),
		Summary: []string{
			"Receitas: " + money(r.TotalRevenue),
			"Despesas: " + money(r.TotalExpenses),
			"Lucro líquido: " + money(r.NetProfit),
		},
		Sections: []section{revenue, expenses},
	}
}

func cellText(v interface{}) string {
	switch val := v.(type) {
	case moneyValue:
		return money(float64(val))
	case percentValue:
		return percent(float64(val))
	default:
		return fmt.Sprint(v)
	}
}
