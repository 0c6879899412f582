package report_service

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"

	"student-control/internal/models"
	schedule_service "student-control/internal/service/schedule"
)

var (
	heavyRule = strings.Repeat("=", 60)
	lightRule = strings.Repeat("-", 60)
)

const footer = "Gerado automaticamente pelo Sistema de Alunos"

func writeText(path string, report interface{}) error {
	var content string
	switch r := report.(type) {
	case *models.DailyReport:
		content = DailyText(r)
	case *models.MonthlyReport:
		content = MonthlyText(r)
	case *models.FinancialReport:
		content = FinancialText(r)
	default:
		return errors.Errorf("unsupported report %T", report)
	}
	return os.WriteFile(path, []byte(content), 0o644)
}

// DailyText renders the attendance sheet of one day.
func DailyText(r *models.DailyReport) string {
	sum := r.Summary
	lines := []string{
		heavyRule,
		fmt.Sprintf("RELATORIO DIARIO - %s (%s)", displayDate(sum.Date), sum.Day.Label()),
		heavyRule,
		fmt.Sprintf("TOTAL DE ALUNOS: %d", sum.Total()),
		lightRule,
		fmt.Sprintf("[+] Presentes:    %d", sum.Present),
		fmt.Sprintf("[x] Faltas:       %d", sum.Absent),
		fmt.Sprintf("[ ] Pendentes:    %d", sum.Pending),
		heavyRule,
		"",
	}

	if len(sum.Entries) == 0 {
		lines = append(lines, ">> Nenhum aluno agendado para hoje.")
		return strings.Join(lines, "\n")
	}

	for _, e := range sum.Entries {
		lines = append(lines,
			fmt.Sprintf("ALUNO: %s | CURSO: %s | TURMA: %s", e.Name, e.Course, schedule_service.ClassTimeLabel(e.ClassTime)),
			"SITUACAO: "+statusText(e.Status),
		)
		if e.Note != "" {
			lines = append(lines, "OBS: "+e.Note)
		}
		lines = append(lines, lightRule)
	}

	lines = append(lines, "", footer)
	return strings.Join(lines, "\n")
}

func MonthlyText(r *models.MonthlyReport) string {
	sum := r.Stats.Summary
	lines := []string{
		heavyRule,
		fmt.Sprintf("RELATORIO MENSAL - %s", displayMonth(r.Month)),
		"Periodo: " + r.Period,
		heavyRule,
		fmt.Sprintf("TOTAL DE REGISTROS: %d", sum.Total),
		lightRule,
		fmt.Sprintf("[+] Presencas:    %d", sum.Present),
		fmt.Sprintf("[x] Faltas:       %d", sum.Absent),
		fmt.Sprintf("Frequencia geral: %s", percent(sum.Percentage)),
		heavyRule,
		"",
	}

	for _, st := range r.Students {
		s := st.Summary()
		lines = append(lines,
			fmt.Sprintf("ALUNO: %s | CURSO: %s", st.Name, st.Course),
			fmt.Sprintf("PRESENCAS: %d | FALTAS: %d | FREQUENCIA: %s", s.Present, s.Absent, percent(s.Percentage)),
			lightRule,
		)
	}

	if len(r.Stats.TopAbsences) > 0 {
		lines = append(lines, "", "MAIS FALTAS NO MES:")
		for i, rank := range r.Stats.TopAbsences {
			lines = append(lines, fmt.Sprintf("%d. %s - %d falta(s)", i+1, rank.Name, rank.Absences))
		}
	}

	lines = append(lines, "", footer)
	return strings.Join(lines, "\n")
}

func FinancialText(r *models.FinancialReport) string {
	lines := []string{
		heavyRule,
		fmt.Sprintf("RELATORIO FINANCEIRO - %s", displayMonth(r.Month)),
		heavyRule,
		"RECEITAS:",
	}
	if len(r.Revenue) == 0 {
		lines = append(lines, ">> Nenhum aluno com curso na tabela de precos.")
	}
	for _, rev := range r.Revenue {
		lines = append(lines, fmt.Sprintf("%s | %s | %s", rev.Student, rev.Course, money(rev.Value)))
	}
	lines = append(lines,
		lightRule,
		"TOTAL RECEITAS: "+money(r.TotalRevenue),
		"",
		"DESPESAS:",
	)
	for _, e := range r.Expenses {
		lines = append(lines, fmt.Sprintf("%s: %s", e.Label, money(e.Value)))
	}
	lines = append(lines,
		lightRule,
		"TOTAL DESPESAS: "+money(r.TotalExpenses),
		heavyRule,
		"LUCRO LIQUIDO: "+money(r.NetProfit),
		heavyRule,
		"",
		footer,
	)
	return strings.Join(lines, "\n")
}

func statusText(status models.AttendanceStatus) string {
	switch status {
	case models.StatusPresent:
		return "PRESENTE [+]"
	case models.StatusAbsent:
		return "FALTA [x]"
	default:
		return "PENDENTE [ ]"
	}
}

// displayDate turns "2024-03-04" into "04/03/2024".
func displayDate(date string) string {
	t, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("02/01/2006")
}

// displayMonth turns "2024-03" into "03/2024".
func displayMonth(month string) string {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return month
	}
	return t.Format("01/2006")
}

func money(v float64) string {
	return "R$ " + strings.Replace(fmt.Sprintf("%.2f", v), ".", ",", 1)
}

func percent(v float64) string {
	return fmt.Sprintf("%.0f%%", v)
}
