package bot

import (
	"fmt"
	"strconv"
	"strings"

	"student-control/internal/models"
	schedule_service "student-control/internal/service/schedule"
)

func statusIcon(status models.AttendanceStatus) string {
	switch status {
	case models.StatusPresent:
		return "✅"
	case models.StatusAbsent:
		return "❌"
	default:
		return "⏳"
	}
}

func formatDailySummary(sum *models.DailySummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📋 %s, %s\n\n", sum.Day.Label(), displayDate(sum.Date))

	if len(sum.Entries) == 0 {
		b.WriteString("Nenhum aluno agendado para hoje.")
		return b.String()
	}

	for _, e := range sum.Entries {
		fmt.Fprintf(&b, "%s %s - %s (%s)\n", statusIcon(e.Status), schedule_service.ClassTimeLabel(e.ClassTime), e.Name, e.Course)
		if e.Note != "" {
			fmt.Fprintf(&b, "    📝 %s\n", e.Note)
		}
	}
	fmt.Fprintf(&b, "\nTotal: %d | Presentes: %d | Faltas: %d | Pendentes: %d",
		sum.Total(), sum.Present, sum.Absent, sum.Pending)
	return b.String()
}

// studentButton labels a daily entry so the reply can be mapped back by its number.
func studentButton(i int, e models.DailyScheduleEntry) string {
	return fmt.Sprintf("%d. %s %s (%s)", i+1, statusIcon(e.Status), e.Name, schedule_service.ClassTimeLabel(e.ClassTime))
}

// parseSelection returns the zero-based index encoded by studentButton, or -1.
func parseSelection(text string, n int) int {
	dot := strings.Index(text, ".")
	if dot <= 0 {
		return -1
	}
	num, err := strconv.Atoi(strings.TrimSpace(text[:dot]))
	if err != nil || num < 1 || num > n {
		return -1
	}
	return num - 1
}

func formatMonthlyStats(stats *models.MonthlyStats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📊 Frequência de %s\n\n", displayMonth(stats.Month))
	fmt.Fprintf(&b, "Presenças: %d\nFaltas: %d\nFrequência geral: %.0f%%\n",
		stats.Summary.Present, stats.Summary.Absent, stats.Summary.Percentage)

	if len(stats.TopAbsences) > 0 {
		b.WriteString("\n🚨 Mais faltas:\n")
		for i, r := range stats.TopAbsences {
			fmt.Fprintf(&b, "%d. %s - %d\n", i+1, r.Name, r.Absences)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatTeacherStats(username string, stats *models.TeacherStats) string {
	p := stats.Progress
	filled := int(p.Fraction * 10)

	var b strings.Builder
	fmt.Fprintf(&b, "🏆 %s\n%s\n\n", username, p.RankTitle)
	fmt.Fprintf(&b, "Nível %d | %d XP\n", p.Level, p.XP)
	fmt.Fprintf(&b, "[%s%s] faltam %d XP\n\n", strings.Repeat("■", filled), strings.Repeat("□", 10-filled), p.XPToNext)
	fmt.Fprintf(&b, "👥 Alunos ativos: %d\n📚 Aulas dadas: %d\n🎁 Aulas experimentais: %d\n🧪 Em experimental: %d\n\n",
		stats.ActiveStudents, stats.ClassesGiven, stats.FreeClasses, stats.ActiveTrials)

	b.WriteString("Conquistas:\n")
	for _, a := range stats.Achievements {
		icon := "🔒"
		if a.Unlocked {
			icon = "🏅"
		}
		fmt.Fprintf(&b, "%s %s\n", icon, a.Title)
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatStudents(students []models.Student) string {
	if len(students) == 0 {
		return "👥 Nenhum aluno encontrado."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "👥 Alunos (%d):\n\n", len(students))
	for _, s := range students {
		fmt.Fprintf(&b, "• %s - %s (%s", s.Name, s.Course, s.CourseDays)
		if s.ClassTime != "" {
			fmt.Fprintf(&b, ", %s", s.ClassTime)
		}
		b.WriteString(")\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatTrials(trials []models.FreeStudent) string {
	if len(trials) == 0 {
		return "🧪 Nenhum aluno em aula experimental."
	}

	var b strings.Builder
	b.WriteString("🧪 Aulas experimentais:\n\n")
	for _, t := range trials {
		fmt.Fprintf(&b, "• %s", t.Name)
		if t.Phone != "" {
			fmt.Fprintf(&b, " 📞 %s", t.Phone)
		}
		if t.StartLesson != "" {
			fmt.Fprintf(&b, " - %s", t.StartLesson)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

var eventIcons = map[models.EventType]string{
	models.EventNotice:      "📢",
	models.EventAppointment: "📌",
	models.EventHoliday:     "🎉",
}

func formatEvents(events []models.Event) string {
	if len(events) == 0 {
		return "📅 Nenhum evento nos próximos dias."
	}

	var b strings.Builder
	b.WriteString("📅 Próximos eventos:\n\n")
	for _, e := range events {
		fmt.Fprintf(&b, "%s %s - %s\n", eventIcons[e.EventType], displayDate(e.EventDate), e.Title)
		if e.Description != "" {
			fmt.Fprintf(&b, "    %s\n", e.Description)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatBackups(backups []models.Backup) string {
	if len(backups) == 0 {
		return "💾 Nenhum backup encontrado."
	}

	var b strings.Builder
	b.WriteString("💾 Backups:\n\n")
	for _, bk := range backups {
		fmt.Fprintf(&b, "• %s (%.1f KB)\n", bk.Name, float64(bk.Size)/1024)
	}
	b.WriteString("\nPara restaurar: /restaurar <nome>")
	return b.String()
}

func formatNote(note *models.TeacherNote) string {
	if strings.TrimSpace(note.Content) == "" {
		return "📝 Bloco de notas vazio.\n\nEnvie o novo texto ou toque em ❌ Cancelar."
	}
	return fmt.Sprintf("📝 Suas anotações:\n\n%s\n\nEnvie o novo texto ou toque em ❌ Cancelar.", note.Content)
}

// displayDate turns "2024-03-04" into "04/03/2024".
func displayDate(date string) string {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return date
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0]
}

// displayMonth turns "2024-03" into "03/2024".
func displayMonth(month string) string {
	parts := strings.Split(month, "-")
	if len(parts) != 2 {
		return month
	}
	return parts[1] + "/" + parts[0]
}

// userMessage hides store internals from the chat.
func userMessage(err error) string {
	switch {
	case models.IsValidation(err):
		return err.Error()
	case models.IsNotFound(err):
		return "Registro não encontrado."
	case models.IsConstraintViolation(err):
		return "Operação não permitida pelos dados atuais."
	default:
		return "Erro interno. Tente novamente."
	}
}
