package bot

import (
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"go.uber.org/zap"

	"student-control/internal/models"
)

func (b *Bot) handleMessage(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	b.log.Debug("message received",
		zap.String("from", message.From.UserName),
		zap.Int64("chat_id", chatID),
	)

	if !b.allowed(int64(message.From.ID)) {
		b.sendMessage(chatID, "⛔ Acesso negado.")
		return
	}

	session := b.getOrCreateSession(chatID)

	if !session.loggedIn() {
		b.handleLogin(chatID, session, message)
		return
	}

	// a flow in progress owns the next message
	if session.State != StateDefault {
		if message.Text == btnCancel {
			b.resetSession(chatID)
			b.sendMainMenu(chatID, "Operação cancelada.")
			return
		}

		switch session.State {
		case StateSelectingStudent:
			b.handleStudentSelection(chatID, session, message.Text)
			return
		case StateSelectingStatus:
			b.handleStatusSelection(chatID, session, message.Text)
			return
		case StateEditingNote:
			b.handleNoteInput(chatID, message.Text)
			return
		case StateSelectingReport:
			b.handleReportSelection(chatID, message.Text)
			return
		}
	}

	if message.IsCommand() {
		switch message.Command() {
		case "start", "menu":
			b.sendMainMenu(chatID, fmt.Sprintf("Olá, %s! Escolha uma opção:", session.User.Username))
		case "hoje":
			b.showToday(chatID)
		case "semana":
			b.showWeek(chatID)
		case "alunos":
			b.showStudents(chatID, message.CommandArguments())
		case "experimentais":
			b.showTrials(chatID)
		case "backups":
			b.showBackups(chatID)
		case "restaurar":
			b.handleRestore(chatID, strings.TrimSpace(message.CommandArguments()))
		case "sair":
			b.handleLogout(chatID)
		default:
			b.sendMainMenu(chatID, "Comando desconhecido. Escolha uma opção:")
		}
		return
	}

	switch message.Text {
	case btnToday:
		b.showToday(chatID)
	case btnMark:
		b.handleMarkAttendance(chatID)
	case btnWeek:
		b.showWeek(chatID)
	case btnMonth:
		b.showMonth(chatID)
	case btnProfile:
		b.showProfile(chatID, session.User)
	case btnNote:
		b.handleNote(chatID)
	case btnEvents:
		b.showEvents(chatID)
	case btnReports:
		b.handleReports(chatID)
	case btnBackup:
		b.handleBackup(chatID)
	case btnBackups:
		b.showBackups(chatID)
	case btnLogout:
		b.handleLogout(chatID)
	default:
		b.sendMainMenu(chatID, "Escolha uma opção:")
	}
}

func (b *Bot) handleLogin(chatID int64, session *UserSession, message *tgbotapi.Message) {
	switch session.State {
	case StateAwaitingUsername:
		session.Username = strings.TrimSpace(message.Text)
		session.State = StateAwaitingPassword
		b.sendMessage(chatID, "🔑 Senha:")

	case StateAwaitingPassword:
		// keep the password out of the chat history
		if _, err := b.api.DeleteMessage(tgbotapi.NewDeleteMessage(chatID, message.MessageID)); err != nil {
			b.log.Debug("password message not deleted", zap.Error(err))
		}

		user, err := b.services.UserService.Login(session.Username, message.Text)
		if err != nil {
			b.log.Info("bot login failed", zap.String("username", session.Username), zap.Error(err))
			session.State = StateAwaitingUsername
			session.Username = ""
			b.sendMessage(chatID, "❌ Usuário ou senha inválidos.\n\n👤 Usuário:")
			return
		}

		session.User = user
		session.State = StateDefault
		session.Username = ""
		b.log.Info("bot login", zap.String("username", user.Username), zap.Int64("chat_id", chatID))
		b.sendMainMenu(chatID, fmt.Sprintf("👋 Bem-vindo, %s!", user.Username))

	default:
		has, err := b.services.UserService.HasUsers()
		if err != nil {
			b.sendError(chatID, err)
			return
		}
		if !has {
			b.sendMessage(chatID, "Nenhum usuário cadastrado. Crie um com: admin createuser -username <nome>")
			return
		}
		session.State = StateAwaitingUsername
		b.sendMessage(chatID, "🎓 Controle de Alunos\n\n👤 Usuário:")
	}
}

func (b *Bot) handleLogout(chatID int64) {
	b.logout(chatID)
	msg := tgbotapi.NewMessage(chatID, "👋 Sessão encerrada. Envie /start para entrar novamente.")
	msg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	b.send(msg)
}

func (b *Bot) showToday(chatID int64) {
	summary, err := b.services.ScheduleService.GetDailySummary(time.Now())
	if err != nil {
		b.sendError(chatID, err)
		return
	}
	b.sendMainMenu(chatID, formatDailySummary(summary))
}

func (b *Bot) handleMarkAttendance(chatID int64) {
	now := time.Now()
	entries, err := b.services.ScheduleService.GetDailySchedule(now)
	if err != nil {
		b.sendError(chatID, err)
		return
	}
	if len(entries) == 0 {
		b.sendMainMenu(chatID, "Nenhum aluno agendado para hoje.")
		return
	}

	session := b.getOrCreateSession(chatID)
	session.Date = now
	session.DailyEntries = entries
	session.State = StateSelectingStudent

	msg := tgbotapi.NewMessage(chatID, "Escolha o aluno:")
	msg.ReplyMarkup = createStudentsKeyboard(entries)
	b.send(msg)
}

func (b *Bot) handleStudentSelection(chatID int64, session *UserSession, text string) {
	idx := parseSelection(text, len(session.DailyEntries))
	if idx < 0 {
		b.sendMessage(chatID, "Escolha um aluno da lista.")
		return
	}

	entry := session.DailyEntries[idx]
	session.SelectedStudentID = entry.StudentID
	session.State = StateSelectingStatus

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("%s: presente ou falta?", entry.Name))
	msg.ReplyMarkup = createStatusKeyboard()
	b.send(msg)
}

func (b *Bot) handleStatusSelection(chatID int64, session *UserSession, text string) {
	var present bool
	switch text {
	case btnPresent:
		present = true
	case btnAbsent:
		present = false
	default:
		b.sendMessage(chatID, "Escolha ✅ Presente ou ❌ Falta.")
		return
	}

	date := session.Date.Format(models.DateLayout)
	note, err := b.services.AttendanceService.GetNote(session.SelectedStudentID, date)
	if err != nil {
		b.log.Warn("attendance note not loaded", zap.Error(err))
	}

	ok := b.services.AttendanceService.MarkAttendance(session.SelectedStudentID, date, present, note)
	b.resetSession(chatID)
	if !ok {
		b.sendMainMenu(chatID, "❌ Não foi possível registrar a presença.")
		return
	}
	b.showToday(chatID)
}

func (b *Bot) showWeek(chatID int64) {
	preview, err := b.services.ScheduleService.GetWeekPreview()
	if err != nil {
		b.sendError(chatID, err)
		return
	}
	b.sendMainMenu(chatID, preview)
}

func (b *Bot) showStudents(chatID int64, query string) {
	students, err := b.services.StudentService.Search(query)
	if err != nil {
		b.sendError(chatID, err)
		return
	}
	b.sendMainMenu(chatID, formatStudents(students))
}

func (b *Bot) showTrials(chatID int64) {
	trials, err := b.services.FreeStudentService.GetAll(true)
	if err != nil {
		b.sendError(chatID, err)
		return
	}
	b.sendMainMenu(chatID, formatTrials(trials))
}

func (b *Bot) showMonth(chatID int64) {
	now := time.Now()
	stats, err := b.services.AttendanceService.GetMonthlyStats(now.Year(), now.Month())
	if err != nil {
		b.sendError(chatID, err)
		return
	}
	b.sendMainMenu(chatID, formatMonthlyStats(stats))
}

func (b *Bot) showProfile(chatID int64, user *models.User) {
	stats, err := b.services.GamificationService.GetTeacherStats()
	if err != nil {
		b.sendError(chatID, err)
		return
	}
	b.sendMainMenu(chatID, formatTeacherStats(user.Username, stats))
}

func (b *Bot) handleNote(chatID int64) {
	note, err := b.services.TeacherNoteService.GetNote()
	if err != nil {
		b.sendError(chatID, err)
		return
	}

	b.getOrCreateSession(chatID).State = StateEditingNote
	msg := tgbotapi.NewMessage(chatID, formatNote(note))
	msg.ReplyMarkup = createCancelKeyboard()
	b.send(msg)
}

func (b *Bot) handleNoteInput(chatID int64, text string) {
	b.resetSession(chatID)
	if err := b.services.TeacherNoteService.SaveNote(text); err != nil {
		b.sendError(chatID, err)
		return
	}
	b.sendMainMenu(chatID, "✅ Anotações salvas.")
}

func (b *Bot) showEvents(chatID int64) {
	events, err := b.services.EventService.GetUpcoming(7)
	if err != nil {
		b.sendError(chatID, err)
		return
	}
	b.sendMainMenu(chatID, formatEvents(events))
}

func (b *Bot) handleReports(chatID int64) {
	b.getOrCreateSession(chatID).State = StateSelectingReport
	msg := tgbotapi.NewMessage(chatID, "📄 Qual relatório?")
	msg.ReplyMarkup = createReportsKeyboard()
	b.send(msg)
}

func (b *Bot) handleReportSelection(chatID int64, text string) {
	kind, ok := reportButtons[text]
	if !ok {
		b.sendMessage(chatID, "Escolha um relatório da lista.")
		return
	}
	b.resetSession(chatID)

	path, err := b.services.ReportService.Generate(kind, models.FormatPDF, time.Now())
	if err != nil {
		b.sendError(chatID, err)
		return
	}

	doc := tgbotapi.NewDocumentUpload(chatID, path)
	doc.ReplyMarkup = createMainKeyboard()
	b.send(doc)
}

func (b *Bot) handleBackup(chatID int64) {
	backup, err := b.services.BackupService.Create()
	if err != nil {
		b.sendError(chatID, err)
		return
	}
	b.sendMainMenu(chatID, "💾 Backup criado: "+backup.Name)
}

func (b *Bot) showBackups(chatID int64) {
	backups, err := b.services.BackupService.List()
	if err != nil {
		b.sendError(chatID, err)
		return
	}
	b.sendMainMenu(chatID, formatBackups(backups))
}

func (b *Bot) handleRestore(chatID int64, name string) {
	if name == "" {
		b.sendMessage(chatID, "Uso: /restaurar <nome do backup>")
		return
	}
	if err := b.services.BackupService.Restore(name); err != nil {
		b.sendError(chatID, err)
		return
	}
	b.sendMainMenu(chatID, "♻️ Banco restaurado de "+name)
}

func (b *Bot) sendMainMenu(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = createMainKeyboard()
	b.send(msg)
}

func (b *Bot) sendMessage(chatID int64, text string) {
	b.send(tgbotapi.NewMessage(chatID, text))
}

func (b *Bot) sendError(chatID int64, err error) {
	b.log.Error("bot request failed", zap.Int64("chat_id", chatID), zap.Error(err))
	b.sendMainMenu(chatID, "❌ "+userMessage(err))
}

func (b *Bot) send(c tgbotapi.Chattable) {
	if _, err := b.api.Send(c); err != nil {
		b.log.Warn("telegram send failed", zap.Error(err))
	}
}
