package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"

	"student-control/internal/models"
)

const (
	btnToday     = "📋 Hoje"
	btnMark      = "✅ Marcar presença"
	btnWeek      = "🗓 Semana"
	btnMonth     = "📊 Mês"
	btnProfile   = "🏆 Perfil"
	btnNote      = "📝 Anotações"
	btnEvents    = "📅 Eventos"
	btnReports   = "📄 Relatórios"
	btnBackup    = "💾 Backup"
	btnBackups   = "🗂 Backups"
	btnLogout    = "🚪 Sair"
	btnCancel    = "❌ Cancelar"
	btnPresent   = "✅ Presente"
	btnAbsent    = "❌ Falta"
	btnDaily     = "Relatório diário"
	btnMonthly   = "Relatório mensal"
	btnFinancial = "Relatório financeiro"
)

var reportButtons = map[string]models.ReportKind{
	btnDaily:     models.ReportDaily,
	btnMonthly:   models.ReportMonthly,
	btnFinancial: models.ReportFinancial,
}

func createMainKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnToday),
			tgbotapi.NewKeyboardButton(btnMark),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnWeek),
			tgbotapi.NewKeyboardButton(btnMonth),
			tgbotapi.NewKeyboardButton(btnEvents),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnProfile),
			tgbotapi.NewKeyboardButton(btnNote),
			tgbotapi.NewKeyboardButton(btnReports),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnBackup),
			tgbotapi.NewKeyboardButton(btnBackups),
			tgbotapi.NewKeyboardButton(btnLogout),
		),
	)
}

func createCancelKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnCancel),
		),
	)
}

func createStudentsKeyboard(entries []models.DailyScheduleEntry) tgbotapi.ReplyKeyboardMarkup {
	var rows [][]tgbotapi.KeyboardButton

	for i, e := range entries {
		btn := tgbotapi.NewKeyboardButton(studentButton(i, e))
		rows = append(rows, tgbotapi.NewKeyboardButtonRow(btn))
	}

	rows = append(rows, tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(btnCancel)))
	return tgbotapi.NewReplyKeyboard(rows...)
}

func createStatusKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnPresent),
			tgbotapi.NewKeyboardButton(btnAbsent),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnCancel),
		),
	)
}

func createReportsKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnDaily),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnMonthly),
			tgbotapi.NewKeyboardButton(btnFinancial),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnCancel),
		),
	)
}
