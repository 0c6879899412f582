package bot

import (
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"student-control/internal/models/config"
	"student-control/internal/service"
)

// Services is everything the bot calls into.
type Services struct {
	fx.In

	UserService         service.UserService
	StudentService      service.StudentService
	FreeStudentService  service.FreeStudentService
	AttendanceService   service.AttendanceService
	ScheduleService     service.ScheduleService
	GamificationService service.GamificationService
	EventService        service.EventService
	TeacherNoteService  service.TeacherNoteService
	ReportService       service.ReportService
	BackupService       service.BackupService
}

type Bot struct {
	api      *tgbotapi.BotAPI
	services Services
	admins   map[int64]bool
	log      *zap.Logger

	userSessions map[int64]*UserSession // chatID -> session
	mu           sync.RWMutex
}

func NewBot(cfg config.BotConfig, services Services, log *zap.Logger) (*Bot, error) {
	if cfg.Token == "" {
		return nil, errors.New("BOT_TOKEN is not set")
	}

	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create bot API")
	}
	api.Debug = cfg.Debug

	admins := make(map[int64]bool, len(cfg.AdminIDs))
	for _, id := range cfg.AdminIDs {
		admins[id] = true
	}

	log.Info("🤖 bot initialised",
		zap.String("username", api.Self.UserName),
		zap.Bool("debug", cfg.Debug),
		zap.Int64s("admins", cfg.AdminIDs),
	)

	return &Bot{
		api:          api,
		services:     services,
		admins:       admins,
		log:          log,
		userSessions: make(map[int64]*UserSession),
	}, nil
}

// Start blocks, handling each incoming message in its own goroutine.
func (b *Bot) Start() error {
	b.log.Info("bot authorised", zap.String("username", b.api.Self.UserName))

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates, err := b.api.GetUpdatesChan(u)
	if err != nil {
		return err
	}

	for update := range updates {
		if update.Message == nil {
			continue
		}

		go b.handleMessage(update.Message)
	}

	return nil
}

func (b *Bot) Stop() {
	b.api.StopReceivingUpdates()
}

// allowed reports whether a Telegram user may use the bot; an empty list allows everyone.
func (b *Bot) allowed(telegramID int64) bool {
	return len(b.admins) == 0 || b.admins[telegramID]
}
