package app

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"student-control/internal/bot"
	"student-control/internal/logger"
	"student-control/internal/models/config"
	"student-control/internal/repository/attendance"
	"student-control/internal/repository/event"
	"student-control/internal/repository/free_attendance"
	"student-control/internal/repository/free_student"
	"student-control/internal/repository/student"
	"student-control/internal/repository/teacher_note"
	"student-control/internal/repository/user"
	"student-control/internal/service"
	attendance_service "student-control/internal/service/attendance"
	backup_service "student-control/internal/service/backup"
	event_service "student-control/internal/service/event"
	free_student_service "student-control/internal/service/free_student"
	gamification_service "student-control/internal/service/gamification"
	promotion_service "student-control/internal/service/promotion"
	report_service "student-control/internal/service/report"
	schedule_service "student-control/internal/service/schedule"
	student_service "student-control/internal/service/student"
	teacher_note_service "student-control/internal/service/teacher_note"
	user_service "student-control/internal/service/user"
	database "student-control/pkg"
)

// Core provides configuration, logging, the store and every service.
var Core = fx.Options(
	fx.Provide(
		NewConfig,
		logger.New,
		NewDB,
	),
	fx.Provide(
		user.NewUserRepository,
		student.NewStudentRepository,
		free_student.NewFreeStudentRepository,
		attendance.NewAttendanceRepository,
		free_attendance.NewFreeAttendanceRepository,
		event.NewEventRepository,
		teacher_note.NewTeacherNoteRepository,
	),
	fx.Provide(
		user_service.NewUserService,
		student_service.NewStudentService,
		free_student_service.NewFreeStudentService,
		promotion_service.NewPromotionService,
		attendance_service.NewAttendanceService,
		schedule_service.NewScheduleService,
		gamification_service.NewGamificationService,
		event_service.NewEventService,
		teacher_note_service.NewTeacherNoteService,
		NewReportService,
		NewBackupService,
	),
)

// Module is the long-running application: Core plus the bot and the backup scheduler.
var Module = fx.Options(
	Core,
	fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
		return &fxevent.ZapLogger{Logger: log}
	}),
	fx.Invoke(RegisterScheduler, RegisterBot),
)

func NewConfig() (*config.Config, error) {
	if err := config.Load(); err != nil {
		return nil, err
	}
	return config.AppConfig, nil
}

func NewDB(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (*sqlx.DB, error) {
	db, err := database.New(cfg.Database, log)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			log.Info("🗄️ closing database")
			return db.Close()
		},
	})
	return db, nil
}

func NewReportService(
	scheduleService service.ScheduleService,
	attendanceService service.AttendanceService,
	studentService service.StudentService,
	cfg *config.Config,
	log *zap.Logger,
) service.ReportService {
	return report_service.NewReportService(scheduleService, attendanceService, studentService, cfg.Reports.Dir, log)
}

func NewBackupService(cfg *config.Config, log *zap.Logger) service.BackupService {
	return backup_service.NewBackupService(cfg.Database, cfg.Backup, log)
}

// RegisterScheduler starts periodic backups when a schedule is configured.
func RegisterScheduler(lc fx.Lifecycle, cfg *config.Config, backups service.BackupService, log *zap.Logger) error {
	if cfg.Backup.Schedule == "" {
		log.Info("backup scheduler disabled")
		return nil
	}
	if cfg.Database.Driver == config.DriverPostgres {
		log.Warn("backup schedule ignored for postgres", zap.String("schedule", cfg.Backup.Schedule))
		return nil
	}

	scheduler, err := backup_service.NewScheduler(cfg.Backup.Schedule, backups, log)
	if err != nil {
		return err
	}
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			scheduler.Start()
			return nil
		},
		OnStop: scheduler.Stop,
	})
	return nil
}

// RegisterBot runs the Telegram bot for the lifetime of the application.
func RegisterBot(lc fx.Lifecycle, shutdowner fx.Shutdowner, cfg *config.Config, services bot.Services, log *zap.Logger) error {
	if !cfg.Bot.Enabled {
		log.Info("bot disabled")
		return nil
	}

	b, err := bot.NewBot(cfg.Bot, services, log)
	if err != nil {
		return err
	}
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				if err := b.Start(); err != nil {
					log.Error("❌ bot stopped", zap.Error(err))
					shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			b.Stop()
			return nil
		},
	})
	return nil
}
