package backup_service

import (
	"context"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"student-control/internal/service"
)

// Scheduler takes backups on a cron spec, skipping a run while the previous one is busy.
type Scheduler struct {
	cron    *cron.Cron
	backups service.BackupService
	log     *zap.Logger
}

func NewScheduler(spec string, backups service.BackupService, log *zap.Logger) (*Scheduler, error) {
	clog := cronLogger{log.Sugar()}
	c := cron.New(
		cron.WithLogger(clog),
		cron.WithChain(cron.Recover(clog), cron.SkipIfStillRunning(clog)),
	)

	s := &Scheduler{cron: c, backups: backups, log: log}
	if _, err := c.AddFunc(spec, s.run); err != nil {
		return nil, errors.Wrapf(err, "invalid backup schedule %q", spec)
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("⏰ backup scheduler started")
}

// Stop waits for a running backup to finish or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) error {
	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) run() {
	if _, err := s.backups.Create(); err != nil {
		s.log.Error("scheduled backup failed", zap.Error(err))
	}
}

type cronLogger struct {
	log *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Errorw(msg, append(keysAndValues, "error", err)...)
}
