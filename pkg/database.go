package database

import (
	"embed"
	"fmt"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"student-control/internal/models/config"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrations embed.FS

// New opens the configured store and brings its schema up to date.
func New(cfg config.DatabaseConfig, log *zap.Logger) (*sqlx.DB, error) {
	var (
		db  *sqlx.DB
		err error
	)

	switch cfg.Driver {
	case config.DriverPostgres:
		db, err = NewPostgres(cfg)
	default:
		db, err = NewSQLite(cfg.Path)
	}
	if err != nil {
		return nil, err
	}

	if err := Migrate(db, cfg.Driver, log); err != nil {
		db.Close()
		return nil, err
	}
	if cfg.Driver != config.DriverPostgres {
		// one writer at a time: every call takes the single handle and gives it back
		db.SetMaxOpenConns(1)
	}

	log.Info("🗄️ database ready", zap.String("driver", cfg.Driver), zap.String("target", describe(cfg)))
	return db, nil
}

// NewSQLite opens the database file with foreign keys enforced.
func NewSQLite(path string) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", filepath.ToSlash(path))

	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	return db, nil
}

func NewPostgres(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.Username,
		cfg.Password,
		cfg.Name,
		cfg.SSLMode,
	)

	db, err := sqlx.Connect("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return db, nil
}

// Migrate applies the embedded migrations for the driver's dialect.
func Migrate(db *sqlx.DB, driver string, log *zap.Logger) error {
	dialect, dir := "sqlite3", "migrations/sqlite"
	if driver == config.DriverPostgres {
		dialect, dir = "postgres", "migrations/postgres"
	}

	goose.SetBaseFS(migrations)
	goose.SetLogger(gooseLogger{log.Sugar()})
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	if err := goose.Up(db.DB, dir); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	return nil
}

func describe(cfg config.DatabaseConfig) string {
	if cfg.Driver == config.DriverPostgres {
		return fmt.Sprintf("%s:%d/%s", cfg.Host, cfg.Port, cfg.Name)
	}
	return cfg.Path
}

type gooseLogger struct {
	s *zap.SugaredLogger
}

func (l gooseLogger) Fatalf(format string, v ...interface{}) { l.s.Fatalf(format, v...) }
func (l gooseLogger) Printf(format string, v ...interface{}) { l.s.Debugf(format, v...) }
