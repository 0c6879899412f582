package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// DatabaseConfig describes either the local SQLite file or a Postgres server.
type DatabaseConfig struct {
	Driver   string
	Path     string
	Host     string
	Port     int
	Username string
	Password string
	Name     string
	SSLMode  string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")
	v.SetDefault("log.level", "info")
	v.SetDefault("database.driver", DriverSQLite)
	v.SetDefault("database.path", "students.db")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "students")
	v.SetDefault("database.sslmode", "")
	v.SetDefault("reports.dir", "relatorios")
	v.SetDefault("backup.dir", "backups")
	v.SetDefault("backup.schedule", "")
	v.SetDefault("backup.keep", 0)
	v.SetDefault("bot.enabled", false)
	v.SetDefault("bot.token", "")
	v.SetDefault("bot.debug", "")
	v.SetDefault("bot.admin_ids", "")
}

// Load reads the optional .env file (ENV_FILE overrides the path) and the
// environment, then validates the result.
func Load() error {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("config: load %s: %w", envFile, err)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("config: stat %s: %w", envFile, err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	env := v.GetString("app.env")
	AppConfig = &Config{
		Environment: env,
		LogLevel:    v.GetString("log.level"),
		Database: DatabaseConfig{
			Driver:   strings.ToLower(v.GetString("database.driver")),
			Path:     v.GetString("database.path"),
			Host:     v.GetString("database.host"),
			Port:     v.GetInt("database.port"),
			Username: v.GetString("database.user"),
			Password: v.GetString("database.password"),
			Name:     v.GetString("database.name"),
			SSLMode:  getSSLMode(env, v.GetString("database.sslmode")),
		},
		Reports: ReportsConfig{
			Dir: v.GetString("reports.dir"),
		},
		Backup: BackupConfig{
			Dir:      v.GetString("backup.dir"),
			Schedule: v.GetString("backup.schedule"),
			Keep:     v.GetInt("backup.keep"),
		},
		Bot: BotConfig{
			Enabled:  v.GetBool("bot.enabled"),
			Token:    v.GetString("bot.token"),
			Debug:    getBool(v.GetString("bot.debug"), env != "production"),
			AdminIDs: parseAdminIDs(v.GetString("bot.admin_ids")),
		},
	}

	return validate()
}

// validate collects every problem before failing.
func validate() error {
	var errors []string
	db := AppConfig.Database

	switch db.Driver {
	case DriverSQLite:
		if db.Path == "" {
			errors = append(errors, "DATABASE_PATH is required for sqlite")
		}
	case DriverPostgres:
		if db.Username == "" {
			errors = append(errors, "DATABASE_USER is required for postgres")
		}
		if db.Password == "" && AppConfig.IsProduction() {
			errors = append(errors, "DATABASE_PASSWORD is required in production")
		}
	default:
		errors = append(errors, fmt.Sprintf("DATABASE_DRIVER %q is not supported", db.Driver))
	}

	if AppConfig.Backup.Keep < 0 {
		errors = append(errors, "BACKUP_KEEP must not be negative")
	}

	if AppConfig.Bot.Enabled && AppConfig.Bot.Token == "" {
		errors = append(errors, "BOT_TOKEN is required when the bot is enabled")
	}

	if len(errors) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(errors, ", "))
	}

	return nil
}

func getSSLMode(env, explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env == "production" {
		return "require"
	}
	return "disable"
}

func getBool(value string, fallback bool) bool {
	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}
	return fallback
}

// parseAdminIDs parses a comma separated list, silently skipping garbage.
func parseAdminIDs(ids string) []int64 {
	if ids == "" {
		return []int64{}
	}

	var result []int64
	for _, idStr := range strings.Split(ids, ",") {
		if id, err := strconv.ParseInt(strings.TrimSpace(idStr), 10, 64); err == nil {
			result = append(result, id)
		}
	}
	return result
}
