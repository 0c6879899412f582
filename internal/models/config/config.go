package config

// AppConfig is populated by Load.
var AppConfig *Config

// Config is the application configuration.
type Config struct {
	Environment string
	LogLevel    string
	Database    DatabaseConfig
	Reports     ReportsConfig
	Backup      BackupConfig
	Bot         BotConfig
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

type ReportsConfig struct {
	Dir string
}

type BackupConfig struct {
	Dir      string
	Schedule string // cron spec, empty disables scheduled backups
	Keep     int    // 0 keeps every snapshot
}

type BotConfig struct {
	Enabled  bool
	Token    string
	Debug    bool
	AdminIDs []int64 // Telegram users allowed to log in, empty allows anyone with credentials
}
