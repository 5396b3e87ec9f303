package config

// Config is the root configuration for channelpost.
type Config struct {
	Telegram TelegramConfig `yaml:"telegram,omitempty"`
	Store    StoreConfig    `yaml:"store,omitempty"`
	Logging  LoggingConfig  `yaml:"logging,omitempty"`
}

// TelegramConfig holds transport credentials and the admin allowlist.
type TelegramConfig struct {
	Token    string  `yaml:"token"`              // bot token; supports ${ENV_VAR} references
	Admins   []int64 `yaml:"admins"`             // user ids allowed to run privileged flows
	Channels []int64 `yaml:"channels,omitempty"` // statically configured channel ids (read-only)
}

// StoreConfig points at the SQLite database file.
type StoreConfig struct {
	Path string `yaml:"path,omitempty"` // defaults to <base>/data/channelpost.db
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level,omitempty"` // "silent" | "fatal" | "error" | "warn" | "info" | "debug" | "trace"
}
