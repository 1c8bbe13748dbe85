package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	ErrMissingEnvironmentVariables = errors.New("missing required environment variables")
	ErrUnknownScoresDriver         = errors.New("unknown scores driver")
	ErrInvalidLimit                = errors.New("invalid limit")
)

// Supported score storage drivers.
const (
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env      string `mapstructure:"env"`       // current application environment (local, dev, production etc)
	LogLevel string `mapstructure:"log_level"` // zap level used outside production
	Quiz     Quiz   `mapstructure:"quiz"`      // question source and prompt rules
	Scores   Scores `mapstructure:"scores"`    // where final scores are persisted
	DB       DB     `mapstructure:"database"`  // postgres configuration section
}

// Quiz configures the question source and the name prompt.
type Quiz struct {
	QuestionsPath string `mapstructure:"questions_path"`  // path to the CSV/YAML/JSON question source
	NameMaxLength int    `mapstructure:"name_max_length"` // maximum display name length in characters
}

// Scores configures score persistence.
type Scores struct {
	Driver      string `mapstructure:"driver"`       // file, sqlite, postgres or memory
	Path        string `mapstructure:"path"`         // score file for the file driver
	ColumnWidth int    `mapstructure:"column_width"` // name column width in the score file
	SQLiteDSN   string `mapstructure:"sqlite_dsn"`   // DSN for the sqlite driver
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// Load reads configuration from the default locations.
func Load() (*Config, error) {
	return LoadFrom("./config", ".env")
}

// LoadFrom reads configuration from config.yaml in configDir, an optional dotenv file
// and environment variables.
func LoadFrom(configDir, dotenvPath string) (*Config, error) {
	// Populate the process environment from the dotenv file if present.
	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error loading %s: %w", dotenvPath, err)
		}
	}

	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("log_level", "warn")
	v.SetDefault("quiz.questions_path", "questions.csv")
	v.SetDefault("quiz.name_max_length", 10)
	v.SetDefault("scores.driver", DriverFile)
	v.SetDefault("scores.path", "scores.txt")
	v.SetDefault("scores.column_width", 12)
	v.SetDefault("scores.sqlite_dsn", "file:scores.db?cache=shared&mode=rwc&_pragma=busy_timeout(5000)")
	v.SetDefault("database.max_connections", 4)
	v.SetDefault("database.max_conn_lifetime", "30s")

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Load sensitive values from environment variables.
	cfg.DB.URL = v.GetString("database_url")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that the configuration can drive a quiz run.
func (c *Config) Validate() error {
	if c.Quiz.NameMaxLength <= 0 {
		return fmt.Errorf("quiz.name_max_length: %w", ErrInvalidLimit)
	}
	if c.Scores.ColumnWidth <= 0 {
		return fmt.Errorf("scores.column_width: %w", ErrInvalidLimit)
	}
	if c.DB.MaxConnections <= 0 || c.DB.MaxConnections > math.MaxInt32 {
		return fmt.Errorf("database.max_connections: %w", ErrInvalidLimit)
	}

	switch c.Scores.Driver {
	case DriverFile, DriverSQLite, DriverMemory:
	case DriverPostgres:
		if _, err := c.DB.DSN(); err != nil {
			return fmt.Errorf("postgres scores driver: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownScoresDriver, c.Scores.Driver)
	}

	return nil
}
