package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"stable_backend/pkg/utils"
)

// Config is the full runtime configuration of the server.
type Config struct {
	Port      string          `yaml:"port"`
	Database  DatabaseConfig  `yaml:"database"`
	CORS      CORSConfig      `yaml:"cors"`
	Auth      AuthConfig      `yaml:"auth"`
	Dashboard DashboardConfig `yaml:"dashboard"`
	Display   DisplayConfig   `yaml:"display"`
	Log       LogConfig       `yaml:"log"`
}

type DatabaseConfig struct {
	Host        string `yaml:"host"`
	Port        string `yaml:"port"`
	User        string `yaml:"user"`
	Password    string `yaml:"password"`
	Name        string `yaml:"name"`
	SSLMode     string `yaml:"sslmode"`
	AutoMigrate bool   `yaml:"auto_migrate"`
}

// DSN builds the lib/pq connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// AuthConfig configures the shared-password gate.
// SharedPasswordHash (bcrypt) wins over SharedPassword when both are set.
type AuthConfig struct {
	SharedPassword     string        `yaml:"shared_password"`
	SharedPasswordHash string        `yaml:"shared_password_hash"`
	SessionSecret      string        `yaml:"session_secret"`
	SessionTTL         time.Duration `yaml:"session_ttl"`
}

// DashboardConfig holds the constants the statistics are measured against.
type DashboardConfig struct {
	StallCapacity   int     `yaml:"stall_capacity"`
	MaxMonthlyHours float64 `yaml:"max_monthly_hours"`
}

type DisplayConfig struct {
	Locale string `yaml:"locale"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Port: "8080",
		Database: DatabaseConfig{
			Host:        "localhost",
			Port:        "5432",
			User:        "stable_user",
			Password:    "stable_password",
			Name:        "stable_db",
			SSLMode:     "disable",
			AutoMigrate: true,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"http://localhost:3000", "http://localhost:3001"},
		},
		Auth: AuthConfig{
			SessionTTL: 30 * 24 * time.Hour,
		},
		Dashboard: DashboardConfig{
			StallCapacity:   20,
			MaxMonthlyHours: 40,
		},
		Display: DisplayConfig{Locale: "et"},
		Log:     LogConfig{Level: "info", Format: "console"},
	}
}

// Load builds the configuration: defaults, then the YAML file at path (if it exists),
// then environment variables. A .env file in the working directory is loaded first.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		utils.LogWarn("Could not load .env file", map[string]interface{}{"error": err.Error()})
	}

	cfg := Default()

	if path != "" {
		content, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(content, cfg); err != nil {
				return nil, fmt.Errorf("could not parse config file %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
			utils.LogDebug("Config file not found, using defaults and environment", map[string]interface{}{"path": path})
		default:
			return nil, fmt.Errorf("could not read config file %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.Port = utils.Getenv("PORT", cfg.Port)

	cfg.Database.Host = utils.Getenv("DB_HOST", cfg.Database.Host)
	cfg.Database.Port = utils.Getenv("DB_PORT", cfg.Database.Port)
	cfg.Database.User = utils.Getenv("DB_USER", cfg.Database.User)
	cfg.Database.Password = utils.Getenv("DB_PASSWORD", cfg.Database.Password)
	cfg.Database.Name = utils.Getenv("DB_NAME", cfg.Database.Name)
	cfg.Database.SSLMode = utils.Getenv("DB_SSLMODE", cfg.Database.SSLMode)
	cfg.Database.AutoMigrate = utils.GetenvBool("DB_AUTO_MIGRATE", cfg.Database.AutoMigrate)

	cfg.CORS.AllowedOrigins = utils.GetenvList("CORS_ALLOWED_ORIGINS", cfg.CORS.AllowedOrigins)

	cfg.Auth.SharedPassword = utils.Getenv("SHARED_PASSWORD", cfg.Auth.SharedPassword)
	cfg.Auth.SharedPasswordHash = utils.Getenv("SHARED_PASSWORD_HASH", cfg.Auth.SharedPasswordHash)
	cfg.Auth.SessionSecret = utils.Getenv("SESSION_SECRET", cfg.Auth.SessionSecret)
	cfg.Auth.SessionTTL = utils.GetenvDuration("SESSION_TTL", cfg.Auth.SessionTTL)

	cfg.Dashboard.StallCapacity = utils.GetenvInt("STALL_CAPACITY", cfg.Dashboard.StallCapacity)
	cfg.Dashboard.MaxMonthlyHours = utils.GetenvFloat("MAX_MONTHLY_HOURS", cfg.Dashboard.MaxMonthlyHours)

	cfg.Display.Locale = utils.Getenv("DISPLAY_LOCALE", cfg.Display.Locale)

	cfg.Log.Level = utils.Getenv("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = utils.Getenv("LOG_FORMAT", cfg.Log.Format)
}

// Validate rejects configurations the server cannot run with.
func (c *Config) Validate() error {
	if c.Auth.SharedPassword == "" && c.Auth.SharedPasswordHash == "" {
		return errors.New("config: SHARED_PASSWORD or SHARED_PASSWORD_HASH must be set")
	}
	if len(c.Auth.SessionSecret) < 16 {
		return errors.New("config: SESSION_SECRET must be at least 16 characters")
	}
	if c.Auth.SessionTTL <= 0 {
		return errors.New("config: SESSION_TTL must be positive")
	}
	if c.Dashboard.StallCapacity < 0 {
		return errors.New("config: STALL_CAPACITY cannot be negative")
	}
	if c.Dashboard.MaxMonthlyHours < 0 {
		return errors.New("config: MAX_MONTHLY_HOURS cannot be negative")
	}
	return nil
}
