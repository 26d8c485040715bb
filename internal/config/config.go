package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Storage drivers.
const (
	DriverFile     = "file"
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

type Config struct {
	Storage   StorageConfig   `mapstructure:"storage"`
	Clock     ClockConfig     `mapstructure:"clock"`
	Templates TemplatesConfig `mapstructure:"templates"`
	Outputs   OutputsConfig   `mapstructure:"outputs"`
}

type StorageConfig struct {
	Driver        string         `mapstructure:"driver" validate:"oneof=file memory sqlite mysql postgres"`
	FilePath      string         `mapstructure:"file_path" validate:"required_if=Driver file"`
	SQLitePath    string         `mapstructure:"sqlite_path" validate:"required_if=Driver sqlite"`
	Table         string         `mapstructure:"table" validate:"required"`
	WriteAttempts uint           `mapstructure:"write_attempts" validate:"min=1,max=10"`
	RetryDelayMs  int            `mapstructure:"retry_delay_ms" validate:"min=0"`
	MySQL         DatabaseConfig `mapstructure:"mysql"`
	Postgres      PostgresConfig `mapstructure:"postgres"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

type PostgresConfig struct {
	DSN string `mapstructure:"dsn"`
}

type ClockConfig struct {
	Timezone string `mapstructure:"timezone" validate:"timezone"`
}

// Location resolves Timezone. It is only called after validation.
func (c ClockConfig) Location() (*time.Location, error) {
	return ParseLocation(c.Timezone)
}

type TemplatesConfig struct {
	ProgressReportTemplate string `mapstructure:"progress_report_template" validate:"omitempty,file"`
}

type OutputsConfig struct {
	ReportDirectory string `mapstructure:"report_directory"`
}

// RetryDelay returns the wait between storage write attempts.
func (c StorageConfig) RetryDelay() time.Duration {
	return time.Duration(c.RetryDelayMs) * time.Millisecond
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/hafiz")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

// Load is a shortcut of NewConfigLoader(configFile).Load().
func Load(configFile string) (*Config, error) {
	loader, err := NewConfigLoader(configFile)
	if err != nil {
		return nil, err
	}
	return loader.Load()
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("storage.driver", DriverFile)
	v.SetDefault("storage.file_path", filepath.Join("hafiz", "hifz.yml"))
	v.SetDefault("storage.sqlite_path", filepath.Join("hafiz", "hifz.db"))
	v.SetDefault("storage.table", "kv_store")
	v.SetDefault("storage.write_attempts", 2)
	v.SetDefault("storage.retry_delay_ms", 100)
	v.SetDefault("storage.mysql.host", "localhost")
	v.SetDefault("storage.mysql.port", 3306)
	v.SetDefault("storage.mysql.database", "hafiz")
	v.SetDefault("storage.mysql.username", "user")
	v.SetDefault("clock.timezone", "Local")
	// Template is optional - if not specified, will use embedded fallback template
	v.SetDefault("templates.progress_report_template", "")
	v.SetDefault("outputs.report_directory", filepath.Join("outputs", "reports"))

	// Secrets come from environment variables only
	if err := v.BindEnv("storage.mysql.password", "HAFIZ_DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind HAFIZ_DB_PASSWORD environment variable: %w", err)
	}
	if err := v.BindEnv("storage.postgres.dsn", "HAFIZ_POSTGRES_DSN"); err != nil {
		return nil, fmt.Errorf("failed to bind HAFIZ_POSTGRES_DSN environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return nil, fmt.Errorf("failed to validate configuration: %w", err)
		}
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
