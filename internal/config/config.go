package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
)

var (
	// ErrReadConfig возвращается при ошибке чтения файла конфигурации
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig возвращается при некорректных значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	GuestRegistry GuestRegistryConfig `toml:"guest_registry"`
	Booking       BookingConfig       `toml:"booking"`
}

// ServerConfig настройки HTTP-сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // Секунды
	WriteTimeout    int `toml:"write_timeout"`    // Секунды
	IdleTimeout     int `toml:"idle_timeout"`     // Секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // Секунды
}

// DatabaseConfig настройки подключения к postgres
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // Секунды
}

// DSN строка подключения к postgres
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// GuestRegistryConfig настройки клиента внешнего реестра гостей
type GuestRegistryConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // Секунды
}

// BookingConfig бизнес-политики бронирования
type BookingConfig struct {
	// TaxRateBasisPoints ставка налога в базисных пунктах (1100 = 11%)
	TaxRateBasisPoints int `toml:"tax_rate_basis_points"`

	// AllowEarlyCheckIn разрешает заселение раньше даты заезда
	AllowEarlyCheckIn bool `toml:"allow_early_check_in"`

	// PendingBlocksAvailability учитывать ли pending-брони с заранее
	// выбранным номером как удерживающие номер
	PendingBlocksAvailability bool `toml:"pending_blocks_availability"`

	// CancellationCutoffHours запрет отмены, когда до полуночи даты заезда
	// осталось меньше указанного числа часов (0 = без ограничения)
	CancellationCutoffHours int `toml:"cancellation_cutoff_hours"`
}

// Load читает и валидирует конфигурацию из TOML-файла
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// defaultConfig конфигурация с безопасными значениями по умолчанию
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "hms-reservation-service",
		},
		GuestRegistry: GuestRegistryConfig{
			Timeout: 5,
		},
		Booking: BookingConfig{
			TaxRateBasisPoints:      domain.DefaultTaxRateBasisPoints,
			CancellationCutoffHours: domain.DefaultCancellationCutoffHours,
		},
	}
}

// validate проверяет согласованность значений конфигурации
func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port out of range: %d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database host and dbname are required", ErrInvalidConfig)
	}
	if c.Booking.TaxRateBasisPoints < 0 || c.Booking.TaxRateBasisPoints >= domain.BasisPointsDivisor {
		return fmt.Errorf("%w: booking.tax_rate_basis_points out of range: %d",
			ErrInvalidConfig, c.Booking.TaxRateBasisPoints)
	}
	if c.Booking.CancellationCutoffHours < 0 {
		return fmt.Errorf("%w: booking.cancellation_cutoff_hours must be non-negative", ErrInvalidConfig)
	}
	return nil
}
