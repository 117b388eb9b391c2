package config

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Config корневая конфигурация сервиса
// Загружается один раз при старте и передается в конструкторы компонентов;
// чтение настроек внутри обработчиков запрещено
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Booking  BookingConfig  `toml:"booking"`
	SMTP     SMTPConfig     `toml:"smtp"`
	Frontend FrontendConfig `toml:"frontend"`
	Admin    AdminConfig    `toml:"admin"`
	Catalog  CatalogConfig  `toml:"catalog"`
}

// ServerConfig настройки HTTP-сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN собирает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingConfig бизнес-настройки бронирования
type BookingConfig struct {
	// Окно подтверждения: сколько минут PENDING-бронирование блокирует слот
	ConfirmTokenMinutes int    `toml:"confirm_token_minutes"`
	OpenTime            string `toml:"open_time"`
	CloseTime           string `toml:"close_time"`
	SlotDurationMinutes int    `toml:"slot_duration_minutes"`
}

// ConfirmWindow возвращает окно подтверждения как time.Duration
func (b BookingConfig) ConfirmWindow() time.Duration {
	return time.Duration(b.ConfirmTokenMinutes) * time.Minute
}

// SMTPConfig настройки почтового канала
// Пустой Host означает, что канал не сконфигурирован: создание бронирования
// в этом случае завершается явной ошибкой конфигурации
type SMTPConfig struct {
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	User        string `toml:"user"`
	Password    string `toml:"password"`
	From        string `toml:"from"`
	BCCInternal string `toml:"bcc_internal"`
}

// FrontendConfig адрес клиентского SPA для ссылок подтверждения
type FrontendConfig struct {
	BaseURL string `toml:"base_url"`
}

// AdminConfig учетные данные административного доступа
type AdminConfig struct {
	Username string `toml:"username"`
	Password string `toml:"password"`
	// Ключи securecookie в base64 (hash: 32 байта, block: 16/24/32 байта)
	CookieHashKey  string `toml:"cookie_hash_key"`
	CookieBlockKey string `toml:"cookie_block_key"`
}

// DecodeCookieKeys декодирует ключи сессионной куки из base64
func (a AdminConfig) DecodeCookieKeys() (hashKey, blockKey []byte, err error) {
	hashKey, err = base64.StdEncoding.DecodeString(a.CookieHashKey)
	if err != nil {
		return nil, nil, fmt.Errorf("config: invalid admin.cookie_hash_key: %w", err)
	}
	blockKey, err = base64.StdEncoding.DecodeString(a.CookieBlockKey)
	if err != nil {
		return nil, nil, fmt.Errorf("config: invalid admin.cookie_block_key: %w", err)
	}
	return hashKey, blockKey, nil
}

// CatalogConfig настройки кэша справочника автомобилей
type CatalogConfig struct {
	CacheTTLMinutes int `toml:"cache_ttl_minutes"`
}

// CacheTTL возвращает TTL кэша как time.Duration
func (c CatalogConfig) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLMinutes) * time.Minute
}

// Load читает и валидирует конфигурацию из TOML-файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 10
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 10
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 25
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 300
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "rizza-booking-service"
	}
	if cfg.Booking.ConfirmTokenMinutes == 0 {
		cfg.Booking.ConfirmTokenMinutes = 30
	}
	if cfg.Booking.OpenTime == "" {
		cfg.Booking.OpenTime = "08:00"
	}
	if cfg.Booking.CloseTime == "" {
		cfg.Booking.CloseTime = "18:00"
	}
	if cfg.Booking.SlotDurationMinutes == 0 {
		cfg.Booking.SlotDurationMinutes = 30
	}
	if cfg.SMTP.Port == 0 {
		cfg.SMTP.Port = 587
	}
	if cfg.SMTP.From == "" {
		cfg.SMTP.From = "RIZZA <no-reply@example.com>"
	}
	if cfg.Frontend.BaseURL == "" {
		cfg.Frontend.BaseURL = "http://localhost:4200"
	}
	if cfg.Catalog.CacheTTLMinutes == 0 {
		cfg.Catalog.CacheTTLMinutes = 60
	}
}

func validate(cfg *Config) error {
	if cfg.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if cfg.Database.User == "" || cfg.Database.DBName == "" {
		return fmt.Errorf("config: database.user and database.dbname are required")
	}
	if cfg.Admin.Username == "" || cfg.Admin.Password == "" {
		return fmt.Errorf("config: admin.username and admin.password are required")
	}
	if cfg.Admin.CookieHashKey == "" || cfg.Admin.CookieBlockKey == "" {
		return fmt.Errorf("config: admin.cookie_hash_key and admin.cookie_block_key are required")
	}
	if cfg.Booking.ConfirmTokenMinutes < 1 {
		return fmt.Errorf("config: booking.confirm_token_minutes must be positive")
	}
	return nil
}
