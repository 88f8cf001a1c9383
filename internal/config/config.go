package config

import (
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-BarberAgenda/internal/agenda"
	"github.com/m04kA/SMC-BarberAgenda/internal/domain"
	"github.com/m04kA/SMC-BarberAgenda/pkg/types"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Redis    RedisConfig    `toml:"redis"`
	Cache    CacheConfig    `toml:"cache"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Shop     ShopConfig     `toml:"shop"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`

	// Лимит запросов на пользователя (X-User-ID) или IP
	RateLimitRPS   float64 `toml:"rate_limit_rps"`
	RateLimitBurst int     `toml:"rate_limit_burst"`
}

// DatabaseConfig параметры подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// RedisConfig параметры подключения к Redis. Enabled=false - кэш выключен.
type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Address  string `toml:"address"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// CacheConfig параметры кэша записей дня
type CacheConfig struct {
	SnapshotTTL int `toml:"snapshot_ttl"` // секунды
}

// SnapshotTTLDuration TTL снимка записей дня
func (c CacheConfig) SnapshotTTLDuration() time.Duration {
	return time.Duration(c.SnapshotTTL) * time.Second
}

// LogsConfig параметры логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig параметры prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// ShopConfig часовой пояс салона и окна работы по дням недели
type ShopConfig struct {
	Timezone string         `toml:"timezone"`
	Windows  []WindowConfig `toml:"windows"`
}

// WindowConfig окно работы [open, close) для перечисленных дней недели
type WindowConfig struct {
	Days  []string `toml:"days"` // monday..sunday
	Open  string   `toml:"open"`
	Close string   `toml:"close"`
}

// Location загружает часовой пояс салона
func (s ShopConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: shop.timezone %q: %v", ErrInvalidConfig, s.Timezone, err)
	}
	return loc, nil
}

// ShopHours собирает окна работы салона по дням недели
func (s ShopConfig) ShopHours() (agenda.ShopHours, error) {
	windows := make(map[time.Weekday]agenda.Window)
	for _, w := range s.Windows {
		for _, day := range w.Days {
			weekday, err := domain.ParseWeekday(day)
			if err != nil {
				return agenda.ShopHours{}, fmt.Errorf("%w: shop.windows: %v", ErrInvalidConfig, err)
			}
			tw, _ := weekday.TimeWeekday()
			windows[tw] = agenda.Window{Open: types.TimeString(w.Open), Close: types.TimeString(w.Close)}
		}
	}

	hours, err := agenda.NewShopHours(windows)
	if err != nil {
		return agenda.ShopHours{}, fmt.Errorf("%w: shop.windows: %v", ErrInvalidConfig, err)
	}
	return hours, nil
}

// Load читает конфигурацию из TOML файла и применяет значения по умолчанию
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Parse разбирает конфигурацию из строки (используется в тестах)
func Parse(data string) (*Config, error) {
	var cfg Config
	if _, err := toml.Decode(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadConfig, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Переменные окружения (в том числе из .env) переопределяют секреты из файла
const (
	envDatabasePassword = "AGENDA_DB_PASSWORD"
	envRedisPassword    = "AGENDA_REDIS_PASSWORD"
)

func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv(envDatabasePassword); ok {
		c.Database.Password = v
	}
	if v, ok := os.LookupEnv(envRedisPassword); ok {
		c.Redis.Password = v
	}
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 15
	}
	if c.Server.RateLimitRPS == 0 {
		c.Server.RateLimitRPS = 20
	}
	if c.Server.RateLimitBurst == 0 {
		c.Server.RateLimitBurst = 40
	}

	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.Redis.Address == "" {
		c.Redis.Address = "localhost:6379"
	}
	if c.Cache.SnapshotTTL == 0 {
		c.Cache.SnapshotTTL = 600
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "barber-agenda"
	}

	if c.Shop.Timezone == "" {
		c.Shop.Timezone = "UTC"
	}
	if len(c.Shop.Windows) == 0 {
		c.Shop.Windows = []WindowConfig{
			{Days: []string{"monday", "tuesday", "wednesday"}, Open: "11:00", Close: "21:30"},
			{Days: []string{"thursday", "friday", "saturday", "sunday"}, Open: "09:00", Close: "22:00"},
		}
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort < 1 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d out of range", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Server.RateLimitRPS < 0 || c.Server.RateLimitBurst < 0 {
		return fmt.Errorf("%w: server rate limit must not be negative", ErrInvalidConfig)
	}
	if c.Cache.SnapshotTTL < 0 {
		return fmt.Errorf("%w: cache.snapshot_ttl must not be negative", ErrInvalidConfig)
	}
	if _, err := c.Shop.Location(); err != nil {
		return err
	}

	if _, err := c.Shop.ShopHours(); err != nil {
		return err
	}

	seen := make(map[string]bool)
	for _, w := range c.Shop.Windows {
		for _, day := range w.Days {
			if seen[day] {
				return fmt.Errorf("%w: shop.windows: day %q listed twice", ErrInvalidConfig, day)
			}
			seen[day] = true
		}
	}

	return nil
}
