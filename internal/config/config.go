// Package config предоставялет структуры и функцию для парсинга и загрузки конфига
package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	// EnvLocal: локальный запуск, подробные логи.
	EnvLocal = "local"
	// EnvDev: тестовый стенд.
	EnvDev = "dev"
	// EnvProd: продакшн, JSON-логи.
	EnvProd = "prod"

	// DriverMemory: хранилище в памяти процесса.
	DriverMemory = "memory"
	// DriverPostgres: хранилище в PostgreSQL.
	DriverPostgres = "postgres"
)

// Config общая структура для хранения настроек
type Config struct {
	Env             string `yaml:"env" env:"ENV" env-default:"local"`
	Storage         `yaml:"storage"`
	RedisConnection `yaml:"redis_connection"`
	HTTPServer      `yaml:"http_server"`
	JWTToken        `yaml:"jwttoken"`
	RabbitMQ        `yaml:"rabbitmq"`
	Notifier        `yaml:"notifier"`
	Seed            `yaml:"seed"`
}

// Storage структура для выбора и настройки хранилища
type Storage struct {
	Driver                  string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"memory"`
	StorageConnectionString string `yaml:"storage_connection_string" env:"STORAGE_CONNECTION_STRING"`
	MigrationsPath          string `yaml:"migrations_path" env:"MIGRATIONS_PATH" env-default:"./migrations"`
}

// HTTPServer структура для настройки сервера
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env:"HTTP_ADDRESS" env-default:":8080"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env-default:"10s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
	RateLimit   float64       `yaml:"rate_limit" env-default:"20"`
	RateBurst   int           `yaml:"rate_burst" env-default:"40"`

	// TrustProxyHeaders включает X-Forwarded-For и X-Real-IP. Только за своим прокси.
	TrustProxyHeaders bool `yaml:"trust_proxy_headers" env:"HTTP_TRUST_PROXY_HEADERS"`
}

// RedisConnection структура для настройки подключения к redis.
// Пустой адрес означает кеш в памяти процесса.
type RedisConnection struct {
	AddressRedis string        `yaml:"addressredis" env:"REDIS_ADDRESS"`
	Password     string        `yaml:"password" env:"REDIS_PASSWORD"`
	User         string        `yaml:"user"`
	DB           int           `yaml:"db"`
	MaxRetries   int           `yaml:"max_retries"`
	DialTimeout  time.Duration `yaml:"dial_timeout"`
	TimeoutRedis time.Duration `yaml:"timeoutredis"`
}

// JWTToken структура для работы с jwt-токеном
type JWTToken struct {
	JWTSecretKey string        `yaml:"jwt_secret_key" env:"JWT_SECRET_KEY"`
	TokenTTL     time.Duration `yaml:"token_ttl" env-default:"24h"`
}

// RabbitMQ структура для подключения к брокеру сообщений
type RabbitMQ struct {
	RabbitMQURL        string        `yaml:"url" env:"RABBITMQ_URL"`
	RabbitMQMaxRetries int           `yaml:"max_retries" env-default:"5"`
	RabbitMQRetryDelay time.Duration `yaml:"retry_delay" env-default:"2s"`
}

// Notifier настройки процесса уведомлений об истекающих членствах
type Notifier struct {
	Interval time.Duration `yaml:"interval" env-default:"1h"`
	Window   time.Duration `yaml:"window" env-default:"24h"`
}

// Seed учётные данные администратора для первичного наполнения
type Seed struct {
	AdminUsername string `yaml:"admin_username" env:"SEED_ADMIN_USERNAME"`
	AdminPassword string `yaml:"admin_password" env:"SEED_ADMIN_PASSWORD"`
	AdminEmail    string `yaml:"admin_email" env:"SEED_ADMIN_EMAIL"`
	OnStartup     bool   `yaml:"on_startup" env:"SEED_ON_STARTUP"`
}

// MustLoad функция для загрузки конфига по пути из CONFIG_PATH, завершает процесс при ошибке
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return cfg
}

// Load читает конфиг из файла и переменных окружения и проверяет его.
func Load(configPath string) (*Config, error) {
	const op = "config.Load"

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: file %s does not exist", op, configPath)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &cfg, nil
}

// Validate проверяет согласованность настроек.
func (c *Config) Validate() error {
	switch c.Driver {
	case DriverMemory:
	case DriverPostgres:
		if c.StorageConnectionString == "" {
			return fmt.Errorf("storage_connection_string is required for driver %q", c.Driver)
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Driver)
	}
	if c.JWTSecretKey == "" {
		return fmt.Errorf("jwt_secret_key is required")
	}
	return nil
}

// HasSeedAdmin сообщает, заданы ли учётные данные администратора.
func (s Seed) HasSeedAdmin() bool {
	return s.AdminUsername != "" && s.AdminPassword != "" && s.AdminEmail != ""
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"Storage:\n"+
			"  Driver: %s\n"+
			"  MigrationsPath: %s\n"+
			"RedisConnection:\n"+
			"  Addr: %s\n"+
			"  DB: %d\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"JWTToken:\n"+
			"  TokenTTL: %s\n"+
			"Notifier:\n"+
			"  Interval: %s\n"+
			"  Window: %s\n",
		c.Env,
		c.Driver,
		c.MigrationsPath,
		c.AddressRedis,
		c.DB,
		c.AddressHTTP,
		c.TimeoutHTTP,
		c.IdleTimeout,
		c.TokenTTL,
		c.Interval,
		c.Window,
	)
}
