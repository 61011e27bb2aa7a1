package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Log      LogConfig      `yaml:"log"`
	Auth     AuthConfig     `yaml:"auth"`
	Order    OrderConfig    `yaml:"order"`
}

type ServerConfig struct {
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	User            string        `yaml:"user"`
	Password        string        `yaml:"password"`
	Name            string        `yaml:"name"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	// Format is "json" or "console".
	Format string `yaml:"format"`
}

type AuthConfig struct {
	JWTSecret    string        `yaml:"jwt_secret"`
	CookieName   string        `yaml:"cookie_name"`
	CookieSecure bool          `yaml:"cookie_secure"`
	SessionTTL   time.Duration `yaml:"session_ttl"`
}

type OrderConfig struct {
	MaxRetryAttempts   int           `yaml:"max_retry_attempts"`
	CheckoutTxTimeout  time.Duration `yaml:"checkout_tx_timeout"`
	VerifyCatalogPrice bool          `yaml:"verify_catalog_price"`
	StrictTransitions  bool          `yaml:"strict_transitions"`
}

type setting struct {
	key string
	env string
	def interface{}
}

// settings maps each file key to its environment variable and default.
var settings = []setting{
	{"server.port", "SERVER_PORT", 8080},
	{"server.read_timeout", "SERVER_READ_TIMEOUT", "10s"},
	{"server.write_timeout", "SERVER_WRITE_TIMEOUT", "10s"},
	{"server.idle_timeout", "SERVER_IDLE_TIMEOUT", "30s"},
	{"server.shutdown_timeout", "SERVER_SHUTDOWN_TIMEOUT", "10s"},
	{"database.host", "DB_HOST", "localhost"},
	{"database.port", "DB_PORT", 3306},
	{"database.user", "DB_USER", "storefront"},
	{"database.password", "DB_PASSWORD", "secret"},
	{"database.name", "DB_NAME", "storefront"},
	{"database.max_open_conns", "DB_MAX_OPEN_CONNS", 25},
	{"database.max_idle_conns", "DB_MAX_IDLE_CONNS", 5},
	{"database.conn_max_lifetime", "DB_CONN_MAX_LIFETIME", "5m"},
	{"redis.addr", "REDIS_ADDR", "localhost:6379"},
	{"redis.password", "REDIS_PASSWORD", ""},
	{"redis.db", "REDIS_DB", 0},
	{"log.level", "LOG_LEVEL", "info"},
	{"log.format", "LOG_FORMAT", "json"},
	{"auth.jwt_secret", "AUTH_JWT_SECRET", "change-me"},
	{"auth.cookie_name", "AUTH_COOKIE_NAME", "storefront-admin"},
	{"auth.cookie_secure", "AUTH_COOKIE_SECURE", false},
	{"auth.session_ttl", "AUTH_SESSION_TTL", "168h"},
	{"order.max_retry_attempts", "ORDER_MAX_RETRY_ATTEMPTS", 3},
	{"order.checkout_tx_timeout", "ORDER_CHECKOUT_TX_TIMEOUT", "5s"},
	{"order.verify_catalog_price", "ORDER_VERIFY_CATALOG_PRICE", false},
	{"order.strict_transitions", "ORDER_STRICT_TRANSITIONS", false},
}

// Load resolves every setting as environment variable, then the file
// values (nested YAML keys, may be nil), then the default.
func Load(file map[string]interface{}) (*Config, error) {
	v := viper.New()
	for _, s := range settings {
		v.SetDefault(s.key, s.def)
		if err := v.BindEnv(s.key, s.env); err != nil {
			return nil, fmt.Errorf("binding %s: %w", s.env, err)
		}
	}
	if file != nil {
		if err := v.MergeConfigMap(file); err != nil {
			return nil, fmt.Errorf("merging config file: %w", err)
		}
	}

	durations := map[string]time.Duration{}
	for _, key := range []string{
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.shutdown_timeout",
		"database.conn_max_lifetime",
		"auth.session_ttl",
		"order.checkout_tx_timeout",
	} {
		d, err := time.ParseDuration(v.GetString(key))
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", key, err)
		}
		durations[key] = d
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            v.GetInt("server.port"),
			ReadTimeout:     durations["server.read_timeout"],
			WriteTimeout:    durations["server.write_timeout"],
			IdleTimeout:     durations["server.idle_timeout"],
			ShutdownTimeout: durations["server.shutdown_timeout"],
		},
		Database: DatabaseConfig{
			Host:            v.GetString("database.host"),
			Port:            v.GetInt("database.port"),
			User:            v.GetString("database.user"),
			Password:        v.GetString("database.password"),
			Name:            v.GetString("database.name"),
			MaxOpenConns:    v.GetInt("database.max_open_conns"),
			MaxIdleConns:    v.GetInt("database.max_idle_conns"),
			ConnMaxLifetime: durations["database.conn_max_lifetime"],
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		Auth: AuthConfig{
			JWTSecret:    v.GetString("auth.jwt_secret"),
			CookieName:   v.GetString("auth.cookie_name"),
			CookieSecure: v.GetBool("auth.cookie_secure"),
			SessionTTL:   durations["auth.session_ttl"],
		},
		Order: OrderConfig{
			MaxRetryAttempts:   v.GetInt("order.max_retry_attempts"),
			CheckoutTxTimeout:  durations["order.checkout_tx_timeout"],
			VerifyCatalogPrice: v.GetBool("order.verify_catalog_price"),
			StrictTransitions:  v.GetBool("order.strict_transitions"),
		},
	}

	return cfg, nil
}
