package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	sharedConfig "subcommerce/internal/shared/config"
)

const envPrefix = "SUBCOMMERCE"

type Config struct {
	Server       sharedConfig.ServerConfig       `mapstructure:"server"`
	Database     sharedConfig.DatabaseConfig     `mapstructure:"database"`
	Logger       sharedConfig.LoggerConfig       `mapstructure:"logger"`
	Auth         sharedConfig.AuthConfig         `mapstructure:"auth"`
	Redis        sharedConfig.RedisConfig        `mapstructure:"redis"`
	Email        sharedConfig.EmailConfig        `mapstructure:"email"`
	Payment      sharedConfig.PaymentConfig      `mapstructure:"payment"`
	Subscription sharedConfig.SubscriptionConfig `mapstructure:"subscription"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load reads configs/config.yaml (optional), .env files and SUBCOMMERCE_*
// environment variables, in increasing order of precedence.
// configPath overrides the search path when set.
func Load(env string, configPath string) (*Config, error) {
	// .env is optional; a missing file is not an error
	_ = godotenv.Load()

	v := viper.New()
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath("../configs")
		v.AddConfigPath("../../configs")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		v.Set("server.mode", env)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &cfg
	appConfigMu.Unlock()

	return &cfg, nil
}

// Get returns the configuration loaded by the last call to Load.
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.base_url", "http://localhost:8080")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.username", "root")
	v.SetDefault("database.password", "password")
	v.SetDefault("database.database", "subcommerce")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 50)
	v.SetDefault("database.conn_max_lifetime", 60)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	v.SetDefault("auth.jwt.secret", "change-me-in-production")
	v.SetDefault("auth.jwt.access_exp_minutes", 60*24)
	v.SetDefault("auth.password.bcrypt_cost", 12)
	v.SetDefault("auth.login_throttle.max_attempts", 5)
	v.SetDefault("auth.login_throttle.decay_seconds", 60)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("email.smtp_host", "")
	v.SetDefault("email.smtp_port", 1025)
	v.SetDefault("email.from_address", "")
	v.SetDefault("email.from_name", "Subcommerce")
	v.SetDefault("email.frontend_url", "http://localhost:3000")

	v.SetDefault("payment.stripe.secret_key", "")
	v.SetDefault("payment.stripe.webhook_secret", "")
	v.SetDefault("payment.stripe.webhook_tolerance_seconds", 300)
	v.SetDefault("payment.stripe.timeout_seconds", 10)
	v.SetDefault("payment.stripe.default_currency", "usd")
	v.SetDefault("payment.stripe.breaker.max_requests", 1)
	v.SetDefault("payment.stripe.breaker.interval_seconds", 60)
	v.SetDefault("payment.stripe.breaker.timeout_seconds", 30)
	v.SetDefault("payment.stripe.breaker.failure_threshold", 5)

	v.SetDefault("subscription.expiry_sweep_interval_minutes", 60)
	v.SetDefault("subscription.default_duration_days", 30)
}
