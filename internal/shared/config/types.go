package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

// GetDSN returns the MySQL DSN. Times are stored and parsed as UTC.
func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&collation=utf8mb4_unicode_ci&parseTime=true&loc=UTC",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
}

type PasswordConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

type LoginThrottleConfig struct {
	MaxAttempts  int `mapstructure:"max_attempts"`
	DecaySeconds int `mapstructure:"decay_seconds"`
}

func (l LoginThrottleConfig) Decay() time.Duration {
	return time.Duration(l.DecaySeconds) * time.Second
}

type AuthConfig struct {
	JWT           JWTConfig           `mapstructure:"jwt"`
	Password      PasswordConfig      `mapstructure:"password"`
	LoginThrottle LoginThrottleConfig `mapstructure:"login_throttle"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type EmailConfig struct {
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
	FrontendURL  string `mapstructure:"frontend_url"`
}

// Enabled reports whether enough SMTP settings are present to send mail.
func (e *EmailConfig) Enabled() bool {
	return e.SMTPHost != "" && e.FromAddress != ""
}

type BreakerConfig struct {
	MaxRequests      uint32 `mapstructure:"max_requests"`
	IntervalSeconds  int    `mapstructure:"interval_seconds"`
	TimeoutSeconds   int    `mapstructure:"timeout_seconds"`
	FailureThreshold uint32 `mapstructure:"failure_threshold"`
}

type StripeConfig struct {
	SecretKey               string        `mapstructure:"secret_key"`
	WebhookSecret           string        `mapstructure:"webhook_secret"`
	WebhookToleranceSeconds int           `mapstructure:"webhook_tolerance_seconds"`
	TimeoutSeconds          int           `mapstructure:"timeout_seconds"`
	DefaultCurrency         string        `mapstructure:"default_currency"`
	Breaker                 BreakerConfig `mapstructure:"breaker"`
}

func (s StripeConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

func (s StripeConfig) WebhookTolerance() time.Duration {
	return time.Duration(s.WebhookToleranceSeconds) * time.Second
}

type PaymentConfig struct {
	Stripe StripeConfig `mapstructure:"stripe"`
}

type SubscriptionConfig struct {
	ExpirySweepIntervalMinutes int `mapstructure:"expiry_sweep_interval_minutes"`
	DefaultDurationDays        int `mapstructure:"default_duration_days"`
}

func (s SubscriptionConfig) SweepInterval() time.Duration {
	return time.Duration(s.ExpirySweepIntervalMinutes) * time.Minute
}
