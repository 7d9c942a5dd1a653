package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config はアプリケーション全体の設定を表現します。
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Devices  []DeviceConfig `yaml:"devices"`
	Sync     SyncConfig     `yaml:"sync"`
	Payroll  PayrollConfig  `yaml:"payroll"`
}

// ServerConfig は gRPC サーバーに関する設定です。
type ServerConfig struct {
	ListenAddr  string `yaml:"listen_addr"`
	MetricsAddr string `yaml:"metrics_addr"`
}

// DatabaseConfig は PostgreSQL 接続に関する設定です。
type DatabaseConfig struct {
	Host               string        `yaml:"host"`
	Port               int           `yaml:"port"`
	User               string        `yaml:"user"`
	Password           string        `yaml:"password"`
	Name               string        `yaml:"name"`
	SSLMode            string        `yaml:"ssl_mode"`
	MaxOpenConns       int           `yaml:"max_open_conns"`
	MaxIdleConns       int           `yaml:"max_idle_conns"`
	ConnMaxLifetime    time.Duration `yaml:"-"`
	ConnMaxIdleTime    time.Duration `yaml:"-"`
	ConnMaxLifetimeRaw string        `yaml:"conn_max_lifetime"`
	ConnMaxIdleTimeRaw string        `yaml:"conn_max_idle_time"`
}

// DeviceConfig はタイムレコーダー端末 1 台分の接続設定です。
type DeviceConfig struct {
	ID         string        `yaml:"id"`
	Name       string        `yaml:"name"`
	IP         string        `yaml:"ip"`
	Port       int           `yaml:"port"`
	Enabled    bool          `yaml:"enabled"`
	Priority   int           `yaml:"priority"`
	Timeout    time.Duration `yaml:"-"`
	TimeoutRaw string        `yaml:"timeout"`
}

// SyncConfig は同期ジョブの再試行・遮断・通知に関する設定です。
type SyncConfig struct {
	MaxAttempts             int           `yaml:"max_attempts"`
	BackoffBase             time.Duration `yaml:"-"`
	BackoffBaseRaw          string        `yaml:"backoff_base"`
	BackoffMultiplier       float64       `yaml:"backoff_multiplier"`
	BackoffMax              time.Duration `yaml:"-"`
	BackoffMaxRaw           string        `yaml:"backoff_max"`
	FailureThreshold        int           `yaml:"failure_threshold"`
	RecoveryTimeout         time.Duration `yaml:"-"`
	RecoveryTimeoutRaw      string        `yaml:"recovery_timeout"`
	NotificationCooldown    time.Duration `yaml:"-"`
	NotificationCooldownRaw string        `yaml:"notification_cooldown"`
	SchedulePollInterval    time.Duration `yaml:"-"`
	SchedulePollIntervalRaw string        `yaml:"schedule_poll_interval"`
}

// PayrollConfig は給与計算の閾値と既定レートに関する設定です。
type PayrollConfig struct {
	DailyStandardHours  float64 `yaml:"daily_standard_hours"`
	WeeklyStandardHours float64 `yaml:"weekly_standard_hours"`
	DefaultStandardRate float64 `yaml:"default_standard_rate"`
	DefaultOvertimeRate float64 `yaml:"default_overtime_rate"`
}

// Load は指定されたパスから設定ファイルを読み込みます。
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := cfg.validateAndNormalize(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validateAndNormalize() error {
	if c.Server.ListenAddr == "" {
		return fmt.Errorf("config: server.listen_addr must be set")
	}

	if err := c.Database.validateAndNormalize(); err != nil {
		return err
	}

	for i := range c.Devices {
		if err := c.Devices[i].validateAndNormalize(); err != nil {
			return err
		}
	}

	if err := c.Sync.validateAndNormalize(); err != nil {
		return err
	}

	c.Payroll.normalize()

	return nil
}

func (d *DatabaseConfig) validateAndNormalize() error {
	if d.Host == "" {
		return fmt.Errorf("config: database.host must be set")
	}
	if d.Port == 0 {
		return fmt.Errorf("config: database.port must be set")
	}
	if d.User == "" {
		return fmt.Errorf("config: database.user must be set")
	}
	if d.Password == "" {
		return fmt.Errorf("config: database.password must be set")
	}
	if d.Name == "" {
		return fmt.Errorf("config: database.name must be set")
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}

	lifetime, err := parseDurationAllowEmpty(d.ConnMaxLifetimeRaw)
	if err != nil {
		return fmt.Errorf("config: database.conn_max_lifetime: %w", err)
	}
	d.ConnMaxLifetime = lifetime

	idleTime, err := parseDurationAllowEmpty(d.ConnMaxIdleTimeRaw)
	if err != nil {
		return fmt.Errorf("config: database.conn_max_idle_time: %w", err)
	}
	d.ConnMaxIdleTime = idleTime

	return nil
}

func (d *DeviceConfig) validateAndNormalize() error {
	if d.ID == "" {
		return fmt.Errorf("config: devices[].id must be set")
	}
	if d.IP == "" {
		return fmt.Errorf("config: devices[%s].ip must be set", d.ID)
	}
	if d.Port == 0 {
		return fmt.Errorf("config: devices[%s].port must be set", d.ID)
	}

	timeout, err := parseDurationAllowEmpty(d.TimeoutRaw)
	if err != nil {
		return fmt.Errorf("config: devices[%s].timeout: %w", d.ID, err)
	}
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	d.Timeout = timeout

	return nil
}

func (s *SyncConfig) validateAndNormalize() error {
	if s.MaxAttempts <= 0 {
		s.MaxAttempts = 3
	}
	if s.BackoffMultiplier <= 0 {
		s.BackoffMultiplier = 2
	}
	if s.FailureThreshold <= 0 {
		s.FailureThreshold = 5
	}

	durations := []struct {
		raw  string
		dst  *time.Duration
		def  time.Duration
		name string
	}{
		{s.BackoffBaseRaw, &s.BackoffBase, time.Second, "backoff_base"},
		{s.BackoffMaxRaw, &s.BackoffMax, 10 * time.Second, "backoff_max"},
		{s.RecoveryTimeoutRaw, &s.RecoveryTimeout, 30 * time.Second, "recovery_timeout"},
		{s.NotificationCooldownRaw, &s.NotificationCooldown, 5 * time.Minute, "notification_cooldown"},
		{s.SchedulePollIntervalRaw, &s.SchedulePollInterval, time.Minute, "schedule_poll_interval"},
	}

	for _, field := range durations {
		d, err := parseDurationAllowEmpty(field.raw)
		if err != nil {
			return fmt.Errorf("config: sync.%s: %w", field.name, err)
		}
		if d == 0 {
			d = field.def
		}
		*field.dst = d
	}

	return nil
}

func (p *PayrollConfig) normalize() {
	if p.DailyStandardHours <= 0 {
		p.DailyStandardHours = 8
	}
	if p.WeeklyStandardHours <= 0 {
		p.WeeklyStandardHours = 40
	}
}

func parseDurationAllowEmpty(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	return d, nil
}

// DSN は pgx 用の接続文字列を返します。認証情報は URL エスケープされます。
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     d.Name,
		RawQuery: url.Values{"sslmode": []string{d.SSLMode}}.Encode(),
	}
	return u.String()
}
