package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/healixpharm/pharmpanel/internal/models"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	App       AppConfig       `mapstructure:"app"`
	Session   SessionConfig   `mapstructure:"session"`
	Dashboard DashboardConfig `mapstructure:"dashboard"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
	Log       LogConfig       `mapstructure:"log"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// AppConfig holds branding.
type AppConfig struct {
	Brand string `mapstructure:"brand"`
}

// SessionConfig holds cookie session settings. An empty Secret means a
// random one is generated per process, so panel state does not survive a
// restart.
type SessionConfig struct {
	Name   string `mapstructure:"name"`
	Secret string `mapstructure:"secret"`
	Secure bool   `mapstructure:"secure"`
}

// DashboardConfig holds the figures shown on the dashboard.
type DashboardConfig struct {
	Stats []models.StatCard `mapstructure:"stats"`
}

// TelemetryConfig holds tracing settings. Export is off when OTLPEndpoint
// is empty.
type TelemetryConfig struct {
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	ServiceName  string `mapstructure:"service_name"`
	Insecure     bool   `mapstructure:"insecure"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	File    string `mapstructure:"file"`
	Verbose bool   `mapstructure:"verbose"`
}

// Load reads configuration from file and env. Env var overrides use prefix
// PHARMPANEL_. path, or PHARMPANEL_CONFIG when path is empty, names an
// explicit config file that must exist; otherwise ./pharmpanel.{toml,yaml,...}
// is read if present.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("app.brand", "HealiXPharm")
	v.SetDefault("session.name", "pharmpanel")
	v.SetDefault("session.secret", "")
	v.SetDefault("session.secure", false)
	v.SetDefault("dashboard.stats", defaultStats())
	v.SetDefault("telemetry.otlp_endpoint", "")
	v.SetDefault("telemetry.service_name", "pharmpanel")
	v.SetDefault("telemetry.insecure", true)
	v.SetDefault("log.file", "")
	v.SetDefault("log.verbose", false)

	if path == "" {
		path = os.Getenv("PHARMPANEL_CONFIG")
	}

	v.SetEnvPrefix("PHARMPANEL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("pharmpanel")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks values that cannot be defaulted.
func (c Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("config: server.addr is empty")
	}
	if c.Session.Name == "" {
		return errors.New("config: session.name is empty")
	}
	for i, s := range c.Dashboard.Stats {
		if s.Title == "" {
			return fmt.Errorf("config: dashboard.stats[%d] has no title", i)
		}
		if !models.ValidColor(s.Color) {
			return fmt.Errorf("config: dashboard.stats[%d] (%s) has unknown color %q", i, s.Title, s.Color)
		}
	}
	return nil
}

func defaultStats() []map[string]any {
	var out []map[string]any
	for _, s := range models.DefaultStats() {
		out = append(out, map[string]any{
			"title": s.Title,
			"value": s.Value,
			"color": s.Color,
		})
	}
	return out
}
