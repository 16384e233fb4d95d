package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "GESTEMPS"

// Config holds the runtime settings of the gestemps binary.
type Config struct {
	DBPath         string
	ChartPath      string
	LogLevel       string
	LogCalls       bool
	HistoryEnabled bool
	ChartWidth     int
	ChartHeight    int
}

// DefaultConfig returns the settings used when neither a config file nor
// environment variables override them. The database lives under the user's
// home directory when it can be resolved.
func DefaultConfig() Config {
	dbPath := "gestemps.db"
	if home, err := os.UserHomeDir(); err == nil {
		dbPath = filepath.Join(home, ".gestemps", "gestemps.db")
	}
	return Config{
		DBPath:         dbPath,
		ChartPath:      "gestemps.svg",
		LogLevel:       "warn",
		LogCalls:       false,
		HistoryEnabled: true,
		ChartWidth:     640,
		ChartHeight:    480,
	}
}

// Load reads config.yaml from $HOME/.gestemps then the working directory,
// and GESTEMPS_* environment variables. A missing file is not an error.
func Load() (Config, error) {
	var dirs []string
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".gestemps"))
	}
	return LoadFrom(append(dirs, ".")...)
}

// LoadFrom is Load with an explicit list of directories searched for
// config.yaml, in order.
func LoadFrom(dirs ...string) (Config, error) {
	def := DefaultConfig()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, dir := range dirs {
		v.AddConfigPath(dir)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("db_path", def.DBPath)
	v.SetDefault("chart_path", def.ChartPath)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_calls", def.LogCalls)
	v.SetDefault("history_enabled", def.HistoryEnabled)
	v.SetDefault("chart_width", def.ChartWidth)
	v.SetDefault("chart_height", def.ChartHeight)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := Config{
		DBPath:         expandHome(v.GetString("db_path")),
		ChartPath:      v.GetString("chart_path"),
		LogLevel:       v.GetString("log_level"),
		LogCalls:       v.GetBool("log_calls"),
		HistoryEnabled: v.GetBool("history_enabled"),
		ChartWidth:     v.GetInt("chart_width"),
		ChartHeight:    v.GetInt("chart_height"),
	}
	if cfg.ChartWidth <= 0 {
		cfg.ChartWidth = def.ChartWidth
	}
	if cfg.ChartHeight <= 0 {
		cfg.ChartHeight = def.ChartHeight
	}
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseLevel maps debug/info/warn/error (case-insensitive) to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", s, err)
	}
	return level, nil
}

// NewLogger returns a text logger on w at the configured level. An invalid
// level falls back to warn.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
