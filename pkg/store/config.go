package store

import (
	"log"
	"os"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/rangepick/pkg/geometry"
)

// Config is the resolved runtime configuration.
type Config interface {
	// BasePath is the directory holding saved trips.
	BasePath() string
	// Spacing is the viewport margin and field gap used when placing popups,
	// in terminal cells.
	Spacing() geometry.Spacing
	// Lead is added to "now" to get the earliest pickup.
	Lead() time.Duration
	// MaxDays caps how far ahead a pickup may be. Zero is unbounded.
	MaxDays() int
}

// LoadConfig reads .rangepick.yaml from RANGEPICK_CONFIG_PATH or the working
// directory, with RANGEPICK_* environment overrides. A missing file is fine.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", "~/.rangepick")
	v.SetDefault("margin", 1)
	v.SetDefault("gap", 1)
	v.SetDefault("lead", "0s")
	v.SetDefault("maxdays", 0)
	v.SetConfigName(".rangepick") // .yaml is implicit
	v.SetEnvPrefix("RANGEPICK")
	v.AutomaticEnv()

	if override := os.Getenv("RANGEPICK_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("error reading config file: %v", err)
			return nil, err
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, err
	}
	return &fileConfig{
		Path:     path,
		Margin:   v.GetInt("margin"),
		Gap:      v.GetInt("gap"),
		LeadTime: v.GetDuration("lead"),
		Days:     v.GetInt("maxdays"),
	}, nil
}

type fileConfig struct {
	Path     string        `json:"path"`
	Margin   int           `json:"margin"`
	Gap      int           `json:"gap"`
	LeadTime time.Duration `json:"lead"`
	Days     int           `json:"maxdays"`
}

func (f *fileConfig) BasePath() string { return f.Path }

func (f *fileConfig) Spacing() geometry.Spacing {
	return geometry.Spacing{Margin: f.Margin, Gap: f.Gap}
}

func (f *fileConfig) Lead() time.Duration { return f.LeadTime }

func (f *fileConfig) MaxDays() int { return f.Days }

// StaticConfig is a Config built in code, used by tests and the testbed.
type StaticConfig struct {
	Path      string
	Margin    int
	Gap       int
	LeadTime  time.Duration
	DaysAhead int
}

// BasePath implements Config.
func (s StaticConfig) BasePath() string { return s.Path }

// Spacing implements Config.
func (s StaticConfig) Spacing() geometry.Spacing {
	return geometry.Spacing{Margin: s.Margin, Gap: s.Gap}
}

// Lead implements Config.
func (s StaticConfig) Lead() time.Duration { return s.LeadTime }

// MaxDays implements Config.
func (s StaticConfig) MaxDays() int { return s.DaysAhead }

// Bounds turns a Config into the pickup window relative to now.
func Bounds(cfg Config, now time.Time) (minDate, maxDate time.Time) {
	minDate = now.Add(cfg.Lead())
	if days := cfg.MaxDays(); days > 0 {
		maxDate = minDate.AddDate(0, 0, days)
	}
	return minDate, maxDate
}
