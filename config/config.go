package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const (
	StoragePreferences = "preferences"
	StorageFile        = "file"
)

// Config holds the runtime settings of the app. Every field can be overridden with a
// FLASHLIGHT_* environment variable.
type Config struct {
	// ConfigDir holds the log file and, with the file backend, settings.json
	ConfigDir string `env:"FLASHLIGHT_CONFIG_DIR,default=~/.config/flashlight"`

	// Storage selects the settings backend: "preferences" (Fyne app preferences) or "file"
	Storage string `env:"FLASHLIGHT_STORAGE,default=preferences"`

	TickInterval   time.Duration `env:"FLASHLIGHT_TICK_INTERVAL,default=30ms"`
	HintDuration   time.Duration `env:"FLASHLIGHT_HINT_DURATION,default=4s"`
	BatteryPoll    time.Duration `env:"FLASHLIGHT_BATTERY_POLL,default=1m"`
	Sensitivity    float64       `env:"FLASHLIGHT_BRIGHTNESS_SENSITIVITY,default=0.001"`
	BacklightDir   string        `env:"FLASHLIGHT_BACKLIGHT_DIR"`
	PowerSupplyDir string        `env:"FLASHLIGHT_POWER_SUPPLY_DIR"`
}

// Load reads the configuration from the process environment.
func Load(ctx context.Context) (*Config, error) {
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith reads the configuration from the given lookuper and validates it.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &cfg, l); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	dir, err := ExpandPath(cfg.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("cannot expand config directory: %w", err)
	}
	cfg.ConfigDir = dir

	cfg.Storage = strings.ToLower(strings.TrimSpace(cfg.Storage))
	switch cfg.Storage {
	case StoragePreferences, StorageFile:
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage)
	}

	if cfg.TickInterval <= 0 {
		return nil, fmt.Errorf("tick interval must be positive, got %v", cfg.TickInterval)
	}
	if cfg.Sensitivity <= 0 {
		return nil, fmt.Errorf("brightness sensitivity must be positive, got %v", cfg.Sensitivity)
	}

	return &cfg, nil
}

// ExpandPath expands ~ to the user's home directory, or returns the path as-is
func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(homeDir, path[2:]), nil
	}
	return path, nil
}

// VerifyConfigDirectory makes sure dir exists, creating it if needed.
func VerifyConfigDirectory(dir string) (string, error) {
	_, err := os.Stat(dir)

	if os.IsNotExist(err) {
		// owner rwx, others rx
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("error creating directory %s: %w", dir, err)
		}
		log.Printf("Directory %s created successfully.\n", dir)
	} else if err != nil {
		return "", fmt.Errorf("error checking directory %s: %w", dir, err)
	}

	return dir, nil
}

// Describe returns the effective configuration as "NAME = value" lines.
func (c *Config) Describe() []string {
	orNone := func(s string) string {
		if s == "" {
			return "(auto)"
		}
		return s
	}

	return []string{
		"FLASHLIGHT_CONFIG_DIR = " + c.ConfigDir,
		"FLASHLIGHT_STORAGE = " + c.Storage,
		"FLASHLIGHT_TICK_INTERVAL = " + c.TickInterval.String(),
		"FLASHLIGHT_HINT_DURATION = " + c.HintDuration.String(),
		"FLASHLIGHT_BATTERY_POLL = " + c.BatteryPoll.String(),
		fmt.Sprintf("FLASHLIGHT_BRIGHTNESS_SENSITIVITY = %g", c.Sensitivity),
		"FLASHLIGHT_BACKLIGHT_DIR = " + orNone(c.BacklightDir),
		"FLASHLIGHT_POWER_SUPPLY_DIR = " + orNone(c.PowerSupplyDir),
	}
}
