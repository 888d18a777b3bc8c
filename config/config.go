package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Tunables are the knobs of the prank. Defaults match the classic build.
type Tunables struct {
	WindowWidth     int     `yaml:"window_width"`
	WindowHeight    int     `yaml:"window_height"`
	CornerTolerance float64 `yaml:"corner_tolerance"`
	EdgeBuffer      float64 `yaml:"edge_buffer"`

	MoveInterval        time.Duration `yaml:"move_interval"`
	ColorInterval       time.Duration `yaml:"color_interval"`
	ProgressMinInterval time.Duration `yaml:"progress_min_interval"`
	ProgressMaxInterval time.Duration `yaml:"progress_max_interval"`
	ProgressMaxStep     int           `yaml:"progress_max_step"`
	CloseDelay          time.Duration `yaml:"close_delay"`

	MinMaximum   int     `yaml:"min_maximum"`
	MaxMaximum   int     `yaml:"max_maximum"`
	MinDirection float64 `yaml:"min_direction"`
	MaxDirection float64 `yaml:"max_direction"`
	MinSpeed     float64 `yaml:"min_speed"`
	MaxSpeed     float64 `yaml:"max_speed"`
	MinRainbow   float64 `yaml:"min_rainbow"`
	MaxRainbow   float64 `yaml:"max_rainbow"`

	SpawnInterval   time.Duration `yaml:"spawn_interval"`
	MadnessInterval time.Duration `yaml:"madness_interval"`
	MaxWindows      int           `yaml:"max_windows"`
	Sound           bool          `yaml:"sound"`
}

func Default() Tunables {
	return Tunables{
		WindowWidth:     300,
		WindowHeight:    100,
		CornerTolerance: 10,
		EdgeBuffer:      300,

		MoveInterval:        10 * time.Millisecond,
		ColorInterval:       10 * time.Millisecond,
		ProgressMinInterval: 10 * time.Millisecond,
		ProgressMaxInterval: 100 * time.Millisecond,
		ProgressMaxStep:     5,
		CloseDelay:          3 * time.Second,

		MinMaximum:   100,
		MaxMaximum:   1000,
		MinDirection: 3,
		MaxDirection: 6,
		MinSpeed:     0.5,
		MaxSpeed:     1.0,
		MinRainbow:   0.5,
		MaxRainbow:   2.0,

		SpawnInterval:   2000 * time.Millisecond,
		MadnessInterval: 500 * time.Millisecond,
	}
}

func (t Tunables) Validate() error {
	if t.WindowWidth <= 0 || t.WindowHeight <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", t.WindowWidth, t.WindowHeight)
	}
	if t.CornerTolerance < 0 || t.EdgeBuffer < 0 {
		return errors.New("corner_tolerance and edge_buffer must not be negative")
	}
	for name, d := range map[string]time.Duration{
		"move_interval":         t.MoveInterval,
		"color_interval":        t.ColorInterval,
		"progress_min_interval": t.ProgressMinInterval,
		"spawn_interval":        t.SpawnInterval,
		"madness_interval":      t.MadnessInterval,
	} {
		if d <= 0 {
			return fmt.Errorf("%s must be positive, got %s", name, d)
		}
	}
	if t.CloseDelay < 0 {
		return fmt.Errorf("close_delay must not be negative, got %s", t.CloseDelay)
	}
	if t.ProgressMaxInterval < t.ProgressMinInterval {
		return fmt.Errorf("progress interval range is inverted: %s > %s", t.ProgressMinInterval, t.ProgressMaxInterval)
	}
	if t.ProgressMaxStep < 0 {
		return fmt.Errorf("progress_max_step must not be negative, got %d", t.ProgressMaxStep)
	}
	if t.MinMaximum <= 0 || t.MaxMaximum < t.MinMaximum {
		return fmt.Errorf("invalid maximum range [%d, %d]", t.MinMaximum, t.MaxMaximum)
	}
	ranges := []struct {
		name   string
		lo, hi float64
	}{
		{"direction", t.MinDirection, t.MaxDirection},
		{"speed", t.MinSpeed, t.MaxSpeed},
		{"rainbow", t.MinRainbow, t.MaxRainbow},
	}
	for _, r := range ranges {
		if r.lo <= 0 || r.hi < r.lo {
			return fmt.Errorf("invalid %s range [%g, %g]", r.name, r.lo, r.hi)
		}
	}
	if t.MaxWindows < 0 {
		return fmt.Errorf("max_windows must not be negative, got %d", t.MaxWindows)
	}
	return nil
}

// DefaultPath is $LOADFOREVER_CONFIG, else config.yaml under the XDG config
// directory.
func DefaultPath() (string, error) {
	if p := os.Getenv("LOADFOREVER_CONFIG"); p != "" {
		return p, nil
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "loadforever", "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "loadforever", "config.yaml"), nil
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Tunables, error) {
	t := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return t, nil
		}
		return t, fmt.Errorf("failed to read config: %w", err)
	}
	if err := decodeStrictYAML(data, &t); err != nil {
		return t, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return t, nil
}

func decodeStrictYAML(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if err == io.EOF {
			return nil
		}
		return err
	}
	return nil
}
