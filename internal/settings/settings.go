// Package settings loads the reader's configuration from a YAML file with
// VERSECANVAS_* environment overrides.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix marks environment overrides. A double underscore separates
// nesting levels: VERSECANVAS_TIMING__LONG_PRESS_MS sets timing.long_press_ms.
const EnvPrefix = "VERSECANVAS_"

type Settings struct {
	// Corpus is a dataset path. When empty the cached Translation is used.
	Corpus      string `yaml:"corpus" koanf:"corpus"`
	Translation string `yaml:"translation" koanf:"translation"`
	Theme       string `yaml:"theme" koanf:"theme"`
	Pen         Pen    `yaml:"pen" koanf:"pen"`
	Timing      Timing `yaml:"timing" koanf:"timing"`
	Log         Log    `yaml:"log" koanf:"log"`
}

type Pen struct {
	Color string  `yaml:"color" koanf:"color"`
	Width float64 `yaml:"width" koanf:"width"`
}

type Timing struct {
	LongPressMs   int `yaml:"long_press_ms" koanf:"long_press_ms"`
	DoubleClickMs int `yaml:"double_click_ms" koanf:"double_click_ms"`
	ResizeDelayMs int `yaml:"resize_delay_ms" koanf:"resize_delay_ms"`
	ToastMs       int `yaml:"toast_ms" koanf:"toast_ms"`
}

type Log struct {
	Level  string `yaml:"level" koanf:"level"`
	Format string `yaml:"format" koanf:"format"`
	File   string `yaml:"file" koanf:"file"`
}

func (t Timing) LongPress() time.Duration   { return ms(t.LongPressMs) }
func (t Timing) DoubleClick() time.Duration { return ms(t.DoubleClickMs) }
func (t Timing) ResizeDelay() time.Duration { return ms(t.ResizeDelayMs) }
func (t Timing) Toast() time.Duration       { return ms(t.ToastMs) }

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

// Default returns the built-in settings.
func Default() *Settings {
	return &Settings{
		Translation: "WEB",
		Theme:       "catppuccin-mocha",
		Pen:         Pen{Color: "#f38ba8", Width: 2},
		Timing: Timing{
			LongPressMs:   600,
			DoubleClickMs: 400,
			ResizeDelayMs: 50,
			ToastMs:       1200,
		},
		Log: Log{Level: "info", Format: "text"},
	}
}

// Path is the default config file location.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "verse-canvas", "config.yaml"), nil
}

// Load reads path over the defaults, then applies environment overrides. A
// missing file is not an error.
func Load(path string) (*Settings, error) {
	k := koanf.New(".")
	s := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(key string) string {
		key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", s); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return s, nil
}

// Save writes the settings as YAML, creating the directory if needed.
func (s *Settings) Save(path string) error {
	data, err := yamlv3.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate rejects settings the reader cannot run with.
func (s *Settings) Validate() error {
	if s.Pen.Width <= 0 {
		return fmt.Errorf("pen.width must be positive, got %v", s.Pen.Width)
	}
	for name, v := range map[string]int{
		"timing.long_press_ms":   s.Timing.LongPressMs,
		"timing.double_click_ms": s.Timing.DoubleClickMs,
		"timing.resize_delay_ms": s.Timing.ResizeDelayMs,
		"timing.toast_ms":        s.Timing.ToastMs,
	} {
		if v <= 0 {
			return fmt.Errorf("%s must be positive, got %d", name, v)
		}
	}
	if s.Corpus == "" && s.Translation == "" {
		return errors.New("either corpus or translation is required")
	}
	return nil
}
