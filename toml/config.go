package toml

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/fwojciec/morebutton"
	"github.com/pelletier/go-toml/v2"
)

// Config is the user-editable configuration of the demo host.
type Config struct {
	Encircled bool
	Size      morebutton.Size
	Theme     morebutton.Theme
}

// DefaultConfig returns the configuration used when no file exists: an
// encircled 3x1 icon on the default theme.
func DefaultConfig() Config {
	return Config{
		Encircled: true,
		Size:      morebutton.Size{Width: 3, Height: 1},
		Theme:     morebutton.DefaultTheme(),
	}
}

type configFile struct {
	Encircled *bool     `toml:"encircled"`
	Size      *sizeDTO  `toml:"size"`
	Theme     *themeDTO `toml:"theme"`
}

type sizeDTO struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

type themeDTO struct {
	Button     string `toml:"button"`
	Background string `toml:"background"`
	Muted      string `toml:"muted"`
	Accent     string `toml:"accent"`
}

// DecodeConfig parses a configuration file. Keys that are absent keep their
// DefaultConfig values.
func DecodeConfig(data []byte) (Config, error) {
	var f configFile
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	cfg := DefaultConfig()
	if f.Encircled != nil {
		cfg.Encircled = *f.Encircled
	}
	if f.Size != nil {
		if f.Size.Width <= 0 || f.Size.Height <= 0 {
			return Config{}, fmt.Errorf("size must be positive, got %dx%d: %w", f.Size.Width, f.Size.Height, morebutton.ErrValidation)
		}
		cfg.Size = morebutton.Size{Width: f.Size.Width, Height: f.Size.Height}
	}
	if f.Theme != nil {
		cfg.Theme = mergeTheme(cfg.Theme, *f.Theme)
	}
	return cfg, nil
}

// LoadConfig reads the configuration at path. A missing file yields
// DefaultConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return DecodeConfig(data)
}

// MarshalConfig serializes cfg in the format DecodeConfig reads.
func MarshalConfig(cfg Config) ([]byte, error) {
	encircled := cfg.Encircled
	f := configFile{
		Encircled: &encircled,
		Size:      &sizeDTO{Width: cfg.Size.Width, Height: cfg.Size.Height},
		Theme: &themeDTO{
			Button:     string(cfg.Theme.ButtonColor),
			Background: string(cfg.Theme.Background),
			Muted:      string(cfg.Theme.Muted),
			Accent:     string(cfg.Theme.Accent),
		},
	}
	data, err := toml.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return data, nil
}

func mergeTheme(base morebutton.Theme, t themeDTO) morebutton.Theme {
	if t.Button != "" {
		base.ButtonColor = morebutton.Color(t.Button)
	}
	if t.Background != "" {
		base.Background = morebutton.Color(t.Background)
	}
	if t.Muted != "" {
		base.Muted = morebutton.Color(t.Muted)
	}
	if t.Accent != "" {
		base.Accent = morebutton.Color(t.Accent)
	}
	return base
}
