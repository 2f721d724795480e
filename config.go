package willowpick

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidConfig is returned (wrapped) for configuration values that are
// out of range or unrecognized.
var ErrInvalidConfig = errors.New("willowpick: invalid config")

// RunConfig holds window, logging and picking settings for Run. It can be
// filled in directly or loaded from TOML with LoadConfig.
type RunConfig struct {
	Title      string     `toml:"title"`
	Width      int        `toml:"width"`
	Height     int        `toml:"height"`
	TPS        int        `toml:"tps"`
	ClearColor Color      `toml:"clear_color"`
	Debug      bool       `toml:"debug"`
	Log        LogConfig  `toml:"log"`
	Pick       PickConfig `toml:"pick"`
}

// PickConfig describes the pick gesture and the colors used by the select
// action.
type PickConfig struct {
	// Button is "left", "middle" or "right".
	Button string `toml:"button"`
	// Modifiers lists required keys: "ctrl", "shift", "alt", "meta".
	Modifiers []string `toml:"modifiers"`
	// Match is "contains" (extra modifiers allowed) or "exact".
	Match     string `toml:"match"`
	Normal    Color  `toml:"normal"`
	Highlight Color  `toml:"highlight"`
}

// DefaultRunConfig returns the settings used for any field a config file
// leaves out.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Title:      "willowpick",
		Width:      800,
		Height:     600,
		TPS:        60,
		ClearColor: Color{R: 0.1, G: 0.1, B: 0.14, A: 1},
		Log:        LogConfig{Level: "info"},
		Pick: PickConfig{
			Button:    "left",
			Modifiers: []string{"ctrl"},
			Match:     "contains",
			Normal:    ColorWhite,
			Highlight: Color{R: 1, G: 0, B: 0, A: 1},
		},
	}
}

// LoadConfig reads a TOML config file on top of DefaultRunConfig.
func LoadConfig(path string) (RunConfig, error) {
	return LoadConfigOver(path, DefaultRunConfig())
}

// LoadConfigOver reads a TOML config file on top of base. Fields the file
// leaves out keep their value from base.
func LoadConfigOver(path string, base RunConfig) (RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RunConfig{}, fmt.Errorf("load config: %w", err)
	}
	cfg, err := parseConfigOver(data, base)
	if err != nil {
		return RunConfig{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes TOML on top of DefaultRunConfig and validates the result.
func ParseConfig(data []byte) (RunConfig, error) {
	return parseConfigOver(data, DefaultRunConfig())
}

func parseConfigOver(data []byte, cfg RunConfig) (RunConfig, error) {
	cfg.Pick.Modifiers = slices.Clone(cfg.Pick.Modifiers)
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return RunConfig{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return RunConfig{}, err
	}
	return cfg, nil
}

// Validate checks window dimensions and the pick gesture.
func (c RunConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.TPS < 0 {
		return fmt.Errorf("%w: tps %d", ErrInvalidConfig, c.TPS)
	}
	if _, err := c.Pick.Options(); err != nil {
		return err
	}
	return nil
}

// Options converts the config to dispatcher options.
func (c PickConfig) Options() ([]PickOption, error) {
	var opts []PickOption

	if c.Button != "" {
		b, err := ParseButton(c.Button)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithButton(b))
	}
	if c.Modifiers != nil {
		mods, err := ParseModifiers(c.Modifiers)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithModifiers(mods))
	}
	switch strings.ToLower(c.Match) {
	case "", "contains":
		opts = append(opts, WithModifierMatch(MatchContains))
	case "exact":
		opts = append(opts, WithModifierMatch(MatchExact))
	default:
		return nil, fmt.Errorf("%w: modifier match %q", ErrInvalidConfig, c.Match)
	}
	return opts, nil
}

// ParseButton maps a button name to a MouseButton.
func ParseButton(name string) (MouseButton, error) {
	switch strings.ToLower(name) {
	case "left":
		return ButtonLeft, nil
	case "middle":
		return ButtonMiddle, nil
	case "right":
		return ButtonRight, nil
	default:
		return ButtonNone, fmt.Errorf("%w: button %q", ErrInvalidConfig, name)
	}
}

// ParseModifiers combines modifier key names into a mask. An empty list
// yields no modifiers.
func ParseModifiers(names []string) (KeyModifiers, error) {
	var mods KeyModifiers
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "ctrl", "control":
			mods |= ModCtrl
		case "shift":
			mods |= ModShift
		case "alt", "option":
			mods |= ModAlt
		case "meta", "cmd", "super":
			mods |= ModMeta
		default:
			return 0, fmt.Errorf("%w: modifier %q", ErrInvalidConfig, name)
		}
	}
	return mods, nil
}
