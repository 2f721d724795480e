package willowpick

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultRunConfigIsValid(t *testing.T) {
	cfg := DefaultRunConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	d := newDispatcherFromConfig(t, cfg.Pick)
	if d.button != ButtonLeft || d.modifiers != ModCtrl || d.match != MatchContains {
		t.Errorf("default gesture = %v/%v/%v", d.button, d.modifiers, d.match)
	}
}

func newDispatcherFromConfig(t *testing.T, pc PickConfig) *PickDispatcher {
	t.Helper()
	opts, err := pc.Options()
	if err != nil {
		t.Fatalf("Options: %v", err)
	}
	return NewPickDispatcher(Recolor{}, opts...)
}

func TestParseConfigOverridesDefaults(t *testing.T) {
	data := []byte(`
title = "pick demo"
width = 1024

[log]
level = "debug"

[pick]
button = "right"
modifiers = ["shift", "alt"]
match = "exact"

[pick.highlight]
r = 0
g = 1
b = 0
a = 1
`)
	cfg, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Title != "pick demo" || cfg.Width != 1024 {
		t.Errorf("title/width = %q/%d", cfg.Title, cfg.Width)
	}
	if cfg.Height != 600 || cfg.TPS != 60 {
		t.Errorf("unset fields should keep defaults, got height %d tps %d", cfg.Height, cfg.TPS)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q", cfg.Log.Level)
	}
	if cfg.Pick.Highlight != (Color{0, 1, 0, 1}) {
		t.Errorf("highlight = %v", cfg.Pick.Highlight)
	}
	if cfg.Pick.Normal != ColorWhite {
		t.Errorf("normal = %v, want default white", cfg.Pick.Normal)
	}

	d := newDispatcherFromConfig(t, cfg.Pick)
	if d.button != ButtonRight || d.modifiers != ModShift|ModAlt || d.match != MatchExact {
		t.Errorf("gesture = %v/%v/%v", d.button, d.modifiers, d.match)
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		invalid bool
	}{
		{"bad toml", "width = [", false},
		{"zero width", "width = 0", true},
		{"negative tps", "tps = -1", true},
		{"unknown button", "[pick]\nbutton = \"thumb\"", true},
		{"unknown modifier", "[pick]\nmodifiers = [\"hyper\"]", true},
		{"unknown match", "[pick]\nmatch = \"fuzzy\"", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data))
			if err == nil {
				t.Fatal("expected an error")
			}
			if got := errors.Is(err, ErrInvalidConfig); got != tt.invalid {
				t.Errorf("errors.Is(err, ErrInvalidConfig) = %v, want %v (err: %v)", got, tt.invalid, err)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pick.toml")
	if err := os.WriteFile(path, []byte("title = \"from file\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Title != "from file" {
		t.Errorf("title = %q", cfg.Title)
	}

	if _, err := LoadConfig(filepath.Join(dir, "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want os.ErrNotExist", err)
	}
}

func TestParseModifiers(t *testing.T) {
	tests := []struct {
		names []string
		want  KeyModifiers
	}{
		{nil, 0},
		{[]string{"ctrl"}, ModCtrl},
		{[]string{"Control", " shift "}, ModCtrl | ModShift},
		{[]string{"option", "cmd"}, ModAlt | ModMeta},
		{[]string{"super", "alt"}, ModMeta | ModAlt},
	}
	for _, tt := range tests {
		got, err := ParseModifiers(tt.names)
		if err != nil {
			t.Errorf("ParseModifiers(%v): %v", tt.names, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseModifiers(%v) = %v, want %v", tt.names, got, tt.want)
		}
	}
}

func TestParseButton(t *testing.T) {
	for name, want := range map[string]MouseButton{
		"left": ButtonLeft, "MIDDLE": ButtonMiddle, "right": ButtonRight,
	} {
		got, err := ParseButton(name)
		if err != nil || got != want {
			t.Errorf("ParseButton(%q) = %v, %v", name, got, err)
		}
	}
	if _, err := ParseButton(""); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("empty button error = %v", err)
	}
}

func TestLoadConfigOverKeepsBase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pick.toml")
	if err := os.WriteFile(path, []byte("width = 640\n[pick]\nbutton = \"right\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	base := DefaultRunConfig()
	base.Title = "recolor demo"
	cfg, err := LoadConfigOver(path, base)
	if err != nil {
		t.Fatalf("LoadConfigOver: %v", err)
	}
	if cfg.Title != "recolor demo" {
		t.Errorf("title = %q, want the base title", cfg.Title)
	}
	if cfg.Width != 640 || cfg.Pick.Button != "right" {
		t.Errorf("width/button = %d/%q, want file values", cfg.Width, cfg.Pick.Button)
	}
	if len(cfg.Pick.Modifiers) != 1 || cfg.Pick.Modifiers[0] != "ctrl" {
		t.Errorf("modifiers = %v, want base [ctrl]", cfg.Pick.Modifiers)
	}

	withTitle := filepath.Join(t.TempDir(), "titled.toml")
	if err := os.WriteFile(withTitle, []byte("title = \"from file\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if cfg, err := LoadConfigOver(withTitle, base); err != nil || cfg.Title != "from file" {
		t.Errorf("title = %q, %v, want the file title", cfg.Title, err)
	}
}
