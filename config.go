package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"orbview/hal"
	"orbview/orbgl"
	"orbview/view"
)

// settings is the top-level TOML structure.
type settings struct {
	Display displaySettings `toml:"display"`
	Scene   sceneSettings   `toml:"scene"`
}

type displaySettings struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
	Scale  int `toml:"scale"`
}

type sceneSettings struct {
	Modifier     string  `toml:"modifier"` // "alt", "ctrl" or "shift"
	SpinSpeed    float64 `toml:"spin_speed"`
	Background   string  `toml:"background"`
	SphereColor  string  `toml:"sphere_color"`
	MarkerColor  string  `toml:"marker_color"`
	CurveColor   string  `toml:"curve_color"`
	MarkerRadius int     `toml:"marker_radius"`
}

const defaultConfigTOML = `# Orbview settings.
# Colors are hex, "#RRGGBB". Leave a color empty to use the built-in one.

[display]
width = 640
height = 480
scale = 2

[scene]
modifier = "alt"
spin_speed = 0.003
background = ""
sphere_color = ""
marker_color = ""
curve_color = ""
marker_radius = 3
`

// configPath returns the settings file path, creating the file with
// defaults on first run. An explicit -config path is used as-is and
// must exist.
func configPath(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	path := filepath.Join(dir, "orbview", "orbview.toml")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if mkErr := os.MkdirAll(filepath.Dir(path), 0o755); mkErr != nil {
			return "", fmt.Errorf("create config dir: %w", mkErr)
		}
		if wErr := os.WriteFile(path, []byte(defaultConfigTOML), 0o644); wErr != nil {
			return "", fmt.Errorf("write default config: %w", wErr)
		}
	}
	return path, nil
}

func loadSettings(explicit string) (settings, error) {
	path, err := configPath(explicit)
	if err != nil {
		return settings{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return settings{}, fmt.Errorf("read config: %w", err)
	}
	return parseSettings(data)
}

func parseSettings(data []byte) (settings, error) {
	var s settings
	if err := toml.Unmarshal(data, &s); err != nil {
		return settings{}, fmt.Errorf("parse config: %w", err)
	}
	if s.Scene.Modifier != "" {
		if _, err := parseModifier(s.Scene.Modifier); err != nil {
			return settings{}, err
		}
	}
	for _, c := range []string{s.Scene.Background, s.Scene.SphereColor, s.Scene.MarkerColor, s.Scene.CurveColor} {
		if c == "" {
			continue
		}
		if _, err := parseHexColor(c); err != nil {
			return settings{}, err
		}
	}
	return s, nil
}

func parseModifier(name string) (hal.Modifier, error) {
	switch strings.ToLower(name) {
	case "", "alt":
		return hal.ModifierAlt, nil
	case "ctrl", "control":
		return hal.ModifierControl, nil
	case "shift":
		return hal.ModifierShift, nil
	}
	return hal.ModifierAlt, fmt.Errorf("unknown modifier %q (want alt, ctrl or shift)", name)
}

func parseHexColor(s string) (orbgl.Color, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return orbgl.Color{}, fmt.Errorf("bad color %q (want #RRGGBB)", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return orbgl.Color{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	return orbgl.RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// halOptions maps the settings onto the HAL. Zero values fall through
// to the HAL defaults.
func (s settings) halOptions() hal.Options {
	mod, _ := parseModifier(s.Scene.Modifier)
	return hal.Options{
		Width:    s.Display.Width,
		Height:   s.Display.Height,
		Scale:    s.Display.Scale,
		Modifier: mod,
	}
}

// viewOptions maps the settings onto the scene. Unset colors stay zero
// so the view applies its own defaults.
func (s settings) viewOptions() view.Options {
	mod, _ := parseModifier(s.Scene.Modifier)
	opts := view.Options{
		ModifierName:   mod.Name(),
		SpinSpeed:      float32(s.Scene.SpinSpeed),
		MarkerRadiusPx: s.Scene.MarkerRadius,
	}
	if c, err := parseHexColor(s.Scene.Background); err == nil && s.Scene.Background != "" {
		opts.Background = c
	}
	if c, err := parseHexColor(s.Scene.SphereColor); err == nil && s.Scene.SphereColor != "" {
		opts.Sphere = c
	}
	if c, err := parseHexColor(s.Scene.MarkerColor); err == nil && s.Scene.MarkerColor != "" {
		opts.Marker = c
	}
	if c, err := parseHexColor(s.Scene.CurveColor); err == nil && s.Scene.CurveColor != "" {
		opts.Curve = c
	}
	return opts
}
