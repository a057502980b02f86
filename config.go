package flowgui

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config is the on-disk configuration: engine metrics plus the theme
// backends paint with.
//
//	[style]
//	margin = 4
//	scrollbar_size = 10
//
//	[theme]
//	text = "#e6e6e6"
//
//	[theme.styles."button.hover"]
//	fill = "#3a3f55"
//	stroke = "#8090c0"
//	stroke_width = 1
type Config struct {
	Style Style `toml:"style"`
	Theme Theme `toml:"theme"`
}

// DefaultConfig returns DefaultStyle and DefaultTheme.
func DefaultConfig() Config {
	return Config{Style: DefaultStyle(), Theme: DefaultTheme()}
}

// LoadConfig reads a TOML config file. Keys missing from the file keep
// their defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("failed to read %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes TOML config data over the defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	defaults := cfg.Theme.Styles
	cfg.Theme.Styles = nil

	if err := toml.Unmarshal(data, &cfg); err != nil {
		cfg.Theme.Styles = defaults
		return cfg, err
	}

	if cfg.Theme.Styles == nil {
		cfg.Theme.Styles = make(map[string]ThemeStyle, len(defaults))
	}
	for k, v := range defaults {
		if _, ok := cfg.Theme.Styles[k]; !ok {
			cfg.Theme.Styles[k] = v
		}
	}
	cfg.Style = cfg.Style.withDefaults()

	if err := cfg.Theme.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// SaveConfig writes cfg as TOML.
func SaveConfig(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Theme maps StyleIDs to colors. Colors are "#rrggbb" or "#rrggbbaa".
type Theme struct {
	Background string                `toml:"background"`
	Text       string                `toml:"text"`
	Styles     map[string]ThemeStyle `toml:"styles"`
}

// ThemeStyle is the paint for one StyleID.
type ThemeStyle struct {
	Fill        string  `toml:"fill"`
	Stroke      string  `toml:"stroke"`
	StrokeWidth float32 `toml:"stroke_width"`
}

// ResolvedStyle is a ThemeStyle with parsed colors.
type ResolvedStyle struct {
	Fill        color.NRGBA
	Stroke      color.NRGBA
	StrokeWidth float32
}

// DefaultTheme returns a dark theme covering every built-in StyleID.
func DefaultTheme() Theme {
	return Theme{
		Background: "#1e1f26",
		Text:       "#e6e6e6",
		Styles: map[string]ThemeStyle{
			string(StyleButton):           {Fill: "#2d3040", Stroke: "#4a4f66", StrokeWidth: 1},
			string(StyleButtonHover):      {Fill: "#3a3f55", Stroke: "#6a7090", StrokeWidth: 1},
			string(StyleButtonPressed):    {Fill: "#1f2230", Stroke: "#8090c0", StrokeWidth: 1},
			string(StyleButtonChecked):    {Fill: "#2f5a8a", Stroke: "#8fb8e8", StrokeWidth: 1},
			string(StyleButtonDisabled):   {Fill: "#25262c", Stroke: "#33343a", StrokeWidth: 1},
			string(StyleRadio):            {Fill: "#2d3040", Stroke: "#4a4f66", StrokeWidth: 1},
			string(StyleRadioChecked):     {Fill: "#3f7f4f", Stroke: "#9fdfaf", StrokeWidth: 1},
			string(StyleFocus):            {Stroke: "#00b4ff", StrokeWidth: 2},
			string(StyleViewport):         {Fill: "#18191f"},
			string(StyleViewportBorder):   {Stroke: "#3c3e4a", StrokeWidth: 1},
			string(StyleScrollTrack):      {Fill: "#24252d"},
			string(StyleScrollThumb):      {Fill: "#4c4f60"},
			string(StyleScrollThumbHot):   {Fill: "#6c7088"},
			string(StyleResizeGrip):       {Fill: "#5a5d70"},
			string(StyleDropSlot):         {Fill: "#00b4ff40", Stroke: "#00b4ff", StrokeWidth: 2},
			string(StyleDragShadow):       {Fill: "#00000060"},
			string(StyleImagePlaceholder): {Fill: "#303030", Stroke: "#505050", StrokeWidth: 1},
		},
	}
}

// Resolve returns the paint for style. A missing "a.b.c" falls back to
// "a.b", then "a"; a style with no match at all resolves to transparent.
func (t Theme) Resolve(style StyleID) ResolvedStyle {
	name := string(style)
	for {
		if s, ok := t.Styles[name]; ok {
			fill, _ := ParseColor(s.Fill)
			stroke, _ := ParseColor(s.Stroke)
			return ResolvedStyle{Fill: fill, Stroke: stroke, StrokeWidth: s.StrokeWidth}
		}
		i := strings.LastIndexByte(name, '.')
		if i < 0 {
			return ResolvedStyle{}
		}
		name = name[:i]
	}
}

// TextColor returns the parsed text color.
func (t Theme) TextColor() color.NRGBA {
	c, err := ParseColor(t.Text)
	if err != nil || t.Text == "" {
		return color.NRGBA{R: 0xe6, G: 0xe6, B: 0xe6, A: 0xff}
	}
	return c
}

// BackgroundColor returns the parsed background color.
func (t Theme) BackgroundColor() color.NRGBA {
	c, _ := ParseColor(t.Background)
	return c
}

// Validate checks every color of the theme.
func (t Theme) Validate() error {
	for _, c := range []struct{ name, v string }{{"background", t.Background}, {"text", t.Text}} {
		if _, err := ParseColor(c.v); err != nil {
			return fmt.Errorf("theme %s: %w", c.name, err)
		}
	}
	for name, s := range t.Styles {
		if _, err := ParseColor(s.Fill); err != nil {
			return fmt.Errorf("theme style %q fill: %w", name, err)
		}
		if _, err := ParseColor(s.Stroke); err != nil {
			return fmt.Errorf("theme style %q stroke: %w", name, err)
		}
	}
	return nil
}

// ParseColor parses "#rrggbb" or "#rrggbbaa". The empty string is
// transparent.
func ParseColor(s string) (color.NRGBA, error) {
	if s == "" {
		return color.NRGBA{}, nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
