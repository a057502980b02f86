package flowgui

// Spacing constants for consistent layout.
const (
	SpaceXS float32 = 2
	SpaceSM float32 = 4
)

// Style holds the metrics the engine lays out and hit-tests with.
// Colors are not part of Style; backends resolve StyleIDs through a Theme.
type Style struct {
	// Margin is the gap the layout engine leaves between placed elements
	// and between rows.
	Margin float32 `toml:"margin"`

	// Padding is added around label and button text.
	Padding float32 `toml:"padding"`

	// ScrollbarSize is the thickness of scrollbars and of the resize grip.
	ScrollbarSize float32 `toml:"scrollbar_size"`

	// MinThumbSize is the smallest scrollbar thumb length.
	MinThumbSize float32 `toml:"min_thumb_size"`

	// Border is the default viewport border width.
	Border float32 `toml:"border"`

	// WheelStep is the number of pixels scrolled per wheel notch.
	WheelStep float32 `toml:"wheel_step"`

	// DragThreshold is the pointer travel below which a released drag
	// counts as a click.
	DragThreshold float32 `toml:"drag_threshold"`

	// MaxRebuilds caps the build passes of one paint cycle.
	MaxRebuilds int `toml:"max_rebuilds"`

	// PruneAfter removes widgets not referenced for this many frames.
	// Zero keeps every widget for the lifetime of the engine.
	PruneAfter uint64 `toml:"prune_after"`

	// WidgetWarnLimit logs a warning when the widget store grows past it,
	// and again at every doubling. Zero disables the warning.
	WidgetWarnLimit int `toml:"widget_warn_limit"`
}

// DefaultStyle returns the default metrics.
func DefaultStyle() Style {
	return Style{
		Margin:          SpaceSM,
		Padding:         SpaceSM,
		ScrollbarSize:   12,
		MinThumbSize:    16,
		Border:          1,
		WheelStep:       30,
		DragThreshold:   4,
		MaxRebuilds:     8,
		PruneAfter:      0,
		WidgetWarnLimit: 10000,
	}
}

// withDefaults fills zero fields that must not be zero.
func (s Style) withDefaults() Style {
	d := DefaultStyle()
	if s.ScrollbarSize <= 0 {
		s.ScrollbarSize = d.ScrollbarSize
	}
	if s.MinThumbSize <= 0 {
		s.MinThumbSize = d.MinThumbSize
	}
	if s.WheelStep <= 0 {
		s.WheelStep = d.WheelStep
	}
	if s.MaxRebuilds <= 0 {
		s.MaxRebuilds = d.MaxRebuilds
	}
	return s
}
