package flowgui

import "image"

// StyleID names a themed rectangle style. Backends map it to colors,
// typically through a Theme.
type StyleID string

// Built-in styles used by the engine's own primitives.
const (
	StyleButton           StyleID = "button"
	StyleButtonHover      StyleID = "button.hover"
	StyleButtonPressed    StyleID = "button.pressed"
	StyleButtonChecked    StyleID = "button.checked"
	StyleButtonDisabled   StyleID = "button.disabled"
	StyleRadio            StyleID = "radio"
	StyleRadioChecked     StyleID = "radio.checked"
	StyleFocus            StyleID = "focus"
	StyleViewport         StyleID = "viewport"
	StyleViewportBorder   StyleID = "viewport.border"
	StyleScrollTrack      StyleID = "scroll.track"
	StyleScrollThumb      StyleID = "scroll.thumb"
	StyleScrollThumbHot   StyleID = "scroll.thumb.hover"
	StyleResizeGrip       StyleID = "resize.grip"
	StyleDropSlot         StyleID = "dropslot"
	StyleDragShadow       StyleID = "drag.shadow"
	StyleImagePlaceholder StyleID = "image.placeholder"
)

// DrawingContext is the surface the engine paints through. The engine never
// touches pixels itself; every draw command ends up as calls on this
// interface.
//
// FillText places the top-left corner of the text box at (x, y), the same
// box MeasureText reports. Save and Restore bracket Clip calls. Clip
// intersects the current clip with r until the matching Restore.
type DrawingContext interface {
	MeasureText(text string) (Vec2, error)
	FillText(text string, x, y float32)
	DrawImage(img image.Image, src, dst Rect)
	DrawThemedRect(style StyleID, r Rect)
	Save()
	Restore()
	Clip(r Rect)
}

// imageSize returns the drawable size of img, or false for handles that
// cannot currently produce pixels.
func imageSize(img image.Image) (Vec2, bool) {
	if img == nil {
		return Vec2{}, false
	}
	b := img.Bounds()
	if b.Empty() {
		return Vec2{}, false
	}
	return Vec2{X: float32(b.Dx()), Y: float32(b.Dy())}, true
}
