package flowgui

import (
	"image"
	"strconv"
)

// Label draws a line of text. Labels get an identity from their position
// in the build, so they need no key.
func (e *Engine) Label(text string, fields ...Field) *Widget {
	e.labelSeq++
	id := e.ID("\x00label#" + strconv.Itoa(e.labelSeq))
	ts := e.MeasureText(text)
	pad := e.style.Padding
	size := Vec2{X: ts.X + 2*pad, Y: ts.Y + 2*pad}

	var w *Widget
	e.advanceCursor(size, func(r Rect) {
		w = e.UpdateWidget(id, append([]Field{WithBounds(r)}, fields...)...)
	})
	e.layout.list.Callback(func(dc DrawingContext) {
		r := w.PaintRect()
		dc.FillText(text, r.X+pad, r.Y+(r.H-ts.Y)/2)
	})
	return w
}

// Button draws a push button and returns true once per click.
func (e *Engine) Button(key, label string, fields ...Field) bool {
	w := e.clickable(key, label, fields, buttonStyle)
	if !w.Checked() {
		return false
	}
	w.SetChecked(false)
	return true
}

// Toggle draws a button that stays checked until clicked again and
// returns its checked state.
func (e *Engine) Toggle(key, label string, fields ...Field) bool {
	return e.clickable(key, label, fields, buttonStyle).Checked()
}

// Radio draws a radio button. Radios sharing token form a set in which at
// most one is checked after the pass: the one clicked last, or else the
// first checked one. It returns the checked state seen by this pass.
func (e *Engine) Radio(token, key, label string, fields ...Field) bool {
	return e.radio(token, key, label, fields).Checked()
}

func (e *Engine) radio(token, key, label string, fields []Field) *Widget {
	w := e.clickable(key, label, fields, radioStyle)
	set, ok := e.radios[token]
	if !ok {
		e.BeforePaint(func() { e.resolveRadios(token) })
	}
	e.radios[token] = append(set, w)
	return w
}

// resolveRadios enforces one checked radio per set.
func (e *Engine) resolveRadios(token string) {
	set := e.radios[token]
	var winner *Widget
	for _, w := range set {
		if w.toggled {
			winner = w
			break
		}
	}
	if winner == nil {
		for _, w := range set {
			if w.Checked() {
				winner = w
				break
			}
		}
	}
	changed := false
	for _, w := range set {
		want := w == winner
		if w.Checked() != want {
			w.SetChecked(want)
			changed = true
		}
		w.toggled = false
	}
	if changed {
		e.Repaint()
	}
}

// RadioGroup draws one radio per item, sharing token, and keeps *selected
// in sync with the checked one. It returns true when the user picked a
// different item.
func (e *Engine) RadioGroup(token string, selected *int, items []string) bool {
	changed := false
	e.PushID(token)
	for i, item := range items {
		e.PushIDInt(i)
		w := e.radio(token, "item", item, []Field{DefaultChecked(i == *selected)})
		e.PopID()
		switch {
		case w.toggled:
			if i != *selected {
				*selected = i
				changed = true
			}
		case w.Checked() != (i == *selected):
			w.SetChecked(i == *selected)
		}
	}
	e.PopID()
	return changed
}

// Image draws img scaled into size. A zero size uses the image's own
// size. An image that cannot produce pixels is placed with the requested
// size, possibly zero, and painted as a placeholder.
func (e *Engine) Image(key string, img image.Image, size Vec2, fields ...Field) *Widget {
	natural, ok := imageSize(img)
	if !ok {
		e.logger.Debug("image unavailable", "key", key)
	}
	if size.IsZero() {
		size = natural
	}

	var w *Widget
	e.advanceCursor(size, func(r Rect) {
		w = e.UpdateWidget(e.ID(key), append([]Field{WithBounds(r)}, fields...)...)
	})
	src := Rect{W: natural.X, H: natural.Y}
	if ok {
		b := img.Bounds()
		src.X, src.Y = float32(b.Min.X), float32(b.Min.Y)
	}
	e.layout.list.Callback(func(dc DrawingContext) {
		r := w.PaintRect()
		if !ok {
			dc.DrawThemedRect(StyleImagePlaceholder, r)
			return
		}
		dc.DrawImage(img, src, r)
		paintFocusRing(w, dc)
	})
	return w
}

// clickable places a padded text widget and queues its paint.
func (e *Engine) clickable(key, label string, fields []Field, style func(*Widget) StyleID) *Widget {
	ts := e.MeasureText(label)
	pad := e.style.Padding
	size := Vec2{X: ts.X + 2*pad, Y: ts.Y + 2*pad}
	if style == nil {
		style = buttonStyle
	}
	radio := false
	if style(&Widget{}) == StyleRadio {
		radio = true
		size.X += ts.Y + pad
	}

	var w *Widget
	e.advanceCursor(size, func(r Rect) {
		w = e.UpdateWidget(e.ID(key), append([]Field{WithBounds(r)}, fields...)...)
	})
	e.layout.list.Callback(func(dc DrawingContext) {
		r := w.PaintRect()
		if radio {
			mark := Rect{X: r.X + pad, Y: r.Y + (r.H-ts.Y)/2, W: ts.Y, H: ts.Y}
			if w.Hover() || w.Pressed() {
				dc.DrawThemedRect(StyleButtonHover, r)
			}
			dc.DrawThemedRect(style(w), mark)
			dc.FillText(label, mark.Right()+pad, mark.Y)
		} else {
			dc.DrawThemedRect(style(w), r)
			dc.FillText(label, r.X+(r.W-ts.X)/2, r.Y+(r.H-ts.Y)/2)
		}
		paintFocusRing(w, dc)
	})
	return w
}

func buttonStyle(w *Widget) StyleID {
	switch {
	case w.Disabled():
		return StyleButtonDisabled
	case w.Pressed():
		return StyleButtonPressed
	case w.Checked():
		return StyleButtonChecked
	case w.Hover():
		return StyleButtonHover
	default:
		return StyleButton
	}
}

func radioStyle(w *Widget) StyleID {
	if w.Checked() {
		return StyleRadioChecked
	}
	return StyleRadio
}
