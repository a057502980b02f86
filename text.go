package flowgui

import (
	"strconv"
	"strings"
	"unicode"
)

// TextWrapMode specifies how text should be wrapped.
type TextWrapMode int

const (
	// WrapModeWord wraps at word boundaries (default for Latin text).
	WrapModeWord TextWrapMode = iota
	// WrapModeChar wraps at character boundaries (for CJK or dense text).
	WrapModeChar
	// WrapModeAuto wraps by character when the text contains CJK and by
	// word otherwise.
	WrapModeAuto
)

// WrapText breaks text into lines no wider than maxWidth, measured with
// the current drawing context. A single word wider than maxWidth gets a
// line of its own. Explicit newlines always break.
func (e *Engine) WrapText(text string, maxWidth float32, mode TextWrapMode) []string {
	if maxWidth <= 0 {
		return strings.Split(text, "\n")
	}
	if mode == WrapModeAuto {
		mode = WrapModeWord
		if containsCJK(text) {
			mode = WrapModeChar
		}
	}

	var lines []string
	for _, para := range strings.Split(text, "\n") {
		var wrapped []string
		if mode == WrapModeChar {
			wrapped = e.wrapByChar(para, maxWidth)
		} else {
			wrapped = e.wrapByWord(para, maxWidth)
		}
		if len(wrapped) == 0 {
			wrapped = []string{""}
		}
		lines = append(lines, wrapped...)
	}
	return lines
}

func (e *Engine) wrapByWord(text string, maxWidth float32) []string {
	var lines []string
	var current string
	for _, word := range strings.Fields(text) {
		test := word
		if current != "" {
			test = current + " " + word
		}
		if current != "" && e.MeasureText(test).X > maxWidth {
			lines = append(lines, current)
			current = word
			continue
		}
		current = test
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

func (e *Engine) wrapByChar(text string, maxWidth float32) []string {
	var lines []string
	var current []rune
	for _, r := range text {
		test := append(current, r)
		if len(current) > 0 && e.MeasureText(string(test)).X > maxWidth {
			lines = append(lines, string(current))
			current = []rune{r}
			continue
		}
		current = test
	}
	if len(current) > 0 {
		lines = append(lines, string(current))
	}
	return lines
}

func containsCJK(text string) bool {
	for _, r := range text {
		if unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana, unicode.Hangul, unicode.Bopomofo, unicode.Yi) {
			return true
		}
	}
	return false
}

// TruncateText shortens text to fit maxWidth, ending it with "..". Text
// that fits is returned unchanged; when not even the suffix fits the
// result is empty.
func (e *Engine) TruncateText(text string, maxWidth float32) string {
	if e.MeasureText(text).X <= maxWidth {
		return text
	}
	const suffix = ".."
	target := maxWidth - e.MeasureText(suffix).X
	if target < 0 {
		return ""
	}
	runes := []rune(text)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		if e.MeasureText(string(runes)).X <= target {
			return string(runes) + suffix
		}
	}
	return suffix
}

// Paragraph draws text wrapped to width. A zero width wraps to the layout
// frame. Like labels, paragraphs need no key.
func (e *Engine) Paragraph(text string, width float32, fields ...Field) *Widget {
	pad := e.style.Padding
	if width <= 0 {
		width = e.layout.frame.W
	}
	lines := e.WrapText(text, width-2*pad, WrapModeAuto)
	lineH := e.MeasureText("M").Y
	size := Vec2{X: width, Y: float32(len(lines))*lineH + 2*pad}

	e.labelSeq++
	id := e.ID("\x00label#" + strconv.Itoa(e.labelSeq))
	var w *Widget
	e.advanceCursor(size, func(r Rect) {
		w = e.UpdateWidget(id, append([]Field{WithBounds(r)}, fields...)...)
	})
	e.layout.list.Callback(func(dc DrawingContext) {
		r := w.PaintRect()
		for i, line := range lines {
			dc.FillText(line, r.X+pad, r.Y+pad+float32(i)*lineH)
		}
	})
	return w
}
