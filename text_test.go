package flowgui

import (
	"slices"
	"testing"
)

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width float32
		mode  TextWrapMode
		want  []string
	}{
		{"words", "the quick brown fox", 80, WrapModeWord, []string{"the quick", "brown fox"}},
		{"long word alone", "a supercalifragilistic b", 80, WrapModeWord, []string{"a", "supercalifragilistic", "b"}},
		{"chars", "abcdefghij", 32, WrapModeChar, []string{"abcd", "efgh", "ij"}},
		{"newlines", "one\n\ntwo", 80, WrapModeWord, []string{"one", "", "two"}},
		{"no width", "one two", 0, WrapModeWord, []string{"one two"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			e := newTestEngine(func(e *Engine) {
				got = e.WrapText(tt.text, tt.width, tt.mode)
			})
			mustPaint(t, e)
			if !slices.Equal(got, tt.want) {
				t.Errorf("WrapText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTruncateText(t *testing.T) {
	var fits, cut, tiny string
	e := newTestEngine(func(e *Engine) {
		fits = e.TruncateText("abc", 48)
		cut = e.TruncateText("abcdefghij", 48)
		tiny = e.TruncateText("abcdefghij", 8)
	})
	mustPaint(t, e)
	if fits != "abc" || cut != "abcd.." || tiny != "" {
		t.Errorf("TruncateText gave %q, %q, %q", fits, cut, tiny)
	}
}

func TestParagraphWrapsToWidth(t *testing.T) {
	var w *Widget
	e := newTestEngine(func(e *Engine) {
		w = e.Paragraph("the quick brown fox jumps", 100)
	})
	dc := mustPaint(t, e)
	if w.Bounds.Size() != (Vec2{X: 100, Y: 3*16 + 8}) {
		t.Errorf("paragraph size = %v", w.Bounds.Size())
	}
	if dc.count("text ") != 3 {
		t.Errorf("drew %d lines, want 3: %v", dc.count("text "), dc.ops)
	}
}
