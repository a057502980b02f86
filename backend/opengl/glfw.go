package opengl

import (
	"math"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/flowgui"
)

const (
	doubleClickTime     = 400 * time.Millisecond
	doubleClickDistance = 4
)

// Host forwards GLFW window events to an engine. Events are delivered as
// they arrive; the engine asks for a frame through Invalidate.
type Host struct {
	window *glfw.Window
	engine *flowgui.Engine

	held      flowgui.MouseButton
	lastClick time.Time
	lastPos   flowgui.Vec2
	lastBtn   flowgui.MouseButton
}

// NewHost installs callbacks on window that drive e. Framebuffer size
// changes resize the engine surface.
func NewHost(window *glfw.Window, e *flowgui.Engine) *Host {
	h := &Host{window: window, engine: e, held: flowgui.MouseButtonNone, lastBtn: flowgui.MouseButtonNone}
	window.SetKeyCallback(h.keyCallback)
	window.SetMouseButtonCallback(h.mouseButtonCallback)
	window.SetScrollCallback(h.scrollCallback)
	window.SetCursorPosCallback(h.cursorPosCallback)
	window.SetFramebufferSizeCallback(h.sizeCallback)

	w, ht := window.GetFramebufferSize()
	e.Resize(flowgui.Vec2{X: float32(w), Y: float32(ht)})
	return h
}

// Invalidate wakes a loop blocked in glfw.WaitEvents. Pass it to
// flowgui.WithInvalidate.
func Invalidate() { glfw.PostEmptyEvent() }

func (h *Host) cursor() flowgui.Vec2 {
	x, y := h.window.GetCursorPos()
	return flowgui.Vec2{X: float32(x), Y: float32(y)}
}

func (h *Host) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Release {
		return
	}
	k := glfwKey(key)
	if k == flowgui.KeyNone {
		return
	}
	h.engine.OnKey(k, glfwMods(mods))
}

func (h *Host) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b := glfwMouseButton(button)
	if b == flowgui.MouseButtonNone {
		return
	}
	pos := h.cursor()
	switch action {
	case glfw.Press:
		h.held = b
		h.engine.OnPointerDown(pos, b)
		now := time.Now()
		if b == h.lastBtn && now.Sub(h.lastClick) < doubleClickTime &&
			math.Hypot(float64(pos.X-h.lastPos.X), float64(pos.Y-h.lastPos.Y)) <= doubleClickDistance {
			h.engine.OnDoubleClick(pos, b)
			h.lastBtn = flowgui.MouseButtonNone
			return
		}
		h.lastClick, h.lastPos, h.lastBtn = now, pos, b
	case glfw.Release:
		if b == h.held {
			h.held = flowgui.MouseButtonNone
		}
		h.engine.OnPointerUp(pos)
	}
}

func (h *Host) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	h.engine.OnWheel(h.cursor(), flowgui.Vec2{X: float32(xoff), Y: float32(yoff)})
}

func (h *Host) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	h.engine.OnPointerMove(flowgui.Vec2{X: float32(xpos), Y: float32(ypos)}, h.held)
}

func (h *Host) sizeCallback(w *glfw.Window, width, height int) {
	h.engine.Resize(flowgui.Vec2{X: float32(width), Y: float32(height)})
}

func glfwMods(mods glfw.ModifierKey) flowgui.Modifiers {
	var m flowgui.Modifiers
	if mods&glfw.ModShift != 0 {
		m |= flowgui.ModShift
	}
	if mods&glfw.ModControl != 0 {
		m |= flowgui.ModCtrl
	}
	if mods&glfw.ModAlt != 0 {
		m |= flowgui.ModAlt
	}
	if mods&glfw.ModSuper != 0 {
		m |= flowgui.ModSuper
	}
	return m
}

func glfwKey(key glfw.Key) flowgui.Key {
	switch key {
	case glfw.KeyTab:
		return flowgui.KeyTab
	case glfw.KeyLeft:
		return flowgui.KeyLeft
	case glfw.KeyRight:
		return flowgui.KeyRight
	case glfw.KeyUp:
		return flowgui.KeyUp
	case glfw.KeyDown:
		return flowgui.KeyDown
	case glfw.KeyPageUp:
		return flowgui.KeyPageUp
	case glfw.KeyPageDown:
		return flowgui.KeyPageDown
	case glfw.KeyHome:
		return flowgui.KeyHome
	case glfw.KeyEnd:
		return flowgui.KeyEnd
	case glfw.KeyDelete:
		return flowgui.KeyDelete
	case glfw.KeyBackspace:
		return flowgui.KeyBackspace
	case glfw.KeySpace:
		return flowgui.KeySpace
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return flowgui.KeyEnter
	case glfw.KeyEscape:
		return flowgui.KeyEscape
	default:
		return flowgui.KeyNone
	}
}

func glfwMouseButton(button glfw.MouseButton) flowgui.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return flowgui.MouseButtonLeft
	case glfw.MouseButtonRight:
		return flowgui.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return flowgui.MouseButtonMiddle
	default:
		return flowgui.MouseButtonNone
	}
}
