package ebitengine

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/go-theft-auto/flowgui"
)

// Game runs an engine inside Ebitengine. Input is polled every tick and
// forwarded as events; the frame is rebuilt only when the engine asks for
// a paint and is otherwise redrawn from a cached image.
type Game struct {
	Engine *flowgui.Engine
	Canvas *Canvas

	// OnError receives paint errors. Returning a non-nil error stops the
	// game.
	OnError func(err error) error

	frame   *ebiten.Image
	cursor  image.Point
	held    flowgui.MouseButton
	lastErr error
}

// NewGame creates a game for e painted through c.
func NewGame(e *flowgui.Engine, c *Canvas) *Game {
	return &Game{Engine: e, Canvas: c, held: flowgui.MouseButtonNone}
}

var mouseButtons = []struct {
	eb ebiten.MouseButton
	fg flowgui.MouseButton
}{
	{ebiten.MouseButtonLeft, flowgui.MouseButtonLeft},
	{ebiten.MouseButtonRight, flowgui.MouseButtonRight},
	{ebiten.MouseButtonMiddle, flowgui.MouseButtonMiddle},
}

// Update forwards the input of one tick to the engine.
func (g *Game) Update() error {
	if g.lastErr != nil {
		err := g.lastErr
		g.lastErr = nil
		if g.OnError != nil {
			return g.OnError(err)
		}
	}

	x, y := ebiten.CursorPosition()
	pos := flowgui.Vec2{X: float32(x), Y: float32(y)}
	if p := (image.Point{X: x, Y: y}); p != g.cursor {
		g.cursor = p
		g.Engine.OnPointerMove(pos, g.held)
	}

	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b.eb) {
			g.held = b.fg
			g.Engine.OnPointerDown(pos, b.fg)
		}
		if inpututil.IsMouseButtonJustReleased(b.eb) {
			if g.held == b.fg {
				g.held = flowgui.MouseButtonNone
			}
			g.Engine.OnPointerUp(pos)
		}
	}

	if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
		g.Engine.OnWheel(pos, flowgui.Vec2{X: float32(wx), Y: float32(wy)})
	}

	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if fk := ebitenKey(k); fk != flowgui.KeyNone {
			g.Engine.OnKey(fk, currentMods())
		}
	}
	return nil
}

// Draw paints the engine when it needs it and copies the cached frame to
// screen.
func (g *Game) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	if g.frame == nil || g.frame.Bounds() != b {
		if g.frame != nil {
			g.frame.Deallocate()
		}
		g.frame = ebiten.NewImage(b.Dx(), b.Dy())
		g.Engine.Repaint()
	}
	if g.Engine.NeedsPaint() {
		if err := g.Canvas.Paint(g.frame, g.Engine); err != nil {
			g.lastErr = err
		}
	}
	screen.DrawImage(g.frame, nil)
}

// Layout sizes the engine surface to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.Engine.Resize(flowgui.Vec2{X: float32(outsideWidth), Y: float32(outsideHeight)})
	return outsideWidth, outsideHeight
}

func currentMods() flowgui.Modifiers {
	var m flowgui.Modifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		m |= flowgui.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		m |= flowgui.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		m |= flowgui.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		m |= flowgui.ModSuper
	}
	return m
}

func ebitenKey(k ebiten.Key) flowgui.Key {
	switch k {
	case ebiten.KeyTab:
		return flowgui.KeyTab
	case ebiten.KeyArrowLeft:
		return flowgui.KeyLeft
	case ebiten.KeyArrowRight:
		return flowgui.KeyRight
	case ebiten.KeyArrowUp:
		return flowgui.KeyUp
	case ebiten.KeyArrowDown:
		return flowgui.KeyDown
	case ebiten.KeyPageUp:
		return flowgui.KeyPageUp
	case ebiten.KeyPageDown:
		return flowgui.KeyPageDown
	case ebiten.KeyHome:
		return flowgui.KeyHome
	case ebiten.KeyEnd:
		return flowgui.KeyEnd
	case ebiten.KeyDelete:
		return flowgui.KeyDelete
	case ebiten.KeyBackspace:
		return flowgui.KeyBackspace
	case ebiten.KeySpace:
		return flowgui.KeySpace
	case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
		return flowgui.KeyEnter
	case ebiten.KeyEscape:
		return flowgui.KeyEscape
	default:
		return flowgui.KeyNone
	}
}
