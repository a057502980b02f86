package flowgui

import (
	"fmt"
	"log/slog"
	"time"
)

// BuildFunc describes the whole UI. It is called once per build pass and
// must place the same widgets for the same state.
type BuildFunc func(e *Engine)

// Engine is one immediate-mode UI surface. It owns every widget record,
// the layout stack, the draw lists and the input state. An Engine is not
// safe for concurrent use; call it from the host's UI thread only.
type Engine struct {
	build      BuildFunc
	style      Style
	logger     *slog.Logger
	invalidate func()
	size       Vec2

	store store
	frame uint64
	pass  uint64

	// Build state, reset at the start of every pass.
	idStack    []ID
	layout     *layoutContext
	layouts    []*layoutContext
	groups     []*group
	viewports  []*Widget
	current    *Widget
	candidates []*Widget
	overlay    *DrawList
	before     []func()
	radios     map[string][]*Widget
	labelSeq   int
	dc         DrawingContext

	after []func()

	repaint  bool
	painting bool

	// hitList is the candidate list of the last completed pass. Input is
	// dispatched against it.
	hitList    []*Widget
	hitScratch []*Widget

	pointer Vec2
	capture ID
	focus   ID
	drag    *DragSession

	stats Stats
}

// New creates an engine that describes its UI with build.
func New(build BuildFunc, opts ...Option) *Engine {
	e := &Engine{
		build:  build,
		style:  DefaultStyle(),
		logger: defaultLogger,
		radios: make(map[string][]*Widget),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.style = e.style.withDefaults()
	e.store = newStore(e.style.WidgetWarnLimit)
	e.repaint = true
	return e
}

// Style returns the engine metrics.
func (e *Engine) Style() Style { return e.style }

// Frame returns the number of completed paints.
func (e *Engine) Frame() uint64 { return e.frame }

// Size returns the surface size.
func (e *Engine) Size() Vec2 { return e.size }

// Resize sets the surface size and requests a repaint.
func (e *Engine) Resize(size Vec2) {
	if size == e.size {
		return
	}
	e.size = size
	e.Repaint()
}

// Repaint requests another paint. Called during a build pass it discards
// the pass and builds again before anything is drawn. Outside a paint it
// notifies the host through the invalidate callback.
func (e *Engine) Repaint() {
	if e.repaint {
		return
	}
	e.repaint = true
	if !e.painting && e.invalidate != nil {
		e.invalidate()
	}
}

// NeedsPaint reports whether a repaint was requested since the last paint.
func (e *Engine) NeedsPaint() bool { return e.repaint }

// BeforePaint queues fn to run after the current build pass, before the
// engine decides whether the pass is stable. Queued outside a build, fn
// waits for the next pass. Callbacks that change widget flags must call
// Repaint.
func (e *Engine) BeforePaint(fn func()) {
	e.before = append(e.before, fn)
}

// AfterPaint queues fn to run once after the next stable pass has been
// drawn. Use it for work that must not affect the current layout.
func (e *Engine) AfterPaint(fn func()) {
	e.after = append(e.after, fn)
}

// OnPaint builds the UI until a pass finishes without a repaint request,
// then draws that pass into dc. When the build keeps requesting repaints
// past Style.MaxRebuilds nothing is drawn and an error wrapping
// ErrRebuildLimit is returned.
func (e *Engine) OnPaint(dc DrawingContext) error {
	start := time.Now()
	e.painting = true
	e.dc = dc
	defer func() {
		e.painting = false
		e.dc = nil
	}()

	passes := 0
	for {
		if passes == e.style.MaxRebuilds {
			e.discardPass()
			e.logger.Warn("layout did not stabilize", "passes", passes, "frame", e.frame)
			return fmt.Errorf("frame %d after %d passes: %w", e.frame, passes, ErrRebuildLimit)
		}
		passes++
		e.repaint = false
		e.beginPass()
		e.build(e)
		e.endPass()
		if !e.repaint {
			break
		}
		e.logger.Debug("rebuild requested", "frame", e.frame, "pass", passes)
		e.discardPass()
	}

	e.hitList, e.candidates = e.candidates, e.hitList[:0]
	root := e.layout
	root.list.Execute(dc)
	e.overlay.Execute(dc)
	e.discardPass()
	e.painting = false

	for _, w := range e.hitList {
		w.toggled = false
	}
	after := e.after
	e.after = nil
	for _, fn := range after {
		fn()
	}
	if e.drag != nil && e.drag.dropped {
		e.drag = nil
	}

	e.frame++
	if e.style.PruneAfter > 0 {
		e.Prune(e.style.PruneAfter)
	}
	e.stats.record(e, passes, time.Since(start))
	return nil
}

// beginPass resets all per-pass build state.
func (e *Engine) beginPass() {
	e.pass++
	e.idStack = e.idStack[:0]
	e.layouts = e.layouts[:0]
	e.groups = e.groups[:0]
	e.viewports = e.viewports[:0]
	e.current = nil
	e.candidates = e.candidates[:0]
	e.labelSeq = 0
	clear(e.radios)

	frame := Rect{W: e.size.X, H: e.size.Y}
	e.layout = &layoutContext{
		kind:       kindRoot,
		breakLines: true,
		margin:     e.style.Margin,
		frame:      frame,
		clip:       frame,
		list:       acquireDrawList(),
	}
	e.overlay = acquireDrawList()
}

// endPass checks that the build closed everything it opened, then runs the
// before-paint queue.
func (e *Engine) endPass() {
	if n := len(e.idStack); n > 0 {
		panic(fmt.Errorf("%d IDs still pushed at end of build: %w", n, ErrUnbalancedID))
	}
	if n := len(e.layouts); n > 0 {
		panic(fmt.Errorf("%s still open at end of build: %w", e.layout.kind, ErrUnbalancedLayout))
	}
	for i := 0; i < len(e.before); i++ {
		e.before[i]()
	}
	clear(e.before)
	e.before = e.before[:0]
}

// discardPass returns the draw lists of the current pass to the pool.
func (e *Engine) discardPass() {
	if e.layout != nil {
		releaseDrawList(e.layout.list)
		for _, l := range e.layouts {
			releaseDrawList(l.list)
		}
	}
	releaseDrawList(e.overlay)
	e.layout, e.overlay = nil, nil
	e.layouts = e.layouts[:0]
}

// MeasureText measures text with the drawing context of the paint in
// progress. Outside a paint, or when the context cannot measure, the size
// is zero.
func (e *Engine) MeasureText(text string) Vec2 {
	if e.dc == nil {
		return Vec2{}
	}
	size, err := e.dc.MeasureText(text)
	if err != nil {
		e.logger.Debug("measure text failed", "text", text, "err", err)
		return Vec2{}
	}
	return size
}

// Prune deletes widget records not referenced in the last maxAge frames
// and drops every engine reference to them. It returns how many were
// removed.
func (e *Engine) Prune(maxAge uint64) int {
	n := e.store.prune(e.frame, maxAge)
	if n == 0 {
		return 0
	}
	if _, ok := e.store.get(e.capture); !ok {
		e.capture = 0
	}
	if _, ok := e.store.get(e.focus); !ok {
		e.focus = 0
	}
	if e.drag != nil {
		if _, ok := e.store.get(e.drag.Source); !ok {
			e.drag = nil
		}
	}
	live := e.hitList[:0]
	for _, w := range e.hitList {
		if _, ok := e.store.get(w.ID); ok {
			live = append(live, w)
		}
	}
	e.hitList = live
	e.logger.Debug("pruned widgets", "removed", n, "remaining", e.store.len())
	return n
}
