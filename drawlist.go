package flowgui

import "sync"

// drawListPool recycles draw lists. Every build pass allocates one list
// per layout scope, and a rejected pass throws all of them away.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{Cmds: make([]DrawCommand, 0, 64)}
	},
}

func acquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

func releaseDrawList(dl *DrawList) {
	if dl != nil {
		dl.Clear()
		drawListPool.Put(dl)
	}
}

// DrawOp tags a DrawCommand.
type DrawOp uint8

const (
	OpCallback DrawOp = iota // Fn(dc)
	OpSave
	OpRestore
	OpClip // Rect
)

func (op DrawOp) String() string {
	switch op {
	case OpCallback:
		return "callback"
	case OpSave:
		return "save"
	case OpRestore:
		return "restore"
	case OpClip:
		return "clip"
	default:
		return "unknown"
	}
}

// DrawCommand is one deferred paint operation.
type DrawCommand struct {
	Op   DrawOp
	Rect Rect
	Fn   func(dc DrawingContext)
}

// DrawList is an ordered sequence of draw commands. Later commands paint
// on top of earlier ones.
type DrawList struct {
	Cmds []DrawCommand
}

// Clear empties the list, keeping its capacity.
func (dl *DrawList) Clear() {
	for i := range dl.Cmds {
		dl.Cmds[i].Fn = nil
	}
	dl.Cmds = dl.Cmds[:0]
}

// Len returns the number of commands.
func (dl *DrawList) Len() int { return len(dl.Cmds) }

// Callback appends a paint callback.
func (dl *DrawList) Callback(fn func(dc DrawingContext)) {
	dl.Cmds = append(dl.Cmds, DrawCommand{Op: OpCallback, Fn: fn})
}

// Save appends a Save.
func (dl *DrawList) Save() {
	dl.Cmds = append(dl.Cmds, DrawCommand{Op: OpSave})
}

// Restore appends a Restore.
func (dl *DrawList) Restore() {
	dl.Cmds = append(dl.Cmds, DrawCommand{Op: OpRestore})
}

// Clip appends a Clip to r.
func (dl *DrawList) Clip(r Rect) {
	dl.Cmds = append(dl.Cmds, DrawCommand{Op: OpClip, Rect: r})
}

// Append splices other onto the end of dl.
func (dl *DrawList) Append(other *DrawList) {
	dl.Cmds = append(dl.Cmds, other.Cmds...)
}

// cut removes the commands from index start on and returns them.
func (dl *DrawList) cut(start int) []DrawCommand {
	if start < 0 || start >= len(dl.Cmds) {
		return nil
	}
	out := make([]DrawCommand, len(dl.Cmds)-start)
	copy(out, dl.Cmds[start:])
	dl.Cmds = dl.Cmds[:start]
	return out
}

// translateClips moves every clip rectangle by d.
func (dl *DrawList) translateClips(d Vec2) {
	for i := range dl.Cmds {
		if dl.Cmds[i].Op == OpClip {
			dl.Cmds[i].Rect = dl.Cmds[i].Rect.Translate(d)
		}
	}
}

// Execute replays the list against dc.
func (dl *DrawList) Execute(dc DrawingContext) {
	for _, cmd := range dl.Cmds {
		switch cmd.Op {
		case OpCallback:
			if cmd.Fn != nil {
				cmd.Fn(dc)
			}
		case OpSave:
			dc.Save()
		case OpRestore:
			dc.Restore()
		case OpClip:
			dc.Clip(cmd.Rect)
		}
	}
}
