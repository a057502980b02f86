package flowgui

import "errors"

// Programmer errors. Operations that detect them panic with an error
// wrapping one of these, so callers and tests can match with errors.Is.
var (
	// ErrUnbalancedID reports PopID without PushID, or IDs left pushed at
	// the end of a build pass.
	ErrUnbalancedID = errors.New("flowgui: unbalanced PushID/PopID")

	// ErrUnbalancedLayout reports a layout, group or viewport popped
	// without a matching push, or left open at the end of a build pass.
	ErrUnbalancedLayout = errors.New("flowgui: unbalanced layout push/pop")

	// ErrNoCurrentWidget reports a call that needs a just-placed widget.
	ErrNoCurrentWidget = errors.New("flowgui: no widget placed in this pass")

	// ErrNotDragging reports drag data set by a widget that is not the
	// source of the active drag.
	ErrNotDragging = errors.New("flowgui: widget is not dragging")
)

// ErrRebuildLimit is returned by OnPaint when the build callback keeps
// requesting repaints past Style.MaxRebuilds.
var ErrRebuildLimit = errors.New("flowgui: layout did not stabilize")
