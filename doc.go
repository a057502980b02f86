/*
Package flowgui is an immediate-mode UI engine with flow layout, nested
scrolling viewports and drag and drop.

# Overview

The whole UI is described by one build function that the engine calls on
every paint. Widgets are identified by a hash of their key and the ID
stack, so state such as pressed, checked or scroll position survives
between builds without the caller storing it. A build may ask for another
pass with Repaint; the engine keeps rebuilding until a pass is stable and
only then draws it.

# Quick Start

	ui := flowgui.New(func(e *flowgui.Engine) {
	    e.Label("Tiles")
	    e.SameLine(true)
	    if e.Button("add", "Add") {
	        tiles = append(tiles, newTile())
	    }
	    e.NewLine()

	    e.BeginViewport("grid", flowgui.Vec2{X: 640, Y: 480},
	        flowgui.WithItemSize(flowgui.Vec2{X: 64, Y: 64}))
	    for i, t := range tiles {
	        e.PushIDInt(i)
	        e.Image("tile", t.Image, flowgui.Vec2{X: 64, Y: 64})
	        if e.BeginDrag() {
	            e.SetDragData("tile", i)
	        }
	        e.PopID()
	    }
	    e.EndViewport()
	}, flowgui.WithSize(flowgui.Vec2{X: 800, Y: 600}))

	// host loop
	ui.OnPointerMove(pos, flowgui.MouseButtonNone)
	if ui.NeedsPaint() {
	    if err := ui.OnPaint(canvas); err != nil {
	        log.Println(err)
	    }
	}

# Layout

Elements flow left to right while SameLine is on and wrap to a new row
when BreakLines is on and the next element would overflow the frame.
With SameLine off every element starts a new row. BeginGroup and EndGroup
measure a block of widgets and place it as one element.

# Viewports

BeginViewport opens a clipped, scrollable region. Scrollbars appear only
when the content does not fit, which may take a second pass on the first
frame. A viewport with an item size is an item grid: it reports drop slots
and, when resizable, snaps its size to whole cells. ClipItems limits a
large grid to the rows in view while keeping the full scroll range.

# Input

Hosts forward pointer, wheel and key events to the engine. Events are hit
tested against the widgets of the last drawn pass. The left button
presses and toggles widgets, the middle button pans viewports and the
right button asks for a context menu. Tab moves focus between widgets
that want it and the arrow keys move it to the nearest one in that
direction (FocusNavigate).

# Backends

The engine draws through the DrawingContext interface. Ready-made
contexts live in backend/raster (image.RGBA), backend/opengl (GLFW and
OpenGL 4.1) and backend/ebitengine.
*/
package flowgui
