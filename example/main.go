// Example runs the tile browser in a GLFW window painted with OpenGL.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Drag tiles to reorder them, drag the grid corner to resize it, and use
// Tab and Delete on a focused tile. The window only repaints when the UI
// asks for it.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/flowgui"
	"github.com/go-theft-auto/flowgui/backend/opengl"
	"github.com/go-theft-auto/flowgui/internal/demo"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "flowgui example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "flowgui.toml", "style and theme config")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()
	flowgui.SetVerbose(*verbose)

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := flowgui.LoadConfig(configPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	w, h := window.GetFramebufferSize()
	renderer, err := opengl.NewRenderer(w, h, opengl.WithTheme(cfg.Theme))
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	browser := demo.NewBrowser(40)
	ui := flowgui.New(browser.Build,
		flowgui.WithConfig(cfg),
		flowgui.WithInvalidate(opengl.Invalidate))
	opengl.NewHost(window, ui)

	bg := cfg.Theme.BackgroundColor()
	for !window.ShouldClose() {
		glfw.WaitEvents()
		if !ui.NeedsPaint() {
			continue
		}

		w, h := window.GetFramebufferSize()
		renderer.Resize(w, h)
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(float32(bg.R)/255, float32(bg.G)/255, float32(bg.B)/255, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		if err := renderer.Paint(ui); err != nil {
			return fmt.Errorf("gui render: %w", err)
		}
		window.SwapBuffers()
	}
	return nil
}
