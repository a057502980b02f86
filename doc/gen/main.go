// Command gen renders widget screenshots with the raster backend and saves
// them as JPEG files. It needs no window or GPU.
//
// Usage:
//
//	go run ./doc/gen/ [-out doc/imgs] [-config flowgui.toml]
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/jpeg"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-theft-auto/flowgui"
	"github.com/go-theft-auto/flowgui/backend/raster"
	"github.com/go-theft-auto/flowgui/internal/demo"
)

func main() {
	outDir := flag.String("out", filepath.Join("doc", "imgs"), "output directory")
	configPath := flag.String("config", "flowgui.toml", "style and theme config")
	flag.Parse()

	if err := run(*outDir, *configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single screenshot to capture.
type screenshot struct {
	name   string // filename without extension
	width  int
	height int
	build  flowgui.BuildFunc
	// input runs between the first and second paint, for hover and
	// scroll states.
	input func(e *flowgui.Engine)
}

func run(outDir, configPath string) error {
	cfg, err := flowgui.LoadConfig(configPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	face, err := raster.NewGoRegular(13)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
		c := raster.New(img, raster.WithTheme(cfg.Theme), raster.WithFace(face))
		if err := capture(c, cfg, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(c *raster.Canvas, cfg flowgui.Config, s screenshot, outDir string) error {
	// Fresh engine per screenshot to avoid state leaking between captures.
	e := flowgui.New(s.build,
		flowgui.WithConfig(cfg),
		flowgui.WithSize(flowgui.Vec2{X: float32(s.width), Y: float32(s.height)}))
	if err := c.Paint(e); err != nil {
		return err
	}
	if s.input != nil {
		s.input(e)
		if err := c.Paint(e); err != nil {
			return err
		}
	}

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, c.Image(), &jpeg.Options{Quality: 90})
}

// buildScreenshots returns the list of all screenshots to generate.
func buildScreenshots() []screenshot {
	radioIdx := 1

	return []screenshot{
		{
			name: "buttons", width: 360, height: 90,
			build: func(e *flowgui.Engine) {
				e.SameLine(true)
				e.Button("ok", "OK")
				e.Button("cancel", "Cancel")
				e.Button("off", "Disabled", flowgui.WithDisabled(true))
				e.Toggle("toggle", "Toggle", flowgui.DefaultChecked(true))
			},
			input: func(e *flowgui.Engine) {
				e.OnPointerMove(flowgui.Vec2{X: 10, Y: 10}, flowgui.MouseButtonNone)
			},
		},
		{
			name: "radios", width: 360, height: 60,
			build: func(e *flowgui.Engine) {
				e.SameLine(true)
				e.RadioGroup("size", &radioIdx, []string{"Small", "Medium", "Large"})
			},
		},
		{
			name: "viewport", width: 320, height: 200,
			build: func(e *flowgui.Engine) {
				e.BeginViewport("list", flowgui.Vec2{X: 300, Y: 180})
				for i := 0; i < 30; i++ {
					e.Label(fmt.Sprintf("Row %d of a scrolling list", i))
				}
				e.EndViewport()
			},
			input: func(e *flowgui.Engine) {
				e.OnWheel(flowgui.Vec2{X: 50, Y: 50}, flowgui.Vec2{Y: -3})
			},
		},
		{
			name: "browser", width: 640, height: 400,
			build: demo.NewBrowser(30).Build,
		},
	}
}
