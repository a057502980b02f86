// Command ebiten runs the tile browser on Ebitengine.
//
//	go run ./example/ebiten/
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/go-theft-auto/flowgui"
	"github.com/go-theft-auto/flowgui/backend/ebitengine"
	"github.com/go-theft-auto/flowgui/internal/demo"
)

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

	canvas, err := ebitengine.NewCanvas(ebitengine.WithTheme(cfg.Theme))
	if err != nil {
		return err
	}
	browser := demo.NewBrowser(40)
	game := ebitengine.NewGame(flowgui.New(browser.Build, flowgui.WithConfig(cfg)), canvas)
	game.OnError = func(err error) error {
		fmt.Fprintln(os.Stderr, err)
		return nil
	}

	ebiten.SetWindowTitle("flowgui ebiten example")
	ebiten.SetWindowSize(800, 600)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("ebiten: %w", err)
	}
	return nil
}
