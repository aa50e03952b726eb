// Command crtdemo shows the CRT effect on a test pattern and lets the
// effect be tuned live from the keyboard or an options file.
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/user-none/crtfx/storage"
)

func main() {
	cfg := AppConfig{}
	flag.IntVar(&cfg.Width, "width", 960, "window width")
	flag.IntVar(&cfg.Height, "height", 720, "window height")
	flag.StringVar(&cfg.OptionsPath, "options", "", "options file (.json, .yaml, .yml or .toml)")
	flag.StringVar(&cfg.Preset, "preset", "", "start from a built-in preset")
	flag.BoolVar(&cfg.Software, "software", false, "use the renderer without shader support")
	flag.BoolVar(&cfg.Watch, "watch", true, "reload the options file when it changes")
	flag.Parse()

	storage.Init("crtfx")
	if cfg.OptionsPath == "" {
		path, err := storage.GetOptionsPath()
		if err != nil {
			log.Fatalf("Failed to resolve options path: %v", err)
		}
		cfg.OptionsPath = path
	}

	ebiten.SetWindowTitle("crtfx demo")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	app, err := NewApp(cfg)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer app.Close()

	if err := ebiten.RunGame(app); err != nil {
		log.Printf("Game loop error: %v", err)
	}
}
