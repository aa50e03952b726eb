package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/user-none/crtfx/crt"
	"github.com/user-none/crtfx/ebitenhost"
	"github.com/sqweek/dialog"
	"github.com/user-none/crtfx/storage"
	"github.com/user-none/crtfx/style"
	"golang.design/x/clipboard"
)

// keyHelp lists the keyboard shortcuts
const keyHelp = "SPACE toggle  P preset  R reset  arrows tune\nS save  O open  C copy  T theme\nF12 shot  H hide  ESC quit"

// App is the demo game: a test pattern drawn through the CRT effect with
// keyboard tuning
type App struct {
	renderer *ebitenhost.Renderer
	scene    *ebitenhost.Scene
	fx       *crt.Controller

	// Desired options, reapplied on toggle and saved on request
	options     *crt.Options
	optionsPath string
	watch       bool
	watcher     *OptionsWatcher

	// Path picked in the open dialog, "" when cancelled
	opened  chan string
	opening bool

	presetIndex int
	selected    int
	showHUD     bool

	pattern      *TestPattern
	notification *Notification

	// Slider panel; nil when the UI font could not be loaded
	panel *TuningPanel

	clipboardOK       bool
	screenshotPending bool
}

// AppConfig holds the command line settings
type AppConfig struct {
	Width       int
	Height      int
	OptionsPath string
	Preset      string
	Software    bool
	Watch       bool
}

// NewApp builds the scene and enables the effect with the initial options
func NewApp(cfg AppConfig) (*App, error) {
	var r *ebitenhost.Renderer
	if cfg.Software {
		r = ebitenhost.NewSoftwareRenderer(cfg.Width, cfg.Height)
	} else {
		r = ebitenhost.NewRenderer(cfg.Width, cfg.Height)
	}
	scene := ebitenhost.NewScene(r)

	a := &App{
		renderer:     r,
		scene:        scene,
		fx:           crt.NewController(scene),
		optionsPath:  cfg.OptionsPath,
		watch:        cfg.Watch,
		opened:       make(chan string, 1),
		showHUD:      true,
		pattern:      &TestPattern{},
		notification: NewNotification(),
	}

	opts, err := storage.LoadOptionsOrDefault(cfg.OptionsPath)
	if err != nil {
		return nil, err
	}
	if cfg.Preset != "" {
		p := crt.PresetByID(cfg.Preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %q (available: %s)", cfg.Preset, strings.Join(crt.PresetIDs(), ", "))
		}
		opts = p.Options
		a.presetIndex = presetIndex(cfg.Preset)
	}
	a.options = opts

	a.startWatcher()

	if err := clipboard.Init(); err != nil {
		log.Printf("Warning: clipboard not available: %v", err)
	} else {
		a.clipboardOK = true
	}

	a.buildPanel()

	a.fx.Enable(a.options)
	if !r.ShaderCapable() {
		a.notification.ShowDefault("Software renderer: effect unavailable")
	}
	return a, nil
}

func presetIndex(id string) int {
	for i, p := range crt.Presets {
		if p.ID == id {
			return i
		}
	}
	return 0
}

// startWatcher watches the current options path when hot reload is on
func (a *App) startWatcher() {
	a.stopWatcher()
	if !a.watch {
		return
	}
	w, err := NewOptionsWatcher(a.optionsPath)
	if err != nil {
		log.Printf("Warning: options hot-reload not available: %v", err)
		return
	}
	a.watcher = w
}

func (a *App) stopWatcher() {
	if a.watcher == nil {
		return
	}
	if err := a.watcher.Close(); err != nil {
		log.Printf("Warning: failed to close options watcher: %v", err)
	}
	a.watcher = nil
}

// buildPanel (re)creates the slider panel with the current theme. Without
// a UI font the debug text HUD is used instead.
func (a *App) buildPanel() {
	if *style.FontFace() == nil {
		a.panel = nil
		return
	}
	a.panel = NewTuningPanel(PanelActions{
		SetKnob:    a.setKnob,
		Toggle:     a.toggle,
		NextPreset: a.nextPreset,
		Reset:      a.reset,
		Save:       a.saveOptions,
		Open:       a.openOptionsDialog,
		NextTheme:  a.nextTheme,
	})
}

// Close releases the watcher and tears the scene down
func (a *App) Close() {
	a.stopWatcher()
	a.scene.Destroy()
}

// Update implements ebiten.Game
func (a *App) Update() error {
	a.scene.Tick(time.Now())
	a.pattern.Advance(a.scene.Delta())

	if a.watcher != nil && a.watcher.Changed() {
		a.reloadOptions()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.scene.Shutdown()
		return ebiten.Termination
	}

	select {
	case path := <-a.opened:
		a.opening = false
		if path != "" {
			a.openOptions(path)
		}
	default:
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		a.toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		a.nextPreset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.reset()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		a.selected = (a.selected + len(crt.AvailableParams) - 1) % len(crt.AvailableParams)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		a.selected = (a.selected + 1) % len(crt.AvailableParams)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		a.nudge(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		a.nudge(1)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		a.saveOptions()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		a.openOptionsDialog()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		a.copyOptions()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		a.nextTheme()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		a.showHUD = !a.showHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		a.screenshotPending = true
	}

	if a.showHUD && a.panel != nil {
		a.syncPanel()
		a.panel.Update()
	}

	return nil
}

// syncPanel shows the desired options, which stay editable while the
// effect is off
func (a *App) syncPanel() {
	a.panel.Sync(crt.Merge(a.options), a.selected, a.fx.Enabled(), crt.Presets[a.presetIndex].Name)
}

func (a *App) toggle() {
	a.fx.Toggle(a.options)
	if a.fx.Enabled() {
		a.notification.ShowDefault("CRT on")
	} else {
		a.notification.ShowDefault("CRT off")
	}
}

func (a *App) nextPreset() {
	a.presetIndex = (a.presetIndex + 1) % len(crt.Presets)
	p := crt.Presets[a.presetIndex]
	a.apply(p.Options)
	a.notification.ShowDefault("Preset: " + p.Name)
}

func (a *App) reset() {
	a.apply(&crt.Options{})
	a.notification.ShowDefault("Defaults restored")
}

func (a *App) nextTheme() {
	style.ApplyTheme(style.NextTheme())
	a.buildPanel()
	a.notification.ShowDefault("Theme: " + style.CurrentThemeName)
}

// apply replaces the desired options and pushes them to the effect
func (a *App) apply(opts *crt.Options) {
	a.options = opts
	a.fx.Update(opts)
}

// setKnob sets one knob and pushes the result
func (a *App) setKnob(key string, v float64) {
	p := crt.Merge(a.options)
	if !p.Set(key, v) {
		return
	}
	a.apply(p.Options())
}

// nudge steps the selected knob by one Step in dir
func (a *App) nudge(dir float64) {
	info := crt.AvailableParams[a.selected]
	a.setKnob(info.Key, crt.Merge(a.options).Get(info.Key)+dir*info.Step)
}

func (a *App) reloadOptions() {
	opts, err := storage.LoadOptions(a.optionsPath)
	if err != nil {
		log.Printf("Warning: failed to reload options: %v", err)
		a.notification.ShowDefault("Reload failed")
		return
	}
	a.apply(opts)
	a.notification.ShowDefault("Options reloaded")
}

// openOptionsDialog asks for an options file. The result arrives on
// a.opened and is handled in Update.
func (a *App) openOptionsDialog() {
	if a.opening {
		return
	}
	a.opening = true
	// Run dialog in goroutine to avoid blocking Ebiten's main thread
	go func() {
		path, err := dialog.File().
			Title("Open CRT options").
			Filter("Options", "json", "yaml", "yml", "toml").
			Load()
		if err != nil {
			if !errors.Is(err, dialog.ErrCancelled) {
				log.Printf("Warning: options dialog failed: %v", err)
			}
			path = ""
		}
		a.opened <- path
	}()
}

// openOptions switches to the options file at path, applying it and
// moving the hot-reload watch there
func (a *App) openOptions(path string) {
	opts, err := storage.LoadOptions(path)
	if err != nil {
		log.Printf("Warning: failed to open options: %v", err)
		a.notification.ShowDefault("Open failed")
		return
	}
	a.optionsPath = path
	a.startWatcher()
	a.apply(opts)
	a.notification.ShowDefault("Opened " + path)
}

func (a *App) saveOptions() {
	if err := storage.SaveOptions(a.optionsPath, a.options); err != nil {
		log.Printf("Failed to save options: %v", err)
		a.notification.ShowDefault("Save failed")
		return
	}
	a.notification.ShowDefault("Saved " + a.optionsPath)
}

func (a *App) copyOptions() {
	if !a.clipboardOK {
		a.notification.ShowDefault("Clipboard unavailable")
		return
	}
	data, err := json.MarshalIndent(crt.Merge(a.options), "", "  ")
	if err != nil {
		log.Printf("Failed to encode options: %v", err)
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	a.notification.ShowDefault("Options copied")
}

// Draw implements ebiten.Game
func (a *App) Draw(screen *ebiten.Image) {
	label := "CRT OFF"
	if a.fx.Enabled() {
		label = "CRT ON - " + crt.Presets[a.presetIndex].Name
	}

	a.scene.Draw(screen, func(cam *ebitenhost.Camera, view *ebiten.Image) {
		a.pattern.Draw(view, label)
	})

	// Take screenshot before the HUD so only the filtered image is saved
	if a.screenshotPending {
		a.screenshotPending = false
		path, err := TakeScreenshot(screen)
		if err != nil {
			log.Printf("Screenshot failed: %v", err)
			a.notification.ShowDefault("Screenshot failed")
		} else {
			a.notification.ShowDefault("Saved " + path)
		}
	}

	if a.showHUD {
		if a.panel != nil {
			a.panel.Draw(screen)
		} else {
			ebitenutil.DebugPrintAt(screen, a.hudText(), 12, screen.Bounds().Dy()/3)
		}
	}
	a.notification.Draw(screen)
}

// hudText lists every knob with the selected one marked
func (a *App) hudText() string {
	p := a.fx.Params()
	outOfRange := make(map[string]bool)
	for _, key := range crt.OutOfRange(p) {
		outOfRange[key] = true
	}

	var sb strings.Builder
	for i, info := range crt.AvailableParams {
		marker := "  "
		if i == a.selected {
			marker = "> "
		}
		warn := ""
		if outOfRange[info.Key] {
			warn = " (!)"
		}
		fmt.Fprintf(&sb, "%s%-20s %8.4f%s\n", marker, info.Name, p.Get(info.Key), warn)
	}
	sb.WriteString("\n" + keyHelp)
	return sb.String()
}

// Layout implements ebiten.Game
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.scene.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
