package ebitenhost

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/user-none/crtfx/crt"
)

// Scene groups cameras on a renderer and dispatches resize and teardown
// events. Drive it from ebiten.Game: Layout from Layout, Tick from Update,
// Draw from Draw.
type Scene struct {
	renderer *Renderer
	cameras  []*Camera

	resize       map[int]func()
	nextResizeID int
	lifecycle    map[crt.LifecycleEvent][]func()

	width  int
	height int

	lastTick time.Time
	delta    float64

	destroyed bool
}

// NewScene creates a scene on r. With no cameras given, a single
// full-viewport main camera is created.
func NewScene(r *Renderer, cameras ...*Camera) *Scene {
	if len(cameras) == 0 {
		cameras = []*Camera{NewCamera(r)}
	}
	return &Scene{
		renderer:  r,
		cameras:   cameras,
		resize:    make(map[int]func()),
		lifecycle: make(map[crt.LifecycleEvent][]func()),
	}
}

// Renderer implements crt.Scene
func (s *Scene) Renderer() crt.Renderer {
	if s.renderer == nil || s.destroyed {
		return nil
	}
	return s.renderer
}

// Cameras implements crt.Scene
func (s *Scene) Cameras() []crt.Camera {
	cams := make([]crt.Camera, len(s.cameras))
	for i, c := range s.cameras {
		cams[i] = c
	}
	return cams
}

// MainCamera returns the first camera
func (s *Scene) MainCamera() *Camera {
	if len(s.cameras) == 0 {
		return nil
	}
	return s.cameras[0]
}

// AddCamera appends a camera. Effects already enabled on the scene are not
// attached to it until the next enable.
func (s *Scene) AddCamera(c *Camera) {
	s.cameras = append(s.cameras, c)
}

// OnResize implements crt.Scene
func (s *Scene) OnResize(fn func()) func() {
	id := s.nextResizeID
	s.nextResizeID++
	s.resize[id] = fn
	return func() {
		delete(s.resize, id)
	}
}

// OnLifecycle implements crt.Scene
func (s *Scene) OnLifecycle(ev crt.LifecycleEvent, fn func()) {
	s.lifecycle[ev] = append(s.lifecycle[ev], fn)
}

// Layout records the outside size. When it changes the renderer viewport
// is updated and resize listeners run.
func (s *Scene) Layout(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	if s.renderer != nil {
		s.renderer.SetSize(width, height)
	}
	for _, fn := range s.resize {
		fn()
	}
}

// Tick records the frame time. The first tick reports a zero delta.
func (s *Scene) Tick(now time.Time) {
	if s.lastTick.IsZero() {
		s.delta = 0
	} else {
		s.delta = now.Sub(s.lastTick).Seconds()
	}
	s.lastTick = now
}

// Delta returns the last frame delta in seconds
func (s *Scene) Delta() float64 {
	return s.delta
}

// Draw lets render fill each camera's view, then draws every camera
// through its effects onto screen.
func (s *Scene) Draw(screen *ebiten.Image, render func(cam *Camera, view *ebiten.Image)) {
	for _, cam := range s.cameras {
		view := cam.View()
		if render != nil {
			render(cam, view)
		}
		cam.Draw(screen, view, s.delta)
	}
}

// Shutdown fires the shutdown event
func (s *Scene) Shutdown() {
	s.fire(crt.EventShutdown)
}

// Destroy fires the destroy event and detaches the scene from its
// renderer. Listeners run while the renderer is still reachable.
func (s *Scene) Destroy() {
	if s.destroyed {
		return
	}
	s.fire(crt.EventDestroy)
	s.destroyed = true
	s.resize = make(map[int]func())
	s.lifecycle = make(map[crt.LifecycleEvent][]func())
}

func (s *Scene) fire(ev crt.LifecycleEvent) {
	for _, fn := range s.lifecycle[ev] {
		fn()
	}
}
