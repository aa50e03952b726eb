package ebitenhost

import (
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/user-none/crtfx/crt"
)

var (
	// ErrNotRegistered is returned when attaching an effect the renderer
	// does not know about
	ErrNotRegistered = errors.New("effect not registered")

	// ErrNotAttached is returned when detaching an effect a camera does
	// not carry
	ErrNotAttached = errors.New("effect not attached")

	// ErrNoShaders is returned by cameras of a software renderer
	ErrNoShaders = errors.New("renderer does not support shaders")
)

// Renderer holds the effect registry and the compiled shader cache
type Renderer struct {
	software bool

	// Registered effect definitions by name
	defs map[string]crt.Definition

	// Compiled shader cache
	shaders map[string]*ebiten.Shader

	// Effects whose program failed to compile (warned once)
	failed map[string]bool

	width  int
	height int
}

// NewRenderer creates a shader-capable renderer with the given viewport size
func NewRenderer(width, height int) *Renderer {
	return &Renderer{
		defs:    make(map[string]crt.Definition),
		shaders: make(map[string]*ebiten.Shader),
		failed:  make(map[string]bool),
		width:   width,
		height:  height,
	}
}

// NewSoftwareRenderer creates a renderer that draws without post-processing.
// Effect controllers treat it as unsupported.
func NewSoftwareRenderer(width, height int) *Renderer {
	r := NewRenderer(width, height)
	r.software = true
	return r
}

// ShaderCapable implements crt.Renderer
func (r *Renderer) ShaderCapable() bool {
	return !r.software
}

// IsRegistered implements crt.Renderer
func (r *Renderer) IsRegistered(name string) bool {
	_, ok := r.defs[name]
	return ok
}

// Register implements crt.Renderer. Re-registering a name replaces its
// definition and drops the compiled program.
func (r *Renderer) Register(name string, def crt.Definition) {
	r.defs[name] = def
	if s, ok := r.shaders[name]; ok {
		s.Deallocate()
		delete(r.shaders, name)
	}
	delete(r.failed, name)
}

// Registered returns the registered effect names, sorted
func (r *Renderer) Registered() []string {
	names := make([]string, 0, len(r.defs))
	for name := range r.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetSize updates the viewport size
func (r *Renderer) SetSize(width, height int) {
	r.width = width
	r.height = height
}

// Viewport returns the current viewport size
func (r *Renderer) Viewport() crt.Viewport {
	return crt.Viewport{Width: float64(r.width), Height: float64(r.height)}
}

// definition returns the registered definition for name
func (r *Renderer) definition(name string) (crt.Definition, bool) {
	def, ok := r.defs[name]
	return def, ok
}

// LoadShader compiles and caches the program of a registered effect
func (r *Renderer) LoadShader(name string) (*ebiten.Shader, error) {
	// Already loaded?
	if s, ok := r.shaders[name]; ok {
		return s, nil
	}

	def, ok := r.defs[name]
	if !ok {
		return nil, fmt.Errorf("unknown effect: %s", name)
	}

	// Compile
	shader, err := ebiten.NewShader(def.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to compile shader %s: %w", name, err)
	}

	r.shaders[name] = shader
	return shader, nil
}

// shader returns the compiled program for name, or nil if it cannot be
// compiled. Compile failures are logged once per registration.
func (r *Renderer) shader(name string) *ebiten.Shader {
	if r.failed[name] {
		return nil
	}
	s, err := r.LoadShader(name)
	if err != nil {
		log.Printf("Warning: effect %s not available: %v", name, err)
		r.failed[name] = true
		return nil
	}
	return s
}
