package crt

// LifecycleEvent identifies a scene teardown signal
type LifecycleEvent int

const (
	EventShutdown LifecycleEvent = iota
	EventDestroy
)

// Viewport is the output size in pixels
type Viewport struct {
	Width  float64
	Height float64
}

// Scene is the host's per-scene attachment point.
type Scene interface {
	// Renderer returns the active renderer, or nil if none is available.
	Renderer() Renderer
	// Cameras returns the scene's current camera list.
	Cameras() []Camera
	// OnResize registers fn for viewport resizes. The returned func
	// unsubscribes it.
	OnResize(fn func()) (cancel func())
	// OnLifecycle registers fn for a teardown event.
	OnLifecycle(ev LifecycleEvent, fn func())
}

// Renderer owns the global effect registry.
type Renderer interface {
	// ShaderCapable reports whether the backend can run shading programs.
	ShaderCapable() bool
	IsRegistered(name string) bool
	Register(name string, def Definition)
}

// Camera holds an independent post-processing list.
type Camera interface {
	Attach(name string) error
	Detach(name string) error
	// Attached returns the instances of the named effect. Never nil-vs-single:
	// an empty slice means nothing is attached.
	Attached(name string) []Pipeline
}

// Pipeline is the host-facing hook pair. The host calls OnActivate once
// when the program becomes active, then OnFrame once per frame.
type Pipeline interface {
	OnActivate()
	OnFrame(deltaSeconds float64, vp Viewport)
}

// ParamsSetter is implemented by pipelines that accept effect parameters.
type ParamsSetter interface {
	SetParams(p Params)
}

// Program is the host's uniform-set surface for one shading program.
type Program interface {
	SetFloat(name string, v float32)
	SetVec2(name string, x, y float32)
}

// ProgramHost resolves the currently active program for an instance.
// ActiveProgram returns nil until the host has activated it.
type ProgramHost interface {
	ActiveProgram() Program
}

// Definition is a registrable effect: a fixed program plus an instance
// constructor.
type Definition struct {
	Source []byte
	New    func(host ProgramHost) Pipeline
}

// EnsureRegistered registers def under name unless r already has it.
// Reports whether a registration happened.
func EnsureRegistered(r Renderer, name string, def Definition) bool {
	if r.IsRegistered(name) {
		return false
	}
	r.Register(name, def)
	return true
}
