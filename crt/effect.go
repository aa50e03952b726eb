package crt

import (
	_ "embed"
)

// EffectName is the registry key of the CRT effect
const EffectName = "crt"

// nominalFrameDelta is used when the host reports no frame delta
const nominalFrameDelta = 0.0167

//go:embed shaders/crt.kage
var crtShaderSrc []byte

// Source returns the Kage program text of the CRT effect.
func Source() []byte {
	return crtShaderSrc
}

// EffectDefinition returns the registrable CRT effect.
func EffectDefinition() Definition {
	return Definition{
		Source: crtShaderSrc,
		New: func(host ProgramHost) Pipeline {
			return NewEffect(host)
		},
	}
}

// Effect keeps a shading program's uniforms in sync with the latest Params.
// It also owns the Time and Resolution uniforms.
type Effect struct {
	host    ProgramHost
	elapsed float64

	params    Params
	hasParams bool
}

// NewEffect creates an effect bound to host
func NewEffect(host ProgramHost) *Effect {
	return &Effect{host: host}
}

// OnActivate applies params that were set before the program was active
func (e *Effect) OnActivate() {
	e.apply(e.activeProgram())
}

// OnFrame advances time and pushes every uniform. Skipped silently when the
// host has no active program.
func (e *Effect) OnFrame(deltaSeconds float64, vp Viewport) {
	prog := e.activeProgram()
	if prog == nil {
		return
	}

	if deltaSeconds <= 0 {
		deltaSeconds = nominalFrameDelta
	}
	e.elapsed += deltaSeconds

	prog.SetFloat(UniformTime, float32(e.elapsed))
	prog.SetVec2(UniformResolution, float32(vp.Width), float32(vp.Height))

	// The host may reset program state between frames
	e.apply(prog)
}

// SetParams stores p and pushes it if the program is active
func (e *Effect) SetParams(p Params) {
	e.params = p
	e.hasParams = true
	e.apply(e.activeProgram())
}

// Params returns the last set parameters
func (e *Effect) Params() (Params, bool) {
	return e.params, e.hasParams
}

// Elapsed returns accumulated time in seconds
func (e *Effect) Elapsed() float64 {
	return e.elapsed
}

func (e *Effect) activeProgram() Program {
	if e.host == nil {
		return nil
	}
	return e.host.ActiveProgram()
}

func (e *Effect) apply(prog Program) {
	if !e.hasParams || prog == nil {
		return
	}
	for _, info := range AvailableParams {
		prog.SetFloat(info.Uniform, float32(e.params.Get(info.Key)))
	}
}
