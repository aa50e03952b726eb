package crt

import (
	"math"
	"testing"
)

func TestSetParamsBuffersUntilActivate(t *testing.T) {
	host := &fakeHost{prog: newFakeProgram()}
	e := NewEffect(host)

	p := Defaults()
	p.Curvature = 0.3
	e.SetParams(p)

	if host.prog.sets != 0 {
		t.Fatalf("uniforms pushed before activation: %d", host.prog.sets)
	}

	host.active = true
	e.OnActivate()

	if got := host.prog.floats[UniformCurvature]; got != float32(0.3) {
		t.Errorf("%s = %v, want 0.3", UniformCurvature, got)
	}
	if host.prog.sets != 10 {
		t.Errorf("uniform sets = %d, want 10", host.prog.sets)
	}
}

func TestSetParamsPushesWhenActive(t *testing.T) {
	host := &fakeHost{prog: newFakeProgram(), active: true}
	e := NewEffect(host)

	p := Defaults()
	p.Noise = 0.2
	e.SetParams(p)

	if got := host.prog.floats[UniformNoise]; got != float32(0.2) {
		t.Errorf("%s = %v, want 0.2", UniformNoise, got)
	}
	got, ok := e.Params()
	if !ok || got != p {
		t.Errorf("Params() = %+v, %v; want %+v, true", got, ok, p)
	}
}

func TestActivateWithoutParams(t *testing.T) {
	host := &fakeHost{prog: newFakeProgram(), active: true}
	e := NewEffect(host)
	e.OnActivate()
	if host.prog.sets != 0 {
		t.Errorf("uniform sets = %d, want 0", host.prog.sets)
	}
	if _, ok := e.Params(); ok {
		t.Error("Params() should report unset")
	}
}

func TestOnFrameAdvancesTime(t *testing.T) {
	host := &fakeHost{prog: newFakeProgram(), active: true}
	e := NewEffect(host)
	vp := Viewport{Width: 640, Height: 480}

	e.OnFrame(0.5, vp)
	e.OnFrame(0.25, vp)

	if e.Elapsed() != 0.75 {
		t.Errorf("Elapsed() = %v, want 0.75", e.Elapsed())
	}
	if got := host.prog.floats[UniformTime]; got != float32(0.75) {
		t.Errorf("%s = %v, want 0.75", UniformTime, got)
	}
	if got := host.prog.vec2s[UniformResolution]; got != [2]float32{640, 480} {
		t.Errorf("%s = %v, want [640 480]", UniformResolution, got)
	}
}

func TestOnFrameNominalDelta(t *testing.T) {
	host := &fakeHost{prog: newFakeProgram(), active: true}
	e := NewEffect(host)

	e.OnFrame(0, Viewport{})
	e.OnFrame(-1, Viewport{})

	if math.Abs(e.Elapsed()-2*nominalFrameDelta) > 1e-12 {
		t.Errorf("Elapsed() = %v, want %v", e.Elapsed(), 2*nominalFrameDelta)
	}
}

func TestOnFrameReappliesParams(t *testing.T) {
	host := &fakeHost{prog: newFakeProgram(), active: true}
	e := NewEffect(host)
	e.SetParams(Defaults())

	// Simulate the host resetting program state
	host.prog.floats = make(map[string]float32)

	e.OnFrame(0.016, Viewport{Width: 1, Height: 1})

	for _, info := range AvailableParams {
		if _, ok := host.prog.floats[info.Uniform]; !ok {
			t.Errorf("uniform %s not re-applied", info.Uniform)
		}
	}
}

func TestOnFrameWithoutProgram(t *testing.T) {
	host := &fakeHost{prog: newFakeProgram()}
	e := NewEffect(host)
	e.SetParams(Defaults())

	e.OnFrame(0.5, Viewport{Width: 1, Height: 1})

	if e.Elapsed() != 0 {
		t.Errorf("Elapsed() = %v, want 0 when frame is skipped", e.Elapsed())
	}
	if host.prog.sets != 0 {
		t.Errorf("uniform sets = %d, want 0", host.prog.sets)
	}

	nilHost := NewEffect(nil)
	nilHost.OnActivate()
	nilHost.OnFrame(0.5, Viewport{})
	nilHost.SetParams(Defaults())
}

func TestEffectDefinition(t *testing.T) {
	def := EffectDefinition()
	if len(def.Source) == 0 {
		t.Fatal("definition has no program source")
	}
	inst := def.New(&fakeHost{})
	if _, ok := inst.(ParamsSetter); !ok {
		t.Error("CRT instance does not accept params")
	}
}
