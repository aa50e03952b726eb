package crt

import "errors"

// fakeProgram records the last value set for each uniform
type fakeProgram struct {
	floats map[string]float32
	vec2s  map[string][2]float32
	sets   int
}

func newFakeProgram() *fakeProgram {
	return &fakeProgram{
		floats: make(map[string]float32),
		vec2s:  make(map[string][2]float32),
	}
}

func (p *fakeProgram) SetFloat(name string, v float32) {
	p.floats[name] = v
	p.sets++
}

func (p *fakeProgram) SetVec2(name string, x, y float32) {
	p.vec2s[name] = [2]float32{x, y}
	p.sets++
}

// fakeHost hands out prog once active is set
type fakeHost struct {
	prog   *fakeProgram
	active bool
}

func (h *fakeHost) ActiveProgram() Program {
	if !h.active {
		return nil
	}
	return h.prog
}

// recordingEffect wraps Effect to count SetParams calls
type recordingEffect struct {
	*Effect
	pushes []Params
}

func (r *recordingEffect) SetParams(p Params) {
	r.pushes = append(r.pushes, p)
	r.Effect.SetParams(p)
}

type fakeRenderer struct {
	shader   bool
	registry map[string]Definition
	register int
}

func newFakeRenderer(shader bool) *fakeRenderer {
	return &fakeRenderer{shader: shader, registry: make(map[string]Definition)}
}

func (r *fakeRenderer) ShaderCapable() bool { return r.shader }

func (r *fakeRenderer) IsRegistered(name string) bool {
	_, ok := r.registry[name]
	return ok
}

func (r *fakeRenderer) Register(name string, def Definition) {
	r.registry[name] = def
	r.register++
}

type fakeCamera struct {
	renderer  *fakeRenderer
	instances map[string][]Pipeline

	attachCalls   int
	detachCalls   int
	attachedCalls int

	detachErr   error
	detachPanic bool
}

func newFakeCamera(r *fakeRenderer) *fakeCamera {
	return &fakeCamera{renderer: r, instances: make(map[string][]Pipeline)}
}

func (c *fakeCamera) Attach(name string) error {
	c.attachCalls++
	def, ok := c.renderer.registry[name]
	if !ok {
		return errors.New("not registered")
	}
	if len(c.instances[name]) > 0 {
		return nil
	}
	host := &fakeHost{prog: newFakeProgram(), active: true}
	inst := &recordingEffect{Effect: def.New(host).(*Effect)}
	c.instances[name] = append(c.instances[name], inst)
	return nil
}

func (c *fakeCamera) Detach(name string) error {
	c.detachCalls++
	delete(c.instances, name)
	if c.detachPanic {
		panic("instance already gone")
	}
	return c.detachErr
}

func (c *fakeCamera) Attached(name string) []Pipeline {
	c.attachedCalls++
	return c.instances[name]
}

func (c *fakeCamera) effects(name string) []*recordingEffect {
	var out []*recordingEffect
	for _, p := range c.instances[name] {
		out = append(out, p.(*recordingEffect))
	}
	return out
}

type fakeScene struct {
	renderer *fakeRenderer
	cameras  []*fakeCamera

	resize    map[int]func()
	nextID    int
	lifecycle map[LifecycleEvent][]func()
}

func newFakeScene(shader bool, numCameras int) *fakeScene {
	r := newFakeRenderer(shader)
	s := &fakeScene{
		renderer:  r,
		resize:    make(map[int]func()),
		lifecycle: make(map[LifecycleEvent][]func()),
	}
	for i := 0; i < numCameras; i++ {
		s.cameras = append(s.cameras, newFakeCamera(r))
	}
	return s
}

func (s *fakeScene) Renderer() Renderer {
	return s.renderer
}

func (s *fakeScene) Cameras() []Camera {
	cams := make([]Camera, len(s.cameras))
	for i, c := range s.cameras {
		cams[i] = c
	}
	return cams
}

func (s *fakeScene) OnResize(fn func()) func() {
	id := s.nextID
	s.nextID++
	s.resize[id] = fn
	return func() { delete(s.resize, id) }
}

func (s *fakeScene) OnLifecycle(ev LifecycleEvent, fn func()) {
	s.lifecycle[ev] = append(s.lifecycle[ev], fn)
}

func (s *fakeScene) fireResize() {
	for _, fn := range s.resize {
		fn()
	}
}

func (s *fakeScene) fire(ev LifecycleEvent) {
	for _, fn := range s.lifecycle[ev] {
		fn()
	}
}
