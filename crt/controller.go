package crt

import (
	"log"
)

// Controller owns the enable/disable state of the CRT effect for one scene.
// All methods must be called from the host's update/render goroutine.
type Controller struct {
	scene   Scene
	name    string
	def     Definition
	enabled bool

	// current is the last merged record pushed by Enable or Update
	current Params

	// cancelResize unsubscribes the resize listener held while enabled
	cancelResize func()
}

// NewController creates a controller for scene and hooks scene teardown so
// the effect is detached when the scene shuts down or is destroyed.
func NewController(scene Scene) *Controller {
	return NewControllerWithDefinition(scene, EffectName, EffectDefinition())
}

// NewControllerWithDefinition is NewController with a custom registry name
// and effect definition.
func NewControllerWithDefinition(scene Scene, name string, def Definition) *Controller {
	c := &Controller{
		scene:   scene,
		name:    name,
		def:     def,
		current: Defaults(),
	}
	if scene != nil {
		scene.OnLifecycle(EventShutdown, c.Disable)
		scene.OnLifecycle(EventDestroy, c.Disable)
	}
	return c
}

// Enabled reports whether the effect is attached to the scene's cameras
func (c *Controller) Enabled() bool {
	return c.enabled
}

// Params returns the last merged parameters
func (c *Controller) Params() Params {
	return c.current
}

// Enable attaches the effect to every camera and pushes o merged over the
// defaults. Does nothing on a renderer without shader support.
//
// While enabled, a scene resize re-pushes the most recent merged record,
// which is the one from a later Update if there was one rather than the
// record o produced.
func (c *Controller) Enable(o *Options) {
	r, ok := c.shaderRenderer()
	if !ok {
		return
	}

	EnsureRegistered(r, c.name, c.def)

	for _, cam := range c.scene.Cameras() {
		if err := cam.Attach(c.name); err != nil {
			log.Printf("Warning: failed to attach %s effect: %v", c.name, err)
		}
	}

	params := Merge(o)
	c.current = params
	c.push(params)
	c.enabled = true

	// Camera pipelines may be recreated on resize, so params are re-pushed
	c.stopResize()
	c.cancelResize = c.scene.OnResize(func() {
		c.push(c.current)
	})
}

// Update pushes o merged over the defaults to every attached instance,
// whether or not the controller is enabled.
func (c *Controller) Update(o *Options) {
	if _, ok := c.shaderRenderer(); !ok {
		return
	}

	params := Merge(o)
	c.current = params
	c.push(params)
}

// Disable detaches the effect from every camera. Failures on one camera are
// ignored and do not stop the rest.
func (c *Controller) Disable() {
	if _, ok := c.shaderRenderer(); !ok {
		return
	}

	for _, cam := range c.scene.Cameras() {
		detach(cam, c.name)
	}
	c.stopResize()
	c.enabled = false
}

// Toggle disables when enabled, otherwise enables with o
func (c *Controller) Toggle(o *Options) {
	if c.enabled {
		c.Disable()
	} else {
		c.Enable(o)
	}
}

// shaderRenderer is the backend guard. No side effect may happen before it
// passes.
func (c *Controller) shaderRenderer() (Renderer, bool) {
	if c.scene == nil {
		return nil, false
	}
	r := c.scene.Renderer()
	if r == nil || !r.ShaderCapable() {
		return nil, false
	}
	return r, true
}

func (c *Controller) push(p Params) {
	for _, cam := range c.scene.Cameras() {
		for _, inst := range cam.Attached(c.name) {
			if s, ok := inst.(ParamsSetter); ok {
				s.SetParams(p)
			}
		}
	}
}

func (c *Controller) stopResize() {
	if c.cancelResize != nil {
		c.cancelResize()
		c.cancelResize = nil
	}
}

// detach removes the effect from cam, discarding errors and panics
func detach(cam Camera, name string) {
	defer func() {
		_ = recover()
	}()
	_ = cam.Detach(name)
}
