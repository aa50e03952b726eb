package ebitenhost

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/user-none/crtfx/crt"
)

// slot is one attached effect instance. It is both the instance's
// ProgramHost and its Program: uniforms land in a map handed to
// DrawRectShader.
type slot struct {
	name     string
	pipeline crt.Pipeline
	uniforms map[string]any
	active   bool
}

// ActiveProgram implements crt.ProgramHost
func (s *slot) ActiveProgram() crt.Program {
	if !s.active {
		return nil
	}
	return s
}

// SetFloat implements crt.Program
func (s *slot) SetFloat(name string, v float32) {
	s.uniforms[name] = v
}

// SetVec2 implements crt.Program
func (s *slot) SetVec2(name string, x, y float32) {
	s.uniforms[name] = []float32{x, y}
}

// Camera renders a scene view through its own post-processing list
type Camera struct {
	renderer *Renderer

	// Screen placement. A zero size covers the whole viewport.
	X, Y          int
	Width, Height int

	slots []*slot

	// Camera view drawn by the game before post-processing
	view *ebiten.Image

	// Intermediate buffers for effect chaining (ping-pong)
	bufferA *ebiten.Image
	bufferB *ebiten.Image
}

// NewCamera creates a full-viewport camera on r
func NewCamera(r *Renderer) *Camera {
	return &Camera{renderer: r}
}

// Attach implements crt.Camera. Attaching an already attached effect is a
// no-op.
func (c *Camera) Attach(name string) error {
	if !c.renderer.ShaderCapable() {
		return ErrNoShaders
	}
	if c.indexOf(name) >= 0 {
		return nil
	}
	def, ok := c.renderer.definition(name)
	if !ok {
		return fmt.Errorf("attach %s: %w", name, ErrNotRegistered)
	}

	s := &slot{
		name:     name,
		uniforms: make(map[string]any),
	}
	s.pipeline = def.New(s)
	c.slots = append(c.slots, s)
	return nil
}

// Detach implements crt.Camera
func (c *Camera) Detach(name string) error {
	i := c.indexOf(name)
	if i < 0 {
		return fmt.Errorf("detach %s: %w", name, ErrNotAttached)
	}
	c.slots = append(c.slots[:i], c.slots[i+1:]...)
	if len(c.slots) == 0 {
		c.resetBuffers()
	}
	return nil
}

// Attached implements crt.Camera
func (c *Camera) Attached(name string) []crt.Pipeline {
	var out []crt.Pipeline
	for _, s := range c.slots {
		if s.name == name {
			out = append(out, s.pipeline)
		}
	}
	return out
}

// Effects returns the names of attached effects in draw order
func (c *Camera) Effects() []string {
	names := make([]string, len(c.slots))
	for i, s := range c.slots {
		names[i] = s.name
	}
	return names
}

func (c *Camera) indexOf(name string) int {
	for i, s := range c.slots {
		if s.name == name {
			return i
		}
	}
	return -1
}

// Size returns the camera's pixel size within a viewport of vw x vh
func (c *Camera) Size(vw, vh int) (int, int) {
	w, h := c.Width, c.Height
	if w <= 0 {
		w = vw
	}
	if h <= 0 {
		h = vh
	}
	return w, h
}

// View returns the camera's cleared offscreen view, sized for the current
// viewport. The game draws the scene into it before Draw.
func (c *Camera) View() *ebiten.Image {
	vp := c.renderer.Viewport()
	w, h := c.Size(int(vp.Width), int(vp.Height))
	w, h = max(w, 1), max(h, 1)
	c.view = ensureImage(c.view, w, h)
	c.view.Clear()
	return c.view
}

// Draw applies the attached effects to src and draws the result to dst at
// the camera's position. deltaSeconds is forwarded to each effect's frame
// hook.
func (c *Camera) Draw(dst, src *ebiten.Image, deltaSeconds float64) {
	if src == nil {
		return
	}

	type pass struct {
		shader *ebiten.Shader
		slot   *slot
	}

	var passes []pass
	if c.renderer.ShaderCapable() {
		vp := c.renderer.Viewport()
		for _, s := range c.slots {
			shader := c.renderer.shader(s.name)
			if shader == nil {
				continue
			}
			if !s.active {
				s.active = true
				s.pipeline.OnActivate()
			}
			s.pipeline.OnFrame(deltaSeconds, vp)
			passes = append(passes, pass{shader: shader, slot: s})
		}
	}

	if len(passes) == 0 {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(c.X), float64(c.Y))
		dst.DrawImage(src, op)
		return
	}

	srcW, srcH := src.Bounds().Dx(), src.Bounds().Dy()
	if len(passes) > 1 {
		c.bufferA = ensureImage(c.bufferA, srcW, srcH)
		c.bufferB = ensureImage(c.bufferB, srcW, srcH)
	}

	// Track current input for each pass
	currentInput := src
	buffers := [2]*ebiten.Image{c.bufferA, c.bufferB}
	bufferIndex := 1

	for i, p := range passes {
		op := &ebiten.DrawRectShaderOptions{}
		op.Images[0] = currentInput
		op.Uniforms = p.slot.uniforms

		if i == len(passes)-1 {
			// Last pass writes to destination
			op.GeoM.Translate(float64(c.X), float64(c.Y))
			dst.DrawRectShader(srcW, srcH, p.shader, op)
		} else {
			// Intermediate passes write to ping-pong buffer
			outputBuffer := buffers[bufferIndex%2]
			outputBuffer.Clear()
			outputBuffer.DrawRectShader(srcW, srcH, p.shader, op)
			currentInput = outputBuffer
			bufferIndex++
		}
	}
}

// resetBuffers releases the chaining buffers
func (c *Camera) resetBuffers() {
	for _, img := range []*ebiten.Image{c.bufferA, c.bufferB} {
		if img != nil {
			img.Deallocate()
		}
	}
	c.bufferA = nil
	c.bufferB = nil
}

// ensureImage returns img if it already has the given size, otherwise a
// fresh image of that size
func ensureImage(img *ebiten.Image, width, height int) *ebiten.Image {
	if img != nil {
		bw, bh := img.Bounds().Dx(), img.Bounds().Dy()
		if bw == width && bh == height {
			return img
		}
		img.Deallocate()
	}
	return ebiten.NewImage(width, height)
}
