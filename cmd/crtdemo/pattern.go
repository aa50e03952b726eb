package main

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/colornames"
)

// SMPTE-style bar colors, left to right
var barColors = []color.RGBA{
	colornames.White,
	colornames.Yellow,
	colornames.Cyan,
	colornames.Lime,
	colornames.Magenta,
	colornames.Red,
	colornames.Blue,
}

// TestPattern draws a color-bar card with a grid and a bouncing block so
// every knob of the effect has something visible to act on
type TestPattern struct {
	t float64
}

// Advance moves the animation forward by dt seconds
func (p *TestPattern) Advance(dt float64) {
	p.t += dt
}

// Draw renders the pattern into dst
func (p *TestPattern) Draw(dst *ebiten.Image, label string) {
	b := dst.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return
	}

	dst.Fill(colornames.Black)

	// Color bars on the top two thirds
	barsH := h * 2 / 3
	for i, c := range barColors {
		x0 := i * w / len(barColors)
		x1 := (i + 1) * w / len(barColors)
		fillRect(dst, image.Rect(x0, 0, x1, barsH), c)
	}

	// Gray ramp below the bars
	const steps = 16
	for i := 0; i < steps; i++ {
		v := uint8(i * 255 / (steps - 1))
		x0 := i * w / steps
		x1 := (i + 1) * w / steps
		fillRect(dst, image.Rect(x0, barsH, x1, h), color.RGBA{v, v, v, 255})
	}

	// Grid lines show the curvature
	const cell = 40
	for x := 0; x < w; x += cell {
		fillRect(dst, image.Rect(x, 0, x+1, h), colornames.Darkgray)
	}
	for y := 0; y < h; y += cell {
		fillRect(dst, image.Rect(0, y, w, y+1), colornames.Darkgray)
	}

	// Bouncing block
	size := h / 8
	bx := int((math.Sin(p.t*0.9)*0.5 + 0.5) * float64(w-size))
	by := int((math.Cos(p.t*1.3)*0.5 + 0.5) * float64(barsH-size))
	fillRect(dst, image.Rect(bx, by, bx+size, by+size), colornames.Orange)

	ebitenutil.DebugPrintAt(dst, label, 8, 8)
}

func fillRect(dst *ebiten.Image, r image.Rectangle, c color.Color) {
	r = r.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	dst.SubImage(r).(*ebiten.Image).Fill(c)
}
