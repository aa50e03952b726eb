package main

import (
	"image"
	"image/color"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Debug font cell size used by ebitenutil.DebugPrint
const (
	debugCharWidth  = 6
	debugLineHeight = 16
)

const (
	overlayPadding = 6
	overlayMargin  = 12
)

// Notification displays temporary messages on screen
type Notification struct {
	mu        sync.Mutex
	message   string
	startTime time.Time
	duration  time.Duration

	// Pre-allocated background (avoid per-frame allocations)
	bg *ebiten.Image
}

// NewNotification creates a new notification
func NewNotification() *Notification {
	return &Notification{}
}

// Show displays a notification message
func (n *Notification) Show(message string, duration time.Duration) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.message = message
	n.startTime = time.Now()
	n.duration = duration
}

// ShowDefault displays a notification with default 2 second duration
func (n *Notification) ShowDefault(message string) {
	n.Show(message, 2*time.Second)
}

// IsVisible returns whether the notification is currently visible
func (n *Notification) IsVisible() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.message == "" {
		return false
	}
	return time.Since(n.startTime) < n.duration
}

// Draw renders the notification in the bottom-right corner
func (n *Notification) Draw(screen *ebiten.Image) {
	n.mu.Lock()
	if n.message == "" || time.Since(n.startTime) >= n.duration {
		n.mu.Unlock()
		return
	}
	message := n.message
	n.mu.Unlock()

	bounds := screen.Bounds()
	bgWidth := len(message)*debugCharWidth + overlayPadding*2
	bgHeight := debugLineHeight + overlayPadding*2
	bgX := bounds.Dx() - bgWidth - overlayMargin
	bgY := bounds.Dy() - bgHeight - overlayMargin

	// Reuse or create background image
	if n.bg == nil || n.bg.Bounds().Dx() < bgWidth || n.bg.Bounds().Dy() < bgHeight {
		n.bg = ebiten.NewImage(bgWidth, bgHeight)
	}
	n.bg.Clear()
	n.bg.Fill(color.RGBA{A: 153}) // 60% opacity

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(float64(bgX), float64(bgY))
	screen.DrawImage(n.bg.SubImage(image.Rect(0, 0, bgWidth, bgHeight)).(*ebiten.Image), opts)

	ebitenutil.DebugPrintAt(screen, message, bgX+overlayPadding, bgY+overlayPadding)
}
