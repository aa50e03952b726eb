package main

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/user-none/crtfx/storage"
)

// TakeScreenshot saves the post-processed screen as a PNG and returns its
// path
func TakeScreenshot(screen *ebiten.Image) (string, error) {
	screenshotDir, err := storage.GetScreenshotDir()
	if err != nil {
		return "", err
	}

	// Ensure directory exists
	if err := os.MkdirAll(screenshotDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create screenshot directory: %w", err)
	}

	filename := fmt.Sprintf("%d.png", time.Now().Unix())
	fullPath := filepath.Join(screenshotDir, filename)

	f, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create screenshot file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, screen); err != nil {
		return "", fmt.Errorf("failed to encode screenshot: %w", err)
	}

	return fullPath, nil
}
