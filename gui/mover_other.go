//go:build gui && !linux

package gui

import (
	"fyne.io/fyne/v2"

	"loadforever/motion"
)

func detectWorkArea() workArea {
	if a, ok := glfwWorkArea(); ok {
		return a
	}
	return fallbackArea
}

func newPlacer(fyne.Window, motion.Size) placer {
	return currentGLFW()
}

func closeMovers() {}
