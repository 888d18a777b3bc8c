//go:build gui

package gui

import "github.com/go-gl/glfw/v3.3/glfw"

// placer moves one native window. Coordinates are absolute.
type placer interface {
	Move(x, y int)
}

type glfwPlacer struct {
	w *glfw.Window
}

func (p glfwPlacer) Move(x, y int) { p.w.SetPos(x, y) }

type nopPlacer struct{}

func (nopPlacer) Move(int, int) {}

// currentGLFW grabs the window whose context is current. Right after a
// fyne window is shown on the event loop that is the new window.
func currentGLFW() placer {
	if w := glfw.GetCurrentContext(); w != nil {
		return glfwPlacer{w}
	}
	return nopPlacer{}
}

// focusNextWindow sets whether the next window GLFW creates takes focus.
// The hint sticks, so it is set before every window.
func focusNextWindow(appActive bool) {
	glfw.WindowHint(glfw.FocusOnShow, focusOnShowHint(appActive))
}

// focusOnShowHint lets a new window take focus only while the app already
// has it, so windows never pull focus away from another app.
func focusOnShowHint(appActive bool) int {
	if appActive {
		return glfw.True
	}
	return glfw.False
}
