//go:build gui

package gui

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type workArea struct {
	X, Y, W, H int
	source     string
}

func (w workArea) String() string {
	return fmt.Sprintf("%dx%d+%d+%d (%s)", w.W, w.H, w.X, w.Y, w.source)
}

var fallbackArea = workArea{W: 1920, H: 1080, source: "fallback"}

// glfwWorkArea must run on the main thread after fyne has started.
func glfwWorkArea() (workArea, bool) {
	monitor := glfw.GetPrimaryMonitor()
	if monitor == nil {
		return workArea{}, false
	}
	x, y, w, h := monitor.GetWorkarea()
	if w <= 0 || h <= 0 {
		return workArea{}, false
	}
	return workArea{X: x, Y: y, W: w, H: h, source: "glfw"}, true
}
