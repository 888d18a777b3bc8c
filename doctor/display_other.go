//go:build !linux

package doctor

import (
	"errors"

	"github.com/go-gl/glfw/v3.3/glfw"
	"golang.design/x/hotkey/mainthread"
)

// workArea hops to the main thread, which GLFW requires.
func workArea() (w, h int, source string, err error) {
	mainthread.Call(func() {
		if err = glfw.Init(); err != nil {
			return
		}
		defer glfw.Terminate()

		monitor := glfw.GetPrimaryMonitor()
		if monitor == nil {
			err = errors.New("no primary monitor")
			return
		}
		_, _, w, h = monitor.GetWorkarea()
	})
	if err != nil {
		return 0, 0, "", err
	}
	return w, h, "GLFW primary monitor", nil
}
