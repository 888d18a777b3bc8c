//go:build gui && linux

package gui

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver"

	"loadforever/log"
	"loadforever/motion"
	"loadforever/x11"
)

var (
	xOnce sync.Once
	xConn *x11.Connection
)

func x11Conn() *x11.Connection {
	xOnce.Do(func() {
		c, err := x11.NewConnection()
		if err != nil {
			log.Warnf("x11 unavailable, falling back to glfw: %v", err)
			return
		}
		xConn = c
	})
	return xConn
}

func detectWorkArea() workArea {
	if c := x11Conn(); c != nil {
		r, err := c.WorkArea()
		if err == nil {
			return workArea{X: r.X, Y: r.Y, W: r.W, H: r.H, source: "ewmh"}
		}
		log.Warnf("ewmh work area: %v", err)
	}
	if a, ok := glfwWorkArea(); ok {
		return a
	}
	return fallbackArea
}

// newPlacer returns the mover for a freshly shown window of the given size.
func newPlacer(win fyne.Window, size motion.Size) placer {
	c := x11Conn()
	if c == nil {
		return currentGLFW()
	}
	id := x11Handle(win)
	if id == 0 {
		return currentGLFW()
	}
	return &x11Placer{conn: c, id: uint32(id), w: int(size.W), h: int(size.H)}
}

func x11Handle(win fyne.Window) uintptr {
	nw, ok := win.(driver.NativeWindow)
	if !ok {
		return 0
	}
	var handle uintptr
	nw.RunNative(func(ctx any) {
		switch c := ctx.(type) {
		case driver.X11WindowContext:
			handle = c.WindowHandle
		case *driver.X11WindowContext:
			handle = c.WindowHandle
		}
	})
	return handle
}

type x11Placer struct {
	conn   *x11.Connection
	id     uint32
	w, h   int
	warned bool
}

func (p *x11Placer) Move(x, y int) {
	if err := p.conn.MoveWindow(p.id, x, y, p.w, p.h); err != nil && !p.warned {
		log.Warnf("moving window %#x: %v", p.id, err)
		p.warned = true
	}
}

func closeMovers() {
	if xConn != nil {
		xConn.Close()
	}
}
