//go:build linux

package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/xwindow"
)

// Rect is a screen rectangle in root window coordinates.
type Rect struct {
	X, Y, W, H int
}

// WorkArea returns the usable area of the current desktop, excluding
// panels and docks. Window managers without _NET_WORKAREA get the root
// window geometry.
func (c *Connection) WorkArea() (Rect, error) {
	areas, err := ewmh.WorkareaGet(c.XUtil)
	if err == nil && len(areas) > 0 {
		desktop := -1
		if d, err := ewmh.CurrentDesktopGet(c.XUtil); err == nil {
			desktop = int(d)
		}
		return pickWorkArea(areas, desktop), nil
	}

	geom, gerr := xwindow.New(c.XUtil, c.Root).Geometry()
	if gerr != nil {
		return Rect{}, fmt.Errorf("reading root geometry: %w", gerr)
	}
	return Rect{X: geom.X(), Y: geom.Y(), W: geom.Width(), H: geom.Height()}, nil
}

func pickWorkArea(areas []ewmh.Workarea, desktop int) Rect {
	if desktop < 0 || desktop >= len(areas) {
		desktop = 0
	}
	wa := areas[desktop]
	return Rect{X: wa.X, Y: wa.Y, W: int(wa.Width), H: int(wa.Height)}
}

// MoveWindow places the top-left corner of a w x h window at (x, y). The
// window manager is asked first; if that request fails the window is
// configured directly and the error is still returned. No reply is awaited.
func (c *Connection) MoveWindow(id uint32, x, y, w, h int) error {
	win := xproto.Window(id)
	if err := ewmh.MoveresizeWindow(c.XUtil, win, x, y, w, h); err != nil {
		xwindow.New(c.XUtil, win).Move(x, y)
		return fmt.Errorf("ewmh moveresize %#x: %w", id, err)
	}
	return nil
}

// WorkAreaStandalone reads the work area over a temporary connection.
func WorkAreaStandalone() (Rect, error) {
	conn, err := NewConnection()
	if err != nil {
		return Rect{}, err
	}
	defer conn.Close()
	return conn.WorkArea()
}
