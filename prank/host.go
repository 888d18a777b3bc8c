// Package prank runs the bouncing progress windows: one Window per bar, an
// owning Registry and a Spawner that keeps adding windows. The GUI toolkit
// is reached only through Host and Surface.
package prank

import (
	"image/color"

	"loadforever/icon"
	"loadforever/motion"
)

// Surface is one on-screen window as the host draws it.
type Surface interface {
	Move(x, y int)
	SetProgress(value, max int)
	SetFillColor(c color.Color)
	Close()
}

type SurfaceSpec struct {
	Title    string
	Message  string
	Size     motion.Size
	Position motion.Point
	Maximum  int
	Icon     icon.Variant

	// OnClosed is called when the user or the host closes the surface.
	OnClosed func()
}

type Host interface {
	// Screen is the usable desktop area.
	Screen() motion.Size
	// IconVariant picks the icon matching the current theme.
	IconVariant() icon.Variant
	NewSurface(spec SurfaceSpec) Surface
}
