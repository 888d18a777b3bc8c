//go:build gui

package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"loadforever/icon"
	"loadforever/prank"
)

const windowIconSize = 256

// surface is one fixed-size window: the bar above its message.
type surface struct {
	win     fyne.Window
	bar     *BarWidget
	message *widget.Label
	placer  placer
	area    workArea
	closing bool
}

func newSurface(a *App, spec prank.SurfaceSpec) *surface {
	win := a.fyneApp.NewWindow(spec.Title)
	win.SetIcon(fyne.NewStaticResource(spec.Icon.FileName(), icon.SVG(windowIconSize, spec.Icon)))

	s := &surface{
		win:     win,
		bar:     NewBarWidget(spec.Maximum),
		message: widget.NewLabel(spec.Message),
		placer:  nopPlacer{},
		area:    a.area,
	}
	s.message.Alignment = fyne.TextAlignCenter
	s.message.Truncation = fyne.TextTruncateEllipsis

	win.SetContent(container.NewPadded(container.NewVBox(s.bar, s.message)))
	win.SetFixedSize(true)
	win.Resize(fyne.NewSize(float32(spec.Size.W), float32(spec.Size.H)))
	win.SetOnClosed(func() {
		// closed by the user or the window manager
		if s.closing {
			return
		}
		s.closing = true
		if spec.OnClosed != nil {
			spec.OnClosed()
		}
	})

	focusNextWindow(a.active)
	win.Show()
	s.placer = newPlacer(win, spec.Size)
	s.Move(int(spec.Position.X), int(spec.Position.Y))
	return s
}

// Move takes work-area coordinates.
func (s *surface) Move(x, y int) {
	if s.closing {
		return
	}
	s.placer.Move(s.area.X+x, s.area.Y+y)
}

func (s *surface) SetProgress(value, maximum int) { s.bar.SetProgress(value, maximum) }
func (s *surface) SetFillColor(c color.Color)     { s.bar.SetFillColor(c) }

func (s *surface) Close() {
	if s.closing {
		return
	}
	s.closing = true
	s.win.Close()
}
