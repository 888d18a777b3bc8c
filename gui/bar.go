//go:build gui

package gui

import (
	"fmt"
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

const (
	barMinWidth = 120
	barHeight   = 28
)

var (
	trackColor = color.NRGBA{R: 48, G: 48, B: 48, A: 255}
	// plain progress blue until the first corner hit
	defaultFill = color.NRGBA{R: 61, G: 126, B: 255, A: 255}
	textColor   = color.NRGBA{R: 230, G: 230, B: 230, A: 255}
)

// BarWidget is a progress bar whose fill colour can change every frame.
type BarWidget struct {
	widget.BaseWidget
	mu    sync.Mutex
	value int
	max   int
	fill  color.Color
}

func NewBarWidget(maximum int) *BarWidget {
	b := &BarWidget{max: maximum, fill: defaultFill}
	b.ExtendBaseWidget(b)
	return b
}

func (b *BarWidget) SetProgress(value, maximum int) {
	b.mu.Lock()
	b.value, b.max = value, maximum
	b.mu.Unlock()
	b.Refresh()
}

func (b *BarWidget) SetFillColor(c color.Color) {
	b.mu.Lock()
	b.fill = c
	b.mu.Unlock()
	b.Refresh()
}

// Fraction is the filled share of the bar, clamped to [0, 1].
func (b *BarWidget) Fraction() float32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return fraction(b.value, b.max)
}

func fraction(value, maximum int) float32 {
	if maximum <= 0 {
		return 1
	}
	f := float32(value) / float32(maximum)
	return min(max(f, 0), 1)
}

func (b *BarWidget) MinSize() fyne.Size {
	return fyne.NewSize(barMinWidth, barHeight)
}

func (b *BarWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &barRenderer{
		bar:   b,
		track: canvas.NewRectangle(trackColor),
		fill:  canvas.NewRectangle(defaultFill),
		label: canvas.NewText("0%", textColor),
	}
	r.track.CornerRadius = 4
	r.fill.CornerRadius = 4
	r.label.Alignment = fyne.TextAlignCenter
	r.label.TextStyle = fyne.TextStyle{Bold: true}
	return r
}

type barRenderer struct {
	bar   *BarWidget
	track *canvas.Rectangle
	fill  *canvas.Rectangle
	label *canvas.Text
	size  fyne.Size
}

func (r *barRenderer) Layout(size fyne.Size) {
	r.size = size
	r.track.Move(fyne.NewPos(0, 0))
	r.track.Resize(size)
	r.fill.Move(fyne.NewPos(0, 0))
	r.fill.Resize(fyne.NewSize(size.Width*r.bar.Fraction(), size.Height))
	r.label.Move(fyne.NewPos(0, 0))
	r.label.Resize(size)
}

func (r *barRenderer) MinSize() fyne.Size {
	return r.bar.MinSize()
}

func (r *barRenderer) Refresh() {
	r.bar.mu.Lock()
	frac := fraction(r.bar.value, r.bar.max)
	fill := r.bar.fill
	r.bar.mu.Unlock()

	r.fill.FillColor = fill
	r.fill.Resize(fyne.NewSize(r.size.Width*frac, r.size.Height))
	r.fill.Refresh()
	r.label.Text = fmt.Sprintf("%d%%", int(frac*100))
	r.label.Refresh()
}

func (r *barRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.track, r.fill, r.label}
}

func (r *barRenderer) Destroy() {}
