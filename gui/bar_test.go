//go:build gui

package gui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
)

func TestFraction(t *testing.T) {
	tests := []struct {
		value, max int
		want       float32
	}{
		{0, 100, 0},
		{50, 100, 0.5},
		{120, 100, 1},
		{-3, 100, 0},
		{0, 0, 1},
	}
	for _, tt := range tests {
		if got := fraction(tt.value, tt.max); got != tt.want {
			t.Errorf("fraction(%d, %d) = %v, want %v", tt.value, tt.max, got, tt.want)
		}
	}
}

func TestBarRenderer(t *testing.T) {
	test.NewTempApp(t)

	b := NewBarWidget(200)
	r := test.WidgetRenderer(b).(*barRenderer)
	r.Layout(fyne.NewSize(200, 20))

	if r.fill.Size().Width != 0 {
		t.Errorf("empty bar fill width = %v", r.fill.Size().Width)
	}

	b.SetProgress(50, 200)
	if w := r.fill.Size().Width; w != 50 {
		t.Errorf("fill width = %v, want 50", w)
	}
	if r.label.Text != "25%" {
		t.Errorf("label = %q, want 25%%", r.label.Text)
	}

	red := color.NRGBA{R: 255, A: 255}
	b.SetFillColor(red)
	if r.fill.FillColor != red {
		t.Errorf("fill colour = %v, want %v", r.fill.FillColor, red)
	}

	b.SetProgress(400, 200)
	if w := r.fill.Size().Width; w != 200 {
		t.Errorf("overfull fill width = %v, want 200", w)
	}
	if r.label.Text != "100%" {
		t.Errorf("label = %q", r.label.Text)
	}
}
