package motion

import (
	"image/color"
	"math"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// Hue returns the rainbow position in [0, 1) for wall-clock time t when the
// rainbow turns speed times per second.
func Hue(t time.Time, speed float64) float64 {
	secs := float64(t.UnixNano()) / float64(time.Second)
	h := math.Mod(secs*speed, 1.0)
	if h < 0 {
		h += 1
	}
	return h
}

// Rainbow is the fully saturated, full value colour at Hue(t, speed).
func Rainbow(t time.Time, speed float64) color.Color {
	c := colorful.Hsv(Hue(t, speed)*360, 1, 1).Clamped()
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}
