// Package icon draws the infinity-symbol icon used for windows and the tray.
package icon

//go:generate go run gen/gen_icon.go

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"golang.org/x/image/vector"
)

type Variant int

const (
	Light Variant = iota // black stroke, for light themes
	Dark                 // white stroke, for dark themes
)

func (v Variant) Color() color.NRGBA {
	if v == Dark {
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return color.NRGBA{A: 255}
}

func (v Variant) String() string {
	if v == Dark {
		return "dark"
	}
	return "light"
}

func (v Variant) FileName() string {
	return "icon_" + v.String() + ".svg"
}

type Point struct {
	X, Y float64
}

// Curve samples the lemniscate x = sin t, y = sin t cos t / 1.4 at n evenly
// spaced t in [0, 2π]. Both ends land on the origin.
func Curve(n int) []Point {
	if n < 2 {
		n = 2
	}
	pts := make([]Point, n)
	for i := range pts {
		t := 2 * math.Pi * float64(i) / float64(n-1)
		pts[i] = Point{X: math.Sin(t), Y: math.Sin(t) * math.Cos(t) / 1.4}
	}
	return pts
}

// layout maps curve points into a size×size square, keeping the aspect ratio
// and leaving room for half the stroke on each side.
func layout(pts []Point, size, stroke float64) []Point {
	margin := stroke
	scale := (size - 2*margin) / 2
	c := size / 2
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = Point{X: c + p.X*scale, Y: c - p.Y*scale}
	}
	return out
}

// WriteSVG renders the icon as a transparent square SVG.
func WriteSVG(w io.Writer, size int, v Variant) {
	stroke := math.Max(1, math.Round(float64(size)*0.03))
	pts := layout(Curve(1000), float64(size), stroke)
	xs := make([]int, len(pts))
	ys := make([]int, len(pts))
	for i, p := range pts {
		xs[i] = int(math.Round(p.X))
		ys[i] = int(math.Round(p.Y))
	}

	c := v.Color()
	canvas := svg.New(w)
	canvas.Start(size, size)
	canvas.Title("infinity")
	canvas.Polyline(xs, ys, fmt.Sprintf(
		"fill:none;stroke:rgb(%d,%d,%d);stroke-width:%d;stroke-linecap:round;stroke-linejoin:round",
		c.R, c.G, c.B, int(stroke)))
	canvas.End()
}

func SVG(size int, v Variant) []byte {
	var buf bytes.Buffer
	WriteSVG(&buf, size, v)
	return buf.Bytes()
}

// PNG rasterises the icon at size×size pixels. The stroke is heavier than
// the SVG one so the shape survives tray sizes.
func PNG(size int, v Variant) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid icon size %d", size)
	}
	img := Image(size, v)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode icon: %w", err)
	}
	return buf.Bytes(), nil
}

func Image(size int, v Variant) *image.NRGBA {
	half := math.Max(0.75, float64(size)*0.045)
	pts := layout(Curve(240), float64(size), half)

	var r vector.Rasterizer
	r.Reset(size, size)
	for i := 1; i < len(pts); i++ {
		segment(&r, pts[i-1], pts[i], half)
	}
	for _, p := range pts {
		disc(&r, p, half)
	}

	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	r.Draw(img, img.Bounds(), image.NewUniform(v.Color()), image.Point{})
	return img
}

// segment adds a rectangle of half-width hw around a→b. All shapes share the
// same winding so overlaps do not cancel.
func segment(r *vector.Rasterizer, a, b Point, hw float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	nx, ny := -dy/l*hw, dx/l*hw
	r.MoveTo(float32(a.X+nx), float32(a.Y+ny))
	r.LineTo(float32(b.X+nx), float32(b.Y+ny))
	r.LineTo(float32(b.X-nx), float32(b.Y-ny))
	r.LineTo(float32(a.X-nx), float32(a.Y-ny))
	r.ClosePath()
}

func disc(r *vector.Rasterizer, c Point, radius float64) {
	const n = 16
	r.MoveTo(float32(c.X+radius), float32(c.Y))
	for i := 1; i < n; i++ {
		a := -2 * math.Pi * float64(i) / n
		r.LineTo(float32(c.X+radius*math.Cos(a)), float32(c.Y+radius*math.Sin(a)))
	}
	r.ClosePath()
}
