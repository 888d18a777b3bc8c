package prank

import (
	"image/color"
	"time"

	"loadforever/config"
	"loadforever/icon"
	"loadforever/motion"
	"loadforever/sched"
)

var epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

type fakeHost struct {
	screen   motion.Size
	surfaces []*fakeSurface
}

func (h *fakeHost) Screen() motion.Size       { return h.screen }
func (h *fakeHost) IconVariant() icon.Variant { return icon.Dark }

func (h *fakeHost) NewSurface(spec SurfaceSpec) Surface {
	s := &fakeSurface{spec: spec}
	h.surfaces = append(h.surfaces, s)
	return s
}

type point struct{ x, y int }

type fakeSurface struct {
	spec     SurfaceSpec
	moves    []point
	progress []int
	colors   []color.Color
	closed   int
}

func (s *fakeSurface) Move(x, y int)              { s.moves = append(s.moves, point{x, y}) }
func (s *fakeSurface) SetProgress(value, max int) { s.progress = append(s.progress, value) }
func (s *fakeSurface) SetFillColor(c color.Color) { s.colors = append(s.colors, c) }
func (s *fakeSurface) Close()                     { s.closed++ }

// constRand always draws the same values: Float64 returns f, IntN returns
// pick(n).
type constRand struct {
	f    float64
	pick func(n int) int
}

func (r constRand) Float64() float64 { return r.f }
func (r constRand) IntN(n int) int {
	if r.pick == nil {
		return 0
	}
	return r.pick(n)
}

func maxPick(n int) int { return n - 1 }

func fixedPick(k int) func(int) int {
	return func(n int) int {
		if k >= n {
			return n - 1
		}
		return k
	}
}

type recordSink struct {
	spawned []int
	corners []motion.Corner
	done    []int
	closed  []int
}

func (s *recordSink) WindowSpawned(id int, _ string, _ int) { s.spawned = append(s.spawned, id) }
func (s *recordSink) CornerHit(_ int, c motion.Corner, _ int, _ float64) {
	s.corners = append(s.corners, c)
}
func (s *recordSink) WindowDone(id int, _ int)   { s.done = append(s.done, id) }
func (s *recordSink) WindowClosed(id int, _ int) { s.closed = append(s.closed, id) }

func newEnv(r Rand) (*Env, *fakeHost, *sched.Fake, *recordSink) {
	host := &fakeHost{screen: motion.Size{W: 1920, H: 1080}}
	clock := sched.NewFake(epoch)
	sink := &recordSink{}
	env := &Env{
		Host:     host,
		Sched:    clock,
		Rand:     r,
		Tunables: config.Default(),
		Registry: NewRegistry(),
		Sink:     sink,
	}
	return env, host, clock, sink
}
