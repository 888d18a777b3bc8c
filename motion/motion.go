// Package motion holds the per-window bookkeeping of a bouncing progress
// window: where it is, where it is heading, how fast, which corner it last
// touched and how far its bar has filled. It knows nothing about timers or
// toolkits; callers drive it one tick at a time.
package motion

import "math"

type Point struct {
	X, Y float64
}

type Size struct {
	W, H float64
}

// Vec is a per-tick direction; each component is scaled by State.Speed.
type Vec struct {
	DX, DY float64
}

type Corner int

const (
	NoCorner Corner = iota - 1
	TopLeft
	TopRight
	BottomLeft
	BottomRight
)

func (c Corner) String() string {
	switch c {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	}
	return "none"
}

type State struct {
	Pos   Point
	Size  Size
	Dir   Vec
	Speed float64

	Progress int
	Maximum  int

	CornerHits int
	LastCorner Corner
}

// New returns a state clipped onto screen with no corner recorded.
func New(pos Point, size Size, dir Vec, speed float64, maximum int, screen Size) State {
	return State{
		Pos:        Clip(pos, size, screen),
		Size:       size,
		Dir:        dir,
		Speed:      speed,
		Maximum:    maximum,
		LastCorner: NoCorner,
	}
}

// Clip keeps a window of size win fully inside screen. A window larger than
// the screen is pinned to the origin on that axis.
func Clip(p Point, win, screen Size) Point {
	return Point{
		X: math.Max(0, math.Min(p.X, screen.W-win.W)),
		Y: math.Max(0, math.Min(p.Y, screen.H-win.H)),
	}
}

// CornerAt reports which corner p lies in, within tolerance pixels of both
// edges. Corners are tested in TopLeft, TopRight, BottomLeft, BottomRight
// order and the first match wins.
func CornerAt(p Point, win, screen Size, tolerance float64) Corner {
	left := p.X <= tolerance
	right := p.X >= screen.W-win.W-tolerance
	top := p.Y <= tolerance
	bottom := p.Y >= screen.H-win.H-tolerance

	switch {
	case left && top:
		return TopLeft
	case right && top:
		return TopRight
	case left && bottom:
		return BottomLeft
	case right && bottom:
		return BottomRight
	}
	return NoCorner
}

// CheckCorner records a corner hit when the window sits in a corner other
// than the last one recorded. Staying in the same corner, or leaving it and
// coming back without visiting another, does not count again.
func (s *State) CheckCorner(screen Size, tolerance float64) bool {
	c := CornerAt(s.Pos, s.Size, screen, tolerance)
	if c == NoCorner || c == s.LastCorner {
		return false
	}
	s.LastCorner = c
	s.CornerHits++
	return true
}

// Step runs one movement tick and reports whether it registered a new
// corner hit. A new hit doubles the speed before the window moves.
// Each axis flips its direction at most once, when the unscaled step would
// reach or cross that axis's screen edge. The window then moves by the
// scaled step and is clipped, so a fast window lands on the edge first and
// turns on the following tick.
func (s *State) Step(screen Size, tolerance float64) bool {
	hit := s.CheckCorner(screen, tolerance)
	if hit {
		s.Speed *= 2
	}

	if next := s.Pos.X + s.Dir.DX; next <= 0 || next >= screen.W-s.Size.W {
		s.Dir.DX = -s.Dir.DX
	}
	if next := s.Pos.Y + s.Dir.DY; next <= 0 || next >= screen.H-s.Size.H {
		s.Dir.DY = -s.Dir.DY
	}

	next := Point{X: s.Pos.X + s.Dir.DX*s.Speed, Y: s.Pos.Y + s.Dir.DY*s.Speed}
	s.Pos = Clip(next, s.Size, screen)
	return hit
}

// Complete reports whether the bar has reached its maximum.
func (s *State) Complete() bool {
	return s.Progress >= s.Maximum
}

// AddProgress bumps the bar by n. Negative increments are ignored.
func (s *State) AddProgress(n int) {
	if n > 0 {
		s.Progress += n
	}
}

// Fraction is the fill ratio in [0, 1].
func (s *State) Fraction() float64 {
	if s.Maximum <= 0 {
		return 1
	}
	return math.Min(1, float64(s.Progress)/float64(s.Maximum))
}
