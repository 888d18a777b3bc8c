package prank

import (
	"math"
	"time"

	"loadforever/config"
	"loadforever/messages"
	"loadforever/motion"
	"loadforever/sched"
)

// Spawner opens one window right away and another every interval until
// stopped.
type Spawner struct {
	env      *Env
	messages []string
	interval time.Duration
	timer    sched.Timer
	paused   bool
}

func NewSpawner(env *Env, msgs []string, interval time.Duration) *Spawner {
	return &Spawner{env: env, messages: msgs, interval: interval}
}

func (s *Spawner) Interval() time.Duration { return s.interval }

func (s *Spawner) Start() {
	if s.timer != nil {
		return
	}
	s.SpawnOne()
	s.timer = sched.Every(s.env.Sched, s.interval, s.tick)
}

func (s *Spawner) tick() {
	if s.paused {
		return
	}
	if limit := s.env.Tunables.MaxWindows; limit > 0 && s.env.Registry.Len() >= limit {
		return
	}
	s.SpawnOne()
}

// SpawnOne opens a window with fresh random parameters.
func (s *Spawner) SpawnOne() *Window {
	p := RandomParams(s.env.Rand, s.env.Host.Screen(), s.env.Tunables, s.messages)
	return Open(s.env, p)
}

// SetPaused holds or resumes periodic spawning. Live windows keep going.
func (s *Spawner) SetPaused(p bool) { s.paused = p }
func (s *Spawner) Paused() bool     { return s.paused }

// Stop cancels spawning and closes every live window.
func (s *Spawner) Stop() {
	sched.Stop(s.timer)
	s.timer = nil
	s.env.Registry.CloseAll()
}

// RandomParams draws the starting conditions of a window: a position at
// least EdgeBuffer away from the screen edges (falling back to anywhere on
// screen when the screen is too small), a direction with each axis
// independently inverted, and speed, rainbow speed and maximum from their
// configured ranges.
func RandomParams(r Rand, screen motion.Size, t config.Tunables, msgs []string) Params {
	win := motion.Size{W: float64(t.WindowWidth), H: float64(t.WindowHeight)}
	pos := motion.Point{
		X: spawnCoord(r, screen.W, win.W, t.EdgeBuffer),
		Y: spawnCoord(r, screen.H, win.H, t.EdgeBuffer),
	}

	dir := motion.Vec{
		DX: uniform(r, t.MinDirection, t.MaxDirection),
		DY: uniform(r, t.MinDirection, t.MaxDirection),
	}
	if coin(r) {
		dir.DX = -dir.DX
	}
	if coin(r) {
		dir.DY = -dir.DY
	}

	return Params{
		Position:  motion.Clip(pos, win, screen),
		Direction: dir,
		Speed:     uniform(r, t.MinSpeed, t.MaxSpeed),
		Rainbow:   uniform(r, t.MinRainbow, t.MaxRainbow),
		Maximum:   intBetween(r, t.MinMaximum, t.MaxMaximum),
		Message:   messages.Pick(msgs, r.IntN),
	}
}

func spawnCoord(r Rand, extent, win, buffer float64) float64 {
	lo, hi := buffer, extent-buffer
	if hi < lo {
		lo, hi = 0, math.Max(0, extent-win)
	}
	return float64(intBetween(r, int(lo), int(hi)))
}
