package prank

import (
	"math"
	"time"

	"loadforever/config"
	"loadforever/motion"
	"loadforever/sched"
)

const windowTitle = "Loading..."

// Env is what every window needs from the application.
type Env struct {
	Host     Host
	Sched    sched.Scheduler
	Rand     Rand
	Tunables config.Tunables
	Registry *Registry
	Sink     Sink
}

func (e *Env) sink() Sink {
	if e.Sink == nil {
		return NopSink{}
	}
	return e.Sink
}

// Params fixes the randomized starting conditions of one window.
type Params struct {
	Position  motion.Point
	Direction motion.Vec
	Speed     float64
	Rainbow   float64
	Maximum   int
	Message   string
}

// Window is one bouncing progress bar. Its three timers (move, progress,
// colour) plus the delayed close run independently and are all stopped by
// Close.
type Window struct {
	id      int
	env     *Env
	state   motion.State
	rainbow float64
	message string
	surface Surface

	move     sched.Timer
	progress sched.Timer
	color    sched.Timer
	closing  sched.Timer

	done   bool
	closed bool
}

// Open registers a window, creates its surface and starts the movement and
// progress timers. The colour timer starts on the first corner hit.
func Open(env *Env, p Params) *Window {
	t := env.Tunables
	size := motion.Size{W: float64(t.WindowWidth), H: float64(t.WindowHeight)}
	w := &Window{
		env:     env,
		rainbow: p.Rainbow,
		message: p.Message,
		state:   motion.New(p.Position, size, p.Direction, p.Speed, p.Maximum, env.Host.Screen()),
	}
	env.Registry.add(w)

	w.surface = env.Host.NewSurface(SurfaceSpec{
		Title:    windowTitle,
		Message:  p.Message,
		Size:     size,
		Position: w.state.Pos,
		Maximum:  p.Maximum,
		Icon:     env.Host.IconVariant(),
		OnClosed: w.Close,
	})

	w.move = sched.Every(env.Sched, t.MoveInterval, w.MoveTick)
	w.progress = env.Sched.AfterFunc(w.progressInterval(), w.ProgressTick)
	env.sink().WindowSpawned(w.id, p.Message, p.Maximum)
	return w
}

func (w *Window) ID() int               { return w.id }
func (w *Window) Message() string       { return w.message }
func (w *Window) State() motion.State   { return w.state }
func (w *Window) Closed() bool          { return w.closed }
func (w *Window) RainbowSpeed() float64 { return w.rainbow }

func (w *Window) progressInterval() time.Duration {
	t := w.env.Tunables
	return durationBetween(w.env.Rand, t.ProgressMinInterval, t.ProgressMaxInterval)
}

// MoveTick advances the window one frame.
func (w *Window) MoveTick() {
	if w.closed {
		return
	}
	if w.state.Step(w.env.Host.Screen(), w.env.Tunables.CornerTolerance) {
		w.restartColor()
		w.env.sink().CornerHit(w.id, w.state.LastCorner, w.state.CornerHits, w.state.Speed)
	}
	w.surface.Move(int(math.Round(w.state.Pos.X)), int(math.Round(w.state.Pos.Y)))
}

// ProgressTick fills the bar a little, or finishes the window once the bar
// is full. A window that never reached a corner closes at once; one that
// did lingers for CloseDelay.
func (w *Window) ProgressTick() {
	if w.closed || w.done {
		return
	}
	if w.state.Complete() {
		w.done = true
		sched.Stop(w.progress)
		w.env.sink().WindowDone(w.id, w.state.CornerHits)
		if w.state.CornerHits == 0 {
			w.Close()
			return
		}
		w.closing = w.env.Sched.AfterFunc(w.env.Tunables.CloseDelay, w.Close)
		return
	}

	w.state.AddProgress(intBetween(w.env.Rand, 0, w.env.Tunables.ProgressMaxStep))
	w.surface.SetProgress(w.state.Progress, w.state.Maximum)
	w.progress = w.env.Sched.AfterFunc(w.progressInterval(), w.ProgressTick)
}

// ColorTick paints the bar with the current rainbow colour and re-arms.
func (w *Window) ColorTick() {
	if w.closed {
		return
	}
	w.surface.SetFillColor(motion.Rainbow(w.env.Sched.Now(), w.rainbow))
	w.color = w.env.Sched.AfterFunc(w.env.Tunables.ColorInterval, w.ColorTick)
}

func (w *Window) restartColor() {
	sched.Stop(w.color)
	w.color = w.env.Sched.AfterFunc(0, w.ColorTick)
}

// Close stops every timer, unregisters the window and closes its surface.
// Calling it again does nothing.
func (w *Window) Close() {
	if w.closed {
		return
	}
	w.closed = true
	sched.Stop(w.move, w.progress, w.color, w.closing)
	w.env.Registry.Remove(w)
	w.surface.Close()
	w.env.sink().WindowClosed(w.id, w.env.Registry.Len())
}
