package prank

import (
	"fmt"
	"testing"
	"time"

	"loadforever/motion"
)

func midParams(maximum int) Params {
	return Params{
		Position:  motion.Point{X: 800, Y: 500},
		Direction: motion.Vec{DX: 0.1, DY: 0.1},
		Speed:     0.5,
		Rainbow:   1,
		Maximum:   maximum,
		Message:   "Reticulating splines...",
	}
}

func TestOpenRegistersAndCreatesSurface(t *testing.T) {
	env, host, _, sink := newEnv(constRand{})
	w := Open(env, midParams(100))

	if env.Registry.Len() != 1 {
		t.Fatalf("registry has %d windows, want 1", env.Registry.Len())
	}
	if len(host.surfaces) != 1 {
		t.Fatalf("host created %d surfaces, want 1", len(host.surfaces))
	}
	spec := host.surfaces[0].spec
	if spec.Title != "Loading..." || spec.Message != "Reticulating splines..." {
		t.Errorf("spec = %+v", spec)
	}
	if spec.Size != (motion.Size{W: 300, H: 100}) || spec.Maximum != 100 {
		t.Errorf("spec size/maximum = %v/%d", spec.Size, spec.Maximum)
	}
	if w.ID() != 1 || len(sink.spawned) != 1 {
		t.Errorf("id = %d, spawned events = %v", w.ID(), sink.spawned)
	}
}

func TestWindowClosesImmediatelyWithoutCorner(t *testing.T) {
	env, host, clock, sink := newEnv(constRand{f: 0, pick: maxPick})
	w := Open(env, midParams(20))
	s := host.surfaces[0]

	clock.Advance(45 * time.Millisecond)
	if fmt.Sprint(s.progress) != "[5 10 15 20]" {
		t.Fatalf("progress = %v, want [5 10 15 20]", s.progress)
	}
	if w.Closed() {
		t.Fatal("closed before the completion tick")
	}

	clock.Advance(10 * time.Millisecond)
	if !w.Closed() || s.closed != 1 {
		t.Fatalf("closed = %v, surface closes = %d", w.Closed(), s.closed)
	}
	if env.Registry.Len() != 0 {
		t.Errorf("registry still holds %d windows", env.Registry.Len())
	}
	if clock.Pending() != 0 {
		t.Errorf("%d timers still armed after close", clock.Pending())
	}
	if len(sink.done) != 1 || len(sink.closed) != 1 {
		t.Errorf("done/closed events = %v/%v", sink.done, sink.closed)
	}

	moves := len(s.moves)
	clock.Advance(time.Second)
	if len(s.moves) != moves {
		t.Error("window kept moving after close")
	}
}

func TestWindowLingersAfterCornerHit(t *testing.T) {
	env, host, clock, sink := newEnv(constRand{f: 0, pick: maxPick})
	p := midParams(20)
	p.Position = motion.Point{}
	p.Direction = motion.Vec{DX: 3, DY: 3}
	w := Open(env, p)
	s := host.surfaces[0]

	clock.Advance(10 * time.Millisecond)
	if len(sink.corners) != 1 || sink.corners[0] != motion.TopLeft {
		t.Fatalf("corner events = %v, want [top-left]", sink.corners)
	}
	if got := w.State().Speed; got != 1 {
		t.Errorf("speed = %v after first corner, want doubled to 1", got)
	}
	if len(s.colors) != 1 {
		t.Fatalf("colour tick should start with the corner hit, got %d colours", len(s.colors))
	}
	if want := motion.Rainbow(epoch.Add(10*time.Millisecond), 1); s.colors[0] != want {
		t.Errorf("colour = %v, want %v", s.colors[0], want)
	}

	clock.Advance(50 * time.Millisecond)
	if w.Closed() {
		t.Fatal("window with a corner hit closed without delay")
	}
	if len(sink.done) != 1 {
		t.Fatalf("done events = %v, want one", sink.done)
	}
	if got := w.State().Speed; got != 1 {
		t.Errorf("speed = %v while lingering in the same corner, want 1", got)
	}
	if len(s.colors) != 6 {
		t.Errorf("got %d colours after 60ms, want 6", len(s.colors))
	}

	clock.Advance(2980 * time.Millisecond)
	if w.Closed() {
		t.Fatal("closed before the close delay elapsed")
	}
	clock.Advance(20 * time.Millisecond)
	if !w.Closed() || s.closed != 1 {
		t.Fatalf("closed = %v, surface closes = %d", w.Closed(), s.closed)
	}
	if clock.Pending() != 0 {
		t.Errorf("%d timers still armed after close", clock.Pending())
	}
}

func TestCloseIsIdempotentAndStopsTimers(t *testing.T) {
	env, host, clock, sink := newEnv(constRand{f: 0.5, pick: fixedPick(1)})
	w := Open(env, midParams(1000))
	s := host.surfaces[0]

	clock.Advance(30 * time.Millisecond)
	w.Close()
	w.Close()

	if s.closed != 1 || len(sink.closed) != 1 {
		t.Errorf("surface closes = %d, closed events = %d", s.closed, len(sink.closed))
	}
	if clock.Pending() != 0 {
		t.Errorf("%d timers still armed", clock.Pending())
	}
	moves, progress := len(s.moves), len(s.progress)
	clock.Advance(time.Second)
	if len(s.moves) != moves || len(s.progress) != progress {
		t.Error("ticks ran after close")
	}
}

func TestHostCloseClosesWindow(t *testing.T) {
	env, host, clock, _ := newEnv(constRand{f: 0.5})
	w := Open(env, midParams(1000))

	host.surfaces[0].spec.OnClosed()

	if !w.Closed() || env.Registry.Len() != 0 {
		t.Fatalf("closed = %v, registry = %d", w.Closed(), env.Registry.Len())
	}
	if clock.Pending() != 0 {
		t.Errorf("%d timers still armed", clock.Pending())
	}
}

func TestProgressTicksToFill(t *testing.T) {
	for _, maximum := range []int{1, 7, 100, 523} {
		for _, step := range []int{1, 3, 5} {
			env, host, clock, _ := newEnv(constRand{f: 0, pick: fixedPick(step)})
			w := Open(env, midParams(maximum))
			clock.Advance(time.Duration(maximum+5) * 10 * time.Millisecond)

			ticks := len(host.surfaces[0].progress)
			want := (maximum + step - 1) / step
			if ticks != want {
				t.Errorf("M=%d step=%d: %d ticks, want %d", maximum, step, ticks, want)
			}
			if lo := (maximum + 4) / 5; ticks < lo || ticks > maximum {
				t.Errorf("M=%d step=%d: %d ticks outside [%d, %d]", maximum, step, ticks, lo, maximum)
			}
			if !w.Closed() {
				t.Errorf("M=%d step=%d: window not closed", maximum, step)
			}
		}
	}
}

func TestMoveTickMovesSurface(t *testing.T) {
	env, host, _, _ := newEnv(constRand{f: 0.5})
	p := midParams(1000)
	p.Direction = motion.Vec{DX: 4, DY: -2}
	p.Speed = 1
	w := Open(env, p)

	w.MoveTick()
	w.MoveTick()

	s := host.surfaces[0]
	if len(s.moves) != 2 {
		t.Fatalf("got %d moves", len(s.moves))
	}
	if s.moves[1] != (point{808, 496}) {
		t.Errorf("second move to %v, want {808 496}", s.moves[1])
	}
}
