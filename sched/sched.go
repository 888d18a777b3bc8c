// Package sched models toolkit timers as scheduled tasks with cancellation
// tokens. Callbacks always run on the host event loop, one at a time.
package sched

import (
	"sync/atomic"
	"time"
)

// Timer is the cancellation token of one scheduled callback.
type Timer interface {
	// Stop cancels the callback. It reports whether the call prevented
	// the callback from running.
	Stop() bool
}

type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
	Now() time.Time
}

// Poster hands a callback to the host event loop, e.g. fyne.Do.
type Poster func(func())

// Loop schedules on the wall clock and runs callbacks through a Poster.
type Loop struct {
	post Poster
}

func NewLoop(post Poster) *Loop {
	return &Loop{post: post}
}

func (l *Loop) Now() time.Time { return time.Now() }

func (l *Loop) AfterFunc(d time.Duration, f func()) Timer {
	t := &loopTimer{}
	t.t = time.AfterFunc(d, func() {
		l.post(func() {
			// A Stop that lands after the post but before this runs still wins.
			if t.done.CompareAndSwap(false, true) {
				f()
			}
		})
	})
	return t
}

type loopTimer struct {
	t    *time.Timer
	done atomic.Bool
}

func (t *loopTimer) Stop() bool {
	t.t.Stop()
	return t.done.CompareAndSwap(false, true)
}

// Every runs f every d until the returned timer is stopped. The next run is
// armed before f is called, so f may stop its own repeater.
func Every(s Scheduler, d time.Duration, f func()) Timer {
	r := &repeater{s: s, d: d, f: f}
	r.cur = s.AfterFunc(d, r.fire)
	return r
}

type repeater struct {
	s       Scheduler
	d       time.Duration
	f       func()
	cur     Timer
	stopped bool
}

func (r *repeater) fire() {
	if r.stopped {
		return
	}
	r.cur = r.s.AfterFunc(r.d, r.fire)
	r.f()
}

func (r *repeater) Stop() bool {
	if r.stopped {
		return false
	}
	r.stopped = true
	return r.cur.Stop()
}

// Stop stops every non-nil timer in ts.
func Stop(ts ...Timer) {
	for _, t := range ts {
		if t != nil {
			t.Stop()
		}
	}
}
