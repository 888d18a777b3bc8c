// Package shutdown turns interrupt and terminate signals into a clean quit.
package shutdown

import (
	"os"
	"os/signal"
	"sync"
)

func Notify(ch chan<- os.Signal) {
	signal.Notify(ch, signals...)
}

// OnSignal calls fn once, with the first quit signal received. The returned
// stop function stops listening and returns without waiting for fn: a signal
// that arrived just before stop may still be delivered, and a call in
// progress may still be running.
func OnSignal(fn func(os.Signal)) (stop func()) {
	ch := make(chan os.Signal, 1)
	Notify(ch)
	done := make(chan struct{})
	var once sync.Once

	go func() {
		select {
		case sig := <-ch:
			signal.Stop(ch)
			fn(sig)
		case <-done:
		}
	}()

	return func() {
		once.Do(func() {
			signal.Stop(ch)
			close(done)
		})
	}
}
