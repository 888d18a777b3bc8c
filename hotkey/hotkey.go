// Package hotkey listens for the global quit chord, Ctrl+Shift+Q.
package hotkey

import "sync"

// Chord is the human readable form of the quit hotkey.
const Chord = "Ctrl+Shift+Q"

type Hotkey interface {
	Register() error
	Unregister()
	Keydown() <-chan struct{}
	Keyup() <-chan struct{}
}

// OnPress calls fn once, on the first keydown of hk. The returned stop
// function ends the wait without calling fn; it is safe to call more than
// once and after fn has run.
func OnPress(hk Hotkey, fn func()) (stop func()) {
	done := make(chan struct{})
	var once sync.Once
	go func() {
		select {
		case <-hk.Keydown():
			fn()
		case <-done:
		}
	}()
	return func() { once.Do(func() { close(done) }) }
}
