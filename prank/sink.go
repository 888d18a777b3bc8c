package prank

import "loadforever/motion"

// Sink observes window lifecycles. Calls arrive on the event loop.
type Sink interface {
	WindowSpawned(id int, message string, maximum int)
	CornerHit(id int, corner motion.Corner, hits int, speed float64)
	WindowDone(id int, cornerHits int)
	WindowClosed(id int, live int)
}

type NopSink struct{}

func (NopSink) WindowSpawned(int, string, int)             {}
func (NopSink) CornerHit(int, motion.Corner, int, float64) {}
func (NopSink) WindowDone(int, int)                        {}
func (NopSink) WindowClosed(int, int)                      {}

// Sinks fans every event out to each sink in order.
type Sinks []Sink

func (s Sinks) WindowSpawned(id int, message string, maximum int) {
	for _, k := range s {
		k.WindowSpawned(id, message, maximum)
	}
}

func (s Sinks) CornerHit(id int, corner motion.Corner, hits int, speed float64) {
	for _, k := range s {
		k.CornerHit(id, corner, hits, speed)
	}
}

func (s Sinks) WindowDone(id int, cornerHits int) {
	for _, k := range s {
		k.WindowDone(id, cornerHits)
	}
}

func (s Sinks) WindowClosed(id int, live int) {
	for _, k := range s {
		k.WindowClosed(id, live)
	}
}
