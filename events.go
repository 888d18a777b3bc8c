package main

import (
	"loadforever/beep"
	"loadforever/log"
	"loadforever/motion"
	"loadforever/prank"
)

// logSink records window lifecycles in the diagnostics log.
type logSink struct {
	spawned int
}

func (s *logSink) WindowSpawned(id int, message string, maximum int) {
	s.spawned++
	log.WindowSpawned(id, message, maximum)
}

func (s *logSink) CornerHit(id int, corner motion.Corner, hits int, speed float64) {
	log.CornerHit(id, corner.String(), hits, speed)
}

func (s *logSink) WindowDone(id int, cornerHits int) { log.WindowDone(id, cornerHits) }
func (s *logSink) WindowClosed(id int, live int)     { log.WindowClosed(id, live) }

// chimeSink plays the corner and done chimes. beep drops them unless sound
// is enabled.
type chimeSink struct {
	prank.NopSink
}

func (chimeSink) CornerHit(_ int, _ motion.Corner, hits int, _ float64) { beep.PlayCorner(hits) }
func (chimeSink) WindowDone(int, int)                                  { beep.PlayDone() }

func newSinks() (*logSink, prank.Sink) {
	ls := &logSink{}
	return ls, prank.Sinks{ls, chimeSink{}}
}
