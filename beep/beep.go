// Package beep plays the short chimes that accompany corner hits and
// finished bars. It is silent until Enable is called.
package beep

import (
	"math"
	"sync/atomic"
	"time"
)

var (
	enabled  atomic.Bool
	lastPlay atomic.Int64
)

func Enable()       { enabled.Store(true) }
func Disable()      { enabled.Store(false) }
func Enabled() bool { return enabled.Load() }

const (
	sampleRate = 44100

	// Corner chirp: pitch climbs with every corner a window collects
	cornerFreq   = 660
	cornerStep   = 0.25
	cornerMaxHit = 8
	cornerVolume = 0.4
	cornerDecay  = 45

	// Done: low, slightly longer
	doneFreq   = 440
	doneVolume = 0.35
	doneDecay  = 25

	// Chimes closer together than this are dropped.
	minGap = 80 * time.Millisecond
)

// CornerFreq is the chirp pitch for a window's nth corner hit.
func CornerFreq(hits int) float64 {
	n := min(max(hits, 1), cornerMaxHit) - 1
	return cornerFreq * (1 + cornerStep*float64(n))
}

// throttle reports whether a chime may play now and records it.
func throttle(now time.Time) bool {
	last := lastPlay.Load()
	if last != 0 && now.Sub(time.Unix(0, last)) < minGap {
		return false
	}
	return lastPlay.CompareAndSwap(last, now.UnixNano())
}

// generateTick renders a mono sine tick with an exponential decay envelope.
func generateTick(sampleRate int, freq float64, duration float64, volume float64, decay float64) []int16 {
	n := int(float64(sampleRate) * duration)
	samples := make([]int16, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		envelope := math.Exp(-t * decay)
		samples[i] = int16(math.Sin(2*math.Pi*freq*t) * 32767 * volume * envelope)
	}
	return samples
}

// toBytes packs samples as little-endian S16.
func toBytes(samples []int16) []byte {
	buf := make([]byte, len(samples)*2)
	for i, s := range samples {
		buf[i*2] = byte(s)
		buf[i*2+1] = byte(s >> 8)
	}
	return buf
}

func cornerSamples(hits int) []int16 {
	return generateTick(sampleRate, CornerFreq(hits), 0.12, cornerVolume, cornerDecay)
}

func doneSamples() []int16 {
	return generateTick(sampleRate, doneFreq, 0.25, doneVolume, doneDecay)
}

// PlayCorner chirps for a window's nth corner hit.
func PlayCorner(hits int) {
	if !Enabled() || !throttle(time.Now()) {
		return
	}
	play(cornerSamples(hits))
}

// PlayDone sounds when a bar fills up.
func PlayDone() {
	if !Enabled() || !throttle(time.Now()) {
		return
	}
	play(doneSamples())
}
