package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// maxMillis is the longest interval a time.Duration can hold.
const maxMillis = math.MaxInt64 / int64(time.Millisecond)

// Madness is the -madness flag: "true"/"false" picks the fast or default
// spawn interval, a non-negative integer is a literal interval in ms.
type Madness struct {
	set     bool
	enabled bool
	millis  int
	literal bool
}

func (m *Madness) String() string {
	switch {
	case m == nil || !m.set:
		return ""
	case m.literal:
		return strconv.Itoa(m.millis)
	default:
		return strconv.FormatBool(m.enabled)
	}
}

func (m *Madness) Set(s string) error {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true":
		*m = Madness{set: true, enabled: true}
		return nil
	case "false":
		*m = Madness{set: true}
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 || int64(n) > maxMillis {
		return fmt.Errorf("want true, false or a non-negative number of milliseconds")
	}
	*m = Madness{set: true, millis: n, literal: true}
	return nil
}

// Interval resolves the spawn interval. Zero is bumped to 1ms so the spawn
// timer never spins.
func (m *Madness) Interval(t Tunables) time.Duration {
	d := t.SpawnInterval
	switch {
	case m == nil || !m.set:
	case m.literal:
		d = time.Duration(m.millis) * time.Millisecond
	case m.enabled:
		d = t.MadnessInterval
	}
	if d <= 0 {
		d = time.Millisecond
	}
	return d
}
