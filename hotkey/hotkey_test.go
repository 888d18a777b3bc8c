package hotkey

import (
	"encoding/binary"
	"testing"
	"time"
)

func TestChord(t *testing.T) {
	type ev struct {
		code  uint16
		value int32
	}
	tests := []struct {
		name   string
		events []ev
		want   []edge
	}{
		{
			name:   "ctrl shift q",
			events: []ev{{keyLCtrl, keyPress}, {keyLShift, keyPress}, {keyQ, keyPress}, {keyQ, keyRelease}},
			want:   []edge{edgeNone, edgeNone, edgeDown, edgeUp},
		},
		{
			name:   "right hand modifiers",
			events: []ev{{keyRShift, keyPress}, {keyRCtrl, keyPress}, {keyQ, keyPress}},
			want:   []edge{edgeNone, edgeNone, edgeDown},
		},
		{
			name:   "q alone",
			events: []ev{{keyQ, keyPress}, {keyQ, keyRelease}},
			want:   []edge{edgeNone, edgeNone},
		},
		{
			name:   "ctrl released first",
			events: []ev{{keyLCtrl, keyPress}, {keyLShift, keyPress}, {keyLCtrl, keyRelease}, {keyQ, keyPress}},
			want:   []edge{edgeNone, edgeNone, edgeNone, edgeNone},
		},
		{
			name:   "auto repeat",
			events: []ev{{keyLCtrl, keyPress}, {keyLShift, keyPress}, {keyQ, keyPress}, {keyQ, keyRepeat}, {keyQ, keyRepeat}},
			want:   []edge{edgeNone, edgeNone, edgeDown, edgeNone, edgeNone},
		},
		{
			name:   "release after modifiers let go",
			events: []ev{{keyLCtrl, keyPress}, {keyLShift, keyPress}, {keyQ, keyPress}, {keyLCtrl, keyRelease}, {keyQ, keyRelease}},
			want:   []edge{edgeNone, edgeNone, edgeDown, edgeNone, edgeUp},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c chord
			for i, e := range tt.events {
				if got := c.feed(e.code, e.value); got != tt.want[i] {
					t.Errorf("event %d: got %v, want %v", i, got, tt.want[i])
				}
			}
		})
	}
}

func TestDecodeEvent(t *testing.T) {
	b := make([]byte, inputEventSize)
	binary.LittleEndian.PutUint16(b[16:], evKey)
	binary.LittleEndian.PutUint16(b[18:], keyQ)
	binary.LittleEndian.PutUint32(b[20:], keyPress)

	typ, code, value := decodeEvent(b)
	if typ != evKey || code != keyQ || value != keyPress {
		t.Errorf("got %d/%d/%d", typ, code, value)
	}
}

func TestOnPressFiresOnce(t *testing.T) {
	hk := NewFake()
	fired := make(chan struct{}, 2)
	stop := OnPress(hk, func() { fired <- struct{}{} })
	defer stop()

	hk.SimKeydown()
	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("OnPress did not fire")
	}

	hk.SimKeydown()
	select {
	case <-fired:
		t.Error("OnPress fired twice")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestOnPressStop(t *testing.T) {
	hk := NewFake()
	fired := make(chan struct{}, 1)
	stop := OnPress(hk, func() { fired <- struct{}{} })
	stop()
	stop()

	// give the watcher a chance to exit before the key arrives
	time.Sleep(20 * time.Millisecond)
	hk.SimKeydown()
	select {
	case <-fired:
		t.Error("OnPress fired after stop")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestFakeRegister(t *testing.T) {
	hk := NewFake()
	if err := hk.Register(); err != nil {
		t.Fatal(err)
	}
	if !hk.Registered() {
		t.Error("not registered")
	}
	hk.Unregister()
	if hk.Registered() {
		t.Error("still registered")
	}
}
