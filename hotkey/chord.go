package hotkey

import "encoding/binary"

// Linux input-event-codes.h values.
const (
	evKey      = 1
	keyRelease = 0
	keyPress   = 1
	keyRepeat  = 2

	keyLCtrl  = 29
	keyRCtrl  = 97
	keyLShift = 42
	keyRShift = 54
	keyQ      = 16
)

// struct input_event on 64-bit: 16 bytes of timeval, then type, code, value.
const inputEventSize = 24

func decodeEvent(b []byte) (typ, code uint16, value int32) {
	typ = binary.LittleEndian.Uint16(b[16:])
	code = binary.LittleEndian.Uint16(b[18:])
	value = int32(binary.LittleEndian.Uint32(b[20:]))
	return typ, code, value
}

// chord tracks modifier state across key events and reports when Q goes
// down or up while Ctrl and Shift are held. Auto-repeat is ignored.
type chord struct {
	ctrl, shift bool
	down        bool
}

type edge int

const (
	edgeNone edge = iota
	edgeDown
	edgeUp
)

func (c *chord) feed(code uint16, value int32) edge {
	if value == keyRepeat {
		return edgeNone
	}
	pressed := value == keyPress
	switch code {
	case keyLCtrl, keyRCtrl:
		c.ctrl = pressed
	case keyLShift, keyRShift:
		c.shift = pressed
	case keyQ:
		switch {
		case pressed && !c.down && c.ctrl && c.shift:
			c.down = true
			return edgeDown
		case !pressed && c.down:
			c.down = false
			return edgeUp
		}
	}
	return edgeNone
}
