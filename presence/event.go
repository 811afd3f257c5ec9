// SPDX-License-Identifier: MIT

package presence

import (
	"encoding/binary"
	"fmt"
)

// EventSize is the encoded length of an Event.
const EventSize = 18

// EventTypePresence is the type byte of presence events ('P').
const EventTypePresence uint8 = 0x50

// Flags is the event flag byte.
type Flags uint8

// Event flags.
const (
	FlagMutual    Flags = 1 << iota // both parties confirmed
	FlagVerified                    // both identity proofs verified
	FlagProximate                   // distance within threshold
)

// Event is the compact presence record exchanged between peers.
type Event struct {
	Type      uint8
	Flags     Flags
	PartyA    uint32
	PartyB    uint32
	Timestamp int64 // unix nanoseconds, encoded as u64
}

// NewEvent returns a presence event with no flags set.
func NewEvent(a, b uint32, ts int64) Event {
	return Event{Type: EventTypePresence, PartyA: a, PartyB: b, Timestamp: ts}
}

// Set turns on f.
func (e *Event) Set(f Flags) { e.Flags |= f }

// Has reports whether every bit of f is set.
func (e Event) Has(f Flags) bool { return e.Flags&f == f }

// AppendBinary appends the 18-byte encoding of e to b.
func (e Event) AppendBinary(b []byte) ([]byte, error) {
	b = append(b, e.Type, uint8(e.Flags))
	b = binary.LittleEndian.AppendUint32(b, e.PartyA)
	b = binary.LittleEndian.AppendUint32(b, e.PartyB)
	b = binary.LittleEndian.AppendUint64(b, uint64(e.Timestamp))
	return b, nil
}

// MarshalBinary returns the 18-byte encoding of e.
func (e Event) MarshalBinary() ([]byte, error) {
	return e.AppendBinary(make([]byte, 0, EventSize))
}

// UnmarshalBinary decodes exactly EventSize bytes. The type byte and
// unknown flag bits are kept as they are.
func (e *Event) UnmarshalBinary(data []byte) error {
	if len(data) != EventSize {
		return fmt.Errorf("%w: %d bytes, want %d", ErrInvalidEvent, len(data), EventSize)
	}
	*e = Event{
		Type:      data[0],
		Flags:     Flags(data[1]),
		PartyA:    binary.LittleEndian.Uint32(data[2:6]),
		PartyB:    binary.LittleEndian.Uint32(data[6:10]),
		Timestamp: int64(binary.LittleEndian.Uint64(data[10:18])),
	}
	return nil
}
