package osc

import (
	"encoding/binary"
	"time"
)

// Timetag represents an OSC Time Tag.
// An OSC Time Tag is defined as follows:
// Time tags are represented by a 64 bit fixed point number. The first 32 bits
// specify the number of seconds since midnight on January 1, 1900, and the
// last 32 bits specify fractional parts of a second to a precision of about
// 200 picoseconds. This is the representation used by Internet NTP timestamps.
type Timetag uint64

// TimetagImmediate is the special value meaning "process immediately": 63 zero
// bits followed by a one in the least significant bit.
const TimetagImmediate = Timetag(1)

// NewTimetag returns the immediate OSC time tag.
func NewTimetag() Timetag {
	return TimetagImmediate
}

// NewTimetagFromTime returns a new OSC time tag for a time.Time.
func NewTimetagFromTime(timeStamp time.Time) Timetag {
	return Timetag((uint64(secondsFrom1900To1970+timeStamp.Unix()) << 32) + uint64(timeStamp.Nanosecond()))
}

// Time returns the time the tag refers to.
func (t Timetag) Time() time.Time {
	return time.Unix(int64((t>>32)-secondsFrom1900To1970), int64(t&0xffffffff))
}

// TimeTag returns the raw time tag value.
func (t Timetag) TimeTag() uint64 {
	return uint64(t)
}

// SecondsSinceEpoch returns the first 32 bits (the number of seconds since
// midnight 1900) of the OSC time tag.
func (t Timetag) SecondsSinceEpoch() uint32 {
	return uint32(t >> 32)
}

// FractionalSecond returns the last 32 bits of the OSC time tag, specifying
// the fractional part of a second.
func (t Timetag) FractionalSecond() uint32 {
	return uint32(t)
}

// MarshalBinary converts the OSC time tag to a byte array.
func (t Timetag) MarshalBinary() (b []byte, err error) {
	b = make([]byte, bit64Size)
	binary.BigEndian.PutUint64(b, uint64(t))
	return
}

// ExpiresIn calculates the duration until the tagged time. It returns zero for
// the immediate tag and for tags in the past.
func (t Timetag) ExpiresIn() time.Duration {
	if t <= TimetagImmediate {
		return 0
	}

	d := time.Until(t.Time())
	if d <= 0 {
		return 0
	}

	return d
}
