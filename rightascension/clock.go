package rightascension

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Time constants
const (
	nanosPerSecond = int64(1_000_000_000)
	nanosPerMinute = 60 * nanosPerSecond
	nanosPerHour   = 60 * nanosPerMinute
	nanosPerDay    = 24 * nanosPerHour // 86_400_000_000_000
)

// ErrOutOfRange reports a value that does not fit within a single day,
// either a nanosecond-of-day outside [0, 86_400_000_000_000) or a clock
// field outside its range.
var ErrOutOfRange = errors.New("value out of range")

// Clock is an immutable time-of-day value with nanosecond resolution.
// The zero value is midnight. Clock implements Temporal, supporting all
// four fields.
type Clock struct {
	hour   int8
	minute int8
	second int8
	nanos  int32
}

// NewClock builds a Clock from its fields, validating each range
// (hour 0-23, minute 0-59, second 0-59, nanos 0-999999999).
func NewClock(hour, minute, second, nanos int) (Clock, error) {
	switch {
	case hour < 0 || hour > 23:
		return Clock{}, fmt.Errorf("hour %d: %w", hour, ErrOutOfRange)
	case minute < 0 || minute > 59:
		return Clock{}, fmt.Errorf("minute %d: %w", minute, ErrOutOfRange)
	case second < 0 || second > 59:
		return Clock{}, fmt.Errorf("second %d: %w", second, ErrOutOfRange)
	case nanos < 0 || int64(nanos) >= nanosPerSecond:
		return Clock{}, fmt.Errorf("nano-of-second %d: %w", nanos, ErrOutOfRange)
	}
	return Clock{int8(hour), int8(minute), int8(second), int32(nanos)}, nil
}

// ClockFromNanoOfDay builds a Clock from a count of nanoseconds since
// midnight. It fails with ErrOutOfRange unless 0 <= n < 86_400_000_000_000.
func ClockFromNanoOfDay(n int64) (Clock, error) {
	if n < 0 || n >= nanosPerDay {
		return Clock{}, fmt.Errorf("nanosecond-of-day %d: %w", n, ErrOutOfRange)
	}
	return Clock{
		hour:   int8(n / nanosPerHour),
		minute: int8(n / nanosPerMinute % 60),
		second: int8(n / nanosPerSecond % 60),
		nanos:  int32(n % nanosPerSecond),
	}, nil
}

// ClockOf extracts the wall-clock fields of t in its location. No
// calendar or zone information is retained.
func ClockOf(t time.Time) Clock {
	return Clock{
		hour:   int8(t.Hour()),
		minute: int8(t.Minute()),
		second: int8(t.Second()),
		nanos:  int32(t.Nanosecond()),
	}
}

// Hour returns the hour-of-day field (0-23).
func (c Clock) Hour() int { return int(c.hour) }

// Minute returns the minute-of-hour field (0-59).
func (c Clock) Minute() int { return int(c.minute) }

// Second returns the second-of-minute field (0-59).
func (c Clock) Second() int { return int(c.second) }

// Nanosecond returns the nano-of-second field (0-999999999).
func (c Clock) Nanosecond() int { return int(c.nanos) }

// NanoOfDay returns the canonical integer form of c, the count of
// nanoseconds since midnight in [0, 86_400_000_000_000).
func (c Clock) NanoOfDay() int64 {
	return int64(c.hour)*nanosPerHour +
		int64(c.minute)*nanosPerMinute +
		int64(c.second)*nanosPerSecond +
		int64(c.nanos)
}

// Field implements Temporal.
func (c Clock) Field(f Field) (int64, bool) {
	switch f {
	case FieldHourOfDay:
		return int64(c.hour), true
	case FieldMinuteOfHour:
		return int64(c.minute), true
	case FieldSecondOfMinute:
		return int64(c.second), true
	case FieldNanoOfSecond:
		return int64(c.nanos), true
	}
	return 0, false
}

// String renders c as hh:mm:ss, with the fractional second appended and
// trailing zeros trimmed when it is nonzero.
func (c Clock) String() string {
	s := fmt.Sprintf("%02d:%02d:%02d", c.hour, c.minute, c.second)
	if c.nanos != 0 {
		s += strings.TrimRight(fmt.Sprintf(".%09d", c.nanos), "0")
	}
	return s
}
