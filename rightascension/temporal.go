package rightascension

import "errors"

// Field identifies a time-of-day field on a Temporal accessor.
type Field uint8

const (
	FieldHourOfDay Field = iota
	FieldMinuteOfHour
	FieldSecondOfMinute
	// FieldNanoOfSecond is the only sub-second field consulted. Coarser
	// fractional fields (milli, micro) are assumed to be projections of
	// it; an accessor that models fractional seconds at a coarser
	// resolution must fold them into this field itself.
	FieldNanoOfSecond
)

// Temporal is the minimal accessor the conversions read time-of-day
// fields through. Field reports the value of f and whether the accessor
// supports it at all; an unsupported field is (0, false), never an error.
type Temporal interface {
	Field(f Field) (int64, bool)
}

// ErrUnsupportedTemporal reports an accessor that lacks one of the fields
// the time-to-angle conversions require. The conversions themselves do not
// raise it: they read unsupported fields as zero. Callers validating
// heterogeneous inputs should gate on Supported first.
var ErrUnsupportedTemporal = errors.New("temporal accessor lacks hour, minute or second field")

// Supported reports whether t carries the fields the time-to-angle
// conversions require: hour-of-day, minute-of-hour and second-of-minute.
// The nano-of-second field is optional and is not checked here.
func Supported(t Temporal) bool {
	for _, f := range []Field{FieldHourOfDay, FieldMinuteOfHour, FieldSecondOfMinute} {
		if _, ok := t.Field(f); !ok {
			return false
		}
	}
	return true
}

// nanosOfSecond returns the fractional part of the second in nanoseconds,
// or 0 when the accessor does not expose one.
func nanosOfSecond(t Temporal) int64 {
	if n, ok := t.Field(FieldNanoOfSecond); ok {
		return n
	}
	return 0
}
