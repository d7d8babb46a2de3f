package rightascension

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// Conversion constants
const (
	degreesPerHour = 15.0
	// hourConv scales degrees to nanoseconds of day: 3.6e12 ns/h over
	// 15°/h, i.e. 2.4e11 ns/°.
	hourConv = 3.6e12 / degreesPerHour

	// workingPrecision is the significant-digit precision of the exact
	// path's decimal context.
	workingPrecision = 20
)

// decCtx is the working context for the exact path: 20 significant
// digits, round half up. Shared by every exact-path operation so the two
// directions agree digit for digit across platforms.
var decCtx = apd.Context{
	Precision:   workingPrecision,
	Rounding:    apd.RoundHalfUp,
	MaxExponent: apd.MaxExponent,
	MinExponent: apd.MinExponent,
	Traps:       apd.DefaultTraps,
}

// Decimal constants for the exact path. Initialized once, never mutated.
var (
	decNano     = apd.New(1, -9) // 1e-9, nanosecond scaling
	dec60       = apd.New(60, 0) // minutes per hour
	dec3600     = apd.New(3600, 0)
	dec15       = apd.New(15, 0)  // degrees per hour
	decHourConv = apd.New(24, 10) // 3.6e12 / 15, ns per degree
)

// Angle converts a right ascension time to an angle in degrees using
// float64 arithmetic. The result tracks the exact path to within
// representation error in the last few decimal digits.
//
// Angle assumes t supports the hour, minute and second fields; an
// unsupported field reads as zero. Validate with Supported first.
func Angle(t Temporal) float64 {
	hh, _ := t.Field(FieldHourOfDay)
	mm, _ := t.Field(FieldMinuteOfHour)
	ss, _ := t.Field(FieldSecondOfMinute)

	sec := float64(ss) + float64(nanosOfSecond(t))*1e-9
	hours := float64(hh) + float64(mm)/60.0 + sec/3600.0
	return hours * degreesPerHour
}

// DecimalAngle converts a right ascension time to an angle in degrees
// using the same formula as Angle, computed in the 20-digit half-up
// decimal context. The field assumptions of Angle apply.
func DecimalAngle(t Temporal) (*apd.Decimal, error) {
	hh, _ := t.Field(FieldHourOfDay)
	mm, _ := t.Field(FieldMinuteOfHour)
	ss, _ := t.Field(FieldSecondOfMinute)

	var frac, sec, mins, hours, angle apd.Decimal
	if _, err := decCtx.Mul(&frac, apd.New(nanosOfSecond(t), 0), decNano); err != nil {
		return nil, err
	}
	if _, err := decCtx.Add(&sec, apd.New(ss, 0), &frac); err != nil {
		return nil, err
	}
	if _, err := decCtx.Quo(&mins, apd.New(mm, 0), dec60); err != nil {
		return nil, err
	}
	if _, err := decCtx.Quo(&sec, &sec, dec3600); err != nil {
		return nil, err
	}
	if _, err := decCtx.Add(&hours, apd.New(hh, 0), &mins); err != nil {
		return nil, err
	}
	if _, err := decCtx.Add(&hours, &hours, &sec); err != nil {
		return nil, err
	}
	if _, err := decCtx.Mul(&angle, &hours, dec15); err != nil {
		return nil, err
	}
	return &angle, nil
}

// FromAngle converts an angle in degrees to the corresponding time of
// day, scaling to nanoseconds of day in float64 and truncating to an
// integer count. The angle is not normalized: anything mapping outside
// [0, 86_400_000_000_000) nanoseconds fails with ErrOutOfRange.
func FromAngle(deg float64) (Clock, error) {
	nanos := deg * hourConv
	if nanos < 0 || nanos >= float64(nanosPerDay) {
		return Clock{}, fmt.Errorf("angle %v: nanosecond-of-day %w", deg, ErrOutOfRange)
	}
	return ClockFromNanoOfDay(int64(nanos))
}

// FromDecimalAngle converts an angle in degrees to the corresponding
// time of day, scaling in the 20-digit half-up decimal context and
// truncating toward zero to an integer nanosecond count, matching the
// truncation of FromAngle. The same non-normalizing ErrOutOfRange
// contract applies.
func FromDecimalAngle(deg *apd.Decimal) (Clock, error) {
	var nanos, integ, frac apd.Decimal
	if _, err := decCtx.Mul(&nanos, deg, decHourConv); err != nil {
		return Clock{}, err
	}
	nanos.Modf(&integ, &frac)
	n, err := integ.Int64()
	if err != nil {
		return Clock{}, fmt.Errorf("angle %s: nanosecond-of-day %w", deg, ErrOutOfRange)
	}
	return ClockFromNanoOfDay(n)
}
