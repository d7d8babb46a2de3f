// Package rightascension converts between right ascension expressed as a
// time of day (0-24h) and the equivalent angle in degrees (0-360°), at
// 15°/hour.
//
// Each direction of the conversion comes in two variants sharing the same
// formula: a fast float64 path, and an exact path computed in a fixed
// 20-significant-digit round-half-up decimal context so results are
// deterministic across platforms.
//
// The angle-to-time conversions never normalize their input. An angle
// outside [0, 360) maps to a nanosecond-of-day outside the valid day range
// and fails with ErrOutOfRange; callers wanting defined behavior for
// arbitrary angles should pass the value through NormalizeDegrees first.
//
// All functions are stateless and safe for concurrent use.
package rightascension
