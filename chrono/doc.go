// Package chrono holds the linear time representation behind time values.
//
// A [Time] is a count of seconds since 0001-01-01T00:00:00Z together with
// a fixed zone offset in seconds. The local wall clock of a time is
// Sec+ZoneOffset. There is no zone database: an offset is all a time
// knows about its zone.
//
// Internally, clock and calendar computations work on an unsigned
// "absolute" second count whose origin lies far enough in the past
// (year [YearAbsolute]) that every signed 64-bit second count maps to a
// non-negative value. Arithmetic on absolute counts wraps modulo 2^64,
// which keeps the conversions total across the whole int64 range.
//
// Gregorian fields (year, month, day) are derived by package
// [github.com/quanta-format/go-quanta/chrono/gregorian].
package chrono
