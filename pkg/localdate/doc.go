// Package localdate provides zone-less Date, Time and DateTime values and
// stateless helpers around them: reading the clock, parsing and formatting
// with pattern strings such as "yyyy-MM-dd HH:mm:ss", signed differences in a
// chosen unit, and navigation to calendar boundaries.
//
// All functions are pure and safe for concurrent use. Calendar arithmetic is
// delegated to the time package (proleptic Gregorian calendar).
//
// Pattern letters:
//
//	y u   year (yy: two digits, base 2000)
//	M L   month (M, MM numeric; MMM short name; MMMM full name)
//	d     day of month
//	D     day of year
//	E     day of week (E..EEE short name; EEEE full name)
//	a     AM/PM
//	H k   hour of day (0-23, 1-24)
//	K h   hour of am/pm (0-11, 1-12)
//	m s   minute, second
//	S     fraction of second, fixed width
//	n     nano of second
//	'…'   literal text; '' is a single quote
//
// Compiled patterns are cached by text.
package localdate
