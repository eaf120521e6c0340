package git

import "fmt"

const (
	secondsPerDay  = 86400
	daysPerEra     = 146097 // 400 Gregorian years
	civilEpochDays = 719468 // days from 0000-03-01 to 1970-01-01
)

// EpochToDate formats Unix epoch seconds as a proleptic Gregorian
// YYYY-MM-DD date in UTC using integer arithmetic only.
//
// Division is floored, so -1 maps to 1969-12-31. Years are counted from a
// March 1 origin, which puts February 29 at the end of the computed year.
func EpochToDate(epoch int64) string {
	z := floorDiv(epoch, secondsPerDay) + civilEpochDays
	era := floorDiv(z, daysPerEra)
	doe := z - era*daysPerEra                              // [0, 146096]
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365 // [0, 399]
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100) // [0, 365]
	mp := (5*doy + 2) / 153                  // [0, 11], 0 = March
	d := doy - (153*mp+2)/5 + 1              // [1, 31]

	m := mp + 3
	if mp >= 10 {
		m = mp - 9
	}
	if m <= 2 {
		y++
	}

	return fmt.Sprintf("%04d-%02d-%02d", y, m, d)
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
