package openaddr

import (
	"strconv"

	"github.com/pkg/errors"
)

const dateKeyLen = 10

var daysPerMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DateHashing spreads date keys evenly over a table whose capacity is a
// multiple of 366. Keys are 10 characters long in one of the formats
// DD/MM/YYYY, DD-MM-YYYY, YYYY/MM/DD or YYYY-MM-DD. It probes linearly.
type DateHashing struct{}

// Hash places a date at (dayOfYear-1)*c + year mod c, with c = capacity/366,
// so each day owns a run of c slots shared out between the years.
func (DateHashing) Hash(key string, capacity int) (int, error) {
	year, month, day, err := ParseDateKey(key)
	if err != nil {
		return 0, err
	}
	c := capacity / daysPerLeapYear
	if c < 1 {
		c = 1
	}
	return ((DayOfYear(year, month, day)-1)*c + year%c) % capacity, nil
}

// Step is always 1.
func (DateHashing) Step(string, int) int {
	return 1
}

// ParseDateKey splits a date key into its year, month and day. The layout is
// detected from the character at offset 4: a separator there means the year
// comes first.
func ParseDateKey(key string) (year, month, day int, err error) {
	if len(key) != dateKeyLen {
		return 0, 0, 0, errors.Wrapf(ErrBadDateKey, "%q is not %d characters", key, dateKeyLen)
	}
	yf, mf, df := key[6:10], key[3:5], key[0:2]
	if key[4] == '-' || key[4] == '/' {
		yf, mf, df = key[0:4], key[5:7], key[8:10]
	}
	if year, err = atoi(key, yf); err != nil {
		return 0, 0, 0, err
	}
	if month, err = atoi(key, mf); err != nil {
		return 0, 0, 0, err
	}
	if day, err = atoi(key, df); err != nil {
		return 0, 0, 0, err
	}
	if month < 1 || month > 12 {
		return 0, 0, 0, errors.Wrapf(ErrBadDateKey, "%q has month %d", key, month)
	}
	if day < 1 || day > 31 {
		return 0, 0, 0, errors.Wrapf(ErrBadDateKey, "%q has day %d", key, day)
	}
	return year, month, day, nil
}

func atoi(key, field string) (int, error) {
	n, err := strconv.ParseUint(field, 10, 16)
	if err != nil {
		return 0, errors.Wrapf(ErrBadDateKey, "%q has non numeric field %q", key, field)
	}
	return int(n), nil
}

// DayOfYear returns the 1-based day number of a date within its year.
func DayOfYear(year, month, day int) int {
	days := day
	for m := 0; m < month-1; m++ {
		days += daysPerMonth[m]
		if m == 1 && IsLeapYear(year) {
			days++
		}
	}
	return days
}

// IsLeapYear reports whether year is a gregorian leap year.
func IsLeapYear(year int) bool {
	switch {
	case year%400 == 0:
		return true
	case year%100 == 0:
		return false
	default:
		return year%4 == 0
	}
}
