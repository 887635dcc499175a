package openaddr

import (
	"testing"
	"time"

	"github.com/scottcagno/hashtable/pkg/util"
)

func Test_IsLeapYear(t *testing.T) {
	tests := map[int]bool{
		2000: true,
		1900: false,
		2024: true,
		2023: false,
		2100: false,
		1600: true,
	}
	for year, want := range tests {
		util.AssertExpected(t, want, IsLeapYear(year))
	}
}

func Test_DayOfYear(t *testing.T) {
	util.AssertExpected(t, 1, DayOfYear(2023, 1, 1))
	util.AssertExpected(t, 60, DayOfYear(2023, 3, 1))
	util.AssertExpected(t, 61, DayOfYear(2024, 3, 1))
	util.AssertExpected(t, 60, DayOfYear(2024, 2, 29))
	util.AssertExpected(t, 365, DayOfYear(2023, 12, 31))
	util.AssertExpected(t, 366, DayOfYear(2024, 12, 31))

	// agrees with the calendar for every day of a leap and a common year
	for _, year := range []int{2023, 2024} {
		d := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
		for d.Year() == year {
			got := DayOfYear(d.Year(), int(d.Month()), d.Day())
			if got != d.YearDay() {
				t.Fatalf("DayOfYear(%s) = %d, want %d", d.Format("2006-01-02"), got, d.YearDay())
			}
			d = d.AddDate(0, 0, 1)
		}
	}
}

func Test_ParseDateKey(t *testing.T) {
	for _, key := range []string{"29/02/2024", "29-02-2024", "2024/02/29", "2024-02-29"} {
		year, month, day, err := ParseDateKey(key)
		util.AssertNoError(t, err)
		util.AssertExpected(t, []int{2024, 2, 29}, []int{year, month, day})
	}
	for _, key := range []string{"", "2024-1-01", "2024-01-011", "abcd-ef-gh", "2024-13-01", "2024-00-10", "2024-01-00", "2024-01-32", "+1/02/2024"} {
		_, _, _, err := ParseDateKey(key)
		util.AssertErrorIs(t, ErrBadDateKey, err)
	}
}

func Test_DateHashing_Hash(t *testing.T) {
	var h DateHashing
	first, err := h.Hash("2024-01-01", 366)
	util.AssertNoError(t, err)
	last, err := h.Hash("2024-12-31", 366)
	util.AssertNoError(t, err)
	util.AssertExpected(t, 0, first)
	util.AssertExpected(t, 365, last)

	leap, err := h.Hash("2024-02-29", 366)
	util.AssertNoError(t, err)
	util.AssertExpected(t, 59, leap)

	// every layout of the same date lands on the same slot
	for _, key := range []string{"01/03/2024", "01-03-2024", "2024/03/01"} {
		got, err := h.Hash(key, 366)
		util.AssertNoError(t, err)
		want, _ := h.Hash("2024-03-01", 366)
		util.AssertExpected(t, want, got)
	}

	// at four years per day the year picks the slot within the day's run
	for year, want := range map[string]int{"2024-01-01": 0, "2023-01-01": 3, "2022-01-01": 2, "2021-01-02": 5} {
		got, err := h.Hash(year, 4*366)
		util.AssertNoError(t, err)
		util.AssertExpected(t, want, got)
	}

	_, err = h.Hash("2024-1-1", 366)
	util.AssertErrorIs(t, ErrBadDateKey, err)
	util.AssertExpected(t, 1, h.Step("2024-01-01", 366))
}

func Test_DateHashing_Range(t *testing.T) {
	var h DateHashing
	r := util.NewRand(11)
	for i := 0; i < 2000; i++ {
		key := r.DateKey(1900, 2100)
		for _, capacity := range DateTableSizes {
			got, err := h.Hash(key, capacity)
			util.AssertNoError(t, err)
			if got < 0 || got >= capacity {
				t.Fatalf("hash(%q, %d) = %d, out of range", key, capacity, got)
			}
		}
	}
}

func Test_DateTable(t *testing.T) {
	tb := NewDateTable[string]()
	util.AssertExpected(t, 366, tb.Cap())

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var keys []string
	for i := 0; i < 300; i++ {
		keys = append(keys, start.AddDate(0, 0, i).Format("2006-01-02"))
	}
	for i, key := range keys {
		util.AssertNoError(t, tb.Set(key, keys[i]))
		if i == 243 {
			// 244/366 is exactly two thirds
			util.AssertExpected(t, 366, tb.Cap())
		}
	}
	util.AssertExpected(t, 4*366, tb.Cap())
	util.AssertExpected(t, 300, tb.Len())
	for _, key := range keys {
		got, err := tb.Get(key)
		util.AssertNoError(t, err)
		util.AssertExpected(t, key, got)
	}

	// another layout of a stored date is a different key
	util.AssertFalse(t, tb.Has("01/01/2024"))
	util.AssertNoError(t, tb.Set("01/01/2024", "dd/mm"))
	util.AssertExpected(t, 301, tb.Len())

	_, err := tb.Del("2024-01-01")
	util.AssertNoError(t, err)
	got, err := tb.Get("01/01/2024")
	util.AssertNoError(t, err)
	util.AssertExpected(t, "dd/mm", got)

	err = tb.Set("2024-1-1", "bad")
	util.AssertErrorIs(t, ErrBadDateKey, err)
	util.AssertFalse(t, tb.Has("2024-1-1"))
	util.AssertExpected(t, 300, tb.Len())
}

func Test_DateTable_SameDayManyYears(t *testing.T) {
	tb := NewDateTable[int]()
	for year := 1900; year < 2100; year++ {
		key := time.Date(year, 7, 4, 0, 0, 0, 0, time.UTC).Format("02/01/2006")
		util.AssertNoError(t, tb.Set(key, year))
	}
	util.AssertExpected(t, 200, tb.Len())
	for year := 1900; year < 2100; year++ {
		key := time.Date(year, 7, 4, 0, 0, 0, 0, time.UTC).Format("2006/01/02")
		util.AssertFalse(t, tb.Has(key))
		key = time.Date(year, 7, 4, 0, 0, 0, 0, time.UTC).Format("02/01/2006")
		got, err := tb.Get(key)
		util.AssertNoError(t, err)
		util.AssertExpected(t, year, got)
	}
}
