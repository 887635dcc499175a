package openaddr

// DefaultTableSizes is the capacity sequence used when no sizes are supplied.
// No realistic workload under one million entries exhausts it.
var DefaultTableSizes = []int{
	5, 13, 29, 53, 97, 193, 389, 769, 1543, 3079, 6151, 12289, 24593,
	49157, 98317, 196613, 393241, 786433, 1572869,
}

// DateTableSizes is the fixed capacity sequence of a date table: one slot per
// possible day of the year, times an escalating year multiplier.
var DateTableSizes = []int{
	daysPerLeapYear,
	4 * daysPerLeapYear,
	16 * daysPerLeapYear,
}

const (
	// the table grows once count/capacity exceeds loadNum/loadDen
	loadNum = 2
	loadDen = 3

	minTableSize    = 2
	daysPerLeapYear = 366
)

// overloaded reports whether count entries exceed the load factor of a
// table with the provided capacity.
func overloaded(count, capacity int) bool {
	return count*loadDen > capacity*loadNum
}
