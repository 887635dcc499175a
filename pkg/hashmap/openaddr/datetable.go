package openaddr

// NewDateTable returns a table for date keys (DD/MM/YYYY, DD-MM-YYYY,
// YYYY/MM/DD or YYYY-MM-DD). It starts with one slot per day of the year
// and grows through DateTableSizes using DateHashing.
func NewDateTable[V any]() *Table[V] {
	t, err := New[V](&Options{
		Sizes:    DateTableSizes,
		Strategy: DateHashing{},
	})
	if err != nil {
		panic(err)
	}
	return t
}
