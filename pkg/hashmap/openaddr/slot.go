package openaddr

// slotState tags every slot of the table
type slotState uint8

const (
	slotEmpty     slotState = iota // never used, or vacated by a rebuild
	slotTombstone                  // held an entry that has been deleted
	slotOccupied                   // holds a live entry
)

// entry is a key value pair that is found in each occupied slot
type entry[V any] struct {
	key string
	val V
}

// slot represents a single position in the Table
type slot[V any] struct {
	state slotState
	entry[V]
}

// isFree reports whether an insert may write into this slot
func (s *slot[V]) isFree() bool {
	return s.state != slotOccupied
}

// holds reports whether this slot holds a live entry for key
func (s *slot[V]) holds(key string) bool {
	return s.state == slotOccupied && s.entry.key == key
}

// bury turns an occupied slot into a tombstone and releases its entry
func (s *slot[V]) bury() {
	s.state = slotTombstone
	s.entry = entry[V]{}
}

// fill writes an entry into the slot
func (s *slot[V]) fill(key string, val V) {
	s.state = slotOccupied
	s.entry = entry[V]{key: key, val: val}
}
