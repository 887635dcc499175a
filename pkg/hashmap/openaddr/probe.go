package openaddr

import "github.com/pkg/errors"

// probe walks the probe sequence of key and returns the index of the slot
// an operation should use. A lookup (insert == false) returns the slot
// holding key, or ErrKeyNotFound. An insert returns the slot holding key
// when it is present anywhere along the sequence, otherwise the first
// tombstone passed, otherwise the first empty slot, or ErrTableFull when
// a whole cycle offers none of them.
func (t *Table[V]) probe(key string, insert bool) (int, error) {
	capacity := len(t.slots)
	pos, err := t.strategy.Hash(key, capacity)
	if err != nil {
		return 0, err
	}
	step := t.strategy.Step(key, capacity)
	// first tombstone seen, reused by an insert of a new key
	reuse := -1
	for i := 0; i < capacity; i++ {
		s := &t.slots[pos]
		switch s.state {
		case slotTombstone:
			if insert && reuse < 0 {
				reuse = pos
			}
		case slotEmpty:
			if !insert {
				return 0, errors.Wrapf(ErrKeyNotFound, "key %q", key)
			}
			if reuse >= 0 {
				return reuse, nil
			}
			return pos, nil
		case slotOccupied:
			if s.key == key {
				return pos, nil
			}
		}
		pos = (pos + step) % capacity
	}
	if !insert {
		return 0, errors.Wrapf(ErrKeyNotFound, "key %q", key)
	}
	if reuse >= 0 {
		return reuse, nil
	}
	return 0, errors.Wrapf(ErrTableFull, "no free slot for key %q in %d slots", key, capacity)
}
