package openaddr

import "github.com/pkg/errors"

// Resizable reports whether a larger size is left in the table's sequence.
func (t *Table[V]) Resizable() bool {
	return t.sizeIdx < len(t.sizes)-1
}

// fit grows the table until it is back under the load factor, or until the
// size sequence runs out.
func (t *Table[V]) fit() error {
	for overloaded(t.count, len(t.slots)) && t.Resizable() {
		if err := t.grow(); err != nil {
			return err
		}
	}
	return nil
}

// grow rebuilds the table into the next size of its sequence. Every live
// entry is probed into a fresh slot array and tombstones are dropped.
func (t *Table[V]) grow() error {
	if !t.Resizable() {
		return errors.Wrapf(ErrNotResizable, "table is at its last size %d", len(t.slots))
	}
	old := t.slots
	t.sizeIdx++
	t.slots = make([]slot[V], t.sizes[t.sizeIdx])
	t.count = 0
	var dropped int
	for i := range old {
		switch old[i].state {
		case slotTombstone:
			dropped++
		case slotOccupied:
			pos, err := t.probe(old[i].key, true)
			if err != nil {
				// every key already hashed once, and the new array is larger
				return errors.Wrap(err, "rebuild")
			}
			t.slots[pos].fill(old[i].key, old[i].val)
			t.count++
		}
	}
	t.log.Debug("grew table from %d to %d slots (entries=%d, tombstones dropped=%d)",
		len(old), len(t.slots), t.count, dropped)
	if !t.Resizable() {
		t.log.Warn("table reached its last size %d, it will not grow again", len(t.slots))
	}
	return nil
}
