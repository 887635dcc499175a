package openaddr

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Table is an open addressing hash table keyed by strings. Collisions are
// resolved by the probe sequence of its HashingStrategy, deletions leave
// tombstones, and the slot array grows through a fixed sequence of sizes.
// A Table is not safe for concurrent use.
type Table[V any] struct {
	strategy HashingStrategy
	sizes    []int
	sizeIdx  int
	count    int
	slots    []slot[V]
	log      *Logger
}

// New returns a new Table configured by opts. A nil opts gives a double
// hashing table over DefaultTableSizes.
func New[V any](opts *Options) (*Table[V], error) {
	opts, err := checkOptions(opts)
	if err != nil {
		return nil, err
	}
	return &Table[V]{
		strategy: opts.Strategy,
		sizes:    opts.Sizes,
		slots:    make([]slot[V], opts.Sizes[0]),
		log:      newLogger(opts.LogOutput, opts.LoggingLevel),
	}, nil
}

// NewTable returns a double hashing table over DefaultTableSizes.
func NewTable[V any]() *Table[V] {
	t, err := New[V](nil)
	if err != nil {
		// the defaults are always valid
		panic(err)
	}
	return t
}

// Get returns the value stored for key, or ErrKeyNotFound.
func (t *Table[V]) Get(key string) (V, error) {
	pos, err := t.probe(key, false)
	if err != nil {
		var zero V
		return zero, err
	}
	return t.slots[pos].val, nil
}

// Has reports whether key is present.
func (t *Table[V]) Has(key string) bool {
	_, err := t.probe(key, false)
	return err == nil
}

// Set stores val for key. A new key may trigger a rebuild into the next
// size; updating an existing key never does. ErrTableFull is returned only
// when the size sequence is exhausted and no slot is left for key.
func (t *Table[V]) Set(key string, val V) error {
	pos, err := t.probe(key, true)
	if err != nil {
		if errors.Is(err, ErrTableFull) {
			t.log.Error("set %q: %v", key, err)
		}
		return err
	}
	s := &t.slots[pos]
	if !s.isFree() {
		s.val = val
		return nil
	}
	s.fill(key, val)
	t.count++
	return t.fit()
}

// Del removes key and returns the value it held, or ErrKeyNotFound. The
// slot is left as a tombstone until the next rebuild.
func (t *Table[V]) Del(key string) (V, error) {
	pos, err := t.probe(key, false)
	if err != nil {
		var zero V
		return zero, err
	}
	val := t.slots[pos].val
	t.slots[pos].bury()
	t.count--
	return val, nil
}

// Len returns the number of live entries.
func (t *Table[V]) Len() int {
	return t.count
}

// Cap returns the current size of the slot array.
func (t *Table[V]) Cap() int {
	return len(t.slots)
}

func (t *Table[V]) IsEmpty() bool {
	return t.count == 0
}

// Keys returns a snapshot of the live keys, in slot order.
func (t *Table[V]) Keys() []string {
	keys := make([]string, 0, t.count)
	t.Range(func(key string, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Values returns a snapshot of the live values, in slot order.
func (t *Table[V]) Values() []V {
	vals := make([]V, 0, t.count)
	t.Range(func(_ string, val V) bool {
		vals = append(vals, val)
		return true
	})
	return vals
}

// Iterator is an iterator function type
type Iterator[V any] func(key string, val V) bool

// Range calls it for every live entry as long as it returns true. Range is
// not safe to perform an insert or remove operation while ranging!
func (t *Table[V]) Range(it Iterator[V]) {
	for i := range t.slots {
		if t.slots[i].state != slotOccupied {
			continue
		}
		if !it(t.slots[i].key, t.slots[i].val) {
			return
		}
	}
}

// String returns every live entry as a "(key,value)" line.
func (t *Table[V]) String() string {
	var sb strings.Builder
	t.Range(func(key string, val V) bool {
		fmt.Fprintf(&sb, "(%s,%v)\n", key, val)
		return true
	})
	return sb.String()
}

// Stats is a snapshot of the shape of a Table
type Stats struct {
	Entries    int     `json:"entries"`
	Capacity   int     `json:"capacity"`
	SizeIndex  int     `json:"size_index"`
	Tombstones int     `json:"tombstones"`
	LoadFactor float64 `json:"load_factor"`
	Resizable  bool    `json:"resizable"`
}

// Stats reports the current shape of the table
func (t *Table[V]) Stats() Stats {
	var tombstones int
	for i := range t.slots {
		if t.slots[i].state == slotTombstone {
			tombstones++
		}
	}
	return Stats{
		Entries:    t.count,
		Capacity:   len(t.slots),
		SizeIndex:  t.sizeIdx,
		Tombstones: tombstones,
		LoadFactor: float64(t.count) / float64(len(t.slots)),
		Resizable:  t.Resizable(),
	}
}
