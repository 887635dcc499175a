package hashtable

import "github.com/scottcagno/hashtable/pkg/hashmap/openaddr"

// Map is the mapping contract every table in this module satisfies
type Map[V any] interface {
	Has(key string) bool
	Get(key string) (V, error)
	Set(key string, value V) error
	Del(key string) (V, error)
	Len() int
	Keys() []string
	Values() []V
}

// StatsMap is a Map that can also report its shape
type StatsMap[V any] interface {
	Map[V]
	Stats() openaddr.Stats
}

var (
	_ StatsMap[any]    = (*openaddr.Table[any])(nil)
	_ StatsMap[string] = (*openaddr.Table[string])(nil)
)
