package hashtable

import (
	"testing"

	"github.com/scottcagno/hashtable/pkg/hashmap/openaddr"
	"github.com/scottcagno/hashtable/pkg/util"
)

func exerciseMap(t *testing.T, m StatsMap[string], keys []string) {
	for _, key := range keys {
		util.AssertNoError(t, m.Set(key, "v-"+key))
	}
	util.AssertExpected(t, len(keys), m.Len())
	util.AssertExpected(t, len(keys), m.Stats().Entries)
	for _, key := range keys {
		util.AssertTrue(t, m.Has(key))
		got, err := m.Get(key)
		util.AssertNoError(t, err)
		util.AssertExpected(t, "v-"+key, got)
	}
	val, err := m.Del(keys[0])
	util.AssertNoError(t, err)
	util.AssertExpected(t, "v-"+keys[0], val)
	_, err = m.Get(keys[0])
	util.AssertErrorIs(t, openaddr.ErrKeyNotFound, err)
	util.AssertSameElements(t, keys[1:], m.Keys())
	util.AssertLen(t, len(keys)-1, m.Values())
}

func TestMap_Table(t *testing.T) {
	exerciseMap(t, openaddr.NewTable[string](), util.NewRand(5).UniqueStrings(300, 2, 10))
}

func TestMap_DateTable(t *testing.T) {
	r := util.NewRand(5)
	seen := make(map[string]bool)
	var keys []string
	for len(keys) < 300 {
		key := r.DateKey(1990, 2030)
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}
	exerciseMap(t, openaddr.NewDateTable[string](), keys)
}
