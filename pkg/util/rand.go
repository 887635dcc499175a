package util

import (
	"fmt"
	"math/rand"
	"strings"
)

const letterBytes = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Rand wraps a seeded source so test inputs can be reproduced
type Rand struct {
	*rand.Rand
}

func NewRand(seed int64) *Rand {
	return &Rand{rand.New(rand.NewSource(seed))}
}

func (r *Rand) String(n int) string {
	sb := strings.Builder{}
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteByte(letterBytes[r.Intn(len(letterBytes))])
	}
	return sb.String()
}

// UniqueStrings returns n distinct random strings between min and max
// characters long.
func (r *Rand) UniqueStrings(n, min, max int) []string {
	seen := make(map[string]struct{}, n)
	out := make([]string, 0, n)
	for len(out) < n {
		s := r.String(min + r.Intn(max-min+1))
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// DateKey returns a random date in one of the four supported key layouts.
// Days are capped at 28 so every date is valid.
func (r *Rand) DateKey(minYear, maxYear int) string {
	y := minYear + r.Intn(maxYear-minYear+1)
	m := 1 + r.Intn(12)
	d := 1 + r.Intn(28)
	switch r.Intn(4) {
	case 0:
		return fmt.Sprintf("%02d/%02d/%04d", d, m, y)
	case 1:
		return fmt.Sprintf("%02d-%02d-%04d", d, m, y)
	case 2:
		return fmt.Sprintf("%04d/%02d/%02d", y, m, d)
	default:
		return fmt.Sprintf("%04d-%02d-%02d", y, m, d)
	}
}
