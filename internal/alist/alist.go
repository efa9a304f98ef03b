// Package alist implements a small ordered multimap keyed by integers.
//
// A List keeps entries in insertion order. Adding a key that is already
// present does not replace the earlier entry: the new entry shadows it, so
// Find returns the most recently added payload and Delete removes only that
// one, leaving the earlier mapping reachable again. The kernel uses lists
// for its workstation table, its segment table and the per-index color,
// pattern and pixel tables, all of which are small and bounded, so lookups
// are linear scans over a slice rather than hashed.
package alist

import "iter"

// entry is a single (key, payload) pair.
type entry[V any] struct {
	key int
	val V
}

// List is an ordered multimap from int keys to payloads of type V.
// The zero value is an empty list ready to use.
//
// List is not safe for concurrent use.
type List[V any] struct {
	entries []entry[V]
}

// New returns an empty list with room for n entries.
func New[V any](n int) *List[V] {
	return &List[V]{entries: make([]entry[V], 0, n)}
}

// Add appends a new entry. Duplicate keys are allowed; the newest entry
// wins on Find.
func (l *List[V]) Add(key int, val V) {
	l.entries = append(l.entries, entry[V]{key: key, val: val})
}

// index returns the position of the newest entry with the given key, or -1.
func (l *List[V]) index(key int) int {
	for i := len(l.entries) - 1; i >= 0; i-- {
		if l.entries[i].key == key {
			return i
		}
	}
	return -1
}

// Find returns the newest payload stored under key.
func (l *List[V]) Find(key int) (V, bool) {
	if i := l.index(key); i >= 0 {
		return l.entries[i].val, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present.
func (l *List[V]) Contains(key int) bool {
	return l.index(key) >= 0
}

// Delete removes the newest entry stored under key and returns its payload.
// Earlier entries with the same key become visible again.
func (l *List[V]) Delete(key int) (V, bool) {
	i := l.index(key)
	if i < 0 {
		var zero V
		return zero, false
	}
	val := l.entries[i].val
	copy(l.entries[i:], l.entries[i+1:])
	var zero entry[V]
	l.entries[len(l.entries)-1] = zero
	l.entries = l.entries[:len(l.entries)-1]
	return val, true
}

// Len returns the number of entries, counting shadowed ones.
func (l *List[V]) Len() int {
	return len(l.entries)
}

// All iterates over every entry in insertion order, shadowed ones included.
func (l *List[V]) All() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		for _, e := range l.entries {
			if !yield(e.key, e.val) {
				return
			}
		}
	}
}

// Keys returns the keys in insertion order.
func (l *List[V]) Keys() []int {
	keys := make([]int, len(l.entries))
	for i, e := range l.entries {
		keys[i] = e.key
	}
	return keys
}

// Free removes every entry. If release is non-nil it is called for each
// payload, newest first, so owners can close what the list held exclusively.
func (l *List[V]) Free(release func(key int, val V)) {
	if release != nil {
		for i := len(l.entries) - 1; i >= 0; i-- {
			release(l.entries[i].key, l.entries[i].val)
		}
	}
	clear(l.entries)
	l.entries = l.entries[:0]
}
