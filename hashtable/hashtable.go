// Package hashtable provides a separately chained hash map. Each bucket
// holds a short chain of key/value entries; the table doubles its bucket
// count whenever the load factor crosses the configured limit, so
// lookups stay O(1) amortized.
//
// The hash function is injected at construction, which keeps the table
// free of reflection. StringHasher, BytesHasher and IntegerHasher cover
// the common key kinds.
//
// Errors returned by this package:
//   - ErrKeyNotFound: At on a key the table does not hold.
//   - ErrBadLoadFactor: SetMaxLoadFactor with a non-positive limit.
package hashtable

import (
	"errors"
	"iter"
)

var (
	// ErrKeyNotFound is returned by At when the key is absent.
	ErrKeyNotFound = errors.New("hashtable: key not found")

	// ErrBadLoadFactor is returned when a load-factor limit is not positive.
	ErrBadLoadFactor = errors.New("hashtable: load factor must be positive")
)

const (
	// minBuckets is the bucket count allocated on the first insert.
	minBuckets = 8

	// growthFactor multiplies the bucket count on every rehash.
	growthFactor = 2

	// defaultMaxLoad triggers a rehash once entries outnumber buckets.
	defaultMaxLoad = 1.0
)

type entry[K comparable, V any] struct {
	key   K
	value V
}

// Table is a hash map from K to V. Build tables with New; the zero
// value is not usable because it carries no hash function.
type Table[K comparable, V any] struct {
	buckets [][]entry[K, V]
	size    int
	hash    func(K) uint64
	maxLoad float64
}

// New returns an empty table keyed through hash. No buckets are
// allocated until the first insert.
func New[K comparable, V any](hash func(K) uint64) *Table[K, V] {
	return &Table[K, V]{hash: hash, maxLoad: defaultMaxLoad}
}

// Len reports the number of entries.
func (t *Table[K, V]) Len() int { return t.size }

// Empty reports whether the table holds no entries.
func (t *Table[K, V]) Empty() bool { return t.size == 0 }

// BucketCount reports the current number of buckets.
func (t *Table[K, V]) BucketCount() int { return len(t.buckets) }

// LoadFactor reports entries per bucket, 0 when no buckets exist.
func (t *Table[K, V]) LoadFactor() float64 {
	if len(t.buckets) == 0 {
		return 0
	}

	return float64(t.size) / float64(len(t.buckets))
}

// MaxLoadFactor reports the load limit that triggers a rehash.
func (t *Table[K, V]) MaxLoadFactor() float64 { return t.maxLoad }

// SetMaxLoadFactor replaces the load limit and rehashes immediately if
// the table already exceeds it.
func (t *Table[K, V]) SetMaxLoadFactor(limit float64) error {
	if limit <= 0 {
		return ErrBadLoadFactor
	}
	t.maxLoad = limit
	if t.LoadFactor() > t.maxLoad {
		t.rehash(t.targetBuckets())
	}

	return nil
}

func (t *Table[K, V]) index(key K) int {
	return int(t.hash(key) % uint64(len(t.buckets)))
}

// Insert adds the pair and reports whether the key was absent. An
// existing key keeps its old value.
// Complexity: O(1) amortized.
func (t *Table[K, V]) Insert(key K, value V) bool {
	t.ensureBuckets()
	i := t.index(key)
	for _, e := range t.buckets[i] {
		if e.key == key {
			return false
		}
	}
	t.buckets[i] = append(t.buckets[i], entry[K, V]{key: key, value: value})
	t.size++
	if t.LoadFactor() > t.maxLoad {
		t.rehash(len(t.buckets) * growthFactor)
	}

	return true
}

// InsertOrAssign adds the pair, overwriting any existing value, and
// reports whether the key was absent.
func (t *Table[K, V]) InsertOrAssign(key K, value V) bool {
	t.ensureBuckets()
	i := t.index(key)
	for j := range t.buckets[i] {
		if t.buckets[i][j].key == key {
			t.buckets[i][j].value = value

			return false
		}
	}

	return t.Insert(key, value)
}

// Get returns the value for key and whether it was found.
// Complexity: O(1) amortized.
func (t *Table[K, V]) Get(key K) (V, bool) {
	if len(t.buckets) != 0 {
		for _, e := range t.buckets[t.index(key)] {
			if e.key == key {
				return e.value, true
			}
		}
	}
	var zero V

	return zero, false
}

// At returns the value for key, or ErrKeyNotFound.
func (t *Table[K, V]) At(key K) (V, error) {
	if v, ok := t.Get(key); ok {
		return v, nil
	}
	var zero V

	return zero, ErrKeyNotFound
}

// Contains reports whether key is present.
func (t *Table[K, V]) Contains(key K) bool {
	_, ok := t.Get(key)

	return ok
}

// Delete removes key and reports whether it was present.
// Complexity: O(1) amortized.
func (t *Table[K, V]) Delete(key K) bool {
	if len(t.buckets) == 0 {
		return false
	}
	i := t.index(key)
	chain := t.buckets[i]
	for j, e := range chain {
		if e.key == key {
			last := len(chain) - 1
			chain[j] = chain[last]
			chain[last] = entry[K, V]{}
			t.buckets[i] = chain[:last]
			t.size--

			return true
		}
	}

	return false
}

// Clear removes every entry but keeps the buckets and hash function.
func (t *Table[K, V]) Clear() {
	for i := range t.buckets {
		t.buckets[i] = t.buckets[i][:0]
	}
	t.size = 0
}

// Reserve grows the table to at least n buckets so that n entries fit
// without a rehash. Shrinking is not supported.
func (t *Table[K, V]) Reserve(n int) {
	if n <= len(t.buckets) {
		return
	}
	target := max(len(t.buckets), minBuckets)
	for target < n {
		target *= growthFactor
	}
	t.rehash(target)
}

// Rehash redistributes every entry over twice as many buckets.
func (t *Table[K, V]) Rehash() {
	t.rehash(max(len(t.buckets), minBuckets/growthFactor) * growthFactor)
}

// Swap exchanges the contents of two tables in O(1). Hash functions and
// load limits travel with their entries.
func (t *Table[K, V]) Swap(other *Table[K, V]) {
	t.buckets, other.buckets = other.buckets, t.buckets
	t.size, other.size = other.size, t.size
	t.hash, other.hash = other.hash, t.hash
	t.maxLoad, other.maxLoad = other.maxLoad, t.maxLoad
}

// All yields every key/value pair in unspecified order.
func (t *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, chain := range t.buckets {
			for _, e := range chain {
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}

// Keys yields every key in unspecified order.
func (t *Table[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range t.All() {
			if !yield(k) {
				return
			}
		}
	}
}

func (t *Table[K, V]) ensureBuckets() {
	if len(t.buckets) == 0 {
		t.buckets = make([][]entry[K, V], minBuckets)
	}
}

// targetBuckets returns the smallest power-of-growthFactor bucket count
// that brings the table under its load limit.
func (t *Table[K, V]) targetBuckets() int {
	target := max(len(t.buckets), minBuckets)
	for float64(t.size)/float64(target) > t.maxLoad {
		target *= growthFactor
	}

	return target
}

func (t *Table[K, V]) rehash(buckets int) {
	old := t.buckets
	t.buckets = make([][]entry[K, V], buckets)
	for _, chain := range old {
		for _, e := range chain {
			i := t.index(e.key)
			t.buckets[i] = append(t.buckets[i], e)
		}
	}
}

// ContainsValue reports whether any entry holds value. Unlike key
// lookups this scans the whole table.
// Complexity: O(n).
func ContainsValue[K, V comparable](t *Table[K, V], value V) bool {
	for _, v := range t.All() {
		if v == value {
			return true
		}
	}

	return false
}

// DeleteValue removes the first entry holding value and reports whether
// one was found.
// Complexity: O(n).
func DeleteValue[K, V comparable](t *Table[K, V], value V) bool {
	for k, v := range t.All() {
		if v == value {
			return t.Delete(k)
		}
	}

	return false
}
