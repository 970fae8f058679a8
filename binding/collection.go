package binding

// Entry is one (key, instance) pair in a collection.
type Entry[K comparable, V any] struct {
	Key      K
	Instance V
}

// Collection is an ordered sequence of entries, keys unique at any point in
// time under the default reducers. The zero value is an empty collection.
//
// Collections are values: reducers return new slices and never mutate their
// input, so an application can hold the previous collection for diffing.
type Collection[K comparable, V any] []Entry[K, V]

// Get returns the instance for the first entry with the given key.
func (c Collection[K, V]) Get(key K) (V, bool) {
	for _, entry := range c {
		if entry.Key == key {
			return entry.Instance, true
		}
	}
	var zero V
	return zero, false
}

// Contains reports whether any entry carries the given key.
func (c Collection[K, V]) Contains(key K) bool {
	_, ok := c.Get(key)
	return ok
}

// Keys returns the collection's keys in order.
func (c Collection[K, V]) Keys() []K {
	keys := make([]K, len(c))
	for i, entry := range c {
		keys[i] = entry.Key
	}
	return keys
}

// Clone returns a shallow copy of the collection.
func (c Collection[K, V]) Clone() Collection[K, V] {
	if c == nil {
		return nil
	}
	clone := make(Collection[K, V], len(c))
	copy(clone, c)
	return clone
}
