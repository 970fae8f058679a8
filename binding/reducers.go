package binding

// DefaultCreate prepends (pk, instance) to the front of the collection,
// newest first. It does not check for an existing entry with the same key:
// a server that sends create for a key already in the collection produces a
// duplicate. Kept for wire compatibility; applications that want
// replace-on-create semantics should install DedupCreate instead.
func DefaultCreate[K comparable, V any](instance V, pk K, col Collection[K, V]) Collection[K, V] {
	next := make(Collection[K, V], 0, len(col)+1)
	next = append(next, Entry[K, V]{Key: pk, Instance: instance})
	next = append(next, col...)
	return next
}

// DefaultUpdate replaces the instance of every entry whose key equals pk,
// preserving length and order. When no entry matches, the collection is
// returned unchanged; update never inserts.
func DefaultUpdate[K comparable, V any](instance V, pk K, col Collection[K, V]) Collection[K, V] {
	if !col.Contains(pk) {
		return col
	}
	next := make(Collection[K, V], len(col))
	for i, entry := range col {
		if entry.Key == pk {
			entry.Instance = instance
		}
		next[i] = entry
	}
	return next
}

// DefaultDelete removes every entry whose key equals pk, preserving the
// relative order of the rest. Delete is remove-by-key, not remove-by-index:
// all matches go, so a collection holding duplicates from repeated creates
// converges back to unique keys.
func DefaultDelete[K comparable, V any](pk K, col Collection[K, V]) Collection[K, V] {
	if !col.Contains(pk) {
		return col
	}
	next := make(Collection[K, V], 0, len(col))
	for _, entry := range col {
		if entry.Key != pk {
			next = append(next, entry)
		}
	}
	return next
}

// DedupCreate is an opt-in create reducer that removes any existing entries
// with the same key before prepending, guaranteeing key uniqueness even when
// the server re-sends a create for a live key.
func DedupCreate[K comparable, V any](instance V, pk K, col Collection[K, V]) Collection[K, V] {
	return DefaultCreate(instance, pk, DefaultDelete(pk, col))
}
