package main

// HashTable is the backing store of a Hash value: a string-keyed table
// supporting get/put/keys/del, re-expressed with a plain Go map since
// esh's single-threaded evaluator (spec.md §5) needs no locking around it.
// Copying a Value that wraps a HashTable shares this same pointer
// (spec.md §3.1).
type HashTable struct {
	m map[string]Value
}

// NewHashTable returns an empty table, as `hash-make` does.
func NewHashTable() *HashTable {
	return &HashTable{m: make(map[string]Value)}
}

// Get returns the value stored under key, or Void if absent.
func (h *HashTable) Get(key string) Value {
	if v, ok := h.m[key]; ok {
		return v
	}
	return Void
}

// Put replaces any previous value under key with val, releasing the
// previous value's shared resources first (spec.md §4.5: "hash-put
// replaces and drops previous value").
func (h *HashTable) Put(key string, val Value) {
	if old, ok := h.m[key]; ok {
		old.Release()
	}
	h.m[key] = val.Copy()
}

// Del removes key, releasing its value's shared resources; backs the
// `hash-del` builtin (SPEC_FULL.md §4.5).
func (h *HashTable) Del(key string) {
	if old, ok := h.m[key]; ok {
		old.Release()
		delete(h.m, key)
	}
}

// Keys returns the table's keys in unspecified order, as a List of String
// values, backing `hash-keys`.
func (h *HashTable) Keys() []Value {
	keys := make([]Value, 0, len(h.m))
	for k := range h.m {
		keys = append(keys, String(k))
	}
	return keys
}

// Len reports the number of entries, used by the `null?`/`not-null?`
// predicates when applied to a Hash.
func (h *HashTable) Len() int { return len(h.m) }
