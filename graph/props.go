// MapPropertyStore: the default PropertyStore, one tuple-trie per
// property key so node tuples of any arity form map keys without
// requiring tuple comparability.
package graph

// MapPropertyStore stores values keyed by (property key, node tuple),
// plus an optional per-key default. Presence is tracked explicitly, so a
// stored nil value is distinguishable from "unset".
type MapPropertyStore[N comparable] struct {
	keys map[string]*propEntry[N]
}

// propEntry holds everything under one property key: the optional
// store-wide default and the root of the tuple trie.
type propEntry[N comparable] struct {
	def    any
	hasDef bool
	root   propTrie[N]
}

// propTrie is one level of a node-tuple trie. A value may be present at
// any depth ≥ 1, so tuples of different arities coexist under one key.
type propTrie[N comparable] struct {
	value    any
	hasValue bool
	children map[N]*propTrie[N]
}

// NewMapPropertyStore returns an empty MapPropertyStore.
func NewMapPropertyStore[N comparable]() *MapPropertyStore[N] {
	return &MapPropertyStore[N]{keys: make(map[string]*propEntry[N])}
}

// lookup walks the trie for key along nodes. Returns nil when any step of
// the walk is missing.
func (s *MapPropertyStore[N]) lookup(key string, nodes []N) *propTrie[N] {
	entry, ok := s.keys[key]
	if !ok {
		return nil
	}
	t := &entry.root
	for _, n := range nodes {
		t = t.children[n]
		if t == nil {
			return nil
		}
	}

	return t
}

// HasProperty reports whether a specific value is set for (key, nodes).
// The per-key default does not count. O(len(nodes)).
func (s *MapPropertyStore[N]) HasProperty(key string, nodes ...N) bool {
	t := s.lookup(key, nodes)

	return t != nil && t.hasValue
}

// Property returns the specific value set for (key, nodes), if any. The
// second result is false when no specific value is set; callers wanting
// default fallback combine this with PropertyDefault (the Graph facade
// does). O(len(nodes)).
func (s *MapPropertyStore[N]) Property(key string, nodes ...N) (any, bool) {
	t := s.lookup(key, nodes)
	if t == nil || !t.hasValue {
		return nil, false
	}

	return t.value, true
}

// SetProperty sets the value for (key, nodes), creating trie levels as
// needed. A tuple of length 0 addresses nothing and is ignored.
// O(len(nodes)).
func (s *MapPropertyStore[N]) SetProperty(key string, value any, nodes ...N) {
	if len(nodes) == 0 {
		return
	}
	entry, ok := s.keys[key]
	if !ok {
		entry = &propEntry[N]{}
		s.keys[key] = entry
	}
	t := &entry.root
	for _, n := range nodes {
		if t.children == nil {
			t.children = make(map[N]*propTrie[N])
		}
		child, ok := t.children[n]
		if !ok {
			child = &propTrie[N]{}
			t.children[n] = child
		}
		t = child
	}
	t.value = value
	t.hasValue = true
}

// DelProperty clears the value for (key, nodes). No-op when absent.
// Emptied trie branches are pruned. O(len(nodes)).
func (s *MapPropertyStore[N]) DelProperty(key string, nodes ...N) {
	entry, ok := s.keys[key]
	if !ok || len(nodes) == 0 {
		return
	}
	entry.root.del(nodes)
	if !entry.hasDef && len(entry.root.children) == 0 {
		delete(s.keys, key)
	}
}

// del removes the value at the end of nodes and reports whether this
// branch became empty and can be dropped by the parent.
func (t *propTrie[N]) del(nodes []N) bool {
	if len(nodes) == 0 {
		t.value = nil
		t.hasValue = false
	} else {
		child, ok := t.children[nodes[0]]
		if !ok {
			return false
		}
		if child.del(nodes[1:]) {
			delete(t.children, nodes[0])
			if len(t.children) == 0 {
				t.children = nil
			}
		}
	}

	return !t.hasValue && len(t.children) == 0
}

// HasPropertyDefault reports whether key carries a store-wide default.
func (s *MapPropertyStore[N]) HasPropertyDefault(key string) bool {
	entry, ok := s.keys[key]

	return ok && entry.hasDef
}

// PropertyDefault returns key's store-wide default, if one is set.
func (s *MapPropertyStore[N]) PropertyDefault(key string) (any, bool) {
	entry, ok := s.keys[key]
	if !ok || !entry.hasDef {
		return nil, false
	}

	return entry.def, true
}

// SetPropertyDefault installs value as key's store-wide default.
func (s *MapPropertyStore[N]) SetPropertyDefault(key string, value any) {
	entry, ok := s.keys[key]
	if !ok {
		entry = &propEntry[N]{}
		s.keys[key] = entry
	}
	entry.def = value
	entry.hasDef = true
}

// DelPropertyDefault clears key's store-wide default. No-op when absent.
func (s *MapPropertyStore[N]) DelPropertyDefault(key string) {
	entry, ok := s.keys[key]
	if !ok {
		return
	}
	entry.def = nil
	entry.hasDef = false
	if len(entry.root.children) == 0 {
		delete(s.keys, key)
	}
}

var _ PropertyStore[int] = (*MapPropertyStore[int])(nil)
