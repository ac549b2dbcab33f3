package ir

// Get looks key up in a map, or in the map payload of a tagged value.
// For a tagged map, a qualified keyword is rewritten per the namespace
// map sugar; any other key shape is looked up in the payload directly.
// Get returns nil on all other variants.
func (v *Value) Get(key *Value) *Value {
	switch v.Type {
	case MapType:
		return v.Lookup(key)
	case TaggedType:
		inner := v.Values[0]
		if key.Type == KeyType {
			bare, ok := namespacedKey(v.Str, key.Str)
			if !ok {
				return nil
			}
			return inner.Get(FromKeyword(bare))
		}
		return inner.Get(key)
	}
	return nil
}

// Nth returns the i-th element of a vector or list, or nil.
func (v *Value) Nth(i int) *Value {
	switch v.Type {
	case VectorType, ListType:
		if i < 0 || i >= len(v.Values) {
			return nil
		}
		return v.Values[i]
	}
	return nil
}

// Contains mirrors Get's matching rules and additionally supports
// direct membership tests on vectors, lists and sets.
func (v *Value) Contains(key *Value) bool {
	switch v.Type {
	case MapType:
		return v.Lookup(key) != nil
	case TaggedType:
		inner := v.Values[0]
		if key.Type == KeyType {
			bare, ok := namespacedKey(v.Str, key.Str)
			if !ok {
				return false
			}
			return inner.Contains(FromKeyword(bare))
		}
		return inner.Contains(key)
	case SetType:
		return v.Has(key)
	case VectorType, ListType:
		for _, m := range v.Values {
			if Equal(m, key) {
				return true
			}
		}
	}
	return false
}
