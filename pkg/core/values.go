package core

// Values is an ordered string map.
// Keys keep the position of their first insertion; overwriting a key does not move it.
// It backs section items and packed sub-items alike.
type Values struct {
	keys []string
	m    map[string]string
}

// NewValues creates an empty ordered map.
func NewValues() *Values {
	return &Values{m: make(map[string]string)}
}

// Get returns the value for key and whether it exists.
func (v *Values) Get(key string) (string, bool) {
	if v == nil {
		return "", false
	}
	val, ok := v.m[key]
	return val, ok
}

// Has reports whether key exists.
func (v *Values) Has(key string) bool {
	_, ok := v.Get(key)
	return ok
}

// Set inserts or overwrites key.
func (v *Values) Set(key, value string) {
	if v.m == nil {
		v.m = make(map[string]string)
	}
	if _, ok := v.m[key]; !ok {
		v.keys = append(v.keys, key)
	}
	v.m[key] = value
}

// Delete removes key and reports whether it was present.
func (v *Values) Delete(key string) bool {
	if v == nil {
		return false
	}
	if _, ok := v.m[key]; !ok {
		return false
	}
	delete(v.m, key)
	for i, k := range v.keys {
		if k == key {
			v.keys = append(v.keys[:i], v.keys[i+1:]...)
			break
		}
	}
	return true
}

// Keys returns the non-empty keys in insertion order.
// The returned slice is a copy and is never nil.
func (v *Values) Keys() []string {
	keys := make([]string, 0, v.Len())
	if v == nil {
		return keys
	}
	for _, k := range v.keys {
		if k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

// Len returns the number of entries.
func (v *Values) Len() int {
	if v == nil {
		return 0
	}
	return len(v.keys)
}

// Position returns the 1-based insertion position of key, or 0 if absent.
func (v *Values) Position(key string) int {
	if !v.Has(key) {
		return 0
	}
	for i, k := range v.keys {
		if k == key {
			return i + 1
		}
	}
	return 0
}

// At returns the key at the 1-based position pos.
func (v *Values) At(pos int) (string, bool) {
	if v == nil || pos < 1 || pos > len(v.keys) {
		return "", false
	}
	return v.keys[pos-1], true
}

// Clear removes every entry.
func (v *Values) Clear() {
	if v == nil {
		return
	}
	v.keys = nil
	v.m = make(map[string]string)
}

// Clone returns a deep copy.
func (v *Values) Clone() *Values {
	c := NewValues()
	if v == nil {
		return c
	}
	c.keys = append(c.keys, v.keys...)
	for k, val := range v.m {
		c.m[k] = val
	}
	return c
}

// Range calls fn for each entry in order until fn returns false.
func (v *Values) Range(fn func(key, value string) bool) {
	if v == nil {
		return
	}
	for _, k := range v.keys {
		if !fn(k, v.m[k]) {
			return
		}
	}
}
