package scene

import "fmt"

// ParamArray is an insertion-ordered string-keyed parameter dictionary,
// the unit of configuration for every scene entity. Insert is chainable
// and replaces the value of an existing key without disturbing its
// position, so iteration order stays deterministic.
type ParamArray struct {
	keys   []string
	values map[string]interface{}
}

func NewParamArray() *ParamArray {
	return &ParamArray{values: make(map[string]interface{})}
}

// Insert sets key to value and returns the array for chaining.
func (p *ParamArray) Insert(key string, value interface{}) *ParamArray {
	if _, exists := p.values[key]; !exists {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
	return p
}

// Get returns the raw value stored under key.
func (p *ParamArray) Get(key string) (interface{}, bool) {
	v, ok := p.values[key]
	return v, ok
}

// GetString returns the string stored under key; false when the key is
// absent or holds a non-string value.
func (p *ParamArray) GetString(key string) (string, bool) {
	v, ok := p.values[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// GetFloat returns the float32 stored under key.
func (p *ParamArray) GetFloat(key string) (float32, bool) {
	v, ok := p.values[key]
	if !ok {
		return 0, false
	}
	f, ok := v.(float32)
	return f, ok
}

// Has reports whether key is set.
func (p *ParamArray) Has(key string) bool {
	_, ok := p.values[key]
	return ok
}

// Keys returns the keys in insertion order.
func (p *ParamArray) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

func (p *ParamArray) Len() int {
	return len(p.keys)
}

// Merge inserts every entry of other, preserving other's insertion order
// for keys not yet present. A nil other is a no-op.
func (p *ParamArray) Merge(other *ParamArray) *ParamArray {
	if other == nil {
		return p
	}
	for _, k := range other.keys {
		p.Insert(k, other.values[k])
	}
	return p
}

func (p *ParamArray) String() string {
	out := ""
	for i, k := range p.keys {
		if i > 0 {
			out += " "
		}
		out += fmt.Sprintf("%s=%v", k, p.values[k])
	}
	return out
}
