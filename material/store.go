package material

import "github.com/go-gl/mathgl/mgl32"

// Store is the handle to the host application's authoritative parameter
// storage. Every getter resolves a slot at a point in time and reports the
// interval over which the returned value stays valid; an animated slot
// narrows the interval, a static one reports Forever.
//
// The store owns the values. This subsystem never keeps a private copy
// beyond the interval-cached snapshot held by GlassMtl.
type Store interface {
	Color(id ParamID, t Time) (mgl32.Vec3, Interval)
	Float(id ParamID, t Time) (float32, Interval)
	Int(id ParamID, t Time) (int, Interval)
	Texmap(id ParamID, t Time) (Texmap, Interval)

	// SetColor writes a color slot back through the store. Only used for
	// the two-way diffuse color binding.
	SetColor(id ParamID, t Time, c mgl32.Vec3)
}

type tableEntry struct {
	value    interface{}
	validity Interval
}

// TableStore is an in-memory Store with static, per-slot values and
// optional per-slot validity intervals. It backs the command line driver
// and the test suites; a live host integration supplies its own Store.
type TableStore struct {
	entries map[ParamID]tableEntry
}

func NewTableStore() *TableStore {
	return &TableStore{entries: make(map[ParamID]tableEntry)}
}

// PutColor sets a color slot.
func (s *TableStore) PutColor(id ParamID, c mgl32.Vec3) {
	s.put(id, c)
}

// PutFloat sets a scalar slot, clamping to the slot's UI range.
func (s *TableStore) PutFloat(id ParamID, v float32) {
	if r, ok := paramRanges[id]; ok {
		if v < r[0] {
			v = r[0]
		}
		if v > r[1] {
			v = r[1]
		}
	}
	s.put(id, v)
}

// PutInt sets an enum slot.
func (s *TableStore) PutInt(id ParamID, v int) {
	s.put(id, v)
}

// PutTexmap binds a texture to a slot. A nil tex clears the binding.
func (s *TableStore) PutTexmap(id ParamID, tex Texmap) {
	s.put(id, tex)
}

// PutValidity restricts the validity interval reported for a slot,
// emulating an animated parameter.
func (s *TableStore) PutValidity(id ParamID, iv Interval) {
	e := s.entries[id]
	e.validity = iv
	s.entries[id] = e
}

func (s *TableStore) put(id ParamID, v interface{}) {
	e := s.entries[id]
	e.value = v
	if e.validity.IsEmpty() {
		e.validity = Forever()
	}
	s.entries[id] = e
}

func (s *TableStore) Color(id ParamID, t Time) (mgl32.Vec3, Interval) {
	if e, ok := s.entries[id]; ok {
		if c, ok := e.value.(mgl32.Vec3); ok {
			return c, e.validity
		}
	}
	return defaultColors[id], Forever()
}

func (s *TableStore) Float(id ParamID, t Time) (float32, Interval) {
	if e, ok := s.entries[id]; ok {
		if v, ok := e.value.(float32); ok {
			return v, e.validity
		}
	}
	return defaultFloats[id], Forever()
}

func (s *TableStore) Int(id ParamID, t Time) (int, Interval) {
	if e, ok := s.entries[id]; ok {
		if v, ok := e.value.(int); ok {
			return v, e.validity
		}
	}
	return defaultInts[id], Forever()
}

func (s *TableStore) Texmap(id ParamID, t Time) (Texmap, Interval) {
	if e, ok := s.entries[id]; ok {
		if tex, ok := e.value.(Texmap); ok {
			return tex, e.validity
		}
	}
	return nil, Forever()
}

func (s *TableStore) SetColor(id ParamID, t Time, c mgl32.Vec3) {
	s.PutColor(id, c)
}
