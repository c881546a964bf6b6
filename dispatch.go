package ttlv

import "github.com/puzpuzpuz/xsync/v4"

type dispatchKey struct {
	spec Spec
	tag  uint32
	typ  byte
}

// Dispatch resolves (spec, tag, encoding) to the domain type to decode into.
// It is safe for concurrent registration and lookup.
type Dispatch struct {
	m *xsync.Map[dispatchKey, TypeID]
}

func NewDispatch() *Dispatch {
	return &Dispatch{m: xsync.NewMap[dispatchKey, TypeID]()}
}

// Register maps (spec, tag, et) to id. Sentinel specs are never stored and
// report false. Registering again overwrites.
func (d *Dispatch) Register(spec Spec, tag Tag, et EncodingType, id TypeID) bool {
	if spec.IsSentinel() || et.IsZero() {
		return false
	}
	d.m.Store(dispatchKey{spec, tag.Value(), et.Marker}, id)
	return true
}

// RegisterSupported registers dt's type for every concrete spec it supports,
// under each of encs, or under dt.EncodingType() when encs is empty.
func (d *Dispatch) RegisterSupported(dt DataType, encs ...EncodingType) int {
	if len(encs) == 0 {
		encs = []EncodingType{dt.EncodingType()}
	}
	n := 0
	for _, spec := range Specs {
		if !dt.IsSupportedFor(spec) {
			continue
		}
		for _, et := range encs {
			if d.Register(spec, dt.Tag(), et, dt.TypeID()) {
				n++
			}
		}
	}
	return n
}

// Resolve looks up a registration. A miss is not an error.
func (d *Dispatch) Resolve(spec Spec, tag uint32, typ byte) (TypeID, bool) {
	return d.m.Load(dispatchKey{spec, tag, typ})
}

// ResolveRecord resolves the tag and type of rec.
func (d *Dispatch) ResolveRecord(spec Spec, rec Record) (TypeID, bool) {
	return d.Resolve(spec, rec.TagValue(), rec.Type())
}

// Len returns the number of registrations.
func (d *Dispatch) Len() int { return d.m.Size() }

// Range calls f for each registration until f returns false.
func (d *Dispatch) Range(f func(spec Spec, tag uint32, typ byte, id TypeID) bool) {
	d.m.Range(func(k dispatchKey, id TypeID) bool {
		return f(k.spec, k.tag, k.typ, id)
	})
}
