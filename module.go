package ttlv

// Serializer encodes v, which has the type it was registered for, into one
// padded element. Nested values are encoded through m with the same context.
type Serializer func(m *Mapper, vc *VersionContext, v DataType) ([]byte, error)

// Deserializer builds a value from rec. Nested records are decoded through m
// with the same context.
type Deserializer func(m *Mapper, vc *VersionContext, rec Record) (DataType, error)

type dispatchEntry struct {
	spec Spec
	tag  Tag
	enc  EncodingType
	id   TypeID
}

// Module is a named bundle of registrations installed into a Mapper as a unit.
// Build it once at start-up; it is not safe for concurrent modification.
type Module struct {
	name          string
	serializers   map[TypeID]Serializer
	deserializers map[TypeID]Deserializer
	dispatch      []dispatchEntry
	tags          []Tag
}

func NewModule(name string) *Module {
	return &Module{
		name:          name,
		serializers:   make(map[TypeID]Serializer),
		deserializers: make(map[TypeID]Deserializer),
	}
}

func (m *Module) Name() string { return m.name }

// AddSerializer registers s for id, replacing any earlier one in this module.
func (m *Module) AddSerializer(id TypeID, s Serializer) *Module {
	m.serializers[id] = s
	return m
}

// AddDeserializer registers d for id, replacing any earlier one in this module.
func (m *Module) AddDeserializer(id TypeID, d Deserializer) *Module {
	m.deserializers[id] = d
	return m
}

// AddDispatch adds one dispatch registration. Sentinel specs are dropped when installed.
func (m *Module) AddDispatch(spec Spec, tag Tag, et EncodingType, id TypeID) *Module {
	m.dispatch = append(m.dispatch, dispatchEntry{spec, tag, et, id})
	return m
}

// AddSupported adds dispatch registrations for every concrete spec dt supports.
func (m *Module) AddSupported(dt DataType, encs ...EncodingType) *Module {
	if len(encs) == 0 {
		encs = []EncodingType{dt.EncodingType()}
	}
	for _, spec := range Specs {
		if !dt.IsSupportedFor(spec) {
			continue
		}
		for _, et := range encs {
			m.AddDispatch(spec, dt.Tag(), et, dt.TypeID())
		}
	}
	return m
}

// AddCustomTag makes a custom tag known to the Mapper for naming and lookup.
func (m *Module) AddCustomTag(t Tag) *Module {
	if t.IsCustom() {
		m.tags = append(m.tags, t)
	}
	return m
}

// TypeIDs lists every type with a serializer or deserializer in this module.
func (m *Module) TypeIDs() []TypeID {
	seen := make(map[TypeID]struct{}, len(m.serializers))
	var ids []TypeID
	for id := range m.serializers {
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	for id := range m.deserializers {
		if _, ok := seen[id]; !ok {
			ids = append(ids, id)
		}
	}
	return ids
}
