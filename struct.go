package ttlv

import (
	"bytes"
	"fmt"
)

// EncodeStructure encodes the non-nil Values of v through m and wraps them in
// one Structure element tagged v.Tag().
func EncodeStructure(m *Mapper, vc *VersionContext, v StructureType) ([]byte, error) {
	buf := bytesBufPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer bytesBufPool.Put(buf)

	for _, child := range v.Values() {
		if isNil(child) {
			continue
		}
		b, err := m.Marshal(vc, child)
		if err != nil {
			return nil, WithField(child.Tag().String(), err)
		}
		buf.Write(b)
	}
	return Encode(NewRecord(v.Tag(), Structure, buf.Bytes())), nil
}

// Scalar describes a leaf type whose value is one primitive.
type Scalar[T DataType, V any] struct {
	// Proto supplies the TypeID, tag, encoding and version support. Its
	// IsSupportedFor must not depend on the value.
	Proto T
	Codec ValueCodec[V]
	Get   func(T) V
	New   func(V) T
	// Validate rejects values not valid under a spec. Optional.
	Validate func(T, Spec) error
}

// RegisterScalar adds a serializer, a deserializer and dispatch entries for s to mod.
func RegisterScalar[T DataType, V any](mod *Module, s Scalar[T, V]) *Module {
	id := s.Proto.TypeID()
	tag := s.Proto.Tag()
	mod.AddSerializer(id, func(_ *Mapper, vc *VersionContext, v DataType) ([]byte, error) {
		t, ok := v.(T)
		if !ok {
			return nil, fmt.Errorf("%w: %s serializer got %T", ErrTypeMismatch, id, v)
		}
		if s.Validate != nil {
			if err := s.Validate(t, vc.Current()); err != nil {
				return nil, WithField(tag.String(), err)
			}
		}
		b, err := s.Codec.Encode(s.Get(t))
		if err != nil {
			return nil, WithField(tag.String(), err)
		}
		return Encode(NewRecord(tag, s.Codec.Type, b)), nil
	})
	mod.AddDeserializer(id, func(_ *Mapper, vc *VersionContext, rec Record) (DataType, error) {
		if err := ExpectRecord(rec, tag, s.Codec.Type); err != nil {
			return nil, err
		}
		v, err := s.Codec.Decode(rec.value)
		if err != nil {
			return nil, WithField(tag.String(), err)
		}
		t := s.New(v)
		if s.Validate != nil {
			if err := s.Validate(t, vc.Current()); err != nil {
				return nil, WithField(tag.String(), err)
			}
		}
		return t, nil
	})
	return mod.AddSupported(s.Proto)
}

// Field declares one child of a structure type S.
type Field[S any] struct {
	Name string
	Tag  Tag
	// Type is the expected TypeID of the child. Under UnknownVersion, where
	// dispatch holds no entries, it is used to decode the child directly.
	Type TypeID
	// Specs limits the versions the field may appear in. Zero means no limit
	// beyond the child's own support.
	Specs    SpecSet
	Required bool
	Repeated bool
	Set      func(s *S, v DataType) error
}

// Struct describes a structure type and its declared fields.
type Struct[S StructureType] struct {
	Proto  S
	Fields []Field[S]
	// Check validates the assembled value. Optional.
	Check func(S) error
}

// RegisterStruct adds a serializer, a field-driven deserializer and dispatch entries for st to mod.
func RegisterStruct[S StructureType](mod *Module, st Struct[S]) *Module {
	id := st.Proto.TypeID()
	mod.AddSerializer(id, func(m *Mapper, vc *VersionContext, v DataType) ([]byte, error) {
		s, ok := v.(S)
		if !ok {
			return nil, fmt.Errorf("%w: %s serializer got %T", ErrTypeMismatch, id, v)
		}
		return EncodeStructure(m, vc, s)
	})
	mod.AddDeserializer(id, func(m *Mapper, vc *VersionContext, rec Record) (DataType, error) {
		return decodeStruct(m, vc, rec, st)
	})
	return mod.AddSupported(st.Proto)
}

func decodeStruct[S StructureType](m *Mapper, vc *VersionContext, rec Record, st Struct[S]) (DataType, error) {
	if err := ExpectRecord(rec, st.Proto.Tag(), Structure); err != nil {
		return nil, err
	}
	children, err := m.Children(rec)
	if err != nil {
		return nil, WithField(st.Proto.Tag().String(), err)
	}

	var s S
	seen := make([]bool, len(st.Fields))
	spec := vc.Current()
	for _, child := range children {
		i := fieldIndex(st.Fields, child.TagValue())
		if i < 0 {
			return nil, m.unrecognized(vc, child)
		}
		f := &st.Fields[i]
		if seen[i] && !f.Repeated {
			return nil, WithField(f.Name, fmt.Errorf("%w: duplicate field", ErrInvalidValue))
		}
		if f.Specs != 0 && !f.Specs.Has(spec) {
			return nil, WithField(f.Name, &UnsupportedError{Tag: f.Tag, Spec: spec})
		}
		v, err := decodeChild(m, vc, child, f.Type)
		if err != nil {
			return nil, WithField(f.Name, err)
		}
		if err := f.Set(&s, v); err != nil {
			return nil, WithField(f.Name, err)
		}
		seen[i] = true
	}
	for i := range st.Fields {
		if st.Fields[i].Required && !seen[i] {
			return nil, WithField(st.Fields[i].Name, ErrMissingField)
		}
	}
	if st.Check != nil {
		if err := st.Check(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func decodeChild(m *Mapper, vc *VersionContext, child Record, want TypeID) (DataType, error) {
	spec := vc.Current()
	id, ok := m.dispatch.ResolveRecord(spec, child)
	switch {
	case ok:
	case spec == UnknownVersion && want != "":
		id = want
	default:
		return nil, m.unrecognized(vc, child)
	}
	if want != "" && id != want {
		return nil, fmt.Errorf("%w: expected %s, dispatch resolved %s", ErrTypeMismatch, want, id)
	}
	return m.UnmarshalRecord(vc, child, id)
}

func fieldIndex[S any](fields []Field[S], tag uint32) int {
	for i := range fields {
		if fields[i].Tag.Value() == tag {
			return i
		}
	}
	return -1
}
