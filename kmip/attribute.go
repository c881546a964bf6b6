package kmip

import (
	"fmt"
	"math/big"
	"time"

	"github.com/oy3o/ttlv"
)

const (
	TypeAttributeName  ttlv.TypeID = "kmip.AttributeName"
	TypeAttributeIndex ttlv.TypeID = "kmip.AttributeIndex"
	TypeAttributeValue ttlv.TypeID = "kmip.AttributeValue"
	TypeAttribute      ttlv.TypeID = "kmip.Attribute"
)

type AttributeName string

func (AttributeName) TypeID() ttlv.TypeID             { return TypeAttributeName }
func (AttributeName) Tag() ttlv.Tag                   { return ttlv.TagAttributeName }
func (AttributeName) EncodingType() ttlv.EncodingType { return ttlv.TextString }
func (AttributeName) IsSupportedFor(spec ttlv.Spec) bool {
	return ttlv.TagAttributeName.IsSupportedFor(spec)
}

// AttributeIndex distinguishes instances of a multi-valued attribute.
type AttributeIndex int32

func (AttributeIndex) TypeID() ttlv.TypeID               { return TypeAttributeIndex }
func (AttributeIndex) Tag() ttlv.Tag                     { return ttlv.TagAttributeIndex }
func (AttributeIndex) EncodingType() ttlv.EncodingType   { return ttlv.Integer }
func (AttributeIndex) IsSupportedFor(spec ttlv.Spec) bool { return v12Specs.Has(spec) }

// AttributeValue holds the value of an Attribute. Its encoding depends on the
// attribute, so it is dispatched under every encoding type. Use the
// constructors; the zero value does not encode.
type AttributeValue struct {
	enc   ttlv.EncodingType
	value any
}

func TextValue(s string) AttributeValue        { return AttributeValue{ttlv.TextString, s} }
func IntegerValue(v int32) AttributeValue      { return AttributeValue{ttlv.Integer, v} }
func LongIntegerValue(v int64) AttributeValue  { return AttributeValue{ttlv.LongInteger, v} }
func EnumerationValue(v uint32) AttributeValue { return AttributeValue{ttlv.Enumeration, v} }
func BooleanValue(v bool) AttributeValue       { return AttributeValue{ttlv.Boolean, v} }
func IntervalValue(v uint32) AttributeValue    { return AttributeValue{ttlv.Interval, v} }

func BigIntegerValue(v *big.Int) AttributeValue {
	if v != nil {
		v = new(big.Int).Set(v)
	}
	return AttributeValue{ttlv.BigInteger, v}
}

func ByteStringValue(b []byte) AttributeValue {
	return AttributeValue{ttlv.ByteString, append([]byte(nil), b...)}
}

func DateTimeValue(t time.Time) AttributeValue {
	return AttributeValue{ttlv.DateTime, ttlv.NormalizeTime(t)}
}

// StructureValue nests values, such as the NameValue and NameType of a Name attribute.
func StructureValue(values ...ttlv.DataType) AttributeValue {
	return AttributeValue{ttlv.Structure, values}
}

func (AttributeValue) TypeID() ttlv.TypeID                { return TypeAttributeValue }
func (AttributeValue) Tag() ttlv.Tag                      { return ttlv.TagAttributeValue }
func (a AttributeValue) EncodingType() ttlv.EncodingType  { return a.enc }
func (AttributeValue) IsSupportedFor(spec ttlv.Spec) bool { return v12Specs.Has(spec) }

// Interface returns the Go value: int32, int64, *big.Int, uint32, bool, string,
// []byte, time.Time or, for structures, []ttlv.DataType.
func (a AttributeValue) Interface() any { return a.value }

// Values returns the nested values of a structure value, nil otherwise.
func (a AttributeValue) Values() []ttlv.DataType {
	v, _ := a.value.([]ttlv.DataType)
	return v
}

// ValueAs returns the value of a as V when it holds one.
func ValueAs[V any](a AttributeValue) (V, bool) {
	v, ok := a.value.(V)
	return v, ok
}

func (a AttributeValue) String() string {
	if a.enc.IsZero() {
		return "AttributeValue(<unset>)"
	}
	return fmt.Sprintf("AttributeValue(%s: %v)", a.enc, a.value)
}

func encodeScalar[V any](c ttlv.ValueCodec[V], value any) ([]byte, error) {
	v, ok := value.(V)
	if !ok {
		return nil, fmt.Errorf("%w: %s value holds %T", ttlv.ErrTypeMismatch, c.Type, value)
	}
	return c.Encode(v)
}

func decodeScalar[V any](c ttlv.ValueCodec[V], b []byte) (AttributeValue, error) {
	v, err := c.Decode(b)
	if err != nil {
		return AttributeValue{}, err
	}
	return AttributeValue{c.Type, v}, nil
}

func serializeAttributeValue(m *ttlv.Mapper, vc *ttlv.VersionContext, dt ttlv.DataType) ([]byte, error) {
	a, ok := dt.(AttributeValue)
	if !ok {
		return nil, fmt.Errorf("%w: %s serializer got %T", ttlv.ErrTypeMismatch, TypeAttributeValue, dt)
	}
	var (
		b   []byte
		err error
	)
	switch a.enc {
	case ttlv.Structure:
		if err := checkStructureValueSpec(vc); err != nil {
			return nil, err
		}
		return ttlv.EncodeStructure(m, vc, a)
	case ttlv.Integer:
		b, err = encodeScalar(ttlv.IntegerCodec, a.value)
	case ttlv.LongInteger:
		b, err = encodeScalar(ttlv.LongIntegerCodec, a.value)
	case ttlv.BigInteger:
		b, err = encodeScalar(ttlv.BigIntegerCodec, a.value)
	case ttlv.Enumeration:
		b, err = encodeScalar(ttlv.EnumerationCodec, a.value)
	case ttlv.Boolean:
		b, err = encodeScalar(ttlv.BooleanCodec, a.value)
	case ttlv.TextString:
		b, err = encodeScalar(ttlv.TextStringCodec, a.value)
	case ttlv.ByteString:
		b, err = encodeScalar(ttlv.ByteStringCodec, a.value)
	case ttlv.DateTime:
		b, err = encodeScalar(ttlv.DateTimeCodec, a.value)
	case ttlv.Interval:
		b, err = encodeScalar(ttlv.IntervalCodec, a.value)
	default:
		err = fmt.Errorf("%w: attribute value has no encoding", ttlv.ErrInvalidValue)
	}
	if err != nil {
		return nil, ttlv.WithField(ttlv.TagAttributeValue.String(), err)
	}
	return ttlv.Encode(ttlv.NewRecord(ttlv.TagAttributeValue, a.enc, b)), nil
}

func deserializeAttributeValue(m *ttlv.Mapper, vc *ttlv.VersionContext, rec ttlv.Record) (ttlv.DataType, error) {
	if err := ttlv.ExpectRecord(rec, ttlv.TagAttributeValue, ttlv.EncodingType{}); err != nil {
		return nil, err
	}
	et, ok := rec.EncodingType()
	if !ok {
		return nil, fmt.Errorf("%w: attribute value type 0x%02X", ttlv.ErrInvalidEncoding, rec.Type())
	}
	var (
		a   AttributeValue
		err error
	)
	b := rec.Value()
	switch et {
	case ttlv.Structure:
		if err := checkStructureValueSpec(vc); err != nil {
			return nil, err
		}
		a, err = decodeStructureValue(m, vc, rec)
	case ttlv.Integer:
		a, err = decodeScalar(ttlv.IntegerCodec, b)
	case ttlv.LongInteger:
		a, err = decodeScalar(ttlv.LongIntegerCodec, b)
	case ttlv.BigInteger:
		a, err = decodeScalar(ttlv.BigIntegerCodec, b)
	case ttlv.Enumeration:
		a, err = decodeScalar(ttlv.EnumerationCodec, b)
	case ttlv.Boolean:
		a, err = decodeScalar(ttlv.BooleanCodec, b)
	case ttlv.TextString:
		a, err = decodeScalar(ttlv.TextStringCodec, b)
	case ttlv.ByteString:
		a, err = decodeScalar(ttlv.ByteStringCodec, b)
	case ttlv.DateTime:
		a, err = decodeScalar(ttlv.DateTimeCodec, b)
	case ttlv.Interval:
		a, err = decodeScalar(ttlv.IntervalCodec, b)
	}
	if err != nil {
		return nil, ttlv.WithField(ttlv.TagAttributeValue.String(), err)
	}
	return a, nil
}

// checkStructureValueSpec rejects structure values under a sentinel spec.
// Their children are resolved through the dispatch table, which holds no
// entries for sentinels, so they could be written but never read back.
func checkStructureValueSpec(vc *ttlv.VersionContext) error {
	if spec := vc.Current(); spec.IsSentinel() {
		return ttlv.WithField(ttlv.TagAttributeValue.String(), &ttlv.UnsupportedError{Tag: ttlv.TagAttributeValue, Spec: spec})
	}
	return nil
}

func decodeStructureValue(m *ttlv.Mapper, vc *ttlv.VersionContext, rec ttlv.Record) (AttributeValue, error) {
	children, err := m.Children(rec)
	if err != nil {
		return AttributeValue{}, err
	}
	values := make([]ttlv.DataType, 0, len(children))
	for _, child := range children {
		v, err := m.UnmarshalChild(vc, child)
		if err != nil {
			return AttributeValue{}, err
		}
		values = append(values, v)
	}
	return AttributeValue{ttlv.Structure, values}, nil
}

// Attribute is a named, optionally indexed, attribute value.
type Attribute struct {
	Name  AttributeName
	Index *AttributeIndex
	Value AttributeValue
}

func NewAttribute(name string, value AttributeValue) Attribute {
	return Attribute{Name: AttributeName(name), Value: value}
}

// WithIndex returns a copy of a carrying index i.
func (a Attribute) WithIndex(i int32) Attribute {
	idx := AttributeIndex(i)
	a.Index = &idx
	return a
}

func (Attribute) TypeID() ttlv.TypeID               { return TypeAttribute }
func (Attribute) Tag() ttlv.Tag                     { return ttlv.TagAttribute }
func (Attribute) EncodingType() ttlv.EncodingType   { return ttlv.Structure }
func (Attribute) IsSupportedFor(spec ttlv.Spec) bool { return v12Specs.Has(spec) }

func (a Attribute) Values() []ttlv.DataType {
	values := []ttlv.DataType{a.Name}
	if a.Index != nil {
		values = append(values, *a.Index)
	}
	return append(values, a.Value)
}

func registerAttribute(mod *ttlv.Module) {
	ttlv.RegisterScalar(mod, ttlv.Scalar[AttributeName, string]{
		Codec: ttlv.TextStringCodec,
		Get:   func(n AttributeName) string { return string(n) },
		New:   func(v string) AttributeName { return AttributeName(v) },
	})
	ttlv.RegisterScalar(mod, ttlv.Scalar[AttributeIndex, int32]{
		Codec: ttlv.IntegerCodec,
		Get:   func(i AttributeIndex) int32 { return int32(i) },
		New:   func(v int32) AttributeIndex { return AttributeIndex(v) },
	})

	mod.AddSerializer(TypeAttributeValue, serializeAttributeValue).
		AddDeserializer(TypeAttributeValue, deserializeAttributeValue).
		AddSupported(AttributeValue{}, ttlv.EncodingTypes[:]...)

	ttlv.RegisterStruct(mod, ttlv.Struct[Attribute]{
		Fields: []ttlv.Field[Attribute]{
			{
				Name: "Name", Tag: ttlv.TagAttributeName, Type: TypeAttributeName, Required: true,
				Set: func(a *Attribute, v ttlv.DataType) error { return ttlv.Assign(&a.Name, v) },
			},
			{
				Name: "Index", Tag: ttlv.TagAttributeIndex, Type: TypeAttributeIndex,
				Specs: v12Specs,
				Set:   func(a *Attribute, v ttlv.DataType) error { return ttlv.AssignPtr(&a.Index, v) },
			},
			{
				Name: "Value", Tag: ttlv.TagAttributeValue, Type: TypeAttributeValue, Required: true,
				Set: func(a *Attribute, v ttlv.DataType) error { return ttlv.Assign(&a.Value, v) },
			},
		},
	})
}
