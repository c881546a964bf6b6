package kmip

import (
	"time"

	"github.com/oy3o/ttlv"
)

const (
	TypeState               ttlv.TypeID = "kmip.State"
	TypeCryptographicLength ttlv.TypeID = "kmip.CryptographicLength"
	TypeActivationDate      ttlv.TypeID = "kmip.ActivationDate"
	TypeDestroyDate         ttlv.TypeID = "kmip.DestroyDate"
	TypeUniqueIdentifier    ttlv.TypeID = "kmip.UniqueIdentifier"
	TypeNameValue           ttlv.TypeID = "kmip.NameValue"
	TypeNameType            ttlv.TypeID = "kmip.NameType"
	TypeName                ttlv.TypeID = "kmip.Name"
)

// State is the lifecycle state of a managed object.
type State uint32

const (
	StatePreActive            State = 0x00000001
	StateActive               State = 0x00000002
	StateDeactivated          State = 0x00000003
	StateCompromised          State = 0x00000004
	StateDestroyed            State = 0x00000005
	StateDestroyedCompromised State = 0x00000006
)

// States holds the State values and any registered extensions.
var States = newEnum("State",
	EnumValue{uint32(StatePreActive), "PreActive", allSpecs, false},
	EnumValue{uint32(StateActive), "Active", allSpecs, false},
	EnumValue{uint32(StateDeactivated), "Deactivated", allSpecs, false},
	EnumValue{uint32(StateCompromised), "Compromised", allSpecs, false},
	EnumValue{uint32(StateDestroyed), "Destroyed", allSpecs, false},
	EnumValue{uint32(StateDestroyedCompromised), "DestroyedCompromised", allSpecs, false},
)

func (State) TypeID() ttlv.TypeID               { return TypeState }
func (State) Tag() ttlv.Tag                     { return ttlv.TagState }
func (State) EncodingType() ttlv.EncodingType   { return ttlv.Enumeration }
func (State) IsSupportedFor(spec ttlv.Spec) bool { return allSpecs.Has(spec) }
func (s State) String() string                  { return States.name(uint32(s)) }

// CryptographicLength is the length in bits of a key or secret.
type CryptographicLength int32

func (CryptographicLength) TypeID() ttlv.TypeID               { return TypeCryptographicLength }
func (CryptographicLength) Tag() ttlv.Tag                     { return ttlv.TagCryptographicLength }
func (CryptographicLength) EncodingType() ttlv.EncodingType   { return ttlv.Integer }
func (CryptographicLength) IsSupportedFor(spec ttlv.Spec) bool { return v12Specs.Has(spec) }

// ActivationDate is when a managed object becomes active.
type ActivationDate struct{ time.Time }

func NewActivationDate(t time.Time) ActivationDate { return ActivationDate{ttlv.NormalizeTime(t)} }

func (ActivationDate) TypeID() ttlv.TypeID               { return TypeActivationDate }
func (ActivationDate) Tag() ttlv.Tag                     { return ttlv.TagActivationDate }
func (ActivationDate) EncodingType() ttlv.EncodingType   { return ttlv.DateTime }
func (ActivationDate) IsSupportedFor(spec ttlv.Spec) bool { return v12Specs.Has(spec) }

// DestroyDate is when a managed object was destroyed.
type DestroyDate struct{ time.Time }

func NewDestroyDate(t time.Time) DestroyDate { return DestroyDate{ttlv.NormalizeTime(t)} }

func (DestroyDate) TypeID() ttlv.TypeID               { return TypeDestroyDate }
func (DestroyDate) Tag() ttlv.Tag                     { return ttlv.TagDestroyDate }
func (DestroyDate) EncodingType() ttlv.EncodingType   { return ttlv.DateTime }
func (DestroyDate) IsSupportedFor(spec ttlv.Spec) bool { return v12Specs.Has(spec) }

type UniqueIdentifier string

func (UniqueIdentifier) TypeID() ttlv.TypeID               { return TypeUniqueIdentifier }
func (UniqueIdentifier) Tag() ttlv.Tag                     { return ttlv.TagUniqueIdentifier }
func (UniqueIdentifier) EncodingType() ttlv.EncodingType   { return ttlv.TextString }
func (UniqueIdentifier) IsSupportedFor(spec ttlv.Spec) bool { return v12Specs.Has(spec) }

type NameValue string

func (NameValue) TypeID() ttlv.TypeID               { return TypeNameValue }
func (NameValue) Tag() ttlv.Tag                     { return ttlv.TagNameValue }
func (NameValue) EncodingType() ttlv.EncodingType   { return ttlv.TextString }
func (NameValue) IsSupportedFor(spec ttlv.Spec) bool { return ttlv.TagNameValue.IsSupportedFor(spec) }

type NameType uint32

const (
	NameTypeUninterpretedTextString NameType = 0x00000001
	NameTypeUri                     NameType = 0x00000002
)

var NameTypes = newEnum("NameType",
	EnumValue{uint32(NameTypeUninterpretedTextString), "UninterpretedTextString", allSpecs, false},
	EnumValue{uint32(NameTypeUri), "Uri", allSpecs, false},
)

func (NameType) TypeID() ttlv.TypeID               { return TypeNameType }
func (NameType) Tag() ttlv.Tag                     { return ttlv.TagNameType }
func (NameType) EncodingType() ttlv.EncodingType   { return ttlv.Enumeration }
func (NameType) IsSupportedFor(spec ttlv.Spec) bool { return ttlv.TagNameType.IsSupportedFor(spec) }
func (n NameType) String() string                  { return NameTypes.name(uint32(n)) }

// Name labels a managed object.
type Name struct {
	Value NameValue
	Type  NameType
}

func (Name) TypeID() ttlv.TypeID               { return TypeName }
func (Name) Tag() ttlv.Tag                     { return ttlv.TagName }
func (Name) EncodingType() ttlv.EncodingType   { return ttlv.Structure }
func (Name) IsSupportedFor(spec ttlv.Spec) bool { return v12Specs.Has(spec) }

func (n Name) Values() []ttlv.DataType { return []ttlv.DataType{n.Value, n.Type} }

func registerAttributes(mod *ttlv.Module) {
	ttlv.RegisterScalar(mod, ttlv.Scalar[State, uint32]{
		Codec:    ttlv.EnumerationCodec,
		Get:      func(s State) uint32 { return uint32(s) },
		New:      func(v uint32) State { return State(v) },
		Validate: func(s State, spec ttlv.Spec) error { return States.check(uint32(s), spec) },
	})
	ttlv.RegisterScalar(mod, ttlv.Scalar[CryptographicLength, int32]{
		Codec: ttlv.IntegerCodec,
		Get:   func(c CryptographicLength) int32 { return int32(c) },
		New:   func(v int32) CryptographicLength { return CryptographicLength(v) },
	})
	ttlv.RegisterScalar(mod, ttlv.Scalar[ActivationDate, time.Time]{
		Codec: ttlv.DateTimeCodec,
		Get:   func(d ActivationDate) time.Time { return d.Time },
		New:   func(t time.Time) ActivationDate { return ActivationDate{t} },
	})
	ttlv.RegisterScalar(mod, ttlv.Scalar[DestroyDate, time.Time]{
		Codec: ttlv.DateTimeCodec,
		Get:   func(d DestroyDate) time.Time { return d.Time },
		New:   func(t time.Time) DestroyDate { return DestroyDate{t} },
	})
	ttlv.RegisterScalar(mod, ttlv.Scalar[UniqueIdentifier, string]{
		Codec: ttlv.TextStringCodec,
		Get:   func(u UniqueIdentifier) string { return string(u) },
		New:   func(v string) UniqueIdentifier { return UniqueIdentifier(v) },
	})
	ttlv.RegisterScalar(mod, ttlv.Scalar[NameValue, string]{
		Codec: ttlv.TextStringCodec,
		Get:   func(n NameValue) string { return string(n) },
		New:   func(v string) NameValue { return NameValue(v) },
	})
	ttlv.RegisterScalar(mod, ttlv.Scalar[NameType, uint32]{
		Codec:    ttlv.EnumerationCodec,
		Get:      func(n NameType) uint32 { return uint32(n) },
		New:      func(v uint32) NameType { return NameType(v) },
		Validate: func(n NameType, spec ttlv.Spec) error { return NameTypes.check(uint32(n), spec) },
	})
	ttlv.RegisterStruct(mod, ttlv.Struct[Name]{
		Fields: []ttlv.Field[Name]{
			{
				Name: "Value", Tag: ttlv.TagNameValue, Type: TypeNameValue, Required: true,
				Set: func(n *Name, v ttlv.DataType) error { return ttlv.Assign(&n.Value, v) },
			},
			{
				Name: "Type", Tag: ttlv.TagNameType, Type: TypeNameType, Required: true,
				Set: func(n *Name, v ttlv.DataType) error { return ttlv.Assign(&n.Type, v) },
			},
		},
	})
}
