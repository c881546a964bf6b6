package kmip

import (
	"fmt"

	"github.com/oy3o/ttlv"
)

var (
	allSpecs = ttlv.NewSpecSet(ttlv.UnknownVersion, ttlv.V1_2, ttlv.V2_1, ttlv.V3_0)
	// v12Specs is the support set of the attribute types that exist only up to KMIP 1.2.
	v12Specs = ttlv.NewSpecSet(ttlv.UnknownVersion, ttlv.V1_2)
)

const (
	TypeProtocolVersionMajor ttlv.TypeID = "kmip.ProtocolVersionMajor"
	TypeProtocolVersionMinor ttlv.TypeID = "kmip.ProtocolVersionMinor"
	TypeProtocolVersion      ttlv.TypeID = "kmip.ProtocolVersion"
)

// ProtocolVersionMajor is the major number of a ProtocolVersion.
type ProtocolVersionMajor int32

func (ProtocolVersionMajor) TypeID() ttlv.TypeID             { return TypeProtocolVersionMajor }
func (ProtocolVersionMajor) Tag() ttlv.Tag                   { return ttlv.TagProtocolVersionMajor }
func (ProtocolVersionMajor) EncodingType() ttlv.EncodingType { return ttlv.Integer }
func (ProtocolVersionMajor) IsSupportedFor(ttlv.Spec) bool   { return true }

// ProtocolVersionMinor is the minor number of a ProtocolVersion.
type ProtocolVersionMinor int32

func (ProtocolVersionMinor) TypeID() ttlv.TypeID             { return TypeProtocolVersionMinor }
func (ProtocolVersionMinor) Tag() ttlv.Tag                   { return ttlv.TagProtocolVersionMinor }
func (ProtocolVersionMinor) EncodingType() ttlv.EncodingType { return ttlv.Integer }
func (ProtocolVersionMinor) IsSupportedFor(ttlv.Spec) bool   { return true }

// ProtocolVersion is encodable under every spec, sentinels included, since it
// is exchanged before a version is agreed.
type ProtocolVersion struct {
	Major ProtocolVersionMajor
	Minor ProtocolVersionMinor
}

func NewProtocolVersion(major, minor int) ProtocolVersion {
	return ProtocolVersion{Major: ProtocolVersionMajor(major), Minor: ProtocolVersionMinor(minor)}
}

// VersionOf returns the ProtocolVersion that announces spec.
func VersionOf(spec ttlv.Spec) ProtocolVersion {
	return NewProtocolVersion(spec.Major(), spec.Minor())
}

func (ProtocolVersion) TypeID() ttlv.TypeID             { return TypeProtocolVersion }
func (ProtocolVersion) Tag() ttlv.Tag                   { return ttlv.TagProtocolVersion }
func (ProtocolVersion) EncodingType() ttlv.EncodingType { return ttlv.Structure }
func (ProtocolVersion) IsSupportedFor(ttlv.Spec) bool   { return true }

func (p ProtocolVersion) Values() []ttlv.DataType {
	return []ttlv.DataType{p.Major, p.Minor}
}

// Spec maps p to a ttlv.Spec.
func (p ProtocolVersion) Spec() (ttlv.Spec, error) { return SpecOf(p) }

// SpecOf maps a protocol version to the ttlv.Spec it names. Versions the codec
// does not speak yield UnsupportedVersion and an error matching ttlv.ErrUnknownSpec.
func SpecOf(p ProtocolVersion) (ttlv.Spec, error) {
	return ttlv.SpecFromVersion(int(p.Major), int(p.Minor))
}

func (p ProtocolVersion) String() string {
	return fmt.Sprintf("KMIP-ProtocolVersion-V%d.%d", p.Major, p.Minor)
}

func registerProtocolVersion(mod *ttlv.Module) {
	ttlv.RegisterScalar(mod, ttlv.Scalar[ProtocolVersionMajor, int32]{
		Codec: ttlv.IntegerCodec,
		Get:   func(v ProtocolVersionMajor) int32 { return int32(v) },
		New:   func(v int32) ProtocolVersionMajor { return ProtocolVersionMajor(v) },
	})
	ttlv.RegisterScalar(mod, ttlv.Scalar[ProtocolVersionMinor, int32]{
		Codec: ttlv.IntegerCodec,
		Get:   func(v ProtocolVersionMinor) int32 { return int32(v) },
		New:   func(v int32) ProtocolVersionMinor { return ProtocolVersionMinor(v) },
	})
	ttlv.RegisterStruct(mod, ttlv.Struct[ProtocolVersion]{
		Fields: []ttlv.Field[ProtocolVersion]{
			{
				Name: "Major", Tag: ttlv.TagProtocolVersionMajor, Type: TypeProtocolVersionMajor, Required: true,
				Set: func(p *ProtocolVersion, v ttlv.DataType) error { return ttlv.Assign(&p.Major, v) },
			},
			{
				Name: "Minor", Tag: ttlv.TagProtocolVersionMinor, Type: TypeProtocolVersionMinor, Required: true,
				Set: func(p *ProtocolVersion, v ttlv.DataType) error { return ttlv.Assign(&p.Minor, v) },
			},
		},
	})
}
