package kmip

import "github.com/oy3o/ttlv"

const TypeOperation ttlv.TypeID = "kmip.Operation"

// Operation names the request a batch item carries.
type Operation uint32

func (Operation) TypeID() ttlv.TypeID             { return TypeOperation }
func (Operation) Tag() ttlv.Tag                   { return ttlv.TagOperation }
func (Operation) EncodingType() ttlv.EncodingType { return ttlv.Enumeration }
func (Operation) IsSupportedFor(ttlv.Spec) bool   { return true }
func (o Operation) String() string                { return Operations.name(uint32(o)) }

// DefinedFor reports whether o exists in spec.
func (o Operation) DefinedFor(spec ttlv.Spec) bool {
	v, ok := Operations.Lookup(uint32(o))
	return ok && v.Specs.Has(spec)
}

func registerOperation(mod *ttlv.Module) {
	ttlv.RegisterScalar(mod, ttlv.Scalar[Operation, uint32]{
		Codec:    ttlv.EnumerationCodec,
		Get:      func(o Operation) uint32 { return uint32(o) },
		New:      func(v uint32) Operation { return Operation(v) },
		Validate: func(o Operation, spec ttlv.Spec) error { return Operations.check(uint32(o), spec) },
	})
}
