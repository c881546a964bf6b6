package kmip

import (
	"fmt"

	"github.com/oy3o/ttlv"
)

const TypeCustomAttribute ttlv.TypeID = "kmip.CustomAttribute"

// CustomAttribute is a vendor attribute. Its name starts with "x-" when a
// client defines it and "y-" when the server does. On the wire it is an
// ordinary Attribute, so it is never dispatched; unmarshal it by TypeID.
type CustomAttribute struct {
	Attribute
}

func NewCustomAttribute(name string, value AttributeValue) (CustomAttribute, error) {
	if err := checkCustomName(AttributeName(name)); err != nil {
		return CustomAttribute{}, err
	}
	return CustomAttribute{NewAttribute(name, value)}, nil
}

func (CustomAttribute) TypeID() ttlv.TypeID { return TypeCustomAttribute }

// IsClient reports whether a client defined the attribute.
func (c CustomAttribute) IsClient() bool { return IsClientAttributeName(string(c.Name)) }

// IsServer reports whether the server defined the attribute.
func (c CustomAttribute) IsServer() bool { return IsServerAttributeName(string(c.Name)) }

func (c CustomAttribute) Capabilities() Capabilities { return customCapabilities(string(c.Name)) }

func checkCustomName(name AttributeName) error {
	if !IsCustomAttributeName(string(name)) {
		return fmt.Errorf("%w: custom attribute name %q lacks an x- or y- prefix", ttlv.ErrInvalidValue, string(name))
	}
	return nil
}

func registerCustomAttribute(mod *ttlv.Module) {
	mod.AddSerializer(TypeCustomAttribute, func(m *ttlv.Mapper, vc *ttlv.VersionContext, v ttlv.DataType) ([]byte, error) {
		c, ok := v.(CustomAttribute)
		if !ok {
			return nil, fmt.Errorf("%w: %s serializer got %T", ttlv.ErrTypeMismatch, TypeCustomAttribute, v)
		}
		if err := checkCustomName(c.Name); err != nil {
			return nil, ttlv.WithField("Name", err)
		}
		return m.Marshal(vc, c.Attribute)
	})
	mod.AddDeserializer(TypeCustomAttribute, func(m *ttlv.Mapper, vc *ttlv.VersionContext, rec ttlv.Record) (ttlv.DataType, error) {
		v, err := m.UnmarshalRecord(vc, rec, TypeAttribute)
		if err != nil {
			return nil, err
		}
		a, ok := v.(Attribute)
		if !ok {
			return nil, fmt.Errorf("%w: decoded %s as %T", ttlv.ErrTypeMismatch, TypeAttribute, v)
		}
		if err := checkCustomName(a.Name); err != nil {
			return nil, ttlv.WithField("Name", err)
		}
		return CustomAttribute{a}, nil
	})
}
