package kmip

import (
	"fmt"
	"strings"

	"github.com/oy3o/ttlv"
	"github.com/puzpuzpuz/xsync/v4"
)

// extensionFlag marks vendor extension values of a KMIP enumeration (8XXXXXXX hex).
const extensionFlag = 0x80000000

// EnumValue describes one member of a KMIP enumeration.
type EnumValue struct {
	Value  uint32
	Name   string
	Specs  ttlv.SpecSet
	Custom bool
}

// Enum is the set of known values of one KMIP enumeration, standard and extension.
type Enum struct {
	kind    string
	byValue *xsync.Map[uint32, EnumValue]
	byName  *xsync.Map[string, EnumValue]
}

func newEnum(kind string, values ...EnumValue) *Enum {
	e := &Enum{
		kind:    kind,
		byValue: xsync.NewMap[uint32, EnumValue](),
		byName:  xsync.NewMap[string, EnumValue](),
	}
	for _, v := range values {
		e.byValue.Store(v.Value, v)
		e.byName.Store(v.Name, v)
	}
	return e
}

// Register adds an extension value. value must have the high bit set and name
// must not be blank. Registering an existing value or name returns the existing entry.
func (e *Enum) Register(value uint32, name string, specs ...ttlv.Spec) (EnumValue, error) {
	if value&extensionFlag == 0 {
		return EnumValue{}, fmt.Errorf("%w: %s extension 0x%08X must be in range 8XXXXXXX", ttlv.ErrInvalidValue, e.kind, value)
	}
	if strings.TrimSpace(name) == "" {
		return EnumValue{}, fmt.Errorf("%w: %s extension 0x%08X needs a name", ttlv.ErrInvalidValue, e.kind, value)
	}
	if len(specs) == 0 {
		return EnumValue{}, fmt.Errorf("%w: %s extension %q needs at least one version", ttlv.ErrInvalidValue, e.kind, name)
	}
	if v, ok := e.byValue.Load(value); ok {
		return v, nil
	}
	if v, ok := e.byName.Load(name); ok {
		return v, nil
	}
	v := EnumValue{Value: value, Name: name, Specs: ttlv.NewSpecSet(specs...), Custom: true}
	actual, _ := e.byValue.LoadOrStore(value, v)
	e.byName.LoadOrStore(actual.Name, actual)
	return actual, nil
}

// Lookup returns the entry for value.
func (e *Enum) Lookup(value uint32) (EnumValue, bool) { return e.byValue.Load(value) }

// LookupName returns the entry named name.
func (e *Enum) LookupName(name string) (EnumValue, bool) { return e.byName.Load(name) }

// check accepts value when it is known and defined for spec.
func (e *Enum) check(value uint32, spec ttlv.Spec) error {
	v, ok := e.byValue.Load(value)
	if !ok {
		return fmt.Errorf("%w: no %s value 0x%08X", ttlv.ErrInvalidValue, e.kind, value)
	}
	if !v.Specs.Has(spec) {
		return fmt.Errorf("%w: %s %s is not defined for %s", ttlv.ErrUnsupportedSpec, e.kind, v.Name, spec)
	}
	return nil
}

func (e *Enum) name(value uint32) string {
	if v, ok := e.byValue.Load(value); ok {
		return v.Name
	}
	return fmt.Sprintf("0x%08X", value)
}
