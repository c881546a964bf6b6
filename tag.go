package ttlv

import (
	"fmt"
	"strings"

	"github.com/puzpuzpuz/xsync/v4"
)

const (
	// TagSize is the width of a raw tag on the wire.
	TagSize = 3

	maxTagValue      = 0xFFFFFF
	standardTagBlock = 0x42
)

// Tag identifies a TTLV element. Standard tags come from the KMIP tag table;
// custom tags are created with NewCustomTag and live outside the 0x42xxxx block.
type Tag struct {
	value  uint32
	name   string
	custom bool
	specs  SpecSet
}

func standard(value uint32, name string, specs SpecSet) Tag {
	return Tag{value: value, name: name, specs: specs}
}

var (
	tagsByValue = xsync.NewMap[uint32, Tag]()
	tagsByName  = xsync.NewMap[string, Tag]()
)

func init() {
	for _, t := range standardTags {
		tagsByValue.Store(t.value, t)
		tagsByName.Store(t.name, t)
	}
}

// NewCustomTag creates an extension tag. value must fit in 24 bits and lie outside
// the standard block; name must not be blank. With no specs the tag is supported
// for every version.
func NewCustomTag(value uint32, name string, specs ...Spec) (Tag, error) {
	if value > maxTagValue {
		return Tag{}, fmt.Errorf("%w: 0x%X does not fit in %d bytes", ErrInvalidTag, value, TagSize)
	}
	if value>>16 == standardTagBlock {
		return Tag{}, fmt.Errorf("%w: 0x%06X", ErrReservedTag, value)
	}
	if strings.TrimSpace(name) == "" {
		return Tag{}, fmt.Errorf("%w: custom tag 0x%06X needs a name", ErrInvalidTag, value)
	}
	ss := allSpecs
	if len(specs) > 0 {
		ss = NewSpecSet(specs...)
	}
	return Tag{value: value, name: name, custom: true, specs: ss}, nil
}

// CustomTagFromBytes is NewCustomTag for a raw 3-byte tag.
func CustomTagFromBytes(b []byte, name string, specs ...Spec) (Tag, error) {
	v, err := tagValue(b)
	if err != nil {
		return Tag{}, err
	}
	return NewCustomTag(v, name, specs...)
}

// LookupTag returns the standard tag with the given value.
func LookupTag(value uint32) (Tag, bool) { return tagsByValue.Load(value) }

// LookupTagBytes returns the standard tag for a raw 3-byte tag.
func LookupTagBytes(b []byte) (Tag, error) {
	v, err := tagValue(b)
	if err != nil {
		return Tag{}, err
	}
	t, ok := LookupTag(v)
	if !ok {
		return Tag{}, fmt.Errorf("%w: 0x%06X", ErrUnknownTag, v)
	}
	return t, nil
}

// LookupTagByName returns the standard tag with the given description.
func LookupTagByName(name string) (Tag, bool) { return tagsByName.Load(name) }

func tagValue(b []byte) (uint32, error) {
	if len(b) != TagSize {
		return 0, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidTag, TagSize, len(b))
	}
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2]), nil
}

// Value returns the 24-bit tag value.
func (t Tag) Value() uint32 { return t.value }

// Bytes returns the big-endian wire form.
func (t Tag) Bytes() [TagSize]byte {
	return [TagSize]byte{byte(t.value >> 16), byte(t.value >> 8), byte(t.value)}
}

func (t Tag) Description() string { return t.name }
func (t Tag) IsCustom() bool      { return t.custom }
func (t Tag) Specs() SpecSet      { return t.specs }

// IsSupportedFor reports whether the tag is defined in spec.
func (t Tag) IsSupportedFor(spec Spec) bool { return t.specs.Has(spec) }

// Hex renders the value as 0x420069.
func (t Tag) Hex() string { return fmt.Sprintf("0x%06X", t.value) }

func (t Tag) String() string {
	if t.name == "" {
		return t.Hex()
	}
	return t.name
}
