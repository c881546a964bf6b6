package ttlv

import (
	"fmt"
	"reflect"
)

// TypeID names a registered domain type. It keys the serializer and
// deserializer tables and is the result of dispatch resolution.
type TypeID string

// DataType is a value the Mapper can encode.
type DataType interface {
	TypeID() TypeID
	Tag() Tag
	EncodingType() EncodingType
	IsSupportedFor(Spec) bool
}

// StructureType is a DataType encoded as a Structure of nested values.
type StructureType interface {
	DataType
	// Values returns the children in wire order. Nil entries are skipped.
	Values() []DataType
}

func isNil(v DataType) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return rv.IsNil()
	}
	return false
}

// ExpectRecord checks that rec carries tag and, unless et is the zero
// EncodingType, the encoding et.
func ExpectRecord(rec Record, tag Tag, et EncodingType) error {
	if rec.TagValue() != tag.Value() {
		return fmt.Errorf("%w: expected tag %s, got 0x%06X", ErrTypeMismatch, tag, rec.TagValue())
	}
	if !et.IsZero() && rec.Type() != et.Marker {
		return fmt.Errorf("%w: %s expects %s, got 0x%02X", ErrTypeMismatch, tag, et, rec.Type())
	}
	return nil
}

// Assign stores v into dst when it has dst's type.
func Assign[T DataType](dst *T, v DataType) error {
	t, ok := v.(T)
	if !ok {
		return fmt.Errorf("%w: cannot assign %s to %T", ErrTypeMismatch, v.TypeID(), *dst)
	}
	*dst = t
	return nil
}

// AssignPtr stores v into an optional field.
func AssignPtr[T DataType](dst **T, v DataType) error {
	var t T
	if err := Assign(&t, v); err != nil {
		return err
	}
	*dst = &t
	return nil
}

// Append adds v to a repeated field.
func Append[T DataType](dst *[]T, v DataType) error {
	var t T
	if err := Assign(&t, v); err != nil {
		return err
	}
	*dst = append(*dst, t)
	return nil
}
