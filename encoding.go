package ttlv

import "fmt"

// Variable marks an encoding type whose value length is not fixed.
const Variable = -1

// EncodingType is the 1-byte type marker of a TTLV element.
type EncodingType struct {
	Marker      byte
	Description string
	Width       int
}

var (
	Structure   = EncodingType{0x01, "Structure", Variable}
	Integer     = EncodingType{0x02, "Integer", 4}
	LongInteger = EncodingType{0x03, "Long Integer", 8}
	BigInteger  = EncodingType{0x04, "Big Integer", Variable}
	Enumeration = EncodingType{0x05, "Enumeration", 4}
	Boolean     = EncodingType{0x06, "Boolean", 8}
	TextString  = EncodingType{0x07, "Text String", Variable}
	ByteString  = EncodingType{0x08, "Byte String", Variable}
	DateTime    = EncodingType{0x09, "Date-Time", 8}
	Interval    = EncodingType{0x0A, "Interval", 4}
)

// EncodingTypes lists the catalog in marker order.
var EncodingTypes = [...]EncodingType{
	Structure, Integer, LongInteger, BigInteger, Enumeration,
	Boolean, TextString, ByteString, DateTime, Interval,
}

var encodingNames = map[string]EncodingType{
	"Structure":   Structure,
	"Integer":     Integer,
	"LongInteger": LongInteger,
	"BigInteger":  BigInteger,
	"Enumeration": Enumeration,
	"Boolean":     Boolean,
	"TextString":  TextString,
	"ByteString":  ByteString,
	"DateTime":    DateTime,
	"Interval":    Interval,
}

// EncodingTypeFromMarker returns the catalog entry for b.
func EncodingTypeFromMarker(b byte) (EncodingType, bool) {
	if !IsValidMarker(b) {
		return EncodingType{}, false
	}
	return EncodingTypes[b-1], true
}

// EncodingTypeFromName accepts either the identifier ("TextString") or the
// description ("Text String").
func EncodingTypeFromName(name string) (EncodingType, bool) {
	if et, ok := encodingNames[name]; ok {
		return et, true
	}
	for _, et := range EncodingTypes {
		if et.Description == name {
			return et, true
		}
	}
	return EncodingType{}, false
}

// IsValidMarker reports whether b is a known type marker.
func IsValidMarker(b byte) bool { return b >= Structure.Marker && b <= Interval.Marker }

// IsFixedLength reports whether every value of this type has the same width.
func (e EncodingType) IsFixedLength() bool { return e.Width != Variable }

// IsZero reports whether e is the zero EncodingType, which matches no marker.
func (e EncodingType) IsZero() bool { return e.Marker == 0 }

func (e EncodingType) String() string {
	if e.IsZero() {
		return "Unknown"
	}
	return e.Description
}

// GoString renders the marker for %#v.
func (e EncodingType) GoString() string { return fmt.Sprintf("EncodingType(0x%02X)", e.Marker) }
