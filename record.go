package ttlv

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"math"
)

// Record is one decoded TTLV element: a 3-byte tag, a type marker and the value
// bytes. The length on the wire is always len(value). A Record is immutable;
// constructors and accessors copy the value.
type Record struct {
	tag   [TagSize]byte
	typ   byte
	value []byte
}

var _ Codec = (*Record)(nil)

// NewRecord builds a record for a known tag and encoding type.
func NewRecord(tag Tag, typ EncodingType, value []byte) Record {
	return Record{tag: tag.Bytes(), typ: typ.Marker, value: bytes.Clone(value)}
}

// RecordFromBytes builds a record from raw wire parts. The tag must be exactly 3 bytes.
func RecordFromBytes(tag []byte, typ byte, value []byte) (Record, error) {
	if len(tag) != TagSize {
		return Record{}, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidTag, TagSize, len(tag))
	}
	if uint64(len(value)) > math.MaxUint32 {
		return Record{}, fmt.Errorf("%w: %d bytes", ErrValueTooLarge, len(value))
	}
	r := Record{typ: typ, value: bytes.Clone(value)}
	copy(r.tag[:], tag)
	return r, nil
}

// NewRecordWithLength is RecordFromBytes with an explicit length that must equal len(value).
func NewRecordWithLength(tag []byte, typ byte, length int, value []byte) (Record, error) {
	if length != len(value) {
		return Record{}, fmt.Errorf("%w: declared %d, value has %d", ErrLengthMismatch, length, len(value))
	}
	return RecordFromBytes(tag, typ, value)
}

// Tag returns the raw tag bytes.
func (r Record) Tag() [TagSize]byte { return r.tag }

// TagValue returns the tag as a 24-bit integer.
func (r Record) TagValue() uint32 {
	return uint32(r.tag[0])<<16 | uint32(r.tag[1])<<8 | uint32(r.tag[2])
}

// Type returns the raw type marker.
func (r Record) Type() byte { return r.typ }

// EncodingType resolves the type marker against the catalog.
func (r Record) EncodingType() (EncodingType, bool) { return EncodingTypeFromMarker(r.typ) }

// Length is the value length; padding is not included.
func (r Record) Length() int { return len(r.value) }

// Value returns a copy of the value bytes.
func (r Record) Value() []byte { return bytes.Clone(r.value) }

func (r Record) IsStructure() bool { return r.typ == Structure.Marker }

// Is reports whether the record carries tag t with encoding et.
func (r Record) Is(t Tag, et EncodingType) bool {
	return r.TagValue() == t.Value() && r.typ == et.Marker
}

// Equal compares tag, type, length and value.
func (r Record) Equal(o Record) bool {
	return r.tag == o.tag && r.typ == o.typ && bytes.Equal(r.value, o.value)
}

// Children decodes the value of a Structure record as a sequence of records.
func (r Record) Children() ([]Record, error) {
	if !r.IsStructure() {
		return nil, fmt.Errorf("%w: 0x%02X is not a structure", ErrTypeMismatch, r.typ)
	}
	return DecodeOptions{}.children(r.value)
}

// Size is the encoded size including padding.
func (r Record) Size() int { return EncodedSize(len(r.value)) }

// MarshalBinary returns the padded wire form.
func (r *Record) MarshalBinary() ([]byte, error) { return MarshalBinaryGeneric(r) }

// MarshalTo writes the padded wire form into p.
func (r *Record) MarshalTo(p []byte) (int, error) { return MarshalToGeneric(r, p) }

// WriteTo writes header, value and padding to w.
func (r *Record) WriteTo(w io.Writer) (int64, error) {
	cw, err := NewWriter(w)
	if err != nil {
		return 0, err
	}
	cw.WriteFrom(newHeader(*r))
	cw.WriteBytes(r.value)
	cw.Align(Alignment)
	return cw.Result()
}

// UnmarshalBinary decodes exactly one record; data must hold nothing after its padding.
func (r *Record) UnmarshalBinary(data []byte) error {
	return UnmarshalBinaryGeneric(r, data)
}

// ReadFrom reads one record, including its padding, from an unbuffered stream.
// It never reads past the end of the record.
func (r *Record) ReadFrom(src io.Reader) (int64, error) {
	var h recordHeader
	if _, err := h.ReadFrom(src); err != nil {
		return 0, truncated(err, "header")
	}
	n := int64(HeaderSize)

	length := int64(h.Payload.Length)
	buf := bytesBufPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer bytesBufPool.Put(buf)

	read, err := buf.ReadFrom(io.LimitReader(src, length))
	n += read
	if err != nil {
		return n, err
	}
	if read < length {
		return n, fmt.Errorf("%w: value needs %d bytes, have %d", ErrTruncated, length, read)
	}

	pad := PaddingLength(length)
	var padding [Alignment]byte
	m, err := io.ReadFull(src, padding[:pad])
	n += int64(m)
	if err != nil {
		return n, truncated(err, "padding")
	}

	r.tag = h.Payload.Tag
	r.typ = h.Payload.Type
	r.value = bytes.Clone(buf.Bytes())
	return n, nil
}

// Hex renders the padded wire form as lowercase hex.
func (r Record) Hex() string { return hex.EncodeToString(Encode(r)) }

func (r Record) String() string {
	return fmt.Sprintf("%s %s %d", tagName(r.TagValue()), typeName(r.typ), len(r.value))
}
