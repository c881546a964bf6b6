package ttlv

import (
	"bytes"
	"encoding"
	"fmt"
	"io"
)

// Sizer reports the encoded size of a value.
type Sizer interface {
	Size() int
}

// Marshaler encodes into a new slice, a stream, or a caller buffer.
type Marshaler interface {
	encoding.BinaryMarshaler
	io.WriterTo

	// MarshalTo encodes into buf and fails with io.ErrShortWrite if it is too small.
	MarshalTo(buf []byte) (int, error)
}

// Unmarshaler decodes from a slice or a stream.
type Unmarshaler interface {
	encoding.BinaryUnmarshaler
	io.ReaderFrom
}

// Codec is a self-sizing binary encoder/decoder.
type Codec interface {
	Sizer
	Marshaler
	Unmarshaler
}

// Encode returns the padded wire form of rec. The result is always a multiple of 8 bytes.
func Encode(rec Record) []byte {
	return EncodeMany(rec)
}

// EncodeMany concatenates the padded wire forms of records.
func EncodeMany(records ...Record) []byte {
	total := 0
	for i := range records {
		total += records[i].Size()
	}
	w := NewBytesWriter(make([]byte, total))
	for i := range records {
		if _, err := records[i].WriteTo(w); err != nil {
			// The buffer is sized exactly; a failure here is a bug.
			panic(err)
		}
	}
	if w.Len()%Alignment != 0 {
		panic(fmt.Errorf("%w: %d bytes", ErrMisaligned, w.Len()))
	}
	return w.Bytes()
}

// DecodeOptions bounds what Decode accepts. The zero value applies no limits.
type DecodeOptions struct {
	// MaxValueLength rejects any declared length above it. Zero means unlimited.
	MaxValueLength int
	// StrictPadding rejects non-zero padding bytes.
	StrictPadding bool
	// MaxDepth bounds structure nesting where records are walked recursively,
	// as in Dump and Describe. Zero means unlimited.
	MaxDepth int
}

// Decode parses one element from the front of data and returns it with the
// number of bytes consumed, padding included.
func Decode(data []byte) (Record, int, error) { return DecodeOptions{}.Decode(data) }

// DecodeAll parses data as a sequence of sibling elements.
func DecodeAll(data []byte) ([]Record, error) { return DecodeOptions{}.DecodeAll(data) }

func (o DecodeOptions) Decode(data []byte) (Record, int, error) {
	r := NewBytesReader(data)
	rec, err := o.next(r, false)
	if err != nil {
		return Record{}, 0, err
	}
	return rec, r.Len(), nil
}

func (o DecodeOptions) DecodeAll(data []byte) ([]Record, error) {
	return o.decodeAll(data, false)
}

// children splits the payload of a structure. The records share value, which
// must belong to an immutable Record.
func (o DecodeOptions) children(value []byte) ([]Record, error) {
	return o.decodeAll(value, true)
}

func (o DecodeOptions) decodeAll(data []byte, share bool) ([]Record, error) {
	var out []Record
	r := NewBytesReader(data)
	for r.Available() > 0 {
		start := r.Len()
		rec, err := o.next(r, share)
		if err != nil {
			return nil, fmt.Errorf("%w (element at offset %d)", err, start)
		}
		out = append(out, rec)
	}
	return out, nil
}

func (o DecodeOptions) next(r *BytesReader, share bool) (Record, error) {
	raw, err := r.Next(HeaderSize)
	if err != nil {
		return Record{}, fmt.Errorf("%w: header needs %d bytes, have %d", ErrTruncated, HeaderSize, r.Available())
	}
	var h recordHeader
	if err := h.UnmarshalBinary(raw); err != nil {
		return Record{}, err
	}
	length := int64(h.Payload.Length)
	if err := o.checkLength(length); err != nil {
		return Record{}, err
	}
	if length > int64(r.Available()) {
		return Record{}, fmt.Errorf("%w: value needs %d bytes, have %d", ErrTruncated, length, r.Available())
	}
	value, _ := r.Next(int(length))
	pad, err := r.Next(int(PaddingLength(length)))
	if err != nil {
		return Record{}, fmt.Errorf("%w: padding needs %d bytes, have %d", ErrTruncated, PaddingLength(length), r.Available())
	}
	if o.StrictPadding {
		if err := CheckBufferNotZeros(pad); err != nil {
			return Record{}, err
		}
	}
	if !share {
		value = bytes.Clone(value)
	}
	return Record{tag: h.Payload.Tag, typ: h.Payload.Type, value: value}, nil
}

func (o DecodeOptions) checkLength(length int64) error {
	if o.MaxValueLength > 0 && length > int64(o.MaxValueLength) {
		return fmt.Errorf("%w: declared %d, limit %d", ErrValueTooLarge, length, o.MaxValueLength)
	}
	return nil
}

// Encoder writes records to a stream.
type Encoder struct {
	w *Writer
}

func NewEncoder(w io.Writer) (*Encoder, error) {
	cw, err := NewWriter(w)
	if err != nil {
		return nil, err
	}
	return &Encoder{w: cw}, nil
}

// Encode buffers rec; call Flush to push it to the stream.
func (e *Encoder) Encode(rec Record) error {
	tag := rec.Tag()
	e.w.WriteBytes(tag[:])
	e.w.WriteUint8(rec.typ)
	e.w.WriteUint32(uint32(len(rec.value)))
	e.w.WriteBytes(rec.value)
	e.w.Align(Alignment)
	return e.w.Err()
}

func (e *Encoder) Flush() error { return e.w.Flush() }

// Count returns the number of bytes encoded so far.
func (e *Encoder) Count() int64 { return e.w.Count() }

// Decoder reads records from a stream.
type Decoder struct {
	r    *Reader
	opts DecodeOptions
}

func NewDecoder(r io.Reader, opts DecodeOptions) (*Decoder, error) {
	cr, err := NewReader(r)
	if err != nil {
		return nil, err
	}
	return &Decoder{r: cr, opts: opts}, nil
}

// Next returns the next record. It returns io.EOF when the stream ends cleanly
// between records.
func (d *Decoder) Next() (Record, error) {
	start := d.r.Count()
	var h header
	d.r.ReadBytesTo(h.Tag[:])
	if d.r.Err() != nil && d.r.Count() == start {
		return Record{}, io.EOF
	}
	d.r.ReadUint8(&h.Type)
	d.r.ReadUint32(&h.Length)
	if err := d.r.Err(); err != nil {
		return Record{}, truncated(err, "header")
	}
	if err := d.opts.checkLength(int64(h.Length)); err != nil {
		return Record{}, err
	}
	value := d.r.ReadBytes(int(h.Length))
	if err := d.r.Err(); err != nil {
		return Record{}, truncated(err, "value")
	}
	pad := d.r.Align(Alignment)
	if err := d.r.Err(); err != nil {
		return Record{}, truncated(err, "padding")
	}
	if d.opts.StrictPadding {
		if err := CheckBufferNotZeros(pad); err != nil {
			return Record{}, err
		}
	}
	return Record{tag: h.Tag, typ: h.Type, value: value}, nil
}
