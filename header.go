package ttlv

import (
	"encoding/binary"
	"io"
	"reflect"

	"github.com/puzpuzpuz/xsync/v4"
)

// sizeCache avoids calling binary.Size through reflection on every header.
var sizeCache = xsync.NewMap[reflect.Type, int]()

// Fixed is a Codec for any struct made only of fixed-size fields.
//
// Payload MUST NOT contain slices, maps or strings.
type Fixed[Payload any] struct {
	Payload Payload
}

var _ Codec = (*Fixed[struct{}])(nil)

// Size returns the encoded size of Payload.
func (c *Fixed[Payload]) Size() int {
	t := reflect.TypeOf((*Payload)(nil)).Elem()
	if size, ok := sizeCache.Load(t); ok {
		return size
	}
	size := binary.Size(&c.Payload)
	sizeCache.Store(t, size)
	return size
}

func (c *Fixed[Payload]) MarshalBinary() ([]byte, error) {
	buf := make([]byte, c.Size())
	if _, err := binary.Encode(buf, Order, &c.Payload); err != nil {
		return nil, io.ErrShortWrite
	}
	return buf, nil
}

// UnmarshalBinary decodes Payload from the front of data. Bytes past the
// payload must be zero.
func (c *Fixed[Payload]) UnmarshalBinary(data []byte) error {
	n, err := binary.Decode(data, Order, &c.Payload)
	if err != nil {
		return ErrTruncated
	}
	if len(data) > n {
		return CheckBufferNotZeros(data[n:])
	}
	return nil
}

func (c *Fixed[Payload]) ReadFrom(r io.Reader) (int64, error) {
	if err := binary.Read(r, Order, &c.Payload); err != nil {
		return 0, err
	}
	return int64(c.Size()), nil
}

func (c *Fixed[Payload]) WriteTo(w io.Writer) (int64, error) {
	if err := binary.Write(w, Order, &c.Payload); err != nil {
		return 0, err
	}
	return int64(c.Size()), nil
}

func (c *Fixed[Payload]) MarshalTo(p []byte) (int, error) {
	n, err := binary.Encode(p, Order, &c.Payload)
	if err != nil {
		return n, io.ErrShortWrite
	}
	return n, nil
}

// header is the 8-byte prefix of every element.
type header struct {
	Tag    [TagSize]byte
	Type   byte
	Length uint32
}

type recordHeader = Fixed[header]

func newHeader(r Record) *recordHeader {
	return &recordHeader{header{Tag: r.tag, Type: r.typ, Length: uint32(len(r.value))}}
}
