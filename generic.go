package ttlv

import (
	"fmt"
	"io"
)

// MarshalBinaryGeneric implements encoding.BinaryMarshaler on top of Size and WriteTo.
func MarshalBinaryGeneric[T interface {
	Size() int
	io.WriterTo
}](v T) ([]byte, error) {
	expectedSize := v.Size()
	w := NewBytesWriter(make([]byte, expectedSize))
	n, err := v.WriteTo(w)
	if err != nil {
		return nil, err
	}
	if n < int64(expectedSize) {
		return nil, fmt.Errorf("%w: expected %d bytes, but wrote %d", ErrTruncated, expectedSize, n)
	}
	return w.Bytes(), nil
}

// UnmarshalBinaryGeneric implements encoding.BinaryUnmarshaler on top of ReadFrom.
// All of data must be consumed.
func UnmarshalBinaryGeneric[T interface {
	io.ReaderFrom
	Size() int
}](v T, data []byte) error {
	r := NewBytesReader(data)
	n, err := v.ReadFrom(r)
	if err != nil {
		return err
	}
	if expectedSize := v.Size(); n < int64(expectedSize) {
		return fmt.Errorf("%w: expected %d bytes, but read %d", ErrTruncated, expectedSize, n)
	}
	if rest := r.Available(); rest > 0 {
		return fmt.Errorf("%w: %d bytes after the element", ErrTrailingData, rest)
	}
	return nil
}

// MarshalToGeneric implements MarshalTo on top of Size and WriteTo.
func MarshalToGeneric[T interface {
	Size() int
	io.WriterTo
}](v T, p []byte) (int, error) {
	size := v.Size()
	if len(p) < size {
		return 0, io.ErrShortWrite
	}
	w := NewBytesWriter(p)
	n, err := v.WriteTo(w)
	if err != nil {
		return int(n), err
	}
	if n < int64(size) {
		return int(n), io.ErrShortWrite
	}
	return int(n), nil
}
