package ttlv

import "io"

// BytesReader reads from a byte slice without copying it.
type BytesReader struct {
	B []byte // source slice
	N int    // current read position
}

func NewBytesReader(b []byte) *BytesReader {
	return &BytesReader{B: b}
}

// Read implements [io.Reader].
func (r *BytesReader) Read(p []byte) (int, error) {
	if r.N >= len(r.B) {
		if len(p) == 0 {
			return 0, nil
		}
		return 0, io.EOF
	}
	n := copy(p, r.B[r.N:])
	r.N += n
	return n, nil
}

// ReadByte implements [io.ByteReader].
func (r *BytesReader) ReadByte() (byte, error) {
	if r.N >= len(r.B) {
		return 0, io.EOF
	}
	b := r.B[r.N]
	r.N++
	return b, nil
}

// Next returns the next n bytes without copying and advances past them.
func (r *BytesReader) Next(n int) ([]byte, error) {
	if n > r.Available() {
		return nil, io.ErrUnexpectedEOF
	}
	b := r.B[r.N : r.N+n]
	r.N += n
	return b, nil
}

func (r *BytesReader) Reset() { r.N = 0 }

// Len returns the number of bytes read.
func (r *BytesReader) Len() int { return r.N }

// Size returns the size of the source slice.
func (r *BytesReader) Size() int { return len(r.B) }

// Available returns the number of unread bytes.
func (r *BytesReader) Available() int {
	if n := len(r.B) - r.N; n > 0 {
		return n
	}
	return 0
}
