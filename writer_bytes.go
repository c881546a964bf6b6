package ttlv

import "io"

// BytesWriter writes into a pre-allocated slice and never grows it. A write
// past the end stores what fits and returns io.ErrShortWrite.
type BytesWriter struct {
	B []byte // destination slice
	N int    // current write position
}

func NewBytesWriter(p []byte) *BytesWriter {
	return &BytesWriter{B: p[:cap(p)]}
}

func (w *BytesWriter) Write(p []byte) (int, error) {
	if w.N >= len(w.B) && len(p) > 0 {
		return 0, io.ErrShortWrite
	}
	n := copy(w.B[w.N:], p)
	w.N += n
	if n < len(p) {
		return n, io.ErrShortWrite
	}
	return n, nil
}

func (w *BytesWriter) WriteByte(c byte) error {
	if w.N >= len(w.B) {
		return io.ErrShortWrite
	}
	w.B[w.N] = c
	w.N++
	return nil
}

// Flush is a no-op.
func (w *BytesWriter) Flush() error { return nil }

func (w *BytesWriter) Reset() { w.N = 0 }

// Len returns the number of bytes written.
func (w *BytesWriter) Len() int { return w.N }

// Size returns the capacity of the destination.
func (w *BytesWriter) Size() int { return len(w.B) }

func (w *BytesWriter) Available() int { return len(w.B) - w.N }

// Bytes returns the written prefix of the destination.
func (w *BytesWriter) Bytes() []byte { return w.B[:w.N] }
