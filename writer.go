package ttlv

import (
	"bufio"
	"bytes"
	"io"
)

// WriterPro is the buffered sink a Writer writes through.
type WriterPro interface {
	io.Writer
	io.ByteWriter
	Size() int
	Flush() error
}

// Writer is a buffered writer for TTLV output. It tracks the first error; after
// an error every write is a no-op.
type Writer struct {
	w     WriterPro
	count int64 // total bytes written
	err   error // first error encountered
	depth int
}

var _ io.Writer = (*Writer)(nil)

// NewWriterSize creates a Writer with a buffer of at least size bytes.
// It refuses to wrap a bufio.Writer smaller than size.
func NewWriterSize(w io.Writer, size int) (*Writer, error) {
	if w == nil {
		return nil, ErrNilIO
	}

	switch bw := w.(type) {
	case *Writer:
		if bw.w.Size() >= size {
			return &Writer{w: bw.w, depth: bw.depth + 1}, nil
		}
	case *bufio.Writer:
		if bw.Size() >= size {
			// Owned by the caller; only they flush it.
			return &Writer{w: bw, depth: 1}, nil
		}
		return nil, ErrAlreadyBuffered
	case *BytesWriter:
		return &Writer{w: bw}, nil
	case *bytes.Buffer:
		return &Writer{w: &bytesBufferWriterAdapter{bw}}, nil
	}

	return &Writer{w: bufio.NewWriterSize(w, size)}, nil
}

// NewWriter creates a Writer with the default buffer size.
func NewWriter(w io.Writer) (*Writer, error) {
	return NewWriterSize(w, 0)
}

// Write implements io.Writer.
func (w *Writer) Write(buf []byte) (int, error) {
	if buf == nil || w.err != nil {
		return 0, w.err
	}
	n, err := w.w.Write(buf)
	w.count += int64(n)
	w.setError(err)
	return n, w.err
}

func (w *Writer) Count() int64 { return w.count }
func (w *Writer) Err() error   { return w.err }

func (w *Writer) setError(err error) {
	if w.err == nil && err != nil {
		w.err = err
	}
}

// Result flushes and returns the byte count and the first error.
func (w *Writer) Result() (int64, error) {
	w.Flush()
	return w.count, w.err
}

// Flush writes buffered data to the underlying io.Writer. Nested writers leave
// flushing to the outermost one.
func (w *Writer) Flush() error {
	if w.depth > 0 || w.err != nil {
		return w.err
	}
	err := w.w.Flush()
	w.setError(err)
	return err
}

// WriteFrom copies the output of wt.
func (w *Writer) WriteFrom(wt io.WriterTo) {
	if wt == nil || w.err != nil {
		return
	}
	n, err := wt.WriteTo(w.w)
	w.count += n
	w.setError(err)
}

func (w *Writer) WriteBytes(buf []byte) {
	if len(buf) == 0 || w.err != nil {
		return
	}
	_, _ = w.Write(buf)
}

// WriteZeros writes n zero bytes.
func (w *Writer) WriteZeros(n int64) {
	if w.err != nil || n <= 0 {
		return
	}
	for n > 0 {
		chunk := min(n, BUFFER_SIZE)
		if _, err := w.Write(empty[:chunk]); err != nil {
			return
		}
		n -= chunk
	}
}

// Align pads with zeros until the byte count is a multiple of n.
func (w *Writer) Align(n int) {
	if n > 1 {
		w.WriteZeros(Roundup(w.count, int64(n)) - w.count)
	}
}

func (w *Writer) WriteUint8(v uint8) {
	if w.err != nil {
		return
	}
	err := w.w.WriteByte(v)
	if err == nil {
		w.count++
	} else {
		w.err = err
	}
}

func (w *Writer) WriteUint32(v uint32) {
	if w.err != nil {
		return
	}
	var buf [4]byte
	Order.PutUint32(buf[:], v)
	_, _ = w.Write(buf[:])
}
