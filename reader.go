package ttlv

import (
	"bufio"
	"bytes"
	"io"
)

// ReaderPro is the buffered source a Reader reads through.
type ReaderPro interface {
	io.Reader
	io.ByteReader
	Size() int
}

// Reader is a buffered reader for TTLV input. It tracks the first error; after
// an error every read is a no-op.
type Reader struct {
	r     ReaderPro
	count int64 // total bytes read
	err   error // first error encountered
}

var _ io.Reader = (*Reader)(nil)

// NewReaderSize creates a Reader with a buffer of at least size bytes. In-memory
// sources are read directly without an extra buffer.
func NewReaderSize(r io.Reader, size int) (*Reader, error) {
	if r == nil {
		return nil, ErrNilIO
	}

	switch src := r.(type) {
	case *Reader:
		if src.r.Size() >= size {
			return &Reader{r: src.r}, nil
		}
	case *bufio.Reader:
		if src.Size() >= size {
			return &Reader{r: src}, nil
		}
		return nil, ErrAlreadyBuffered
	case *BytesReader:
		return &Reader{r: src}, nil
	case *bytes.Reader:
		return &Reader{r: &bytesReaderAdapter{src}}, nil
	case *bytes.Buffer:
		return &Reader{r: &bytesBufferReaderAdapter{src}}, nil
	}

	return &Reader{r: bufio.NewReaderSize(r, size)}, nil
}

// NewReader creates a Reader with the default buffer size.
func NewReader(r io.Reader) (*Reader, error) {
	return NewReaderSize(r, 0)
}

// Read implements io.Reader.
func (r *Reader) Read(p []byte) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	n, err := r.r.Read(p)
	r.count += int64(n)
	r.setError(err)
	return n, r.err
}

func (r *Reader) Count() int64 { return r.count }
func (r *Reader) Err() error   { return r.err }

func (r *Reader) setError(err error) {
	if r.err == nil && err != nil {
		r.err = err
	}
}

// readFull reads exactly n bytes. A short read is reported as io.ErrUnexpectedEOF.
// Values above BUFFER_SIZE grow with the bytes actually read, so a declared
// length alone never sizes an allocation.
func (r *Reader) readFull(n int) []byte {
	if r.err != nil {
		return nil
	}
	if n <= BUFFER_SIZE {
		buf := make([]byte, n)
		if _, err := io.ReadFull(r, buf); err != nil {
			r.fail(err)
			return nil
		}
		return buf
	}
	var buf bytes.Buffer
	if _, err := io.CopyN(&buf, r, int64(n)); err != nil {
		r.fail(err)
		return nil
	}
	return buf.Bytes()
}

func (r *Reader) fail(err error) {
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	r.err = err
}

// ReadBytes reads n bytes into a new slice.
func (r *Reader) ReadBytes(n int) []byte {
	if n <= 0 {
		return nil
	}
	return r.readFull(n)
}

// ReadBytesTo fills dest.
func (r *Reader) ReadBytesTo(dest []byte) {
	if r.err != nil || len(dest) == 0 {
		return
	}
	if _, err := io.ReadFull(r, dest); err != nil {
		r.fail(err)
	}
}

func (r *Reader) ReadUint8(dest *uint8) {
	if r.err != nil {
		return
	}
	b, err := r.r.ReadByte()
	if err == nil {
		r.count++
		*dest = b
	} else {
		r.err = err
	}
}

func (r *Reader) ReadUint32(dest *uint32) {
	buf := r.readFull(4)
	if r.err == nil {
		*dest = Order.Uint32(buf)
	}
}

// Align reads and returns the bytes up to the next multiple of n.
func (r *Reader) Align(n int) []byte {
	if n <= 1 {
		return nil
	}
	return r.ReadBytes(int(Roundup(r.count, int64(n)) - r.count))
}
