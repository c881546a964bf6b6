package ttlv

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// --- Helpers ---

// protocolVersionV12 is ProtocolVersion{Major: 1, Minor: 2} on the wire.
var protocolVersionV12 = []byte{
	0x42, 0x00, 0x69, 0x01, 0x00, 0x00, 0x00, 0x20,
	0x42, 0x00, 0x6A, 0x02, 0x00, 0x00, 0x00, 0x04,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00,
	0x42, 0x00, 0x6B, 0x02, 0x00, 0x00, 0x00, 0x04,
	0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00, 0x00,
}

func intRecord(tag Tag, v int32) Record {
	b, _ := IntegerCodec.Encode(v)
	return NewRecord(tag, Integer, b)
}

func textRecord(tag Tag, s string) Record {
	return NewRecord(tag, TextString, []byte(s))
}

// plainWriter hides bytes.Buffer from the Writer type switch so it gets buffered.
type plainWriter struct {
	buf bytes.Buffer
}

func (p *plainWriter) Write(b []byte) (int, error) { return p.buf.Write(b) }

// --- Record codec ---

func TestEncodeStructureOfIntegers(t *testing.T) {
	major := intRecord(TagProtocolVersionMajor, 1)
	minor := intRecord(TagProtocolVersionMinor, 2)
	parent := NewRecord(TagProtocolVersion, Structure, EncodeMany(major, minor))

	assert.Len(t, Encode(major), 16)
	assert.Equal(t, 32, parent.Length())
	assert.Equal(t, protocolVersionV12, Encode(parent))
}

func TestPaddingInvariant(t *testing.T) {
	for l := 0; l <= 64; l++ {
		rec := NewRecord(TagNameValue, ByteString, bytes.Repeat([]byte{0xAB}, l))
		enc := Encode(rec)

		require.Zero(t, len(enc)%8, "length %d", l)
		pad := len(enc) - (HeaderSize + l)
		require.GreaterOrEqual(t, pad, 0)
		require.LessOrEqual(t, pad, 7)
		require.Equal(t, pad, PaddingLength(l))
		require.Equal(t, len(enc), rec.Size())
		require.NoError(t, CheckBufferNotZeros(enc[HeaderSize+l:]))

		got, n, err := Decode(enc)
		require.NoError(t, err)
		require.Equal(t, len(enc), n)
		require.True(t, got.Equal(rec))
	}
}

func TestEmptyValueEncodesToHeaderOnly(t *testing.T) {
	enc := Encode(NewRecord(TagRequestPayload, Structure, nil))
	assert.Equal(t, []byte{0x42, 0x00, 0x79, 0x01, 0x00, 0x00, 0x00, 0x00}, enc)
}

func TestEncodeMany(t *testing.T) {
	a := textRecord(TagNameValue, "a")
	b := intRecord(TagBatchCount, 3)
	out := EncodeMany(a, b)

	assert.Equal(t, append(Encode(a), Encode(b)...), out)
	assert.Empty(t, EncodeMany())
}

func TestDecode(t *testing.T) {
	t.Run("ConsumesPadding", func(t *testing.T) {
		data := append(Encode(textRecord(TagNameValue, "hello")), Encode(intRecord(TagBatchCount, 1))...)
		rec, n, err := Decode(data)
		require.NoError(t, err)
		assert.Equal(t, 16, n)
		assert.Equal(t, []byte("hello"), rec.Value())
		assert.Equal(t, TextString.Marker, rec.Type())
	})

	t.Run("ShortHeader", func(t *testing.T) {
		_, _, err := Decode([]byte{0x42, 0x00, 0x69, 0x01})
		assert.ErrorIs(t, err, ErrTruncated)
	})

	t.Run("DeclaredLengthPastEnd", func(t *testing.T) {
		data := []byte{0x42, 0x00, 0x55, 0x07, 0x00, 0x00, 0x00, 0x0A, 'a', 'b', 'c', 'd', 'e', 'f'}
		rec, n, err := Decode(data)
		assert.ErrorIs(t, err, ErrTruncated)
		assert.Zero(t, n)
		assert.Zero(t, rec.Length())
	})

	t.Run("MissingPadding", func(t *testing.T) {
		enc := Encode(textRecord(TagNameValue, "abc"))
		_, _, err := Decode(enc[:len(enc)-1])
		assert.ErrorIs(t, err, ErrTruncated)
	})

	t.Run("StrictPadding", func(t *testing.T) {
		enc := Encode(textRecord(TagNameValue, "abc"))
		enc[len(enc)-1] = 0xFF

		_, _, err := Decode(enc)
		require.NoError(t, err)

		_, _, err = DecodeOptions{StrictPadding: true}.Decode(enc)
		assert.ErrorIs(t, err, ErrTrailingData)
	})

	t.Run("MaxValueLength", func(t *testing.T) {
		enc := Encode(textRecord(TagNameValue, "abcde"))
		_, _, err := DecodeOptions{MaxValueLength: 4}.Decode(enc)
		assert.ErrorIs(t, err, ErrValueTooLarge)

		_, _, err = DecodeOptions{MaxValueLength: 5}.Decode(enc)
		assert.NoError(t, err)
	})

	t.Run("DoesNotAliasInput", func(t *testing.T) {
		enc := Encode(textRecord(TagNameValue, "abc"))
		rec, _, err := Decode(enc)
		require.NoError(t, err)
		enc[HeaderSize] = 'x'
		assert.Equal(t, []byte("abc"), rec.Value())
	})
}

func TestDecodeAll(t *testing.T) {
	a := textRecord(TagNameValue, "a")
	b := intRecord(TagBatchCount, 7)

	recs, err := DecodeAll(EncodeMany(a, b))
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.True(t, recs[0].Equal(a))
	assert.True(t, recs[1].Equal(b))

	recs, err = DecodeAll(nil)
	require.NoError(t, err)
	assert.Empty(t, recs)

	data := EncodeMany(a, b)
	_, err = DecodeAll(data[:len(data)-2])
	require.ErrorIs(t, err, ErrTruncated)
	assert.Contains(t, err.Error(), "offset 16")
}

// --- Record ---

func TestRecordConstruction(t *testing.T) {
	t.Run("LengthMustMatch", func(t *testing.T) {
		_, err := NewRecordWithLength([]byte{0x42, 0x00, 0x55}, TextString.Marker, 5, []byte("abc"))
		assert.ErrorIs(t, err, ErrLengthMismatch)

		rec, err := NewRecordWithLength([]byte{0x42, 0x00, 0x55}, TextString.Marker, 3, []byte("abc"))
		require.NoError(t, err)
		assert.Equal(t, 3, rec.Length())
	})

	t.Run("LengthInferred", func(t *testing.T) {
		rec, err := RecordFromBytes([]byte{0x42, 0x00, 0x55}, TextString.Marker, []byte("abcd"))
		require.NoError(t, err)
		assert.Equal(t, 4, rec.Length())
		assert.Equal(t, TagNameValue.Value(), rec.TagValue())
	})

	t.Run("TagMustBeThreeBytes", func(t *testing.T) {
		_, err := RecordFromBytes([]byte{0x42, 0x00}, TextString.Marker, nil)
		assert.ErrorIs(t, err, ErrInvalidTag)
		_, err = RecordFromBytes([]byte{0x42, 0x00, 0x55, 0x00}, TextString.Marker, nil)
		assert.ErrorIs(t, err, ErrInvalidTag)
	})

	t.Run("ValueIsCopied", func(t *testing.T) {
		value := []byte("abc")
		rec := NewRecord(TagNameValue, TextString, value)
		value[0] = 'x'
		got := rec.Value()
		got[1] = 'y'
		assert.Equal(t, []byte("abc"), rec.Value())
	})
}

func TestRecordAccessors(t *testing.T) {
	rec := intRecord(TagProtocolVersionMajor, 1)

	assert.Equal(t, [3]byte{0x42, 0x00, 0x6A}, rec.Tag())
	et, ok := rec.EncodingType()
	require.True(t, ok)
	assert.Equal(t, Integer, et)
	assert.True(t, rec.Is(TagProtocolVersionMajor, Integer))
	assert.False(t, rec.Is(TagProtocolVersionMinor, Integer))
	assert.False(t, rec.IsStructure())
	assert.Equal(t, "42006a02000000040000000100000000", rec.Hex())
	assert.Equal(t, "ProtocolVersionMajor Integer 4", rec.String())

	assert.True(t, rec.Equal(intRecord(TagProtocolVersionMajor, 1)))
	assert.False(t, rec.Equal(intRecord(TagProtocolVersionMajor, 2)))
	assert.False(t, rec.Equal(NewRecord(TagProtocolVersionMajor, Enumeration, rec.Value())))
}

func TestRecordChildren(t *testing.T) {
	parent, _, err := Decode(protocolVersionV12)
	require.NoError(t, err)

	children, err := parent.Children()
	require.NoError(t, err)
	require.Len(t, children, 2)
	assert.True(t, children[0].Equal(intRecord(TagProtocolVersionMajor, 1)))
	assert.True(t, children[1].Equal(intRecord(TagProtocolVersionMinor, 2)))

	_, err = children[0].Children()
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

// nestedStructures is depth empty structures, each holding the next.
func nestedStructures(depth int) []byte {
	data := make([]byte, 0, depth*HeaderSize)
	for i := 0; i < depth; i++ {
		data = append(data, 0x42, 0x00, 0x79, Structure.Marker)
		data = binary.BigEndian.AppendUint32(data, uint32((depth-1-i)*HeaderSize))
	}
	return data
}

// allocated reports the bytes allocated while fn runs.
func allocated(fn func()) uint64 {
	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	fn()
	runtime.ReadMemStats(&after)
	return after.TotalAlloc - before.TotalAlloc
}

func TestRecordChildrenDeep(t *testing.T) {
	const depth = 4000
	rec, _, err := Decode(nestedStructures(depth))
	require.NoError(t, err)

	levels := 1
	alloc := allocated(func() {
		for rec.Length() > 0 {
			children, cerr := rec.Children()
			require.NoError(t, cerr)
			require.Len(t, children, 1)
			rec = children[0]
			levels++
		}
	})
	assert.Equal(t, depth, levels)
	assert.Less(t, alloc, uint64(4<<20), "children share the parent value")
}

func TestRecordBinaryCodec(t *testing.T) {
	rec := textRecord(TagNameValue, "hello")

	data, err := rec.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, Encode(rec), data)

	buf := make([]byte, rec.Size())
	n, err := rec.MarshalTo(buf)
	require.NoError(t, err)
	assert.Equal(t, rec.Size(), n)
	assert.Equal(t, data, buf)

	_, err = rec.MarshalTo(make([]byte, rec.Size()-1))
	assert.ErrorIs(t, err, io.ErrShortWrite)

	var got Record
	require.NoError(t, got.UnmarshalBinary(data))
	assert.True(t, got.Equal(rec))

	err = got.UnmarshalBinary(append(data, make([]byte, 8)...))
	assert.ErrorIs(t, err, ErrTrailingData)

	err = got.UnmarshalBinary(data[:len(data)-1])
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestRecordStream(t *testing.T) {
	rec := textRecord(TagNameValue, "stream")

	var buf bytes.Buffer
	n, err := rec.WriteTo(&buf)
	require.NoError(t, err)
	assert.EqualValues(t, rec.Size(), n)
	_, err = rec.WriteTo(&buf)
	require.NoError(t, err)

	var got Record
	n, err = got.ReadFrom(&buf)
	require.NoError(t, err)
	assert.EqualValues(t, rec.Size(), n)
	assert.True(t, got.Equal(rec))
	assert.Equal(t, rec.Size(), buf.Len(), "ReadFrom must not read past the record")

	t.Run("BufferedWriter", func(t *testing.T) {
		w := &plainWriter{}
		_, err := rec.WriteTo(w)
		require.NoError(t, err)
		assert.Equal(t, Encode(rec), w.buf.Bytes())
	})

	t.Run("TruncatedValue", func(t *testing.T) {
		enc := Encode(rec)
		var r Record
		_, err := r.ReadFrom(bytes.NewReader(enc[:HeaderSize+2]))
		assert.ErrorIs(t, err, ErrTruncated)
	})

	t.Run("TruncatedHeader", func(t *testing.T) {
		var r Record
		_, err := r.ReadFrom(bytes.NewReader([]byte{0x42, 0x00}))
		assert.ErrorIs(t, err, ErrTruncated)
	})
}

// --- Encoder / Decoder ---

func TestEncoderDecoder(t *testing.T) {
	a := textRecord(TagNameValue, "first")
	b := intRecord(TagBatchCount, 2)
	c := NewRecord(TagRequestPayload, Structure, nil)

	var buf bytes.Buffer
	enc, err := NewEncoder(&buf)
	require.NoError(t, err)
	for _, rec := range []Record{a, b, c} {
		require.NoError(t, enc.Encode(rec))
	}
	require.NoError(t, enc.Flush())
	assert.Equal(t, EncodeMany(a, b, c), buf.Bytes())
	assert.EqualValues(t, buf.Len(), enc.Count())

	dec, err := NewDecoder(bytes.NewReader(buf.Bytes()), DecodeOptions{StrictPadding: true})
	require.NoError(t, err)
	for _, want := range []Record{a, b, c} {
		got, err := dec.Next()
		require.NoError(t, err)
		assert.True(t, got.Equal(want), "got %s want %s", got, want)
	}
	_, err = dec.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestDecoderErrors(t *testing.T) {
	enc := EncodeMany(textRecord(TagNameValue, "ab"), textRecord(TagNameValue, "abcde"))

	t.Run("TruncatedPadding", func(t *testing.T) {
		dec, err := NewDecoder(bytes.NewReader(enc[:len(enc)-3]), DecodeOptions{})
		require.NoError(t, err)
		_, err = dec.Next()
		require.NoError(t, err)
		_, err = dec.Next()
		assert.ErrorIs(t, err, ErrTruncated)
	})

	t.Run("TruncatedHeader", func(t *testing.T) {
		dec, err := NewDecoder(bytes.NewReader(enc[:5]), DecodeOptions{})
		require.NoError(t, err)
		_, err = dec.Next()
		assert.ErrorIs(t, err, ErrTruncated)
	})

	t.Run("ValueTooLarge", func(t *testing.T) {
		dec, err := NewDecoder(bytes.NewReader(enc), DecodeOptions{MaxValueLength: 2})
		require.NoError(t, err)
		_, err = dec.Next()
		require.NoError(t, err)
		_, err = dec.Next()
		assert.ErrorIs(t, err, ErrValueTooLarge)
	})

	t.Run("HugeDeclaredLength", func(t *testing.T) {
		stream := append([]byte{0x42, 0x00, 0x79, 0x01, 0x40, 0x00, 0x00, 0x00}, 1, 2, 3, 4)
		dec, err := NewDecoder(bytes.NewReader(stream), DecodeOptions{})
		require.NoError(t, err)
		alloc := allocated(func() {
			_, err = dec.Next()
		})
		assert.ErrorIs(t, err, ErrTruncated)
		assert.Less(t, alloc, uint64(16<<20))
	})

	t.Run("NilSource", func(t *testing.T) {
		_, err := NewDecoder(nil, DecodeOptions{})
		assert.ErrorIs(t, err, ErrNilIO)
		_, err = NewEncoder(nil)
		assert.ErrorIs(t, err, ErrNilIO)
	})
}

// --- Writer Test Suite ---

type WriterTestSuite struct {
	suite.Suite
	buf    *bytes.Buffer
	writer *Writer
}

func (s *WriterTestSuite) SetupTest() {
	s.buf = &bytes.Buffer{}
	s.writer, _ = NewWriter(s.buf)
}

func (s *WriterTestSuite) TestConstructors() {
	s.T().Run("NilWriter", func(t *testing.T) {
		_, err := NewWriter(nil)
		assert.ErrorIs(t, err, ErrNilIO)
	})

	s.T().Run("SmallBufioWriter", func(t *testing.T) {
		bw := bufio.NewWriterSize(&bytes.Buffer{}, 16)
		_, err := NewWriterSize(bw, 4096)
		assert.ErrorIs(t, err, ErrAlreadyBuffered)

		w, err := NewWriterSize(bw, 16)
		require.NoError(t, err)
		assert.NotNil(t, w)
	})
}

func (s *WriterTestSuite) TestBasicWrites() {
	hdr := &recordHeader{header{Tag: TagState.Bytes(), Type: Enumeration.Marker, Length: 4}}

	s.writer.WriteUint8(0xAA)
	s.writer.WriteUint32(0xDDEEFF00)
	s.writer.WriteBytes([]byte{5, 6, 7})
	s.writer.WriteZeros(2)
	s.writer.WriteFrom(hdr)

	n, err := s.writer.Result()
	s.Require().NoError(err)
	s.Assert().EqualValues(1+4+3+2+8, n)
	s.Assert().EqualValues(s.buf.Len(), s.writer.Count())

	expected := []byte{
		0xAA,                   // WriteUint8
		0xDD, 0xEE, 0xFF, 0x00, // WriteUint32 (big endian)
		5, 6, 7, // WriteBytes
		0, 0, // WriteZeros
		0x42, 0x00, 0x8D, 0x05, 0x00, 0x00, 0x00, 0x04, // WriteFrom(header)
	}
	s.Assert().Equal(expected, s.buf.Bytes())
}

func (s *WriterTestSuite) TestAlign() {
	s.writer.WriteBytes([]byte{1, 2, 3})
	s.writer.Align(8)
	s.writer.Align(8)
	s.Assert().EqualValues(8, s.writer.Count())
	s.Assert().Equal([]byte{1, 2, 3, 0, 0, 0, 0, 0}, s.buf.Bytes())

	s.writer.WriteZeros(BUFFER_SIZE + 10)
	s.Assert().EqualValues(8+BUFFER_SIZE+10, s.writer.Count())
	s.Assert().NoError(CheckBufferNotZeros(s.buf.Bytes()[3:]))
}

func (s *WriterTestSuite) TestErrorHandling() {
	s.T().Run("ShortBuffer", func(t *testing.T) {
		fixedBuf := make([]byte, 5)
		writer, _ := NewWriter(NewBytesWriter(fixedBuf))

		writer.WriteUint32(0x11223344)
		writer.WriteUint32(0xAABBCCDD)

		_, err := writer.Result()
		require.Error(t, err)
		assert.ErrorIs(t, err, io.ErrShortWrite)
	})

	s.T().Run("WriteAfterErrorIsNoOp", func(t *testing.T) {
		fixedBuf := make([]byte, 5)
		writer, _ := NewWriter(NewBytesWriter(fixedBuf))

		writer.WriteUint32(0x11223344)
		writer.WriteUint32(0xAABBCCDD)

		firstErr := writer.Err()
		require.ErrorIs(t, firstErr, io.ErrShortWrite)

		writer.WriteUint8(0xFF)
		writer.WriteZeros(3)
		writer.Flush()

		assert.Equal(t, firstErr, writer.Err(), "the latched error should not change")
		assert.Equal(t, []byte{0x11, 0x22, 0x33, 0x44, 0xAA}, fixedBuf)
		assert.EqualValues(t, 5, writer.Count())
	})
}

func (s *WriterTestSuite) TestFlush() {
	mock := &plainWriter{}
	writer, err := NewWriterSize(mock, 128)
	s.Require().NoError(err)
	writer.WriteUint8(0xAA)

	s.Assert().Zero(mock.buf.Len(), "data stays buffered until Flush")
	s.Require().NoError(writer.Flush())
	s.Assert().Equal([]byte{0xAA}, mock.buf.Bytes())

	s.T().Run("NestedWriterDefersFlush", func(t *testing.T) {
		inner := &plainWriter{}
		outer, _ := NewWriterSize(inner, 64)
		nested, err := NewWriterSize(outer, 64)
		require.NoError(t, err)

		nested.WriteUint8(0x01)
		require.NoError(t, nested.Flush())
		assert.Zero(t, inner.buf.Len())

		require.NoError(t, outer.Flush())
		assert.Equal(t, []byte{0x01}, inner.buf.Bytes())
	})
}

func TestWriterSuite(t *testing.T) {
	suite.Run(t, new(WriterTestSuite))
}

// --- Reader ---

func TestReader(t *testing.T) {
	data := []byte{0xAA, 0x11, 0x22, 0x33, 0x44, 1, 2, 3, 0, 0, 0, 0, 0, 0, 0, 0}

	sources := map[string]func() io.Reader{
		"BytesReader": func() io.Reader { return NewBytesReader(data) },
		"bytes.Reader": func() io.Reader { return bytes.NewReader(data) },
		"bytes.Buffer": func() io.Reader { return bytes.NewBuffer(bytes.Clone(data)) },
		"bufio":        func() io.Reader { return io.MultiReader(bytes.NewReader(data)) },
	}
	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			r, err := NewReader(src())
			require.NoError(t, err)

			var u8 uint8
			var u32 uint32
			r.ReadUint8(&u8)
			r.ReadUint32(&u32)
			b := r.ReadBytes(3)
			pad := r.Align(8)
			require.NoError(t, r.Err())

			assert.Equal(t, uint8(0xAA), u8)
			assert.Equal(t, uint32(0x11223344), u32)
			assert.Equal(t, []byte{1, 2, 3}, b)
			assert.Empty(t, pad, "already aligned")
			assert.EqualValues(t, 8, r.Count())

			dest := make([]byte, 8)
			r.ReadBytesTo(dest)
			require.NoError(t, r.Err())
			assert.EqualValues(t, 16, r.Count())

			r.ReadUint32(&u32)
			assert.ErrorIs(t, r.Err(), io.ErrUnexpectedEOF)
			assert.Nil(t, r.ReadBytes(1), "reads after an error are no-ops")
		})
	}

	t.Run("NilReader", func(t *testing.T) {
		_, err := NewReader(nil)
		assert.ErrorIs(t, err, ErrNilIO)
	})

	t.Run("SmallBufioReader", func(t *testing.T) {
		br := bufio.NewReaderSize(bytes.NewReader(data), 16)
		_, err := NewReaderSize(br, 4096)
		assert.ErrorIs(t, err, ErrAlreadyBuffered)
	})

	t.Run("AlignReturnsPadding", func(t *testing.T) {
		r, _ := NewReader(NewBytesReader([]byte{9, 0, 0, 0, 0, 0, 0, 0}))
		r.ReadBytes(1)
		assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0}, r.Align(8))
		assert.Nil(t, r.Align(8))
	})
}

func TestBytesReaderNext(t *testing.T) {
	r := NewBytesReader([]byte{1, 2, 3, 4})
	b, err := r.Next(3)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, b)
	assert.Equal(t, 1, r.Available())

	_, err = r.Next(2)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Equal(t, 3, r.Len(), "a failed Next does not advance")

	r.Reset()
	assert.Equal(t, 4, r.Available())
}
