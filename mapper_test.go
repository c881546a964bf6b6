package ttlv

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Test domain ---

func mustCustomTag(value uint32, name string, specs ...Spec) Tag {
	t, err := NewCustomTag(value, name, specs...)
	if err != nil {
		panic(err)
	}
	return t
}

var (
	flagTag = mustCustomTag(0x7F0001, "TestFlag", UnknownVersion, V1_2)
	blobTag = mustCustomTag(0x7F0002, "TestBlob")
	pairTag = mustCustomTag(0x7F0003, "TestPair")
)

const (
	flagID TypeID = "test.Flag"
	blobID TypeID = "test.Blob"
	pairID TypeID = "test.Pair"
)

// testFlag is a vendor enumeration defined only up to V1_2.
type testFlag uint32

func (testFlag) TypeID() TypeID                  { return flagID }
func (testFlag) Tag() Tag                        { return flagTag }
func (testFlag) EncodingType() EncodingType      { return Enumeration }
func (testFlag) IsSupportedFor(spec Spec) bool   { return flagTag.IsSupportedFor(spec) }

type testBlob []byte

func (testBlob) TypeID() TypeID                { return blobID }
func (testBlob) Tag() Tag                      { return blobTag }
func (testBlob) EncodingType() EncodingType    { return ByteString }
func (testBlob) IsSupportedFor(spec Spec) bool { return blobTag.IsSupportedFor(spec) }

type testPair struct {
	Flag *testFlag
	Blob testBlob
}

func (testPair) TypeID() TypeID              { return pairID }
func (testPair) Tag() Tag                    { return pairTag }
func (testPair) EncodingType() EncodingType  { return Structure }
func (testPair) IsSupportedFor(Spec) bool    { return true }

func (p testPair) Values() []DataType {
	var values []DataType
	if p.Flag != nil {
		values = append(values, *p.Flag)
	}
	return append(values, p.Blob)
}

func testModule() *Module {
	mod := NewModule("test")
	mod.AddCustomTag(flagTag).AddCustomTag(blobTag).AddCustomTag(pairTag)
	RegisterScalar(mod, Scalar[testFlag, uint32]{
		Codec: EnumerationCodec,
		Get:   func(f testFlag) uint32 { return uint32(f) },
		New:   func(v uint32) testFlag { return testFlag(v) },
		Validate: func(f testFlag, _ Spec) error {
			if f > 100 {
				return fmt.Errorf("%w: flag %d", ErrInvalidValue, f)
			}
			return nil
		},
	})
	RegisterScalar(mod, Scalar[testBlob, []byte]{
		Codec: ByteStringCodec,
		Get:   func(b testBlob) []byte { return []byte(b) },
		New:   func(b []byte) testBlob { return testBlob(b) },
	})
	RegisterStruct(mod, Struct[testPair]{
		Fields: []Field[testPair]{
			{
				Name: "Flag", Tag: flagTag, Type: flagID,
				Specs: NewSpecSet(UnknownVersion, V1_2),
				Set:   func(p *testPair, v DataType) error { return AssignPtr(&p.Flag, v) },
			},
			{
				Name: "Blob", Tag: blobTag, Type: blobID, Required: true,
				Set: func(p *testPair, v DataType) error { return Assign(&p.Blob, v) },
			},
		},
	})
	return mod
}

func newTestMapper(opts ...Option) *Mapper {
	return NewMapper(append([]Option{WithModules(testModule())}, opts...)...)
}

func flagPtr(v testFlag) *testFlag { return &v }

// --- Tests ---

func TestMapperRoundTrip(t *testing.T) {
	m := newTestMapper()

	tests := []struct {
		name string
		spec Spec
		v    DataType
	}{
		{"FlagV12", V1_2, testFlag(7)},
		{"BlobV21", V2_1, testBlob{1, 2, 3}},
		{"PairV12", V1_2, testPair{Flag: flagPtr(3), Blob: testBlob("payload")}},
		{"PairV30", V3_0, testPair{Blob: testBlob("x")}},
		{"PairUnknown", UnknownVersion, testPair{Flag: flagPtr(1), Blob: testBlob("y")}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			vc := NewVersionContext(tc.spec)
			data, err := m.Marshal(vc, tc.v)
			require.NoError(t, err)
			require.Zero(t, len(data)%Alignment)
			assert.Zero(t, vc.Depth())

			got, err := m.Unmarshal(vc, data, tc.v.TypeID())
			require.NoError(t, err)
			assert.Equal(t, tc.v, got)
		})
	}
}

func TestMapperStructureLayout(t *testing.T) {
	m := newTestMapper()
	data, err := m.Marshal(NewVersionContext(V1_2), testPair{Flag: flagPtr(1), Blob: testBlob{0xAA}})
	require.NoError(t, err)

	want := Encode(NewRecord(pairTag, Structure, EncodeMany(
		NewRecord(flagTag, Enumeration, []byte{0, 0, 0, 1}),
		NewRecord(blobTag, ByteString, []byte{0xAA}),
	)))
	assert.Equal(t, want, data)
	assert.Len(t, data, 8+16+16)
}

func TestMapperVersionGating(t *testing.T) {
	m := newTestMapper()

	t.Run("UnsupportedVersion", func(t *testing.T) {
		data, err := m.Marshal(NewVersionContext(UnsupportedVersion), testBlob{1})
		require.ErrorIs(t, err, ErrUnsupportedSpec)
		assert.Nil(t, data)

		var ue *UnsupportedError
		require.True(t, errors.As(err, &ue))
		assert.Equal(t, blobTag, ue.Tag)
		assert.Equal(t, UnsupportedVersion, ue.Spec)
		assert.Contains(t, err.Error(), "TestBlob")
	})

	t.Run("NestedFieldNoPartialOutput", func(t *testing.T) {
		data, err := m.Marshal(NewVersionContext(V2_1), testPair{Flag: flagPtr(1), Blob: testBlob{1}})
		require.ErrorIs(t, err, ErrUnsupportedSpec)
		assert.Nil(t, data)

		var fe *FieldError
		require.True(t, errors.As(err, &fe))
		assert.Equal(t, []string{"TestFlag"}, fe.Path)
	})

	t.Run("DecodedValueChecked", func(t *testing.T) {
		data := Encode(NewRecord(flagTag, Enumeration, []byte{0, 0, 0, 1}))
		_, err := m.Unmarshal(NewVersionContext(V2_1), data, flagID)
		assert.ErrorIs(t, err, ErrUnsupportedSpec)
	})

	t.Run("FieldSpecLimit", func(t *testing.T) {
		data, err := m.Marshal(NewVersionContext(V1_2), testPair{Flag: flagPtr(1), Blob: testBlob{1}})
		require.NoError(t, err)
		_, err = m.Unmarshal(NewVersionContext(V3_0), data, pairID)
		require.ErrorIs(t, err, ErrUnsupportedSpec, "the flag field is limited to V1.2")
		var fe *FieldError
		require.True(t, errors.As(err, &fe))
		assert.Equal(t, []string{"Flag"}, fe.Path)
	})
}

func TestMapperCustomTagDispatch(t *testing.T) {
	m := newTestMapper()
	data := Encode(NewRecord(flagTag, Enumeration, []byte{0, 0, 0, 5}))

	v, err := m.UnmarshalAny(NewVersionContext(V1_2), data)
	require.NoError(t, err)
	assert.Equal(t, testFlag(5), v)

	_, ok := m.Dispatch().Resolve(V2_1, flagTag.Value(), Enumeration.Marker)
	assert.False(t, ok)

	_, err = m.UnmarshalAny(NewVersionContext(V2_1), data)
	assert.ErrorIs(t, err, ErrUnrecognizedField)
	assert.Contains(t, err.Error(), "TestFlag")

	flag, err := UnmarshalAs[testFlag](m, NewVersionContext(V1_2), data)
	require.NoError(t, err)
	assert.Equal(t, testFlag(5), flag)

	tag, ok := m.LookupTag(0x7F0001)
	require.True(t, ok)
	assert.Equal(t, flagTag, tag)
	tag, ok = m.LookupTag(0x420069)
	require.True(t, ok)
	assert.Equal(t, TagProtocolVersion, tag)
}

func TestMapperStructureDecodeErrors(t *testing.T) {
	var logs bytes.Buffer
	m := newTestMapper(WithLogger(zerolog.New(&logs)))
	vc := NewVersionContext(V1_2)

	blob := NewRecord(blobTag, ByteString, []byte{1})
	flag := NewRecord(flagTag, Enumeration, []byte{0, 0, 0, 1})
	pair := func(children ...Record) []byte {
		return Encode(NewRecord(pairTag, Structure, EncodeMany(children...)))
	}

	t.Run("UnrecognizedChild", func(t *testing.T) {
		state := NewRecord(TagState, Enumeration, []byte{0, 0, 0, 1})
		_, err := m.Unmarshal(vc, pair(blob, state), pairID)
		require.ErrorIs(t, err, ErrUnrecognizedField)
		assert.Contains(t, err.Error(), "State")
		assert.Contains(t, logs.String(), "unrecognized field")
		assert.Contains(t, logs.String(), `"level":"warn"`)
	})

	t.Run("MissingRequired", func(t *testing.T) {
		_, err := m.Unmarshal(vc, pair(flag), pairID)
		require.ErrorIs(t, err, ErrMissingField)
		var fe *FieldError
		require.True(t, errors.As(err, &fe))
		assert.Equal(t, []string{"Blob"}, fe.Path)
	})

	t.Run("Duplicate", func(t *testing.T) {
		_, err := m.Unmarshal(vc, pair(blob, blob), pairID)
		assert.ErrorIs(t, err, ErrInvalidValue)
	})

	t.Run("WrongEncoding", func(t *testing.T) {
		data := Encode(NewRecord(flagTag, Integer, []byte{0, 0, 0, 1}))
		_, err := m.Unmarshal(vc, data, flagID)
		assert.ErrorIs(t, err, ErrTypeMismatch)
	})

	t.Run("InvalidChildValue", func(t *testing.T) {
		bad := NewRecord(flagTag, Enumeration, []byte{0, 0, 0, 200})
		_, err := m.Unmarshal(vc, pair(bad, blob), pairID)
		require.ErrorIs(t, err, ErrInvalidValue)
		var fe *FieldError
		require.True(t, errors.As(err, &fe))
		assert.Equal(t, "Flag", fe.Path[0])
	})

	t.Run("TrailingData", func(t *testing.T) {
		data := append(pair(blob), Encode(blob)...)
		_, err := m.Unmarshal(vc, data, pairID)
		assert.ErrorIs(t, err, ErrTrailingData)
	})

	t.Run("Truncated", func(t *testing.T) {
		data := pair(blob)
		_, err := m.Unmarshal(vc, data[:len(data)-8], pairID)
		assert.ErrorIs(t, err, ErrTruncated)
	})

	t.Run("DispatchTypeMismatch", func(t *testing.T) {
		mod := testModule().AddDispatch(V1_2, blobTag, ByteString, "test.Other")
		other := NewMapper(WithModules(mod))
		_, err := other.Unmarshal(vc, pair(blob), pairID)
		assert.ErrorIs(t, err, ErrTypeMismatch)
	})
}

func TestMapperUnknownVersionFallback(t *testing.T) {
	m := newTestMapper()
	data := Encode(NewRecord(pairTag, Structure, EncodeMany(
		NewRecord(flagTag, Enumeration, []byte{0, 0, 0, 2}),
		NewRecord(blobTag, ByteString, []byte("z")),
	)))

	// A nil context starts at the configured default, UnknownVersion.
	got, err := m.Unmarshal(nil, data, pairID)
	require.NoError(t, err)
	assert.Equal(t, testPair{Flag: flagPtr(2), Blob: testBlob("z")}, got)

	_, err = m.UnmarshalAny(nil, data)
	assert.ErrorIs(t, err, ErrUnrecognizedField, "nothing is dispatched under UnknownVersion")
}

func TestMapperRegistryErrors(t *testing.T) {
	empty := NewMapper()

	_, err := empty.Marshal(NewVersionContext(V1_2), testBlob{1})
	assert.ErrorIs(t, err, ErrNoSerializer)
	_, err = empty.Unmarshal(NewVersionContext(V1_2), Encode(NewRecord(blobTag, ByteString, nil)), blobID)
	assert.ErrorIs(t, err, ErrNoDeserializer)
	_, err = empty.Marshal(nil, nil)
	assert.ErrorIs(t, err, ErrInvalidValue)
	_, err = empty.Marshal(nil, testBlob(nil))
	assert.ErrorIs(t, err, ErrInvalidValue)

	m := newTestMapper()
	assert.True(t, m.HasSerializer(pairID))
	assert.True(t, m.HasDeserializer(blobID))
	assert.False(t, m.HasSerializer("test.Nope"))
	assert.ElementsMatch(t, []TypeID{flagID, blobID, pairID}, testModule().TypeIDs())
}

func TestMapperModules(t *testing.T) {
	override := NewModule("override").AddSerializer(blobID, func(_ *Mapper, _ *VersionContext, _ DataType) ([]byte, error) {
		return Encode(NewRecord(blobTag, ByteString, []byte("fixed"))), nil
	})
	m := NewMapper(WithModules(testModule(), override))
	assert.Equal(t, []string{"test", "override"}, m.Modules())

	data, err := m.Marshal(NewVersionContext(V1_2), testBlob("anything"))
	require.NoError(t, err)
	assert.Equal(t, Encode(NewRecord(blobTag, ByteString, []byte("fixed"))), data)

	shared := m.Dispatch()
	m2 := NewMapper(WithDispatch(shared))
	assert.Same(t, shared, m2.Dispatch())
	_, ok := m2.Dispatch().Resolve(V1_2, flagTag.Value(), Enumeration.Marker)
	assert.True(t, ok)
}

func TestMapperMisalignedSerializerPanics(t *testing.T) {
	bad := NewModule("bad").AddSerializer(blobID, func(_ *Mapper, _ *VersionContext, _ DataType) ([]byte, error) {
		return []byte{1, 2, 3}, nil
	})
	m := NewMapper(WithModules(bad))
	assert.Panics(t, func() {
		_, _ = m.Marshal(NewVersionContext(V1_2), testBlob{1})
	})
}

func TestMapperDepthLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxDepth = 1
	m := newTestMapper(WithConfig(cfg))

	_, err := m.Marshal(NewVersionContext(V1_2), testBlob{1})
	require.NoError(t, err)

	_, err = m.Marshal(NewVersionContext(V1_2), testPair{Blob: testBlob{1}})
	assert.ErrorIs(t, err, ErrDepthExceeded)
}

func TestMapperMarshalMany(t *testing.T) {
	m := newTestMapper()
	vc := NewVersionContext(V1_2)
	data, err := m.MarshalMany(vc, testFlag(1), testBlob{2})
	require.NoError(t, err)

	recs, err := DecodeAll(data)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	for i, want := range []DataType{testFlag(1), testBlob{2}} {
		got, err := m.UnmarshalChild(vc, recs[i])
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err = m.MarshalMany(NewVersionContext(V2_1), testBlob{2}, testFlag(1))
	assert.ErrorIs(t, err, ErrUnsupportedSpec)
}

func TestMapperConcurrentUse(t *testing.T) {
	m := newTestMapper()
	specs := []Spec{V1_2, V2_1, V3_0}

	var wg sync.WaitGroup
	for g := 0; g < 12; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			vc := NewVersionContext(specs[g%len(specs)])
			for i := 0; i < 100; i++ {
				v := testPair{Blob: testBlob(fmt.Sprintf("g%d-%d", g, i))}
				data, err := m.Marshal(vc, v)
				if !assert.NoError(t, err) {
					return
				}
				got, err := m.Unmarshal(vc, data, pairID)
				if !assert.NoError(t, err) {
					return
				}
				assert.Equal(t, v, got)
			}
		}(g)
	}
	wg.Wait()
}
