package ttlv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodingTypes(t *testing.T) {
	seen := map[byte]bool{}
	for _, et := range EncodingTypes {
		assert.False(t, seen[et.Marker], "duplicate marker 0x%02X", et.Marker)
		seen[et.Marker] = true

		got, ok := EncodingTypeFromMarker(et.Marker)
		require.True(t, ok)
		assert.Equal(t, et, got)
		assert.True(t, IsValidMarker(et.Marker))

		byDesc, ok := EncodingTypeFromName(et.Description)
		require.True(t, ok)
		assert.Equal(t, et, byDesc)

		variable := et == Structure || et == BigInteger || et == TextString || et == ByteString
		assert.Equal(t, !variable, et.IsFixedLength(), et.Description)
	}

	got, ok := EncodingTypeFromName("TextString")
	require.True(t, ok)
	assert.Equal(t, TextString, got)

	for _, b := range []byte{0x00, 0x0B, 0xFF} {
		_, ok := EncodingTypeFromMarker(b)
		assert.False(t, ok)
		assert.False(t, IsValidMarker(b))
	}
	_, ok = EncodingTypeFromName("Float")
	assert.False(t, ok)

	assert.Equal(t, 4, Integer.Width)
	assert.Equal(t, 8, Boolean.Width)
	assert.Equal(t, Variable, Structure.Width)
	assert.Equal(t, "Date-Time", DateTime.String())
	assert.Equal(t, "Unknown", EncodingType{}.String())
}

func TestSpec(t *testing.T) {
	assert.Equal(t, "V-1.-1", UnknownVersion.String())
	assert.Equal(t, "V1.2", V1_2.String())
	assert.Equal(t, "V3.0", V3_0.String())
	assert.Equal(t, "Unsupported", UnsupportedVersion.String())
	assert.Equal(t, UnknownVersion, Spec(0))
	assert.True(t, UnknownVersion.IsSentinel())
	assert.True(t, UnsupportedVersion.IsSentinel())
	assert.False(t, V2_1.IsSentinel())

	t.Run("FromVersion", func(t *testing.T) {
		s, err := SpecFromVersion(2, 1)
		require.NoError(t, err)
		assert.Equal(t, V2_1, s)

		s, err = SpecFromVersion(-1, -1)
		require.NoError(t, err)
		assert.Equal(t, UnknownVersion, s)

		s, err = SpecFromVersion(1, 4)
		assert.ErrorIs(t, err, ErrUnknownSpec)
		assert.Equal(t, UnsupportedVersion, s)
	})

	t.Run("Parse", func(t *testing.T) {
		tests := map[string]Spec{
			"V1.2":   V1_2,
			" 2.1 ":  V2_1,
			"V3.0":   V3_0,
			"":       UnknownVersion,
			"V-1.-1": UnknownVersion,
		}
		for in, want := range tests {
			got, err := ParseSpec(in)
			require.NoError(t, err, in)
			assert.Equal(t, want, got, in)
		}
		for _, in := range []string{"bogus", "V9.9"} {
			_, err := ParseSpec(in)
			assert.ErrorIs(t, err, ErrUnknownSpec, in)
		}
	})

	t.Run("Set", func(t *testing.T) {
		ss := NewSpecSet(V1_2, V3_0, UnsupportedVersion)
		assert.True(t, ss.Has(V1_2))
		assert.False(t, ss.Has(V2_1))
		assert.False(t, ss.Has(UnsupportedVersion))
		assert.Equal(t, []Spec{V1_2, V3_0}, ss.Specs())
		assert.Equal(t, "{V1.2, V3.0}", ss.String())
		assert.Empty(t, SpecSet(0).Specs())
	})
}

func TestVersionContext(t *testing.T) {
	var nilCtx *VersionContext
	assert.Equal(t, UnknownVersion, nilCtx.Current())
	assert.Zero(t, nilCtx.Depth())

	vc := NewVersionContext(V1_2)
	assert.Equal(t, V1_2, vc.Current())
	vc.Set(V3_0)
	assert.Equal(t, V3_0, vc.Current())
	vc.Clear()
	assert.Equal(t, UnknownVersion, vc.Current())

	require.NoError(t, vc.enter(2))
	require.NoError(t, vc.enter(2))
	assert.ErrorIs(t, vc.enter(2), ErrDepthExceeded)
	assert.Equal(t, 2, vc.Depth())
	vc.leave()
	vc.leave()
	assert.Zero(t, vc.Depth())
	require.NoError(t, vc.enter(0), "zero disables the limit")
}

func TestStandardTags(t *testing.T) {
	assert.Len(t, standardTags, 413)

	tag, ok := LookupTag(0x420069)
	require.True(t, ok)
	assert.Equal(t, TagProtocolVersion, tag)
	assert.Equal(t, "ProtocolVersion", tag.Description())
	assert.Equal(t, "0x420069", tag.Hex())
	assert.Equal(t, [3]byte{0x42, 0x00, 0x69}, tag.Bytes())
	assert.False(t, tag.IsCustom())

	tag, err := LookupTagBytes([]byte{0x42, 0x00, 0x8D})
	require.NoError(t, err)
	assert.Equal(t, TagState, tag)

	_, err = LookupTagBytes([]byte{0x42, 0x00})
	assert.ErrorIs(t, err, ErrInvalidTag)
	_, err = LookupTagBytes([]byte{0x7F, 0x00, 0x01})
	assert.ErrorIs(t, err, ErrUnknownTag)

	tag, ok = LookupTagByName("AttributeValue")
	require.True(t, ok)
	assert.Equal(t, TagAttributeValue, tag)

	assert.True(t, TagAttributeIndex.IsSupportedFor(V1_2))
	assert.False(t, TagAttributeIndex.IsSupportedFor(V2_1))
	for _, s := range []Spec{UnknownVersion, V1_2, V2_1, V3_0} {
		assert.True(t, TagProtocolVersion.IsSupportedFor(s))
	}
	assert.False(t, TagProtocolVersion.IsSupportedFor(UnsupportedVersion))
}

func TestCustomTags(t *testing.T) {
	tag, err := NewCustomTag(0x7F0001, "VendorThing", V1_2)
	require.NoError(t, err)
	assert.True(t, tag.IsCustom())
	assert.Equal(t, uint32(0x7F0001), tag.Value())
	assert.Equal(t, [3]byte{0x7F, 0x00, 0x01}, tag.Bytes())
	assert.Equal(t, "VendorThing", tag.String())
	assert.True(t, tag.IsSupportedFor(V1_2))
	assert.False(t, tag.IsSupportedFor(V2_1))

	all, err := NewCustomTag(0x540000, "Ext")
	require.NoError(t, err)
	assert.Equal(t, allSpecs, all.Specs())

	fromBytes, err := CustomTagFromBytes([]byte{0x7F, 0x00, 0x01}, "VendorThing", V1_2)
	require.NoError(t, err)
	assert.Equal(t, tag, fromBytes)

	_, err = NewCustomTag(0x420001, "Clash")
	assert.ErrorIs(t, err, ErrReservedTag)
	_, err = NewCustomTag(0x1000000, "TooWide")
	assert.ErrorIs(t, err, ErrInvalidTag)
	_, err = NewCustomTag(0x7F0002, "  ")
	assert.ErrorIs(t, err, ErrInvalidTag)
	_, err = CustomTagFromBytes([]byte{0x7F}, "Short")
	assert.ErrorIs(t, err, ErrInvalidTag)

	_, ok := LookupTag(tag.Value())
	assert.False(t, ok, "custom tags stay out of the standard table")
}
