package ttlv

import (
	"fmt"
	"math/big"
	"time"
	"unicode/utf8"
)

// ValueCodec converts between a Go value and the value bytes of one encoding type.
type ValueCodec[V any] struct {
	Type   EncodingType
	Encode func(V) ([]byte, error)
	Decode func([]byte) (V, error)
}

func checkWidth(et EncodingType, b []byte) error {
	if len(b) != et.Width {
		return fmt.Errorf("%w: %s needs %d bytes, got %d", ErrInvalidValue, et, et.Width, len(b))
	}
	return nil
}

var IntegerCodec = ValueCodec[int32]{
	Type: Integer,
	Encode: func(v int32) ([]byte, error) {
		return Order.AppendUint32(nil, uint32(v)), nil
	},
	Decode: func(b []byte) (int32, error) {
		if err := checkWidth(Integer, b); err != nil {
			return 0, err
		}
		return int32(Order.Uint32(b)), nil
	},
}

var LongIntegerCodec = ValueCodec[int64]{
	Type: LongInteger,
	Encode: func(v int64) ([]byte, error) {
		return Order.AppendUint64(nil, uint64(v)), nil
	},
	Decode: func(b []byte) (int64, error) {
		if err := checkWidth(LongInteger, b); err != nil {
			return 0, err
		}
		return int64(Order.Uint64(b)), nil
	},
}

var EnumerationCodec = ValueCodec[uint32]{
	Type: Enumeration,
	Encode: func(v uint32) ([]byte, error) {
		return Order.AppendUint32(nil, v), nil
	},
	Decode: func(b []byte) (uint32, error) {
		if err := checkWidth(Enumeration, b); err != nil {
			return 0, err
		}
		return Order.Uint32(b), nil
	},
}

var IntervalCodec = ValueCodec[uint32]{
	Type:   Interval,
	Encode: EnumerationCodec.Encode,
	Decode: func(b []byte) (uint32, error) {
		if err := checkWidth(Interval, b); err != nil {
			return 0, err
		}
		return Order.Uint32(b), nil
	},
}

var BooleanCodec = ValueCodec[bool]{
	Type: Boolean,
	Encode: func(v bool) ([]byte, error) {
		var n uint64
		if v {
			n = 1
		}
		return Order.AppendUint64(nil, n), nil
	},
	Decode: func(b []byte) (bool, error) {
		if err := checkWidth(Boolean, b); err != nil {
			return false, err
		}
		switch Order.Uint64(b) {
		case 0:
			return false, nil
		case 1:
			return true, nil
		}
		return false, fmt.Errorf("%w: boolean must be 0 or 1", ErrInvalidValue)
	},
}

var TextStringCodec = ValueCodec[string]{
	Type: TextString,
	Encode: func(v string) ([]byte, error) {
		if !utf8.ValidString(v) {
			return nil, fmt.Errorf("%w: text string is not valid UTF-8", ErrInvalidValue)
		}
		return []byte(v), nil
	},
	Decode: func(b []byte) (string, error) {
		if !utf8.Valid(b) {
			return "", fmt.Errorf("%w: text string is not valid UTF-8", ErrInvalidValue)
		}
		return string(b), nil
	},
}

var ByteStringCodec = ValueCodec[[]byte]{
	Type: ByteString,
	Encode: func(v []byte) ([]byte, error) {
		return append([]byte(nil), v...), nil
	},
	Decode: func(b []byte) ([]byte, error) {
		return append([]byte(nil), b...), nil
	},
}

// DateTimeCodec encodes POSIX seconds; sub-second precision is dropped and
// decoded values are in UTC.
var DateTimeCodec = ValueCodec[time.Time]{
	Type: DateTime,
	Encode: func(v time.Time) ([]byte, error) {
		return Order.AppendUint64(nil, uint64(v.Unix())), nil
	},
	Decode: func(b []byte) (time.Time, error) {
		if err := checkWidth(DateTime, b); err != nil {
			return time.Time{}, err
		}
		return time.Unix(int64(Order.Uint64(b)), 0).UTC(), nil
	},
}

// BigIntegerCodec encodes two's complement, sign-extended to a multiple of 8 bytes.
var BigIntegerCodec = ValueCodec[*big.Int]{
	Type:   BigInteger,
	Encode: encodeBigInt,
	Decode: decodeBigInt,
}

func encodeBigInt(v *big.Int) ([]byte, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: nil big integer", ErrInvalidValue)
	}
	// Bytes needed for the magnitude plus a sign bit.
	n := Roundup(v.BitLen()/8+1, Alignment)
	out := make([]byte, n)
	if v.Sign() >= 0 {
		v.FillBytes(out)
		return out, nil
	}
	// Negative: 2^(8n) + v.
	mod := new(big.Int).Lsh(big.NewInt(1), uint(8*n))
	mod.Add(mod, v)
	mod.FillBytes(out)
	return out, nil
}

func decodeBigInt(b []byte) (*big.Int, error) {
	if len(b) == 0 || len(b)%Alignment != 0 {
		return nil, fmt.Errorf("%w: big integer length %d is not a positive multiple of %d", ErrInvalidValue, len(b), Alignment)
	}
	v := new(big.Int).SetBytes(b)
	if b[0]&0x80 != 0 {
		v.Sub(v, new(big.Int).Lsh(big.NewInt(1), uint(8*len(b))))
	}
	return v, nil
}

// NormalizeTime truncates t to the precision DateTime can carry.
func NormalizeTime(t time.Time) time.Time { return t.UTC().Truncate(time.Second) }
