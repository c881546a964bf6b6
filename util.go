package ttlv

import (
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/exp/constraints"
)

// Order is the byte order of every multi-byte field on the wire.
var Order = binary.BigEndian

const (
	// HeaderSize is the tag, type and length prefix of every element.
	HeaderSize = 8
	// Alignment is the boundary every encoded element is padded to.
	Alignment = 8

	BUFFER_SIZE = 4096
)

var empty [BUFFER_SIZE]byte

// Roundup rounds n up to the nearest multiple of align.
func Roundup[T constraints.Integer](n, align T) T { return (n + (align - 1)) &^ (align - 1) }

// PaddingLength returns the number of zero bytes that follow a value of length n.
func PaddingLength[T constraints.Integer](n T) T { return Roundup(HeaderSize+n, Alignment) - HeaderSize - n }

// EncodedSize returns the total wire size of an element with a value of length n.
func EncodedSize[T constraints.Integer](n T) T { return Roundup(HeaderSize+n, Alignment) }

// CheckBufferNotZeros reports ErrTrailingData if b holds any non-zero byte.
func CheckBufferNotZeros(b []byte) error {
	for i, c := range b {
		if c != 0 {
			return fmt.Errorf("%w: found non-zero byte 0x%02x at offset %d", ErrTrailingData, c, i)
		}
	}
	return nil
}

// truncated maps short-read errors from the io layer to ErrTruncated.
func truncated(err error, what string) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return fmt.Errorf("%w: %s", ErrTruncated, what)
	}
	return err
}
