package ttlv

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNilIO indicates that NewReader/NewWriter was called with an nil interface
	ErrNilIO = errors.New("ttlv: NewReader/NewWriter called with a nil io.Reader/io.Writer")

	// ErrAlreadyBuffered indicates that NewReader/NewWriter was called with an already-buffered
	// reader/writer, which would lead to unpredictable behavior.
	ErrAlreadyBuffered = errors.New("ttlv: reader or writer is already buffered")

	// ErrTruncated indicates the input ended before a complete header, value or padding.
	ErrTruncated = errors.New("ttlv: truncated data")

	// ErrTrailingData is returned when non-zero bytes are found where only padding may appear.
	ErrTrailingData = errors.New("ttlv: non-zero trailing data found after decoding")

	// ErrInvalidTag indicates a raw tag that is not exactly 3 bytes, or an illegal custom tag.
	ErrInvalidTag = errors.New("ttlv: invalid tag")

	// ErrReservedTag indicates a custom tag inside the standard 0x42xxxx block.
	ErrReservedTag = errors.New("ttlv: tag value is reserved for standard tags")

	// ErrUnknownTag indicates a lookup miss in the standard tag table.
	ErrUnknownTag = errors.New("ttlv: unknown tag")

	// ErrInvalidEncoding indicates an unknown encoding-type marker.
	ErrInvalidEncoding = errors.New("ttlv: invalid encoding type")

	// ErrLengthMismatch indicates a declared length that differs from the value length.
	ErrLengthMismatch = errors.New("ttlv: declared length does not match value length")

	// ErrValueTooLarge indicates a declared length above the configured limit.
	ErrValueTooLarge = errors.New("ttlv: value exceeds maximum length")

	// ErrInvalidValue indicates a value whose bytes cannot represent its encoding type.
	ErrInvalidValue = errors.New("ttlv: invalid value")

	// ErrTypeMismatch indicates a record whose tag or encoding differs from the expected one.
	ErrTypeMismatch = errors.New("ttlv: type mismatch")

	// ErrUnsupportedSpec indicates a value or tag that is not defined for the active protocol version.
	ErrUnsupportedSpec = errors.New("ttlv: not supported for protocol version")

	// ErrUnknownSpec indicates a protocol version with no corresponding Spec.
	ErrUnknownSpec = errors.New("ttlv: unknown protocol version")

	// ErrUnrecognizedField indicates a structure child that cannot be mapped to a field.
	ErrUnrecognizedField = errors.New("ttlv: unrecognized field")

	// ErrMissingField indicates a required structure child that was absent.
	ErrMissingField = errors.New("ttlv: missing required field")

	// ErrNoSerializer indicates Marshal was called for a type with no registered serializer.
	ErrNoSerializer = errors.New("ttlv: no serializer registered")

	// ErrNoDeserializer indicates Unmarshal was called for a type with no registered deserializer.
	ErrNoDeserializer = errors.New("ttlv: no deserializer registered")

	// ErrDepthExceeded indicates structure nesting deeper than the configured limit.
	ErrDepthExceeded = errors.New("ttlv: maximum nesting depth exceeded")

	// ErrMisaligned indicates an encoder produced output that is not a multiple of 8 bytes.
	ErrMisaligned = errors.New("ttlv: encoded length is not 8-byte aligned")

	// ErrInvalidConfig indicates a configuration that failed validation.
	ErrInvalidConfig = errors.New("ttlv: invalid config")
)

// UnsupportedError reports a value rejected because its tag is not defined for a protocol version.
type UnsupportedError struct {
	Tag  Tag
	Spec Spec
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("ttlv: %s (%s) is not supported for %s", e.Tag.Description(), e.Tag.Hex(), e.Spec)
}

func (e *UnsupportedError) Is(target error) bool { return target == ErrUnsupportedSpec }

// FieldError locates a failure inside nested structures.
type FieldError struct {
	Path []string
	Err  error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%v (at %s)", e.Err, strings.Join(e.Path, "."))
}

func (e *FieldError) Unwrap() error { return e.Err }

// WithField prefixes err's path with name, creating a FieldError if needed.
func WithField(name string, err error) error {
	if err == nil {
		return nil
	}
	// Only a bare FieldError is extended; wrapped ones keep their context.
	if fe, ok := err.(*FieldError); ok {
		return &FieldError{Path: append([]string{name}, fe.Path...), Err: fe.Err}
	}
	return &FieldError{Path: []string{name}, Err: err}
}
