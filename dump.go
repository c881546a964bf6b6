package ttlv

import (
	"encoding/hex"
	"fmt"
	"strings"
)

func tagName(value uint32) string {
	if t, ok := LookupTag(value); ok {
		return t.String()
	}
	return fmt.Sprintf("0x%06X", value)
}

func typeName(marker byte) string {
	if et, ok := EncodingTypeFromMarker(marker); ok {
		return et.Description
	}
	return fmt.Sprintf("0x%02X", marker)
}

// dumpOptions bounds Dump and Describe on untrusted input.
var dumpOptions = DecodeOptions{MaxDepth: DefaultConfig().MaxDepth}

// Dump renders a sequence of elements as an indented tree, one header per line
// as "tag type length" in hex, followed by the value hex for primitives.
// Structures are expanded one tab deeper, up to DefaultConfig().MaxDepth levels.
func Dump(data []byte) (string, error) { return dumpOptions.Dump(data) }

// Describe renders rec with tag names, type descriptions and lengths. Tags are
// named from the standard table; unknown tags print as hex.
func Describe(rec Record) (string, error) { return dumpOptions.Describe(rec) }

// Dump is the package Dump under the limits of o.
func (o DecodeOptions) Dump(data []byte) (string, error) {
	records, err := o.DecodeAll(data)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for i, rec := range records {
		if i > 0 {
			sb.WriteByte('\n')
		}
		if err := o.dumpRecord(&sb, rec, 0); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

func (o DecodeOptions) enterLevel(level int) error {
	if o.MaxDepth > 0 && level >= o.MaxDepth {
		return fmt.Errorf("%w: more than %d levels", ErrDepthExceeded, o.MaxDepth)
	}
	return nil
}

func (o DecodeOptions) dumpRecord(sb *strings.Builder, rec Record, level int) error {
	if err := o.enterLevel(level); err != nil {
		return err
	}
	indent := strings.Repeat("\t", level)
	fmt.Fprintf(sb, "%s%06x %02x %08x", indent, rec.TagValue(), rec.Type(), rec.Length())
	if rec.Length() == 0 {
		return nil
	}
	if !rec.IsStructure() {
		fmt.Fprintf(sb, "\n%s%s", indent, hex.EncodeToString(rec.value))
		return nil
	}
	children, err := o.children(rec.value)
	if err != nil {
		return err
	}
	for _, child := range children {
		sb.WriteByte('\n')
		if err := o.dumpRecord(sb, child, level+1); err != nil {
			return err
		}
	}
	return nil
}

// Describe is the package Describe under the limits of o.
func (o DecodeOptions) Describe(rec Record) (string, error) {
	var sb strings.Builder
	if err := o.describeRecord(&sb, rec, 0); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (o DecodeOptions) describeRecord(sb *strings.Builder, rec Record, level int) error {
	if err := o.enterLevel(level); err != nil {
		return err
	}
	indent := strings.Repeat("\t", level)
	fmt.Fprintf(sb, "%sTag : %s (0x%06X)\n", indent, tagName(rec.TagValue()), rec.TagValue())
	fmt.Fprintf(sb, "%sType : %s\n", indent, typeName(rec.Type()))
	fmt.Fprintf(sb, "%sLength : %d\n", indent, rec.Length())
	switch {
	case rec.Length() == 0:
		fmt.Fprintf(sb, "%sValue : null\n", indent)
	case rec.IsStructure():
		children, err := o.children(rec.value)
		if err != nil {
			return err
		}
		fmt.Fprintf(sb, "%sValue :\n", indent)
		for _, child := range children {
			if err := o.describeRecord(sb, child, level+1); err != nil {
				return err
			}
		}
	default:
		fmt.Fprintf(sb, "%sValue : %s\n", indent, hex.EncodeToString(rec.value))
	}
	return nil
}
