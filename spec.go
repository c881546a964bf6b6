package ttlv

import (
	"fmt"
	"strings"
)

// Spec is a KMIP protocol version.
//
// UnknownVersion is the zero value and stands for "no version negotiated yet".
// UnsupportedVersion marks a version the codec cannot speak. Neither sentinel is
// ever a key in the dispatch registry.
type Spec uint8

const (
	UnknownVersion Spec = iota
	V1_2
	V2_1
	V3_0
	UnsupportedVersion
)

var specVersions = [...]struct{ major, minor int }{
	UnknownVersion:     {-1, -1},
	V1_2:               {1, 2},
	V2_1:               {2, 1},
	V3_0:               {3, 0},
	UnsupportedVersion: {-1, -1},
}

// Specs lists the concrete protocol versions.
var Specs = [...]Spec{V1_2, V2_1, V3_0}

func (s Spec) valid() bool { return s <= UnsupportedVersion }

// IsSentinel reports whether s is UnknownVersion or UnsupportedVersion.
func (s Spec) IsSentinel() bool { return s == UnknownVersion || s >= UnsupportedVersion }

func (s Spec) Major() int {
	if !s.valid() {
		return -1
	}
	return specVersions[s].major
}

func (s Spec) Minor() int {
	if !s.valid() {
		return -1
	}
	return specVersions[s].minor
}

func (s Spec) String() string {
	if s == UnsupportedVersion {
		return "Unsupported"
	}
	return fmt.Sprintf("V%d.%d", s.Major(), s.Minor())
}

// SpecFromVersion maps a protocol version number pair to a Spec.
// (-1, -1) maps to UnknownVersion.
func SpecFromVersion(major, minor int) (Spec, error) {
	for s := UnknownVersion; s < UnsupportedVersion; s++ {
		if specVersions[s].major == major && specVersions[s].minor == minor {
			return s, nil
		}
	}
	return UnsupportedVersion, fmt.Errorf("%w: %d.%d", ErrUnknownSpec, major, minor)
}

// ParseSpec parses the String form of a Spec ("V1.2"). Surrounding whitespace
// and a missing "V" prefix are tolerated.
func ParseSpec(str string) (Spec, error) {
	v := strings.TrimPrefix(strings.TrimSpace(str), "V")
	if v == "" {
		return UnknownVersion, nil
	}
	var major, minor int
	if _, err := fmt.Sscanf(v, "%d.%d", &major, &minor); err != nil {
		return UnsupportedVersion, fmt.Errorf("%w: %q", ErrUnknownSpec, str)
	}
	return SpecFromVersion(major, minor)
}

// SpecSet is a set of Specs.
type SpecSet uint8

// allSpecs is the support set of tags defined in every version.
var allSpecs = NewSpecSet(UnknownVersion, V1_2, V2_1, V3_0)

// NewSpecSet builds a set from specs. UnsupportedVersion is never a member.
func NewSpecSet(specs ...Spec) SpecSet {
	var ss SpecSet
	for _, s := range specs {
		if s < UnsupportedVersion {
			ss |= 1 << s
		}
	}
	return ss
}

// Has reports whether s is a member.
func (ss SpecSet) Has(s Spec) bool { return s < UnsupportedVersion && ss&(1<<s) != 0 }

// Specs returns the members in ascending order.
func (ss SpecSet) Specs() []Spec {
	var out []Spec
	for s := UnknownVersion; s < UnsupportedVersion; s++ {
		if ss.Has(s) {
			out = append(out, s)
		}
	}
	return out
}

func (ss SpecSet) String() string {
	parts := make([]string, 0, 4)
	for _, s := range ss.Specs() {
		parts = append(parts, s.String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
