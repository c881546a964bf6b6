package ttlv

// VersionContext carries the protocol version for one encode or decode call chain.
// It is passed explicitly through the Mapper and its serializers; it is not safe
// for use by multiple goroutines at once.
type VersionContext struct {
	spec  Spec
	depth int
}

// NewVersionContext returns a context set to spec.
func NewVersionContext(spec Spec) *VersionContext {
	return &VersionContext{spec: spec}
}

// Current returns the active spec. A nil or cleared context reports UnknownVersion.
func (vc *VersionContext) Current() Spec {
	if vc == nil {
		return UnknownVersion
	}
	return vc.spec
}

func (vc *VersionContext) Set(spec Spec) { vc.spec = spec }

// Clear resets the context to UnknownVersion.
func (vc *VersionContext) Clear() { vc.spec = UnknownVersion }

// Depth returns the current structure nesting depth.
func (vc *VersionContext) Depth() int {
	if vc == nil {
		return 0
	}
	return vc.depth
}

// enter increments the nesting depth, failing once max is passed. max <= 0 disables the check.
func (vc *VersionContext) enter(max int) error {
	vc.depth++
	if max > 0 && vc.depth > max {
		vc.depth--
		return ErrDepthExceeded
	}
	return nil
}

func (vc *VersionContext) leave() { vc.depth-- }
