package ttlv

import (
	"fmt"
	"slices"
	"sync"

	"github.com/puzpuzpuz/xsync/v4"
	"github.com/rs/zerolog"
)

// Mapper encodes DataType values to TTLV and back using the serializers,
// deserializers and dispatch entries of its installed modules. All methods are
// safe for concurrent use; a VersionContext is not, so give each call chain its own.
type Mapper struct {
	serializers   *xsync.Map[TypeID, Serializer]
	deserializers *xsync.Map[TypeID, Deserializer]
	customTags    *xsync.Map[uint32, Tag]
	dispatch      *Dispatch
	cfg           Config
	log           zerolog.Logger

	mu      sync.Mutex
	modules []string
}

// Option configures a Mapper.
type Option func(*mapperOptions)

type mapperOptions struct {
	cfg      Config
	log      zerolog.Logger
	dispatch *Dispatch
	modules  []*Module
}

// WithModules installs modules in order; later ones win on TypeID collisions.
func WithModules(mods ...*Module) Option {
	return func(o *mapperOptions) { o.modules = append(o.modules, mods...) }
}

func WithConfig(cfg Config) Option {
	return func(o *mapperOptions) { o.cfg = cfg }
}

func WithLogger(l zerolog.Logger) Option {
	return func(o *mapperOptions) { o.log = l }
}

// WithDispatch shares a dispatch registry between mappers.
func WithDispatch(d *Dispatch) Option {
	return func(o *mapperOptions) { o.dispatch = d }
}

func NewMapper(opts ...Option) *Mapper {
	o := mapperOptions{cfg: DefaultConfig(), log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.dispatch == nil {
		o.dispatch = NewDispatch()
	}
	m := &Mapper{
		serializers:   xsync.NewMap[TypeID, Serializer](),
		deserializers: xsync.NewMap[TypeID, Deserializer](),
		customTags:    xsync.NewMap[uint32, Tag](),
		dispatch:      o.dispatch,
		cfg:           o.cfg,
		log:           o.log,
	}
	for _, mod := range o.modules {
		m.RegisterModule(mod)
	}
	return m
}

// RegisterModule merges mod into the mapper, overwriting entries with the same TypeID.
func (m *Mapper) RegisterModule(mod *Module) {
	for id, s := range mod.serializers {
		m.serializers.Store(id, s)
	}
	for id, d := range mod.deserializers {
		m.deserializers.Store(id, d)
	}
	registered := 0
	for _, e := range mod.dispatch {
		if m.dispatch.Register(e.spec, e.tag, e.enc, e.id) {
			registered++
		}
	}
	for _, t := range mod.tags {
		m.customTags.Store(t.Value(), t)
	}

	m.mu.Lock()
	m.modules = append(m.modules, mod.name)
	m.mu.Unlock()

	m.log.Debug().
		Str("module", mod.name).
		Int("serializers", len(mod.serializers)).
		Int("deserializers", len(mod.deserializers)).
		Int("dispatch", registered).
		Int("tags", len(mod.tags)).
		Msg("module registered")
}

// Modules returns the installed module names in registration order.
func (m *Mapper) Modules() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.modules)
}

func (m *Mapper) Dispatch() *Dispatch     { return m.dispatch }
func (m *Mapper) Config() Config          { return m.cfg }
func (m *Mapper) Logger() *zerolog.Logger { return &m.log }

// NewContext returns a context at the configured default spec.
func (m *Mapper) NewContext() *VersionContext {
	spec, err := m.cfg.Spec()
	if err != nil {
		spec = UnknownVersion
	}
	return NewVersionContext(spec)
}

// LookupTag resolves a tag value against installed custom tags, then the standard table.
func (m *Mapper) LookupTag(value uint32) (Tag, bool) {
	if t, ok := m.customTags.Load(value); ok {
		return t, true
	}
	return LookupTag(value)
}

// HasSerializer reports whether id can be encoded.
func (m *Mapper) HasSerializer(id TypeID) bool {
	_, ok := m.serializers.Load(id)
	return ok
}

// HasDeserializer reports whether id can be decoded.
func (m *Mapper) HasDeserializer(id TypeID) bool {
	_, ok := m.deserializers.Load(id)
	return ok
}

func (m *Mapper) context(vc *VersionContext) *VersionContext {
	if vc == nil {
		return m.NewContext()
	}
	return vc
}

// Marshal encodes v under the spec of vc. A nil vc uses NewContext. Nothing is
// returned unless the whole value, nested values included, encodes.
func (m *Mapper) Marshal(vc *VersionContext, v DataType) ([]byte, error) {
	if isNil(v) {
		return nil, fmt.Errorf("%w: nil value", ErrInvalidValue)
	}
	vc = m.context(vc)
	spec := vc.Current()
	if !v.IsSupportedFor(spec) {
		m.log.Warn().Str("tag", v.Tag().String()).Stringer("spec", spec).Msg("value not supported for protocol version")
		return nil, &UnsupportedError{Tag: v.Tag(), Spec: spec}
	}
	s, ok := m.serializers.Load(v.TypeID())
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoSerializer, v.TypeID())
	}
	if err := vc.enter(m.cfg.MaxDepth); err != nil {
		return nil, err
	}
	defer vc.leave()
	out, err := s(m, vc, v)
	if err != nil {
		return nil, err
	}
	if len(out)%Alignment != 0 {
		panic(fmt.Errorf("%w: serializer for %s produced %d bytes", ErrMisaligned, v.TypeID(), len(out)))
	}
	return out, nil
}

// MarshalMany encodes values as consecutive siblings.
func (m *Mapper) MarshalMany(vc *VersionContext, values ...DataType) ([]byte, error) {
	vc = m.context(vc)
	var out []byte
	for _, v := range values {
		b, err := m.Marshal(vc, v)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}

// Unmarshal decodes data, which must hold exactly one element, as type id.
func (m *Mapper) Unmarshal(vc *VersionContext, data []byte, id TypeID) (DataType, error) {
	rec, err := m.decodeOne(data)
	if err != nil {
		return nil, err
	}
	return m.UnmarshalRecord(vc, rec, id)
}

// UnmarshalAny decodes data, which must hold exactly one element, as whatever
// type the dispatch registry resolves for it under the spec of vc.
func (m *Mapper) UnmarshalAny(vc *VersionContext, data []byte) (DataType, error) {
	rec, err := m.decodeOne(data)
	if err != nil {
		return nil, err
	}
	vc = m.context(vc)
	id, ok := m.dispatch.ResolveRecord(vc.Current(), rec)
	if !ok {
		return nil, m.unrecognized(vc, rec)
	}
	return m.UnmarshalRecord(vc, rec, id)
}

// UnmarshalRecord decodes an already framed record as type id and checks the
// result is supported for the spec of vc.
func (m *Mapper) UnmarshalRecord(vc *VersionContext, rec Record, id TypeID) (DataType, error) {
	vc = m.context(vc)
	d, ok := m.deserializers.Load(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoDeserializer, id)
	}
	if err := vc.enter(m.cfg.MaxDepth); err != nil {
		return nil, err
	}
	defer vc.leave()
	v, err := d(m, vc, rec)
	if err != nil {
		return nil, err
	}
	if spec := vc.Current(); !v.IsSupportedFor(spec) {
		return nil, &UnsupportedError{Tag: v.Tag(), Spec: spec}
	}
	return v, nil
}

// UnmarshalChild decodes one child of a structure as the type the dispatch
// registry resolves for it. Unresolvable children fail with ErrUnrecognizedField.
func (m *Mapper) UnmarshalChild(vc *VersionContext, rec Record) (DataType, error) {
	return decodeChild(m, m.context(vc), rec, "")
}

// Children splits the payload of a Structure record under the mapper's decode limits.
func (m *Mapper) Children(rec Record) ([]Record, error) {
	if !rec.IsStructure() {
		return nil, fmt.Errorf("%w: 0x%02X is not a structure", ErrTypeMismatch, rec.Type())
	}
	return m.cfg.DecodeOptions().children(rec.value)
}

func (m *Mapper) decodeOne(data []byte) (Record, error) {
	rec, n, err := m.cfg.DecodeOptions().Decode(data)
	if err != nil {
		return Record{}, err
	}
	if n != len(data) {
		return Record{}, fmt.Errorf("%w: %d bytes after the element", ErrTrailingData, len(data)-n)
	}
	return rec, nil
}

func (m *Mapper) unrecognized(vc *VersionContext, rec Record) error {
	name := m.tagName(rec.TagValue())
	m.log.Warn().
		Str("tag", name).
		Str("type", typeName(rec.Type())).
		Stringer("spec", vc.Current()).
		Msg("unrecognized field")
	return fmt.Errorf("%w: %s (%s) under %s", ErrUnrecognizedField, name, typeName(rec.Type()), vc.Current())
}

func (m *Mapper) tagName(value uint32) string {
	if t, ok := m.LookupTag(value); ok {
		return t.String()
	}
	return fmt.Sprintf("0x%06X", value)
}

// UnmarshalAs decodes data as T. T must be a value type whose zero value
// reports its TypeID.
func UnmarshalAs[T DataType](m *Mapper, vc *VersionContext, data []byte) (T, error) {
	var zero T
	v, err := m.Unmarshal(vc, data, zero.TypeID())
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: decoded %s into %T", ErrTypeMismatch, v.TypeID(), zero)
	}
	return t, nil
}
