package kmip

import (
	"fmt"

	"github.com/oy3o/ttlv"
)

const (
	TypeBatchCount     ttlv.TypeID = "kmip.BatchCount"
	TypeRequestHeader  ttlv.TypeID = "kmip.RequestHeader"
	TypeRequestPayload ttlv.TypeID = "kmip.RequestPayload"
	TypeBatchItem      ttlv.TypeID = "kmip.BatchItem"
	TypeRequestMessage ttlv.TypeID = "kmip.RequestMessage"
)

type BatchCount int32

func (BatchCount) TypeID() ttlv.TypeID             { return TypeBatchCount }
func (BatchCount) Tag() ttlv.Tag                   { return ttlv.TagBatchCount }
func (BatchCount) EncodingType() ttlv.EncodingType { return ttlv.Integer }
func (BatchCount) IsSupportedFor(spec ttlv.Spec) bool {
	return ttlv.TagBatchCount.IsSupportedFor(spec)
}

// RequestHeader announces the protocol version of a request. BatchCount is
// optional and only exists up to V2_1.
type RequestHeader struct {
	ProtocolVersion ProtocolVersion
	BatchCount      *BatchCount
}

func (RequestHeader) TypeID() ttlv.TypeID             { return TypeRequestHeader }
func (RequestHeader) Tag() ttlv.Tag                   { return ttlv.TagRequestHeader }
func (RequestHeader) EncodingType() ttlv.EncodingType { return ttlv.Structure }
func (RequestHeader) IsSupportedFor(ttlv.Spec) bool   { return true }

func (h RequestHeader) Values() []ttlv.DataType {
	values := []ttlv.DataType{h.ProtocolVersion}
	if h.BatchCount != nil {
		values = append(values, *h.BatchCount)
	}
	return values
}

// RequestPayload carries the operands of one operation.
type RequestPayload struct {
	UniqueIdentifier *UniqueIdentifier
	Attributes       []Attribute
}

func (RequestPayload) TypeID() ttlv.TypeID             { return TypeRequestPayload }
func (RequestPayload) Tag() ttlv.Tag                   { return ttlv.TagRequestPayload }
func (RequestPayload) EncodingType() ttlv.EncodingType { return ttlv.Structure }
func (RequestPayload) IsSupportedFor(ttlv.Spec) bool   { return true }

func (p RequestPayload) Values() []ttlv.DataType {
	values := make([]ttlv.DataType, 0, len(p.Attributes)+1)
	if p.UniqueIdentifier != nil {
		values = append(values, *p.UniqueIdentifier)
	}
	for _, a := range p.Attributes {
		values = append(values, a)
	}
	return values
}

type BatchItem struct {
	Operation Operation
	Payload   *RequestPayload
}

func (BatchItem) TypeID() ttlv.TypeID             { return TypeBatchItem }
func (BatchItem) Tag() ttlv.Tag                   { return ttlv.TagBatchItem }
func (BatchItem) EncodingType() ttlv.EncodingType { return ttlv.Structure }
func (BatchItem) IsSupportedFor(ttlv.Spec) bool   { return true }

func (b BatchItem) Values() []ttlv.DataType {
	values := []ttlv.DataType{b.Operation}
	if b.Payload != nil {
		values = append(values, *b.Payload)
	}
	return values
}

// RequestMessage is the top-level element of a client request.
type RequestMessage struct {
	Header     RequestHeader
	BatchItems []BatchItem
}

// NewRequestMessage builds a request announcing spec. The batch count is
// filled in when spec still defines it.
func NewRequestMessage(spec ttlv.Spec, items ...BatchItem) RequestMessage {
	h := RequestHeader{ProtocolVersion: VersionOf(spec)}
	if ttlv.TagBatchCount.IsSupportedFor(spec) {
		n := BatchCount(len(items))
		h.BatchCount = &n
	}
	return RequestMessage{Header: h, BatchItems: items}
}

func (RequestMessage) TypeID() ttlv.TypeID             { return TypeRequestMessage }
func (RequestMessage) Tag() ttlv.Tag                   { return ttlv.TagRequestMessage }
func (RequestMessage) EncodingType() ttlv.EncodingType { return ttlv.Structure }
func (RequestMessage) IsSupportedFor(ttlv.Spec) bool   { return true }

func (r RequestMessage) Values() []ttlv.DataType {
	values := make([]ttlv.DataType, 0, len(r.BatchItems)+1)
	values = append(values, r.Header)
	for _, b := range r.BatchItems {
		values = append(values, b)
	}
	return values
}

func checkRequestMessage(r RequestMessage) error {
	if len(r.BatchItems) == 0 {
		return ttlv.WithField("BatchItems", ttlv.ErrMissingField)
	}
	if c := r.Header.BatchCount; c != nil && int(*c) != len(r.BatchItems) {
		return fmt.Errorf("%w: batch count %d, %d batch items", ttlv.ErrInvalidValue, *c, len(r.BatchItems))
	}
	return nil
}

// MarshalRequest encodes r under the protocol version its header announces.
func MarshalRequest(m *ttlv.Mapper, r RequestMessage) ([]byte, error) {
	spec, err := SpecOf(r.Header.ProtocolVersion)
	if err != nil {
		return nil, err
	}
	if err := checkRequestMessage(r); err != nil {
		return nil, err
	}
	return m.Marshal(ttlv.NewVersionContext(spec), r)
}

// UnmarshalRequest decodes a request message, first reading the protocol
// version from its header and then decoding the whole message under it.
func UnmarshalRequest(m *ttlv.Mapper, data []byte) (RequestMessage, ttlv.Spec, error) {
	spec, err := peekSpec(m, data)
	if err != nil {
		return RequestMessage{}, ttlv.UnsupportedVersion, err
	}
	msg, err := ttlv.UnmarshalAs[RequestMessage](m, ttlv.NewVersionContext(spec), data)
	return msg, spec, err
}

func peekSpec(m *ttlv.Mapper, data []byte) (ttlv.Spec, error) {
	rec, _, err := m.Config().DecodeOptions().Decode(data)
	if err != nil {
		return ttlv.UnsupportedVersion, err
	}
	if err := ttlv.ExpectRecord(rec, ttlv.TagRequestMessage, ttlv.Structure); err != nil {
		return ttlv.UnsupportedVersion, err
	}
	header, err := findChild(m, rec, ttlv.TagRequestHeader)
	if err != nil {
		return ttlv.UnsupportedVersion, err
	}
	pv, err := findChild(m, header, ttlv.TagProtocolVersion)
	if err != nil {
		return ttlv.UnsupportedVersion, ttlv.WithField("Header", err)
	}
	v, err := m.UnmarshalRecord(ttlv.NewVersionContext(ttlv.UnknownVersion), pv, TypeProtocolVersion)
	if err != nil {
		return ttlv.UnsupportedVersion, ttlv.WithField("Header", err)
	}
	return SpecOf(v.(ProtocolVersion))
}

func findChild(m *ttlv.Mapper, rec ttlv.Record, tag ttlv.Tag) (ttlv.Record, error) {
	children, err := m.Children(rec)
	if err != nil {
		return ttlv.Record{}, err
	}
	for _, c := range children {
		if c.TagValue() == tag.Value() {
			return c, nil
		}
	}
	return ttlv.Record{}, ttlv.WithField(tag.Description(), ttlv.ErrMissingField)
}

func registerMessage(mod *ttlv.Module) {
	ttlv.RegisterScalar(mod, ttlv.Scalar[BatchCount, int32]{
		Codec: ttlv.IntegerCodec,
		Get:   func(c BatchCount) int32 { return int32(c) },
		New:   func(v int32) BatchCount { return BatchCount(v) },
	})
	ttlv.RegisterStruct(mod, ttlv.Struct[RequestHeader]{
		Fields: []ttlv.Field[RequestHeader]{
			{
				Name: "ProtocolVersion", Tag: ttlv.TagProtocolVersion, Type: TypeProtocolVersion, Required: true,
				Set: func(h *RequestHeader, v ttlv.DataType) error { return ttlv.Assign(&h.ProtocolVersion, v) },
			},
			{
				Name: "BatchCount", Tag: ttlv.TagBatchCount, Type: TypeBatchCount,
				Specs: ttlv.TagBatchCount.Specs(),
				Set:   func(h *RequestHeader, v ttlv.DataType) error { return ttlv.AssignPtr(&h.BatchCount, v) },
			},
		},
	})
	ttlv.RegisterStruct(mod, ttlv.Struct[RequestPayload]{
		Fields: []ttlv.Field[RequestPayload]{
			{
				Name: "UniqueIdentifier", Tag: ttlv.TagUniqueIdentifier, Type: TypeUniqueIdentifier,
				Set: func(p *RequestPayload, v ttlv.DataType) error { return ttlv.AssignPtr(&p.UniqueIdentifier, v) },
			},
			{
				Name: "Attributes", Tag: ttlv.TagAttribute, Type: TypeAttribute, Repeated: true,
				Set: func(p *RequestPayload, v ttlv.DataType) error { return ttlv.Append(&p.Attributes, v) },
			},
		},
	})
	ttlv.RegisterStruct(mod, ttlv.Struct[BatchItem]{
		Fields: []ttlv.Field[BatchItem]{
			{
				Name: "Operation", Tag: ttlv.TagOperation, Type: TypeOperation, Required: true,
				Set: func(b *BatchItem, v ttlv.DataType) error { return ttlv.Assign(&b.Operation, v) },
			},
			{
				Name: "Payload", Tag: ttlv.TagRequestPayload, Type: TypeRequestPayload,
				Set: func(b *BatchItem, v ttlv.DataType) error { return ttlv.AssignPtr(&b.Payload, v) },
			},
		},
	})
	ttlv.RegisterStruct(mod, ttlv.Struct[RequestMessage]{
		Fields: []ttlv.Field[RequestMessage]{
			{
				Name: "Header", Tag: ttlv.TagRequestHeader, Type: TypeRequestHeader, Required: true,
				Set: func(r *RequestMessage, v ttlv.DataType) error { return ttlv.Assign(&r.Header, v) },
			},
			{
				Name: "BatchItems", Tag: ttlv.TagBatchItem, Type: TypeBatchItem, Required: true, Repeated: true,
				Set: func(r *RequestMessage, v ttlv.DataType) error { return ttlv.Append(&r.BatchItems, v) },
			},
		},
		Check: checkRequestMessage,
	})
}
