// Package api is the wire contract between the TeachLoop client and server:
// message types, the gRPC service descriptor, client and server stubs, and
// the codec both sides register.
package api

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// CodecName is the gRPC content-subtype of the TeachLoop codec. Clients
// select it with grpc.CallContentSubtype(CodecName); servers pick it up from
// the registry by the request's content-type.
const CodecName = "teachloop-json"

// codec encodes plain Go messages as JSON and protobuf messages (well-known
// types, health checks) as protojson, so one content-subtype serves both.
type codec struct{}

func (codec) Marshal(v any) ([]byte, error) {
	if m, ok := v.(proto.Message); ok {
		return protojson.Marshal(m)
	}
	return json.Marshal(v)
}

func (codec) Unmarshal(data []byte, v any) error {
	if m, ok := v.(proto.Message); ok {
		return protojson.Unmarshal(data, m)
	}
	return json.Unmarshal(data, v)
}

func (codec) Name() string { return CodecName }

func init() {
	encoding.RegisterCodec(codec{})
}
