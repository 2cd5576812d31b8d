// Package codec registers a JSON wire codec with gRPC. Clients select it with
// grpc.CallContentSubtype(codec.Name).
package codec

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// Name is the content-subtype the codec is registered under.
const Name = "json"

func init() {
	encoding.RegisterCodec(JSON{})
}

// JSON marshals messages with encoding/json.
type JSON struct{}

func (JSON) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (JSON) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (JSON) Name() string {
	return Name
}
