package api

import "encoding/json"

// jsonCodec replaces Connect's protojson codec so that plain Go structs can be sent as
// application/json and application/connect+json.
type jsonCodec struct{}

func (jsonCodec) Name() string {
	return "json"
}

func (jsonCodec) Marshal(message any) ([]byte, error) {
	return json.Marshal(message)
}

func (jsonCodec) Unmarshal(data []byte, message any) error {
	return json.Unmarshal(data, message)
}
