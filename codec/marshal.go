package codec

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	jsoniter "github.com/json-iterator/go"
)

// jsonAPI is the JSON implementation used for the JSON protocol, configured to behave like the standard library.
var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// marshal serializes the given document using the provided protocol.
func marshal(doc any, protocol Protocol) ([]byte, error) {
	switch protocol {
	case ProtocolJSON:
		return jsonAPI.Marshal(doc)
	case ProtocolCBOR:
		return cbor.Marshal(doc)
	}

	return nil, fmt.Errorf("unsupported protocol %q", protocol)
}

// unmarshal deserializes the given data into the provided document using the provided protocol.
func unmarshal(data []byte, doc any, protocol Protocol) error {
	switch protocol {
	case ProtocolJSON:
		return jsonAPI.Unmarshal(data, doc)
	case ProtocolCBOR:
		return cbor.Unmarshal(data, doc)
	}

	return fmt.Errorf("unsupported protocol %q", protocol)
}
