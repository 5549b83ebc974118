// internal/session/codec.go
package session

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"
)

// ErrEmptyMessage is returned when decoding a frame with no bytes.
var ErrEmptyMessage = errors.New("empty message")

// Envelope is a decoded frame whose payload is still encoded.
type Envelope struct {
	Type    string
	Payload []byte
}

// Codec turns typed payloads into websocket frames and back.
type Codec interface {
	Name() string
	FrameType() int
	Encode(msgType string, payload any) ([]byte, error)
	Decode(data []byte) (Envelope, error)
	DecodePayload(env Envelope, out any) error
}

// CodecFor picks the codec named by a client's enc query parameter.
// Anything but "msgpack" gets JSON.
func CodecFor(name string) Codec {
	if name == "msgpack" {
		return MsgpackCodec{}
	}
	return JSONCodec{}
}

type jsonEnvelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// JSONCodec sends {"type": ..., "payload": {...}} text frames.
type JSONCodec struct{}

func (JSONCodec) Name() string   { return "json" }
func (JSONCodec) FrameType() int { return websocket.TextMessage }

func (JSONCodec) Encode(msgType string, payload any) ([]byte, error) {
	if msgType == "" {
		return nil, fmt.Errorf("encode: empty message type")
	}
	pb, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", msgType, err)
	}
	return json.Marshal(jsonEnvelope{Type: msgType, Payload: pb})
}

func (JSONCodec) Decode(data []byte) (Envelope, error) {
	if len(data) == 0 {
		return Envelope{}, ErrEmptyMessage
	}
	var env jsonEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Envelope{}, fmt.Errorf("decode envelope: %w", err)
	}
	return Envelope{Type: env.Type, Payload: env.Payload}, nil
}

func (JSONCodec) DecodePayload(env Envelope, out any) error {
	if len(env.Payload) == 0 {
		return fmt.Errorf("empty payload for type %q", env.Type)
	}
	return json.Unmarshal(env.Payload, out)
}

type msgpackEnvelope struct {
	Type    string             `msgpack:"type"`
	Payload msgpack.RawMessage `msgpack:"payload"`
}

// MsgpackCodec sends the same envelope as binary frames.
type MsgpackCodec struct{}

func (MsgpackCodec) Name() string   { return "msgpack" }
func (MsgpackCodec) FrameType() int { return websocket.BinaryMessage }

func (MsgpackCodec) Encode(msgType string, payload any) ([]byte, error) {
	if msgType == "" {
		return nil, fmt.Errorf("encode: empty message type")
	}
	pb, err := msgpack.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", msgType, err)
	}
	return msgpack.Marshal(&msgpackEnvelope{Type: msgType, Payload: pb})
}

func (MsgpackCodec) Decode(data []byte) (Envelope, error) {
	if len(data) == 0 {
		return Envelope{}, ErrEmptyMessage
	}
	var env msgpackEnvelope
	if err := msgpack.Unmarshal(data, &env); err != nil {
		return Envelope{}, fmt.Errorf("decode envelope: %w", err)
	}
	return Envelope{Type: env.Type, Payload: env.Payload}, nil
}

func (MsgpackCodec) DecodePayload(env Envelope, out any) error {
	if len(env.Payload) == 0 {
		return fmt.Errorf("empty payload for type %q", env.Type)
	}
	return msgpack.Unmarshal(env.Payload, out)
}
