package messages

import (
	"encoding/json"
	"fmt"

	"github.com/Quelsed/azngameahun/pkg/game/types"
)

const (
	// MessageBufferSize represents the maximum size of a message
	MessageBufferSize = 64 * 1024
)

type MessageType uint8

// Message types
const (
	MessageTypeClientPing MessageType = iota + 1
	MessageTypeServerPong
	MessageTypeClientStart
	MessageTypeClientRestart
	MessageTypeClientMove
	MessageTypeClientResize
	MessageTypeServerSession
	MessageTypeServerFrame
	MessageTypeServerEvent
)

func (t MessageType) String() string {
	switch t {
	case MessageTypeClientPing:
		return "ping"
	case MessageTypeServerPong:
		return "pong"
	case MessageTypeClientStart:
		return "start"
	case MessageTypeClientRestart:
		return "restart"
	case MessageTypeClientMove:
		return "move"
	case MessageTypeClientResize:
		return "resize"
	case MessageTypeServerSession:
		return "session"
	case MessageTypeServerFrame:
		return "frame"
	case MessageTypeServerEvent:
		return "event"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

// Message represents a generic message for serialization/deserialization.
// Frame payloads are flatbuffers, every other payload is JSON.
type Message struct {
	ClientID uint32      `json:"clientID"`
	Type     MessageType `json:"type"`
	Payload  []byte      `json:"payload"`
}

type ClientMove struct {
	Side types.Side `json:"side"`
}

type ClientResize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ServerSession is the first message of a connection.
type ServerSession struct {
	SessionID string `json:"sessionID"`
	ClientID  uint32 `json:"clientID"`
	HighScore int    `json:"highScore"`
}

type ServerEvent struct {
	Type   string `json:"type"`
	RunID  string `json:"runID"`
	Score  int    `json:"score"`
	Side   string `json:"side"`
	Reason string `json:"reason"`
}

func ServerEventFromEvent(event types.Event) ServerEvent {
	return ServerEvent{
		Type:   event.Type.String(),
		RunID:  event.RunID.String(),
		Score:  event.Score,
		Side:   event.Side.String(),
		Reason: event.Reason.String(),
	}
}

// NewJSONMessage builds a message with a JSON encoded payload.
func NewJSONMessage(clientID uint32, messageType MessageType, payload interface{}) (*Message, error) {
	var b []byte
	if payload != nil {
		var err error
		b, err = json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s payload: %v", messageType, err)
		}
	}
	return &Message{
		ClientID: clientID,
		Type:     messageType,
		Payload:  b,
	}, nil
}

// DecodePayload unmarshals the JSON payload of a message into v.
func (m *Message) DecodePayload(v interface{}) error {
	if err := json.Unmarshal(m.Payload, v); err != nil {
		return fmt.Errorf("failed to unmarshal %s payload: %v", m.Type, err)
	}
	return nil
}
