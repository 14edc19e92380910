package game

import (
	"encoding/json"
	"fmt"
)

// Message type for WebSocket communication between client and server.
type MessageType string

const (
	MsgTypeNewGame MessageType = "new_game" // Client wants a freshly dealt game
	MsgTypeClick   MessageType = "click"    // Client clicked a card or a column
	MsgTypeDeal    MessageType = "deal"     // Client wants to deal from the stock
	MsgTypeState   MessageType = "state"    // Server sends the board after every action
	MsgTypeError   MessageType = "error"    // Server sends an error message
	MsgTypePing    MessageType = "ping"     // Keep-alive
	MsgTypePong    MessageType = "pong"     // Response to ping
)

// WsMessage represents a WebSocket message.
type WsMessage struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// NewWsMessage creates a new WsMessage with a marshaled payload.
func NewWsMessage(msgType MessageType, payload interface{}) (WsMessage, error) {
	if payload == nil {
		return WsMessage{Type: msgType}, nil
	}
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return WsMessage{}, fmt.Errorf("failed to marshal payload: %w", err)
	}
	return WsMessage{
		Type:    msgType,
		Payload: payloadBytes,
	}, nil
}

// Parse unmarshals the message payload into one of the message types (NewGameMessage, StateMessage, etc.)
func (m *WsMessage) Parse() (any, error) {
	var target any
	switch m.Type {
	case MsgTypeNewGame:
		target = &NewGameMessage{}
	case MsgTypeClick:
		target = &ClickMessage{}
	case MsgTypeDeal:
		target = &DealMessage{}
	case MsgTypeState:
		target = &StateMessage{}
	case MsgTypeError:
		target = &ErrorMessage{}
	case MsgTypePing:
		target = &PingMessage{}
	case MsgTypePong:
		target = &PongMessage{}
	default:
		return nil, fmt.Errorf("unknown message type: %s", m.Type)
	}

	if len(m.Payload) == 0 {
		return target, nil
	}

	err := json.Unmarshal(m.Payload, target)
	return target, err
}

// NewGameMessage is the payload for MsgTypeNewGame
type NewGameMessage struct {
	Difficulty Difficulty `json:"difficulty"`
}

// ClickMessage is the payload for MsgTypeClick
type ClickMessage struct {
	Column int `json:"column"`
	Index  int `json:"index"` // Card index in the column, -1 for the column itself
}

// DealMessage: empty.
type DealMessage struct{}

// StateMessage is the payload for MsgTypeState
type StateMessage struct {
	Board  BoardView `json:"board"`
	Notice string    `json:"notice,omitempty"` // User-facing message, e.g. why a deal was refused
}

// ErrorMessage is the payload for MsgTypeError
type ErrorMessage struct {
	Message string `json:"message"`
}

// PingMessage is the payload for MsgTypePing
type PingMessage struct {
	ServerTime int64 `json:"server_time"` // Nanoseconds since Unix epoch
}

// PongMessage is the payload for MsgTypePong
type PongMessage struct {
	ServerTime int64 `json:"server_time"` // Same value from Ping
}
