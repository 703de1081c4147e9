package session

import (
	"encoding/json"

	"github.com/inamate/fractal/internal/document"
	"github.com/inamate/fractal/internal/engine"
)

type Message struct {
	Type      string          `json:"type"`
	SessionID string          `json:"sessionId,omitempty"`
	Seq       int64           `json:"seq,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

const (
	// Client → server
	TypePointerDown    = "pointer.down"
	TypePointerMove    = "pointer.move"
	TypePointerUp      = "pointer.up"
	TypeGestureAbandon = "gesture.abandon"
	TypeModeSet        = "mode.set"
	TypeColorSet       = "color.set"
	TypeColorRandom    = "color.random"
	TypeDepthSet       = "depth.set"
	TypeCanvasResize   = "canvas.resize"
	TypeUndo           = "undo"
	TypeRedo           = "redo"
	TypeReset          = "reset"
	TypeSampleLoad     = "sample.load"

	// Server → client
	TypeWelcome = "welcome"
	TypeFrame   = "frame"
	TypeError   = "error"
)

// PointerPayload is the payload for pointer.* messages, in canvas units.
type PointerPayload struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Ctrl  bool    `json:"ctrl,omitempty"`
	Shift bool    `json:"shift,omitempty"`
}

type ModePayload struct {
	Mode document.Mode `json:"mode"`
}

type ColorPayload struct {
	Color string `json:"color"`
}

type DepthPayload struct {
	Depth int `json:"depth"`
}

type CanvasPayload struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type SamplePayload struct {
	Name string `json:"name"`
}

// WelcomePayload is sent once when a connection opens.
type WelcomePayload struct {
	SessionID string       `json:"sessionId"`
	ClientID  string       `json:"clientId"`
	Samples   []string     `json:"samples"`
	DepthMax  int          `json:"depthMax"`
	Frame     engine.Frame `json:"frame"`
}

// ErrorPayload reports a rejected message. Request echoes the offending type.
type ErrorPayload struct {
	Request string `json:"request"`
	Message string `json:"message"`
}
