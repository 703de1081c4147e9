package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/inamate/fractal/internal/document"
	"github.com/inamate/fractal/internal/engine"
	"github.com/inamate/fractal/internal/geometry"
	"github.com/inamate/fractal/internal/typeid"
)

// DefaultDepthLimit bounds depth.set requests when Settings leaves it unset.
const DefaultDepthLimit = 10

var ErrUnknownType = errors.New("unknown message type")

// Settings configure every new session.
type Settings struct {
	Options        document.Options
	CanvasWidth    float64
	CanvasHeight   float64
	DepthLimit     int
	OriginPatterns []string
}

// Session is one view bound to its own private Engine. It is driven from a
// single goroutine and is not safe for concurrent use.
type Session struct {
	ID         string
	engine     *engine.Engine
	depthLimit int
	seq        int64
}

// New creates a session with a fresh engine configured from s.
func New(s Settings) *Session {
	e := engine.NewEngine()
	if s.Options != (document.Options{}) {
		if err := e.SetOptions(s.Options); err != nil {
			slog.Warn("invalid session options, using defaults", "error", err)
		}
	}
	if s.CanvasWidth > 0 && s.CanvasHeight > 0 {
		e.SetCanvasSize(s.CanvasWidth, s.CanvasHeight)
	}

	limit := s.DepthLimit
	if limit <= 0 {
		limit = DefaultDepthLimit
	}
	if e.Options().MaxRecursionDepth > limit {
		e.SetMaxDepth(limit)
	}

	return &Session{
		ID:         typeid.NewSessionID(),
		engine:     e,
		depthLimit: limit,
	}
}

// Engine exposes the session's engine.
func (s *Session) Engine() *engine.Engine {
	return s.engine
}

// Welcome builds the greeting for a newly connected view.
func (s *Session) Welcome(clientID string) *Message {
	return s.reply(TypeWelcome, WelcomePayload{
		SessionID: s.ID,
		ClientID:  clientID,
		Samples:   document.SampleNames(),
		DepthMax:  s.depthLimit,
		Frame:     s.engine.Frame(),
	})
}

// Handle applies one client message and returns the replies: an error
// message if the command was rejected, then the resulting frame.
func (s *Session) Handle(msg *Message) []*Message {
	if err := s.apply(msg); err != nil {
		slog.Debug("command rejected", "session", s.ID, "type", msg.Type, "error", err)
		errMsg := s.reply(TypeError, ErrorPayload{Request: msg.Type, Message: err.Error()})
		if errors.Is(err, ErrUnknownType) {
			return []*Message{errMsg}
		}
		return []*Message{errMsg, s.frame()}
	}
	return []*Message{s.frame()}
}

func (s *Session) apply(msg *Message) error {
	e := s.engine

	switch msg.Type {
	case TypePointerDown:
		var p PointerPayload
		if err := decode(msg, &p); err != nil {
			return err
		}
		return e.PointerDownAt(geometry.Vector2D{X: p.X, Y: p.Y}, modifiers(p))

	case TypePointerMove:
		var p PointerPayload
		if err := decode(msg, &p); err != nil {
			return err
		}
		return e.PointerMove(geometry.Vector2D{X: p.X, Y: p.Y}, modifiers(p))

	case TypePointerUp:
		return e.PointerUp()

	case TypeGestureAbandon:
		e.Abandon()
		return nil

	case TypeModeSet:
		var p ModePayload
		if err := decode(msg, &p); err != nil {
			return err
		}
		return e.SetMode(p.Mode)

	case TypeColorSet:
		var p ColorPayload
		if err := decode(msg, &p); err != nil {
			return err
		}
		return e.SetColor(p.Color)

	case TypeColorRandom:
		e.RandomizeColor()
		return nil

	case TypeDepthSet:
		var p DepthPayload
		if err := decode(msg, &p); err != nil {
			return err
		}
		e.SetMaxDepth(min(p.Depth, s.depthLimit))
		return nil

	case TypeCanvasResize:
		var p CanvasPayload
		if err := decode(msg, &p); err != nil {
			return err
		}
		if p.Width <= 0 || p.Height <= 0 {
			return fmt.Errorf("canvas size must be positive, got %vx%v", p.Width, p.Height)
		}
		e.SetCanvasSize(p.Width, p.Height)
		return nil

	case TypeUndo:
		e.Undo()
		return nil

	case TypeRedo:
		e.Redo()
		return nil

	case TypeReset:
		return e.Reset()

	case TypeSampleLoad:
		var p SamplePayload
		if err := decode(msg, &p); err != nil {
			return err
		}
		return e.LoadSample(p.Name)

	default:
		return fmt.Errorf("%w: %q", ErrUnknownType, msg.Type)
	}
}

func (s *Session) frame() *Message {
	return s.reply(TypeFrame, s.engine.Frame())
}

func (s *Session) reply(msgType string, payload any) *Message {
	data, err := json.Marshal(payload)
	if err != nil {
		slog.Error("marshal payload", "type", msgType, "error", err)
		data = nil
	}
	s.seq++
	return &Message{
		Type:      msgType,
		SessionID: s.ID,
		Seq:       s.seq,
		Payload:   data,
	}
}

func decode(msg *Message, v any) error {
	if len(msg.Payload) == 0 {
		return fmt.Errorf("%s: missing payload", msg.Type)
	}
	if err := json.Unmarshal(msg.Payload, v); err != nil {
		return fmt.Errorf("%s: %w", msg.Type, err)
	}
	return nil
}

func modifiers(p PointerPayload) engine.Modifiers {
	return engine.Modifiers{Ctrl: p.Ctrl, Shift: p.Shift}
}
