package action

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrPayload is returned by Decode when a recognized action carries a
// payload of the wrong shape.
var ErrPayload = errors.New("action: invalid payload")

// ErrNilAction is returned by Encode when given no action.
var ErrNilAction = errors.New("action: nil action")

// Envelope is the wire form of an action.
type Envelope struct {
	Type    Kind            `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Decode parses an envelope into a typed action. A missing or unrecognized
// type yields Unknown rather than an error.
func Decode(data []byte) (Action, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	return FromEnvelope(env)
}

// FromEnvelope converts an already parsed envelope.
func FromEnvelope(env Envelope) (Action, error) {
	switch env.Type {
	case KindIncrement:
		return IncrementAction{}, nil
	case KindUpdateExpandedKeys:
		var keys []string
		if err := unmarshalPayload(env, &keys); err != nil {
			return nil, err
		}
		return ExpandedKeysAction{Keys: keys}, nil
	case KindUpdateCheckedKeys:
		var keys []string
		if err := unmarshalPayload(env, &keys); err != nil {
			return nil, err
		}
		return CheckedKeysAction{Keys: keys}, nil
	case KindChangeSearchContent:
		var content string
		if err := unmarshalPayload(env, &content); err != nil {
			return nil, err
		}
		return SearchContentAction{Content: content}, nil
	case KindFilterTree:
		var filter string
		if err := unmarshalPayload(env, &filter); err != nil {
			return nil, err
		}
		return FilterTreeAction{Filter: filter}, nil
	default:
		return Unknown{Type: env.Type, Payload: env.Payload}, nil
	}
}

func unmarshalPayload(env Envelope, v any) error {
	if len(env.Payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Payload, v); err != nil {
		return fmt.Errorf("%w for %s: %v", ErrPayload, env.Type, err)
	}
	return nil
}

// Encode renders an action in its wire form.
func Encode(a Action) ([]byte, error) {
	if a == nil {
		return nil, ErrNilAction
	}
	env := Envelope{Type: a.Kind()}

	var payload any
	switch a := a.(type) {
	case IncrementAction:
	case ExpandedKeysAction:
		payload = a.Keys
	case CheckedKeysAction:
		payload = a.Keys
	case SearchContentAction:
		payload = a.Content
	case FilterTreeAction:
		payload = a.Filter
	case Unknown:
		env.Payload = a.Payload
	}

	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode %s payload: %w", env.Type, err)
		}
		env.Payload = raw
	}

	data, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("encode envelope: %w", err)
	}
	return data, nil
}
