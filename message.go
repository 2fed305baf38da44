package dialogs

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/officebridge/dialogs-go/spec"
)

// EncodeMessage classifies message by its runtime shape and serializes the
// DialogMessage envelope: nil maps to type null, strings to "string",
// everything else to "object". Functions are not valid messages.
func EncodeMessage(message any) (string, error) {
	var env spec.DialogMessage

	switch m := message.(type) {
	case nil:
		// {"type":null,"value":null}
	case string:
		t := spec.MessageTypeString
		env.Type = &t
		env.Value = m
	default:
		if reflect.ValueOf(message).Kind() == reflect.Func {
			return "", errors.Join(spec.ErrInvalidArgument, errors.New("functions are not valid messages"))
		}
		t := spec.MessageTypeObject
		env.Type = &t
		env.Value = message
	}

	b, err := json.Marshal(env)
	if err != nil {
		return "", errors.Join(spec.ErrInvalidArgument, err)
	}
	return string(b), nil
}

// TryParse attempts to interpret s as JSON, returning s unchanged when it is
// not. It never fails; used when interpreting payloads of uncertain shape.
func TryParse(s string) any {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return s
	}
	return v
}

// decodeMessage interprets a payload delivered by the host. A DialogMessage
// envelope unwraps to its value; anything else is returned as TryParse left
// it. A malformed type tag is the one delivery failure.
func decodeMessage(payload string) (any, error) {
	v := TryParse(payload)

	m, ok := v.(map[string]any)
	if !ok {
		return v, nil
	}
	tag, hasType := m["type"]
	val, hasValue := m["value"]
	if !hasType || !hasValue {
		return v, nil
	}

	switch t := tag.(type) {
	case nil:
		return val, nil
	case string:
		if t != string(spec.MessageTypeString) && t != string(spec.MessageTypeObject) {
			return nil, fmt.Errorf("unknown message type %q", t)
		}
		return val, nil
	default:
		return nil, fmt.Errorf("bad message type tag %v", tag)
	}
}
