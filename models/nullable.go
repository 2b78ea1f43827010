package models

import (
	"bytes"
	"encoding/json"
	"time"
)

// NullableString tracks whether a JSON key was present at all.
// Set is false when the key is absent; Value is nil for an explicit null.
type NullableString struct {
	Set   bool
	Value *string
}

// UnmarshalJSON implements [json.Unmarshaler]. It is only invoked when the key
// exists in the payload.
func (n *NullableString) UnmarshalJSON(b []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		n.Value = nil
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	n.Value = &s
	return nil
}

// MarshalJSON implements [json.Marshaler].
func (n NullableString) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.Value)
}

// NewNullableString returns a set value. A nil pointer encodes an explicit null.
func NewNullableString(v *string) NullableString {
	return NullableString{Set: true, Value: v}
}

// NullableTime is the [time.Time] counterpart of [NullableString].
type NullableTime struct {
	Set   bool
	Value *time.Time
}

// UnmarshalJSON implements [json.Unmarshaler].
func (n *NullableTime) UnmarshalJSON(b []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		n.Value = nil
		return nil
	}

	var t time.Time
	if err := json.Unmarshal(b, &t); err != nil {
		return err
	}
	n.Value = &t
	return nil
}

// MarshalJSON implements [json.Marshaler].
func (n NullableTime) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.Value)
}

// NewNullableTime returns a set value. A nil pointer encodes an explicit null.
func NewNullableTime(v *time.Time) NullableTime {
	return NullableTime{Set: true, Value: v}
}
