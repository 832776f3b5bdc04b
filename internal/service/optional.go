package service

import (
	"bytes"
	"encoding/json"
)

// Optional is a tri-state request field: absent, explicitly null, or set to a value.
// An empty JSON string is a value, not null.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Some returns an Optional holding v
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

// Null returns an Optional that was sent as JSON null
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true, Null: true}
}

// UnmarshalJSON is only called for keys present in the payload, which is what marks Set
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Null = true
		var zero T
		o.Value = zero
		return nil
	}
	o.Null = false
	return json.Unmarshal(data, &o.Value)
}

// MarshalJSON writes null for absent and null states
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Null {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Ptr returns nil for null and a pointer to the value otherwise. Callers check Set first.
func (o Optional[T]) Ptr() *T {
	if o.Null {
		return nil
	}
	v := o.Value
	return &v
}

// apply records the column update for o when the field was sent
func (o Optional[T]) apply(updates map[string]interface{}, column string) {
	if !o.Set {
		return
	}
	if o.Null {
		updates[column] = nil
		return
	}
	updates[column] = o.Value
}
