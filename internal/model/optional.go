package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Optional is a field of a partial update. It tells apart a key that was
// omitted (Set false), sent as null (Set and Null) and sent with a value.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

// Null returns an Optional that was explicitly set to null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true, Null: true}
}

// UnmarshalJSON is only called by encoding/json when the key is present.
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

// Present reports whether the field carries a non-null value.
func (o Optional[T]) Present() bool {
	return o.Set && !o.Null
}

// Arg returns the value for a SQL parameter: nil when null.
func (o Optional[T]) Arg() any {
	if o.Null {
		return nil
	}
	return o.Value
}

// ValidationError is returned when a request body fails validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
