package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type optState uint8

const (
	optUnset optState = iota
	optNull
	optValue
)

// Optional is a tri-state field: unset, explicit null, or a value.
//
// The zero Optional is unset. Struct fields tagged `json:"...,omitzero"` drop
// unset values from payloads entirely, which keeps "field not supplied" apart
// from "field set to null" in partial updates. Presence must be checked with
// [Optional.IsSet] or [Optional.Value]; an unset Optional and a zero value are
// different things.
type Optional[T any] struct {
	state optState
	value T
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{state: optValue, value: v}
}

// Null returns an Optional holding an explicit null.
func Null[T any]() Optional[T] {
	return Optional[T]{state: optNull}
}

// IsSet reports whether the field was supplied at all, as either a value or an
// explicit null.
func (o Optional[T]) IsSet() bool { return o.state != optUnset }

// IsNull reports whether the field was supplied as an explicit null.
func (o Optional[T]) IsNull() bool { return o.state == optNull }

// Value returns the held value and whether one is present.
func (o Optional[T]) Value() (T, bool) {
	return o.value, o.state == optValue
}

// Or returns the held value, or fallback when the Optional is unset or null.
func (o Optional[T]) Or(fallback T) T {
	if o.state == optValue {
		return o.value
	}
	return fallback
}

// IsZero reports whether the Optional is unset, hooking into encoding/json's
// omitzero handling.
func (o Optional[T]) IsZero() bool { return o.state == optUnset }

func (o Optional[T]) String() string {
	switch o.state {
	case optNull:
		return "null"
	case optValue:
		return fmt.Sprintf("%v", o.value)
	}
	return "unset"
}

// MarshalJSON encodes the value, or null for both the null and unset states.
// Unset fields should be dropped before this point via omitzero.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if o.state != optValue {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON records an explicit null or decodes the value. It is only
// invoked for fields present in the document, so absent fields stay unset.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = Optional[T]{state: optNull}
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Optional[T]{state: optValue, value: v}
	return nil
}
