package domain

import (
	"bytes"
	"encoding/json"
)

// Optional carries a value together with whether it was supplied at all.
// The zero value is unset. It is used for partial updates, where an absent
// field must stay distinguishable from a field set to its zero value.
type Optional[T any] struct {
	value T
	set   bool
	null  bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// None returns an unset Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it was supplied with a non-null value.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set && !o.null
}

// IsSet reports whether the field was present, null included.
func (o Optional[T]) IsSet() bool { return o.set }

// IsNull reports whether the field was present with an explicit JSON null.
func (o Optional[T]) IsNull() bool { return o.set && o.null }

// OrElse returns the held value, or def when unset or null.
func (o Optional[T]) OrElse(def T) T {
	if v, ok := o.Get(); ok {
		return v
	}
	return def
}

// UnmarshalJSON is only invoked for keys present in the document, so an
// absent key leaves the Optional unset.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		o.value = zero
		o.null = true
		return nil
	}
	o.null = false
	return json.Unmarshal(data, &o.value)
}
