package domain

import "encoding/json"

// Optional is a patch field that distinguishes "key absent" from "key
// present with null" from "key present with a value". A plain pointer
// cannot make that distinction, and partial updates depend on it: absent
// fields are left untouched while explicit nulls clear nullable fields.
type Optional[T any] struct {
	value T
	set   bool
	null  bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] { return Optional[T]{value: v, set: true} }

// Null returns an Optional that was explicitly set to null.
func Null[T any]() Optional[T] { return Optional[T]{set: true, null: true} }

// IsSet reports whether the field was present at all (value or null).
func (o Optional[T]) IsSet() bool { return o.set }

// IsNull reports whether the field was explicitly set to null.
func (o Optional[T]) IsNull() bool { return o.set && o.null }

// Get returns the value and whether a non-null value is present.
func (o Optional[T]) Get() (T, bool) {
	if !o.set || o.null {
		var zero T
		return zero, false
	}
	return o.value, true
}

// UnmarshalJSON is only invoked for keys present in the document, which is
// what makes presence detection work.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.set = true
	if string(data) == "null" {
		o.null = true
		return nil
	}
	return json.Unmarshal(data, &o.value)
}

// MarshalJSON encodes null for unset or null fields.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.set || o.null {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}
