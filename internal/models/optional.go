package models

import (
	"bytes"
	"encoding/json"
)

// Optional representa um campo que pode estar ausente no JSON persistido.
// Usado com a tag `omitzero`: quando não definido, o campo some do documento.
type Optional[T any] struct {
	value T
	set   bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

func (o Optional[T]) OrElse(def T) T {
	if o.set {
		return o.value
	}
	return def
}

func (o Optional[T]) IsSet() bool {
	return o.set
}

// IsZero é usado pelo encoding/json com `omitzero`.
func (o Optional[T]) IsZero() bool {
	return !o.set
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = Optional[T]{}
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	*o = Some(v)
	return nil
}
