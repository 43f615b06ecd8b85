package model

import (
	"bytes"
	"encoding/json"
)

// Optional distinguishes an absent JSON field from an explicit null in
// partial-update documents. Absent fields keep their stored value; an
// explicit null clears a nullable field.
type Optional[T any] struct {
	Set   bool
	Value *T
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(b, []byte("null")) {
		o.Value = nil
		return nil
	}
	return json.Unmarshal(b, &o.Value)
}
