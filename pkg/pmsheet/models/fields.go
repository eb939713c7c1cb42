// Package models defines data structures for maintenance schedule extraction.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Field is one named scalar. Value is nil, a string, an int64 or a float64.
type Field struct {
	Name  string
	Value interface{}
}

// Fields is an ordered set of named scalars. It marshals to a JSON object
// whose keys keep the slice order.
type Fields []Field

// Get returns the value of the first field with the given name.
func (fs Fields) Get(name string) (interface{}, bool) {
	for _, f := range fs {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Names returns the field names in order.
func (fs Fields) Names() []string {
	names := make([]string, len(fs))
	for i, f := range fs {
		names[i] = f.Name
	}
	return names
}

// MarshalJSON implements json.Marshaler.
func (fs Fields) MarshalJSON() ([]byte, error) {
	w := newObjectWriter()
	for _, f := range fs {
		if err := w.field(f.Name, Scalar(f.Value)); err != nil {
			return nil, err
		}
	}
	return w.close(), nil
}

// Scalar coerces v to a JSON primitive. Strings, numbers, booleans and nil
// pass through; anything else is converted to its text form.
func Scalar(v interface{}) interface{} {
	switch t := v.(type) {
	case nil, string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return v
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(v)
	}
}

// objectWriter builds a JSON object with keys in insertion order.
type objectWriter struct {
	buf bytes.Buffer
	n   int
}

func newObjectWriter() *objectWriter {
	w := &objectWriter{}
	w.buf.WriteByte('{')
	return w
}

func (w *objectWriter) field(name string, v interface{}) error {
	key, err := marshal(name)
	if err != nil {
		return err
	}
	val, err := marshal(v)
	if err != nil {
		return fmt.Errorf("field %q: %w", name, err)
	}
	if w.n > 0 {
		w.buf.WriteByte(',')
	}
	w.buf.Write(key)
	w.buf.WriteByte(':')
	w.buf.Write(val)
	w.n++
	return nil
}

func (w *objectWriter) close() []byte {
	w.buf.WriteByte('}')
	return w.buf.Bytes()
}

// marshal encodes v without HTML escaping so labels such as "Qty. <5>"
// survive unchanged.
func marshal(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
