// Package modmap flattens structs and maps into ordered key/value entries.
//
// Go maps carry no order, but a struct does: its fields are declared in a
// fixed sequence. modmap walks a struct in that sequence and round-trips each
// field value through msgpack, so nested structs and maps come back as plain
// map[string]any. Other values are encoded whole and read back one pair at a
// time; map[string]any and map[string]string inputs are encoded with sorted
// keys, so their output order is deterministic too.
//
// Field names follow msgpack rules. The `mod` struct tag is honoured when no
// `msgpack` tag is present:
//
//	type ButtonProps struct {
//	    Size     string `mod:"size"`
//	    Disabled bool   `mod:"disabled,omitempty"`
//	    OnClick  string `mod:"-"`
//	}
package modmap

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// StructTag is the fallback struct tag consulted after `msgpack`.
const StructTag = "mod"

// ErrNotMapping is returned when a value does not encode to a string-keyed map.
var ErrNotMapping = errors.New("modmap: value is not a mapping")

// Entry is one key/value pair in encoding order.
//
// Value is one of nil, bool, int64, uint64, float64, string, []byte,
// []any, map[string]any, or a type produced by a registered msgpack extension
// such as time.Time.
type Entry struct {
	Key   string
	Value any
}

// Entries encodes v and returns its top-level pairs in order.
//
// A struct is encoded field by field. A field msgpack cannot encode, such as
// a func or chan, is returned with its Go value unchanged so the caller can
// decide to drop it. A nil map or nil pointer yields no entries and no error.
func Entries(v any) ([]Entry, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, nil
		}
		if implementsEncoder(rv.Type()) {
			return encodeMap(v)
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct || implementsEncoder(rv.Type()) {
		return encodeMap(v)
	}

	var entries []Entry
	structEntries(rv, &entries)
	return entries, nil
}

// structEntries appends the fields of rv using msgpack's naming rules:
// the `msgpack` tag, then the `mod` tag, then the field name. Untagged
// embedded structs are inlined.
func structEntries(rv reflect.Value, entries *[]Entry) {
	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		fv := rv.Field(i)

		tag, ok := f.Tag.Lookup("msgpack")
		if !ok || tag == "" {
			tag = f.Tag.Get(StructTag)
		}
		name, flags, _ := strings.Cut(tag, ",")
		if name == "-" {
			continue
		}

		if f.Anonymous && name == "" && !strings.Contains(flags, "noinline") {
			inner := fv
			if inner.Kind() == reflect.Pointer {
				if inner.IsNil() {
					continue
				}
				inner = inner.Elem()
			}
			if inner.Kind() == reflect.Struct {
				structEntries(inner, entries)
				continue
			}
		}
		if !f.IsExported() {
			continue
		}
		if strings.Contains(flags, "omitempty") && fv.IsZero() {
			continue
		}
		if name == "" {
			name = f.Name
		}

		val, err := encodeValue(fv.Interface())
		if err != nil {
			val = fv.Interface()
		}
		*entries = append(*entries, Entry{Key: name, Value: val})
	}
}

// encodeValue round-trips a single value through msgpack.
func encodeValue(v any) (any, error) {
	var buf bytes.Buffer
	enc := newEncoder(&buf)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return msgpack.NewDecoder(&buf).DecodeInterfaceLoose()
}

// encodeMap encodes v whole and reads it back as a string-keyed map.
func encodeMap(v any) ([]Entry, error) {
	var buf bytes.Buffer
	if err := newEncoder(&buf).Encode(v); err != nil {
		return nil, fmt.Errorf("modmap: encode %T: %w", v, err)
	}

	dec := msgpack.NewDecoder(&buf)
	n, err := dec.DecodeMapLen()
	if err != nil {
		return nil, fmt.Errorf("%w: %T", ErrNotMapping, v)
	}
	if n < 0 {
		return nil, nil
	}

	entries := make([]Entry, 0, n)
	for i := 0; i < n; i++ {
		key, err := dec.DecodeString()
		if err != nil {
			return nil, fmt.Errorf("%w: %T has a non-string key", ErrNotMapping, v)
		}
		val, err := dec.DecodeInterfaceLoose()
		if err != nil {
			return nil, fmt.Errorf("modmap: decode %q: %w", key, err)
		}
		entries = append(entries, Entry{Key: key, Value: val})
	}

	return entries, nil
}

func newEncoder(w io.Writer) *msgpack.Encoder {
	enc := msgpack.NewEncoder(w)
	enc.SetCustomStructTag(StructTag)
	enc.SetSortMapKeys(true)
	return enc
}

var (
	customEncoderType = reflect.TypeOf((*msgpack.CustomEncoder)(nil)).Elem()
	marshalerType     = reflect.TypeOf((*msgpack.Marshaler)(nil)).Elem()
)

// implementsEncoder reports whether t controls its own msgpack encoding.
func implementsEncoder(t reflect.Type) bool {
	return t.Implements(customEncoderType) || t.Implements(marshalerType)
}
