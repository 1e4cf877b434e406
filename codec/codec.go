// Package codec converts records and arbitrary nested structures to and from
// a JSON-native representation. Values without a native JSON form are handled
// by built-in rules (timestamps, unique identifiers, raw bytes) or by opting
// into the JSONRepresentable capability; everything else is rejected rather
// than silently dropped.
package codec

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/segmentio/ksuid"
)

// JSONRepresentable is the capability a value type implements to supply its
// own JSON-native representation. The encoder consults it after the built-in
// rules and before failing.
type JSONRepresentable interface {
	JSONValue() (any, error)
}

// UnsupportedTypeError reports a value for which no encoding rule applies.
type UnsupportedTypeError struct {
	Value any
}

// Error formats the error with the offending Go type.
func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("codec: unsupported type %T", e.Value)
}

// Encode converts a value into a JSON-native tree: nil, bool, number, string,
// []any, or map[string]any. Rules, first match wins:
//  1. time.Time renders as an RFC 3339 string in the value's local offset.
//  2. uuid.UUID and ksuid.KSUID render as their canonical string forms.
//  3. []byte decodes as UTF-8 text when valid, else base64.
//  4. JSON-native values pass through; maps and sequences recurse.
//  5. A JSONRepresentable value contributes its own representation.
//  6. Anything else fails with *UnsupportedTypeError.
func Encode(v any) (any, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case time.Time:
		return t.Local().Format(time.RFC3339Nano), nil
	case uuid.UUID:
		return t.String(), nil
	case ksuid.KSUID:
		return t.String(), nil
	case []byte:
		if utf8.Valid(t) {
			return string(t), nil
		}
		return base64.StdEncoding.EncodeToString(t), nil
	case bool, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, json.Number:
		return v, nil
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, elem := range t {
			ev, err := Encode(elem)
			if err != nil {
				return nil, err
			}
			out[k] = ev
		}
		return out, nil
	case []any:
		out := make([]any, len(t))
		for i, elem := range t {
			ev, err := Encode(elem)
			if err != nil {
				return nil, err
			}
			out[i] = ev
		}
		return out, nil
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out, nil
	}
	if jr, ok := v.(JSONRepresentable); ok {
		rep, err := jr.JSONValue()
		if err != nil {
			return nil, fmt.Errorf("codec: %T: %w", v, err)
		}
		return Encode(rep)
	}
	return nil, &UnsupportedTypeError{Value: v}
}

// Sanitize is the canonical "clone to plain data" operation: it encodes a
// mapping into a structurally equivalent tree built entirely of JSON-native
// types, in a single walk. With excludeNone set, nil-valued mapping entries
// are dropped at every depth; sequence elements are never dropped.
func Sanitize(m map[string]any, excludeNone bool) (map[string]any, error) {
	ev, err := Encode(m)
	if err != nil {
		return nil, err
	}
	out := ev.(map[string]any)
	if excludeNone {
		out = pruneMap(out)
	}
	return out, nil
}

// Marshal renders a value as indented JSON text of its encoded form. With
// excludeNone set, nil-valued mapping entries are dropped as in Sanitize.
func Marshal(v any, excludeNone bool) ([]byte, error) {
	ev, err := Encode(v)
	if err != nil {
		return nil, err
	}
	if excludeNone {
		ev = prune(ev)
	}
	data, err := json.MarshalIndent(ev, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("codec: %w", err)
	}
	return data, nil
}

// Unmarshal parses JSON text into a JSON-native tree.
func Unmarshal(data []byte) (any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("codec: %w", err)
	}
	return v, nil
}

// prune drops nil-valued entries from every mapping in an encoded tree.
func prune(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return pruneMap(t)
	case []any:
		out := make([]any, len(t))
		for i, elem := range t {
			out[i] = prune(elem)
		}
		return out
	}
	return v
}

func pruneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if v == nil {
			continue
		}
		out[k] = prune(v)
	}
	return out
}
