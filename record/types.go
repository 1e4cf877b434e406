package record

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/ksuid"
)

// Type identifies the declared type of a record field.
type Type string

const (
	TypeAny       Type = "any"
	TypeString    Type = "string"
	TypeInteger   Type = "integer"
	TypeFloat     Type = "float"
	TypeBoolean   Type = "boolean"
	TypeTimestamp Type = "timestamp"
	TypeBytes     Type = "bytes"
	TypeUUID      Type = "uuid"
	TypeKSUID     Type = "ksuid"
	TypeStrings   Type = "string[]"
	TypeObject    Type = "object"
	TypeJSON      Type = "json"
)

// String returns the string representation of the type.
func (t Type) String() string {
	return string(t)
}

// IsValid checks whether the type is a known value.
func (t Type) IsValid() bool {
	switch t {
	case TypeAny, TypeString, TypeInteger, TypeFloat, TypeBoolean,
		TypeTimestamp, TypeBytes, TypeUUID, TypeKSUID, TypeStrings,
		TypeObject, TypeJSON:
		return true
	}
	return false
}

// ParseType maps a type name to a Type. The empty string resolves to TypeAny,
// matching the treatment of fields declared without a type.
func ParseType(s string) (Type, error) {
	if s == "" {
		return TypeAny, nil
	}
	t := Type(s)
	if !t.IsValid() {
		return "", fmt.Errorf("unknown field type %q", s)
	}
	return t, nil
}

// Accepts reports whether a value satisfies the type. Nil is accepted for
// every type; requiredness is enforced separately. No coercion is attempted,
// but values arriving from decoded JSON are recognized in their wire shape:
// integers as integral float64, timestamps as RFC 3339 strings, identifiers
// as their canonical string forms, and string arrays as []any of strings.
func (t Type) Accepts(v any) bool {
	if v == nil {
		return true
	}
	switch t {
	case TypeAny, TypeJSON:
		return true
	case TypeString:
		_, ok := v.(string)
		return ok
	case TypeInteger:
		switch n := v.(type) {
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
			return true
		case float64:
			return n == math.Trunc(n)
		}
		return false
	case TypeFloat:
		switch v.(type) {
		case float32, float64, int, int8, int16, int32, int64:
			return true
		}
		return false
	case TypeBoolean:
		_, ok := v.(bool)
		return ok
	case TypeTimestamp:
		switch s := v.(type) {
		case time.Time:
			return true
		case string:
			_, err := time.Parse(time.RFC3339, s)
			return err == nil
		}
		return false
	case TypeBytes:
		switch v.(type) {
		case []byte, string:
			return true
		}
		return false
	case TypeUUID:
		switch s := v.(type) {
		case uuid.UUID:
			return true
		case string:
			_, err := uuid.Parse(s)
			return err == nil
		}
		return false
	case TypeKSUID:
		switch s := v.(type) {
		case ksuid.KSUID:
			return true
		case string:
			_, err := ksuid.Parse(s)
			return err == nil
		}
		return false
	case TypeStrings:
		switch arr := v.(type) {
		case []string:
			return true
		case []any:
			for _, elem := range arr {
				if _, ok := elem.(string); !ok {
					return false
				}
			}
			return true
		}
		return false
	case TypeObject:
		_, ok := v.(map[string]any)
		return ok
	}
	return false
}
