package record

import "github.com/groblegark/recordkit/codec"

// JSONValue implements codec.JSONRepresentable, so a Record nested inside a
// larger structure encodes as its field mapping.
func (r *Record) JSONValue() (any, error) {
	return r.Fields(), nil
}

// Map returns a JSON-native copy of the record's fields via the codec. With
// excludeNone set, nil-valued fields are dropped.
func (r *Record) Map(excludeNone bool) (map[string]any, error) {
	return codec.Sanitize(r.values, excludeNone)
}

// JSON renders the record's fields as indented JSON text.
func (r *Record) JSON(excludeNone bool) ([]byte, error) {
	return codec.Marshal(r.values, excludeNone)
}
