package graph

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"gopkg.in/yaml.v3"
)

// KeySeparator joins scope and object in a composite key
const KeySeparator = "::"

// Placeholders for identity fields that are absent or null, so they never collide with ""
const (
	missingText = "undefined"
	nullText    = "null"
)

// ErrNotObject marks a line that parsed as JSON but is not an object
var ErrNotObject = errors.New("line is valid JSON but not an object")

// Record is one decoded line of the graph artifact
// S and O are the identity fields; everything else is opaque payload kept in raw
type Record struct {
	S string
	O string

	raw    json.RawMessage
	fields map[string]json.RawMessage
}

// Key returns the composite dedup key s::o
func (r Record) Key() string { return Key(r.S, r.O) }

// Key builds a composite key from scope and object
func Key(s, o string) string { return s + KeySeparator + o }

// Raw returns the record exactly as it appeared in the artifact (surrounding whitespace trimmed)
func (r Record) Raw() json.RawMessage { return r.raw }

// Field returns the raw JSON value of a field
func (r Record) Field(name string) (json.RawMessage, bool) {
	v, ok := r.fields[name]
	return v, ok
}

// Fields returns the field names present on the record
func (r Record) Fields() []string {
	out := make([]string, 0, len(r.fields))
	for k := range r.fields {
		out = append(out, k)
	}
	return out
}

// MarshalJSON re-emits the original line
func (r Record) MarshalJSON() ([]byte, error) {
	if len(r.raw) == 0 {
		return []byte("null"), nil
	}
	return r.raw, nil
}

// MarshalYAML exposes the decoded object so yaml encoders render it as a mapping
// numbers keep their original text
func (r Record) MarshalYAML() (any, error) {
	dec := json.NewDecoder(bytes.NewReader(r.raw))
	dec.UseNumber()
	var v map[string]any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return yamlNumbers(v), nil
}

// yamlNumbers swaps json.Number leaves for scalar nodes; a plain string would be quoted
func yamlNumbers(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			t[k] = yamlNumbers(e)
		}
		return t
	case []any:
		for i, e := range t {
			t[i] = yamlNumbers(e)
		}
		return t
	case json.Number:
		tag := "!!int"
		if strings.ContainsAny(string(t), ".eE") {
			tag = "!!float"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: t.String()}
	default:
		return v
	}
}

// UnmarshalJSON decodes a single line into a Record
func (r *Record) UnmarshalJSON(b []byte) error {
	rec, err := decodeRecord(b)
	if err != nil {
		return err
	}
	*r = rec
	return nil
}

// decodeRecord parses one trimmed line; only JSON objects are records
func decodeRecord(line []byte) (Record, error) {
	line = bytes.TrimSpace(line)
	if len(line) > 0 && line[0] != '{' && json.Valid(line) {
		return Record{}, ErrNotObject
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(line, &fields); err != nil {
		return Record{}, err
	}
	raw := make([]byte, len(line))
	copy(raw, line)
	return Record{
		S:      coerce(fields["s"]),
		O:      coerce(fields["o"]),
		raw:    raw,
		fields: fields,
	}, nil
}

// coerce turns a JSON value into key text the way template literals stringify
// strings are unquoted, missing is "undefined", null is "null", anything else keeps its compact JSON form
func coerce(v json.RawMessage) string {
	if len(v) == 0 {
		return missingText
	}
	// null would unmarshal into a string as a no-op
	if bytes.Equal(v, []byte("null")) {
		return nullText
	}
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, v); err != nil {
		return string(v)
	}
	return buf.String()
}
