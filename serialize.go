package record

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/crypto/blake2b"
	"gopkg.in/yaml.v3"
)

// Mapper is implemented by values that convert themselves to a plain map.
// Record implements it; nested Mappers are expanded during serialization.
type Mapper interface {
	ToMap() (map[string]any, error)
}

// Pair is one resolved field of a record.
type Pair struct {
	Field string
	Value any
}

// Pairs returns every declared field with its resolved value in declaration
// order. Nested records and Mappers are expanded. It fails with
// ErrMissingValue if any field has neither a value nor a default.
func (r *Record) Pairs() ([]Pair, error) {
	pairs := make([]Pair, 0, len(r.schema.fields))
	for _, field := range r.schema.fields {
		v, err := r.Get(field)
		if err != nil {
			return nil, err
		}
		v, err = expand(v)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", r.schema.name, field, err)
		}
		pairs = append(pairs, Pair{Field: field, Value: v})
	}
	return pairs, nil
}

// ToMap returns the plain, JSON-friendly form of the record.
// See Pairs for the failure conditions.
func (r *Record) ToMap() (map[string]any, error) {
	pairs, err := r.Pairs()
	if err != nil {
		return nil, err
	}
	out := make(map[string]any, len(pairs))
	for _, p := range pairs {
		out[p.Field] = p.Value
	}
	return out, nil
}

// MarshalJSON encodes the record as a JSON object whose keys follow the
// declaration order of the schema.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, field := range r.schema.fields {
		v, err := r.Get(field)
		if err != nil {
			return nil, err
		}
		if _, nested := v.(*Record); !nested {
			if v, err = expand(v); err != nil {
				return nil, err
			}
		}

		key, err := json.Marshal(field)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", r.schema.name, field, err)
		}

		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the record as an ordered YAML mapping.
func (r *Record) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, field := range r.schema.fields {
		v, err := r.Get(field)
		if err != nil {
			return nil, err
		}
		if _, nested := v.(*Record); !nested {
			if v, err = expand(v); err != nil {
				return nil, err
			}
		}

		valueNode := &yaml.Node{}
		if err := valueNode.Encode(v); err != nil {
			return nil, fmt.Errorf("%s.%s: %w", r.schema.name, field, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: field},
			valueNode,
		)
	}
	return node, nil
}

// Hash returns a hex BLAKE2b-256 digest of the record's JSON form.
// Content-equal records of schemas with the same field order share a hash,
// which makes it usable as a cache or deduplication key.
func (r *Record) Hash() (string, error) {
	data, err := r.MarshalJSON()
	if err != nil {
		return "", err
	}
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// String renders the present fields for debugging, e.g. User{email:a@b.c role:member}.
func (r *Record) String() string {
	var b strings.Builder
	b.WriteString(r.schema.name)
	b.WriteByte('{')
	first := true
	for field, v := range r.All() {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&b, "%s:%v", field, v)
	}
	b.WriteByte('}')
	return b.String()
}

func expand(v any) (any, error) {
	if rec, ok := v.(*Record); ok && rec == nil {
		return nil, nil
	}
	if m, ok := v.(Mapper); ok {
		return m.ToMap()
	}
	return v, nil
}
