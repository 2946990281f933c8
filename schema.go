package record

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// Schema describes a record type: its ordered field list, the defaults
// and the validation rules. A schema is read-only once built and can be
// shared by any number of records and goroutines.
type Schema struct {
	name     string
	fields   []string
	index    map[string]int
	defaults map[string]any
	rules    map[string]any
}

// SchemaOption configures a schema during construction.
type SchemaOption func(*Schema) error

// NewSchema builds a schema with the given name and ordered field list.
// Field names must be non-empty and unique; defaults and rules may only
// reference declared fields.
//
// Example:
//
//	user := record.MustNewSchema("User", []string{"email", "name", "role"},
//		record.WithDefault("role", "member"),
//		record.WithRule("email", "required|email"),
//	)
//	u, err := user.New(record.WithValidator(v)).Set("email", "jane@example.com")
func NewSchema(name string, fields []string, opts ...SchemaOption) (*Schema, error) {
	s := &Schema{
		name:     name,
		fields:   make([]string, 0, len(fields)),
		index:    make(map[string]int, len(fields)),
		defaults: make(map[string]any),
		rules:    make(map[string]any),
	}

	for _, f := range fields {
		if f == "" {
			return nil, fmt.Errorf("%w: %s: empty field name", ErrInvalidSchema, name)
		}
		if _, dup := s.index[f]; dup {
			return nil, fmt.Errorf("%w: %s: duplicate field %q", ErrInvalidSchema, name, f)
		}
		s.index[f] = len(s.fields)
		s.fields = append(s.fields, f)
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, errors.Join(ErrInvalidSchema, err)
		}
	}

	return s, nil
}

// MustNewSchema works like NewSchema but panics on an invalid definition.
// Schemas are usually package-level values, so a bad one should stop startup.
func MustNewSchema(name string, fields []string, opts ...SchemaOption) *Schema {
	s, err := NewSchema(name, fields, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create record schema: %v", err))
	}
	return s
}

// WithDefault declares a default value for a field.
func WithDefault(field string, value any) SchemaOption {
	return func(s *Schema) error {
		if !s.HasField(field) {
			return fmt.Errorf("default for undeclared field %q in %s", field, s.name)
		}
		s.defaults[field] = value
		return nil
	}
}

// WithDefaults declares defaults for several fields at once.
func WithDefaults(defaults map[string]any) SchemaOption {
	return func(s *Schema) error {
		for _, field := range slices.Sorted(maps.Keys(defaults)) {
			if err := WithDefault(field, defaults[field])(s); err != nil {
				return err
			}
		}
		return nil
	}
}

// WithRule attaches an opaque validation rule to a field.
func WithRule(field string, rule any) SchemaOption {
	return func(s *Schema) error {
		if !s.HasField(field) {
			return fmt.Errorf("rule for undeclared field %q in %s", field, s.name)
		}
		s.rules[field] = rule
		return nil
	}
}

// WithRules attaches rules to several fields at once.
func WithRules(rules map[string]any) SchemaOption {
	return func(s *Schema) error {
		for _, field := range slices.Sorted(maps.Keys(rules)) {
			if err := WithRule(field, rules[field])(s); err != nil {
				return err
			}
		}
		return nil
	}
}

func (s *Schema) Name() string {
	return s.name
}

// Fields returns a copy of the field list in declaration order.
func (s *Schema) Fields() []string {
	return slices.Clone(s.fields)
}

func (s *Schema) Len() int {
	return len(s.fields)
}

func (s *Schema) HasField(field string) bool {
	_, ok := s.index[field]
	return ok
}

// Default returns the declared default for field.
func (s *Schema) Default(field string) (any, bool) {
	v, ok := s.defaults[field]
	return v, ok
}

// Rule returns the declared validation rule for field.
func (s *Schema) Rule(field string) (any, bool) {
	r, ok := s.rules[field]
	return r, ok
}

// New returns an empty record of this schema. Nothing is validated here.
func (s *Schema) New(opts ...Option) *Record {
	r := &Record{schema: s}
	for _, opt := range opts {
		opt(r)
	}
	r.force(nil)
	return r
}

// position reports the declaration index of field, or -1.
func (s *Schema) position(field string) int {
	if i, ok := s.index[field]; ok {
		return i
	}
	return -1
}
