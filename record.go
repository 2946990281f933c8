package record

import (
	"iter"
	"maps"
	"slices"
)

// Record is an immutable value of a Schema. Every derivation (Set, Update,
// Make, Merge, Reset) returns a new Record and leaves the receiver intact,
// so a Record can be shared between goroutines without synchronization.
//
// Values are stored as given. Mutable values such as slices or maps are not
// deep-copied; callers must not change them after handing them to a record.
type Record struct {
	schema    *Schema
	validator Validator
	data      map[string]any
}

// Option configures a record created by Schema.New.
type Option func(*Record)

// WithValidator attaches a validator. It is carried forward to every record
// derived from this one. A nil validator disables rule checks.
func WithValidator(v Validator) Option {
	return func(r *Record) {
		r.validator = v
	}
}

func (r *Record) Schema() *Schema {
	return r.schema
}

func (r *Record) Validator() Validator {
	return r.validator
}

// Get resolves a field: assigned value first, then the schema default.
// It fails with ErrUnknownField for undeclared names and ErrMissingValue
// when the field has neither.
func (r *Record) Get(name string) (any, error) {
	if !r.schema.HasField(name) {
		return nil, newFieldError(r.schema, name, ErrUnknownField)
	}
	if v, ok := r.data[name]; ok {
		return v, nil
	}
	if v, ok := r.schema.Default(name); ok {
		return v, nil
	}
	return nil, newFieldError(r.schema, name, ErrMissingValue)
}

// Has reports whether the field is assigned or has a default.
// Unknown names report false.
func (r *Record) Has(name string) bool {
	if _, ok := r.data[name]; ok {
		return true
	}
	_, ok := r.schema.Default(name)
	return ok
}

// IsAssigned reports whether the field was set explicitly on this record.
func (r *Record) IsAssigned(name string) bool {
	_, ok := r.data[name]
	return ok
}

// Set returns a copy of the record with name set to value.
func (r *Record) Set(name string, value any) (*Record, error) {
	if err := r.validate(name, value); err != nil {
		return nil, err
	}

	data := maps.Clone(r.data)
	data[name] = value

	return r.derive(data), nil
}

// Update is shorthand for Set(name, fn(Get(name))).
func (r *Record) Update(name string, fn func(any) any) (*Record, error) {
	current, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	return r.Set(name, fn(current))
}

// Make builds a fresh record of the same schema and validator from init.
// The receiver's own values are not carried over. Every entry is validated
// as in Set; an undeclared key fails the whole call.
func (r *Record) Make(init map[string]any) (*Record, error) {
	return r.MakeFrom(entries(r.schema, init))
}

// MakeFrom is Make over an arbitrary key/value sequence, for example
// another record's All.
func (r *Record) MakeFrom(src iter.Seq2[string, any]) (*Record, error) {
	data := make(map[string]any)
	for name, value := range src {
		if err := r.validate(name, value); err != nil {
			return nil, err
		}
		data[name] = value
	}
	return r.derive(data), nil
}

// Merge returns a copy of the record with the declared entries of src
// written over it. Undeclared keys are ignored.
func (r *Record) Merge(src map[string]any) (*Record, error) {
	return r.MergeFrom(entries(r.schema, src))
}

// MergeFrom is Merge over an arbitrary key/value sequence.
func (r *Record) MergeFrom(src iter.Seq2[string, any]) (*Record, error) {
	data := maps.Clone(r.data)
	for name, value := range src {
		if !r.schema.HasField(name) {
			continue
		}
		if err := r.validate(name, value); err != nil {
			return nil, err
		}
		data[name] = value
	}
	return r.derive(data), nil
}

// Reset returns a copy of the record with the explicit value of name
// removed, so the field falls back to its default. Fields without a
// default cannot be reset.
func (r *Record) Reset(name string) (*Record, error) {
	if !r.schema.HasField(name) {
		return nil, newFieldError(r.schema, name, ErrUnknownField)
	}
	if _, ok := r.schema.Default(name); !ok {
		return nil, newFieldError(r.schema, name, ErrImmutableMutation)
	}

	data := maps.Clone(r.data)
	delete(data, name)

	return r.derive(data), nil
}

func (r *Record) validate(name string, value any) error {
	if !r.schema.HasField(name) {
		return newFieldError(r.schema, name, ErrUnknownField)
	}
	if r.validator == nil {
		return nil
	}
	rule, ok := r.schema.Rule(name)
	if !ok {
		return nil
	}
	if !r.validator.Validate(value, rule) {
		return newFieldError(r.schema, name, ErrValidationFailed)
	}
	return nil
}

// derive creates a sibling record owning data. The caller must not keep
// a reference to data.
func (r *Record) derive(data map[string]any) *Record {
	next := &Record{schema: r.schema, validator: r.validator}
	next.force(data)
	return next
}

// force replaces the assigned values wholesale, without validation.
// Only call it on a record that has not been handed out yet.
func (r *Record) force(data map[string]any) {
	if data == nil {
		data = make(map[string]any)
	}
	r.data = data
}

// entries yields the map in a stable order: declared fields by position,
// then undeclared keys by name.
func entries(s *Schema, m map[string]any) iter.Seq2[string, any] {
	keys := slices.Collect(maps.Keys(m))
	slices.SortFunc(keys, func(a, b string) int {
		pa, pb := s.position(a), s.position(b)
		switch {
		case pa >= 0 && pb >= 0:
			return pa - pb
		case pa >= 0:
			return -1
		case pb >= 0:
			return 1
		}
		if a < b {
			return -1
		}
		if a > b {
			return 1
		}
		return 0
	})

	return func(yield func(string, any) bool) {
		for _, k := range keys {
			if !yield(k, m[k]) {
				return
			}
		}
	}
}
