package record

import (
	"iter"
	"reflect"
)

// All yields the present fields and their resolved values in declaration
// order. Fields with neither a value nor a default are skipped. Each call
// starts a new traversal.
//
//	for field, value := range r.All() {
//		fmt.Println(field, value)
//	}
func (r *Record) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, field := range r.schema.fields {
			v, ok := r.lookup(field)
			if !ok {
				continue
			}
			if !yield(field, v) {
				return
			}
		}
	}
}

// Keys returns the present field names in declaration order.
func (r *Record) Keys() []string {
	keys := make([]string, 0, len(r.schema.fields))
	for field := range r.All() {
		keys = append(keys, field)
	}
	return keys
}

// Len is the number of present fields, not the schema width.
func (r *Record) Len() int {
	n := 0
	for _, field := range r.schema.fields {
		if r.Has(field) {
			n++
		}
	}
	return n
}

// Equals reports whether both records resolve to the same content.
// Which fields were defaulted and which were set does not matter, nor does
// the schema identity: only the resolved field/value view is compared.
func (r *Record) Equals(other *Record) bool {
	if r == other {
		return true
	}
	if r == nil || other == nil {
		return false
	}
	return reflect.DeepEqual(r.view(), other.view())
}

func (r *Record) lookup(field string) (any, bool) {
	if v, ok := r.data[field]; ok {
		return v, true
	}
	return r.schema.Default(field)
}

// view is the resolved content of present fields with nested records
// expanded the way ToMap expands them (a nil *Record becomes nil). It never
// fails, unlike ToMap.
func (r *Record) view() map[string]any {
	out := make(map[string]any, len(r.schema.fields))
	for field, v := range r.All() {
		switch nested := v.(type) {
		case *Record:
			if nested == nil {
				out[field] = nil
			} else {
				out[field] = nested.view()
			}
			continue
		case Mapper:
			if m, err := nested.ToMap(); err == nil {
				out[field] = m
				continue
			}
		}
		out[field] = v
	}
	return out
}
