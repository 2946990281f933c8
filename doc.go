// Package record provides immutable, schema-constrained records: value
// objects whose field set, defaults and per-field validation rules are fixed
// when the type is defined, and whose every modification yields a new value.
//
// A Schema carries the three descriptors of a record type: the ordered list
// of field names, the default values and the validation rules. Records are
// created from a schema and derived from one another:
//
//	var Article = record.MustNewSchema("Article",
//		[]string{"title", "slug", "status", "tags"},
//		record.WithDefaults(map[string]any{"status": "draft", "tags": []string{}}),
//		record.WithRules(map[string]any{"title": "required|max:120", "slug": "slug"}),
//	)
//
//	proto := Article.New(record.WithValidator(validator.New()))
//
//	a, err := proto.Make(map[string]any{"title": "Hello", "slug": "hello"})
//	if err != nil {
//		// errors.Is(err, record.ErrValidationFailed), record.ErrUnknownField ...
//	}
//	published, err := a.Set("status", "published") // a is unchanged
//
// # Reading
//
// Get resolves the assigned value first, then the schema default, and fails
// with ErrUnknownField or ErrMissingValue otherwise. Has reports whether a
// field resolves at all. Exists and Index are the map-style counterparts;
// Put and Delete always fail with ErrImmutableMutation.
//
// # Deriving
//
// Set, Update, Make, Merge and Reset validate their input against the field
// list and, when a Validator is attached, against the declared rules. They
// are atomic: on error no record is returned and the receiver is untouched.
// Merge silently drops undeclared keys while Make rejects them.
//
// # Iteration and serialization
//
// All yields present fields in declaration order, skipping fields without
// value or default, and Len counts them. ToMap, Pairs, MarshalJSON and
// MarshalYAML render every declared field, expanding nested records, and
// fail with ErrMissingValue if any field cannot be resolved. Equals compares
// resolved content, never identity or the defaulted/assigned split.
//
// # Validation
//
// Rules are opaque to this package. A Validator receives the value and the
// rule and answers yes or no; see pkg/validator for a directive-based engine
// ("required|min:3|email"). Without a validator, rules are not checked.
package record
