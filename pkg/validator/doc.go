// Package validator provides a directive-based rule engine that plugs into
// record schemas as their record.Validator.
//
// A rule descriptor is whatever you attach to a schema field with
// record.WithRule. The engine understands:
//
//   - a directive string such as "required|min:3|max:64";
//   - a []string of directives, useful when an argument contains '|'
//     (for example "regex:^(draft|published)$");
//   - a Check (or plain func(any) bool) for rules written in Go;
//   - a []any mixing any of the above, all of which must pass.
//
// # Directives
//
//	required            non-nil, non-blank string, non-empty collection
//	nullable            nil skips every other directive except required
//	string int numeric bool
//	min:n max:n len:n   numbers compare by value, strings by rune count,
//	between:a,b         slices and maps by length
//	in:a,b,...  not_in:a,b,...
//	email url uuid lang alpha alphanum slug
//	regex:pattern
//
// Custom directives are registered with WithDirective.
//
// # Usage
//
//	engine := validator.New(validator.WithLogger(log))
//
//	user := record.MustNewSchema("User", []string{"email", "age"},
//		record.WithRules(map[string]any{
//			"email": "required|email",
//			"age":   "nullable|int|between:13,130",
//		}),
//	)
//	u, err := user.New(record.WithValidator(engine)).Set("email", "nope")
//	// errors.Is(err, record.ErrValidationFailed)
//
// # Error Handling
//
// Validate answers yes or no as the record contract requires. Explain runs
// the same rule and returns ValidationErrors, one entry per failing
// directive, each with a TranslationKey and TranslationValues ready for i18n.
// ValidationErrors matches ErrValidationFailed with errors.Is.
//
// A malformed rule (unknown directive in strict mode, bad argument,
// unsupported descriptor type) makes Validate return false and log a warning;
// Explain returns the definition error itself.
//
// # Configuration
//
// Config can be loaded from RECORD_VALIDATOR_* environment variables with
// LoadConfig and passed to NewFromConfig.
package validator
