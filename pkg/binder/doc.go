// Package binder builds records from HTTP requests.
//
// A Binder wraps a prototype record. Every request is decoded into a plain
// map and applied to the prototype, so the prototype's schema defaults and
// validator decide what ends up in the result. By default unknown keys are
// ignored (record Merge semantics); WithStrict rejects them with
// record.ErrUnknownField (record Make semantics).
//
// Supported sources:
//
//	JSON   application/json, numbers decoded as json.Number
//	YAML   application/yaml, application/x-yaml, text/yaml
//	Form   application/x-www-form-urlencoded, multipart/form-data
//	Query  URL query string
//	Path   router parameters through an extractor such as chi.URLParam
//
// Bind chooses between them by Content-Type.
//
// # Usage
//
//	engine := validator.New()
//	users := binder.New(
//		userSchema.New(record.WithValidator(engine)),
//		binder.WithExplainer(engine),
//	)
//
//	func create(w http.ResponseWriter, r *http.Request) {
//		u, err := users.Bind(r)
//		if err != nil {
//			if errs := validator.ExtractValidationErrors(err); errs != nil {
//				// per-directive details for the rejected field
//			}
//			...
//		}
//	}
//
// Form and query values are strings; rules that expect numbers should use
// "numeric" rather than "int".
package binder
