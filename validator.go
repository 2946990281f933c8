package record

// Validator checks a value against an opaque rule descriptor.
// The record never interprets rules; it only forwards them here.
type Validator interface {
	Validate(value, rule any) bool
}

// ValidatorFunc adapts a plain function to the Validator interface.
type ValidatorFunc func(value, rule any) bool

func (f ValidatorFunc) Validate(value, rule any) bool {
	return f(value, rule)
}
