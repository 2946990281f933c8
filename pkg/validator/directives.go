package validator

import (
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/language"
)

// Directive builds the Rule for one directive applied to a field value.
// args holds the comma separated arguments that follow the colon, e.g.
// "between:1,10" yields []string{"1", "10"}.
type Directive func(field string, value any, args []string) (Rule, error)

var (
	alphaRegex    = regexp.MustCompile(`^[a-zA-Z]+$`)
	alphanumRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	slugRegex     = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// builtinDirectives returns a fresh copy of the directive table.
func builtinDirectives() map[string]Directive {
	return map[string]Directive{
		"required": required,
		"string":   typeCheck("string", "must be a string", func(v any) bool { _, ok := asString(v); return ok }),
		"int":      typeCheck("int", "must be an integer", isInteger),
		"numeric":  typeCheck("numeric", "must be a number", isNumeric),
		"bool":     typeCheck("bool", "must be a boolean", func(v any) bool { _, ok := v.(bool); return ok }),
		"min":      bound("min", "must be at least %v", "validation.min", func(n, limit float64) bool { return n >= limit }),
		"max":      bound("max", "must be at most %v", "validation.max", func(n, limit float64) bool { return n <= limit }),
		"len":      bound("len", "must have size %v", "validation.exact_length", func(n, limit float64) bool { return n == limit }),
		"between":  between,
		"in":       membership("in", true),
		"not_in":   membership("not_in", false),
		"email":    format("email", "must be a valid email address", validEmail),
		"url":      format("url", "must be a valid URL", validURL),
		"uuid":     format("uuid", "must be a valid UUID", validUUID),
		"lang":     format("lang", "must be a valid language tag", validLanguage),
		"alpha":    format("alpha", "must contain only letters", alphaRegex.MatchString),
		"alphanum": format("alphanum", "must contain only letters and numbers", alphanumRegex.MatchString),
		"slug":     format("slug", "must be a lowercase slug", slugRegex.MatchString),
	}
}

func failure(field, directive, message, key string, values map[string]any) ValidationError {
	if values == nil {
		values = make(map[string]any, 1)
	}
	values["field"] = field
	return ValidationError{
		Field:             field,
		Directive:         directive,
		Message:           message,
		TranslationKey:    key,
		TranslationValues: values,
	}
}

func required(field string, value any, _ []string) (Rule, error) {
	return Rule{
		Check: func() bool { return !isEmpty(value) },
		Error: failure(field, "required", "field is required", "validation.required", nil),
	}, nil
}

func typeCheck(name, message string, check func(any) bool) Directive {
	return func(field string, value any, _ []string) (Rule, error) {
		return Rule{
			Check: func() bool { return check(value) },
			Error: failure(field, name, message, "validation."+name, nil),
		}, nil
	}
}

func isNumeric(value any) bool {
	if _, ok := number(value); ok {
		return true
	}
	if s, ok := asString(value); ok {
		_, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		return err == nil
	}
	return false
}

func parseLimit(directive string, args []string, want int) ([]float64, error) {
	if len(args) != want {
		return nil, fmt.Errorf("%w: %s expects %d argument(s), got %d", ErrInvalidArgument, directive, want, len(args))
	}
	out := make([]float64, 0, want)
	for _, a := range args {
		f, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s:%s", ErrInvalidArgument, directive, a)
		}
		out = append(out, f)
	}
	return out, nil
}

func bound(name, message, key string, ok func(n, limit float64) bool) Directive {
	return func(field string, value any, args []string) (Rule, error) {
		limits, err := parseLimit(name, args, 1)
		if err != nil {
			return Rule{}, err
		}
		limit := limits[0]
		return Rule{
			Check: func() bool {
				n, measurable := size(value)
				return measurable && ok(n, limit)
			},
			Error: failure(field, name, fmt.Sprintf(message, limit), key, map[string]any{name: limit}),
		}, nil
	}
}

func between(field string, value any, args []string) (Rule, error) {
	limits, err := parseLimit("between", args, 2)
	if err != nil {
		return Rule{}, err
	}
	lo, hi := limits[0], limits[1]
	if lo > hi {
		return Rule{}, fmt.Errorf("%w: between:%v,%v has min above max", ErrInvalidArgument, lo, hi)
	}
	return Rule{
		Check: func() bool {
			n, ok := size(value)
			return ok && n >= lo && n <= hi
		},
		Error: failure(field, "between", fmt.Sprintf("must be between %v and %v", lo, hi), "validation.between",
			map[string]any{"min": lo, "max": hi}),
	}, nil
}

func membership(name string, want bool) Directive {
	return func(field string, value any, args []string) (Rule, error) {
		if len(args) == 0 {
			return Rule{}, fmt.Errorf("%w: %s needs at least one option", ErrInvalidArgument, name)
		}
		message := "must be one of: %s"
		key := "validation.in_list"
		if !want {
			message = "must not be one of: %s"
			key = "validation.not_in_list"
		}
		return Rule{
			Check: func() bool {
				if value == nil {
					return !want
				}
				return slices.Contains(args, text(value)) == want
			},
			Error: failure(field, name, fmt.Sprintf(message, strings.Join(args, ", ")), key,
				map[string]any{"values": args}),
		}, nil
	}
}

func format(name, message string, check func(string) bool) Directive {
	return func(field string, value any, _ []string) (Rule, error) {
		return Rule{
			Check: func() bool {
				s, ok := asString(value)
				return ok && check(s)
			},
			Error: failure(field, name, message, "validation."+name, nil),
		}, nil
	}
}

func validEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return false
	}
	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}
	if !strings.Contains(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

func validURL(value string) bool {
	u, err := url.ParseRequestURI(value)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

func validUUID(value string) bool {
	_, err := uuid.Parse(value)
	return err == nil
}

func validLanguage(value string) bool {
	if value == "" {
		return false
	}
	_, err := language.Parse(value)
	return err == nil
}
