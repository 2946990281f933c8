package validator

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/dmitrymomot/record"
	"github.com/dmitrymomot/record/pkg/cache"
	"github.com/dmitrymomot/record/pkg/logger"
)

// Check is a rule descriptor backed by plain Go code.
type Check func(value any) bool

// Engine evaluates rule descriptors. It implements record.Validator and is
// safe for concurrent use once built.
type Engine struct {
	directives   map[string]Directive
	strict       bool
	patternCache int
	log          *slog.Logger
	patterns     *cache.LRU[string, *regexp.Regexp] // nil disables caching
}

var _ record.Validator = (*Engine)(nil)

// Option configures an Engine.
type Option func(*Engine)

// WithStrict controls unknown directives: strict engines reject the value,
// lenient ones skip the directive. Both log a warning.
func WithStrict(strict bool) Option {
	return func(e *Engine) { e.strict = strict }
}

// WithLogger sets the logger used for rule definition problems.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithDirective registers a custom directive or replaces a built-in one.
func WithDirective(name string, d Directive) Option {
	return func(e *Engine) {
		if name != "" && d != nil {
			e.directives[name] = d
		}
	}
}

// WithPatternCache bounds the number of compiled regex patterns kept.
// Zero disables caching.
func WithPatternCache(n int) Option {
	return func(e *Engine) {
		if n >= 0 {
			e.patternCache = n
		}
	}
}

// New creates an engine with the built-in directives.
func New(opts ...Option) *Engine {
	cfg := DefaultConfig()
	return NewFromConfig(cfg, opts...)
}

// NewFromConfig creates an engine from Config, then applies opts on top.
func NewFromConfig(cfg Config, opts ...Option) *Engine {
	e := &Engine{
		directives:   builtinDirectives(),
		strict:       cfg.Strict,
		patternCache: cfg.PatternCache,
		log:          slog.New(slog.DiscardHandler),
	}
	e.directives["regex"] = e.regex

	for _, opt := range opts {
		opt(e)
	}
	if e.patternCache > 0 {
		e.patterns = cache.New[string, *regexp.Regexp](e.patternCache)
	}
	return e
}

// Validate reports whether value satisfies rule. Rule descriptors may be a
// directive string ("required|max:64"), a []string of directives, a Check
// or func(any) bool, or a []any mixing those.
func (e *Engine) Validate(value, rule any) bool {
	rules, err := e.compile("value", value, rule)
	if err != nil {
		e.log.Warn("invalid validation rule",
			logger.Rule(rule),
			logger.Error(err),
		)
		return false
	}

	for _, r := range rules {
		if !r.Check() {
			return false
		}
	}
	return true
}

// Explain evaluates rule and returns ValidationErrors describing every
// failing directive for field, nil when the value is valid, or a rule
// definition error.
func (e *Engine) Explain(field string, value, rule any) error {
	rules, err := e.compile(field, value, rule)
	if err != nil {
		return err
	}
	return Apply(rules...)
}

func (e *Engine) compile(field string, value, rule any) ([]Rule, error) {
	switch r := rule.(type) {
	case nil:
		return nil, nil
	case string:
		return e.compileDirectives(field, value, strings.Split(r, "|"))
	case []string:
		return e.compileDirectives(field, value, r)
	case Check:
		return []Rule{custom(field, value, r)}, nil
	case func(any) bool:
		return []Rule{custom(field, value, r)}, nil
	case Rule:
		return []Rule{r}, nil
	case []any:
		var out []Rule
		for _, item := range r {
			rules, err := e.compile(field, value, item)
			if err != nil {
				return nil, err
			}
			out = append(out, rules...)
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedRule, rule)
}

func (e *Engine) compileDirectives(field string, value any, parts []string) ([]Rule, error) {
	nullable := false
	rules := make([]Rule, 0, len(parts))
	var required []Rule // still enforced for nil under nullable

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, rawArgs, _ := strings.Cut(part, ":")
		if name == "nullable" {
			nullable = true
			continue
		}

		d, ok := e.directives[name]
		if !ok {
			err := fmt.Errorf("%w: %q", ErrUnknownDirective, name)
			if e.strict {
				return nil, err
			}
			e.log.Warn("skipping unknown validation directive",
				logger.Field(field),
				logger.Error(err),
			)
			continue
		}

		var args []string
		if name == "regex" {
			args = []string{rawArgs}
		} else if rawArgs != "" {
			args = strings.Split(rawArgs, ",")
		}

		r, err := d(field, value, args)
		if err != nil {
			return nil, errors.Join(fmt.Errorf("directive %q", name), err)
		}
		rules = append(rules, r)
		if name == "required" {
			required = append(required, r)
		}
	}

	if nullable && value == nil {
		return required, nil
	}
	return rules, nil
}

func custom(field string, value any, check func(any) bool) Rule {
	return Rule{
		Check: func() bool { return check(value) },
		Error: failure(field, "custom", "is invalid", "validation.invalid", nil),
	}
}

func (e *Engine) regex(field string, value any, args []string) (Rule, error) {
	if len(args) != 1 || args[0] == "" {
		return Rule{}, fmt.Errorf("%w: regex needs a pattern", ErrInvalidArgument)
	}
	re, err := e.pattern(args[0])
	if err != nil {
		return Rule{}, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	return Rule{
		Check: func() bool {
			s, ok := asString(value)
			return ok && re.MatchString(s)
		},
		Error: failure(field, "regex", "has an invalid format", "validation.pattern",
			map[string]any{"pattern": args[0]}),
	}, nil
}

// pattern compiles expr, reusing cached compilations when enabled.
func (e *Engine) pattern(expr string) (*regexp.Regexp, error) {
	if e.patterns == nil {
		return regexp.Compile(expr)
	}
	return e.patterns.GetOrAdd(expr, func() (*regexp.Regexp, error) {
		return regexp.Compile(expr)
	})
}
