package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/record"
	"github.com/dmitrymomot/record/pkg/logger"
)

// Explainer turns a rejected field value into a detailed error.
// *validator.Engine implements it.
type Explainer interface {
	Explain(field string, value, rule any) error
}

// Binder builds records from HTTP requests. Input is applied to a prototype
// record: merged onto it by default, or used to Make a fresh record in
// strict mode, where undeclared keys fail with record.ErrUnknownField.
type Binder struct {
	proto     *record.Record
	strict    bool
	maxBody   int64
	explainer Explainer
	log       *slog.Logger
}

// Option configures a Binder.
type Option func(*Binder)

// WithStrict switches between Make (strict) and Merge (lenient) semantics.
func WithStrict(strict bool) Option {
	return func(b *Binder) { b.strict = strict }
}

// WithMaxBodySize limits the accepted body size. Non-positive values are ignored.
func WithMaxBodySize(n int64) Option {
	return func(b *Binder) {
		if n > 0 {
			b.maxBody = n
		}
	}
}

// WithExplainer attaches validation details to rejected values.
func WithExplainer(e Explainer) Option {
	return func(b *Binder) { b.explainer = e }
}

// WithLogger sets the logger for rejected requests. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(b *Binder) {
		if l != nil {
			b.log = l
		}
	}
}

// New creates a binder for the prototype's schema and validator.
func New(proto *record.Record, opts ...Option) *Binder {
	return NewFromConfig(proto, DefaultConfig(), opts...)
}

// NewFromConfig creates a binder from Config, then applies opts on top.
func NewFromConfig(proto *record.Record, cfg Config, opts ...Option) *Binder {
	b := &Binder{
		proto:   proto,
		strict:  cfg.Strict,
		maxBody: DefaultMaxBodySize,
		log:     logger.Nop(),
	}
	if cfg.MaxBodySize > 0 {
		b.maxBody = cfg.MaxBodySize
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Bind picks the decoder from the Content-Type header. Requests without a
// body and without a content type are bound from the query string.
func (b *Binder) Bind(r *http.Request) (*record.Record, error) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" && (r.Body == nil || r.Body == http.NoBody || r.ContentLength == 0) {
		return b.Query(r)
	}

	mediaType, err := mediaTypeOf(r)
	if err != nil {
		return nil, err
	}

	switch mediaType {
	case "application/json":
		return b.JSON(r)
	case "application/yaml", "application/x-yaml", "text/yaml":
		return b.YAML(r)
	case "application/x-www-form-urlencoded", "multipart/form-data":
		return b.Form(r)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mediaType)
}

// JSON binds a JSON object body. Numbers are kept as json.Number so that
// integer rules can tell 3 from 3.5.
func (b *Binder) JSON(r *http.Request) (*record.Record, error) {
	if err := expectMediaType(r, "application/json"); err != nil {
		return nil, err
	}

	body, err := b.readBody(r)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var data map[string]any
	if err := dec.Decode(&data); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty body", ErrInvalidJSON)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if data == nil {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrInvalidJSON)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: unexpected data after JSON object", ErrInvalidJSON)
	}

	return b.apply(r, data)
}

// YAML binds a YAML mapping body.
func (b *Binder) YAML(r *http.Request) (*record.Record, error) {
	if err := expectMediaType(r, "application/yaml", "application/x-yaml", "text/yaml"); err != nil {
		return nil, err
	}

	body, err := b.readBody(r)
	if err != nil {
		return nil, err
	}

	var data map[string]any
	if err := yaml.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	if data == nil {
		return nil, fmt.Errorf("%w: expected a YAML mapping", ErrInvalidYAML)
	}

	return b.apply(r, data)
}

// Form binds urlencoded or multipart form fields. Single values become
// strings, repeated keys become []string. Uploaded files are ignored.
func (b *Binder) Form(r *http.Request) (*record.Record, error) {
	mediaType, err := mediaTypeOf(r)
	if err != nil {
		return nil, err
	}

	if r.Body != nil {
		r.Body = http.MaxBytesReader(nil, r.Body, b.maxBody)
	}

	var values url.Values
	switch mediaType {
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, b.formError(err)
		}
		values = r.PostForm
	case "multipart/form-data":
		if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
			return nil, b.formError(err)
		}
		values = r.MultipartForm.Value
	default:
		return nil, fmt.Errorf("%w: got %s, expected a form", ErrUnsupportedMediaType, mediaType)
	}

	return b.apply(r, flatten(values))
}

// Query binds URL query parameters.
func (b *Binder) Query(r *http.Request) (*record.Record, error) {
	return b.apply(r, flatten(r.URL.Query()))
}

// Path binds router path parameters, looking up one parameter per schema
// field. Empty parameters are treated as absent.
//
//	r.Get("/users/{id}", func(w http.ResponseWriter, r *http.Request) {
//		u, err := users.Path(r, chi.URLParam)
//		...
//	})
func (b *Binder) Path(r *http.Request, extractor func(r *http.Request, name string) string) (*record.Record, error) {
	data := make(map[string]any)
	for _, field := range b.proto.Schema().Fields() {
		if v := extractor(r, field); v != "" {
			data[field] = v
		}
	}
	return b.apply(r, data)
}

func (b *Binder) apply(r *http.Request, data map[string]any) (*record.Record, error) {
	var (
		rec *record.Record
		err error
	)
	if b.strict {
		rec, err = b.proto.Make(data)
	} else {
		rec, err = b.proto.Merge(data)
	}
	if err == nil {
		return rec, nil
	}

	schema := b.proto.Schema()
	field, _ := record.FieldOf(err)
	if record.IsValidationFailed(err) && b.explainer != nil {
		rule, _ := schema.Rule(field)
		if details := b.explainer.Explain(field, data[field], rule); details != nil {
			err = errors.Join(err, details)
		}
	}

	b.log.DebugContext(r.Context(), "request rejected by record schema",
		logger.Schema(schema.Name()),
		logger.Field(field),
		logger.Error(err),
	)
	return nil, err
}

func (b *Binder) readBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, b.maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	if int64(len(body)) > b.maxBody {
		return nil, fmt.Errorf("%w: max %d bytes", ErrBodyTooLarge, b.maxBody)
	}
	return body, nil
}

func (b *Binder) formError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return fmt.Errorf("%w: max %d bytes", ErrBodyTooLarge, b.maxBody)
	}
	return fmt.Errorf("%w: %v", ErrInvalidForm, err)
}

func mediaTypeOf(r *http.Request) (string, error) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return "", ErrMissingContentType
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedMediaType, err)
	}
	return mediaType, nil
}

func expectMediaType(r *http.Request, allowed ...string) error {
	mediaType, err := mediaTypeOf(r)
	if err != nil {
		return err
	}
	for _, a := range allowed {
		if mediaType == a {
			return nil
		}
	}
	return fmt.Errorf("%w: got %s, expected %s", ErrUnsupportedMediaType, mediaType, allowed[0])
}

func flatten(values url.Values) map[string]any {
	data := make(map[string]any, len(values))
	for k, v := range values {
		switch len(v) {
		case 0:
		case 1:
			data[k] = v[0]
		default:
			data[k] = v
		}
	}
	return data
}
