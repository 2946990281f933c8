package record_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/record"
)

func TestNewSchema(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		fields  []string
		opts    []record.SchemaOption
		wantErr bool
	}{
		{
			name:   "valid schema",
			fields: []string{"id", "name"},
			opts: []record.SchemaOption{
				record.WithDefault("name", "anonymous"),
				record.WithRule("id", "uuid"),
			},
		},
		{
			name:   "no fields",
			fields: nil,
		},
		{
			name:    "empty field name",
			fields:  []string{"id", ""},
			wantErr: true,
		},
		{
			name:    "duplicate field",
			fields:  []string{"id", "id"},
			wantErr: true,
		},
		{
			name:    "default for undeclared field",
			fields:  []string{"id"},
			opts:    []record.SchemaOption{record.WithDefaults(map[string]any{"name": "x"})},
			wantErr: true,
		},
		{
			name:    "rule for undeclared field",
			fields:  []string{"id"},
			opts:    []record.SchemaOption{record.WithRules(map[string]any{"name": "required"})},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s, err := record.NewSchema("Test", tt.fields, tt.opts...)
			if tt.wantErr {
				assert.ErrorIs(t, err, record.ErrInvalidSchema)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.fields), s.Len())
		})
	}
}

func TestMustNewSchema(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		record.MustNewSchema("Broken", []string{"a", "a"})
	})
	assert.NotPanics(t, func() {
		record.MustNewSchema("Fine", []string{"a"})
	})
}

func TestSchema_Accessors(t *testing.T) {
	t.Parallel()

	s := record.MustNewSchema("User", []string{"email", "role"},
		record.WithDefault("role", "member"),
		record.WithRule("email", "required|email"),
	)

	assert.Equal(t, "User", s.Name())
	assert.Equal(t, []string{"email", "role"}, s.Fields())
	assert.True(t, s.HasField("email"))
	assert.False(t, s.HasField("password"))

	def, ok := s.Default("role")
	assert.True(t, ok)
	assert.Equal(t, "member", def)
	_, ok = s.Default("email")
	assert.False(t, ok)

	rule, ok := s.Rule("email")
	assert.True(t, ok)
	assert.Equal(t, "required|email", rule)
	_, ok = s.Rule("role")
	assert.False(t, ok)

	fields := s.Fields()
	fields[0] = "changed"
	assert.Equal(t, []string{"email", "role"}, s.Fields(), "Fields must return a copy")

	r := s.New()
	assert.Same(t, s, r.Schema())
	assert.Nil(t, r.Validator())
}
