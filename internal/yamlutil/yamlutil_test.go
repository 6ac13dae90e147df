package yamlutil_test

// Notes:
// - MarshalField error branch beyond the empty key: not tested because
//   yaml.Marshal only fails with unmarshalable types (channels, functions)
//   which are compile-time detectable and not realistic in production usage.

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-docx2md/internal/yamlutil"
)

type testConfig struct {
	Name    string `yaml:"name"`
	Count   int    `yaml:"count"`
	Enabled bool   `yaml:"enabled"`
}

// ---------------------------------------------------------------------------
// TestUnmarshalStrict - Parses YAML, validates input, rejects unknown fields
// ---------------------------------------------------------------------------

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
		check   func(t *testing.T, v any)
	}{
		{
			name: "valid YAML",
			data: []byte("name: test\ncount: 42\nenabled: true"),
			dest: &testConfig{},
			check: func(t *testing.T, v any) {
				cfg := v.(*testConfig)
				if cfg.Name != "test" {
					t.Errorf("Name = %q, want %q", cfg.Name, "test")
				}
				if cfg.Count != 42 {
					t.Errorf("Count = %d, want %d", cfg.Count, 42)
				}
				if !cfg.Enabled {
					t.Error("Enabled = false, want true")
				}
			},
		},
		{
			name:    "nil data",
			data:    nil,
			dest:    &testConfig{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "empty data",
			data:    []byte{},
			dest:    &testConfig{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "nil destination",
			data:    []byte("name: test"),
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
		{
			name:    "oversized input",
			data:    []byte("name: " + strings.Repeat("x", yamlutil.MaxInputSize)),
			dest:    &testConfig{},
			wantErr: yamlutil.ErrInputTooLarge,
		},
		{
			name: "malformed YAML",
			data: []byte("name: [unclosed"),
			dest: &testConfig{},
		},
		{
			name: "unknown field",
			data: []byte("name: ok\nbogus: 1"),
			dest: &testConfig{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := yamlutil.UnmarshalStrict(tt.data, tt.dest)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if tt.name == "malformed YAML" || tt.name == "unknown field" {
				if err == nil {
					t.Fatal("expected parse error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.check != nil {
				tt.check(t, tt.dest)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestMarshalField - Single mapping entry rendering
// ---------------------------------------------------------------------------

func TestMarshalField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		key     string
		value   any
		want    string
		wantErr error
	}{
		{
			name:  "plain string",
			key:   "title",
			value: "Quarterly Report",
			want:  "title: Quarterly Report\n",
		},
		{
			name:  "value needing quotes",
			key:   "title",
			value: "a: b",
			want:  "title: 'a: b'\n",
		},
		{
			name:    "empty key",
			key:     "",
			value:   "x",
			wantErr: yamlutil.ErrEmptyKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := yamlutil.MarshalField(tt.key, tt.value)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("MarshalField(%q, %v) = %q, want %q", tt.key, tt.value, got, tt.want)
			}
		})
	}
}
