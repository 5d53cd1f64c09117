package yamlutil_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-vocabfmt/internal/yamlutil"
)

type testConfig struct {
	Tenant  string   `yaml:"tenant"`
	Phrases []string `yaml:"phrases"`
	Enabled bool     `yaml:"enabled"`
}

// ---------------------------------------------------------------------------
// TestUnmarshalStrict - Parses YAML and rejects unknown fields
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
			name: "known fields only",
			data: []byte("tenant: acme\nphrases: [EBITDA, ARPU]\nenabled: true"),
			dest: &testConfig{},
			check: func(t *testing.T, v any) {
				cfg := v.(*testConfig)
				if cfg.Tenant != "acme" {
					t.Errorf("Tenant = %q, want %q", cfg.Tenant, "acme")
				}
				if len(cfg.Phrases) != 2 || cfg.Phrases[1] != "ARPU" {
					t.Errorf("Phrases = %v, want [EBITDA ARPU]", cfg.Phrases)
				}
				if !cfg.Enabled {
					t.Error("Enabled = false, want true")
				}
			},
		},
		{
			name: "unicode content",
			data: []byte("tenant: société générale"),
			dest: &testConfig{},
			check: func(t *testing.T, v any) {
				if got := v.(*testConfig).Tenant; got != "société générale" {
					t.Errorf("Tenant = %q", got)
				}
			},
		},
		{
			name:    "unknown field causes error",
			data:    []byte("tenant: acme\nunknown_field: value"),
			dest:    &testConfig{},
			wantErr: yamlutil.ErrDecode,
		},
		{
			name:    "invalid YAML syntax",
			data:    []byte("tenant: [unclosed"),
			dest:    &testConfig{},
			wantErr: yamlutil.ErrDecode,
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
			data:    []byte("tenant: acme"),
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.UnmarshalStrict(tt.data, tt.dest)
			if tt.wantErr != nil {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.wantErr)
				}
				if errors.Is(err, tt.wantErr) {
					return
				}
				if !strings.Contains(err.Error(), tt.wantErr.Error()) {
					t.Fatalf("error = %q, want containing %q", err, tt.wantErr)
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

func TestUnmarshalStrict_DecodeContext(t *testing.T) {
	t.Parallel()

	var cfg testConfig
	err := yamlutil.UnmarshalStrict([]byte("tenant: acme\nwatermark: DRAFT\n"), &cfg)
	if !errors.Is(err, yamlutil.ErrDecode) {
		t.Fatalf("error = %v, want ErrDecode", err)
	}
	msg := err.Error()
	if !strings.HasPrefix(msg, "yamlutil: ") || !strings.Contains(msg, "watermark") {
		t.Errorf("error should name the field with source context, got:\n%s", msg)
	}
}

// ---------------------------------------------------------------------------
// TestReadFileStrict - Reads and decodes a YAML file
// ---------------------------------------------------------------------------

func TestReadFileStrict(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	t.Run("valid file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(dir, "valid.yaml")
		if err := os.WriteFile(path, []byte("tenant: acme\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		var cfg testConfig
		if err := yamlutil.ReadFileStrict(path, &cfg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Tenant != "acme" {
			t.Errorf("Tenant = %q, want %q", cfg.Tenant, "acme")
		}
	})

	t.Run("missing file keeps os error", func(t *testing.T) {
		t.Parallel()

		var cfg testConfig
		err := yamlutil.ReadFileStrict(filepath.Join(dir, "missing.yaml"), &cfg)
		if !os.IsNotExist(err) {
			t.Errorf("os.IsNotExist(err) = false, got: %v", err)
		}
	})

	t.Run("empty file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(dir, "empty.yaml")
		if err := os.WriteFile(path, nil, 0o600); err != nil {
			t.Fatal(err)
		}
		var cfg testConfig
		if err := yamlutil.ReadFileStrict(path, &cfg); !errors.Is(err, yamlutil.ErrNilData) {
			t.Errorf("errors.Is(err, ErrNilData) = false, got: %v", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestMarshal - Serializes Go structs to YAML
// ---------------------------------------------------------------------------

func TestMarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input any
		want  []string
	}{
		{
			name:  "valid struct",
			input: &testConfig{Tenant: "acme", Phrases: []string{"EBITDA"}, Enabled: true},
			want:  []string{"tenant: acme", "- EBITDA", "enabled: true"},
		},
		{
			name:  "nil value produces null",
			input: nil,
			want:  []string{"null"},
		},
		{
			name:  "unicode content",
			input: &testConfig{Tenant: "日本語"},
			want:  []string{"日本語"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data, err := yamlutil.Marshal(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(string(data), w) {
					t.Errorf("output missing %q, got: %s", w, data)
				}
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	original := testConfig{Tenant: "roundtrip", Phrases: []string{"Churn", "NPS"}, Enabled: true}

	data, err := yamlutil.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded testConfig
	if err := yamlutil.UnmarshalStrict(data, &decoded); err != nil {
		t.Fatalf("UnmarshalStrict failed: %v", err)
	}
	if decoded.Tenant != original.Tenant || decoded.Enabled != original.Enabled {
		t.Errorf("decoded = %+v, want %+v", decoded, original)
	}
	if strings.Join(decoded.Phrases, ",") != "Churn,NPS" {
		t.Errorf("Phrases = %v", decoded.Phrases)
	}
}

// ---------------------------------------------------------------------------
// TestInputSizeLimit - Verifies MaxInputSize enforcement
// ---------------------------------------------------------------------------

// Modifies the global MaxInputSize, so it does not run in parallel.
func TestInputSizeLimit(t *testing.T) {
	originalMax := yamlutil.MaxInputSize
	t.Cleanup(func() { yamlutil.MaxInputSize = originalMax })

	t.Run("input at limit succeeds", func(t *testing.T) {
		yamlutil.MaxInputSize = 100
		data := []byte("tenant: x" + strings.Repeat(" ", 91))
		var cfg testConfig
		if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("input exceeding limit fails with sizes", func(t *testing.T) {
		yamlutil.MaxInputSize = 50
		data := make([]byte, 100)
		var cfg testConfig
		err := yamlutil.UnmarshalStrict(data, &cfg)
		if !errors.Is(err, yamlutil.ErrInputTooLarge) {
			t.Fatalf("errors.Is(err, ErrInputTooLarge) = false, got: %v", err)
		}
		if msg := err.Error(); !strings.Contains(msg, "100 bytes") || !strings.Contains(msg, "max 50") {
			t.Errorf("error should contain sizes, got: %s", msg)
		}
	})

	t.Run("file size checked before reading", func(t *testing.T) {
		yamlutil.MaxInputSize = 10
		path := filepath.Join(t.TempDir(), "big.yaml")
		if err := os.WriteFile(path, []byte("tenant: "+strings.Repeat("a", 20)), 0o600); err != nil {
			t.Fatal(err)
		}
		var cfg testConfig
		if err := yamlutil.ReadFileStrict(path, &cfg); !errors.Is(err, yamlutil.ErrInputTooLarge) {
			t.Errorf("errors.Is(err, ErrInputTooLarge) = false, got: %v", err)
		}
	})
}
