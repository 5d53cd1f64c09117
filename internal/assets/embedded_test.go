package assets

import (
	"errors"
	"testing"
)

func TestEmbeddedLoader_LoadTemplate(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	tests := []struct {
		name         string
		templateName string
		wantErr      error
	}{
		{"report template", ReportTemplateName, nil},
		{"nonexistent", "nonexistent-template-xyz", ErrTemplateNotFound},
		{"empty name", "", ErrInvalidAssetName},
		{"path traversal", "../secret", ErrInvalidAssetName},
		{"backslash traversal", "..\\secret", ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := loader.LoadTemplate(tt.templateName)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadTemplate(%q) error = %v, want %v", tt.templateName, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadTemplate(%q) unexpected error: %v", tt.templateName, err)
			}
			if got == "" {
				t.Errorf("LoadTemplate(%q) returned empty content", tt.templateName)
			}
		})
	}
}

func TestEmbeddedLoader_StyleNamesLoadable(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()
	for _, name := range loader.StyleNames() {
		if _, err := loader.LoadStyle(name); err != nil {
			t.Errorf("LoadStyle(%q) error = %v", name, err)
		}
	}
}
