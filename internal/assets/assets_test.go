package assets

import (
	"errors"
	"html/template"
	"slices"
	"strings"
	"testing"
)

func TestLoadStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		styleName string
		wantErr   error
	}{
		{"default style", DefaultStyleName, nil},
		{"compact style", "compact", nil},
		{"nonexistent style", "nonexistent", ErrStyleNotFound},
		{"empty name", "", ErrInvalidAssetName},
		{"path traversal", "../secret", ErrInvalidAssetName},
		{"name with dot", "style.name", ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			content, err := LoadStyle(tt.styleName)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadStyle(%q) error = %v, want %v", tt.styleName, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadStyle(%q) unexpected error: %v", tt.styleName, err)
			}
			if !strings.Contains(content, "--bg-card") {
				t.Errorf("LoadStyle(%q) should define the card background variable", tt.styleName)
			}
		})
	}
}

func TestLoadTemplate_Report(t *testing.T) {
	t.Parallel()

	content, err := LoadTemplate(ReportTemplateName)
	if err != nil {
		t.Fatalf("LoadTemplate(%q) error: %v", ReportTemplateName, err)
	}

	for _, part := range []string{"{{.Title}}", "{{.Statement}}", "{{.Vocabulary}}", "</head>"} {
		if !strings.Contains(content, part) {
			t.Errorf("report template should contain %q", part)
		}
	}

	if _, err := template.New("report").Parse(content); err != nil {
		t.Errorf("report template does not parse: %v", err)
	}
}

func TestStyleNames(t *testing.T) {
	t.Parallel()

	got := StyleNames()
	want := []string{"compact", "default"}
	if !slices.Equal(got, want) {
		t.Errorf("StyleNames() = %v, want %v", got, want)
	}
}
