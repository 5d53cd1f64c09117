package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestGoldmarkConverter_ToHTML(t *testing.T) {
	t.Parallel()

	conv := NewGoldmarkConverter()

	tests := []struct {
		name         string
		input        string
		wantContains []string
		wantExcludes []string
	}{
		{
			name:         "paragraph is a fragment",
			input:        "Revenue is flat.",
			wantContains: []string{"<p>Revenue is flat.</p>"},
			wantExcludes: []string{"<html", "<body"},
		},
		{
			name:         "hard wraps preserved",
			input:        "line one\nline two",
			wantContains: []string{"line one<br />"},
		},
		{
			name:         "GFM table",
			input:        "| Metric | Value |\n|---|---|\n| Churn | 4% |",
			wantContains: []string{"<table>", "<td>Churn</td>"},
		},
		{
			name:         "code fence highlighted with classes",
			input:        "```go\nfunc main() {}\n```",
			wantContains: []string{`class="chroma"`},
		},
		{
			name:         "raw HTML omitted",
			input:        "<script>alert(1)</script>",
			wantExcludes: []string{"<script>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := conv.ToHTML(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("ToHTML() unexpected error: %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("ToHTML(%q) missing %q\ngot: %s", tt.input, want, got)
				}
			}
			for _, exclude := range tt.wantExcludes {
				if strings.Contains(got, exclude) {
					t.Errorf("ToHTML(%q) should not contain %q\ngot: %s", tt.input, exclude, got)
				}
			}
		})
	}
}

func TestGoldmarkConverter_ToHTML_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGoldmarkConverter().ToHTML(ctx, "# Title")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ToHTML() error = %v, want context.Canceled", err)
	}
}
