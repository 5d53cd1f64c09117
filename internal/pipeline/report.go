package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
)

// ErrReportRender indicates the report template failed to execute.
var ErrReportRender = errors.New("report template rendering failed")

// CSSInjector defines the contract for CSS injection into HTML.
type CSSInjector interface {
	InjectCSS(ctx context.Context, htmlContent, cssContent string) string
}

// CSSInjection injects CSS as a <style> block into HTML content.
type CSSInjection struct{}

// InjectCSS inserts a <style> block into HTML content.
// Tries </head> first, then <body>, then prepends to the HTML.
func (s *CSSInjection) InjectCSS(ctx context.Context, htmlContent, cssContent string) string {
	if cssContent == "" || ctx.Err() != nil {
		return htmlContent
	}

	styleBlock := "<style>" + sanitizeCSS(cssContent) + "</style>"
	lowerHTML := strings.ToLower(htmlContent)

	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}

	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		if closeIdx := strings.Index(htmlContent[idx:], ">"); closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + styleBlock + htmlContent[insertPos:]
		}
	}

	return styleBlock + htmlContent
}

// sanitizeCSS escapes "</" so user CSS cannot close the <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// ReportData holds the values rendered into the report template.
// Statement and Vocabulary are trusted markup produced by this package.
type ReportData struct {
	Title      string
	Date       string
	Account    string
	Industry   string
	Statement  template.HTML
	Vocabulary template.HTML
}

// ReportRenderer defines the contract for rendering a full report document.
type ReportRenderer interface {
	Render(ctx context.Context, data *ReportData) (string, error)
}

// ReportTemplate renders ReportData into a standalone HTML document.
type ReportTemplate struct {
	tmpl *template.Template
}

// NewReportTemplate parses tmplContent as an html/template.
func NewReportTemplate(tmplContent string) (*ReportTemplate, error) {
	tmpl, err := template.New("report").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("parsing report template: %w", err)
	}
	return &ReportTemplate{tmpl: tmpl}, nil
}

// Render executes the template. Returns an error for nil data.
func (r *ReportTemplate) Render(ctx context.Context, data *ReportData) (string, error) {
	if data == nil {
		return "", fmt.Errorf("%w: nil report data", ErrReportRender)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrReportRender, err)
	}
	return buf.String(), nil
}

// Compile-time interface checks.
var (
	_ CSSInjector    = (*CSSInjection)(nil)
	_ ReportRenderer = (*ReportTemplate)(nil)
)
