package vocabfmt

import (
	"context"
	"fmt"
	"html/template"
	"os"

	"github.com/alnah/go-vocabfmt/internal/assets"
	"github.com/alnah/go-vocabfmt/internal/dateutil"
	"github.com/alnah/go-vocabfmt/internal/fileutil"
	"github.com/alnah/go-vocabfmt/internal/pipeline"
)

// Reporter builds standalone vocabulary reports as HTML and PDF.
// Create with NewReporter, call Build per report, and Close when done.
// Build is not safe for concurrent use; use a ReporterPool for batches.
type Reporter struct {
	cfg           *settings
	formatter     *Formatter
	assetLoader   assets.AssetLoader
	mdConverter   pipeline.MarkdownConverter
	reportRender  pipeline.ReportRenderer
	cssInjector   pipeline.CSSInjector
	resolvedStyle string
	pdfConverter  pdfConverter
}

// NewReporter creates a Reporter. Returns an error if the asset path,
// style, or report template cannot be loaded.
// The browser is started lazily on the first PDF.
func NewReporter(opts ...Option) (*Reporter, error) {
	cfg := newSettings(opts)
	r := &Reporter{
		cfg:          cfg,
		formatter:    NewFormatter(opts...),
		assetLoader:  assets.NewEmbeddedLoader(),
		mdConverter:  pipeline.NewGoldmarkConverter(),
		cssInjector:  &pipeline.CSSInjection{},
		pdfConverter: cfg.pdfConverter,
	}

	if cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		r.assetLoader = resolver
	}

	if err := r.resolveStyle(); err != nil {
		return nil, err
	}

	tmplContent, err := r.assetLoader.LoadTemplate(assets.ReportTemplateName)
	if err != nil {
		return nil, fmt.Errorf("loading report template: %w", err)
	}
	r.reportRender, err = pipeline.NewReportTemplate(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("initializing report template: %w", err)
	}

	if r.pdfConverter == nil {
		r.pdfConverter = newRodConverter(cfg.timeout)
	}

	return r, nil
}

// Build renders one report. The context is used for cancellation and timeout.
// If input.HTMLOnly is true, PDF rendering is skipped and no browser starts.
// Recovers from internal panics to keep them from reaching callers.
func (r *Reporter) Build(ctx context.Context, input ReportInput) (result *ReportResult, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("internal error: %v", rec)
		}
	}()

	if err := validateReportInput(input); err != nil {
		return nil, err
	}

	now := r.cfg.now()
	date, err := dateutil.Resolve(input.Date, now)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	statement, err := r.renderStatement(ctx, input)
	if err != nil {
		return nil, err
	}

	title := input.Title
	if title == "" {
		title = DefaultReportTitle
	}

	// Both fragments are generated markup: the vocabulary escapes its
	// text and goldmark omits raw HTML from the statement.
	htmlContent, err := r.reportRender.Render(ctx, &pipeline.ReportData{
		Title:      title,
		Date:       date,
		Account:    input.Account,
		Industry:   input.Industry,
		Statement:  template.HTML(statement),                          // #nosec G203 -- goldmark output, raw HTML omitted
		Vocabulary: template.HTML(r.formatter.Format(input.Vocabulary)), // #nosec G203 -- entities escaped by the renderer
	})
	if err != nil {
		return nil, fmt.Errorf("rendering report: %w", err)
	}

	// Reporter style first, caller CSS last so it can override
	cssContent := r.resolvedStyle
	if input.CSS != "" {
		cssContent += "\n" + input.CSS
	}
	htmlContent = r.cssInjector.InjectCSS(ctx, htmlContent, cssContent)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	res := &ReportResult{HTML: []byte(htmlContent)}
	if input.HTMLOnly {
		return res, nil
	}

	pdfOpts := &pdfOptions{Page: input.Page, Footer: input.Footer}
	if input.Footer != nil {
		pdfOpts.FooterDate, err = dateutil.Resolve(input.Footer.Date, now)
		if err != nil {
			return nil, fmt.Errorf("%w: footer: %v", ErrInvalidDate, err)
		}
	}

	pdfBytes, err := r.pdfConverter.ToPDF(ctx, htmlContent, pdfOpts)
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}

	res.PDF = pdfBytes
	return res, nil
}

// Close releases resources (headless Chrome browser).
func (r *Reporter) Close() error {
	if r.pdfConverter != nil {
		return r.pdfConverter.Close()
	}
	return nil
}

// renderStatement converts the Markdown problem statement to an HTML
// fragment, rewriting relative links against input.SourceDir.
func (r *Reporter) renderStatement(ctx context.Context, input ReportInput) (string, error) {
	if input.Statement == "" {
		return "", nil
	}

	fragment, err := r.mdConverter.ToHTML(ctx, input.Statement)
	if err != nil {
		return "", fmt.Errorf("converting problem statement: %w", err)
	}

	fragment, err = pipeline.ResolveLinks(fragment, pipeline.LinkOptions{
		BaseDir:        input.SourceDir,
		ExternalNewTab: input.HTMLOnly,
	})
	if err != nil {
		return "", fmt.Errorf("resolving problem statement links: %w", err)
	}
	return fragment, nil
}

// resolveStyle resolves the style input (name, path, or CSS content) to CSS content.
// An empty style selects the embedded default.
func (r *Reporter) resolveStyle() error {
	input := r.cfg.styleInput
	if input == "" {
		input = assets.DefaultStyleName
	}

	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		r.resolvedStyle = string(content)
		return nil
	}

	if fileutil.IsCSS(input) {
		r.resolvedStyle = input
		return nil
	}

	css, err := r.assetLoader.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", input, err)
	}
	r.resolvedStyle = css
	return nil
}

// validateReportInput checks page and footer settings.
//
// Library callers building ReportInput by hand land here; CLI values are
// also checked earlier by Config.Validate.
func validateReportInput(input ReportInput) error {
	if err := input.Page.Validate(); err != nil {
		return err
	}
	return input.Footer.Validate()
}
