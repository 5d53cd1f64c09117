package vocabfmt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/alnah/go-vocabfmt/internal/fileutil"
	"github.com/alnah/go-vocabfmt/internal/pipeline"
)

const (
	// DefaultTenantID is sent in the tenant headers when none is configured.
	DefaultTenantID = "talos"

	// DefaultAPITimeout bounds one reasoning API call.
	DefaultAPITimeout = 60 * time.Second

	// ExtractionInstruction closes every goal sent to the reasoning API.
	ExtractionInstruction = "Extract the vocabulary from this problem statement."

	// maxResponseBytes caps the response body read into memory.
	maxResponseBytes = 10 << 20
)

// Problem is the business problem sent for vocabulary extraction.
type Problem struct {
	Statement string // required
	Account   string
	Industry  string
}

// Goal builds the agency goal text: the problem with its account and
// industry context, followed by ExtractionInstruction.
func (p Problem) Goal() string {
	var b strings.Builder
	b.WriteString("Business Problem:\n")
	b.WriteString(strings.TrimSpace(p.Statement))
	b.WriteString("\n\nContext:\nAccount: ")
	b.WriteString(strings.TrimSpace(p.Account))
	b.WriteString("\nIndustry: ")
	b.WriteString(strings.TrimSpace(p.Industry))
	b.WriteString("\n\n")
	b.WriteString(ExtractionInstruction)
	return b.String()
}

// ClientConfig configures a Client.
type ClientConfig struct {
	URL        string        // reasoning API endpoint (required)
	TenantID   string        // default DefaultTenantID
	Token      string        // bearer token, optional
	Timeout    time.Duration // default DefaultAPITimeout
	HTTPClient *http.Client  // optional; Timeout is ignored when set
}

// Extraction is the vocabulary returned by the reasoning API.
type Extraction struct {
	Raw  []byte // response body as received
	Text string // flattened, NFC-normalized, sanitized text
}

// Client calls the reasoning API to extract vocabulary from a problem.
// A Client is safe for concurrent use.
type Client struct {
	url      string
	tenantID string
	token    string
	http     *http.Client
}

// agencyRequest is the reasoning API request body.
type agencyRequest struct {
	AgencyGoal string `json:"agency_goal"`
}

// NewClient validates cfg and creates a Client.
func NewClient(cfg ClientConfig) (*Client, error) {
	if !fileutil.IsURL(cfg.URL) {
		return nil, fmt.Errorf("%w: %q (must start with http:// or https://)", ErrInvalidAPIURL, cfg.URL)
	}
	u, err := url.Parse(cfg.URL)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAPIURL, cfg.URL)
	}

	tenantID := cfg.TenantID
	if tenantID == "" {
		tenantID = DefaultTenantID
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultAPITimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		url:      cfg.URL,
		tenantID: tenantID,
		token:    cfg.Token,
		http:     httpClient,
	}, nil
}

// StatusError reports a non-200 answer from the reasoning API.
// It matches ErrAPIStatus with errors.Is.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%v: API Error %d", ErrAPIStatus, e.Code)
}

func (e *StatusError) Unwrap() error {
	return ErrAPIStatus
}

// Extract sends the problem to the reasoning API and returns its vocabulary.
func (c *Client) Extract(ctx context.Context, p Problem) (*Extraction, error) {
	if strings.TrimSpace(p.Statement) == "" {
		return nil, ErrEmptyProblem
	}

	payload, err := json.Marshal(agencyRequest{AgencyGoal: p.Goal()})
	if err != nil {
		return nil, fmt.Errorf("%w: encoding request: %v", ErrAPIRequest, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAPIRequest, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Tenant-ID", c.tenantID)
	req.Header.Set("X-Tenant-ID", c.tenantID)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %v", ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain a little so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &StatusError{Code: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAPIResponse, err)
	}
	if len(body) > maxResponseBytes {
		return nil, fmt.Errorf("%w: body exceeds %d bytes", ErrAPIResponse, maxResponseBytes)
	}

	text := pipeline.Sanitize(norm.NFC.String(FlattenJSON(body)))
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyExtraction
	}

	return &Extraction{Raw: body, Text: text}, nil
}
