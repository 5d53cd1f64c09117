package vocabfmt_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	vocabfmt "github.com/alnah/go-vocabfmt"
)

// Example formats a vocabulary answer into HTML markup.
func Example() {
	html := vocabfmt.Format("Step 1: Assess churn")

	fmt.Println(strings.Contains(html, "<strong>Step 1:</strong> Assess churn"))
	// Output: true
}

// ExampleFormat_extraPhrases bolds caller phrases wherever they occur.
func ExampleFormat_extraPhrases() {
	html := vocabfmt.Format("Growth in EBITDA year over year", "EBITDA")

	fmt.Println(strings.Contains(html, "Growth in <strong>EBITDA</strong> year over year"))
	// Output: true
}

// ExampleFormat_empty shows the sentinel for answers without content.
func ExampleFormat_empty() {
	fmt.Println(vocabfmt.Format("   "))
	// Output: No vocabulary data available
}

// ExampleFormatter_FormatText renders the structure back to plain text.
func ExampleFormatter_FormatText() {
	f := vocabfmt.NewFormatter(vocabfmt.WithKnownPhrases())

	fmt.Println(f.FormatText("**Churn** - share of customers lost"))
	// Output: Churn: share of customers lost
}

// ExampleFlattenJSON extracts the answer text from an API response.
func ExampleFlattenJSON() {
	body := []byte(`{"status": "ok", "result": ["Churn: customers lost", "", "ARPU: revenue per user"]}`)

	fmt.Println(vocabfmt.FlattenJSON(body))
	// Output:
	// Churn: customers lost
	// ARPU: revenue per user
}

// ExampleClient_Extract calls a reasoning API and formats its answer.
func ExampleClient_Extract() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"output": "1. Churn Rate: share of customers lost"}`)
	}))
	defer srv.Close()

	client, err := vocabfmt.NewClient(vocabfmt.ClientConfig{URL: srv.URL})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	ext, err := client.Extract(context.Background(), vocabfmt.Problem{
		Statement: "Subscribers cancel within 90 days.",
		Account:   "Acme Telco",
		Industry:  "Telecom",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(ext.Text)
	// Output: 1. Churn Rate: share of customers lost
}

// ExampleReporter builds a standalone HTML report.
// For PDF output, leave HTMLOnly false (requires Chrome).
func ExampleReporter() {
	r, err := vocabfmt.NewReporter(vocabfmt.WithStyle("compact"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer r.Close()

	res, err := r.Build(context.Background(), vocabfmt.ReportInput{
		Vocabulary: "Churn: share of customers lost",
		Statement:  "Subscribers cancel within **90 days**.",
		Account:    "Acme Telco",
		HTMLOnly:   true,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(strings.HasPrefix(string(res.HTML), "<!DOCTYPE html>"))
	// Output: true
}
