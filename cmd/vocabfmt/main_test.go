package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// Test Infrastructure
// ---------------------------------------------------------------------------

var fixedNow = func() time.Time { return time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC) }

// testEnv returns an environment reading stdin and capturing output.
func testEnv(stdin string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	return &Environment{
		Now:    fixedNow,
		Stdin:  strings.NewReader(stdin),
		Stdout: stdout,
		Stderr: stderr,
	}, stdout, stderr
}

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

func readOutput(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output %s: %v", path, err)
	}
	return string(data)
}

// ---------------------------------------------------------------------------
// TestRunMain_Commands - Dispatch and exit codes
// ---------------------------------------------------------------------------

func TestRunMain_Commands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{name: "no args prints usage", args: nil, wantCode: ExitUsage, wantStderr: "Usage: vocabfmt"},
		{name: "unknown command", args: []string{"convert"}, wantCode: ExitUsage, wantStderr: "Unknown command: convert"},
		{name: "version", args: []string{"version"}, wantCode: ExitSuccess, wantStdout: "vocabfmt dev"},
		{name: "help", args: []string{"help"}, wantCode: ExitSuccess, wantStdout: "Commands:"},
		{name: "help format", args: []string{"help", "format"}, wantCode: ExitSuccess, wantStdout: "--no-dash-separators"},
		{name: "help extract", args: []string{"help", "extract"}, wantCode: ExitSuccess, wantStdout: "VOCABFMT_API_TOKEN"},
		{name: "help doctor", args: []string{"help", "doctor"}, wantCode: ExitSuccess, wantStdout: "--json"},
		{name: "help unknown", args: []string{"help", "nope"}, wantCode: ExitUsage, wantStderr: "Unknown command: nope"},
		{name: "format --help", args: []string{"format", "--help"}, wantCode: ExitSuccess, wantStderr: "Usage: vocabfmt format"},
		{name: "unknown flag", args: []string{"format", "--bogus"}, wantCode: ExitUsage, wantStderr: "invalid usage"},
		{name: "negative workers", args: []string{"format", "-w", "-1"}, wantCode: ExitUsage, wantStderr: "invalid worker count"},
		{name: "too many workers", args: []string{"format", "-w", "99"}, wantCode: ExitUsage},
		{
			name:       "text with report",
			args:       []string{"format", "--text", "--report"},
			wantCode:   ExitUsage,
			wantStderr: "--text cannot be combined",
		},
		{name: "missing input", args: []string{"format", "/nonexistent/vocab.txt"}, wantCode: ExitIO},
		{name: "bad timeout", args: []string{"format", "--timeout", "soon"}, wantCode: ExitUsage},
		{name: "bad page size", args: []string{"format", "--report", "-p", "a3"}, wantCode: ExitUsage},
		{name: "config not found", args: []string{"format", "-c", "/nonexistent/cfg.yaml"}, wantCode: ExitUsage, wantStderr: "hint:"},
		{name: "extract without API URL", args: []string{"extract", "--api-url", "ftp://x"}, wantCode: ExitUsage, wantStderr: "api.url"},
		{name: "extract two files", args: []string{"extract", "a.md", "b.md"}, wantCode: ExitUsage},
		{name: "config with argument", args: []string{"config", "extra"}, wantCode: ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv("Step 1: Assess churn")
			code := runMain(context.Background(), tt.args, env)

			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d\nstderr: %s", code, tt.wantCode, stderr)
			}
			if tt.wantStdout != "" && !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout missing %q:\n%s", tt.wantStdout, stdout)
			}
			if tt.wantStderr != "" && !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr missing %q:\n%s", tt.wantStderr, stderr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunMain_FormatStdin - Standard input to standard output
// ---------------------------------------------------------------------------

func TestRunMain_FormatStdin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		args   []string
		stdin  string
		want   []string
		absent []string
	}{
		{
			name:  "HTML fragment",
			args:  []string{"format"},
			stdin: "Step 1: Assess churn",
			want:  []string{"<strong>Step 1:</strong> Assess churn"},
		},
		{
			name:  "dash means stdin",
			args:  []string{"format", "-"},
			stdin: "Step 1: Assess churn",
			want:  []string{"<strong>Step 1:</strong> Assess churn"},
		},
		{
			name:  "JSON flattened",
			args:  []string{"format"},
			stdin: `{"status": "ok", "output": "Step 2: Price plans"}`,
			want:  []string{"<strong>Step 2:</strong> Price plans"},
		},
		{
			name:  "extra phrase",
			args:  []string{"format", "--phrase", "EBITDA"},
			stdin: "Growth in EBITDA year over year",
			want:  []string{"<strong>EBITDA</strong>"},
		},
		{
			name:   "dash separators disabled",
			args:   []string{"format", "--no-dash-separators"},
			stdin:  "ARPU - average revenue",
			want:   []string{"ARPU - average revenue"},
			absent: []string{"<strong>"},
		},
		{
			name:   "plain text",
			args:   []string{"format", "--text"},
			stdin:  "Step 1: Assess churn",
			want:   []string{"Step 1:", "Assess churn"},
			absent: []string{"<"},
		},
		{
			name:  "empty input gives sentinel",
			args:  []string{"format"},
			stdin: "   ",
			want:  []string{"No vocabulary data available"},
		},
		{
			name:  "HTML report",
			args:  []string{"format", "--report", "--title", "Telecom Glossary", "--account", "Acme", "--style", "compact"},
			stdin: "Step 1: Assess churn",
			want: []string{
				"<!DOCTYPE html>",
				"<title>Telecom Glossary</title>",
				"2026-10-19",
				"<dd>Acme</dd>",
				"<strong>Step 1:</strong> Assess churn",
				"<style>",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv(tt.stdin)
			if code := runMain(context.Background(), tt.args, env); code != ExitSuccess {
				t.Fatalf("exit code = %d, stderr: %s", code, stderr)
			}

			got := stdout.String()
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("stdout missing %q:\n%s", w, got)
				}
			}
			for _, a := range tt.absent {
				if strings.Contains(got, a) {
					t.Errorf("stdout should not contain %q:\n%s", a, got)
				}
			}
		})
	}
}

func TestRunMain_FormatStdinToFile(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "nested", "vocab.html")
	env, _, stderr := testEnv("Step 1: Assess churn")

	if code := runMain(context.Background(), []string{"format", "-o", out}, env); code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr)
	}
	if got := readOutput(t, out); !strings.Contains(got, "<strong>Step 1:</strong>") {
		t.Errorf("output = %q", got)
	}
}

// ---------------------------------------------------------------------------
// TestRunMain_FormatFiles - File and directory batches
// ---------------------------------------------------------------------------

func TestRunMain_FormatFiles(t *testing.T) {
	t.Parallel()

	t.Run("directory next to inputs", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeInput(t, dir, "a.txt", "Step 1: Assess churn")
		writeInput(t, dir, "sub/b.json", `{"result": "ARPU - revenue per user"}`)
		writeInput(t, dir, "notes.csv", "ignored")

		env, stdout, stderr := testEnv("")
		if code := runMain(context.Background(), []string{"format", "-w", "2", dir}, env); code != ExitSuccess {
			t.Fatalf("exit code = %d, stderr: %s", code, stderr)
		}

		if got := readOutput(t, filepath.Join(dir, "a.html")); !strings.Contains(got, "<strong>Step 1:</strong> Assess churn") {
			t.Errorf("a.html = %q", got)
		}
		if got := readOutput(t, filepath.Join(dir, "sub", "b.html")); !strings.Contains(got, "<strong>ARPU:</strong> revenue per user") {
			t.Errorf("b.html = %q", got)
		}
		if _, err := os.Stat(filepath.Join(dir, "notes.html")); !os.IsNotExist(err) {
			t.Error("notes.csv should not be processed")
		}
		if !strings.Contains(stdout.String(), "2 succeeded, 0 failed") {
			t.Errorf("stdout missing summary:\n%s", stdout)
		}
	})

	t.Run("output directory keeps layout", func(t *testing.T) {
		t.Parallel()

		in, out := t.TempDir(), t.TempDir()
		writeInput(t, in, "team/glossary.md", "Step 1: Assess churn")

		env, _, stderr := testEnv("")
		if code := runMain(context.Background(), []string{"format", "-q", "-o", out, in}, env); code != ExitSuccess {
			t.Fatalf("exit code = %d, stderr: %s", code, stderr)
		}
		readOutput(t, filepath.Join(out, "team", "glossary.html"))
	})

	t.Run("text output does not overwrite input", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := writeInput(t, dir, "vocab.txt", "**Churn** - share of customers lost")

		env, _, stderr := testEnv("")
		if code := runMain(context.Background(), []string{"format", "--text", input}, env); code != ExitSuccess {
			t.Fatalf("exit code = %d, stderr: %s", code, stderr)
		}
		if got := readOutput(t, input); got != "**Churn** - share of customers lost" {
			t.Errorf("input modified: %q", got)
		}
		if got := readOutput(t, filepath.Join(dir, "vocab"+textOutputExt)); !strings.Contains(got, "Churn: share of customers lost") {
			t.Errorf("text output = %q", got)
		}
	})

	t.Run("HTML reports through the pool", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		for i := range 3 {
			writeInput(t, dir, fmt.Sprintf("v%d.txt", i), fmt.Sprintf("Step %d: Review", i+1))
		}

		env, _, stderr := testEnv("")
		if code := runMain(context.Background(), []string{"format", "--report", "-w", "2", "-q", dir}, env); code != ExitSuccess {
			t.Fatalf("exit code = %d, stderr: %s", code, stderr)
		}
		for i := range 3 {
			got := readOutput(t, filepath.Join(dir, fmt.Sprintf("v%d.html", i)))
			if !strings.HasPrefix(got, "<!DOCTYPE html>") || !strings.Contains(got, fmt.Sprintf("<strong>Step %d:</strong>", i+1)) {
				t.Errorf("v%d.html = %q", i, got)
			}
		}
	})

	t.Run("unsupported extension", func(t *testing.T) {
		t.Parallel()

		input := writeInput(t, t.TempDir(), "vocab.csv", "x")
		env, _, stderr := testEnv("")
		if code := runMain(context.Background(), []string{"format", input}, env); code == ExitSuccess {
			t.Fatal("expected failure for .csv input")
		}
		if !strings.Contains(stderr.String(), ".txt, .json, or .md") {
			t.Errorf("stderr = %s", stderr)
		}
	})

	t.Run("empty directory", func(t *testing.T) {
		t.Parallel()

		env, _, _ := testEnv("")
		if code := runMain(context.Background(), []string{"format", t.TempDir()}, env); code != ExitIO {
			t.Errorf("exit code = %d, want %d", code, ExitIO)
		}
	})

	t.Run("cancelled context fails files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeInput(t, dir, "a.txt", "Step 1: Assess churn")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		env, _, stderr := testEnv("")
		if code := runMain(ctx, []string{"format", dir}, env); code == ExitSuccess {
			t.Fatal("expected failure with cancelled context")
		}
		if !strings.Contains(stderr.String(), "FAILED") {
			t.Errorf("stderr = %s", stderr)
		}
	})
}

// ---------------------------------------------------------------------------
// TestRunMain_Extract - Reasoning API round trip
// ---------------------------------------------------------------------------

func newAPIServer(t *testing.T, status int, body string, goals chan<- string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			AgencyGoal string `json:"agency_goal"`
		}
		data, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(data, &req)
		if goals != nil {
			goals <- req.AgencyGoal
		}
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRunMain_Extract(t *testing.T) {
	t.Parallel()

	t.Run("formats the answer", func(t *testing.T) {
		t.Parallel()

		goals := make(chan string, 1)
		srv := newAPIServer(t, http.StatusOK, `{"output": "Step 1: Map churn drivers"}`, goals)

		env, stdout, stderr := testEnv("Subscribers cancel within 90 days.")
		args := []string{"extract", "--api-url", srv.URL, "--account", "Acme", "--industry", "Telecom"}
		if code := runMain(context.Background(), args, env); code != ExitSuccess {
			t.Fatalf("exit code = %d, stderr: %s", code, stderr)
		}

		if !strings.Contains(stdout.String(), "<strong>Step 1:</strong> Map churn drivers") {
			t.Errorf("stdout = %s", stdout)
		}
		goal := <-goals
		for _, want := range []string{"Subscribers cancel within 90 days.", "Account: Acme", "Industry: Telecom"} {
			if !strings.Contains(goal, want) {
				t.Errorf("agency_goal missing %q: %q", want, goal)
			}
		}
	})

	t.Run("raw response", func(t *testing.T) {
		t.Parallel()

		body := `{"output": "Step 1: Map churn drivers"}`
		srv := newAPIServer(t, http.StatusOK, body, nil)

		env, stdout, stderr := testEnv("Subscribers cancel early.")
		if code := runMain(context.Background(), []string{"extract", "--raw", "--api-url", srv.URL}, env); code != ExitSuccess {
			t.Fatalf("exit code = %d, stderr: %s", code, stderr)
		}
		if stdout.String() != body {
			t.Errorf("stdout = %q, want %q", stdout, body)
		}
	})

	t.Run("HTML report from problem file", func(t *testing.T) {
		t.Parallel()

		srv := newAPIServer(t, http.StatusOK, `"Churn: customers lost"`, nil)
		dir := t.TempDir()
		problem := writeInput(t, dir, "problem.md", "Subscribers cancel within **90 days**.")
		out := filepath.Join(dir, "report.html")

		env, stdout, stderr := testEnv("")
		args := []string{"extract", problem, "--report", "--api-url", srv.URL, "-o", out}
		if code := runMain(context.Background(), args, env); code != ExitSuccess {
			t.Fatalf("exit code = %d, stderr: %s", code, stderr)
		}

		got := readOutput(t, out)
		for _, want := range []string{"Business Problem", "<strong>90 days</strong>", "Churn"} {
			if !strings.Contains(got, want) {
				t.Errorf("report missing %q", want)
			}
		}
		if !strings.Contains(stdout.String(), "Created "+out) {
			t.Errorf("stdout = %s", stdout)
		}
	})

	t.Run("error status maps to API exit code with hint", func(t *testing.T) {
		t.Parallel()

		srv := newAPIServer(t, http.StatusUnauthorized, `{"error": "denied"}`, nil)

		env, _, stderr := testEnv("Subscribers cancel early.")
		if code := runMain(context.Background(), []string{"extract", "--api-url", srv.URL}, env); code != ExitAPI {
			t.Fatalf("exit code = %d, want %d", code, ExitAPI)
		}
		for _, want := range []string{"API Error 401", "VOCABFMT_API_TOKEN"} {
			if !strings.Contains(stderr.String(), want) {
				t.Errorf("stderr missing %q:\n%s", want, stderr)
			}
		}
	})

	t.Run("empty problem is a usage error", func(t *testing.T) {
		t.Parallel()

		srv := newAPIServer(t, http.StatusOK, `"unused"`, nil)

		env, _, _ := testEnv("  \n ")
		if code := runMain(context.Background(), []string{"extract", "--api-url", srv.URL}, env); code != ExitUsage {
			t.Errorf("exit code = %d, want %d", code, ExitUsage)
		}
	})

	t.Run("raw with report rejected", func(t *testing.T) {
		t.Parallel()

		env, _, _ := testEnv("x")
		if code := runMain(context.Background(), []string{"extract", "--raw", "--pdf"}, env); code != ExitUsage {
			t.Errorf("exit code = %d, want %d", code, ExitUsage)
		}
	})
}

// ---------------------------------------------------------------------------
// TestRunMain_Config - Effective configuration output
// ---------------------------------------------------------------------------

func TestRunMain_Config(t *testing.T) {
	t.Parallel()

	path := writeInput(t, t.TempDir(), "vocab.yaml", `api:
  url: https://api.example.com/reasoning_api
  token: s3cret
report:
  title: Glossary
`)

	env, stdout, stderr := testEnv("")
	if code := runMain(context.Background(), []string{"config", "-c", path}, env); code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr)
	}

	got := stdout.String()
	for _, want := range []string{"https://api.example.com/reasoning_api", "title: Glossary", "tenantID: talos"} {
		if !strings.Contains(got, want) {
			t.Errorf("config output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "s3cret") {
		t.Errorf("token should be masked:\n%s", got)
	}
}

// ---------------------------------------------------------------------------
// TestTriedPaths - Config lookup error parsing
// ---------------------------------------------------------------------------

func TestTriedPaths(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("loading config: %w", fmt.Errorf("config file not found: tried a.yaml, b.yml"))
	got := triedPaths(err)
	if len(got) != 2 || got[0] != "a.yaml" || got[1] != "b.yml" {
		t.Errorf("triedPaths() = %v", got)
	}
	if triedPaths(fmt.Errorf("config file not found: x.yaml")) != nil {
		t.Error("triedPaths() without list should be nil")
	}
}
