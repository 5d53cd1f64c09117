// Package hints builds the actionable suffixes appended to CLI errors.
// Every hint renders as "\n  hint: <text>" so callers can concatenate it
// to an error message unconditionally; no hint renders as "".
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-vocabfmt/internal/fileutil"
)

// ciVars are set by the CI providers vocabfmt is commonly run under.
var ciVars = []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"}

// ContainerSignal names what marks the process as containerized, or "".
// Replaced in tests.
var ContainerSignal = func() string {
	switch {
	case os.Getenv("VOCABFMT_CONTAINER") == "1":
		return "VOCABFMT_CONTAINER=1"
	case fileutil.FileExists("/.dockerenv"):
		return "/.dockerenv"
	case os.Getenv("container") != "":
		return "container=" + os.Getenv("container")
	case os.Getenv("KUBERNETES_SERVICE_HOST") != "":
		return "KUBERNETES_SERVICE_HOST"
	}
	return ""
}

// InCI reports whether a known CI variable is set.
func InCI() bool {
	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			return true
		}
	}
	return false
}

// ForBrowserConnect suggests the rod variables relevant to the current host.
func ForBrowserConnect() string {
	var parts []string
	if (InCI() || ContainerSignal() != "") && os.Getenv("ROD_NO_SANDBOX") != "1" {
		parts = append(parts, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		parts = append(parts, "set ROD_BROWSER_BIN to use custom Chrome")
	}
	return join(parts)
}

// ForTimeout points at --timeout.
func ForTimeout() string {
	return format("for slow reasoning APIs or long reports, use --timeout flag")
}

// ForConfigNotFound suggests --config, plus the user config location
// when it is among searchedPaths.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"
	for _, p := range searchedPaths {
		if strings.Contains(p, "go-vocabfmt") {
			return format(hint + " or create " + p)
		}
	}
	return format(hint)
}

// ForOutputDirectory covers output directory creation failures.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound lists the available styles.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForAPIURL covers a missing or malformed reasoning API URL.
func ForAPIURL() string {
	return format("set api.url in the config file or VOCABFMT_API_URL (http or https)")
}

// ForAPIStatus maps a reasoning API status code to a hint. Codes without
// a known remedy yield "".
func ForAPIStatus(code int) string {
	switch {
	case code == 401, code == 403:
		return format("check VOCABFMT_API_TOKEN and the tenant ID")
	case code == 404:
		return format("check api.url points to the reasoning endpoint")
	case code == 429, code >= 500:
		return format("the reasoning service is busy or unavailable, retry later")
	}
	return ""
}

func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

func join(parts []string) string {
	return format(strings.Join(parts, "; "))
}
