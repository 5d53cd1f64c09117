package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	vocabfmt "github.com/alnah/go-vocabfmt"
	"github.com/alnah/go-vocabfmt/internal/assets"
	"github.com/alnah/go-vocabfmt/internal/config"
	"github.com/alnah/go-vocabfmt/internal/hints"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	env := DefaultEnv()
	verbose := slices.Contains(os.Args, "-v") || slices.Contains(os.Args, "--verbose")

	if err := loadDotEnv(dotEnvFile); err != nil {
		fmt.Fprintf(env.Stderr, "warning: %v\n", err)
	}

	// Configure GOMAXPROCS with conditional logging
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(env.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	ctx, stop := notifyContext(context.Background(), env.Stderr)
	code := runMain(ctx, os.Args[1:], env)
	stop()
	os.Exit(code)
}

// runMain dispatches the command and returns the process exit code.
func runMain(ctx context.Context, args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	var err error
	switch args[0] {
	case "format":
		err = runFormat(ctx, args[1:], env)
	case "extract":
		err = runExtract(ctx, args[1:], env)
	case "config":
		err = runConfig(args[1:], env)
	case "doctor":
		return runDoctorCmd(args[1:], env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "vocabfmt %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		return runHelp(args[1:], env)
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}

	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		printError(env.Stderr, err)
	}
	return exitCodeFor(err)
}

// printError writes err with an actionable hint when one applies.
func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %v%s\n", err, hintFor(err))
}

// hintFor returns the hint matching err, or "".
func hintFor(err error) string {
	var statusErr *vocabfmt.StatusError
	switch {
	case errors.As(err, &statusErr):
		return hints.ForAPIStatus(statusErr.Code)
	case errors.Is(err, vocabfmt.ErrInvalidAPIURL):
		return hints.ForAPIURL()
	case errors.Is(err, vocabfmt.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, vocabfmt.ErrPageLoad):
		return hints.ForTimeout()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(triedPaths(err))
	case errors.Is(err, vocabfmt.ErrStyleNotFound):
		return hints.ForStyleNotFound(assets.StyleNames())
	case errors.Is(err, ErrWriteOutput):
		return hints.ForOutputDirectory()
	default:
		return ""
	}
}

// triedPaths extracts the searched locations from a config lookup error.
func triedPaths(err error) []string {
	msg := err.Error()
	i := strings.LastIndex(msg, "tried ")
	if i < 0 {
		return nil
	}
	return strings.Split(msg[i+len("tried "):], ", ")
}
