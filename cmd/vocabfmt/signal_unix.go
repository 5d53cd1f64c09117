//go:build !windows

package main

import (
	"os"
	"syscall"
)

// shutdownSignals cancel a run.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}
