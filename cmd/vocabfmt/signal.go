package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
)

// exitInterrupted is the shell convention for death by SIGINT (128 + 2).
const exitInterrupted = 130

// notifyContext returns a context canceled on the first shutdown signal so
// in-flight API calls and browser prints stop cleanly. A second signal
// exits at once. Call stop() to release resources.
func notifyContext(parent context.Context, stderr io.Writer) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	sigs := make(chan os.Signal, 2)
	signal.Notify(sigs, shutdownSignals...)
	done := make(chan struct{})

	go func() {
		select {
		case <-sigs:
		case <-done:
			return
		}
		fmt.Fprintln(stderr, "interrupted, stopping (repeat to force)")
		cancel()

		select {
		case <-sigs:
			os.Exit(exitInterrupted)
		case <-done:
		}
	}()

	var once sync.Once
	stop := func() {
		once.Do(func() {
			signal.Stop(sigs)
			close(done)
			cancel()
		})
	}
	return ctx, stop
}
