// Package process cleans up the headless Chrome process tree left behind
// when a PDF renderer shuts down.
package process
