// Package yamlutil is the single place vocabfmt decodes and encodes YAML.
// Decoding is strict and size-bounded; decode failures carry the offending
// source line so config mistakes can be fixed without opening the file.
package yamlutil

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// MaxInputSize bounds YAML documents in bytes.
var MaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")

	// ErrDecode wraps syntax errors and unknown fields.
	ErrDecode = errors.New("yamlutil: decode failed")
)

// decodeError keeps the library error reachable through errors.As while
// rendering it with source context.
type decodeError struct {
	cause  error
	detail string
}

func (e *decodeError) Error() string  { return "yamlutil: " + e.detail }
func (e *decodeError) Unwrap() []error { return []error{ErrDecode, e.cause} }

func checkSize(n int64) error {
	if n > int64(MaxInputSize) {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, n, MaxInputSize)
	}
	return nil
}

// UnmarshalStrict decodes data into v and rejects unknown fields.
func UnmarshalStrict(data []byte, v any) error {
	switch {
	case len(data) == 0:
		return ErrNilData
	case v == nil:
		return ErrNilDestination
	}
	if err := checkSize(int64(len(data))); err != nil {
		return err
	}

	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return &decodeError{cause: err, detail: yaml.FormatError(err, false, true)}
	}
	return nil
}

// ReadFileStrict stats, reads, and decodes path with UnmarshalStrict.
// Stat and read errors are returned as is so os.IsNotExist still works.
func ReadFileStrict(path string, v any) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if err := checkSize(info.Size()); err != nil {
		return err
	}

	data, err := os.ReadFile(path) // #nosec G304 -- user-selected config file
	if err != nil {
		return err
	}
	return UnmarshalStrict(data, v)
}

// Marshal encodes v as YAML, two-space indented.
func Marshal(v any) ([]byte, error) {
	out, err := yaml.MarshalWithOptions(v, yaml.Indent(2))
	if err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return out, nil
}
