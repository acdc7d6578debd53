// Package yamlutil wraps YAML parsing to isolate the external dependency.
// Config files are decoded strictly; front matter is decoded leniently so
// posts written for other generators still load.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// DefaultMaxInputSize limits YAML input to prevent memory exhaustion (1MB).
const DefaultMaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

type decodeOptions struct {
	strict  bool
	maxSize int
}

// Option adjusts how Unmarshal decodes.
type Option func(*decodeOptions)

// Strict rejects fields the destination does not declare.
func Strict() Option {
	return func(o *decodeOptions) { o.strict = true }
}

// MaxSize overrides DefaultMaxInputSize.
func MaxSize(n int) Option {
	return func(o *decodeOptions) { o.maxSize = n }
}

// Unmarshal decodes data into v.
func Unmarshal(data []byte, v any, opts ...Option) error {
	o := decodeOptions{maxSize: DefaultMaxInputSize}
	for _, opt := range opts {
		opt(&o)
	}

	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > o.maxSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), o.maxSize)
	}
	if v == nil {
		return ErrNilDestination
	}

	var decodeOpts []yaml.DecodeOption
	if o.strict {
		decodeOpts = append(decodeOpts, yaml.Strict())
	}
	if err := yaml.UnmarshalWithOptions(data, v, decodeOpts...); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// Marshal encodes v, used to print the effective configuration.
func Marshal(v any) ([]byte, error) {
	result, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return result, nil
}
