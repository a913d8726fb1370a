// Package tools exposes the geometry core as named calculators that take a
// YAML or JSON input document and return a result record.
package tools

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/Faultbox/geomkit/internal/logger"
	"github.com/Faultbox/geomkit/pkg/geometry"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// ErrUnknownTool is returned by Run for names not in the catalog.
var ErrUnknownTool = errors.New("unknown tool")

// ErrInput wraps failures to decode a tool's input document.
var ErrInput = errors.New("invalid input")

// Handler runs a tool against a raw input document.
type Handler func(input []byte) (any, error)

// Tool is a named calculator.
type Tool struct {
	Name        string
	Description string
	Example     string
	Run         Handler
}

var registry = map[string]Tool{}

func register(t Tool) {
	if _, dup := registry[t.Name]; dup {
		panic("tools: duplicate tool " + t.Name)
	}
	registry[t.Name] = t
}

// List returns all tools sorted by name.
func List() []Tool {
	out := make([]Tool, 0, len(registry))
	for _, t := range registry {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// Lookup returns the tool with the given name.
func Lookup(name string) (Tool, bool) {
	t, ok := registry[name]
	return t, ok
}

// Run decodes input for the named tool and executes it.
func Run(name string, input []byte) (any, error) {
	log := logger.Named("tools").With(zap.String("tool", name))

	t, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}

	log.Debug("running tool", zap.Int("input_bytes", len(input)))
	start := time.Now()
	out, err := t.Run(input)
	if err != nil {
		var gerr *geometry.Error
		if errors.As(err, &gerr) {
			log.Warn("geometry failure",
				zap.Stringer("kind", gerr.Kind),
				zap.String("op", gerr.Op),
				zap.String("operand", gerr.Operand),
				zap.String("reason", gerr.Reason))
		} else {
			log.Warn("tool failed", zap.Error(err))
		}
		return nil, err
	}
	log.Debug("tool finished", zap.Duration("elapsed", time.Since(start)))
	return out, nil
}

// decode parses a YAML (or JSON) document into T, rejecting unknown fields.
func decode[T any](input []byte) (T, error) {
	var v T
	dec := yaml.NewDecoder(bytes.NewReader(input))
	dec.KnownFields(true)
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return v, fmt.Errorf("%w: empty document", ErrInput)
		}
		return v, fmt.Errorf("%w: %v", ErrInput, err)
	}
	return v, nil
}

// handler adapts a typed calculator into a Handler.
func handler[In, Out any](fn func(In) (Out, error)) Handler {
	return func(input []byte) (any, error) {
		in, err := decode[In](input)
		if err != nil {
			return nil, err
		}
		return fn(in)
	}
}
