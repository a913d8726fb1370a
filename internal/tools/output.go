package tools

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Faultbox/geomkit/internal/config"
	"gonum.org/v1/gonum/floats/scalar"
	"gopkg.in/yaml.v3"
)

// Write encodes a tool result according to the output settings.
func Write(w io.Writer, result any, cfg config.OutputConfig) error {
	v, err := normalize(result, cfg.Precision)
	if err != nil {
		return err
	}

	switch cfg.Format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "json", "":
		enc := json.NewEncoder(w)
		if cfg.Indent {
			enc.SetIndent("", "  ")
		}
		return enc.Encode(v)
	default:
		return fmt.Errorf("unsupported output format %q", cfg.Format)
	}
}

// normalize converts result into generic maps and slices keyed by its JSON
// field names, rounding every float to precision decimal places when
// precision is non-negative.
func normalize(result any, precision int) (any, error) {
	data, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("encoding result: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("encoding result: %w", err)
	}
	if precision >= 0 {
		v = roundFloats(v, precision)
	}
	return v, nil
}

func roundFloats(v any, precision int) any {
	switch t := v.(type) {
	case float64:
		r := scalar.Round(t, precision)
		if r == 0 {
			// Drop the sign of -0.
			return 0.0
		}
		return r
	case map[string]any:
		for k, e := range t {
			t[k] = roundFloats(e, precision)
		}
		return t
	case []any:
		for i, e := range t {
			t[i] = roundFloats(e, precision)
		}
		return t
	default:
		return v
	}
}
