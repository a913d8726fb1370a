package tools

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/Faultbox/geomkit/internal/config"
	"github.com/Faultbox/geomkit/pkg/geometry"
	"gopkg.in/yaml.v3"
)

func TestCatalogExamplesRun(t *testing.T) {
	tools := List()
	if len(tools) != 15 {
		t.Errorf("expected 15 tools, got %d", len(tools))
	}
	for _, tool := range tools {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Description == "" {
				t.Error("missing description")
			}
			if _, err := Run(tool.Name, []byte(tool.Example)); err != nil {
				t.Errorf("example failed: %v", err)
			}
		})
	}
}

func TestListSorted(t *testing.T) {
	tools := List()
	for i := 1; i < len(tools); i++ {
		if tools[i-1].Name >= tools[i].Name {
			t.Errorf("List not sorted: %s before %s", tools[i-1].Name, tools[i].Name)
		}
	}
}

func TestRunLineIntersectionYAML(t *testing.T) {
	input := `
line1:
  point: {x: 0, y: 0, z: 0}
  direction: {x: 1, y: 0, z: 0}
line2:
  point: {x: 0, y: 0, z: 1}
  direction: {x: 0, y: 1, z: 0}
`
	out, err := Run("line_intersection", []byte(input))
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	res, ok := out.(geometry.LineIntersection)
	if !ok {
		t.Fatalf("unexpected result type %T", out)
	}
	if res.Type != geometry.Skew || res.MinimumDistance != 1 {
		t.Errorf("expected skew at distance 1, got %+v", res)
	}
}

func TestRunMultipleLines(t *testing.T) {
	input := `{"lines": [
		{"point": {"x": 1, "y": 2, "z": 3}, "direction": {"x": 1, "y": 0, "z": 0}},
		{"point": {"x": 1, "y": 2, "z": 3}, "direction": {"x": 0, "y": 1, "z": 0}},
		{"point": {"x": 0, "y": 1, "z": 2}, "direction": {"x": 1, "y": 1, "z": 1}}
	]}`
	out, err := Run("multiple_line_intersection", []byte(input))
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	res := out.(geometry.MultiLineIntersection)
	if res.LineCount != 3 || res.TotalSquaredDistance > 1e-9 {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestSlerpExplicitZeroT(t *testing.T) {
	out, err := Run("quaternion_slerp", []byte(`{"q1": {"w": 1}, "q2": {"y": 1}, "t": 0}`))
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	res, ok := out.(geometry.SlerpResult)
	if !ok {
		t.Fatalf("unexpected result type %T", out)
	}
	if res.T != 0 || res.Result.W != 1 || res.Result.Y != 0 {
		t.Errorf("t=0 result = %+v, want identity", res.Result)
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name  string
		tool  string
		input string
		want  error
	}{
		{"unknown tool", "nope", `{}`, ErrUnknownTool},
		{"empty document", "vector_ops", ``, ErrInput},
		{"unknown field", "vector_ops", `{"a": {"x": 1}, "c": {"x": 1}}`, ErrInput},
		{"bad number", "vector_ops", `{"a": {"x": "one"}}`, ErrInput},
		{"zero direction", "line_intersection", `{"line1": {"direction": {"x": 1}}, "line2": {}}`, geometry.ErrInvalidArgument},
		{"zero vector angle", "vector_ops", `{"a": {"x": 1}, "b": {}}`, geometry.ErrInvalidArgument},
		{"slerp missing t", "quaternion_slerp", `{"q1": {"w": 1}, "q2": {"w": 1}}`, ErrInput},
		{"slerp t out of range", "quaternion_slerp", `{"q1": {"w": 1}, "q2": {"w": 1}, "t": 2}`, geometry.ErrInvalidArgument},
		{"parallel lines", "multiple_line_intersection", `{"lines": [{"direction": {"x": 1}}, {"point": {"y": 1}, "direction": {"x": 1}}]}`, geometry.ErrDegenerate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Run(tt.tool, []byte(tt.input))
			if !errors.Is(err, tt.want) {
				t.Errorf("Run() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestWriteJSONRounded(t *testing.T) {
	out, err := Run("plane_intersection", []byte(`{
		"plane1": {"point": {"x": 0, "y": 0, "z": 0}, "normal": {"x": 0, "y": 0, "z": 1}},
		"plane2": {"point": {"x": 0, "y": 0, "z": 0}, "normal": {"x": 0, "y": 1, "z": 0}}
	}`))
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	var buf bytes.Buffer
	if err := Write(&buf, out, config.OutputConfig{Format: "json", Precision: 3}); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if decoded["intersection_type"] != "intersecting" {
		t.Errorf("intersection_type = %v", decoded["intersection_type"])
	}
	if decoded["angle_degrees"] != 90.0 {
		t.Errorf("angle_degrees = %v, want 90", decoded["angle_degrees"])
	}
	if decoded["angle_radians"] != 1.571 {
		t.Errorf("angle_radians = %v, want 1.571", decoded["angle_radians"])
	}
	if _, ok := decoded["intersection_line"]; !ok {
		t.Error("missing intersection_line")
	}
}

func TestWriteYAML(t *testing.T) {
	out, err := Run("point_plane_distance", []byte(`{"point": {"z": 5}, "plane": {"normal": {"z": 1}}}`))
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	var buf bytes.Buffer
	if err := Write(&buf, out, config.OutputConfig{Format: "yaml", Precision: -1}); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	var decoded map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not YAML: %v", err)
	}
	if decoded["side_of_plane"] != "positive" {
		t.Errorf("side_of_plane = %v, want positive", decoded["side_of_plane"])
	}
	if !strings.Contains(buf.String(), "signed_distance: 5") {
		t.Errorf("expected signed_distance: 5 in output:\n%s", buf.String())
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, map[string]int{"a": 1}, config.OutputConfig{Format: "xml"})
	if err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestRoundFloatsNegativeZero(t *testing.T) {
	got := roundFloats([]any{-0.0000001, 1.23456}, 2)
	vals := got.([]any)
	if vals[0] != 0.0 || vals[1] != 1.23 {
		t.Errorf("roundFloats = %v", vals)
	}
}
