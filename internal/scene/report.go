package scene

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/midgard-geom/pkg/bounds"
	"github.com/Faultbox/midgard-geom/pkg/color"
	"github.com/Faultbox/midgard-geom/pkg/math"
)

// Report holds the results of evaluating one document.
type Report struct {
	File    string   `yaml:"file,omitempty"`
	Results []Result `yaml:"results"`
	Failed  int      `yaml:"failed"`
}

// Result is the outcome of a single query. Pass is nil when the query
// carries no expectation.
type Result struct {
	Query string `yaml:"query"`
	Value string `yaml:"value"`
	Pass  *bool  `yaml:"pass,omitempty"`

	value any
}

// Raw returns the evaluated value: bool, float32, math.Vec3, math.Vec2,
// math.Vec4, bounds.AABB or color.Color.
func (r Result) Raw() any {
	return r.value
}

// OK reports whether every expectation in the report held.
func (r *Report) OK() bool {
	return r.Failed == 0
}

// WriteText writes reports in a line-oriented human format.
func WriteText(w io.Writer, reports ...*Report) error {
	for _, r := range reports {
		if r.File != "" {
			if _, err := fmt.Fprintf(w, "%s:\n", r.File); err != nil {
				return err
			}
		}
		for _, res := range r.Results {
			status := ""
			if res.Pass != nil {
				status = "  ok"
				if !*res.Pass {
					status = "  FAIL"
				}
			}
			if _, err := fmt.Fprintf(w, "  %s = %s%s\n", res.Query, res.Value, status); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "  %d queries, %d failed\n", len(r.Results), r.Failed); err != nil {
			return err
		}
	}
	return nil
}

// WriteYAML writes reports as a YAML sequence.
func WriteYAML(w io.Writer, reports ...*Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(reports); err != nil {
		return err
	}
	return enc.Close()
}

func describe(q Query) string {
	parts := []string{q.Op}
	for _, s := range []string{q.Transform, q.A, q.B} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	if q.Point != nil {
		parts = append(parts, fmt.Sprint(q.Point))
	}
	if q.Hex != "" {
		parts = append(parts, q.Hex)
	}
	return strings.Join(parts, " ")
}

func formatValue(v any) string {
	switch v := v.(type) {
	case bool:
		return strconv.FormatBool(v)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case bounds.AABB:
		return fmt.Sprintf("%v..%v", v.Min, v.Max)
	case color.Color:
		return v.Hex()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// matches compares a result with a decoded expectation. Numbers and vectors
// compare within epsilon; colors compare by parsed hex value.
func matches(value, expect any, epsilon float32) (bool, error) {
	switch v := value.(type) {
	case bool:
		e, ok := expect.(bool)
		if !ok {
			return false, fmt.Errorf("%w: want bool, got %T", ErrBadExpectation, expect)
		}
		return v == e, nil
	case float32:
		e, ok := number(expect)
		if !ok {
			return false, fmt.Errorf("%w: want number, got %T", ErrBadExpectation, expect)
		}
		return approx(v, e, epsilon), nil
	case color.Color:
		e, ok := expect.(string)
		if !ok {
			return false, fmt.Errorf("%w: want hex string, got %T", ErrBadExpectation, expect)
		}
		return v == color.FromHex(e), nil
	case math.Vec2:
		return matchList([]float32{v.X, v.Y}, expect, epsilon)
	case math.Vec3:
		return matchList([]float32{v.X, v.Y, v.Z}, expect, epsilon)
	case math.Vec4:
		return matchList([]float32{v.X, v.Y, v.Z, v.W}, expect, epsilon)
	case bounds.AABB:
		return matchList([]float32{v.Min.X, v.Min.Y, v.Min.Z, v.Max.X, v.Max.Y, v.Max.Z}, expect, epsilon)
	}
	return false, fmt.Errorf("%w: %T", ErrBadExpectation, value)
}

func matchList(got []float32, expect any, epsilon float32) (bool, error) {
	list, ok := expect.([]any)
	if !ok || len(list) != len(got) {
		return false, fmt.Errorf("%w: want list of %d numbers, got %v", ErrBadExpectation, len(got), expect)
	}
	pass := true
	for i, item := range list {
		e, ok := number(item)
		if !ok {
			return false, fmt.Errorf("%w: element %d is %T", ErrBadExpectation, i, item)
		}
		pass = pass && approx(got[i], e, epsilon)
	}
	return pass, nil
}

func approx(got, want, epsilon float32) bool {
	// Exact match covers infinities, which ApproxEqual cannot.
	return got == want || math.ApproxEqual(got, want, epsilon)
}

// number converts the numeric types produced by the YAML and TOML decoders.
func number(v any) (float32, bool) {
	switch n := v.(type) {
	case int:
		return float32(n), true
	case int64:
		return float32(n), true
	case uint64:
		return float32(n), true
	case float64:
		return float32(n), true
	case float32:
		return n, true
	}
	return 0, false
}
