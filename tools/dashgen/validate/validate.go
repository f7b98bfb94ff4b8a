// Package validate checks generated dashboards and rules for PromQL
// syntax errors and references to unknown metrics.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/prometheus/prometheus/promql/parser"
)

// Result collects validation findings. Errors are syntax problems;
// Warnings are references to metrics outside the known set.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether validation found no errors.
func (r Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Dashboard validates every Prometheus expression in the dashboard against
// PromQL syntax and the known metric set.
func Dashboard(dash dashboard.Dashboard, known map[string]bool) Result {
	var res Result

	data, err := json.Marshal(dash)
	if err != nil {
		res.errorf("marshaling dashboard: %v", err)
		return res
	}

	var tree any
	if err := json.Unmarshal(data, &tree); err != nil {
		res.errorf("re-reading dashboard: %v", err)
		return res
	}

	for _, expr := range collectExprs(tree) {
		checkExpr(expr, known, &res)
	}
	return res
}

// Exprs validates a list of raw PromQL expressions, as found in recording
// and alert rules.
func Exprs(exprs []string, known map[string]bool) Result {
	var res Result
	for _, expr := range exprs {
		checkExpr(expr, known, &res)
	}
	return res
}

// collectExprs walks a decoded JSON tree and gathers every "expr" string.
func collectExprs(node any) []string {
	var out []string
	switch v := node.(type) {
	case map[string]any:
		for key, val := range v {
			if key == "expr" {
				if s, ok := val.(string); ok && s != "" {
					out = append(out, s)
					continue
				}
			}
			out = append(out, collectExprs(val)...)
		}
	case []any:
		for _, item := range v {
			out = append(out, collectExprs(item)...)
		}
	}
	return out
}

func checkExpr(expr string, known map[string]bool, res *Result) {
	ast, err := parser.ParseExpr(expr)
	if err != nil {
		res.errorf("invalid PromQL %q: %v", expr, err)
		return
	}

	parser.Inspect(ast, func(node parser.Node, _ []parser.Node) error {
		vs, ok := node.(*parser.VectorSelector)
		if !ok {
			return nil
		}
		name := vs.Name
		if name == "" || known[name] {
			return nil
		}
		// Histogram series derive from a known base metric.
		base := strings.TrimSuffix(strings.TrimSuffix(strings.TrimSuffix(
			name, "_bucket"), "_sum"), "_count")
		if !known[base] {
			res.warnf("unknown metric %q in %q", name, expr)
		}
		return nil
	})
}
