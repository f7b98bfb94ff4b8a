// Command dashgen generates Grafana dashboards and Prometheus rule files
// for recenseur monitoring.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Nathalie1962/recenseur-backend/tools/dashgen/dashboards"
	"github.com/Nathalie1962/recenseur-backend/tools/dashgen/rules"
	"github.com/Nathalie1962/recenseur-backend/tools/dashgen/validate"
)

func main() {
	validateOnly := flag.Bool("validate", false, "validate generated artifacts without writing files")
	outputDir := flag.String("output", "", "override output directory")
	flag.Parse()

	cfg := DefaultConfig()
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, *validateOnly); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg Config, validateOnly bool) error {
	dash, err := dashboards.BuildOverview().Build()
	if err != nil {
		return fmt.Errorf("building overview dashboard: %w", err)
	}

	result := validate.Dashboard(dash, KnownMetrics)
	result = merge(result, validate.Exprs(ruleExprs(rules.RecordingRules()), KnownMetrics))
	result = merge(result, validate.Exprs(ruleExprs(rules.AlertRules()), KnownMetrics))

	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	if !result.Ok() {
		for _, e := range result.Errors {
			fmt.Fprintf(os.Stderr, "error: %s\n", e)
		}
		return fmt.Errorf("%d validation errors", len(result.Errors))
	}

	if validateOnly {
		fmt.Println("validation passed")
		return nil
	}

	if cfg.DashboardEnabled {
		if err := writeJSON(filepath.Join(cfg.OutputDir, "dashboards", "overview.json"), dash); err != nil {
			return err
		}
	}
	if cfg.RulesEnabled {
		if err := writeYAML(filepath.Join(cfg.OutputDir, "rules", "recording-rules.yaml"), rules.RecordingRules()); err != nil {
			return err
		}
		if err := writeYAML(filepath.Join(cfg.OutputDir, "rules", "alerts.yaml"), rules.AlertRules()); err != nil {
			return err
		}
	}

	fmt.Printf("dashgen: artifacts written to %s\n", cfg.OutputDir)
	return nil
}

func ruleExprs(cr rules.PrometheusRule) []string {
	var out []string
	for _, g := range cr.Spec.Groups {
		for _, r := range g.Rules {
			out = append(out, r.Expr)
		}
	}
	return out
}

func merge(a, b validate.Result) validate.Result {
	a.Errors = append(a.Errors, b.Errors...)
	a.Warnings = append(a.Warnings, b.Warnings...)
	return a
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", path, err)
	}
	return writeFile(path, append(data, '\n'))
}

func writeYAML(path string, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", path, err)
	}
	return writeFile(path, data)
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
