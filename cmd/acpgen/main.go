// Command acpgen turns capability specs into least-privilege policy
// documents.
//
// Usage:
//
//	acpgen gen -spec spec.json [-rules rules.yaml] [-out policy.json]
//	acpgen compare -spec spec.json -candidate policy.json [-format json|markdown]
//	acpgen schema -type spec|policy
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/Saffronius/acpgen/application/pipeline"
	"github.com/Saffronius/acpgen/application/schema"
	"github.com/Saffronius/acpgen/infrastructure/rulestore"
	"github.com/Saffronius/acpgen/log"
	"github.com/Saffronius/acpgen/registry"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "gen":
		err = runGen(os.Args[2:])
	case "compare":
		err = runCompare(os.Args[2:])
	case "schema":
		err = runSchema(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "acpgen: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: acpgen <gen|compare|schema> [flags]")
}

// buildPipeline assembles the registry (built-ins plus an optional rule
// pack file) and the logger shared by the gen and compare subcommands.
func buildPipeline(rulesPath string, verbose bool) (*pipeline.Pipeline, error) {
	var opts []registry.Option
	if rulesPath != "" {
		store := rulestore.NewFileStore(rulestore.WithPath(rulesPath))
		pack, err := store.Load()
		if err != nil {
			return nil, err
		}
		opts = append(opts, registry.WithRulePack(pack))
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := log.New(log.WithLevel(level))

	return pipeline.New(registry.New(opts...), pipeline.WithLogger(logger)), nil
}

func runGen(args []string) error {
	fs := flag.NewFlagSet("gen", flag.ExitOnError)
	specPath := fs.String("spec", "", "path to the spec JSON (required)")
	rulesPath := fs.String("rules", "", "path to a YAML rule pack")
	outPath := fs.String("out", "", "output path (default stdout)")
	verbose := fs.Bool("v", false, "verbose logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *specPath == "" {
		return fmt.Errorf("gen: -spec is required")
	}

	p, err := buildPipeline(*rulesPath, *verbose)
	if err != nil {
		return err
	}
	specJSON, err := os.ReadFile(*specPath)
	if err != nil {
		return err
	}
	artifacts, err := p.Run(specJSON, nil)
	if err != nil {
		return err
	}

	for _, d := range artifacts.Diagnostics {
		fmt.Fprintf(os.Stderr, "%s %s %s: %s\n", d.Severity, d.Code, d.Subject, d.Message)
	}

	out, err := json.MarshalIndent(artifacts.Baseline, "", "  ")
	if err != nil {
		return err
	}
	out = append(out, '\n')
	return writeOutput(*outPath, out)
}

func runCompare(args []string) error {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	specPath := fs.String("spec", "", "path to the spec JSON (required)")
	candidatePath := fs.String("candidate", "", "path to the candidate policy JSON (required)")
	rulesPath := fs.String("rules", "", "path to a YAML rule pack")
	outPath := fs.String("out", "", "output path (default stdout)")
	format := fs.String("format", "markdown", "output format: json or markdown")
	verbose := fs.Bool("v", false, "verbose logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *specPath == "" || *candidatePath == "" {
		return fmt.Errorf("compare: -spec and -candidate are required")
	}

	p, err := buildPipeline(*rulesPath, *verbose)
	if err != nil {
		return err
	}
	specJSON, err := os.ReadFile(*specPath)
	if err != nil {
		return err
	}
	candidateJSON, err := os.ReadFile(*candidatePath)
	if err != nil {
		return err
	}
	artifacts, err := p.Run(specJSON, candidateJSON)
	if err != nil {
		return err
	}

	var out []byte
	switch *format {
	case "markdown":
		out = pipeline.RenderMarkdown(artifacts)
	case "json":
		out, err = json.MarshalIndent(artifacts, "", "  ")
		if err != nil {
			return err
		}
		out = append(out, '\n')
	default:
		return fmt.Errorf("compare: unknown format %q", *format)
	}
	return writeOutput(*outPath, out)
}

func runSchema(args []string) error {
	fs := flag.NewFlagSet("schema", flag.ExitOnError)
	kind := fs.String("type", "spec", "schema to print: spec or policy")
	outPath := fs.String("out", "", "output path (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var out []byte
	switch *kind {
	case "spec":
		s, err := schema.SpecSchema()
		if err != nil {
			return err
		}
		out = append(s, '\n')
	case "policy":
		out = []byte(schema.PolicyDocumentSchema + "\n")
	default:
		return fmt.Errorf("schema: unknown type %q", *kind)
	}
	return writeOutput(*outPath, out)
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
