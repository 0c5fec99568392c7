// Package errors provides domain-specific error types for the policy core.
// All error types support unwrapping via errors.As() and errors.Is().
package errors

import "fmt"

// SpecError reports a structurally invalid SpecDSL. Structural errors are
// fatal for the request: the pipeline rejects the input instead of
// degrading it to a diagnostic.
type SpecError struct {
	Field string
	Err   error
}

func (e *SpecError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid spec field %q: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("invalid spec: %v", e.Err)
}

func (e *SpecError) Unwrap() error { return e.Err }

// DecodeError reports input that could not be decoded from its wire format.
type DecodeError struct {
	Format string // "json" or "yaml"
	What   string // what was being decoded, e.g. "spec", "policy document"
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s from %s: %v", e.What, e.Format, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// SchemaError reports a document that failed JSON Schema validation before
// it reached the comparator.
type SchemaError struct {
	What string
	Err  error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s failed schema validation: %v", e.What, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// RulePackError reports a malformed registry rule pack.
type RulePackError struct {
	Service string
	Err     error
}

func (e *RulePackError) Error() string {
	if e.Service != "" {
		return fmt.Sprintf("rule pack service %q: %v", e.Service, e.Err)
	}
	return fmt.Sprintf("rule pack: %v", e.Err)
}

func (e *RulePackError) Unwrap() error { return e.Err }
