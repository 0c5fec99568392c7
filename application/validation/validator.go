// Package validation re-checks a SpecDSL together with the document the
// canonizer emitted for it. Checks are pure and independent: each one
// reads only the spec, the document, and the registry, never another
// check's output. Findings are aggregated, not short-circuited; a single
// spec may legitimately produce dozens of diagnostics.
package validation

import (
	"github.com/Saffronius/acpgen/domain/entities"
	"github.com/Saffronius/acpgen/registry"
)

// Context carries the read-only inputs every check receives.
type Context struct {
	Registry *registry.Registry
	Spec     entities.SpecDSL
	Doc      entities.PolicyDocument
}

// A check inspects the context and reports zero or more findings.
type check struct {
	name string
	run  func(Context) []entities.Diagnostic
}

// checks is the ordered pipeline. Order only affects the sequence
// diagnostics are reported in, never their content.
var checks = []check{
	{name: "unknown-service", run: checkUnknownServices},
	{name: "wildcard-resource", run: checkWildcardResources},
	{name: "evidence-confidence", run: checkEvidenceConfidence},
	{name: "condition-key-support", run: checkConditionKeySupport},
	{name: "transport-security", run: checkTransportSecurity},
	{name: "resource-segments", run: checkResourceSegments},
}

// Validate runs every check against the spec and its emitted document.
// It never mutates the document; downstream consumers decide whether
// error-severity findings block deployment.
func Validate(reg *registry.Registry, spec entities.SpecDSL, doc entities.PolicyDocument) []entities.Diagnostic {
	ctx := Context{Registry: reg, Spec: spec, Doc: doc}
	var diags []entities.Diagnostic
	for _, c := range checks {
		diags = append(diags, c.run(ctx)...)
	}
	return diags
}
