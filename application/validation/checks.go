package validation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Saffronius/acpgen/domain/entities"
)

// secureTransportKey is the condition key that enforces encrypted
// transport on data-plane services.
const secureTransportKey = "aws:SecureTransport"

func capabilitySubject(cap entities.Capability) string {
	return cap.Service + "/" + string(cap.AccessLevel)
}

// checkUnknownServices flags every capability and restriction that names
// a service absent from the registry. A capability whose service still
// reached the document through the best-effort fallback is a warning;
// one with no statement covering it at all is an error.
func checkUnknownServices(ctx Context) []entities.Diagnostic {
	var diags []entities.Diagnostic
	for _, cap := range ctx.Spec.Capabilities {
		if _, known := ctx.Registry.Lookup(cap.Service); known {
			continue
		}
		msg := fmt.Sprintf("service %q is not in the rule registry", cap.Service)
		if docCoversService(ctx.Doc, cap.Service) {
			diags = append(diags, entities.Warning(entities.CodeUnknownService, capabilitySubject(cap), msg))
		} else {
			diags = append(diags, entities.Error(entities.CodeUnknownService, capabilitySubject(cap),
				msg+"; no statement could be emitted for it"))
		}
	}
	for i, restriction := range ctx.Spec.Restrictions {
		subject := fmt.Sprintf("restriction[%d]", i)
		for _, service := range targetServices(restriction.Targets) {
			if _, known := ctx.Registry.Lookup(service); known {
				continue
			}
			diags = append(diags, entities.Warning(entities.CodeUnknownService, subject,
				fmt.Sprintf("deny target names service %q, which is not in the rule registry", service)))
		}
	}
	return diags
}

// docCoversService reports whether any statement's actions carry the
// given service prefix.
func docCoversService(doc entities.PolicyDocument, service string) bool {
	prefix := service + ":"
	for _, stmt := range doc.Statement {
		if stmt.Effect != entities.EffectAllow {
			continue
		}
		for _, action := range stmt.Action {
			if strings.HasPrefix(action, prefix) {
				return true
			}
		}
	}
	return false
}

// targetServices extracts the distinct service prefixes from deny
// targets, preserving first-occurrence order. Bare "*" targets carry no
// service and are skipped.
func targetServices(targets []string) []string {
	var services []string
	seen := make(map[string]bool)
	for _, target := range targets {
		service, _, ok := strings.Cut(target, ":")
		if !ok || service == "" || service == "*" {
			continue
		}
		if !seen[service] {
			seen[service] = true
			services = append(services, service)
		}
	}
	return services
}

// checkWildcardResources flags allow statements that fell back to a bare
// "*" resource even though the originating capability supplied resource
// refs, meaning a narrower ARN was derivable.
func checkWildcardResources(ctx Context) []entities.Diagnostic {
	var diags []entities.Diagnostic
	for _, cap := range ctx.Spec.Capabilities {
		if len(cap.ResourceRefs) == 0 {
			continue
		}
		prefix := cap.Service + ":"
		for _, stmt := range ctx.Doc.Statement {
			if stmt.Effect != entities.EffectAllow || !statementHasPrefix(stmt, prefix) {
				continue
			}
			for _, resource := range stmt.Resource {
				if resource == "*" {
					diags = append(diags, entities.Warning(
						entities.CodeWildcardResource,
						"Sid:"+stmt.Sid,
						"wildcard resources - explicit ARNs required",
					))
					break
				}
			}
		}
	}
	return diags
}

func statementHasPrefix(stmt entities.PolicyStatement, prefix string) bool {
	for _, action := range stmt.Action {
		if strings.HasPrefix(action, prefix) {
			return true
		}
	}
	return false
}

// checkEvidenceConfidence flags capabilities with no citations, or whose
// best citation falls below the trust threshold.
func checkEvidenceConfidence(ctx Context) []entities.Diagnostic {
	var diags []entities.Diagnostic
	for _, cap := range ctx.Spec.Capabilities {
		if len(cap.Evidence) == 0 {
			diags = append(diags, entities.Warning(
				entities.CodeLowEvidenceConfidence,
				capabilitySubject(cap),
				"no evidence citations attached; mapping may rely on heuristics",
			))
			continue
		}
		if best := entities.MaxEvidenceConfidence(cap.Evidence); best < entities.EvidenceConfidenceThreshold {
			diags = append(diags, entities.Warning(
				entities.CodeLowEvidenceConfidence,
				capabilitySubject(cap),
				fmt.Sprintf("best evidence confidence %.2f is below the %.2f threshold",
					best, entities.EvidenceConfidenceThreshold),
			))
		}
	}
	return diags
}

// checkConditionKeySupport flags condition keys the target service does
// not accept. The canonizer drops such keys at emission time; this check
// re-derives the finding from the spec alone.
func checkConditionKeySupport(ctx Context) []entities.Diagnostic {
	var diags []entities.Diagnostic
	for _, cap := range ctx.Spec.Capabilities {
		rule, known := ctx.Registry.Lookup(cap.Service)
		if !known {
			continue
		}
		for _, key := range sortedConditionKeys(cap.Conditions) {
			if rule.SupportsConditionKey(key) {
				continue
			}
			diags = append(diags, entities.Warning(
				entities.CodeConditionKeyUnsupported,
				capabilitySubject(cap),
				fmt.Sprintf("condition key %q is not supported by service %q", key, cap.Service),
			))
		}
	}
	return diags
}

// checkTransportSecurity flags data-plane capabilities that carry no
// transport-security condition.
func checkTransportSecurity(ctx Context) []entities.Diagnostic {
	var diags []entities.Diagnostic
	for _, cap := range ctx.Spec.Capabilities {
		rule, known := ctx.Registry.Lookup(cap.Service)
		if !known || !rule.DataPlane {
			continue
		}
		if _, ok := cap.Conditions[secureTransportKey]; ok {
			continue
		}
		diags = append(diags, entities.Warning(
			entities.CodeInsecureTransport,
			capabilitySubject(cap),
			fmt.Sprintf("no transport-security condition (%s) on data-plane service %q",
				secureTransportKey, cap.Service),
		))
	}
	return diags
}

// checkResourceSegments flags capabilities whose service requires
// multiple ARN segments but whose refs cover only some of them. A
// capability with no refs at all is not reported here; the canonizer
// already degraded every segment to a wildcard and said so.
func checkResourceSegments(ctx Context) []entities.Diagnostic {
	var diags []entities.Diagnostic
	for _, cap := range ctx.Spec.Capabilities {
		rule, known := ctx.Registry.Lookup(cap.Service)
		if !known || len(cap.ResourceRefs) == 0 {
			continue
		}
		for _, segment := range rule.MissingSegments(cap.ResourceRefs) {
			diags = append(diags, entities.Warning(
				entities.CodeMissingResourceSegment,
				capabilitySubject(cap),
				fmt.Sprintf("missing %s-level ARN for service %q", segment, cap.Service),
			))
		}
	}
	return diags
}

func sortedConditionKeys(conditions map[string]string) []string {
	if len(conditions) == 0 {
		return nil
	}
	keys := make([]string, 0, len(conditions))
	for k := range conditions {
		keys = append(keys, k)
	}
	// Deterministic report order regardless of map iteration.
	sort.Strings(keys)
	return keys
}
