// Package canon deterministically compiles a SpecDSL into a baseline
// policy document. Canonicalization never fails for a well-formed spec:
// missing detail degrades to wildcards plus diagnostics, and repeated
// invocation over the same registry yields byte-identical output.
package canon

import (
	"fmt"
	"sort"

	"github.com/Saffronius/acpgen/domain/entities"
	domainerrors "github.com/Saffronius/acpgen/domain/errors"
	"github.com/Saffronius/acpgen/registry"
)

// Canonicalize compiles the spec into a policy document. Statement order
// equals input order, with restrictions always following capabilities.
// The returned diagnostics describe every degradation applied during
// emission; they never abort it. The only error case is a structurally
// invalid spec, e.g. a capability with no service field.
func Canonicalize(reg *registry.Registry, spec entities.SpecDSL) (entities.PolicyDocument, []entities.Diagnostic, error) {
	doc := entities.NewPolicyDocument()
	var diags []entities.Diagnostic

	groups, err := groupCapabilities(spec.Capabilities)
	if err != nil {
		return entities.PolicyDocument{}, nil, err
	}

	sids := newSidAllocator()
	for _, group := range groups {
		stmt, groupDiags := emitCapabilityStatement(reg, group, sids)
		doc.Statement = append(doc.Statement, stmt)
		diags = append(diags, groupDiags...)
	}
	for _, restriction := range spec.Restrictions {
		doc.Statement = append(doc.Statement, emitDenyStatement(restriction, sids))
	}
	return doc, diags, nil
}

// capabilityGroup merges capabilities that share service, access level,
// and condition set into a single pending statement. Grouping keeps the
// emitted document minimal without reordering: groups appear in
// first-occurrence order.
type capabilityGroup struct {
	service    string
	level      entities.AccessLevel
	refs       []string
	conditions map[string]string
}

func groupCapabilities(capabilities []entities.Capability) ([]*capabilityGroup, error) {
	var groups []*capabilityGroup
	index := make(map[string]*capabilityGroup)

	for i, cap := range capabilities {
		if cap.Service == "" {
			return nil, &domainerrors.SpecError{
				Field: fmt.Sprintf("capabilities[%d].service", i),
				Err:   fmt.Errorf("service is required"),
			}
		}
		key := groupKey(cap)
		group, ok := index[key]
		if !ok {
			group = &capabilityGroup{
				service:    cap.Service,
				level:      cap.AccessLevel,
				conditions: cap.Conditions,
			}
			index[key] = group
			groups = append(groups, group)
		}
		for _, ref := range cap.ResourceRefs {
			if !contains(group.refs, ref) {
				group.refs = append(group.refs, ref)
			}
		}
	}
	return groups, nil
}

func groupKey(cap entities.Capability) string {
	return cap.Service + "\x1f" + string(cap.AccessLevel) + "\x1f" + conditionFingerprint(cap.Conditions)
}

// conditionFingerprint serializes a condition map in sorted key order so
// grouping is independent of map iteration order.
func conditionFingerprint(conditions map[string]string) string {
	keys := sortedKeys(conditions)
	fp := ""
	for _, k := range keys {
		fp += k + "=" + conditions[k] + "\x1e"
	}
	return fp
}

func emitCapabilityStatement(reg *registry.Registry, group *capabilityGroup, sids *sidAllocator) (entities.PolicyStatement, []entities.Diagnostic) {
	var diags []entities.Diagnostic
	subject := group.service + "/" + string(group.level)

	rule, known := reg.Lookup(group.service)

	var actions, resources []string
	if known {
		actions = rule.ActionsFor(group.level)
		var missing []string
		resources, missing = rule.ResolveResources(group.refs)
		for _, segment := range missing {
			diags = append(diags, entities.Warning(
				entities.CodeMissingResourceSegment,
				subject,
				fmt.Sprintf("no %s resource supplied for %s; emitted wildcard placeholder", segment, group.service),
			))
		}
	}
	if len(actions) == 0 {
		// Best-effort fallback: the literal service string as an action
		// prefix. The statement is still emitted; the validator reports
		// the unknown service separately.
		actions = []string{group.service + ":*"}
	}
	if !known {
		resources = group.refs
		if len(resources) == 0 {
			resources = []string{"*"}
		}
		diags = append(diags, entities.Warning(
			entities.CodeUnknownService,
			subject,
			fmt.Sprintf("service %q is not in the rule registry; emitted best-effort statement", group.service),
		))
	}

	condition, conditionDiags := buildConditionBlock(rule, known, subject, group.conditions)
	diags = append(diags, conditionDiags...)

	stmt := entities.PolicyStatement{
		Sid:       sids.allocate("Allow" + pascalize(group.service) + pascalize(string(group.level))),
		Effect:    entities.EffectAllow,
		Action:    dedupe(actions),
		Resource:  dedupe(resources),
		Condition: condition,
	}
	return stmt, diags
}

// buildConditionBlock resolves a capability's condition map against the
// service's accepted keys. Unsupported keys are dropped and diagnosed
// rather than failing emission: authorization correctness takes priority
// over condition richness. For unknown services there is no accepted set
// to consult, so keys pass through untouched.
func buildConditionBlock(rule registry.ServiceRule, known bool, subject string, conditions map[string]string) (entities.ConditionBlock, []entities.Diagnostic) {
	if len(conditions) == 0 {
		return nil, nil
	}
	var diags []entities.Diagnostic
	block := entities.ConditionBlock{}
	for _, key := range sortedKeys(conditions) {
		if known && !rule.SupportsConditionKey(key) {
			diags = append(diags, entities.Warning(
				entities.CodeConditionKeyUnsupported,
				subject,
				fmt.Sprintf("condition key %q is not supported by service %q; dropped from statement", key, rule.Service),
			))
			continue
		}
		op := operatorForConditionKey(key)
		if block[op] == nil {
			block[op] = map[string]string{}
		}
		block[op][key] = conditions[key]
	}
	if len(block) == 0 {
		return nil, diags
	}
	return block, diags
}

func emitDenyStatement(restriction entities.Restriction, sids *sidAllocator) entities.PolicyStatement {
	resources := restriction.Resources
	if len(resources) == 0 {
		resources = []string{"*"}
	}

	var condition entities.ConditionBlock
	if len(restriction.ConditionScope) > 0 {
		condition = entities.ConditionBlock{}
		for _, key := range sortedKeys(restriction.ConditionScope) {
			op := operatorForConditionKey(key)
			if condition[op] == nil {
				condition[op] = map[string]string{}
			}
			condition[op][key] = restriction.ConditionScope[key]
		}
	}

	return entities.PolicyStatement{
		Sid:       sids.allocate("Deny" + denyTag(restriction.Targets)),
		Effect:    entities.EffectDeny,
		Action:    dedupe(restriction.Targets),
		Resource:  dedupe(resources),
		Condition: condition,
	}
}

// denyTag derives the human-readable part of a deny Sid from the service
// prefix of the first target action.
func denyTag(targets []string) string {
	if len(targets) == 0 {
		return "All"
	}
	service, _, ok := cutActionPrefix(targets[0])
	if !ok || service == "*" {
		return "All"
	}
	return pascalize(service)
}

func cutActionPrefix(action string) (service, rest string, ok bool) {
	for i := 0; i < len(action); i++ {
		if action[i] == ':' {
			return action[:i], action[i+1:], true
		}
	}
	return "", action, false
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

func contains(values []string, v string) bool {
	for _, existing := range values {
		if existing == v {
			return true
		}
	}
	return false
}
