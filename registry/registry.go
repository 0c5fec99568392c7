// Package registry holds the static, read-only knowledge of supported
// services: the action set each access level expands to, the ARN shapes a
// service requires, and the condition keys it accepts.
//
// A Registry is built once at process start and never mutated afterward,
// so it is safe to share across concurrent canonicalize/validate/compare
// pipelines without copying or locking.
package registry

import (
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/Saffronius/acpgen/domain/entities"
)

// ARNFormat describes one ARN shape a service requires. Services that
// scope actions at multiple levels (e.g. S3 buckets and objects) carry
// one format per level.
type ARNFormat struct {
	// Segment names the shape, e.g. "bucket", "object", "table".
	Segment string `yaml:"segment"`

	// Template is the ARN pattern with %s where the resource name goes,
	// e.g. "arn:aws:s3:::%s/*".
	Template string `yaml:"template"`
}

// Matches reports whether ref is a full ARN of this format's shape. The
// %s slot stands for a single name and never spans a "/", so a bucket
// template does not swallow object ARNs. A bare resource name never
// matches; it is expanded instead.
func (f ARNFormat) Matches(ref string) bool {
	if !strings.HasPrefix(ref, "arn:") {
		return false
	}
	prefix, suffix, ok := strings.Cut(f.Template, "%s")
	if !ok {
		return ref == f.Template
	}
	if !strings.HasPrefix(ref, prefix) || !strings.HasSuffix(ref, suffix) ||
		len(ref) < len(prefix)+len(suffix) {
		return false
	}
	name := ref[len(prefix) : len(ref)-len(suffix)]
	return !strings.Contains(name, "/")
}

// Expand renders the format for a resource ref. Full ARNs pass through
// untouched; bare names are substituted into the template.
func (f ARNFormat) Expand(ref string) string {
	if strings.HasPrefix(ref, "arn:") {
		return ref
	}
	return strings.Replace(f.Template, "%s", ref, 1)
}

// Wildcard returns the format with every name position wildcarded. This
// is the placeholder emitted when a required segment cannot be derived
// from the given resource refs.
func (f ARNFormat) Wildcard() string {
	return strings.Replace(f.Template, "%s", "*", 1)
}

// ServiceRule bundles everything the core knows about one service. It is
// a plain value: no per-service subtypes, one table plus pure functions.
type ServiceRule struct {
	// Service is the registry key, e.g. "s3".
	Service string

	// Actions maps each access level to its canonical action names.
	Actions map[entities.AccessLevel][]string

	// ARNFormats lists the ARN shapes the service requires, in emission
	// order. Empty means resources pass through verbatim.
	ARNFormats []ARNFormat

	// ConditionKeys are the condition keys the service accepts. A key
	// ending in a glob (e.g. "aws:PrincipalTag/*") accepts any key
	// matching the pattern.
	ConditionKeys []string

	// DataPlane marks services that move user data and therefore should
	// carry a transport-security condition.
	DataPlane bool

	supported bool
}

// Unsupported returns the sentinel rule for a service the registry does
// not know. It resolves no actions and passes resources through verbatim.
func Unsupported(service string) ServiceRule {
	return ServiceRule{Service: service}
}

// Supported reports whether the rule came from the registry table rather
// than the unsupported sentinel.
func (r ServiceRule) Supported() bool { return r.supported }

// ActionsFor returns a copy of the canonical action names for the given
// access level, or nil when the rule is the unsupported sentinel.
func (r ServiceRule) ActionsFor(level entities.AccessLevel) []string {
	actions := r.Actions[level]
	if len(actions) == 0 {
		return nil
	}
	out := make([]string, len(actions))
	copy(out, actions)
	return out
}

// SupportsConditionKey reports whether the service accepts the given
// condition key, either exactly or through a glob pattern.
func (r ServiceRule) SupportsConditionKey(key string) bool {
	for _, accepted := range r.ConditionKeys {
		if accepted == key {
			return true
		}
		if strings.ContainsAny(accepted, "*?") {
			if ok, err := doublestar.Match(accepted, key); err == nil && ok {
				return true
			}
		}
	}
	return false
}

// ResolveResources derives the resource strings for a statement from the
// capability's resource refs. Every required ARN segment that no ref
// covers degrades to a wildcard placeholder; the returned missing list
// names those segments so the caller can diagnose them. The call never
// fails: incomplete refs produce wildcards, not errors.
func (r ServiceRule) ResolveResources(refs []string) (resources []string, missing []string) {
	if len(r.ARNFormats) == 0 {
		if len(refs) == 0 {
			return []string{"*"}, nil
		}
		return append([]string(nil), refs...), nil
	}

	matched := make(map[string]bool, len(refs))
	for _, format := range r.ARNFormats {
		covered := false
		for _, ref := range refs {
			if ref == "" {
				continue
			}
			if strings.HasPrefix(ref, "arn:") {
				if format.Matches(ref) {
					resources = append(resources, ref)
					matched[ref] = true
					covered = true
				}
				continue
			}
			// A bare name expands through every template.
			resources = append(resources, format.Expand(ref))
			covered = true
		}
		if !covered {
			resources = append(resources, format.Wildcard())
			missing = append(missing, format.Segment)
		}
	}
	// An explicit ARN that fits no known shape is still the user's ARN;
	// carry it verbatim rather than dropping it.
	for _, ref := range refs {
		if strings.HasPrefix(ref, "arn:") && !matched[ref] {
			resources = append(resources, ref)
		}
	}
	return resources, missing
}

// MissingSegments returns the ARN segments the given refs fail to cover,
// in template order. It mirrors the degradation ResolveResources applies
// so the validator can re-check emitted documents independently.
func (r ServiceRule) MissingSegments(refs []string) []string {
	_, missing := r.ResolveResources(refs)
	return missing
}

// Registry is the immutable service-rule table.
type Registry struct {
	rules map[string]ServiceRule
}

// Option configures a Registry under construction.
type Option func(map[string]ServiceRule)

// WithService adds or replaces a single service rule.
func WithService(rule ServiceRule) Option {
	return func(rules map[string]ServiceRule) {
		rule.supported = true
		rules[rule.Service] = rule
	}
}

// WithRulePack merges every service from a parsed rule pack.
func WithRulePack(pack RulePack) Option {
	return func(rules map[string]ServiceRule) {
		for _, def := range pack.Services {
			rule := def.toRule()
			rule.supported = true
			rules[rule.Service] = rule
		}
	}
}

// New builds a Registry from the built-in service table plus any options.
// The result must not be mutated; share it freely across goroutines.
func New(opts ...Option) *Registry {
	rules := make(map[string]ServiceRule)
	for _, rule := range builtinRules() {
		rule.supported = true
		rules[rule.Service] = rule
	}
	for _, opt := range opts {
		opt(rules)
	}
	return &Registry{rules: rules}
}

// Lookup returns the rule for a service key. Unknown keys return the
// unsupported sentinel and false rather than failing; callers emit
// best-effort output and flag the service.
func (g *Registry) Lookup(service string) (ServiceRule, bool) {
	if rule, ok := g.rules[service]; ok {
		return rule, true
	}
	return Unsupported(service), false
}

// Services returns the known service keys, sorted.
func (g *Registry) Services() []string {
	keys := make([]string, 0, len(g.rules))
	for k := range g.rules {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
