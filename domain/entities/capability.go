package entities

// AccessLevel is the coarse grant level requested by a capability.
// The registry expands each level to a concrete action set per service.
type AccessLevel string

const (
	AccessReadOnly AccessLevel = "read-only"
	AccessWrite    AccessLevel = "write"
	AccessAdmin    AccessLevel = "admin"
)

// Valid reports whether the access level is one of the known values.
func (a AccessLevel) Valid() bool {
	switch a {
	case AccessReadOnly, AccessWrite, AccessAdmin:
		return true
	}
	return false
}

// Capability is a requested positive-access grant: one service at one
// access level, optionally scoped to specific resources and conditions.
type Capability struct {
	// Service is the registry key for the target service (e.g. "s3").
	// An unknown key is flagged, not rejected; the canonizer still emits
	// a best-effort statement for it.
	Service string `json:"service" validate:"required"`

	// AccessLevel is the requested grant level.
	AccessLevel AccessLevel `json:"access_level" validate:"required,oneof=read-only write admin"`

	// ResourceRefs are resource identifiers, possibly partial. A ref may
	// be a bare name (expanded through the service's ARN templates) or a
	// complete ARN (passed through as-is).
	ResourceRefs []string `json:"resource_refs,omitempty"`

	// Conditions maps condition keys to their expected values. Keys the
	// target service does not accept are dropped at canonicalization time.
	Conditions map[string]string `json:"conditions,omitempty"`

	// Evidence lists the citations that justify this capability.
	Evidence []Evidence `json:"evidence,omitempty" validate:"dive"`

	// Confidence is the extraction confidence for this capability, 0.0 to 1.0.
	Confidence float64 `json:"confidence" validate:"gte=0,lte=1"`
}

// RestrictionDeny is the only restriction rule type currently supported.
const RestrictionDeny = "deny"

// Restriction is a requested negative-access rule. Restrictions operate on
// semantic scope: their targets are emitted literally, with no registry
// resolution.
type Restriction struct {
	// RuleType is the kind of restriction; currently always "deny".
	RuleType string `json:"rule_type" validate:"required,eq=deny"`

	// Targets are the actions to deny, emitted verbatim.
	Targets []string `json:"targets" validate:"required,min=1"`

	// Resources optionally narrows the denial to specific resource
	// strings. Empty means the denial applies to every resource.
	Resources []string `json:"resources,omitempty"`

	// ConditionScope optionally scopes the denial, e.g. by resource tag.
	ConditionScope map[string]string `json:"condition_scope,omitempty"`

	// Rationale is free text explaining why the denial exists.
	Rationale string `json:"rationale,omitempty"`

	// Evidence lists the citations that justify this restriction.
	Evidence []Evidence `json:"evidence,omitempty" validate:"dive"`
}
