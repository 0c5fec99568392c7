package entities

import (
	"encoding/json"
	"fmt"
)

// PolicyVersion is the fixed schema tag every emitted document carries.
// It must match the authorization service's policy language version.
const PolicyVersion = "2012-10-17"

// Effect is a statement's authorization effect.
type Effect string

const (
	EffectAllow Effect = "Allow"
	EffectDeny  Effect = "Deny"
)

// StringOrList is a JSON value that the policy wire format allows to be
// either a bare string or an array of strings. It always marshals a single
// element as a bare string, which keeps output byte-stable and matches the
// canonical form deployed documents use.
type StringOrList []string

// MarshalJSON emits a bare string for single-element lists and an array
// otherwise.
func (s StringOrList) MarshalJSON() ([]byte, error) {
	if len(s) == 1 {
		return json.Marshal(s[0])
	}
	return json.Marshal([]string(s))
}

// UnmarshalJSON accepts both the bare-string and array forms.
func (s *StringOrList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*s = StringOrList{single}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("value must be a string or an array of strings: %w", err)
	}
	*s = StringOrList(list)
	return nil
}

// ConditionBlock maps a condition operator to the key/value pairs it
// applies to, mirroring the policy wire format's Condition element.
type ConditionBlock map[string]map[string]string

// Clone returns a deep copy of the block, or nil for an empty block.
func (c ConditionBlock) Clone() ConditionBlock {
	if len(c) == 0 {
		return nil
	}
	out := make(ConditionBlock, len(c))
	for op, kv := range c {
		inner := make(map[string]string, len(kv))
		for k, v := range kv {
			inner[k] = v
		}
		out[op] = inner
	}
	return out
}

// PolicyStatement is a single emitted authorization rule. Field names and
// JSON shape are bit-exact with the authorization-policy document schema;
// documents produced here deploy unmodified.
type PolicyStatement struct {
	// Sid uniquely identifies the statement within its document.
	Sid string `json:"Sid"`

	// Effect is Allow or Deny.
	Effect Effect `json:"Effect"`

	// Action lists the action names the statement covers, ordered and
	// deduplicated.
	Action StringOrList `json:"Action"`

	// Resource lists the resource strings the statement covers, ordered
	// and deduplicated. "*" is a distinct, flaggable value.
	Resource StringOrList `json:"Resource"`

	// Condition optionally constrains when the statement applies.
	Condition ConditionBlock `json:"Condition,omitempty"`
}

// PolicyDocument is an ordered sequence of statements under a fixed
// version tag. Documents are immutable once produced.
type PolicyDocument struct {
	// Version is always PolicyVersion for documents produced here.
	Version string `json:"Version"`

	// Statement holds the document's statements in emission order.
	Statement []PolicyStatement `json:"Statement"`
}

// NewPolicyDocument returns an empty document carrying the fixed version
// tag. Statement is non-nil so an empty document marshals as [].
func NewPolicyDocument() PolicyDocument {
	return PolicyDocument{Version: PolicyVersion, Statement: []PolicyStatement{}}
}

// Empty reports whether the document contains no statements.
func (d PolicyDocument) Empty() bool {
	return len(d.Statement) == 0
}
