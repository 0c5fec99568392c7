package registry

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Saffronius/acpgen/domain/entities"
	domainerrors "github.com/Saffronius/acpgen/domain/errors"
)

// RulePack is the YAML-loadable form of a set of service rules. Packs let
// a deployment teach the registry new services, or override the built-in
// table, without recompiling.
type RulePack struct {
	Services []RuleDefinition `yaml:"services"`
}

// RuleDefinition is the serializable form of one ServiceRule.
type RuleDefinition struct {
	// Service is the registry key.
	Service string `yaml:"service"`

	// Actions maps access level names ("read-only", "write", "admin")
	// to canonical action lists.
	Actions map[string][]string `yaml:"actions"`

	// Resources lists the ARN shapes the service requires.
	Resources []ARNFormat `yaml:"resources,omitempty"`

	// ConditionKeys lists accepted condition keys, globs allowed.
	ConditionKeys []string `yaml:"condition_keys,omitempty"`

	// DataPlane marks the service as data-moving.
	DataPlane bool `yaml:"data_plane,omitempty"`
}

// ParseRulePack decodes and checks a YAML rule pack.
func ParseRulePack(data []byte) (RulePack, error) {
	var pack RulePack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return RulePack{}, &domainerrors.RulePackError{Err: err}
	}
	for _, def := range pack.Services {
		if def.Service == "" {
			return RulePack{}, &domainerrors.RulePackError{Err: fmt.Errorf("service key is required")}
		}
		if len(def.Actions) == 0 {
			return RulePack{}, &domainerrors.RulePackError{
				Service: def.Service,
				Err:     fmt.Errorf("at least one access level is required"),
			}
		}
		for level := range def.Actions {
			if !entities.AccessLevel(level).Valid() {
				return RulePack{}, &domainerrors.RulePackError{
					Service: def.Service,
					Err:     fmt.Errorf("unknown access level %q", level),
				}
			}
		}
		for _, format := range def.Resources {
			if format.Segment == "" || format.Template == "" {
				return RulePack{}, &domainerrors.RulePackError{
					Service: def.Service,
					Err:     fmt.Errorf("resource formats need both segment and template"),
				}
			}
		}
	}
	return pack, nil
}

func (d RuleDefinition) toRule() ServiceRule {
	actions := make(map[entities.AccessLevel][]string, len(d.Actions))
	for level, list := range d.Actions {
		actions[entities.AccessLevel(level)] = append([]string(nil), list...)
	}
	return ServiceRule{
		Service:       d.Service,
		Actions:       actions,
		ARNFormats:    append([]ARNFormat(nil), d.Resources...),
		ConditionKeys: append([]string(nil), d.ConditionKeys...),
		DataPlane:     d.DataPlane,
	}
}
