package validation

import (
	stderrors "errors"

	"github.com/go-playground/validator/v10"

	"github.com/Saffronius/acpgen/domain/entities"
	domainerrors "github.com/Saffronius/acpgen/domain/errors"
)

// validate is a package-level singleton; constructing a validator per
// call is expensive and the instance is safe for concurrent use.
var validate = validator.New()

// ValidateStructure checks the spec against the struct-level validation
// tags on the entity types (required fields, enumerated access levels,
// confidence bounds). Unlike the semantic checks, a structural violation
// is fatal: the spec is rejected rather than degraded.
func ValidateStructure(spec entities.SpecDSL) error {
	err := validate.Struct(spec)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if stderrors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return &domainerrors.SpecError{Field: fieldErrs[0].Namespace(), Err: err}
	}
	return &domainerrors.SpecError{Err: err}
}
