package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	// Initialize validation
	validate = validator.New(validator.WithRequiredStructEnabled())
}

// GetValidator returns the shared validator instance. Validation errors
// come back as one ValidationErrors slice per struct, which lets callers
// surface every violated rule at once instead of stopping at the first.
func GetValidator() *validator.Validate {
	return validate
}
