package validation

import (
	"errors"

	"catalog/internal/models"

	"github.com/go-playground/validator/v10"
)

const (
	msgPage  = "Page must be a positive integer."
	msgLimit = "Limit must be a positive integer."
)

// ValidateListQuery reports out-of-range paging parameters.
func (v *ProductValidator) ValidateListQuery(q models.ListQuery) []string {
	err := v.validate.Struct(q)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []string{err.Error()}
	}
	var violations []string
	for _, fe := range fieldErrs {
		switch fe.Field() {
		case "Page":
			violations = append(violations, msgPage)
		case "Limit":
			violations = append(violations, msgLimit)
		default:
			violations = append(violations, fe.Error())
		}
	}
	return violations
}
