package web

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// GetErrorMsg returns a human readable message for the first failed
// validation of a bound request.
func GetErrorMsg(ve validator.ValidationErrors) string {
	field := ve[0]

	switch field.Tag() {
	case "required":
		return field.Field() + " field is required"
	case "min":
		return field.Field() + fmt.Sprintf(" field must be at least %s", field.Param())
	case "max":
		return field.Field() + fmt.Sprintf(" field must be at most %s", field.Param())
	case "email":
		return field.Field() + " field must be a valid email"
	case "alphanum":
		return field.Field() + " field must be alphanumeric"
	case "depositamount":
		return field.Field() + " field must be one of the allowed deposit amounts"
	}

	return field.Field() + " field is invalid"
}
