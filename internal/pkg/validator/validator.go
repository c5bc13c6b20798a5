package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate - struct validation
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// GetValidator - access to the validator for custom configuration
func GetValidator() *validator.Validate {
	return validate
}

// FieldErrors flattens validation errors into field -> failed tag.
func FieldErrors(err error) map[string]interface{} {
	details := make(map[string]interface{})
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			details[fe.Namespace()] = fe.Tag()
		}
	}
	return details
}
