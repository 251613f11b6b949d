package validators

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// CheckStruct runs struct-tag validation and flattens the result into the
// field->message map our responses use.
func CheckStruct(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errors["_"] = "Invalid request data!"
		return errors
	}

	for _, fe := range validationErrors {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			errors[field] = title(field) + " is required!"
		case "email":
			errors[field] = "A valid email address is required!"
		case "min":
			errors[field] = title(field) + " must be at least " + fe.Param() + " characters long!"
		case "max":
			errors[field] = title(field) + " must be at most " + fe.Param() + " characters long!"
		case "oneof":
			errors[field] = title(field) + " must be one of: " + fe.Param()
		default:
			errors[field] = title(field) + " is invalid!"
		}
	}
	return errors
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
