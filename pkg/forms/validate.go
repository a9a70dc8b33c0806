package forms

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Errors maps a form field name to its list of error messages.
type Errors map[string][]string

func (e Errors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON field names, not Go struct names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Minimum password policy: 8+ chars with at least one letter and one digit.
	v.RegisterAlias("pwd", "min=8,containsany=0123456789,containsany=abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")
	return v
}

// validateStruct runs validator tags and converts failures into the
// field -> messages map the handlers serialize under "errors".
func validateStruct(s any) Errors {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Errors{"payload": {"invalid payload"}}
	}
	out := make(Errors, len(verrs))
	for _, fe := range verrs {
		out.Add(fe.Field(), messageFor(fe))
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	// Field-specific wording first, to match the storefront copy.
	switch fe.Field() {
	case "agreeTerms":
		return "You must agree to the terms and conditions."
	case "confirmPassword":
		if fe.Tag() == "eqfield" {
			return "Passwords do not match."
		}
	}

	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "max":
		return "Ensure this value has at most " + fe.Param() + " characters."
	case "min", "pwd", "containsany":
		return "Password must be at least 8 characters and contain letters and numbers."
	case "eqfield":
		return "Must match the " + fe.Param() + " field."
	case "eq":
		return "Must be " + fe.Param() + "."
	default:
		return "Invalid value."
	}
}
