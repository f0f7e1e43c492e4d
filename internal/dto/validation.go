package dto

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// cnicPattern is the national identity format: 5 digits, 7 digits, 1 check digit.
var cnicPattern = regexp.MustCompile(`^\d{5}-\d{7}-\d$`)

// IsCNIC reports whether s is a well-formed national identity number.
func IsCNIC(s string) bool {
	return cnicPattern.MatchString(s)
}

// RegisterValidators adds the custom tags used by request DTOs to v.
func RegisterValidators(v *validator.Validate) error {
	return v.RegisterValidation("cnic", func(fl validator.FieldLevel) bool {
		return IsCNIC(fl.Field().String())
	})
}

// NewValidator returns a validator that reads the same `binding` tags gin does.
func NewValidator() (*validator.Validate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName("binding")
	if err := RegisterValidators(v); err != nil {
		return nil, err
	}
	return v, nil
}

// ValidationMessage turns a binding error into a message fit for an end user.
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid request body"
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "cnic":
		return "Invalid CNIC format"
	case "eqfield":
		return "PINs do not match"
	case "required":
		return fe.Field() + " is required"
	default:
		return "Invalid value for " + fe.Field()
	}
}
