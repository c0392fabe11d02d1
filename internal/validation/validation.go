package validation

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"golang.org/x/exp/slices"
)

// ErrInvalidChoice indicates that a flag argument is not among the valid choices.
var ErrInvalidChoice = errors.New("invalid choice")

// validate is the shared validator instance, safe for concurrent use.
var validate = validator.New()

// FieldValidator checks one raw argument for a flag bound to a struct
// field. The data parameter carries the field's current value.
type FieldValidator func(value string, field reflect.StructField, data any) error

// NewDefault returns a field validator applying the `validate` struct
// tag of each field with the shared validator instance.
func NewDefault() FieldValidator {
	return NewWith(validate)
}

// NewWith returns a field validator applying the `validate` struct tag
// of each field with a custom validator instance. Tags check the raw
// command-line argument, before it is parsed into the field.
func NewWith(v *validator.Validate) FieldValidator {
	return func(value string, field reflect.StructField, data any) error {
		tag := field.Tag.Get("validate")
		if tag == "" || tag == "-" {
			return nil
		}

		if err := v.Var(value, tag); err != nil {
			return &invalidVarError{
				fieldName:    field.Name,
				fieldValue:   value,
				validatorErr: err,
			}
		}

		return nil
	}
}

// ValidateTag checks a value against a github.com/go-playground/validator
// tag, such as "ip" or "min=1,max=65535".
func ValidateTag(value any, tag string) error {
	if tag == "" {
		return nil
	}

	return varWithTag(value, "", tag)
}

// BuildValidator combines all the validations requested for a flag
// (choices and a user-defined validator) into a single function, or
// returns nil when there is nothing to check.
func BuildValidator(value reflect.Value, field reflect.StructField, choices []string, user FieldValidator) func(val string) error {
	if user == nil && len(choices) == 0 {
		return nil
	}

	// The validation is performed on each individual item of a (potential) list.
	return func(val string) error {
		if len(choices) > 0 {
			if err := validateChoice(val, choices); err != nil {
				return err
			}
		}

		if user != nil {
			return user(val, field, value.Interface())
		}

		return nil
	}
}

func varWithTag(value any, fieldName, tag string) error {
	if err := validate.Var(value, tag); err != nil {
		return &invalidVarError{
			fieldName:    fieldName,
			fieldValue:   fmt.Sprint(value),
			validatorErr: err,
		}
	}

	return nil
}

// ChoiceValidator returns a check rejecting any value not among the
// given choices.
func ChoiceValidator(choices []string) func(val string) error {
	return func(val string) error {
		return validateChoice(val, choices)
	}
}

// validateChoice checks the given value is among the valid choices.
func validateChoice(val string, choices []string) error {
	if !slices.Contains(choices, val) {
		return fmt.Errorf("%w `%s`, must be one of %v", ErrInvalidChoice, val, choices)
	}

	return nil
}
