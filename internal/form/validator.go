package form

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type ValidationRule struct {
	Rule func(v *validator.Validate)
}

// Validator is a wrapper around the actual validator
// It sets up the validator and extract the rule error message from the underlying error
type Validator struct {
	validator *validator.Validate
	rules     []ValidationRule
}

func NewValidator() *Validator {
	v := validator.New()
	// report json names so violations can be matched with Fields
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validator: v}
}

func (v *Validator) Register(rules ...ValidationRule) {
	for _, validationRule := range rules {
		validationRule.Rule(v.validator)
	}
	v.rules = append(v.rules, rules...)
}

func (v *Validator) Struct(s any) error {
	return v.validator.Struct(s)
}

var defaultValidator = newSubmissionValidator()

func newSubmissionValidator() *Validator {
	v := NewValidator()
	v.Register(NewSubmissionValidationRules()...)
	return v
}

// Validate checks every field of s against its bounds. It returns *ErrOutOfBounds
// listing all violations.
func Validate(s Submission) error {
	err := defaultValidator.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := &ErrOutOfBounds{}
	for _, fe := range fieldErrs {
		out.Violations = append(out.Violations, Violation{
			Key:     fe.Field(),
			Message: violationMessage(fe),
		})
	}
	return out
}

func violationMessage(fe validator.FieldError) string {
	f, ok := Lookup(fe.Field())
	if !ok {
		return fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag())
	}

	switch fe.Tag() {
	case "min", "max":
		return fmt.Sprintf("%s must be between %s and %s", f.Label, FormatNumber(f.Min), FormatNumber(f.Max))
	case "finite":
		return fmt.Sprintf("%s must be a finite number", f.Label)
	case "step":
		return fmt.Sprintf("%s must be a multiple of %s", f.Label, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", f.Label)
	}
}
