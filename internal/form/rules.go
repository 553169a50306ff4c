package form

import (
	"math"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// stepTolerance absorbs the binary representation error of decimal steps such as 0.1.
const stepTolerance = 1e-6

func registerFn(tag string, fn func(fl validator.FieldLevel) bool) func(v *validator.Validate) {
	return func(v *validator.Validate) {
		_ = v.RegisterValidation(tag, fn)
	}
}

func NewSubmissionValidationRules() []ValidationRule {
	return []ValidationRule{
		{
			Rule: registerFn("finite", finiteValidator),
		},
		{
			Rule: registerFn("step", stepValidator),
		},
	}
}

func finiteValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(float64)
	if !ok {
		return false
	}
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}

func stepValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(float64)
	if !ok {
		return false
	}

	step, err := strconv.ParseFloat(fl.Param(), 64)
	if err != nil || step <= 0 {
		return false
	}

	units := val / step
	return math.Abs(units-math.Round(units)) < stepTolerance
}
