// Package validation checks policy input against the form constraints. It holds
// no state beyond the shared validator and is safe for concurrent use.
package validation

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/insurewise/policy-portal/internal/constants"
	"github.com/insurewise/policy-portal/internal/models"
	"github.com/insurewise/policy-portal/internal/utils"
)

// Error codes reported per field.
const (
	CodeRequired    = "required"
	CodeMinLength   = "minlength"
	CodeMin         = "min"
	CodeOneOf       = "oneof"
	CodeDate        = "date"
	CodeDateInvalid = "dateInvalid"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(constants.DateLayout, fl.Field().String())
		return err == nil
	}); err != nil {
		panic(err)
	}

	if err := v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsInf(f, 0) && !math.IsNaN(f)
	}); err != nil {
		panic(err)
	}

	v.RegisterStructValidation(policyPeriodRule, models.PolicyInput{})
	return v
}

// policyPeriodRule enforces startDate < endDate once both dates are well formed.
func policyPeriodRule(sl validator.StructLevel) {
	in := sl.Current().Interface().(models.PolicyInput)

	start, err := time.Parse(constants.DateLayout, in.StartDate)
	if err != nil {
		return
	}
	end, err := time.Parse(constants.DateLayout, in.EndDate)
	if err != nil {
		return
	}
	if !start.Before(end) {
		sl.ReportError(in.EndDate, "endDate", "EndDate", CodeDateInvalid, "")
	}
}

// ValidatePolicy returns nil or a *utils.ValidationError listing one code per
// failing field.
func ValidatePolicy(in models.PolicyInput) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := &utils.ValidationError{Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		if _, seen := out.Fields[fe.Field()]; seen {
			continue
		}
		out.Fields[fe.Field()] = codeFor(fe)
	}
	return out
}

func codeFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "finite":
		return CodeRequired
	case "min":
		if fe.Kind() == reflect.String {
			return CodeMinLength
		}
		return CodeMin
	case "gte":
		return CodeMin
	case "oneof":
		return CodeOneOf
	case "isodate":
		return CodeDate
	default:
		return fe.Tag()
	}
}

var fieldLabels = map[string]string{
	"holderName":  "Holder name",
	"dateOfBirth": "Date of birth",
	"policyType":  "Policy type",
	"premium":     "Premium",
	"startDate":   "Start date",
	"endDate":     "End date",
	"nominee":     "Nominee",
	"status":      "Status",
}

// Message renders the inline text shown next to a field.
func Message(field, code string) string {
	label, ok := fieldLabels[field]
	if !ok {
		label = field
	}

	switch code {
	case "":
		return ""
	case CodeRequired:
		return label + " is required"
	case CodeMinLength:
		return label + " must be at least 3 characters"
	case CodeMin:
		return label + " must be at least 0.01"
	case CodeOneOf:
		return label + " must be one of the listed options"
	case CodeDate:
		return label + " must be a valid date"
	case CodeDateInvalid:
		return "End date must be after start date"
	default:
		return label + " is invalid"
	}
}
