package arecur

import (
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/jpfluger/schedtext/aerr"
)

var (
	validatorOnce sync.Once
	validatorInst *validator.Validate
)

func getValidator() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInst = validator.New()
	})
	return validatorInst
}

// Validate runs struct-tag validation over r's numeric ranges
// (Interval/ByMonth/ByWeekday/ByMonthDay/BySetPos), returning the
// accumulated field errors via aerr.FromValidatorErr. It does not check
// cross-field consistency (e.g. window ordering) — that lives in the
// occurrence engine's Validator, which has the window/exclusion semantics
// this package deliberately doesn't know about.
func (r *Rule) Validate() aerr.ValidationErrors {
	return aerr.FromValidatorErr(getValidator().Struct(r))
}
