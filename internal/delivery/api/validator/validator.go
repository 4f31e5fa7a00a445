// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strings"

	"market/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New builds a validator that reports JSON field names and understands decimal amounts.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}

		return name
	})

	// decimal.Decimal is a struct, so the numeric tags cannot see its value.
	_ = v.RegisterValidation("dpositive", func(fl validator.FieldLevel) bool {
		d, ok := fl.Field().Interface().(decimal.Decimal)

		return ok && d.IsPositive()
	})
	_ = v.RegisterValidation("dnonnegative", func(fl validator.FieldLevel) bool {
		d, ok := fl.Field().Interface().(decimal.Decimal)

		return ok && !d.IsNegative()
	})

	return &Validator{validate: v}
}

// Validate runs the struct tags of i.
func (v *Validator) Validate(i any) error {
	return errors.WithStack(v.validate.Struct(i))
}

// FieldErrors flattens a validation failure into field -> failed rule.
// It returns nil when err is not a validation failure.
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		fields[trimNamespace(fe.Namespace())] = rule
	}

	return fields
}

// trimNamespace drops the root struct name: "createStockUpdateRequest.prices[0].price" -> "prices[0].price".
func trimNamespace(ns string) string {
	if idx := strings.IndexByte(ns, '.'); idx >= 0 {
		return ns[idx+1:]
	}

	return ns
}
