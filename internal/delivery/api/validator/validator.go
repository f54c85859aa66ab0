// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Validator implements echo.Validator with lazy initialization.
type Validator struct {
	once     sync.Once
	validate *validator.Validate
}

// New creates a Validator. The engine is built on first use.
func New() *Validator {
	return &Validator{}
}

// Validate checks i against its `validate` struct tags.
func (v *Validator) Validate(i any) error {
	v.lazyinit()

	if err := v.validate.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (v *Validator) lazyinit() {
	v.once.Do(func() {
		v.validate = validator.New(validator.WithRequiredStructEnabled())

		// Report fields by the name clients send.
		v.validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			for _, tag := range []string{"json", "form", "query"} {
				name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}

			return field.Name
		})
	})
}

// Details maps each failing field to the rule it broke. It returns nil when err
// carries no field errors.
func Details(err error) map[string]string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	details := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		rule := fieldErr.Tag()
		if fieldErr.Param() != "" {
			rule += "=" + fieldErr.Param()
		}
		details[fieldErr.Field()] = rule
	}

	return details
}
