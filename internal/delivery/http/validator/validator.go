// Package validator adapts go-playground/validator to echo.
package validator

import (
	"fmt"
	"strings"

	"eats/internal/domain/entity"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New builds a validator with the catalog-specific rules registered.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	// The registrations below cannot fail: the tags are non-empty and the functions non-nil.
	_ = validate.RegisterValidation("island", func(fl validator.FieldLevel) bool {
		return entity.Island(fl.Field().String()).Valid()
	})
	_ = validate.RegisterValidation("pricelevel", func(fl validator.FieldLevel) bool {
		return entity.PriceLevel(fl.Field().String()).Valid()
	})
	_ = validate.RegisterValidation("reporttype", func(fl validator.FieldLevel) bool {
		return entity.ReportType(fl.Field().String()).Valid()
	})
	_ = validate.RegisterValidation("eventtype", func(fl validator.FieldLevel) bool {
		return entity.EventType(fl.Field().String()).Valid()
	})

	return &Validator{validate: validate}
}

// Validate returns one readable message listing every failed field.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		messages = append(messages, describe(fieldErr))
	}

	return errors.New(strings.Join(messages, "; "))
}

func describe(fieldErr validator.FieldError) string {
	field := fieldErr.Field()
	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fieldErr.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fieldErr.Param())
	case "island", "pricelevel", "reporttype", "eventtype":
		return fmt.Sprintf("%s has an unknown value %q", field, fieldErr.Value())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fieldErr.Tag())
	}
}
