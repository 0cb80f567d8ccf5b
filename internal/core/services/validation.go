package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/custodia-labs/hrcentral-cli/internal/core/domain"
)

// inputValidator checks struct tags on domain input types.
type inputValidator struct {
	validate *validator.Validate
}

func newInputValidator() *inputValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON field names so messages match stored records.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("department", func(fl validator.FieldLevel) bool {
		return domain.Department(fl.Field().String()).IsValid()
	})

	return &inputValidator{validate: v}
}

// Struct validates s and maps the first failure to domain.ErrInvalidInput.
func (v *inputValidator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%w: %s is required", domain.ErrInvalidInput, fe.Field())
	default:
		return fmt.Errorf("%w: %s is invalid", domain.ErrInvalidInput, fe.Field())
	}
}
