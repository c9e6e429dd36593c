package validator

import (
	"fmt"
	"strings"

	"familyhub/core/errors"

	"github.com/go-playground/validator/v10"
)

// RequestValidator plugs go-playground/validator into Echo's Validator hook.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (v *RequestValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok {
			msgs := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				msgs = append(msgs, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
			}
			return errors.NewAppError(errors.ErrInvalidRequestData, strings.Join(msgs, "; "), err)
		}
		return errors.NewAppError(errors.ErrInvalidRequestData, "invalid request data", err)
	}
	return nil
}
