package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	apperrors "miranda/pkg/errors"
	"miranda/pkg/logger"
	"miranda/pkg/model"

	"github.com/go-playground/validator/v10"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	messages := make([]string, 0, len(e))
	for _, fe := range e {
		messages = append(messages, fe.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(e), strings.Join(messages, "; "))
}

// AsAppError turns field errors into a validation AppError whose details carry
// the list under "errors". Any other error is returned unchanged.
func AsAppError(resource string, err error) error {
	var fieldErrs FieldErrors
	if errors.As(err, &fieldErrs) {
		return apperrors.Validation(fmt.Sprintf("%s validation failed", resource), map[string]any{
			"errors": fieldErrs,
		})
	}
	return err
}

// New returns a validator that reports JSON field names and treats a zero
// FlexibleDate as missing.
func New(log *logger.Logger) *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(model.FlexibleDate); ok {
			if d.IsZero() {
				return nil
			}
			return d.Time
		}
		return nil
	}, model.FlexibleDate{})

	log.Debug("Validator initialized")
	return v
}

// Struct runs tag validation and translates failures to FieldErrors.
func Struct(v *validator.Validate, s any) error {
	if err := v.Struct(s); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return Translate(validationErrs)
		}
		return err
	}
	return nil
}

func Translate(errs validator.ValidationErrors) FieldErrors {
	var fieldErrors FieldErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "min":
			message = fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
		case "gte":
			message = fmt.Sprintf("%s must be greater than or equal to %s", err.Field(), err.Param())
		case "lte":
			message = fmt.Sprintf("%s must be less than or equal to %s", err.Field(), err.Param())
		case "e164":
			message = fmt.Sprintf("%s must be in E.164 format (e.g., +34600123456)", err.Field())
		case "email":
			message = fmt.Sprintf("%s must be a valid email address", err.Field())
		case "url":
			message = fmt.Sprintf("%s must be a valid URL", err.Field())
		case "uuid":
			message = fmt.Sprintf("%s must be a valid UUID", err.Field())
		case "oneof":
			message = fmt.Sprintf("%s must be one of: %s", err.Field(), err.Param())
		}

		fieldErrors = append(fieldErrors, FieldError{
			Field:   fieldPath(err),
			Message: message,
		})
	}

	return fieldErrors
}

// fieldPath drops the root struct name from the namespace, so
// "Booking.specialRequest.text" is reported as "specialRequest.text".
func fieldPath(err validator.FieldError) string {
	ns := err.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return err.Field()
}
