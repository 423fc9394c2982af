package validator

import (
	"unicode/utf8"

	"miranda/pkg/logger"
	"miranda/pkg/model"
	"miranda/pkg/validation"

	"github.com/go-playground/validator/v10"
)

const (
	MinPasswordLength = 6
	// bcrypt only accepts passwords up to 72 bytes.
	MaxPasswordBytes = 72
)

type UserValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewUserValidator(log *logger.Logger) *UserValidator {
	v := validation.New(log)

	log.Info("User validator initialized successfully")

	return &UserValidator{
		validate: v,
		logger:   log,
	}
}

func (v *UserValidator) Validate(user *model.User) error {
	return validation.Struct(v.validate, user)
}

// ValidatePassword checks a plaintext password before it is hashed.
func (v *UserValidator) ValidatePassword(plain string) error {
	if utf8.RuneCountInString(plain) < MinPasswordLength {
		return validation.FieldErrors{
			validation.FieldError{
				Field:   "password",
				Message: "password must be at least 6 characters",
			},
		}
	}
	if len(plain) > MaxPasswordBytes {
		return validation.FieldErrors{
			validation.FieldError{
				Field:   "password",
				Message: "password must be at most 72 bytes",
			},
		}
	}
	return nil
}
