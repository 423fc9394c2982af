package validator

import (
	"miranda/pkg/logger"
	"miranda/pkg/model"
	"miranda/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type BookingValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewBookingValidator(log *logger.Logger) *BookingValidator {
	v := validation.New(log)

	log.Info("Booking validator initialized successfully")

	return &BookingValidator{
		validate: v,
		logger:   log,
	}
}

func (v *BookingValidator) Validate(booking *model.Booking) error {
	if err := validation.Struct(v.validate, booking); err != nil {
		return err
	}

	if !booking.CheckOut.After(booking.CheckIn.Time) {
		return validation.FieldErrors{
			validation.FieldError{
				Field:   "checkOut",
				Message: "checkOut must be after checkIn",
			},
		}
	}

	return nil
}
