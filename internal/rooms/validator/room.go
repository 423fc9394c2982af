package validator

import (
	"miranda/pkg/logger"
	"miranda/pkg/model"
	"miranda/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type RoomValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewRoomValidator(log *logger.Logger) *RoomValidator {
	v := validation.New(log)

	log.Info("Room validator initialized successfully")

	return &RoomValidator{
		validate: v,
		logger:   log,
	}
}

func (v *RoomValidator) Validate(room *model.Room) error {
	if err := validation.Struct(v.validate, room); err != nil {
		return err
	}

	if room.Offer != model.OfferYes && room.Discount > 0 {
		return validation.FieldErrors{
			validation.FieldError{
				Field:   "discount",
				Message: "discount can only be set when offer is YES",
			},
		}
	}

	return nil
}
