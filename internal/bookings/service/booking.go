package service

import (
	"context"
	"strings"
	"time"

	"miranda/internal/bookings/repository"
	"miranda/internal/bookings/validator"
	"miranda/internal/resource"
	"miranda/pkg/logger"
	"miranda/pkg/model"
	"miranda/pkg/sanitizer"

	"github.com/google/uuid"
)

type BookingService = *resource.Service[model.Booking, string]

func NewBookingService(
	repo repository.BookingRepository,
	validator *validator.BookingValidator,
	events resource.EventPublisher,
	log *logger.Logger,
) BookingService {
	return resource.NewService(repo, resource.Spec[model.Booking, string]{
		Name:     "Booking",
		KeyField: repository.KeyField,
		KeyOf:    func(b *model.Booking) string { return b.ID },
		Prepare:  prepare(time.Now),
		Validate: validator.Validate,
	}, events, log)
}

func prepare(now func() time.Time) func(context.Context, *model.Booking, *model.Booking) error {
	return func(_ context.Context, booking *model.Booking, current *model.Booking) error {
		if current == nil {
			applyDefaults(booking, now().UTC())
		}
		sanitize(booking)
		return nil
	}
}

// applyDefaults runs on create only. The id is always assigned here; any
// client-supplied value is discarded.
func applyDefaults(booking *model.Booking, now time.Time) {
	booking.ID = uuid.NewString()

	if booking.OrderDate.IsZero() {
		booking.OrderDate = model.NewDate(now.Truncate(24 * time.Hour))
	}
	if booking.Status == "" {
		booking.Status = model.BookingStatusBooked
	}
}

func sanitize(booking *model.Booking) {
	booking.Name = sanitizer.NormalizeName(booking.Name)
	booking.Email = sanitizer.NormalizeEmail(booking.Email)
	booking.Phone = sanitizer.NormalizePhone(booking.Phone)
	booking.Image = sanitizer.NormalizeURL(booking.Image)
	booking.RoomType = sanitizer.TrimAndNormalize(booking.RoomType)
	booking.SpecialRequest.Text = strings.TrimSpace(booking.SpecialRequest.Text)
}
