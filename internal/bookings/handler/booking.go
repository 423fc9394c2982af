package handler

import (
	"errors"
	"strings"

	"miranda/internal/bookings/service"
	"miranda/internal/resource"
	"miranda/pkg/logger"
	"miranda/pkg/model"
)

const BasePath = "/booking"

type BookingHandler = *resource.Handler[model.Booking, string]

func NewBookingHandler(svc service.BookingService, guards resource.Guards, log *logger.Logger) BookingHandler {
	return resource.NewHandler(svc, resource.HandlerConfig[model.Booking, string]{
		BasePath: BasePath,
		ParseKey: parseBookingID,
		NewPatch: func() resource.Patch[model.Booking] { return &model.BookingUpdate{} },
		Guards:   guards,
	}, log)
}

// parseBookingID accepts any trimmed id. New bookings always get a uuid, but
// lookups of unknown ids must reach the store and come back as NotFound.
func parseBookingID(raw string) (string, error) {
	id := strings.TrimSpace(raw)
	if id == "" || len(id) > 64 {
		return "", errors.New("invalid booking id")
	}
	return id, nil
}
