package repository

import (
	"miranda/internal/resource"
	"miranda/pkg/config"
	"miranda/pkg/model"
)

const KeyField = "id"

type BookingRepository = resource.Repository[model.Booking, string]

func NewMongoBookingRepository(cfg *config.Config) BookingRepository {
	return resource.NewMongoRepository[model.Booking, string](cfg, resource.BookingsCollection, KeyField)
}
