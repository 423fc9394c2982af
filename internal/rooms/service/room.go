package service

import (
	"context"
	"strings"

	"miranda/internal/resource"
	"miranda/internal/rooms/repository"
	"miranda/internal/rooms/validator"
	"miranda/pkg/logger"
	"miranda/pkg/model"
	"miranda/pkg/sanitizer"
)

type RoomService = *resource.Service[model.Room, int]

func NewRoomService(
	repo repository.RoomRepository,
	validator *validator.RoomValidator,
	events resource.EventPublisher,
	log *logger.Logger,
) RoomService {
	return resource.NewService(repo, resource.Spec[model.Room, int]{
		Name:     "Room",
		KeyField: repository.KeyField,
		KeyOf:    func(r *model.Room) int { return r.RoomNumber },
		Prepare:  prepare,
		Validate: validator.Validate,
	}, events, log)
}

func prepare(_ context.Context, room *model.Room, _ *model.Room) error {
	room.RoomType = sanitizer.TrimAndNormalize(room.RoomType)
	room.BedType = sanitizer.TrimAndNormalize(room.BedType)
	room.RoomFloor = sanitizer.TrimAndNormalize(room.RoomFloor)
	room.Description = strings.TrimSpace(room.Description)
	room.Cancellation = sanitizer.TrimAndNormalize(room.Cancellation)
	room.Photos = sanitizer.NormalizeURLs(room.Photos)
	room.Amenities = sanitizer.NormalizeAmenities(room.Amenities)

	room.Offer = model.Offer(strings.ToUpper(strings.TrimSpace(string(room.Offer))))
	if room.Offer == "" {
		room.Offer = model.OfferNo
	}
	return nil
}
