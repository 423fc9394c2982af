package handler

import (
	"strconv"

	"miranda/internal/resource"
	"miranda/internal/rooms/service"
	"miranda/pkg/logger"
	"miranda/pkg/model"
)

const BasePath = "/rooms"

type RoomHandler = *resource.Handler[model.Room, int]

// NewRoomHandler serves rooms addressed by their integer room number.
func NewRoomHandler(svc service.RoomService, guards resource.Guards, log *logger.Logger) RoomHandler {
	return resource.NewHandler(svc, resource.HandlerConfig[model.Room, int]{
		BasePath: BasePath,
		ParseKey: parseRoomNumber,
		NewPatch: func() resource.Patch[model.Room] { return &model.RoomUpdate{} },
		Guards:   guards,
	}, log)
}

func parseRoomNumber(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, strconv.ErrRange
	}
	return n, nil
}
