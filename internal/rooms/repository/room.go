package repository

import (
	"miranda/internal/resource"
	"miranda/pkg/config"
	"miranda/pkg/model"
)

const KeyField = "roomNumber"

type RoomRepository = resource.Repository[model.Room, int]

func NewMongoRoomRepository(cfg *config.Config) RoomRepository {
	return resource.NewMongoRepository[model.Room, int](cfg, resource.RoomsCollection, KeyField)
}
