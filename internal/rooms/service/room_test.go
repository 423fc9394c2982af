package service

import (
	"context"
	"testing"

	"miranda/internal/resource/resourcetest"
	"miranda/internal/rooms/validator"
	apperrors "miranda/pkg/errors"
	"miranda/pkg/logger"
	"miranda/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (RoomService, *resourcetest.MemoryRepository[model.Room, int]) {
	t.Helper()
	log := logger.Discard()
	repo := resourcetest.NewMemoryRepository[model.Room, int](
		func(r *model.Room) int { return r.RoomNumber },
		nil,
	)
	return NewRoomService(repo, validator.NewRoomValidator(log), nil, log), repo
}

func validRoom() *model.Room {
	return &model.Room{
		RoomNumber: 101,
		RoomType:   "  Double   Superior ",
		BedType:    "Queen",
		RoomFloor:  "Floor 1",
		Photos:     []string{"http://images.hotelmiranda.com/101.jpg/"},
		Offer:      "yes",
		Price:      180,
		Discount:   10,
		Amenities:  []string{"Wifi", "WIFI ", " Minibar "},
	}
}

func TestRoomService_CreateNormalizes(t *testing.T) {
	svc, repo := newTestService(t)

	created, err := svc.Create(context.Background(), validRoom())
	require.NoError(t, err)

	assert.Equal(t, "Double Superior", created.RoomType)
	assert.Equal(t, model.OfferYes, created.Offer)
	assert.Equal(t, []string{"https://images.hotelmiranda.com/101.jpg"}, created.Photos)
	assert.Len(t, created.Amenities, 2)

	stored, err := repo.FindByKey(context.Background(), 101)
	require.NoError(t, err)
	assert.Equal(t, created.RoomType, stored.RoomType)
}

func TestRoomService_CreateRejects(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(r *model.Room)
		wantCode string
	}{
		{
			name:     "missing room number",
			mutate:   func(r *model.Room) { r.RoomNumber = 0 },
			wantCode: apperrors.CodeValidation,
		},
		{
			name:     "negative price",
			mutate:   func(r *model.Room) { r.Price = -1 },
			wantCode: apperrors.CodeValidation,
		},
		{
			name:     "discount above 100",
			mutate:   func(r *model.Room) { r.Discount = 150 },
			wantCode: apperrors.CodeValidation,
		},
		{
			name: "discount without offer",
			mutate: func(r *model.Room) {
				r.Offer = ""
				r.Discount = 15
			},
			wantCode: apperrors.CodeValidation,
		},
		{
			name:     "unknown offer",
			mutate:   func(r *model.Room) { r.Offer = "MAYBE" },
			wantCode: apperrors.CodeValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(t)
			room := validRoom()
			tt.mutate(room)

			_, err := svc.Create(context.Background(), room)
			require.Error(t, err)
			assert.True(t, apperrors.HasCode(err, tt.wantCode), "got %v", err)
		})
	}
}

func TestRoomService_DuplicateRoomNumber(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), validRoom())
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), validRoom())
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeConflict))
}

func TestRoomService_UpdateKeepsUnsetFields(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Create(context.Background(), validRoom())
	require.NoError(t, err)

	price := 210.0
	updated, err := svc.Update(context.Background(), 101, &model.RoomUpdate{Price: &price})
	require.NoError(t, err)

	assert.Equal(t, 210.0, updated.Price)
	assert.Equal(t, "Double Superior", updated.RoomType)
	assert.Equal(t, 10.0, updated.Discount)
}
