package main

import (
	"context"
	"flag"
	"time"

	bookingrepository "miranda/internal/bookings/repository"
	bookingservice "miranda/internal/bookings/service"
	bookingvalidator "miranda/internal/bookings/validator"
	"miranda/internal/resource"
	roomrepository "miranda/internal/rooms/repository"
	roomservice "miranda/internal/rooms/service"
	roomvalidator "miranda/internal/rooms/validator"
	"miranda/internal/seed"
	userrepository "miranda/internal/users/repository"
	userservice "miranda/internal/users/service"
	uservalidator "miranda/internal/users/validator"
	"miranda/pkg/config"
)

const (
	JobName = "seed"
	seedTTL = 5 * time.Minute
)

func main() {
	rooms := flag.Int("rooms", seed.DefaultRooms, "number of rooms to create")
	users := flag.Int("users", seed.DefaultUsers, "number of staff users to create")
	bookings := flag.Int("bookings", seed.DefaultBookings, "number of bookings to create")
	randomSeed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "random seed")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), seedTTL)
	defer cancel()

	cfg := config.LoadJob(JobName)
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	log := cfg.Log
	events := resource.NoopPublisher{}
	seeder := seed.NewSeeder(
		roomservice.NewRoomService(roomrepository.NewMongoRoomRepository(cfg), roomvalidator.NewRoomValidator(log), events, log),
		userservice.NewUserService(userrepository.NewMongoUserRepository(cfg), uservalidator.NewUserValidator(log), events, log),
		bookingservice.NewBookingService(bookingrepository.NewMongoBookingRepository(cfg), bookingvalidator.NewBookingValidator(log), events, log),
		*randomSeed,
		log,
	)

	if cfg.SeedAdminPassword == "" {
		log.Warn("SEED_ADMIN_PASSWORD not set, no admin login will be created")
	}

	log.Info("Starting seed job", "seed", *randomSeed)
	_, err := seeder.Run(ctx, seed.Counts{
		Rooms:    *rooms,
		Users:    *users,
		Bookings: *bookings,
	}, seed.Admin{
		Email:    cfg.SeedAdminEmail,
		Password: cfg.SeedAdminPassword,
	})
	if err != nil {
		cfg.GracefulShutdown()
		log.Fatal("Seed failed", "error", err)
	}
}
