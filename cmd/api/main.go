package main

import (
	"miranda/internal/auth"
	bookinghandler "miranda/internal/bookings/handler"
	bookingrepository "miranda/internal/bookings/repository"
	bookingservice "miranda/internal/bookings/service"
	bookingvalidator "miranda/internal/bookings/validator"
	"miranda/internal/events"
	"miranda/internal/resource"
	roomhandler "miranda/internal/rooms/handler"
	roomrepository "miranda/internal/rooms/repository"
	roomservice "miranda/internal/rooms/service"
	roomvalidator "miranda/internal/rooms/validator"
	userhandler "miranda/internal/users/handler"
	userrepository "miranda/internal/users/repository"
	userservice "miranda/internal/users/service"
	uservalidator "miranda/internal/users/validator"
	"miranda/pkg/app"
	"miranda/pkg/config"
	"miranda/pkg/kafka"
	kafka_config "miranda/pkg/kafka/config"
	kafka_middleware "miranda/pkg/kafka/middleware"
)

const ServiceName = "hotel-api"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	cfg.Log.Info("Starting Hotel Miranda API")
	serverApp := app.NewApplication(cfg)
	publisher := initEvents(cfg, serverApp)
	issuer := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	guards := serverApp.Guards(issuer)

	userRepo := userrepository.NewMongoUserRepository(cfg)
	loginService := auth.NewLoginService(userrepository.NewCredentialStore(userRepo), issuer, cfg.Log)

	serverApp.SetApp(
		cfg.Client.Mongo,
		auth.NewLoginHandler(loginService, cfg.Log),
		bookinghandler.NewBookingHandler(initBookingService(cfg, publisher), guards, cfg.Log),
		roomhandler.NewRoomHandler(initRoomService(cfg, publisher), guards, cfg.Log),
		userhandler.NewUserHandler(initUserService(cfg, userRepo, publisher), guards, cfg.Log),
	)
	serverApp.Run()
}

func initEvents(cfg *config.Config, serverApp *app.Application) resource.EventPublisher {
	if !cfg.EventsEnabled {
		cfg.Log.Info("Change events disabled")
		return resource.NoopPublisher{}
	}

	kafkaCfg, err := kafka_config.Load()
	if err != nil {
		cfg.Log.Fatal("Invalid Kafka configuration", "error", err)
	}
	kafkaCfg.LogConfiguration(cfg.Log.Info)

	producer, err := kafka.NewProducer(kafkaCfg, cfg.EventsTopic, cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}
	if kafkaCfg.EnableMiddleware {
		producer.Use(kafka_middleware.LoggingProducerMiddleware(cfg.Log))
	}
	serverApp.OnShutdown(producer.Close)

	cfg.Log.Info("Change events enabled", "topic", producer.Topic())
	return events.NewKafkaPublisher(producer, cfg.Log)
}

func initBookingService(cfg *config.Config, publisher resource.EventPublisher) bookingservice.BookingService {
	bookingService := bookingservice.NewBookingService(
		bookingrepository.NewMongoBookingRepository(cfg),
		bookingvalidator.NewBookingValidator(cfg.Log),
		publisher,
		cfg.Log,
	)

	cfg.Log.Info("Booking service initialized", "database", cfg.MongoDatabaseName)
	return bookingService
}

func initRoomService(cfg *config.Config, publisher resource.EventPublisher) roomservice.RoomService {
	roomService := roomservice.NewRoomService(
		roomrepository.NewMongoRoomRepository(cfg),
		roomvalidator.NewRoomValidator(cfg.Log),
		publisher,
		cfg.Log,
	)

	cfg.Log.Info("Room service initialized", "database", cfg.MongoDatabaseName)
	return roomService
}

func initUserService(cfg *config.Config, repo userrepository.UserRepository, publisher resource.EventPublisher) userservice.UserService {
	userService := userservice.NewUserService(
		repo,
		uservalidator.NewUserValidator(cfg.Log),
		publisher,
		cfg.Log,
	)

	cfg.Log.Info("User service initialized", "database", cfg.MongoDatabaseName)
	return userService
}
