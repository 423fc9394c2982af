package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "Hotel_Dashboard"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort     = "3000"
	DefaultLogLevel = "info"

	DefaultTokenTTL = 1 * time.Hour

	DefaultRequestTimeout = 30 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultEventsEnabled = false
	DefaultEventsTopic   = "hotel.resources"

	DefaultSeedAdminEmail = "admin@hotelmiranda.com"
)

const (
	HotelName        = "Hotel Miranda"
	HotelDescription = "Bienvenido al API del Hotel Miranda"
)
