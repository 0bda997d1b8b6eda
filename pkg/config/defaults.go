package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "pmshub"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultRateLimitRequests = 30
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	// Vendor health checks are bounded to 10s; resource fetches inherit
	// the same bound.
	DefaultHealthCheckTimeout = 10 * time.Second
	DefaultFetchTimeout       = 10 * time.Second

	// Reservations are fetched for a window of lastNdays..nextNdays around
	// the sync time; revenue and occupancy for the trailing N days.
	DefaultSyncWindowDays = 30

	DefaultGuestFetchLimit = 1000
)
