// Package config holds the application configuration, loaded from the
// environment (optionally seeded from a .env file).
package config

import "time"

// Server configures the HTTP listener.
type Server struct {
	Host string `envconfig:"HOST" default:"localhost"`
	Port int    `envconfig:"PORT" default:"5000"`
}

// Log configures the default slog handler.
type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[bankdash]"`
}

// RateLimit configures the per-client request limiter.
type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

// EventBus selects the domain-event backend. The kafka backend is only
// available in binaries built with the kafka tag.
type EventBus struct {
	Backend string `envconfig:"BACKEND" default:"memory"`
	Brokers string `envconfig:"BROKERS" default:"localhost:9092"`
	Topic   string `envconfig:"TOPIC" default:"bankdash.events"`
}

// Demo controls demo seeding: two accounts and a few transactions so the
// dashboard has something to show on a fresh process.
type Demo struct {
	Seed bool `envconfig:"SEED" default:"false"`
}

// App is the root configuration.
type App struct {
	Env       string     `envconfig:"APP_ENV" default:"development"`
	Server    *Server    `envconfig:"SERVER"`
	Log       *Log       `envconfig:"LOG"`
	RateLimit *RateLimit `envconfig:"RATE_LIMIT"`
	EventBus  *EventBus  `envconfig:"EVENT_BUS"`
	Demo      *Demo      `envconfig:"DEMO"`
}
