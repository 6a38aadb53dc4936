package configs

import "time"

// HTTP defines configuration for the HTTP server.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// ReadTimeout bounds reading a whole request, body included.
	ReadTimeout time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	// WriteTimeout must outlast the slowest generation call, which may
	// include several model retries.
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"180s"`
	// GenerateTimeout bounds a generation request so the generator can fall
	// back to local drafts before WriteTimeout cuts the connection. It must
	// stay below WriteTimeout.
	GenerateTimeout time.Duration `env:"GENERATE_TIMEOUT" envDefault:"150s"`
	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// EffectiveGenerateTimeout returns GenerateTimeout, capped a margin below
// WriteTimeout when both are set.
func (c HTTP) EffectiveGenerateTimeout() time.Duration {
	const margin = 5 * time.Second
	if c.WriteTimeout <= 0 {
		return c.GenerateTimeout
	}
	limit := c.WriteTimeout - margin
	if limit <= 0 {
		limit = c.WriteTimeout / 2
	}
	if c.GenerateTimeout <= 0 || c.GenerateTimeout > limit {
		return limit
	}
	return c.GenerateTimeout
}
