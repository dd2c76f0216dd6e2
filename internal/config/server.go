package config

import (
	"strconv"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// ServerConfig holds settings for the HTTP and WebSocket service.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080"
	Addr string

	// AllowedOrigins lists origins accepted by CORS and the WebSocket
	// upgrade. Empty means same-origin only; "*" allows any.
	AllowedOrigins []string

	// ReadTimeout and WriteTimeout bound each HTTP exchange
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// MaxMessageBytes caps request bodies and WebSocket frames
	MaxMessageBytes int64
}

// DefaultPort is the port used when no address is configured.
const DefaultPort = 8080

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Addr:            ":" + strconv.Itoa(DefaultPort),
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    10 * time.Second,
		MaxMessageBytes: 64 << 10,
	}
}

// Validate checks the server settings.
func (s *ServerConfig) Validate() error {
	if s.Addr == "" {
		return errors.Wrap(errors.ErrInvalidConfig, "empty listen address")
	}
	if s.MaxMessageBytes <= 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "max message bytes %d", s.MaxMessageBytes)
	}
	return nil
}

// OriginAllowed reports whether a browser origin may connect.
func (s *ServerConfig) OriginAllowed(origin string) bool {
	for _, o := range s.AllowedOrigins {
		if o == "*" || o == origin {
			return true
		}
	}
	return false
}
