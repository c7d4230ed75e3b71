package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"rental-availability/config"
	"rental-availability/internal/availability"
	"rental-availability/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	cfg         *config.Config
	port        int
	mode        string
	environment string

	// Availability domain
	availabilityUC availability.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger         log.Logger
	Cfg            *config.Config
	AvailabilityUC availability.UseCase
}

// New creates a new HTTPServer instance.
func New(cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Cfg.HTTPServer.Mode)

	srv := &HTTPServer{
		l:              cfg.Logger,
		gin:            gin.New(),
		cfg:            cfg.Cfg,
		port:           cfg.Cfg.HTTPServer.Port,
		mode:           cfg.Cfg.HTTPServer.Mode,
		environment:    cfg.Cfg.Environment.Name,
		availabilityUC: cfg.AvailabilityUC,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.availabilityUC == nil {
		return errors.New("availability usecase is required")
	}
	return nil
}
