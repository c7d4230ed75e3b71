package http

import (
	"rental-availability/internal/availability"
	"rental-availability/pkg/log"
)

// Handler is the public interface for the availability HTTP delivery layer.
type Handler interface {
	Resolve(c interface{})
	Query(c interface{})
}

type handler struct {
	l  log.Logger
	uc availability.UseCase
}

// New creates a new HTTP handler for the availability domain.
func New(l log.Logger, uc availability.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
