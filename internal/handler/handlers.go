// Package handler is the HTTP layer: it binds and validates requests through
// the shared Handle pipeline, calls the service layer and writes responses.
package handler

import (
	"github.com/deppfellow/go-customers/internal/server"
	"github.com/deppfellow/go-customers/internal/service"
)

// Handlers groups all HTTP handlers so the router receives a single value.
type Handlers struct {
	Customer *CustomerHandler
	Info     *InfoHandler
	Health   *HealthHandler
	OpenAPI  *OpenAPIHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Customer: NewCustomerHandler(s, services.Customer),
		Info:     NewInfoHandler(s),
		Health:   NewHealthHandler(s, services.Customer),
		OpenAPI:  NewOpenAPIHandler(s),
	}
}
