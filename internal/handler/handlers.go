// Package handler is the first layer after the router.
//
// It parses requests, validates input using the validation package and
// calls the service layer. It is the interface between the HTTP request
// and the core business logic.
package handler

import (
	"github.com/deppfellow/wheelspec/internal/server"
	"github.com/deppfellow/wheelspec/internal/service"
)

// Handlers groups all HTTP handlers so router setup gets one object.
type Handlers struct {
	Health             *HealthHandler
	OpenAPI            *OpenAPIHandler
	WheelSpecification *WheelSpecificationHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:             NewHealthHandler(s),
		OpenAPI:            NewOpenAPIHandler(s),
		WheelSpecification: NewWheelSpecificationHandler(s, services.WheelSpecification),
	}
}
