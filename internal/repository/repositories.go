package repository

import (
	"github.com/deppfellow/wheelspec/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	WheelSpecification *WheelSpecificationRepository
}

// NewRepositories constructs the repository container on top of the
// server's connection pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		WheelSpecification: NewWheelSpecificationRepository(s.DB.Pool),
	}
}
