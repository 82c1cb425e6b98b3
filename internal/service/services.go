package service

import (
	"github.com/deppfellow/wheelspec/internal/lib/job"
	"github.com/deppfellow/wheelspec/internal/repository"
	"github.com/deppfellow/wheelspec/internal/server"
)

type Services struct {
	WheelSpecification *WheelSpecificationService
	Job                *job.JobService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	// a nil enqueuer turns submission notices off
	var enqueuer TaskEnqueuer
	if s.Job != nil {
		enqueuer = s.Job.Client
	}

	return &Services{
		WheelSpecification: NewWheelSpecificationService(repos.WheelSpecification, enqueuer),
		Job:                s.Job,
	}, nil
}
