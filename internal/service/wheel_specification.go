package service

import (
	"context"

	"github.com/deppfellow/wheelspec/internal/lib/job"
	"github.com/deppfellow/wheelspec/internal/model"
	"github.com/deppfellow/wheelspec/internal/sqlerr"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// WheelSpecificationStore keeps submitted forms.
type WheelSpecificationStore interface {
	Insert(ctx context.Context, spec *model.WheelSpecification) (*model.StoredWheelSpecification, error)
	List(ctx context.Context, filter model.WheelSpecificationFilter) ([]model.StoredWheelSpecification, error)
}

// TaskEnqueuer is satisfied by *asynq.Client.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type WheelSpecificationService struct {
	store    WheelSpecificationStore
	enqueuer TaskEnqueuer
}

// NewWheelSpecificationService builds the service. enqueuer may be nil.
func NewWheelSpecificationService(store WheelSpecificationStore, enqueuer TaskEnqueuer) *WheelSpecificationService {
	return &WheelSpecificationService{
		store:    store,
		enqueuer: enqueuer,
	}
}

// Submit persists a validated form and queues its submission notice.
//
// The notice is best effort: once the row is stored, an enqueue failure is
// only logged.
func (s *WheelSpecificationService) Submit(ctx context.Context, spec *model.WheelSpecification) (*model.StoredWheelSpecification, error) {
	logger := zerolog.Ctx(ctx)

	stored, err := s.store.Insert(ctx, spec)
	if err != nil {
		logger.Error().Err(err).Str("form_number", spec.FormNumber).Msg("failed to store wheel specification")
		return nil, sqlerr.HandleError(err)
	}

	logger.Info().
		Int64("id", stored.ID).
		Str("form_number", stored.FormNumber).
		Msg("wheel specification saved")

	s.notify(ctx, stored)

	return stored, nil
}

func (s *WheelSpecificationService) notify(ctx context.Context, stored *model.StoredWheelSpecification) {
	if s.enqueuer == nil {
		return
	}

	logger := zerolog.Ctx(ctx)

	task, err := job.NewWheelSpecSubmittedTask(job.WheelSpecSubmittedPayload{
		ID:            stored.ID,
		FormNumber:    stored.FormNumber,
		SubmittedBy:   stored.SubmittedBy,
		SubmittedDate: model.FormatDate(stored.SubmittedDate),
	})
	if err != nil {
		logger.Error().Err(err).Int64("id", stored.ID).Msg("failed to build submission notice task")
		return
	}

	info, err := s.enqueuer.EnqueueContext(ctx, task)
	if err != nil {
		logger.Error().Err(err).Int64("id", stored.ID).Msg("failed to enqueue submission notice")
		return
	}

	logger.Debug().Str("task_id", info.ID).Str("queue", info.Queue).Msg("submission notice enqueued")
}

// List returns the stored forms matching filter in identity order.
func (s *WheelSpecificationService) List(ctx context.Context, filter model.WheelSpecificationFilter) ([]model.StoredWheelSpecification, error) {
	specs, err := s.store.List(ctx, filter)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to list wheel specifications")
		return nil, sqlerr.HandleError(err)
	}

	return specs, nil
}
