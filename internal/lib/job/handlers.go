package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/deppfellow/wheelspec/internal/config"
	"github.com/deppfellow/wheelspec/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// Mailer sends the emails the job handlers produce.
type Mailer interface {
	SendWheelSpecSubmittedEmail(ctx context.Context, to []string, formNumber, submittedBy, submittedDate string) error
}

// InitHandlers sets up the dependencies of the job handlers.
func (j *JobService) InitHandlers(cfg *config.Config, logger *zerolog.Logger) {
	j.mailer = email.NewClient(cfg, logger)
	j.recipients = cfg.Notification.Recipients
}

// handleWheelSpecSubmittedTask emails the configured reviewers about a saved form.
//
// A returned error makes Asynq mark the task failed and schedule a retry.
func (j *JobService) handleWheelSpecSubmittedTask(ctx context.Context, t *asynq.Task) error {
	var p WheelSpecSubmittedPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal wheel spec submitted payload: %w: %w", err, asynq.SkipRetry)
	}

	if len(j.recipients) == 0 {
		j.logger.Warn().
			Str("type", TaskWheelSpecSubmitted).
			Str("form_number", p.FormNumber).
			Msg("no notification recipients configured, dropping notice")
		return nil
	}

	j.logger.Info().
		Str("type", TaskWheelSpecSubmitted).
		Int64("id", p.ID).
		Str("form_number", p.FormNumber).
		Msg("Processing wheel spec submitted task")

	err := j.mailer.SendWheelSpecSubmittedEmail(ctx, j.recipients, p.FormNumber, p.SubmittedBy, p.SubmittedDate)
	if err != nil {
		j.logger.Error().
			Str("type", TaskWheelSpecSubmitted).
			Str("form_number", p.FormNumber).
			Err(err).
			Msg("Failed to send wheel spec submitted email")
		return err
	}

	j.logger.Info().
		Str("type", TaskWheelSpecSubmitted).
		Str("form_number", p.FormNumber).
		Int("recipients", len(j.recipients)).
		Msg("Successfully sent wheel spec submitted email")

	return nil
}
