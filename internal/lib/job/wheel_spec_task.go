package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// TaskWheelSpecSubmitted is the job type name stored in Redis.
	TaskWheelSpecSubmitted = "wheel_spec:submitted"
)

// WheelSpecSubmittedPayload is the JSON payload of the submission notice task.
type WheelSpecSubmittedPayload struct {
	ID            int64  `json:"id"`
	FormNumber    string `json:"form_number"`
	SubmittedBy   string `json:"submitted_by"`
	SubmittedDate string `json:"submitted_date"`
}

// NewWheelSpecSubmittedTask constructs the notice task for a saved form.
//
//   - MaxRetry(3): retry up to 3 times on failure
//   - Queue("low"): notices never compete with anything urgent
//   - Timeout(30s): kill the task if the handler runs longer than 30 seconds
func NewWheelSpecSubmittedTask(p WheelSpecSubmittedPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskWheelSpecSubmitted,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("low"),
		asynq.Timeout(30*time.Second),
	), nil
}
