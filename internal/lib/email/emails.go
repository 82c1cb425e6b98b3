package email

import (
	"context"
	"fmt"
)

// SendWheelSpecSubmittedEmail tells reviewers that a form was saved.
func (c *Client) SendWheelSpecSubmittedEmail(ctx context.Context, to []string, formNumber, submittedBy, submittedDate string) error {
	data := map[string]string{
		"FormNumber":    formNumber,
		"SubmittedBy":   submittedBy,
		"SubmittedDate": submittedDate,
	}

	return c.SendEmail(
		ctx,
		to,
		fmt.Sprintf("Wheel specification %s submitted", formNumber),
		TemplateWheelSpecSubmitted,
		data,
	)
}
