package email

import "embed"

// Template is a string-based enum naming email templates.
type Template string

const (
	// TemplateWheelSpecSubmitted corresponds to templates/wheel_spec_submitted.html
	TemplateWheelSpecSubmitted Template = "wheel_spec_submitted"
)

//go:embed templates/*.html
var templateFS embed.FS
