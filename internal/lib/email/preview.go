package email

// PreviewData contains sample template data for local preview/testing.
//
//	PreviewData[TemplateWheelSpecSubmitted]["FormNumber"] == "WHEEL-2025-001"
var PreviewData = map[Template]map[string]string{
	TemplateWheelSpecSubmitted: {
		"FormNumber":    "WHEEL-2025-001",
		"SubmittedBy":   "user_id_123",
		"SubmittedDate": "2025-07-03",
	},
}
