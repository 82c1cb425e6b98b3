package handler

import (
	"encoding/json"

	"github.com/deppfellow/wheelspec/internal/model"
	"github.com/deppfellow/wheelspec/internal/validation"
)

// Response is the success envelope of every API endpoint.
type Response[T any] struct {
	Data    T      `json:"data"`
	Message string `json:"message"`
	Success bool   `json:"success"`
}

func newResponse[T any](data T, message string) Response[T] {
	return Response[T]{Data: data, Message: message, Success: true}
}

// Count reports the number of listed items, or 1 for a single object.
func (r Response[T]) Count() int {
	if items, ok := any(r.Data).([]WheelSpecificationItem); ok {
		return len(items)
	}
	return 1
}

// SubmitWheelSpecificationRequest keeps the decoded body untyped; the
// validator checks its shape key by key.
type SubmitWheelSpecificationRequest struct {
	Payload any

	spec *model.WheelSpecification
}

func (r *SubmitWheelSpecificationRequest) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &r.Payload)
}

// Validate checks the payload and keeps the normalized record.
func (r *SubmitWheelSpecificationRequest) Validate() error {
	spec, fieldErrors := validation.ValidateWheelSpecification(r.Payload)
	if fieldErrors != nil {
		return validation.CustomValidationErrors(fieldErrors)
	}
	r.spec = spec
	return nil
}

// Spec returns the record produced by a successful Validate.
func (r *SubmitWheelSpecificationRequest) Spec() *model.WheelSpecification {
	return r.spec
}

// ListWheelSpecificationsRequest carries the optional exact-match filters.
// An empty value imposes no constraint.
type ListWheelSpecificationsRequest struct {
	FormNumber    string `query:"formNumber"`
	SubmittedBy   string `query:"submittedBy"`
	SubmittedDate string `query:"submittedDate" validate:"omitempty,datetime=2006-01-02"`
}

func (r *ListWheelSpecificationsRequest) Validate() error {
	return validation.Struct(r)
}

// Filter converts the query into a store filter. Call after Validate.
func (r *ListWheelSpecificationsRequest) Filter() model.WheelSpecificationFilter {
	var filter model.WheelSpecificationFilter

	if r.FormNumber != "" {
		filter.FormNumber = &r.FormNumber
	}
	if r.SubmittedBy != "" {
		filter.SubmittedBy = &r.SubmittedBy
	}
	if r.SubmittedDate != "" {
		if date, err := model.ParseDate(r.SubmittedDate); err == nil {
			filter.SubmittedDate = &date
		}
	}

	return filter
}

// SubmittedWheelSpecification is the data of a successful submission.
type SubmittedWheelSpecification struct {
	FormNumber    string `json:"formNumber"`
	Status        string `json:"status"`
	SubmittedBy   string `json:"submittedBy"`
	SubmittedDate string `json:"submittedDate"`
}

// WheelSpecificationItem is one listed form.
type WheelSpecificationItem struct {
	FormNumber    string           `json:"formNumber"`
	SubmittedBy   string           `json:"submittedBy"`
	SubmittedDate string           `json:"submittedDate"`
	Fields        model.Dimensions `json:"fields"`
}

func toSubmitted(stored *model.StoredWheelSpecification) SubmittedWheelSpecification {
	return SubmittedWheelSpecification{
		FormNumber:    stored.FormNumber,
		Status:        stored.Status,
		SubmittedBy:   stored.SubmittedBy,
		SubmittedDate: model.FormatDate(stored.SubmittedDate),
	}
}

func toItems(specs []model.StoredWheelSpecification) []WheelSpecificationItem {
	items := make([]WheelSpecificationItem, len(specs))
	for i, spec := range specs {
		items[i] = WheelSpecificationItem{
			FormNumber:    spec.FormNumber,
			SubmittedBy:   spec.SubmittedBy,
			SubmittedDate: model.FormatDate(spec.SubmittedDate),
			Fields:        spec.Dimensions,
		}
	}
	return items
}
