package handler

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/deppfellow/wheelspec/internal/model"
	"github.com/deppfellow/wheelspec/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitRequestKeepsRawPayload(t *testing.T) {
	var req SubmitWheelSpecificationRequest
	require.NoError(t, json.Unmarshal([]byte(`{"formNumber": 12, "extra": true}`), &req))

	assert.Equal(t, map[string]any{"formNumber": float64(12), "extra": true}, req.Payload)
}

func TestSubmitRequestValidateReturnsFieldErrors(t *testing.T) {
	req := &SubmitWheelSpecificationRequest{Payload: map[string]any{}}

	err := req.Validate()

	var custom validation.CustomValidationErrors
	require.ErrorAs(t, err, &custom)
	assert.Equal(t, []string{"This field is required."}, custom["formNumber"])
	assert.Equal(t, []string{"This field is required."}, custom["fields"])
	assert.Nil(t, req.Spec())
}

func TestListRequestFilter(t *testing.T) {
	req := &ListWheelSpecificationsRequest{SubmittedBy: "alice", SubmittedDate: "2025-07-03"}
	require.NoError(t, req.Validate())

	filter := req.Filter()
	assert.Nil(t, filter.FormNumber)
	require.NotNil(t, filter.SubmittedBy)
	assert.Equal(t, "alice", *filter.SubmittedBy)
	require.NotNil(t, filter.SubmittedDate)
	assert.True(t, filter.SubmittedDate.Equal(time.Date(2025, 7, 3, 0, 0, 0, 0, time.UTC)))
}

func TestListRequestRejectsBadDate(t *testing.T) {
	req := &ListWheelSpecificationsRequest{SubmittedDate: "2025-13-01"}
	assert.Error(t, req.Validate())
}

func TestListItemsUseExternalNames(t *testing.T) {
	spec := model.StoredWheelSpecification{
		WheelSpecification: model.WheelSpecification{
			FormNumber:    "WHEEL-2025-001",
			SubmittedBy:   "user_id_123",
			SubmittedDate: time.Date(2025, 7, 3, 0, 0, 0, 0, time.UTC),
			Dimensions:    model.Dimensions{IntermediateWWP: "20 TO 28"},
		},
		ID:     4,
		Status: model.StatusSaved,
	}

	resp := newResponse(toItems([]model.StoredWheelSpecification{spec}), msgListed)
	assert.Equal(t, 1, resp.Count())

	b, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(b, &decoded))

	item := decoded["data"].([]any)[0].(map[string]any)
	assert.Equal(t, "2025-07-03", item["submittedDate"])
	assert.NotContains(t, item, "id")
	assert.NotContains(t, item, "status")
	assert.Equal(t, "20 TO 28", item["fields"].(map[string]any)["intermediateWWP"])
	assert.Len(t, item["fields"], len(model.DimensionFields))
}
