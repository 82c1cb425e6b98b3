package errs

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldErrorsCollectsEveryMessage(t *testing.T) {
	fe := FieldErrors{}
	fe.Add("fields.wheelGauge", "This field may not be blank.")
	fe.Add("fields.wheelGauge", "second")
	fe.Add("formNumber", "This field is required.")

	assert.True(t, fe.Has("fields.wheelGauge"))
	assert.False(t, fe.Has("submittedBy"))
	assert.Len(t, fe["fields.wheelGauge"], 2)
	assert.Equal(t, []string{"fields.wheelGauge", "formNumber"}, fe.Paths())
}

func TestValidationErrorEnvelope(t *testing.T) {
	fe := FieldErrors{}
	fe.Add("fields.wheelProfile", "This field is required.")

	err := ValidationError(fe)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, "VALIDATION_FAILED", err.Code)

	body, marshalErr := json.Marshal(err)
	require.NoError(t, marshalErr)
	assert.JSONEq(t, `{
		"errors": {"fields.wheelProfile": ["This field is required."]},
		"message": "Validation Failed",
		"success": false
	}`, string(body))
}

func TestInternalServerErrorOmitsErrors(t *testing.T) {
	body, err := json.Marshal(NewInternalServerError())
	require.NoError(t, err)
	assert.JSONEq(t, `{"message": "Internal Server Error", "success": false}`, string(body))
}

func TestHTTPErrorIsMatchesType(t *testing.T) {
	wrapped := fmt.Errorf("insert: %w", NewNotFoundError("Route not found", nil))

	var httpErr *HTTPError
	require.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, "NOT_FOUND", httpErr.Code)
	assert.True(t, errors.Is(wrapped, &HTTPError{}))
}

func TestWithMessageCopies(t *testing.T) {
	base := NewTooManyRequestsError("slow down")
	copied := base.WithMessage("rate limit exceeded")

	assert.Equal(t, "slow down", base.Message)
	assert.Equal(t, "rate limit exceeded", copied.Message)
	assert.Equal(t, base.Status, copied.Status)
}

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "INTERNAL_SERVER_ERROR", MakeUpperCaseWithUnderscores("Internal Server Error"))
}
