package sqlerr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/wheelspec/internal/errs"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestHandleErrorNotNullViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:       "23502",
		Severity:   "ERROR",
		Message:    `null value in column "wheel_gauge" violates not-null constraint`,
		TableName:  "wheel_specifications",
		ColumnName: "wheel_gauge",
	}

	httpErr := asHTTPError(t, HandleError(fmt.Errorf("insert: %w", pgErr)))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "WHEEL_SPECIFICATION_REQUIRED", httpErr.Code)
	assert.Equal(t, "The Wheel Gauge is required", httpErr.Message)
	assert.Equal(t, []string{"This field is required."}, httpErr.Errors["fields.wheelGauge"])
}

func TestHandleErrorStringTruncation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:      "22001",
		Severity:  "ERROR",
		Message:   "value too long for type character varying(100)",
		TableName: "wheel_specifications",
	}

	httpErr := asHTTPError(t, HandleError(pgErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "WHEEL_SPECIFICATION_TOO_LONG", httpErr.Code)
	assert.Equal(t, "A value of the wheel specification is too long", httpErr.Message)
	assert.Nil(t, httpErr.Errors)
}

func TestHandleErrorStorageFailuresAreGeneric(t *testing.T) {
	for _, err := range []error{
		&pgconn.PgError{Code: "08006", Severity: "FATAL", Message: "connection failure"},
		&pgconn.PgError{Code: "42P01", Severity: "ERROR", Message: `relation "wheel_specifications" does not exist`},
		context.DeadlineExceeded,
		errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"),
	} {
		httpErr := asHTTPError(t, HandleError(err))
		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, "Internal Server Error", httpErr.Message)
	}
}

func TestHandleErrorKeepsHTTPErrors(t *testing.T) {
	original := errs.NewNotFoundError("Route not found", nil)
	assert.Same(t, original, HandleError(original))
}

func TestMapCode(t *testing.T) {
	assert.Equal(t, NotNullViolation, MapCode("23502"))
	assert.Equal(t, UniqueViolation, MapCode("23505"))
	assert.Equal(t, StringDataRightTruncation, MapCode("22001"))
	assert.Equal(t, ConnectionException, MapCode("08001"))
	assert.Equal(t, ConnectionException, MapCode("08006"))
	assert.Equal(t, Other, MapCode("XX000"))
}

func TestMapSeverity(t *testing.T) {
	assert.Equal(t, SeverityFatal, MapSeverity("FATAL"))
	assert.Equal(t, SeverityError, MapSeverity("weird"))
}

func TestErrCode(t *testing.T) {
	converted := ConvertPgError(&pgconn.PgError{Code: "23514", Severity: "ERROR"})
	assert.Equal(t, CheckViolation, ErrCode(fmt.Errorf("wrapped: %w", converted)))
	assert.Equal(t, Other, ErrCode(errors.New("plain")))

	var pgErr *pgconn.PgError
	assert.True(t, errors.As(converted, &pgErr))
}

func TestHumanizeText(t *testing.T) {
	assert.Equal(t, "Axle Box Housing Bore Dia", humanizeText("axle_box_housing_bore_dia"))
	assert.Equal(t, "", humanizeText(""))
}
