package sqlerr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/deppfellow/wheelspec/internal/errs"
	"github.com/deppfellow/wheelspec/internal/model"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrCode reports the mapped sqlerr.Code for a given error.
//
// If err can be unwrapped into *sqlerr.Error its Code is returned,
// otherwise Other.
func ErrCode(err error) Code {
	var pgerr *Error
	if errors.As(err, &pgerr) {
		return pgerr.Code
	}
	return Other
}

// ConvertPgError converts a pgconn.PgError (raw Postgres error) into our sqlerr.Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// generateErrorCode creates "application error codes" from DB errors.
//
// Output format is <DOMAIN>_<ACTION>, e.g.
//
//	wheel_specifications + NotNullViolation => WHEEL_SPECIFICATION_REQUIRED
func generateErrorCode(tableName string, errType Code) string {
	if tableName == "" {
		tableName = "RECORD"
	}

	domain := strings.ToUpper(tableName)

	// "WHEEL_SPECIFICATIONS" -> "WHEEL_SPECIFICATION"
	if strings.HasSuffix(domain, "S") && len(domain) > 1 {
		domain = domain[:len(domain)-1]
	}

	action := "ERROR"
	switch errType {
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation:
		action = "INVALID"
	case StringDataRightTruncation:
		action = "TOO_LONG"
	case InvalidDatetimeFormat, DatetimeFieldOverflow:
		action = "INVALID_DATE"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

// formatUserFriendlyMessage produces an end-user-facing error message.
func formatUserFriendlyMessage(sqlErr *Error) string {
	entityName := getEntityName(sqlErr.TableName)

	switch sqlErr.Code {
	case NotNullViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName == "" {
			fieldName = "field"
		}
		return fmt.Sprintf("The %s is required", fieldName)

	case CheckViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName != "" {
			return fmt.Sprintf("The %s value does not meet required conditions", fieldName)
		}
		return "One or more values do not meet required conditions"

	case StringDataRightTruncation:
		return fmt.Sprintf("A value of the %s is too long", strings.ToLower(entityName))

	case InvalidDatetimeFormat, DatetimeFieldOverflow:
		return fmt.Sprintf("A date of the %s is not valid", strings.ToLower(entityName))

	default:
		return "An error occurred while processing your request"
	}
}

// getEntityName infers a singular entity name from a table name.
//
//	"wheel_specifications" -> "Wheel Specification"
func getEntityName(tableName string) string {
	if tableName != "" {
		entity := tableName
		if strings.HasSuffix(entity, "s") && len(entity) > 1 {
			entity = entity[:len(entity)-1]
		}
		return humanizeText(entity)
	}
	return "record"
}

// humanizeText converts snake_case into Title Case.
//
//	"wheel_gauge" -> "Wheel Gauge"
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// fieldErrorsFor keys a column violation by its external field path when known.
func fieldErrorsFor(column, message string) errs.FieldErrors {
	path := model.PathForColumn(column)
	if path == "" {
		return nil
	}
	fe := errs.FieldErrors{}
	fe.Add(path, message)
	return fe
}

// HandleError converts a low-level database error into an application-level error.
//
//   - *errs.HTTPError: returned unchanged
//   - pgconn.PgError on a data constraint: 400 with a friendly message
//   - anything else (unreachable database, canceled query, unknown): generic 500
//
// Intended to be called by the service layer after a store call fails.
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		sqlErr := ConvertPgError(pgerr)

		errorCode := generateErrorCode(sqlErr.TableName, sqlErr.Code)
		userMessage := formatUserFriendlyMessage(sqlErr)

		switch sqlErr.Code {
		case NotNullViolation:
			return errs.NewBadRequestError(userMessage, &errorCode, fieldErrorsFor(sqlErr.ColumnName, "This field is required."))

		case CheckViolation, StringDataRightTruncation, InvalidDatetimeFormat, DatetimeFieldOverflow:
			return errs.NewBadRequestError(userMessage, &errorCode, fieldErrorsFor(sqlErr.ColumnName, userMessage))

		default:
			// connection failures, canceled queries and unknown states don't leak details
			return errs.NewInternalServerError()
		}
	}

	return errs.NewInternalServerError()
}
