// Package sqlerr specifically handles database driver errors.
//
// It parses error codes from the database driver and converts them
// into application errors (e.g. a "not null violation" becomes a
// "Bad Request" with a field error, an unreachable database becomes
// a generic 500).
package sqlerr

import "fmt"

// Code is a normalized category for a PostgreSQL SQLSTATE.
type Code string

const (
	Other                     Code = "other"
	NotNullViolation          Code = "not_null_violation"
	ForeignKeyViolation       Code = "foreign_key_violation"
	UniqueViolation           Code = "unique_violation"
	CheckViolation            Code = "check_violation"
	StringDataRightTruncation Code = "string_data_right_truncation"
	InvalidDatetimeFormat     Code = "invalid_datetime_format"
	DatetimeFieldOverflow     Code = "datetime_field_overflow"
	ConnectionException       Code = "connection_exception"
	TooManyConnections        Code = "too_many_connections"
	QueryCanceled             Code = "query_canceled"
	UndefinedTable            Code = "undefined_table"
)

// Severity mirrors the PostgreSQL message severity.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityFatal   Severity = "FATAL"
	SeverityPanic   Severity = "PANIC"
	SeverityWarning Severity = "WARNING"
	SeverityNotice  Severity = "NOTICE"
	SeverityDebug   Severity = "DEBUG"
	SeverityInfo    Severity = "INFO"
	SeverityLog     Severity = "LOG"
)

// Error is a structured view of a driver error.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string

	driverErr error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Severity, e.DatabaseCode, e.Message)
}

func (e *Error) Unwrap() error {
	return e.driverErr
}

// MapCode maps a SQLSTATE to a Code. Unknown states map to Other.
func MapCode(sqlState string) Code {
	switch sqlState {
	case "23502":
		return NotNullViolation
	case "23503":
		return ForeignKeyViolation
	case "23505":
		return UniqueViolation
	case "23514":
		return CheckViolation
	case "22001":
		return StringDataRightTruncation
	case "22007":
		return InvalidDatetimeFormat
	case "22008":
		return DatetimeFieldOverflow
	case "53300":
		return TooManyConnections
	case "57014":
		return QueryCanceled
	case "42P01":
		return UndefinedTable
	}

	// class 08: connection exception
	if len(sqlState) == 5 && sqlState[:2] == "08" {
		return ConnectionException
	}
	return Other
}

// MapSeverity maps a PostgreSQL severity string; unknown values map to SeverityError.
func MapSeverity(severity string) Severity {
	switch Severity(severity) {
	case SeverityError, SeverityFatal, SeverityPanic, SeverityWarning,
		SeverityNotice, SeverityDebug, SeverityInfo, SeverityLog:
		return Severity(severity)
	}
	return SeverityError
}
