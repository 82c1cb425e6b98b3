package validation

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"

	"github.com/deppfellow/wheelspec/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payload types that know how to validate themselves.
//
// Validate returns validator.ValidationErrors (struct tag rules) or
// CustomValidationErrors (hand-written checks), or nil.
type Validatable interface {
	Validate() error
}

// CustomValidationErrors carries field-path keyed violations that cannot be
// expressed via validator tags.
type CustomValidationErrors errs.FieldErrors

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// BindAndValidate binds request data into payload and validates it.
//
//  1. c.Bind(payload) populates the request from path, query and body.
//  2. payload.Validate() applies validation rules.
//  3. A failure is returned as a 400 *errs.HTTPError carrying field errors.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) && echoErr.Code != http.StatusBadRequest {
			// 415 and friends keep their own status.
			return err
		}
		return errs.NewBadRequestError(bindErrorMessage(err), nil, nil)
	}

	if fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.ValidationError(fieldErrors)
	}

	return nil
}

func bindErrorMessage(err error) string {
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if echoErr.Internal != nil {
			return fmt.Sprintf("Malformed request: %v", echoErr.Internal)
		}
		return fmt.Sprintf("Malformed request: %v", echoErr.Message)
	}
	return "Malformed request: " + err.Error()
}

// validateStruct calls v.Validate() and extracts field errors if validation fails.
func validateStruct(v Validatable) errs.FieldErrors {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return nil
}

func extractValidationError(err error) errs.FieldErrors {
	fieldErrors := errs.FieldErrors{}

	var custom CustomValidationErrors
	if errors.As(err, &custom) {
		for path, messages := range custom {
			for _, msg := range messages {
				fieldErrors.Add(path, msg)
			}
		}
		return fieldErrors
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		fieldErrors.Add(nonFieldErrorsKey, err.Error())
		return fieldErrors
	}

	for _, fe := range validationErrors {
		fieldErrors.Add(fe.Field(), messageFor(fe.Tag(), fe.Param(), fe.Kind()))
	}

	return fieldErrors
}

// messageFor converts a failed validator tag into a user-facing message.
func messageFor(tag, param string, kind reflect.Kind) string {
	switch tag {
	case "required":
		if kind == reflect.String {
			return msgBlank
		}
		return msgRequired

	case "max":
		if kind == reflect.String {
			return fmt.Sprintf("Ensure this field has no more than %s characters.", param)
		}
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", param)

	case "datetime":
		return msgDateFormat

	case "oneof":
		return fmt.Sprintf("Must be one of: %s.", param)

	default:
		if param != "" {
			return fmt.Sprintf("Failed on the '%s:%s' rule.", tag, param)
		}
		return fmt.Sprintf("Failed on the '%s' rule.", tag)
	}
}
