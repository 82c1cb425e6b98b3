// Package validation contains the logic for validating
// request data.
//
// It uses the `validator` library to enforce rules (required
// fields, maximum lengths, date layouts) and extracts violations
// into field-path keyed messages the client can understand.
package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is shared by every request type; validator caches struct
// metadata and is safe for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their wire names (query or json tag) instead of Go names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"query", "json"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	return v
}

// Struct validates a struct's `validate` tags with the shared validator.
func Struct(s any) error {
	return validate.Struct(s)
}
