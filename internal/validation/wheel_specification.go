package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/deppfellow/wheelspec/internal/errs"
	"github.com/deppfellow/wheelspec/internal/model"
	"github.com/go-playground/validator/v10"
)

// MaxTextLength is the upper bound, in characters, of every text attribute.
const MaxTextLength = 100

const nonFieldErrorsKey = "non_field_errors"

const (
	msgRequired   = "This field is required."
	msgNull       = "This field may not be null."
	msgBlank      = "This field may not be blank."
	msgNotString  = "Not a valid string."
	msgDateFormat = "Date has wrong format. Use one of these formats instead: YYYY-MM-DD."
)

// Leaf rules, expressed as validator tags applied to a single string.
var (
	textRule = fmt.Sprintf("required,max=%d", MaxTextLength)
	dateRule = "datetime=" + model.DateLayout
)

// leafRule binds one payload key to its validator tag and its slot in the record.
type leafRule struct {
	key    string
	rule   string
	isDate bool
	assign func(rec *model.WheelSpecification, value string)
}

// topLevelRules covers the three metadata leaves; the fifteen dimension
// leaves come from model.DimensionFields.
var topLevelRules = []leafRule{
	{
		key:    model.FieldFormNumber,
		rule:   textRule,
		assign: func(rec *model.WheelSpecification, v string) { rec.FormNumber = v },
	},
	{
		key:    model.FieldSubmittedBy,
		rule:   textRule,
		assign: func(rec *model.WheelSpecification, v string) { rec.SubmittedBy = v },
	},
	{
		key:    model.FieldSubmittedDate,
		rule:   dateRule,
		isDate: true,
		assign: func(rec *model.WheelSpecification, v string) {
			// already checked against the layout
			rec.SubmittedDate, _ = model.ParseDate(v)
		},
	},
}

// ValidateWheelSpecification checks an untyped, JSON-decoded payload and
// produces the normalized record.
//
// Every leaf is checked; the returned FieldErrors holds all violations keyed
// by field path. Exactly one of the two results is non-nil. Keys that are not
// part of the form are ignored.
func ValidateWheelSpecification(payload any) (*model.WheelSpecification, errs.FieldErrors) {
	fe := errs.FieldErrors{}

	if payload == nil {
		payload = map[string]any{}
	}
	obj, ok := payload.(map[string]any)
	if !ok {
		fe.Add(nonFieldErrorsKey, dictionaryExpected(payload))
		return nil, fe
	}

	rec := &model.WheelSpecification{}

	for _, r := range topLevelRules {
		if value, ok := checkLeaf(obj, r.key, r.key, r.rule, r.isDate, fe); ok {
			r.assign(rec, value)
		}
	}

	if fields, ok := checkObject(obj, model.FieldFields, fe); ok {
		for _, f := range model.DimensionFields {
			if value, ok := checkLeaf(fields, f.Name, f.Path(), textRule, false, fe); ok {
				*f.Value(&rec.Dimensions) = value
			}
		}
	}

	if len(fe) > 0 {
		return nil, fe
	}
	return rec, nil
}

// checkLeaf validates obj[key] against rule and records violations under path.
func checkLeaf(obj map[string]any, key, path, rule string, isDate bool, fe errs.FieldErrors) (string, bool) {
	raw, present := obj[key]
	if !present {
		fe.Add(path, msgRequired)
		return "", false
	}
	if raw == nil {
		fe.Add(path, msgNull)
		return "", false
	}

	value, isString := raw.(string)
	if !isString {
		if isDate {
			fe.Add(path, msgDateFormat)
		} else {
			fe.Add(path, msgNotString)
		}
		return "", false
	}

	// text is stored trimmed; dates must match the layout exactly
	if !isDate {
		value = strings.TrimSpace(value)
	}

	if err := validate.Var(value, rule); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, v := range verrs {
				fe.Add(path, messageFor(v.Tag(), v.Param(), v.Kind()))
			}
		} else {
			fe.Add(path, err.Error())
		}
		return "", false
	}

	return value, true
}

// checkObject returns obj[key] as a nested object, recording violations otherwise.
func checkObject(obj map[string]any, key string, fe errs.FieldErrors) (map[string]any, bool) {
	raw, present := obj[key]
	if !present {
		fe.Add(key, msgRequired)
		return nil, false
	}
	if raw == nil {
		fe.Add(key, msgNull)
		return nil, false
	}

	nested, isObject := raw.(map[string]any)
	if !isObject {
		fe.Add(key, dictionaryExpected(raw))
		return nil, false
	}
	return nested, true
}

func dictionaryExpected(v any) string {
	return fmt.Sprintf("Invalid data. Expected a dictionary, but got %s.", jsonKind(v))
}

// jsonKind names the JSON type of a value produced by encoding/json.
func jsonKind(v any) string {
	switch v.(type) {
	case []any:
		return "array"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}
