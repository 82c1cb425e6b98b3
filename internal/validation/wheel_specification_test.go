package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/deppfellow/wheelspec/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validFields() map[string]any {
	return map[string]any{
		"axleBoxHousingBoreDia": "280 (+0.030/+0.052)",
		"bearingSeatDiameter":   "130.043 TO 130.068",
		"condemningDia":         "825 (800-900)",
		"intermediateWWP":       "20 TO 28",
		"lastShopIssueSize":     "837 (800-900)",
		"rollerBearingBoreDia":  "130 (+0.0/-0.025)",
		"rollerBearingOuterDia": "280 (+0.0/-0.035)",
		"rollerBearingWidth":    "93 (+0/-0.250)",
		"treadDiameterNew":      "915 (900-1000)",
		"variationSameAxle":     "0.5",
		"variationSameBogie":    "5",
		"variationSameCoach":    "13",
		"wheelDiscWidth":        "127 (+4/-0)",
		"wheelGauge":            "1600 (+2,-1)",
		"wheelProfile":          "29.4 Flange Thickness",
	}
}

func validPayload() map[string]any {
	return map[string]any{
		"fields":        validFields(),
		"formNumber":    "WHEEL-2025-001",
		"submittedBy":   "user_id_123",
		"submittedDate": "2025-07-03",
	}
}

func TestValidateWheelSpecificationAcceptsValidPayload(t *testing.T) {
	rec, fe := ValidateWheelSpecification(validPayload())
	require.Nil(t, fe)
	require.NotNil(t, rec)

	assert.Equal(t, "WHEEL-2025-001", rec.FormNumber)
	assert.Equal(t, "user_id_123", rec.SubmittedBy)
	assert.Equal(t, time.Date(2025, time.July, 3, 0, 0, 0, 0, time.UTC), rec.SubmittedDate)

	fields := validFields()
	for _, f := range model.DimensionFields {
		assert.Equal(t, fields[f.Name], *f.Value(&rec.Dimensions), f.Name)
	}
	assert.Equal(t, "1600 (+2,-1)", rec.Dimensions.WheelGauge)
	assert.Equal(t, "20 TO 28", rec.Dimensions.IntermediateWWP)
}

func TestValidateWheelSpecificationReportsEachMissingLeaf(t *testing.T) {
	paths := []string{model.FieldFormNumber, model.FieldSubmittedBy, model.FieldSubmittedDate}
	for _, f := range model.DimensionFields {
		paths = append(paths, f.Path())
	}
	require.Len(t, paths, 18)

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			payload := validPayload()
			if name, nested := strings.CutPrefix(path, "fields."); nested {
				delete(payload["fields"].(map[string]any), name)
			} else {
				delete(payload, path)
			}

			rec, fe := ValidateWheelSpecification(payload)
			assert.Nil(t, rec)
			require.Len(t, fe, 1)
			assert.Equal(t, []string{msgRequired}, fe[path])
		})
	}
}

func TestValidateWheelSpecificationMissingWheelProfile(t *testing.T) {
	payload := validPayload()
	delete(payload["fields"].(map[string]any), "wheelProfile")

	_, fe := ValidateWheelSpecification(payload)
	assert.True(t, fe.Has("fields.wheelProfile"))
}

func TestValidateWheelSpecificationRejectsDateLayouts(t *testing.T) {
	for _, date := range []any{"07-03-2025", "2025/07/03", "2025-7-3", "2025-02-30", "", "2025-07-03T00:00:00Z", 20250703.0} {
		payload := validPayload()
		payload["submittedDate"] = date

		rec, fe := ValidateWheelSpecification(payload)
		assert.Nil(t, rec, "%v", date)
		assert.Equal(t, []string{msgDateFormat}, fe["submittedDate"], "%v", date)
		assert.Len(t, fe, 1)
	}
}

func TestValidateWheelSpecificationCollectsAllViolations(t *testing.T) {
	payload := validPayload()
	payload["formNumber"] = strings.Repeat("F", 101)
	payload["submittedBy"] = nil
	payload["submittedDate"] = "03/07/2025"
	fields := payload["fields"].(map[string]any)
	fields["wheelGauge"] = ""
	fields["wheelProfile"] = 29.4
	delete(fields, "condemningDia")

	rec, fe := ValidateWheelSpecification(payload)
	assert.Nil(t, rec)
	assert.Equal(t, []string{
		"fields.condemningDia",
		"fields.wheelGauge",
		"fields.wheelProfile",
		"formNumber",
		"submittedBy",
		"submittedDate",
	}, fe.Paths())

	assert.Equal(t, []string{"Ensure this field has no more than 100 characters."}, fe["formNumber"])
	assert.Equal(t, []string{msgNull}, fe["submittedBy"])
	assert.Equal(t, []string{msgBlank}, fe["fields.wheelGauge"])
	assert.Equal(t, []string{msgNotString}, fe["fields.wheelProfile"])
	assert.Equal(t, []string{msgRequired}, fe["fields.condemningDia"])
}

func TestValidateWheelSpecificationLengthCountsCharacters(t *testing.T) {
	payload := validPayload()
	payload["submittedBy"] = strings.Repeat("ø", MaxTextLength)
	payload["fields"].(map[string]any)["wheelGauge"] = strings.Repeat("9", MaxTextLength)

	rec, fe := ValidateWheelSpecification(payload)
	require.Nil(t, fe)
	assert.Equal(t, strings.Repeat("ø", MaxTextLength), rec.SubmittedBy)

	payload["fields"].(map[string]any)["wheelGauge"] = strings.Repeat("9", MaxTextLength+1)
	_, fe = ValidateWheelSpecification(payload)
	assert.True(t, fe.Has("fields.wheelGauge"))
}

func TestValidateWheelSpecificationFieldsShape(t *testing.T) {
	payload := validPayload()
	payload["fields"] = []any{"wheelGauge"}
	_, fe := ValidateWheelSpecification(payload)
	assert.Equal(t, []string{"Invalid data. Expected a dictionary, but got array."}, fe["fields"])
	assert.Len(t, fe, 1)

	delete(payload, "fields")
	_, fe = ValidateWheelSpecification(payload)
	assert.Equal(t, []string{msgRequired}, fe["fields"])

	payload["fields"] = nil
	_, fe = ValidateWheelSpecification(payload)
	assert.Equal(t, []string{msgNull}, fe["fields"])
}

func TestValidateWheelSpecificationPayloadShape(t *testing.T) {
	_, fe := ValidateWheelSpecification("not an object")
	assert.Equal(t, []string{"Invalid data. Expected a dictionary, but got string."}, fe[nonFieldErrorsKey])

	// an empty body reports every top-level key
	_, fe = ValidateWheelSpecification(nil)
	assert.Equal(t, []string{"fields", "formNumber", "submittedBy", "submittedDate"}, fe.Paths())
}

func TestValidateWheelSpecificationIgnoresUnknownKeys(t *testing.T) {
	payload := validPayload()
	payload["status"] = "Rejected"
	payload["fields"].(map[string]any)["flangeHeight"] = "28.5"

	rec, fe := ValidateWheelSpecification(payload)
	require.Nil(t, fe)
	assert.Equal(t, "WHEEL-2025-001", rec.FormNumber)
}

func TestValidateWheelSpecificationDoesNotMutateInput(t *testing.T) {
	payload := validPayload()
	before := validPayload()

	_, _ = ValidateWheelSpecification(payload)
	assert.Equal(t, before, payload)
}

func TestValidateWheelSpecificationTrimsText(t *testing.T) {
	payload := validPayload()
	payload["formNumber"] = "  WHEEL-1  "
	payload["fields"].(map[string]any)["wheelGauge"] = strings.Repeat("a", MaxTextLength) + " "

	rec, fe := ValidateWheelSpecification(payload)
	require.Nil(t, fe)
	assert.Equal(t, "WHEEL-1", rec.FormNumber)
	assert.Equal(t, strings.Repeat("a", MaxTextLength), rec.Dimensions.WheelGauge)
}

func TestValidateWheelSpecificationWhitespaceOnlyIsBlank(t *testing.T) {
	payload := validPayload()
	payload["submittedBy"] = "   "
	payload["fields"].(map[string]any)["wheelProfile"] = "\t\n"

	_, fe := ValidateWheelSpecification(payload)
	assert.Equal(t, []string{msgBlank}, fe["submittedBy"])
	assert.Equal(t, []string{msgBlank}, fe["fields.wheelProfile"])
	assert.Len(t, fe, 2)
}

func TestValidateWheelSpecificationDateIsNotTrimmed(t *testing.T) {
	payload := validPayload()
	payload["submittedDate"] = " 2025-07-03"

	_, fe := ValidateWheelSpecification(payload)
	assert.Equal(t, []string{msgDateFormat}, fe["submittedDate"])
}
