package model

import "time"

// DateLayout is the only accepted wire format for submission dates.
const DateLayout = "2006-01-02"

// StatusSaved is the single lifecycle state of a stored submission.
const StatusSaved = "Saved"

// Dimensions holds the fifteen dimension/tolerance expressions of a form.
// Values are opaque text such as "280 (+0.030/+0.052)".
type Dimensions struct {
	AxleBoxHousingBoreDia string `json:"axleBoxHousingBoreDia"`
	BearingSeatDiameter   string `json:"bearingSeatDiameter"`
	CondemningDia         string `json:"condemningDia"`
	IntermediateWWP       string `json:"intermediateWWP"`
	LastShopIssueSize     string `json:"lastShopIssueSize"`
	RollerBearingBoreDia  string `json:"rollerBearingBoreDia"`
	RollerBearingOuterDia string `json:"rollerBearingOuterDia"`
	RollerBearingWidth    string `json:"rollerBearingWidth"`
	TreadDiameterNew      string `json:"treadDiameterNew"`
	VariationSameAxle     string `json:"variationSameAxle"`
	VariationSameBogie    string `json:"variationSameBogie"`
	VariationSameCoach    string `json:"variationSameCoach"`
	WheelDiscWidth        string `json:"wheelDiscWidth"`
	WheelGauge            string `json:"wheelGauge"`
	WheelProfile          string `json:"wheelProfile"`
}

// WheelSpecification is the normalized record produced by validation and
// ready for persistence. SubmittedDate carries a calendar date at UTC midnight.
type WheelSpecification struct {
	FormNumber    string
	SubmittedBy   string
	SubmittedDate time.Time
	Dimensions    Dimensions
}

// StoredWheelSpecification is a record as kept by the store.
//
// ID and CreatedAt are assigned by the store, never by the caller.
type StoredWheelSpecification struct {
	WheelSpecification

	ID        int64
	CreatedAt time.Time
	Status    string
}

// WheelSpecificationFilter narrows a listing. Nil fields impose no constraint;
// set fields are combined with AND and compared for exact equality.
type WheelSpecificationFilter struct {
	FormNumber    *string
	SubmittedBy   *string
	SubmittedDate *time.Time
}

// FormatDate renders a submission date in DateLayout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD date into a UTC midnight time.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}
