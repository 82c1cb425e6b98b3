package model

// External names of the top-level payload keys.
const (
	FieldFormNumber    = "formNumber"
	FieldSubmittedBy   = "submittedBy"
	FieldSubmittedDate = "submittedDate"
	FieldFields        = "fields"
)

// Internal column names of the top-level attributes.
const (
	ColumnID            = "id"
	ColumnFormNumber    = "form_number"
	ColumnSubmittedBy   = "submitted_by"
	ColumnSubmittedDate = "submitted_date"
	ColumnCreatedAt     = "created_at"
)

// DimensionField is one row of the naming table.
type DimensionField struct {
	// Name is the external camelCase key inside the "fields" object.
	Name string
	// Column is the internal snake_case column name.
	Column string
	// Value returns a pointer to the matching attribute of d.
	Value func(d *Dimensions) *string
}

// Path returns the dotted field path used to key validation errors.
func (f DimensionField) Path() string {
	return FieldFields + "." + f.Name
}

// DimensionFields is the exhaustive, ordered mapping of the fifteen
// dimension attributes. It is static data; nothing derives these names.
var DimensionFields = []DimensionField{
	{Name: "axleBoxHousingBoreDia", Column: "axle_box_housing_bore_dia", Value: func(d *Dimensions) *string { return &d.AxleBoxHousingBoreDia }},
	{Name: "bearingSeatDiameter", Column: "bearing_seat_diameter", Value: func(d *Dimensions) *string { return &d.BearingSeatDiameter }},
	{Name: "condemningDia", Column: "condemning_dia", Value: func(d *Dimensions) *string { return &d.CondemningDia }},
	{Name: "intermediateWWP", Column: "intermediate_wwp", Value: func(d *Dimensions) *string { return &d.IntermediateWWP }},
	{Name: "lastShopIssueSize", Column: "last_shop_issue_size", Value: func(d *Dimensions) *string { return &d.LastShopIssueSize }},
	{Name: "rollerBearingBoreDia", Column: "roller_bearing_bore_dia", Value: func(d *Dimensions) *string { return &d.RollerBearingBoreDia }},
	{Name: "rollerBearingOuterDia", Column: "roller_bearing_outer_dia", Value: func(d *Dimensions) *string { return &d.RollerBearingOuterDia }},
	{Name: "rollerBearingWidth", Column: "roller_bearing_width", Value: func(d *Dimensions) *string { return &d.RollerBearingWidth }},
	{Name: "treadDiameterNew", Column: "tread_diameter_new", Value: func(d *Dimensions) *string { return &d.TreadDiameterNew }},
	{Name: "variationSameAxle", Column: "variation_same_axle", Value: func(d *Dimensions) *string { return &d.VariationSameAxle }},
	{Name: "variationSameBogie", Column: "variation_same_bogie", Value: func(d *Dimensions) *string { return &d.VariationSameBogie }},
	{Name: "variationSameCoach", Column: "variation_same_coach", Value: func(d *Dimensions) *string { return &d.VariationSameCoach }},
	{Name: "wheelDiscWidth", Column: "wheel_disc_width", Value: func(d *Dimensions) *string { return &d.WheelDiscWidth }},
	{Name: "wheelGauge", Column: "wheel_gauge", Value: func(d *Dimensions) *string { return &d.WheelGauge }},
	{Name: "wheelProfile", Column: "wheel_profile", Value: func(d *Dimensions) *string { return &d.WheelProfile }},
}

// DimensionColumns returns the internal column names in table order.
func DimensionColumns() []string {
	cols := make([]string, len(DimensionFields))
	for i, f := range DimensionFields {
		cols[i] = f.Column
	}
	return cols
}

// PathForColumn returns the external field path of an internal column,
// or "" when the column is not part of the form.
func PathForColumn(column string) string {
	switch column {
	case ColumnFormNumber:
		return FieldFormNumber
	case ColumnSubmittedBy:
		return FieldSubmittedBy
	case ColumnSubmittedDate:
		return FieldSubmittedDate
	}
	for _, f := range DimensionFields {
		if f.Column == column {
			return f.Path()
		}
	}
	return ""
}
