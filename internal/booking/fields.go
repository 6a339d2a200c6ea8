package booking

// FieldKey identifies one entry of the form-field table.
type FieldKey string

const (
	FieldFirstName     FieldKey = "first_name"
	FieldMiddleName    FieldKey = "middle_name"
	FieldLastName      FieldKey = "last_name"
	FieldDateOfBirth   FieldKey = "dob"
	FieldLicense       FieldKey = "license"
	FieldLicenseIssue  FieldKey = "license_issue"
	FieldLicenseExpiry FieldKey = "license_expiry"
	FieldSuite         FieldKey = "suite"
	FieldStreetNumber  FieldKey = "street_number"
	FieldStreetName    FieldKey = "street_name"
	FieldCity          FieldKey = "city"
	FieldProvince      FieldKey = "province"
	FieldPostal        FieldKey = "postal"
)

// FieldSpec describes one form field: its key, the prompt sent to the
// user, and the validator that gates advancement.
type FieldSpec struct {
	Key      FieldKey
	Prompt   string
	Validate Validator
}

// FormFields is the ordered, immutable form configuration. The state
// machine indexes into it and never mutates it.
var FormFields = []FieldSpec{
	{FieldFirstName, "Enter your first name:", RequiredText},
	{FieldMiddleName, "Enter your middle name (leave blank if none):", OptionalText},
	{FieldLastName, "Enter your last name:", RequiredText},
	{FieldDateOfBirth, "Enter your date of birth [DD/MM/YYYY]:", RequiredDate},
	{FieldLicense, "Driver's license number (optional, leave blank if none):", OptionalText},
	{FieldLicenseIssue, "License issue date [DD/MM/YYYY] (optional):", OptionalDate},
	{FieldLicenseExpiry, "License expiry date [DD/MM/YYYY] (optional):", OptionalDate},
	{FieldSuite, "Suite or unit number (leave blank if none):", OptionalText},
	{FieldStreetNumber, "Street number:", RequiredText},
	{FieldStreetName, "Street name:", RequiredText},
	{FieldCity, "City:", RequiredText},
	{FieldProvince, "Province:", RequiredText},
	{FieldPostal, "Postal code (format A2A 1B4):", PostalCode},
}

// buildIdentity assembles Identity from accumulated field values.
func buildIdentity(values map[FieldKey]FieldValue) Identity {
	id := Identity{
		FirstName:      values[FieldFirstName].Text,
		MiddleName:     values[FieldMiddleName].Text,
		LastName:       values[FieldLastName].Text,
		DateOfBirth:    values[FieldDateOfBirth].Date,
		DriversLicense: values[FieldLicense].Text,
	}
	if v := values[FieldLicenseIssue]; v.HasDate {
		d := v.Date
		id.LicenseIssue = &d
	}
	if v := values[FieldLicenseExpiry]; v.HasDate {
		d := v.Date
		id.LicenseExpiry = &d
	}
	return id
}

// buildAddress assembles Address from accumulated field values.
func buildAddress(values map[FieldKey]FieldValue) Address {
	return Address{
		Suite:        values[FieldSuite].Text,
		StreetNumber: values[FieldStreetNumber].Text,
		StreetName:   values[FieldStreetName].Text,
		City:         values[FieldCity].Text,
		Province:     values[FieldProvince].Text,
		PostalCode:   values[FieldPostal].Text,
	}
}
