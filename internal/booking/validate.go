package booking

import "strings"

// FieldValue is the typed result of a validator. Optional fields left
// blank produce an Empty value; date fields set Date and HasDate.
type FieldValue struct {
	Text    string
	Date    Date
	HasDate bool
	Empty   bool
}

// Validator maps raw text to a typed value or a validation error.
// Validators are pure and stateless.
type Validator func(raw string) (FieldValue, error)

// RequiredText trims the input and rejects it when nothing remains.
func RequiredText(raw string) (FieldValue, error) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return FieldValue{}, &ValidationError{Reason: "This field is required."}
	}
	return FieldValue{Text: cleaned}, nil
}

// OptionalText trims the input; blank input is accepted as absent.
func OptionalText(raw string) (FieldValue, error) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return FieldValue{Empty: true}, nil
	}
	return FieldValue{Text: cleaned}, nil
}

// RequiredDate parses the fixed DD/MM/YYYY input format.
func RequiredDate(raw string) (FieldValue, error) {
	d, err := ParseDateDMY(strings.TrimSpace(raw))
	if err != nil {
		return FieldValue{}, &ValidationError{Reason: "Invalid format. Use DD/MM/YYYY."}
	}
	return FieldValue{Date: d, HasDate: true}, nil
}

// OptionalDate behaves like RequiredDate but accepts blank input as absent.
func OptionalDate(raw string) (FieldValue, error) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return FieldValue{Empty: true}, nil
	}
	return RequiredDate(cleaned)
}

// PostalCode uppercases and trims, then checks the "A2A 1B4" shape:
// exactly 7 characters, a space in the middle, alphanumeric elsewhere.
// Letter/digit alternation is deliberately not enforced.
func PostalCode(raw string) (FieldValue, error) {
	cleaned := strings.ToUpper(strings.TrimSpace(raw))
	if len(cleaned) != 7 || cleaned[3] != ' ' || !alphanumeric(strings.ReplaceAll(cleaned, " ", "")) {
		return FieldValue{}, &ValidationError{Reason: "Please use the format A2A 1B4."}
	}
	return FieldValue{Text: cleaned}, nil
}

func alphanumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'A' && r <= 'Z':
		case r >= 'a' && r <= 'z':
		default:
			return false
		}
	}
	return true
}
