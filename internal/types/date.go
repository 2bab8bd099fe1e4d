package types

import (
	"time"

	"gorm.io/datatypes"
)

// DateLayout is the only accepted wire format for dates.
const DateLayout = "2006-01-02"

// ParseDate parses a strict YYYY-MM-DD date string into a storage date.
func ParseDate(field, value string) (datatypes.Date, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return datatypes.Date{}, &InvalidFormatError{Field: field, Value: value, Expected: "YYYY-MM-DD"}
	}
	return datatypes.Date(t), nil
}

// FormatDate renders a storage date in wire format.
func FormatDate(d datatypes.Date) string {
	return time.Time(d).Format(DateLayout)
}
