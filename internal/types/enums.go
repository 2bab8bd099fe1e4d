package types

import "encoding/json"

// Level classifies exercises and training sheet weeks by difficulty.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// Valid reports whether the level belongs to the closed set.
func (l Level) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// Unknown values are rejected at parse time, before any storage access.
func (l *Level) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &InvalidFormatError{Field: "level", Value: string(data), Expected: "beginner|intermediate|advanced"}
	}
	v := Level(s)
	if !v.Valid() {
		return &InvalidFormatError{Field: "level", Value: s, Expected: "beginner|intermediate|advanced"}
	}
	*l = v
	return nil
}

// DayOfWeek names the weekday a training sheet day is scheduled on.
type DayOfWeek string

const (
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
	Sunday    DayOfWeek = "sunday"
)

// Valid reports whether the day belongs to the closed set.
func (d DayOfWeek) Valid() bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return true
	}
	return false
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (d *DayOfWeek) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &InvalidFormatError{Field: "day_of_week", Value: string(data), Expected: "monday..sunday"}
	}
	v := DayOfWeek(s)
	if !v.Valid() {
		return &InvalidFormatError{Field: "day_of_week", Value: s, Expected: "monday..sunday"}
	}
	*d = v
	return nil
}
