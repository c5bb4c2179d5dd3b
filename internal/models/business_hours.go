package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// DayHours is one day of a weekly schedule. Times are "HH:MM".
type DayHours struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed"`
}

// WeeklySchedule is keyed by lower-case english day name ("monday" ... "sunday").
// A nil schedule is stored as NULL.
type WeeklySchedule map[string]DayHours

func (s WeeklySchedule) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (s *WeeklySchedule) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*s = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("business_hours: unsupported type %T", src)
	}
	if len(raw) == 0 || string(raw) == "null" {
		*s = nil
		return nil
	}
	return json.Unmarshal(raw, s)
}
