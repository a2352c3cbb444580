package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

type PickupWindowType string

const (
	PickupWindowSpecific PickupWindowType = "specific"
	PickupWindowRange    PickupWindowType = "range"
	PickupWindowFlexible PickupWindowType = "flexible"
)

// PickupWindow is a tagged union over three availability shapes. Type selects
// which fields are meaningful: specific uses Date (+ optional StartTime and
// EndTime), range uses StartDate/EndDate, flexible uses DaysOfWeek. Notes
// applies to all shapes.
type PickupWindow struct {
	Type       PickupWindowType `json:"type"`
	Date       *time.Time       `json:"date,omitempty"`
	StartDate  *time.Time       `json:"startDate,omitempty"`
	EndDate    *time.Time       `json:"endDate,omitempty"`
	StartTime  string           `json:"startTime,omitempty"`
	EndTime    string           `json:"endTime,omitempty"`
	DaysOfWeek []string         `json:"daysOfWeek,omitempty"`
	Notes      string           `json:"notes,omitempty"`
}

var weekdays = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

func (w PickupWindow) Validate() error {
	switch w.Type {
	case PickupWindowSpecific:
		if w.Date == nil {
			return errors.New("specific pickup window requires a date")
		}
	case PickupWindowRange:
		if w.StartDate == nil || w.EndDate == nil {
			return errors.New("range pickup window requires startDate and endDate")
		}
		if w.EndDate.Before(*w.StartDate) {
			return errors.New("range pickup window endDate precedes startDate")
		}
	case PickupWindowFlexible:
		if len(w.DaysOfWeek) == 0 {
			return errors.New("flexible pickup window requires daysOfWeek")
		}
		for _, d := range w.DaysOfWeek {
			if !weekdays[strings.ToLower(strings.TrimSpace(d))] {
				return fmt.Errorf("invalid day of week: %q", d)
			}
		}
	default:
		return fmt.Errorf("invalid pickup window type: %q", w.Type)
	}
	return nil
}

// Normalize clears the fields that do not belong to the window's shape and
// canonicalizes weekday names, so a stored window never carries stray data
// from another shape.
func (w PickupWindow) Normalize() PickupWindow {
	out := PickupWindow{Type: w.Type, Notes: strings.TrimSpace(w.Notes)}
	switch w.Type {
	case PickupWindowSpecific:
		out.Date = w.Date
		out.StartTime = strings.TrimSpace(w.StartTime)
		out.EndTime = strings.TrimSpace(w.EndTime)
	case PickupWindowRange:
		out.StartDate = w.StartDate
		out.EndDate = w.EndDate
	case PickupWindowFlexible:
		seen := make(map[string]bool, len(w.DaysOfWeek))
		for _, d := range w.DaysOfWeek {
			day := strings.ToLower(strings.TrimSpace(d))
			if day != "" && !seen[day] {
				seen[day] = true
				out.DaysOfWeek = append(out.DaysOfWeek, day)
			}
		}
	}
	return out
}

// PickupWindows is a JSON-encoded array column on listings.
type PickupWindows []PickupWindow

func (p PickupWindows) Value() (driver.Value, error) {
	if p == nil {
		p = PickupWindows{}
	}
	return json.Marshal(p)
}

func (p *PickupWindows) Scan(src interface{}) error {
	if src == nil {
		*p = PickupWindows{}
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	}
	return fmt.Errorf("unsupported type %T for PickupWindows", src)
}
