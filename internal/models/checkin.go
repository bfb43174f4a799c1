package models

import (
	"time"
)

// CheckinRecord is one row of an employee's check-in history, joined with the
// location name.
type CheckinRecord struct {
	CheckinTime  time.Time `json:"checkin_time"`
	LocationName string    `json:"location_name"`
}
