package v1

import (
	"time"
)

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Mobile   string `json:"mobile" validate:"required"`
	Grade    string `json:"grade" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued bearer token and the employee's grade.
type LoginResponse struct {
	Token string `json:"token"`
	Grade string `json:"grade"`
}

// CheckinPermissionRequest is the body of POST /checkin-request, the advisory
// pre-flight permission check.
type CheckinPermissionRequest struct {
	LocationID int64 `json:"locationId" validate:"required"`
}

// CheckinRequest is the body of POST /checkin. Zero is a legitimate
// coordinate (equator, prime meridian), so latitude and longitude carry only
// range validators and no required tag.
type CheckinRequest struct {
	LocationID int64   `json:"locationId" validate:"required"`
	Latitude   float64 `json:"latitude" validate:"latitude"`
	Longitude  float64 `json:"longitude" validate:"longitude"`
}

// MessageResponse is a generic success payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// CheckinRecordResponse is one check-in history row.
type CheckinRecordResponse struct {
	CheckinTime  time.Time `json:"checkin_time"`
	LocationName string    `json:"location_name"`
}

// LocationResponse describes a registered check-in location.
type LocationResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
