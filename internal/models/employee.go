package models

import (
	"time"

	"github.com/google/uuid"
)

// Employee is a registered worker. PasswordHash is never serialized.
type Employee struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Mobile       string    `json:"mobile"`
	Grade        string    `json:"grade"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
