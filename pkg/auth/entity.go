package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is an account owning a work-history catalog. Every company, job,
// bullet point and skill in the system hangs off a user id. Emails are
// stored lowercased and are unique.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
