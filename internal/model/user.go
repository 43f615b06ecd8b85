package model

import (
	"time"

	"github.com/google/uuid"
)

// Identity is the authenticated caller as asserted by the external identity
// provider. A nil *Identity means the request is anonymous.
type Identity struct {
	ID       uuid.UUID
	Username string
	Admin    bool
}

// User mirrors an identity-provider subject in local storage so product
// ownership is a real foreign key.
type User struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
