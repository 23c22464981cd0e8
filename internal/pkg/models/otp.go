package models

import (
	"time"

	"github.com/google/uuid"
)

// OTP represents a one-time login code scoped to a mobile number.
// At most one row exists per mobile: a repeated send overwrites the
// previous code and expiry, and successful verification deletes the row.
type OTP struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Mobile    string    `json:"mobile" db:"mobile"`
	Code      string    `json:"code" db:"code"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"`
}

// SMSMessage is the payload published to the SMS dispatch topic
type SMSMessage struct {
	Mobile  string `json:"mobile"`
	Message string `json:"message"`
}
