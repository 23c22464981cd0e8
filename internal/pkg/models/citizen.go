package models

import (
	"time"

	"github.com/google/uuid"
)

// Citizen represents a registered resident who can file problem reports
type Citizen struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	DOB       time.Time `json:"dob" db:"dob"`
	Aadhaar   string    `json:"aadhaar" db:"aadhaar"`
	Mobile    string    `json:"mobile" db:"mobile"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// RegisterCitizenRequest represents a citizen self-registration request
type RegisterCitizenRequest struct {
	Name    string `json:"name"`
	DOB     string `json:"dob"`
	Aadhaar string `json:"aadhaar"`
	Mobile  string `json:"mobile"`
}

// SendOTPRequest represents a request to send a login code to a mobile number
type SendOTPRequest struct {
	Mobile string `json:"mobile"`
}

// VerifyOTPRequest represents a request to exchange a login code for a session token
type VerifyOTPRequest struct {
	Mobile string `json:"mobile"`
	OTP    string `json:"otp"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	Token     string `json:"access_token"`
	ExpiresAt int64  `json:"expires_at"`
}
