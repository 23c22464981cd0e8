package models

import (
	"time"

	"github.com/google/uuid"
)

// Authority represents a municipal officer who triages problem reports
type Authority struct {
	ID           uuid.UUID `json:"id" db:"id"`
	AuthorityID  string    `json:"authority_id" db:"authority_id"`
	Name         string    `json:"name" db:"name"`
	Designation  string    `json:"designation" db:"designation"`
	Department   string    `json:"department" db:"department"`
	Email        string    `json:"email" db:"email"`
	Mobile       string    `json:"mobile" db:"mobile"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// RegisterAuthorityRequest represents an authority registration request
type RegisterAuthorityRequest struct {
	AuthorityID string `json:"authority_id"`
	Name        string `json:"name"`
	Designation string `json:"designation"`
	Department  string `json:"department"`
	Email       string `json:"email"`
	Mobile      string `json:"mobile"`
	Password    string `json:"password"`
}

// LoginRequest represents an authority credential login request
type LoginRequest struct {
	AuthorityID string `json:"authority_id"`
	Password    string `json:"password"`
}
