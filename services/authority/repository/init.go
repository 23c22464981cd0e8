package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/civease/civease/internal/pkg/models"
)

// AuthorityRepo implements the authority repository interface
type AuthorityRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewAuthorityRepo creates a new authority repository instance
func NewAuthorityRepo(cfg *models.Config, db *sqlx.DB) *AuthorityRepo {
	return &AuthorityRepo{
		cfg: cfg,
		db:  db,
	}
}
