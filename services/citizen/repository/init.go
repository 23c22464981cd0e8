package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/civease/civease/internal/pkg/models"
)

// CitizenRepo implements the citizen repository interface
type CitizenRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewCitizenRepo creates a new citizen repository instance
func NewCitizenRepo(cfg *models.Config, db *sqlx.DB) *CitizenRepo {
	return &CitizenRepo{
		cfg: cfg,
		db:  db,
	}
}
