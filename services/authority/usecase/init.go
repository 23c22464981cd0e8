package usecase

import (
	"github.com/civease/civease/internal/pkg/models"
	"github.com/civease/civease/services/authority"
)

// AuthorityUC implements the authority usecase interface
type AuthorityUC struct {
	authorityRepo authority.AuthorityRepo
	cfg           *models.Config
}

// NewAuthorityUC creates a new authority usecase instance
func NewAuthorityUC(
	authorityRepo authority.AuthorityRepo,
	cfg *models.Config,
) *AuthorityUC {
	return &AuthorityUC{
		authorityRepo: authorityRepo,
		cfg:           cfg,
	}
}
