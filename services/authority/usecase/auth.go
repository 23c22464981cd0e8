package usecase

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/civease/civease/internal/pkg/apperrors"
	jwtpkg "github.com/civease/civease/internal/pkg/jwt"
	"github.com/civease/civease/internal/pkg/logger"
	"github.com/civease/civease/internal/pkg/models"
)

// Register validates and persists a new authority. The password is bcrypt
// hashed before storage and never logged.
func (u *AuthorityUC) Register(ctx context.Context, req *models.RegisterAuthorityRequest) error {
	if req.AuthorityID == "" || req.Name == "" || req.Designation == "" ||
		req.Department == "" || req.Email == "" || req.Mobile == "" || req.Password == "" {
		return apperrors.Validation("Missing required fields")
	}

	existing, err := u.authorityRepo.GetAuthorityByAuthorityID(ctx, req.AuthorityID)
	if err != nil {
		return apperrors.Internal("Failed to register authority", err)
	}
	if existing == nil {
		existing, err = u.authorityRepo.GetAuthorityByEmail(ctx, req.Email)
		if err != nil {
			return apperrors.Internal("Failed to register authority", err)
		}
	}
	if existing != nil {
		return apperrors.Conflict("Authority already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return apperrors.Internal("Failed to register authority", fmt.Errorf("failed to hash password: %w", err))
	}

	authority := &models.Authority{
		AuthorityID:  req.AuthorityID,
		Name:         req.Name,
		Designation:  req.Designation,
		Department:   req.Department,
		Email:        req.Email,
		Mobile:       req.Mobile,
		PasswordHash: string(hash),
	}
	if err := u.authorityRepo.CreateAuthority(ctx, authority); err != nil {
		return apperrors.Internal("Failed to register authority", err)
	}

	logger.Info("Authority registered",
		logger.String("id", authority.ID.String()),
		logger.String("authority_id", authority.AuthorityID))
	return nil
}

// Login checks authority credentials and issues a session token. Unknown
// identifier and wrong password produce the same response.
func (u *AuthorityUC) Login(ctx context.Context, authorityID, password string) (*models.AuthResponse, error) {
	if authorityID == "" || password == "" {
		return nil, apperrors.Validation("Authority ID and password are required")
	}

	authority, err := u.authorityRepo.GetAuthorityByAuthorityID(ctx, authorityID)
	if err != nil {
		return nil, apperrors.Internal("Failed to login", err)
	}
	if authority == nil {
		return nil, apperrors.Unauthorized("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(authority.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.Unauthorized("Invalid credentials")
	}

	token, expiresAt, err := jwtpkg.GenerateToken(authority.ID, jwtpkg.IdentityAuthority, u.cfg.JWT)
	if err != nil {
		return nil, apperrors.Internal("Failed to login", fmt.Errorf("failed to generate token: %w", err))
	}

	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
