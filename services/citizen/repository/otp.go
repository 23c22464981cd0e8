package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/civease/civease/internal/pkg/models"
)

// UpsertOTP writes the OTP row for a mobile number. A repeated send replaces
// the previous code and expiry instead of accumulating rows, so at most one
// live code exists per mobile.
func (r *CitizenRepo) UpsertOTP(ctx context.Context, otp *models.OTP) error {
	if otp.ID == uuid.Nil {
		otp.ID = uuid.New()
	}

	query := `
		INSERT INTO otps (id, mobile, code, expires_at)
		VALUES (:id, :mobile, :code, :expires_at)
		ON CONFLICT (mobile) DO UPDATE
		SET code = EXCLUDED.code, expires_at = EXCLUDED.expires_at
	`
	if _, err := r.db.NamedExecContext(ctx, query, otp); err != nil {
		return fmt.Errorf("failed to upsert OTP: %w", err)
	}

	return nil
}

// GetOTPByMobile retrieves the OTP row for a mobile number.
// Returns (nil, nil) when no row exists.
func (r *CitizenRepo) GetOTPByMobile(ctx context.Context, mobile string) (*models.OTP, error) {
	query := `
		SELECT id, mobile, code, expires_at
		FROM otps
		WHERE mobile = $1
	`

	var otp models.OTP
	err := r.db.GetContext(ctx, &otp, query, mobile)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get OTP: %w", err)
	}

	return &otp, nil
}

// DeleteOTP removes the OTP row for a mobile number (single use)
func (r *CitizenRepo) DeleteOTP(ctx context.Context, mobile string) error {
	query := `DELETE FROM otps WHERE mobile = $1`

	if _, err := r.db.ExecContext(ctx, query, mobile); err != nil {
		return fmt.Errorf("failed to delete OTP: %w", err)
	}

	return nil
}
