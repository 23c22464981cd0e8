package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/civease/civease/internal/pkg/apperrors"
	jwtpkg "github.com/civease/civease/internal/pkg/jwt"
	"github.com/civease/civease/internal/pkg/logger"
	"github.com/civease/civease/internal/pkg/models"
	"github.com/civease/civease/internal/utils"
)

// Register validates and persists a new citizen
func (u *CitizenUC) Register(ctx context.Context, req *models.RegisterCitizenRequest) error {
	if req.Name == "" || req.DOB == "" || req.Aadhaar == "" || req.Mobile == "" {
		return apperrors.Validation("Missing required fields")
	}
	if !utils.ValidateAadhaar(req.Aadhaar) {
		return apperrors.Validation("Invalid Aadhaar number")
	}
	if !utils.ValidateMobile(req.Mobile) {
		return apperrors.Validation("Invalid mobile number")
	}

	dob, err := utils.ParseDOB(req.DOB)
	if err != nil {
		return apperrors.Validation("Invalid date format for DOB. Use YYYY-MM-DD")
	}

	existing, err := u.citizenRepo.GetCitizenByAadhaar(ctx, req.Aadhaar)
	if err != nil {
		return apperrors.Internal("Failed to register citizen", err)
	}
	if existing == nil {
		existing, err = u.citizenRepo.GetCitizenByMobile(ctx, req.Mobile)
		if err != nil {
			return apperrors.Internal("Failed to register citizen", err)
		}
	}
	if existing != nil {
		return apperrors.Conflict("User already exists")
	}

	citizen := &models.Citizen{
		Name:    req.Name,
		DOB:     dob,
		Aadhaar: req.Aadhaar,
		Mobile:  req.Mobile,
	}
	if err := u.citizenRepo.CreateCitizen(ctx, citizen); err != nil {
		return apperrors.Internal("Failed to register citizen", err)
	}

	logger.Info("Citizen registered", logger.String("citizen_id", citizen.ID.String()))
	return nil
}

// SendOTP generates a one-time code for a registered mobile number and
// dispatches it through the SMS gateway. Delivery failures are logged but
// never surfaced to the caller.
func (u *CitizenUC) SendOTP(ctx context.Context, mobile string) error {
	if !utils.ValidateMobile(mobile) {
		return apperrors.Validation("Invalid mobile number")
	}

	citizen, err := u.citizenRepo.GetCitizenByMobile(ctx, mobile)
	if err != nil {
		return apperrors.Internal("Failed to send OTP", err)
	}
	if citizen == nil {
		return apperrors.NotFound("Citizen not registered")
	}

	code, err := utils.GenerateOTP()
	if err != nil {
		return apperrors.Internal("Failed to send OTP", err)
	}

	otp := &models.OTP{
		Mobile:    mobile,
		Code:      code,
		ExpiresAt: time.Now().Add(time.Duration(u.cfg.OTP.ExpiryMinutes) * time.Minute),
	}
	if err := u.citizenRepo.UpsertOTP(ctx, otp); err != nil {
		return apperrors.Internal("Failed to send OTP", err)
	}

	// Fire and forget
	if err := u.smsGW.SendOTP(ctx, mobile, code); err != nil {
		logger.Warn("OTP dispatch failed",
			logger.String("mobile", mobile),
			logger.Err(err))
	}

	return nil
}

// VerifyOTP exchanges a valid one-time code for a citizen session token.
// Absent row, wrong code, and expiry all produce the same generic error.
func (u *CitizenUC) VerifyOTP(ctx context.Context, mobile, code string) (*models.AuthResponse, error) {
	if mobile == "" || code == "" {
		return nil, apperrors.Validation("Mobile and OTP are required")
	}

	otp, err := u.citizenRepo.GetOTPByMobile(ctx, mobile)
	if err != nil {
		return nil, apperrors.Internal("Failed to verify OTP", err)
	}
	if otp == nil || otp.Code != code || !time.Now().Before(otp.ExpiresAt) {
		return nil, apperrors.Validation("Invalid or expired OTP")
	}

	citizen, err := u.citizenRepo.GetCitizenByMobile(ctx, mobile)
	if err != nil {
		return nil, apperrors.Internal("Failed to verify OTP", err)
	}
	if citizen == nil {
		return nil, apperrors.Validation("Invalid or expired OTP")
	}

	token, expiresAt, err := jwtpkg.GenerateToken(citizen.ID, jwtpkg.IdentityCitizen, u.cfg.JWT)
	if err != nil {
		return nil, apperrors.Internal("Failed to verify OTP", fmt.Errorf("failed to generate token: %w", err))
	}

	// Single use
	if err := u.citizenRepo.DeleteOTP(ctx, mobile); err != nil {
		return nil, apperrors.Internal("Failed to verify OTP", err)
	}

	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
