package usecase

import (
	"github.com/civease/civease/internal/pkg/models"
	"github.com/civease/civease/services/citizen"
)

// CitizenUC implements the citizen usecase interface
type CitizenUC struct {
	citizenRepo citizen.CitizenRepo
	smsGW       citizen.SMSGateway
	fileStore   citizen.FileStore
	cfg         *models.Config
}

// NewCitizenUC creates a new citizen usecase instance
func NewCitizenUC(
	citizenRepo citizen.CitizenRepo,
	smsGW citizen.SMSGateway,
	fileStore citizen.FileStore,
	cfg *models.Config,
) *CitizenUC {
	return &CitizenUC{
		citizenRepo: citizenRepo,
		smsGW:       smsGW,
		fileStore:   fileStore,
		cfg:         cfg,
	}
}
