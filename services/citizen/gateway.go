package citizen

import (
	"context"
	"io"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/civease/civease/services/citizen SMSGateway

// SMSGateway dispatches one-time codes to a mobile number through the
// external notification channel. Dispatch is fire-and-forget: callers log
// failures but never surface them to the citizen.
type SMSGateway interface {
	SendOTP(ctx context.Context, mobile, code string) error
}

// FileStore persists uploaded report attachments
type FileStore interface {
	Save(filename string, src io.Reader) (string, error)
}
