package gateway

import (
	"context"
	"fmt"

	"github.com/civease/civease/internal/pkg/logger"
	"github.com/civease/civease/internal/pkg/models"
)

// Publisher is the message-bus surface the gateway needs
type Publisher interface {
	Publish(topic string, message interface{}) error
}

// SMSGateway publishes outbound SMS dispatch events to NSQ. When no
// publisher is configured the code is only written to the log, which is the
// delivery stub for non-production environments.
type SMSGateway struct {
	publisher Publisher
	cfg       *models.Config
}

// NewSMSGateway creates a new SMS gateway. publisher may be nil when NSQ is
// disabled.
func NewSMSGateway(publisher Publisher, cfg *models.Config) *SMSGateway {
	return &SMSGateway{
		publisher: publisher,
		cfg:       cfg,
	}
}

// SendOTP dispatches a one-time code to a mobile number
func (g *SMSGateway) SendOTP(ctx context.Context, mobile, code string) error {
	// The code is exposed through the log outside production so the flow
	// can be exercised without a real SMS provider.
	if g.cfg.App.Environment != "production" {
		logger.Info("Sending OTP",
			logger.String("mobile", mobile),
			logger.String("otp_code", code))
	}

	if g.publisher == nil {
		return nil
	}

	msg := models.SMSMessage{
		Mobile:  mobile,
		Message: fmt.Sprintf("Your %s verification code is %s", g.cfg.App.Name, code),
	}
	if err := g.publisher.Publish(g.cfg.NSQ.SMSTopic, msg); err != nil {
		return fmt.Errorf("failed to publish SMS event: %w", err)
	}

	return nil
}
