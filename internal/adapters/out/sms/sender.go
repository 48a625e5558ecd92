// Package sms delivers sign-in codes to customers.
package sms

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const otpMessage = "Your campus delivery code is %s. It expires in a few minutes."

// GatewaySender posts messages to an HTTP SMS gateway with a bearer token.
type GatewaySender struct {
	client *resty.Client
}

type sendRequest struct {
	To   string `json:"to"`
	Body string `json:"body"`
}

func NewGatewaySender(baseURL, token string) *GatewaySender {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10*time.Second).
		SetAuthToken(token).
		SetHeader("Accept", "application/json").
		SetRetryCount(2).
		SetRetryWaitTime(200 * time.Millisecond)
	return &GatewaySender{client: client}
}

func (s *GatewaySender) SendOTP(ctx context.Context, phone, code string) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(sendRequest{To: phone, Body: fmt.Sprintf(otpMessage, code)}).
		Post("/messages")
	if err != nil {
		return fmt.Errorf("sms gateway: %w", err)
	}
	if resp.StatusCode() != http.StatusOK && resp.StatusCode() != http.StatusAccepted {
		return fmt.Errorf("sms gateway returned %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}

// LogSender writes codes to the log instead of sending them. Used when no
// gateway is configured.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger.With("component", "sms")}
}

func (s *LogSender) SendOTP(ctx context.Context, phone, code string) error {
	s.logger.WarnContext(ctx, "sms gateway not configured, logging otp", "phone", phone, "code", code)
	return nil
}
