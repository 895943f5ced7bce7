package email

import (
	"context"
	"errors"

	"psymetric/internal/domain"
)

// Sender define la interfaz para notificar reportes completados.
type Sender interface {
	SendReportReady(ctx context.Context, toEmail string, report domain.PersonalityReport) error
}

type disabledSender struct {
	reason string
}

func NewDisabledSender(reason string) Sender {
	return &disabledSender{reason: reason}
}

func (s *disabledSender) SendReportReady(_ context.Context, _ string, _ domain.PersonalityReport) error {
	if s.reason == "" {
		return errors.New("email sender disabled")
	}
	return errors.New(s.reason)
}
