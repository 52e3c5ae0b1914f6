package email

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v3"

	"celula-igreja/internal/config"
)

type Service interface {
	SendMembershipApproved(ctx context.Context, toEmail, name, groupName string) error
	SendMembershipRejected(ctx context.Context, toEmail, name, groupName string) error
}

type service struct {
	client *resend.Client
	config *config.Config
}

func NewService(cfg *config.Config) Service {
	return &service{
		client: resend.NewClient(cfg.ResendAPIKey),
		config: cfg,
	}
}

func (s *service) send(toEmail, subject, body string) error {
	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Célula <%s>", s.config.FromEmail),
		To:      []string{toEmail},
		Html:    body,
		Subject: subject,
	}

	_, err := s.client.Emails.Send(params)
	return err
}

func (s *service) SendMembershipApproved(ctx context.Context, toEmail, name, groupName string) error {
	body := fmt.Sprintf(
		"<p>Olá %s,</p><p>Sua entrada no grupo <strong>%s</strong> foi aprovada. Bem-vindo!</p>",
		name, groupName,
	)
	return s.send(toEmail, "Entrada aprovada", body)
}

func (s *service) SendMembershipRejected(ctx context.Context, toEmail, name, groupName string) error {
	body := fmt.Sprintf(
		"<p>Olá %s,</p><p>Sua solicitação de entrada no grupo <strong>%s</strong> foi recusada.</p>",
		name, groupName,
	)
	return s.send(toEmail, "Solicitação recusada", body)
}
