// Package resendadapter delivers email through the Resend API.
package resendadapter

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"github.com/shennylee/aios/internal/domain"
)

// Sender implements domain.EmailSender on Resend. Fire-and-forget: the
// send is confirmed by the API call, delivery is not tracked.
type Sender struct {
	client *resend.Client
}

func NewSender(apiKey string) *Sender {
	return &Sender{client: resend.NewClient(apiKey)}
}

func (s *Sender) Send(ctx context.Context, msg domain.Email) error {
	_, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    msg.From,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
	})
	if err != nil {
		return fmt.Errorf("resend send: %w", err)
	}
	return nil
}
