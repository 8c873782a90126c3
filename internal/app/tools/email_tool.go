package tools

import (
	"context"
	"fmt"

	"github.com/shennylee/aios/internal/domain"
)

// SendEmailTool forwards subject and body verbatim to the delivery
// collaborator. No retry.
type SendEmailTool struct {
	Email domain.EmailSender
	From  string
	To    string
}

func (t *SendEmailTool) Name() string { return "send_email" }

func (t *SendEmailTool) Call(ctx context.Context, args map[string]any) (map[string]any, error) {
	subject := getString(args, "subject")

	err := t.Email.Send(ctx, domain.Email{
		From:    t.From,
		To:      t.To,
		Subject: subject,
		HTML:    getString(args, "body"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to send email: %w", err)
	}

	return map[string]any{
		"success": true,
		"message": fmt.Sprintf("Email sent: %s", subject),
	}, nil
}
