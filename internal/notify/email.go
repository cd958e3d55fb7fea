package notify

import (
	"context"

	"github.com/resend/resend-go/v2"
)

// Mailer envia e-mails transacionais via Resend.
type Mailer struct {
	client *resend.Client
	from   string
}

// NewMailer cria o mailer; chave vazia devolve nil (desabilitado).
func NewMailer(apiKey, from string) *Mailer {
	if apiKey == "" {
		return nil
	}
	if from == "" {
		from = "Guia Beleza <nao-responda@guiabeleza.com.br>"
	}
	return &Mailer{client: resend.NewClient(apiKey), from: from}
}

// Send envia um e-mail HTML simples.
func (m *Mailer) Send(ctx context.Context, to, subject, html string) error {
	if m == nil {
		return nil
	}
	_, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	})
	return err
}
