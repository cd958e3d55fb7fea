// Package notify centraliza os avisos do fluxo de aprovação: alertas no
// Slack para a equipe e e-mails transacionais para as solicitantes. Todos os
// envios são melhor-esforço: falha de notificação nunca desfaz uma decisão.
package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/guiabeleza/salao/internal/access"
	"github.com/guiabeleza/salao/internal/salon"
)

const sendTimeout = 10 * time.Second

// Service implementa access.Notifier combinando Slack e e-mail.
type Service struct {
	slack         *SlackNotifier
	mailer        *Mailer
	publicBaseURL string
	log           zerolog.Logger
}

// NewService cria o serviço de notificações. slack e mailer podem ser nil.
func NewService(slack *SlackNotifier, mailer *Mailer, publicBaseURL string, log zerolog.Logger) *Service {
	return &Service{slack: slack, mailer: mailer, publicBaseURL: publicBaseURL, log: log}
}

// AccessRequested avisa a equipe que há uma solicitação nova para revisar.
func (s *Service) AccessRequested(ctx context.Context, req *access.Request) {
	go s.send(func(ctx context.Context) error {
		if s.slack == nil {
			return nil
		}
		return s.slack.Notify(ctx, AlertMessage{
			Title:    "Nova solicitação de acesso",
			Text:     fmt.Sprintf("%s (%s) pediu para publicar o salão %q.", req.RequesterName, req.RequesterEmail, req.SalonName),
			Severity: "info",
		})
	}, "access_requested", req.RequesterEmail)
}

// AccessApproved envia à solicitante o link do cardápio recém-publicado.
func (s *Service) AccessApproved(ctx context.Context, req *access.Request, created *salon.Salon) {
	go s.send(func(ctx context.Context) error {
		if s.mailer == nil {
			return nil
		}
		html := fmt.Sprintf(
			"<p>Olá, %s!</p><p>Seu salão <strong>%s</strong> foi aprovado e já está no ar.</p><p>Cardápio digital: <a href=%q>%s/menu/%s</a></p>",
			req.RequesterName, created.Name, s.publicBaseURL+"/menu/"+created.Slug, s.publicBaseURL, created.Slug,
		)
		return s.mailer.Send(ctx, req.RequesterEmail, "Seu salão foi aprovado no Guia Beleza", html)
	}, "access_approved", req.RequesterEmail)
}

// AccessRejected comunica a recusa à solicitante.
func (s *Service) AccessRejected(ctx context.Context, req *access.Request) {
	go s.send(func(ctx context.Context) error {
		if s.mailer == nil {
			return nil
		}
		html := fmt.Sprintf(
			"<p>Olá, %s.</p><p>Sua solicitação para o salão <strong>%s</strong> não foi aprovada desta vez. Você pode revisar os dados e solicitar novamente.</p>",
			req.RequesterName, req.SalonName,
		)
		return s.mailer.Send(ctx, req.RequesterEmail, "Sobre sua solicitação no Guia Beleza", html)
	}, "access_rejected", req.RequesterEmail)
}

// send roda o envio fora da requisição, com timeout próprio.
func (s *Service) send(fn func(ctx context.Context) error, event, recipient string) {
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	if err := fn(ctx); err != nil {
		s.log.Warn().Err(err).
			Str("event", event).
			Str("recipient", recipient).
			Msg("falha ao enviar notificação")
	}
}
