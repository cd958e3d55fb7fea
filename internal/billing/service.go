package billing

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/guiabeleza/salao/internal/salon"
)

// Store abstrai a persistência de eventos de assinatura.
type Store interface {
	RecordEvent(ctx context.Context, orderID, email, plan string, payload []byte) (bool, error)
	ApplyPlanByEmail(ctx context.Context, email, plan string) error
}

// Service processa webhooks de pagamento da Kiwify.
type Service struct {
	store  Store
	secret string
	log    zerolog.Logger
}

// NewService cria o serviço de cobrança. secret é o token compartilhado com a
// Kiwify para assinar os webhooks.
func NewService(store Store, secret string, log zerolog.Logger) *Service {
	return &Service{store: store, secret: secret, log: log}
}

// Process valida a assinatura e aplica o evento: pagamentos efetivados
// atualizam o plano do salão da compradora, uma única vez por pedido. Eventos
// repetidos ou não pagos são aceitos e ignorados.
func (s *Service) Process(ctx context.Context, body []byte, signature string) error {
	if !VerifySignature(s.secret, body, signature) {
		return ErrInvalidSignature
	}

	var event Event
	if err := json.Unmarshal(body, &event); err != nil {
		return err
	}
	if strings.TrimSpace(event.OrderID) == "" {
		return ErrMissingOrderID
	}

	if !event.IsPaid() {
		s.log.Debug().
			Str("order_id", event.OrderID).
			Str("order_status", event.OrderStatus).
			Str("payment_status", event.PaymentStatus).
			Msg("webhook kiwify ignorado: pagamento não efetivado")
		return nil
	}

	plan := PlanFromName(event.PlanName())
	inserted, err := s.store.RecordEvent(ctx, event.OrderID, event.Customer.Email, plan, body)
	if err != nil {
		return err
	}
	if !inserted {
		s.log.Debug().Str("order_id", event.OrderID).Msg("webhook kiwify já processado")
		return nil
	}

	if err := s.store.ApplyPlanByEmail(ctx, event.Customer.Email, plan); err != nil {
		if errors.Is(err, salon.ErrNotFound) {
			s.log.Warn().
				Str("order_id", event.OrderID).
				Str("email", event.Customer.Email).
				Msg("pagamento sem salão correspondente")
			return nil
		}
		return err
	}

	s.log.Info().
		Str("order_id", event.OrderID).
		Str("plan", plan).
		Msg("plano atualizado via kiwify")
	return nil
}
