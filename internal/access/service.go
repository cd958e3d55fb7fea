package access

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/guiabeleza/salao/internal/salon"
	"github.com/guiabeleza/salao/internal/util"
)

const slugRetries = 3

// Store abstrai a persistência de solicitações para o serviço.
type Store interface {
	CreateRequest(ctx context.Context, input CreateRequestInput) (*Request, error)
	GetRequest(ctx context.Context, id uuid.UUID) (*Request, error)
	ListByStatus(ctx context.Context, status string) ([]Request, error)
	Approve(ctx context.Context, req *Request, plan string, approver uuid.UUID, slug string) (*salon.Salon, error)
	Reject(ctx context.Context, req *Request, approver uuid.UUID) error
}

// Notifier recebe os eventos do fluxo de aprovação para avisar a equipe e a
// solicitante. Implementações não devem bloquear a decisão.
type Notifier interface {
	AccessRequested(ctx context.Context, req *Request)
	AccessApproved(ctx context.Context, req *Request, s *salon.Salon)
	AccessRejected(ctx context.Context, req *Request)
}

// Service orquestra o fluxo de solicitação e decisão de acesso.
type Service struct {
	store    Store
	notifier Notifier
	log      zerolog.Logger
}

// NewService cria o serviço de aprovação de acesso. notifier pode ser nil.
func NewService(store Store, notifier Notifier, log zerolog.Logger) *Service {
	return &Service{store: store, notifier: notifier, log: log}
}

// Submit abre uma solicitação pendente para o perfil informado.
func (s *Service) Submit(ctx context.Context, input CreateRequestInput) (*Request, error) {
	input.SalonName = strings.TrimSpace(input.SalonName)
	if input.SalonName == "" {
		return nil, errors.New("nome do salão é obrigatório")
	}

	req, err := s.store.CreateRequest(ctx, input)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.AccessRequested(ctx, req)
	}
	return req, nil
}

// Get busca uma solicitação pelo identificador.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Request, error) {
	return s.store.GetRequest(ctx, id)
}

// List lista solicitações, opcionalmente filtrando por status.
func (s *Service) List(ctx context.Context, status string) ([]Request, error) {
	if status != "" && !IsValidStatus(status) {
		return nil, errors.New("status inválido")
	}
	return s.store.ListByStatus(ctx, status)
}

// Approve aprova a solicitação: promove o perfil da solicitante e cria o
// salão já ativo, tudo em uma transação. Solicitação já decidida devolve
// ErrAlreadyDecided sem alterar nada.
func (s *Service) Approve(ctx context.Context, id uuid.UUID, plan string, approver uuid.UUID) (*salon.Salon, error) {
	req, err := s.store.GetRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Status != StatusPending {
		return nil, ErrAlreadyDecided
	}

	var created *salon.Salon
	for attempt := 0; attempt < slugRetries; attempt++ {
		slug := salon.UniqueSlug(req.SalonName, util.Now().Add(time.Duration(attempt)*time.Millisecond))
		created, err = s.store.Approve(ctx, req, plan, approver, slug)
		if err == nil {
			break
		}
		if !errors.Is(err, salon.ErrSlugTaken) {
			return nil, err
		}
	}
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("request_id", req.ID.String()).
		Str("salon_slug", created.Slug).
		Str("approved_by", approver.String()).
		Msg("solicitação de acesso aprovada")

	if s.notifier != nil {
		s.notifier.AccessApproved(ctx, req, created)
	}
	return created, nil
}

// Reject rejeita a solicitação pendente e marca o perfil da solicitante como
// rejeitado. Papel e has_salon não mudam.
func (s *Service) Reject(ctx context.Context, id uuid.UUID, approver uuid.UUID) error {
	req, err := s.store.GetRequest(ctx, id)
	if err != nil {
		return err
	}
	if req.Status != StatusPending {
		return ErrAlreadyDecided
	}

	if err := s.store.Reject(ctx, req, approver); err != nil {
		return err
	}

	s.log.Info().
		Str("request_id", req.ID.String()).
		Str("rejected_by", approver.String()).
		Msg("solicitação de acesso rejeitada")

	if s.notifier != nil {
		s.notifier.AccessRejected(ctx, req)
	}
	return nil
}
