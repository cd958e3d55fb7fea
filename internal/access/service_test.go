package access

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/guiabeleza/salao/internal/repo"
	"github.com/guiabeleza/salao/internal/salon"
)

type stubProfile struct {
	Role     string
	Status   string
	HasSalon bool
}

type stubStore struct {
	requests map[uuid.UUID]*Request
	profiles map[uuid.UUID]*stubProfile

	approveCalls []string
	approveFails int
	rejected     []uuid.UUID
}

func newStubStore() *stubStore {
	return &stubStore{
		requests: map[uuid.UUID]*Request{},
		profiles: map[uuid.UUID]*stubProfile{},
	}
}

func (s *stubStore) CreateRequest(_ context.Context, input CreateRequestInput) (*Request, error) {
	req := &Request{
		ID:        uuid.New(),
		ProfileID: input.ProfileID,
		SalonName: input.SalonName,
		City:      input.City,
		State:     input.State,
		Status:    StatusPending,
	}
	s.requests[req.ID] = req
	s.profiles[input.ProfileID] = &stubProfile{Role: repo.RoleCollaborator, Status: repo.StatusPending}
	return req, nil
}

func (s *stubStore) GetRequest(_ context.Context, id uuid.UUID) (*Request, error) {
	req, ok := s.requests[id]
	if !ok {
		return nil, ErrNotFound
	}
	return req, nil
}

func (s *stubStore) ListByStatus(_ context.Context, status string) ([]Request, error) {
	var out []Request
	for _, req := range s.requests {
		if status == "" || req.Status == status {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (s *stubStore) Approve(_ context.Context, req *Request, plan string, approver uuid.UUID, slug string) (*salon.Salon, error) {
	s.approveCalls = append(s.approveCalls, slug)
	if s.approveFails > 0 {
		s.approveFails--
		return nil, salon.ErrSlugTaken
	}
	stored := s.requests[req.ID]
	if stored.Status != StatusPending {
		return nil, ErrAlreadyDecided
	}
	stored.Status = StatusApproved
	stored.DecidedBy = &approver
	if p, ok := s.profiles[req.ProfileID]; ok {
		p.Role = repo.RoleSalon
		p.Status = repo.StatusApproved
		p.HasSalon = true
	}
	return &salon.Salon{
		ID:       uuid.New(),
		OwnerID:  &req.ProfileID,
		Name:     req.SalonName,
		Slug:     slug,
		PlanType: salon.NormalizePlan(plan),
		IsActive: true,
	}, nil
}

func (s *stubStore) Reject(_ context.Context, req *Request, approver uuid.UUID) error {
	stored, ok := s.requests[req.ID]
	if !ok {
		return ErrNotFound
	}
	if stored.Status != StatusPending {
		return ErrAlreadyDecided
	}
	stored.Status = StatusRejected
	stored.DecidedBy = &approver
	if p, ok := s.profiles[req.ProfileID]; ok {
		p.Status = repo.StatusRejected
	}
	s.rejected = append(s.rejected, req.ID)
	return nil
}

type recordingNotifier struct {
	requested, approved, rejected int
}

func (n *recordingNotifier) AccessRequested(context.Context, *Request)               { n.requested++ }
func (n *recordingNotifier) AccessApproved(context.Context, *Request, *salon.Salon)  { n.approved++ }
func (n *recordingNotifier) AccessRejected(context.Context, *Request)                { n.rejected++ }

func newTestService(store Store, notifier Notifier) *Service {
	return NewService(store, notifier, zerolog.Nop())
}

func TestApproveCreatesSalonAndPromotes(t *testing.T) {
	store := newStubStore()
	notifier := &recordingNotifier{}
	svc := newTestService(store, notifier)

	req, err := svc.Submit(context.Background(), CreateRequestInput{
		ProfileID: uuid.New(),
		SalonName: "Espaço Bela Flor",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if notifier.requested != 1 {
		t.Fatalf("esperava 1 notificação de abertura, obteve %d", notifier.requested)
	}

	admin := uuid.New()
	created, err := svc.Approve(context.Background(), req.ID, salon.PlanVerificadoAzul, admin)
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}

	if !strings.HasPrefix(created.Slug, "espaco-bela-flor-") {
		t.Errorf("slug inesperado: %q", created.Slug)
	}
	if created.PlanType != salon.PlanVerificadoAzul {
		t.Errorf("plano = %q, esperava %q", created.PlanType, salon.PlanVerificadoAzul)
	}
	if !created.IsActive {
		t.Error("salão criado deveria nascer ativo")
	}
	if created.OwnerID == nil || *created.OwnerID != req.ProfileID {
		t.Error("salão deveria pertencer ao perfil solicitante")
	}
	if store.requests[req.ID].Status != StatusApproved {
		t.Errorf("status da solicitação = %q", store.requests[req.ID].Status)
	}

	profile := store.profiles[req.ProfileID]
	if profile.Role != repo.RoleSalon {
		t.Errorf("papel do perfil = %q, esperava %q", profile.Role, repo.RoleSalon)
	}
	if profile.Status != repo.StatusApproved {
		t.Errorf("status do perfil = %q, esperava %q", profile.Status, repo.StatusApproved)
	}
	if !profile.HasSalon {
		t.Error("perfil aprovado deveria ter has_salon=true")
	}
	if notifier.approved != 1 {
		t.Errorf("esperava 1 notificação de aprovação, obteve %d", notifier.approved)
	}
}

func TestApproveTwiceReturnsAlreadyDecided(t *testing.T) {
	store := newStubStore()
	svc := newTestService(store, nil)

	req, err := svc.Submit(context.Background(), CreateRequestInput{ProfileID: uuid.New(), SalonName: "Studio Glam"})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	admin := uuid.New()
	if _, err := svc.Approve(context.Background(), req.ID, "", admin); err != nil {
		t.Fatalf("primeira aprovação: %v", err)
	}

	if _, err := svc.Approve(context.Background(), req.ID, "", admin); !errors.Is(err, ErrAlreadyDecided) {
		t.Errorf("segunda aprovação: err = %v, esperava ErrAlreadyDecided", err)
	}
	if err := svc.Reject(context.Background(), req.ID, admin); !errors.Is(err, ErrAlreadyDecided) {
		t.Errorf("rejeitar após aprovar: err = %v, esperava ErrAlreadyDecided", err)
	}
}

func TestApproveRetriesOnSlugConflict(t *testing.T) {
	store := newStubStore()
	store.approveFails = 1
	svc := newTestService(store, nil)

	req, err := svc.Submit(context.Background(), CreateRequestInput{ProfileID: uuid.New(), SalonName: "Salão da Ana"})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	created, err := svc.Approve(context.Background(), req.ID, "", uuid.New())
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if len(store.approveCalls) != 2 {
		t.Fatalf("esperava 2 tentativas, obteve %d", len(store.approveCalls))
	}
	if store.approveCalls[0] == store.approveCalls[1] {
		t.Error("nova tentativa deveria gerar slug diferente")
	}
	if created.Slug != store.approveCalls[1] {
		t.Errorf("slug final = %q, esperava %q", created.Slug, store.approveCalls[1])
	}
}

func TestRejectMarksProfileRejected(t *testing.T) {
	store := newStubStore()
	notifier := &recordingNotifier{}
	svc := newTestService(store, notifier)

	req, err := svc.Submit(context.Background(), CreateRequestInput{ProfileID: uuid.New(), SalonName: "Belle Hair"})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if err := svc.Reject(context.Background(), req.ID, uuid.New()); err != nil {
		t.Fatalf("Reject: %v", err)
	}
	if store.requests[req.ID].Status != StatusRejected {
		t.Errorf("status = %q", store.requests[req.ID].Status)
	}

	profile := store.profiles[req.ProfileID]
	if profile.Status != repo.StatusRejected {
		t.Errorf("status do perfil = %q, esperava %q", profile.Status, repo.StatusRejected)
	}
	if profile.Role != repo.RoleCollaborator {
		t.Errorf("papel do perfil = %q, não deveria mudar na rejeição", profile.Role)
	}
	if profile.HasSalon {
		t.Error("perfil rejeitado não deveria ter has_salon=true")
	}
	if notifier.rejected != 1 {
		t.Errorf("esperava 1 notificação de rejeição, obteve %d", notifier.rejected)
	}

	if _, err := svc.Approve(context.Background(), req.ID, "", uuid.New()); !errors.Is(err, ErrAlreadyDecided) {
		t.Errorf("aprovar após rejeitar: err = %v, esperava ErrAlreadyDecided", err)
	}
}

func TestSubmitRequiresSalonName(t *testing.T) {
	svc := newTestService(newStubStore(), nil)
	if _, err := svc.Submit(context.Background(), CreateRequestInput{ProfileID: uuid.New(), SalonName: "   "}); err == nil {
		t.Error("esperava erro para nome vazio")
	}
}
