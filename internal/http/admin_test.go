package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/guiabeleza/salao/internal/access"
	httpmiddleware "github.com/guiabeleza/salao/internal/http/middleware"
	"github.com/guiabeleza/salao/internal/salon"
)

type stubWorkflow struct {
	approveFn func(ctx context.Context, id uuid.UUID, plan string, approver uuid.UUID) (*salon.Salon, error)
	rejectFn  func(ctx context.Context, id uuid.UUID, approver uuid.UUID) error
	listFn    func(ctx context.Context, status string) ([]access.Request, error)
}

func (s *stubWorkflow) Submit(context.Context, access.CreateRequestInput) (*access.Request, error) {
	return nil, errStubNotWired
}

func (s *stubWorkflow) Get(context.Context, uuid.UUID) (*access.Request, error) {
	return nil, errStubNotWired
}

func (s *stubWorkflow) List(ctx context.Context, status string) ([]access.Request, error) {
	if s.listFn == nil {
		return nil, errStubNotWired
	}
	return s.listFn(ctx, status)
}

func (s *stubWorkflow) Approve(ctx context.Context, id uuid.UUID, plan string, approver uuid.UUID) (*salon.Salon, error) {
	if s.approveFn == nil {
		return nil, errStubNotWired
	}
	return s.approveFn(ctx, id, plan, approver)
}

func (s *stubWorkflow) Reject(ctx context.Context, id uuid.UUID, approver uuid.UUID) error {
	if s.rejectFn == nil {
		return errStubNotWired
	}
	return s.rejectFn(ctx, id, approver)
}

func newAdminRouter(h *Handler, adminID uuid.UUID) http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := context.WithValue(req.Context(), httpmiddleware.ContextKeySubject, adminID.String())
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
	r.Get("/admin/requests", h.ListAccessRequests)
	r.Post("/admin/requests/{id}/approve", h.ApproveAccessRequest)
	r.Post("/admin/requests/{id}/reject", h.RejectAccessRequest)
	return r
}

func TestApproveAccessRequestPassesPlanAndApprover(t *testing.T) {
	adminID := uuid.New()
	requestID := uuid.New()

	var gotID, gotApprover uuid.UUID
	var gotPlan string
	flow := &stubWorkflow{
		approveFn: func(_ context.Context, id uuid.UUID, plan string, approver uuid.UUID) (*salon.Salon, error) {
			gotID, gotPlan, gotApprover = id, plan, approver
			return &salon.Salon{Slug: "studio-ana-1", PlanType: plan}, nil
		},
	}
	h := &Handler{accessFlow: flow}

	req := httptest.NewRequest(http.MethodPost, "/admin/requests/"+requestID.String()+"/approve",
		strings.NewReader(`{"plan":"verificado_azul"}`))
	rec := httptest.NewRecorder()
	newAdminRouter(h, adminID).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, esperado 200 (corpo %s)", rec.Code, rec.Body.String())
	}
	if gotID != requestID {
		t.Fatalf("id repassado errado: %s", gotID)
	}
	if gotPlan != salon.PlanVerificadoAzul {
		t.Fatalf("plano = %q, esperado %q", gotPlan, salon.PlanVerificadoAzul)
	}
	if gotApprover != adminID {
		t.Fatalf("aprovadora = %s, esperado %s", gotApprover, adminID)
	}
}

func TestApproveAccessRequestDefaultsToBasico(t *testing.T) {
	var gotPlan string
	flow := &stubWorkflow{
		approveFn: func(_ context.Context, _ uuid.UUID, plan string, _ uuid.UUID) (*salon.Salon, error) {
			gotPlan = plan
			return &salon.Salon{}, nil
		},
	}
	h := &Handler{accessFlow: flow}

	req := httptest.NewRequest(http.MethodPost, "/admin/requests/"+uuid.NewString()+"/approve", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	newAdminRouter(h, uuid.New()).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, esperado 200", rec.Code)
	}
	if gotPlan != salon.PlanBasico {
		t.Fatalf("plano = %q, esperado %q", gotPlan, salon.PlanBasico)
	}
}

func TestApproveAccessRequestConflicts(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "já decidida", err: access.ErrAlreadyDecided, want: http.StatusConflict},
		{name: "não encontrada", err: access.ErrNotFound, want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flow := &stubWorkflow{
				approveFn: func(context.Context, uuid.UUID, string, uuid.UUID) (*salon.Salon, error) {
					return nil, tt.err
				},
			}
			h := &Handler{accessFlow: flow}

			req := httptest.NewRequest(http.MethodPost, "/admin/requests/"+uuid.NewString()+"/approve", strings.NewReader(`{}`))
			rec := httptest.NewRecorder()
			newAdminRouter(h, uuid.New()).ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Fatalf("status = %d, esperado %d", rec.Code, tt.want)
			}
		})
	}
}

func TestApproveAccessRequestInvalidID(t *testing.T) {
	h := &Handler{accessFlow: &stubWorkflow{}}

	req := httptest.NewRequest(http.MethodPost, "/admin/requests/nao-e-uuid/approve", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	newAdminRouter(h, uuid.New()).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, esperado 400", rec.Code)
	}
}

func TestRejectAccessRequest(t *testing.T) {
	requestID := uuid.New()
	rejected := false
	flow := &stubWorkflow{
		rejectFn: func(_ context.Context, id uuid.UUID, _ uuid.UUID) error {
			if id != requestID {
				t.Fatalf("id repassado errado: %s", id)
			}
			rejected = true
			return nil
		},
	}
	h := &Handler{accessFlow: flow}

	req := httptest.NewRequest(http.MethodPost, "/admin/requests/"+requestID.String()+"/reject", nil)
	rec := httptest.NewRecorder()
	newAdminRouter(h, uuid.New()).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, esperado 200", rec.Code)
	}
	if !rejected {
		t.Fatalf("rejeição não chegou ao serviço")
	}
}

func TestListAccessRequestsValidatesStatus(t *testing.T) {
	flow := &stubWorkflow{
		listFn: func(_ context.Context, status string) ([]access.Request, error) {
			if status != access.StatusPending {
				t.Fatalf("status repassado errado: %q", status)
			}
			return []access.Request{{Status: access.StatusPending}}, nil
		},
	}
	h := &Handler{accessFlow: flow}
	router := newAdminRouter(h, uuid.New())

	req := httptest.NewRequest(http.MethodGet, "/admin/requests?status=pending", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, esperado 200", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/admin/requests?status=qualquer", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status inválido deveria dar 400, veio %d", rec.Code)
	}
}
