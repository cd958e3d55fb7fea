package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/guiabeleza/salao/internal/billing"
)

type stubWebhook struct {
	gotBody      string
	gotSignature string
	err          error
}

func (s *stubWebhook) Process(_ context.Context, body []byte, signature string) error {
	s.gotBody = string(body)
	s.gotSignature = signature
	return s.err
}

func newWebhookRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Post("/webhooks/kiwify", h.KiwifyWebhook)
	return r
}

func TestKiwifyWebhookSignatureFromQuery(t *testing.T) {
	stub := &stubWebhook{}
	h := &Handler{webhook: stub}

	req := httptest.NewRequest(http.MethodPost, "/webhooks/kiwify?signature=abc123", strings.NewReader(`{"order_id":"x"}`))
	rec := httptest.NewRecorder()
	newWebhookRouter(h).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, esperado 200", rec.Code)
	}
	if stub.gotSignature != "abc123" {
		t.Fatalf("assinatura = %q, esperado abc123", stub.gotSignature)
	}
	if stub.gotBody != `{"order_id":"x"}` {
		t.Fatalf("corpo repassado errado: %q", stub.gotBody)
	}
}

func TestKiwifyWebhookSignatureFromHeader(t *testing.T) {
	stub := &stubWebhook{}
	h := &Handler{webhook: stub}

	req := httptest.NewRequest(http.MethodPost, "/webhooks/kiwify", strings.NewReader(`{}`))
	req.Header.Set("X-Kiwify-Signature", "def456")
	rec := httptest.NewRecorder()
	newWebhookRouter(h).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, esperado 200", rec.Code)
	}
	if stub.gotSignature != "def456" {
		t.Fatalf("assinatura = %q, esperado def456", stub.gotSignature)
	}
}

func TestKiwifyWebhookErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "assinatura inválida", err: billing.ErrInvalidSignature, want: http.StatusUnauthorized},
		{name: "sem order_id", err: billing.ErrMissingOrderID, want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{webhook: &stubWebhook{err: tt.err}}

			req := httptest.NewRequest(http.MethodPost, "/webhooks/kiwify", strings.NewReader(`{}`))
			rec := httptest.NewRecorder()
			newWebhookRouter(h).ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Fatalf("status = %d, esperado %d", rec.Code, tt.want)
			}
		})
	}
}
