package billing

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/guiabeleza/salao/internal/salon"
)

type stubStore struct {
	seen    map[string]bool
	applied map[string]string
	noSalon bool
}

func newStubStore() *stubStore {
	return &stubStore{seen: map[string]bool{}, applied: map[string]string{}}
}

func (s *stubStore) RecordEvent(_ context.Context, orderID, _, _ string, _ []byte) (bool, error) {
	if s.seen[orderID] {
		return false, nil
	}
	s.seen[orderID] = true
	return true, nil
}

func (s *stubStore) ApplyPlanByEmail(_ context.Context, email, plan string) error {
	if s.noSalon {
		return salon.ErrNotFound
	}
	s.applied[email] = plan
	return nil
}

const paidBody = `{
    "order_id": "abc-123",
    "order_status": "paid",
    "payment_status": "approved",
    "Customer": {"email": "dona@salao.com"},
    "Product": {"product_name": "Guia Beleza Verificado Dourado"}
}`

func signFor(body string) string {
	return Signature("segredo", []byte(body))
}

func TestProcessPaidOrderUpdatesPlan(t *testing.T) {
	store := newStubStore()
	svc := NewService(store, "segredo", zerolog.Nop())

	if err := svc.Process(context.Background(), []byte(paidBody), signFor(paidBody)); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if got := store.applied["dona@salao.com"]; got != salon.PlanVerificadoDourado {
		t.Errorf("plano aplicado = %q", got)
	}
}

func TestProcessIsIdempotentByOrderID(t *testing.T) {
	store := newStubStore()
	svc := NewService(store, "segredo", zerolog.Nop())

	for i := 0; i < 3; i++ {
		if err := svc.Process(context.Background(), []byte(paidBody), signFor(paidBody)); err != nil {
			t.Fatalf("Process #%d: %v", i+1, err)
		}
	}
	if len(store.seen) != 1 {
		t.Errorf("esperava 1 pedido registrado, obteve %d", len(store.seen))
	}
}

func TestProcessRejectsBadSignature(t *testing.T) {
	store := newStubStore()
	svc := NewService(store, "segredo", zerolog.Nop())

	err := svc.Process(context.Background(), []byte(paidBody), "deadbeef")
	if !errors.Is(err, ErrInvalidSignature) {
		t.Errorf("err = %v, esperava ErrInvalidSignature", err)
	}
	if len(store.seen) != 0 {
		t.Error("evento com assinatura inválida não deveria ser registrado")
	}
}

func TestProcessIgnoresUnpaidOrders(t *testing.T) {
	body := `{"order_id":"x1","order_status":"waiting_payment","payment_status":"pending","Customer":{"email":"a@b.com"}}`
	store := newStubStore()
	svc := NewService(store, "segredo", zerolog.Nop())

	if err := svc.Process(context.Background(), []byte(body), signFor(body)); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if len(store.seen) != 0 || len(store.applied) != 0 {
		t.Error("pedido não pago não deveria gerar efeito")
	}
}

func TestProcessToleratesMissingSalon(t *testing.T) {
	store := newStubStore()
	store.noSalon = true
	svc := NewService(store, "segredo", zerolog.Nop())

	if err := svc.Process(context.Background(), []byte(paidBody), signFor(paidBody)); err != nil {
		t.Errorf("pagamento sem salão deveria ser aceito, err = %v", err)
	}
}

func TestPlanFromName(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Guia Beleza Verificado Dourado", salon.PlanVerificadoDourado},
		{"plano azul mensal", salon.PlanVerificadoAzul},
		{"Assinatura Premium", salon.PlanBasico},
		{"", salon.PlanBasico},
	}
	for _, tc := range cases {
		if got := PlanFromName(tc.name); got != tc.want {
			t.Errorf("PlanFromName(%q) = %q, esperava %q", tc.name, got, tc.want)
		}
	}
}
