package billing

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/guiabeleza/salao/internal/salon"
)

// Repository guarda eventos de assinatura e aplica planos aos salões.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository cria um novo repositório de cobrança.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// RecordEvent registra o evento respeitando a unicidade do order_id. Devolve
// false quando o pedido já foi processado antes.
func (r *Repository) RecordEvent(ctx context.Context, orderID, email, plan string, payload []byte) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
        INSERT INTO subscription_events (order_id, customer_email, plan_type, payload, processed_at)
        VALUES ($1, $2, $3, $4, now())
        ON CONFLICT (order_id) DO NOTHING
    `, orderID, email, plan, payload)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ApplyPlanByEmail aplica o plano ao salão cuja responsável tem o e-mail do
// pagamento. Sem salão correspondente devolve salon.ErrNotFound.
func (r *Repository) ApplyPlanByEmail(ctx context.Context, email, plan string) error {
	tag, err := r.pool.Exec(ctx, `
        UPDATE salons s
        SET plan_type = $2, updated_at = now()
        FROM profiles p
        WHERE s.owner_id = p.id AND lower(p.email) = lower($1)
    `, email, plan)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return salon.ErrNotFound
	}
	return nil
}
