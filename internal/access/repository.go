package access

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/guiabeleza/salao/internal/db"
	"github.com/guiabeleza/salao/internal/repo"
	"github.com/guiabeleza/salao/internal/salon"
)

const requestColumns = `
    ar.id, ar.profile_id, ar.salon_name, ar.phone, ar.address, ar.city, ar.state,
    ar.postal_code, ar.instagram, ar.responsible_name, ar.responsible_email,
    ar.status, ar.decided_by, ar.decided_at, ar.created_at,
    p.name AS requester_name, p.email AS requester_email`

// Repository provê acesso ao armazenamento de solicitações de acesso.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository cria um novo repositório de solicitações.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// CreateRequest abre uma solicitação pendente. Um índice parcial garante no
// máximo uma solicitação pendente por perfil.
func (r *Repository) CreateRequest(ctx context.Context, input CreateRequestInput) (*Request, error) {
	const query = `
        WITH inserted AS (
            INSERT INTO access_requests (id, profile_id, salon_name, phone, address, city, state, postal_code, instagram, responsible_name, responsible_email, status)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, 'pending')
            RETURNING *
        )
        SELECT ` + requestColumns + `
        FROM inserted ar
        JOIN profiles p ON p.id = ar.profile_id
    `

	row := r.pool.QueryRow(ctx, query,
		uuid.New(),
		input.ProfileID,
		input.SalonName,
		input.Phone,
		input.Address,
		input.City,
		input.State,
		input.PostalCode,
		input.Instagram,
		input.ResponsibleName,
		input.ResponsibleEmail,
	)

	req, err := scanRequest(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return req, nil
}

// GetRequest busca uma solicitação pelo identificador.
func (r *Repository) GetRequest(ctx context.Context, id uuid.UUID) (*Request, error) {
	const query = `
        SELECT ` + requestColumns + `
        FROM access_requests ar
        JOIN profiles p ON p.id = ar.profile_id
        WHERE ar.id = $1
    `
	return scanRequest(r.pool.QueryRow(ctx, query, id))
}

// ListByStatus lista solicitações filtrando por status; vazio lista todas.
func (r *Repository) ListByStatus(ctx context.Context, status string) ([]Request, error) {
	query := `
        SELECT ` + requestColumns + `
        FROM access_requests ar
        JOIN profiles p ON p.id = ar.profile_id
    `
	args := []any{}
	if status != "" {
		query += ` WHERE ar.status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY ar.created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []Request
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *req)
	}
	return requests, rows.Err()
}

// Approve efetiva a aprovação em uma única transação: marca a solicitação
// como aprovada (somente se ainda pendente), promove o perfil e cria o salão
// com o slug informado. Qualquer falha desfaz tudo.
func (r *Repository) Approve(ctx context.Context, req *Request, plan string, approver uuid.UUID, slug string) (*salon.Salon, error) {
	var created *salon.Salon

	err := db.WithTx(ctx, r.pool, func(ctx context.Context, tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
            UPDATE access_requests
            SET status = 'approved', decided_by = $2, decided_at = now()
            WHERE id = $1 AND status = 'pending'
        `, req.ID, approver)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return ErrAlreadyDecided
		}

		if _, err := tx.Exec(ctx, `
            UPDATE profiles
            SET role = $2, status = $3, has_salon = true, updated_at = now()
            WHERE id = $1
        `, req.ProfileID, repo.RoleSalon, repo.StatusApproved); err != nil {
			return err
		}

		row := tx.QueryRow(ctx, `
            INSERT INTO salons (id, owner_id, name, slug, phone, address, city, state, postal_code, instagram, plan_type, is_active, responsible_name, responsible_email)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, true, $12, $13)
            RETURNING id, created_at, updated_at
        `, uuid.New(), req.ProfileID, req.SalonName, slug, req.Phone, req.Address, req.City, req.State, req.PostalCode, req.Instagram, salon.NormalizePlan(plan), req.ResponsibleName, req.ResponsibleEmail)

		s := salon.Salon{
			OwnerID:          &req.ProfileID,
			Name:             req.SalonName,
			Slug:             slug,
			Phone:            req.Phone,
			Address:          req.Address,
			City:             req.City,
			State:            req.State,
			PostalCode:       req.PostalCode,
			Instagram:        req.Instagram,
			PlanType:         salon.NormalizePlan(plan),
			IsActive:         true,
			ResponsibleName:  req.ResponsibleName,
			ResponsibleEmail: req.ResponsibleEmail,
		}
		if err := row.Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return salon.ErrSlugTaken
			}
			return err
		}

		created = &s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Reject marca a solicitação como rejeitada (somente se ainda pendente) e
// registra a rejeição no status do perfil, na mesma transação. Papel e
// has_salon ficam como estão.
func (r *Repository) Reject(ctx context.Context, req *Request, approver uuid.UUID) error {
	return db.WithTx(ctx, r.pool, func(ctx context.Context, tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
            UPDATE access_requests
            SET status = 'rejected', decided_by = $2, decided_at = now()
            WHERE id = $1 AND status = 'pending'
        `, req.ID, approver)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return ErrAlreadyDecided
		}

		_, err = tx.Exec(ctx, `
            UPDATE profiles
            SET status = $2, updated_at = now()
            WHERE id = $1
        `, req.ProfileID, repo.StatusRejected)
		return err
	})
}

func scanRequest(row pgx.Row) (*Request, error) {
	var req Request
	err := row.Scan(
		&req.ID,
		&req.ProfileID,
		&req.SalonName,
		&req.Phone,
		&req.Address,
		&req.City,
		&req.State,
		&req.PostalCode,
		&req.Instagram,
		&req.ResponsibleName,
		&req.ResponsibleEmail,
		&req.Status,
		&req.DecidedBy,
		&req.DecidedAt,
		&req.CreatedAt,
		&req.RequesterName,
		&req.RequesterEmail,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &req, nil
}
