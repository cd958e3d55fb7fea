package salon

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const salonColumns = `id, owner_id, name, slug, phone, address, city, state, postal_code, instagram, photo_url, plan_type, is_active, latitude, longitude, responsible_name, responsible_email, created_at, updated_at`

// Repository provê acesso ao armazenamento de salões.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository cria um novo repositório de salões.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// GetBySlug busca salão pelo slug.
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*Salon, error) {
	const query = `SELECT ` + salonColumns + ` FROM salons WHERE slug = $1`
	return scanSalon(r.pool.QueryRow(ctx, query, strings.TrimSpace(strings.ToLower(slug))))
}

// GetByID busca salão pelo identificador.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*Salon, error) {
	const query = `SELECT ` + salonColumns + ` FROM salons WHERE id = $1`
	return scanSalon(r.pool.QueryRow(ctx, query, id))
}

// GetByOwner busca o salão de uma dona.
func (r *Repository) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*Salon, error) {
	const query = `SELECT ` + salonColumns + ` FROM salons WHERE owner_id = $1`
	return scanSalon(r.pool.QueryRow(ctx, query, ownerID))
}

// ListActive devolve salões ativos para a vitrine pública.
func (r *Repository) ListActive(ctx context.Context) ([]Salon, error) {
	const query = `SELECT ` + salonColumns + ` FROM salons WHERE is_active ORDER BY name ASC`
	return r.list(ctx, query)
}

// ListAll devolve todos os salões (operação administrativa).
func (r *Repository) ListAll(ctx context.Context) ([]Salon, error) {
	const query = `SELECT ` + salonColumns + ` FROM salons ORDER BY created_at DESC`
	return r.list(ctx, query)
}

func (r *Repository) list(ctx context.Context, query string) ([]Salon, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var salons []Salon
	for rows.Next() {
		s, err := scanSalon(rows)
		if err != nil {
			return nil, err
		}
		salons = append(salons, *s)
	}
	return salons, rows.Err()
}

// Create insere um novo salão. Conflito de slug devolve ErrSlugTaken para o
// chamador regenerar o sufixo e tentar de novo.
func (r *Repository) Create(ctx context.Context, input CreateSalonInput) (*Salon, error) {
	const query = `
        INSERT INTO salons (id, owner_id, name, slug, phone, address, city, state, postal_code, instagram, plan_type, is_active, responsible_name, responsible_email)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, true, $12, $13)
        RETURNING ` + salonColumns

	row := r.pool.QueryRow(ctx, query,
		uuid.New(),
		input.OwnerID,
		strings.TrimSpace(input.Name),
		strings.TrimSpace(strings.ToLower(input.Slug)),
		input.Phone,
		input.Address,
		input.City,
		input.State,
		input.PostalCode,
		input.Instagram,
		NormalizePlan(input.PlanType),
		input.ResponsibleName,
		input.ResponsibleEmail,
	)

	s, err := scanSalon(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrSlugTaken
		}
		return nil, err
	}
	return s, nil
}

// Update altera dados cadastrais do salão.
func (r *Repository) Update(ctx context.Context, input UpdateSalonInput) error {
	const query = `
        UPDATE salons
        SET name = $2,
            phone = $3,
            address = $4,
            city = $5,
            state = $6,
            postal_code = $7,
            instagram = $8,
            latitude = $9,
            longitude = $10,
            updated_at = now()
        WHERE id = $1
    `

	tag, err := r.pool.Exec(ctx, query, input.ID, strings.TrimSpace(input.Name), input.Phone, input.Address, input.City, input.State, input.PostalCode, input.Instagram, input.Latitude, input.Longitude)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdatePhoto troca a foto de capa do salão.
func (r *Repository) UpdatePhoto(ctx context.Context, id uuid.UUID, photoURL string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE salons SET photo_url = $2, updated_at = now() WHERE id = $1`, id, photoURL)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdatePlan troca o plano do salão (aprovação ou webhook de pagamento).
func (r *Repository) UpdatePlan(ctx context.Context, id uuid.UUID, plan string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE salons SET plan_type = $2, updated_at = now() WHERE id = $1`, id, NormalizePlan(plan))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SetActive liga/desliga a exibição pública (soft delete).
func (r *Repository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	tag, err := r.pool.Exec(ctx, `UPDATE salons SET is_active = $2, updated_at = now() WHERE id = $1`, id, active)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete remove o salão definitivamente (cascata administrativa).
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM salons WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanSalon(row pgx.Row) (*Salon, error) {
	var s Salon
	err := row.Scan(
		&s.ID,
		&s.OwnerID,
		&s.Name,
		&s.Slug,
		&s.Phone,
		&s.Address,
		&s.City,
		&s.State,
		&s.PostalCode,
		&s.Instagram,
		&s.PhotoURL,
		&s.PlanType,
		&s.IsActive,
		&s.Latitude,
		&s.Longitude,
		&s.ResponsibleName,
		&s.ResponsibleEmail,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}
