package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository provê acesso ao catálogo de tratamentos, categorias e banners.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository cria um novo repositório de catálogo.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// ListCategories devolve as categorias na ordem de exibição.
func (r *Repository) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, sort_order FROM categories ORDER BY sort_order ASC, name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.SortOrder); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// CreateCategory insere uma categoria.
func (r *Repository) CreateCategory(ctx context.Context, name string, sortOrder int) (*Category, error) {
	c := Category{Name: name, SortOrder: sortOrder}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO categories (id, name, sort_order) VALUES ($1, $2, $3) RETURNING id`,
		uuid.New(), name, sortOrder,
	).Scan(&c.ID)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateCategory altera nome e ordem de exibição.
func (r *Repository) UpdateCategory(ctx context.Context, c Category) error {
	tag, err := r.pool.Exec(ctx, `UPDATE categories SET name = $2, sort_order = $3 WHERE id = $1`, c.ID, c.Name, c.SortOrder)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteCategory remove a categoria e, por cascata, seus tratamentos.
func (r *Repository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

const treatmentColumns = `id, category_id, name, description, duration_minutes, base_price, is_active`

// ListTreatments devolve o catálogo global; onlyActive filtra os inativos.
func (r *Repository) ListTreatments(ctx context.Context, onlyActive bool) ([]Treatment, error) {
	query := `SELECT ` + treatmentColumns + ` FROM treatments`
	if onlyActive {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY name ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var treatments []Treatment
	for rows.Next() {
		t, err := scanTreatment(rows)
		if err != nil {
			return nil, err
		}
		treatments = append(treatments, *t)
	}
	return treatments, rows.Err()
}

// GetTreatment busca um tratamento pelo identificador.
func (r *Repository) GetTreatment(ctx context.Context, id uuid.UUID) (*Treatment, error) {
	return scanTreatment(r.pool.QueryRow(ctx, `SELECT `+treatmentColumns+` FROM treatments WHERE id = $1`, id))
}

// CreateTreatment insere um tratamento no catálogo global.
func (r *Repository) CreateTreatment(ctx context.Context, t Treatment) (*Treatment, error) {
	t.ID = uuid.New()
	t.IsActive = true
	_, err := r.pool.Exec(ctx, `
        INSERT INTO treatments (id, category_id, name, description, duration_minutes, base_price, is_active)
        VALUES ($1, $2, $3, $4, $5, $6, true)
    `, t.ID, t.CategoryID, t.Name, t.Description, t.DurationMinutes, t.BasePrice)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateTreatment altera um tratamento do catálogo global.
func (r *Repository) UpdateTreatment(ctx context.Context, t Treatment) error {
	tag, err := r.pool.Exec(ctx, `
        UPDATE treatments
        SET category_id = $2, name = $3, description = $4, duration_minutes = $5, base_price = $6, is_active = $7
        WHERE id = $1
    `, t.ID, t.CategoryID, t.Name, t.Description, t.DurationMinutes, t.BasePrice, t.IsActive)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteTreatment remove o tratamento do catálogo e as ofertas associadas.
func (r *Repository) DeleteTreatment(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM treatments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListOverrides devolve as ofertas de um salão.
func (r *Repository) ListOverrides(ctx context.Context, salonID uuid.UUID) ([]SalonTreatment, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT salon_id, treatment_id, custom_price, is_active
        FROM salon_treatments
        WHERE salon_id = $1
    `, salonID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var overrides []SalonTreatment
	for rows.Next() {
		var o SalonTreatment
		if err := rows.Scan(&o.SalonID, &o.TreatmentID, &o.CustomPrice, &o.IsActive); err != nil {
			return nil, err
		}
		overrides = append(overrides, o)
	}
	return overrides, rows.Err()
}

// UpsertOverride cria ou atualiza a oferta de um tratamento pelo salão.
func (r *Repository) UpsertOverride(ctx context.Context, o SalonTreatment) error {
	_, err := r.pool.Exec(ctx, `
        INSERT INTO salon_treatments (salon_id, treatment_id, custom_price, is_active)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (salon_id, treatment_id)
        DO UPDATE SET custom_price = EXCLUDED.custom_price, is_active = EXCLUDED.is_active
    `, o.SalonID, o.TreatmentID, o.CustomPrice, o.IsActive)
	return err
}

// DeleteOverride remove a oferta, voltando o tratamento ao preço base.
func (r *Repository) DeleteOverride(ctx context.Context, salonID, treatmentID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM salon_treatments WHERE salon_id = $1 AND treatment_id = $2`, salonID, treatmentID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListBanners devolve os banners de um salão; onlyActive filtra inativos.
func (r *Repository) ListBanners(ctx context.Context, salonID uuid.UUID, onlyActive bool) ([]Banner, error) {
	query := `SELECT id, salon_id, image_url, link_url, sort_order, is_active FROM salon_banners WHERE salon_id = $1`
	if onlyActive {
		query += ` AND is_active`
	}
	query += ` ORDER BY sort_order ASC`

	rows, err := r.pool.Query(ctx, query, salonID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var banners []Banner
	for rows.Next() {
		var b Banner
		if err := rows.Scan(&b.ID, &b.SalonID, &b.ImageURL, &b.LinkURL, &b.SortOrder, &b.IsActive); err != nil {
			return nil, err
		}
		banners = append(banners, b)
	}
	return banners, rows.Err()
}

// CreateBanner insere um banner já ativo.
func (r *Repository) CreateBanner(ctx context.Context, b Banner) (*Banner, error) {
	b.ID = uuid.New()
	b.IsActive = true
	_, err := r.pool.Exec(ctx, `
        INSERT INTO salon_banners (id, salon_id, image_url, link_url, sort_order, is_active)
        VALUES ($1, $2, $3, $4, $5, true)
    `, b.ID, b.SalonID, b.ImageURL, b.LinkURL, b.SortOrder)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// UpdateBanner altera um banner.
func (r *Repository) UpdateBanner(ctx context.Context, b Banner) error {
	tag, err := r.pool.Exec(ctx, `
        UPDATE salon_banners
        SET image_url = $2, link_url = $3, sort_order = $4, is_active = $5
        WHERE id = $1
    `, b.ID, b.ImageURL, b.LinkURL, b.SortOrder, b.IsActive)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteBanner remove um banner.
func (r *Repository) DeleteBanner(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM salon_banners WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanTreatment(row pgx.Row) (*Treatment, error) {
	var t Treatment
	err := row.Scan(&t.ID, &t.CategoryID, &t.Name, &t.Description, &t.DurationMinutes, &t.BasePrice, &t.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}
