package repo

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const profileColumns = `id, name, email, password_hash, role, status, has_salon, wants_salon, phone, instagram, address, number, complement, postal_code, active, created_at, updated_at`

// Queries concentra o acesso às tabelas compartilhadas (perfis e sessões).
type Queries struct {
	pool *pgxpool.Pool
}

// New cria o repositório compartilhado.
func New(pool *pgxpool.Pool) *Queries {
	return &Queries{pool: pool}
}

// QueryRowContext expõe consultas pontuais para serviços.
func (q *Queries) QueryRowContext(ctx context.Context, sql string, args ...any) pgx.Row {
	return q.pool.QueryRow(ctx, sql, args...)
}

// GetProfileByEmail busca perfil pelo e-mail normalizado.
func (q *Queries) GetProfileByEmail(ctx context.Context, email string) (Profile, error) {
	const query = `SELECT ` + profileColumns + ` FROM profiles WHERE email = $1`
	row := q.pool.QueryRow(ctx, query, strings.ToLower(strings.TrimSpace(email)))
	return scanProfile(row)
}

// GetProfileByID busca perfil pelo identificador.
func (q *Queries) GetProfileByID(ctx context.Context, id uuid.UUID) (Profile, error) {
	const query = `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	row := q.pool.QueryRow(ctx, query, id)
	return scanProfile(row)
}

// ListProfiles devolve perfis ordenados por criação, opcionalmente por papel.
func (q *Queries) ListProfiles(ctx context.Context, role string) ([]Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles ORDER BY created_at DESC`
	args := []any{}
	if role != "" {
		query = `SELECT ` + profileColumns + ` FROM profiles WHERE role = $1 ORDER BY created_at DESC`
		args = append(args, role)
	}

	rows, err := q.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// InsertProfile cria um novo perfil.
func (q *Queries) InsertProfile(ctx context.Context, arg InsertProfileParams) (Profile, error) {
	const query = `
        INSERT INTO profiles (id, name, email, password_hash, role, status, wants_salon, phone, postal_code, address, number, complement)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        RETURNING ` + profileColumns

	row := q.pool.QueryRow(ctx, query,
		arg.ID,
		strings.TrimSpace(arg.Name),
		strings.ToLower(strings.TrimSpace(arg.Email)),
		arg.PasswordHash,
		arg.Role,
		arg.Status,
		arg.WantsSalon,
		arg.Phone,
		arg.PostalCode,
		arg.Address,
		arg.Number,
		arg.Complement,
	)

	profile, err := scanProfile(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return Profile{}, ErrEmailTaken
		}
		return Profile{}, err
	}
	return profile, nil
}

// UpdateProfile altera dados de contato do próprio perfil.
func (q *Queries) UpdateProfile(ctx context.Context, arg UpdateProfileParams) error {
	const query = `
        UPDATE profiles
        SET name = $2,
            phone = $3,
            instagram = $4,
            address = $5,
            number = $6,
            complement = $7,
            postal_code = $8,
            updated_at = now()
        WHERE id = $1
    `

	tag, err := q.pool.Exec(ctx, query, arg.ID, strings.TrimSpace(arg.Name), arg.Phone, arg.Instagram, arg.Address, arg.Number, arg.Complement, arg.PostalCode)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateProfileRole altera papel/situação/ativação de um perfil (operação administrativa).
func (q *Queries) UpdateProfileRole(ctx context.Context, id uuid.UUID, role, status string, active bool) error {
	const query = `
        UPDATE profiles
        SET role = $2, status = $3, active = $4, updated_at = now()
        WHERE id = $1
    `

	tag, err := q.pool.Exec(ctx, query, id, role, status, active)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SetProfileHasSalon registra se o perfil possui salão publicado.
func (q *Queries) SetProfileHasSalon(ctx context.Context, id uuid.UUID, hasSalon bool) error {
	const query = `
        UPDATE profiles
        SET has_salon = $2, updated_at = now()
        WHERE id = $1
    `

	tag, err := q.pool.Exec(ctx, query, id, hasSalon)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteProfile remove o perfil definitivamente. Salões e vínculos caem por
// cascata de chave estrangeira.
func (q *Queries) DeleteProfile(ctx context.Context, id uuid.UUID) error {
	tag, err := q.pool.Exec(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// InsertRefreshToken persiste um novo refresh token.
func (q *Queries) InsertRefreshToken(ctx context.Context, arg InsertRefreshTokenParams) (RefreshToken, error) {
	const query = `
        INSERT INTO refresh_tokens (id, subject, audience, token_hash, expires_at, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, subject, audience, token_hash, expires_at, created_at, revoked
    `

	var token RefreshToken
	err := q.pool.QueryRow(ctx, query, arg.ID, arg.Subject, arg.Audience, arg.TokenHash, arg.ExpiresAt, arg.CreatedAt).
		Scan(&token.ID, &token.Subject, &token.Audience, &token.TokenHash, &token.ExpiresAt, &token.CreatedAt, &token.Revoked)
	if err != nil {
		return RefreshToken{}, err
	}
	return token, nil
}

// GetRefreshTokenByHash busca refresh token pelo hash.
func (q *Queries) GetRefreshTokenByHash(ctx context.Context, tokenHash string) (RefreshToken, error) {
	const query = `
        SELECT id, subject, audience, token_hash, expires_at, created_at, revoked
        FROM refresh_tokens
        WHERE token_hash = $1
    `

	var token RefreshToken
	err := q.pool.QueryRow(ctx, query, tokenHash).
		Scan(&token.ID, &token.Subject, &token.Audience, &token.TokenHash, &token.ExpiresAt, &token.CreatedAt, &token.Revoked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return RefreshToken{}, ErrNotFound
		}
		return RefreshToken{}, err
	}
	return token, nil
}

// InvalidateOtherRefreshTokens revoga demais sessões do mesmo sujeito/audiência.
func (q *Queries) InvalidateOtherRefreshTokens(ctx context.Context, subject uuid.UUID, audience, keepHash string) error {
	const query = `
        UPDATE refresh_tokens
        SET revoked = true
        WHERE subject = $1 AND audience = $2 AND token_hash <> $3 AND NOT revoked
    `
	_, err := q.pool.Exec(ctx, query, subject, audience, keepHash)
	return err
}

// RevokeRefreshToken revoga um refresh token específico.
func (q *Queries) RevokeRefreshToken(ctx context.Context, tokenHash string) error {
	tag, err := q.pool.Exec(ctx, `UPDATE refresh_tokens SET revoked = true WHERE token_hash = $1`, tokenHash)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanProfile(row pgx.Row) (Profile, error) {
	var p Profile
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Email,
		&p.PasswordHash,
		&p.Role,
		&p.Status,
		&p.HasSalon,
		&p.WantsSalon,
		&p.Phone,
		&p.Instagram,
		&p.Address,
		&p.Number,
		&p.Complement,
		&p.PostalCode,
		&p.Active,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, err
	}
	return p, nil
}
