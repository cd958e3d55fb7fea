package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/guiabeleza/salao/internal/auth"
	"github.com/guiabeleza/salao/internal/repo"
	"github.com/guiabeleza/salao/internal/util"
)

// Audience única da plataforma; o modelo segue audiences para permitir um
// segundo app no futuro sem migrar tokens.
const AudienceApp = "app"

var (
	// ErrInvalidCredentials indica falha na autenticação.
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	// ErrAccountDisabled indica conta desativada.
	ErrAccountDisabled = errors.New("conta desativada")
	// ErrRefreshInvalid indica refresh token inválido ou expirado.
	ErrRefreshInvalid = errors.New("refresh token inválido")
)

type authRepository interface {
	GetProfileByEmail(ctx context.Context, email string) (repo.Profile, error)
	GetProfileByID(ctx context.Context, id uuid.UUID) (repo.Profile, error)
	InsertProfile(ctx context.Context, arg repo.InsertProfileParams) (repo.Profile, error)
	GetRefreshTokenByHash(ctx context.Context, tokenHash string) (repo.RefreshToken, error)
	InsertRefreshToken(ctx context.Context, arg repo.InsertRefreshTokenParams) (repo.RefreshToken, error)
	InvalidateOtherRefreshTokens(ctx context.Context, subject uuid.UUID, audience, keepHash string) error
	RevokeRefreshToken(ctx context.Context, tokenHash string) error
}

type redisCommander interface {
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// AuthService concentra regras de autenticação e sessões.
type AuthService struct {
	repo       authRepository
	redis      redisCommander
	jwt        *auth.JWTManager
	refreshTTL time.Duration
	pool       *pgxpool.Pool
}

// NewAuthService cria novo serviço.
func NewAuthService(r *repo.Queries, pool *pgxpool.Pool, redisClient *redis.Client, jwtMgr *auth.JWTManager, refreshTTL time.Duration) *AuthService {
	return &AuthService{repo: r, pool: pool, redis: redisClient, jwt: jwtMgr, refreshTTL: refreshTTL}
}

// JWT expõe gerenciador de JWT (útil em middlewares).
func (s *AuthService) JWT() *auth.JWTManager {
	return s.jwt
}

// LoginResult representa retorno padrão de autenticações.
type LoginResult struct {
	AccessToken   string
	RefreshToken  string
	Subject       uuid.UUID
	Roles         []string
	Profile       *repo.Profile
	RefreshExpiry time.Time
}

// PasskeyCredential representa uma credencial WebAuthn de um perfil.
type PasskeyCredential struct {
	ID           uuid.UUID
	ProfileID    uuid.UUID
	CredentialID []byte
	PublicKey    []byte
	SignCount    uint32
	Transports   []string
	AAGUID       []byte
	Nickname     *string
	Cloned       bool
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// SignupInput reúne os dados do cadastro público.
type SignupInput struct {
	Name       string
	Email      string
	Password   string
	Phone      *string
	PostalCode *string
	Address    *string
	Number     *string
	Complement *string
	WantsSalon bool
}

// Signup cria o perfil. Quem pretende publicar salão entra como pendente até
// a equipe decidir a solicitação de acesso.
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*repo.Profile, error) {
	if err := util.ValidateEmail(input.Email); err != nil {
		return nil, err
	}
	if err := util.ValidatePassword(input.Password); err != nil {
		return nil, err
	}
	if err := util.RequireString(input.Name, "nome"); err != nil {
		return nil, err
	}

	hash, err := auth.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	status := repo.StatusApproved
	if input.WantsSalon {
		status = repo.StatusPending
	}

	profile, err := s.repo.InsertProfile(ctx, repo.InsertProfileParams{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(input.Name),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: hash,
		Role:         repo.RoleCollaborator,
		Status:       status,
		WantsSalon:   input.WantsSalon,
		Phone:        input.Phone,
		PostalCode:   input.PostalCode,
		Address:      input.Address,
		Number:       input.Number,
		Complement:   input.Complement,
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Login autentica por e-mail e senha.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	profile, err := s.repo.GetProfileByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Warn().Msg("login: perfil não encontrado")
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := auth.Verify(password, profile.PasswordHash)
	if err != nil {
		log.Warn().Err(err).Msg("login: falha ao verificar senha")
		return nil, ErrInvalidCredentials
	}
	if !ok {
		log.Warn().Msg("login: senha inválida")
		return nil, ErrInvalidCredentials
	}

	return s.loginFromProfile(ctx, profile)
}

// LoginWithProfile emite sessão para um perfil já autenticado (passkey).
func (s *AuthService) LoginWithProfile(ctx context.Context, profile repo.Profile) (*LoginResult, error) {
	return s.loginFromProfile(ctx, profile)
}

func (s *AuthService) loginFromProfile(ctx context.Context, profile repo.Profile) (*LoginResult, error) {
	if !profile.Active {
		return nil, ErrAccountDisabled
	}

	roles := rolesFor(profile)
	token, _, err := s.jwt.GenerateAccessToken(profile.ID.String(), AudienceApp, roles)
	if err != nil {
		return nil, err
	}

	rawRefresh, refreshHash, err := auth.GenerateRefreshToken()
	if err != nil {
		return nil, err
	}

	expires := util.Now().Add(s.refreshTTL)
	if err := s.persistRefresh(ctx, profile.ID, refreshHash, expires); err != nil {
		return nil, err
	}

	return &LoginResult{
		AccessToken:   token,
		RefreshToken:  rawRefresh,
		Subject:       profile.ID,
		Roles:         roles,
		Profile:       &profile,
		RefreshExpiry: expires,
	}, nil
}

// Refresh rotaciona a sessão: valida o refresh atual (DB + Redis), emite novo
// par e revoga o anterior.
func (s *AuthService) Refresh(ctx context.Context, rawToken string) (*LoginResult, error) {
	if rawToken == "" {
		return nil, ErrRefreshInvalid
	}

	hash := auth.HashRefreshToken(rawToken)
	record, err := s.repo.GetRefreshTokenByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrRefreshInvalid
		}
		return nil, err
	}

	if record.Revoked || time.Now().UTC().After(record.ExpiresAt) || record.Audience != AudienceApp {
		return nil, ErrRefreshInvalid
	}

	redisKey := auth.RefreshRedisKey(AudienceApp, hash)
	status, err := s.redis.Get(ctx, redisKey).Result()
	if err == redis.Nil {
		return nil, ErrRefreshInvalid
	}
	if err != nil {
		return nil, err
	}
	if status != "active" {
		return nil, ErrRefreshInvalid
	}

	profile, err := s.repo.GetProfileByID(ctx, record.Subject)
	if err != nil {
		return nil, err
	}

	result, err := s.loginFromProfile(ctx, profile)
	if err != nil {
		return nil, err
	}

	if err := s.repo.RevokeRefreshToken(ctx, hash); err != nil && !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}
	if err := s.redis.Del(ctx, redisKey).Err(); err != nil && err != redis.Nil {
		return nil, err
	}

	return result, nil
}

// Logout revoga refresh token atual.
func (s *AuthService) Logout(ctx context.Context, rawToken string) error {
	if rawToken == "" {
		return nil
	}
	hash := auth.HashRefreshToken(rawToken)
	if err := s.repo.RevokeRefreshToken(ctx, hash); err != nil && !errors.Is(err, repo.ErrNotFound) {
		return err
	}
	redisKey := auth.RefreshRedisKey(AudienceApp, hash)
	if err := s.redis.Del(ctx, redisKey).Err(); err != nil && err != redis.Nil {
		return err
	}
	return nil
}

// GetMe retorna o perfil e papéis do sujeito autenticado.
func (s *AuthService) GetMe(ctx context.Context, subject uuid.UUID) (*repo.Profile, []string, error) {
	profile, err := s.repo.GetProfileByID(ctx, subject)
	if err != nil {
		return nil, nil, err
	}
	return &profile, rolesFor(profile), nil
}

// GetProfileByEmail busca o perfil pelo e-mail normalizado.
func (s *AuthService) GetProfileByEmail(ctx context.Context, email string) (repo.Profile, error) {
	return s.repo.GetProfileByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
}

// ListPasskeys lista credenciais WebAuthn do perfil.
func (s *AuthService) ListPasskeys(ctx context.Context, profileID uuid.UUID) ([]PasskeyCredential, error) {
	rows, err := s.pool.Query(ctx, `
        SELECT id, profile_id, credential_id, public_key, sign_count, transports, aaguid, nickname, cloned, created_at, updated_at
        FROM webauthn_credentials
        WHERE profile_id = $1
        ORDER BY created_at DESC
    `, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var creds []PasskeyCredential
	for rows.Next() {
		var (
			cred PasskeyCredential
			sign int64
		)
		if err := rows.Scan(&cred.ID, &cred.ProfileID, &cred.CredentialID, &cred.PublicKey, &sign, &cred.Transports, &cred.AAGUID, &cred.Nickname, &cred.Cloned, &cred.CreatedAt, &cred.UpdatedAt); err != nil {
			return nil, err
		}
		if sign < 0 {
			sign = 0
		}
		cred.SignCount = uint32(sign)
		creds = append(creds, cred)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return creds, nil
}

// GetPasskeyByCredentialID busca uma credencial pelo id binário WebAuthn.
func (s *AuthService) GetPasskeyByCredentialID(ctx context.Context, credentialID []byte) (*PasskeyCredential, error) {
	var (
		cred PasskeyCredential
		sign int64
	)
	err := s.pool.QueryRow(ctx, `
        SELECT id, profile_id, credential_id, public_key, sign_count, transports, aaguid, nickname, cloned, created_at, updated_at
        FROM webauthn_credentials
        WHERE credential_id = $1
    `, credentialID).Scan(&cred.ID, &cred.ProfileID, &cred.CredentialID, &cred.PublicKey, &sign, &cred.Transports, &cred.AAGUID, &cred.Nickname, &cred.Cloned, &cred.CreatedAt, &cred.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}
	if sign < 0 {
		sign = 0
	}
	cred.SignCount = uint32(sign)
	return &cred, nil
}

// CreatePasskey registra uma credencial nova para o perfil.
func (s *AuthService) CreatePasskey(ctx context.Context, profileID uuid.UUID, credentialID, publicKey []byte, signCount uint32, transports []string, aaguid []byte, nickname *string, cloned bool) (*PasskeyCredential, error) {
	var (
		cred      PasskeyCredential
		updatedAt *time.Time
		signVal   int64
	)
	err := s.pool.QueryRow(ctx, `
        INSERT INTO webauthn_credentials (profile_id, credential_id, public_key, sign_count, transports, aaguid, nickname, cloned)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, profile_id, credential_id, public_key, sign_count, transports, aaguid, nickname, cloned, created_at, updated_at
    `, profileID, credentialID, publicKey, int64(signCount), transports, aaguid, nickname, cloned).Scan(
		&cred.ID,
		&cred.ProfileID,
		&cred.CredentialID,
		&cred.PublicKey,
		&signVal,
		&cred.Transports,
		&cred.AAGUID,
		&cred.Nickname,
		&cred.Cloned,
		&cred.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}
	if signVal < 0 {
		signVal = 0
	}
	cred.SignCount = uint32(signVal)
	cred.UpdatedAt = updatedAt
	return &cred, nil
}

// UpdatePasskeyCounter atualiza o contador anti-clonagem após um login.
func (s *AuthService) UpdatePasskeyCounter(ctx context.Context, credentialID uuid.UUID, signCount uint32, cloned bool) error {
	cmd, err := s.pool.Exec(ctx, `
        UPDATE webauthn_credentials
        SET sign_count = $2, cloned = $3, updated_at = now()
        WHERE id = $1
    `, credentialID, int64(signCount), cloned)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (s *AuthService) persistRefresh(ctx context.Context, subject uuid.UUID, hash string, expires time.Time) error {
	_, err := s.repo.InsertRefreshToken(ctx, repo.InsertRefreshTokenParams{
		ID:        uuid.New(),
		Subject:   subject,
		Audience:  AudienceApp,
		TokenHash: hash,
		ExpiresAt: expires,
		CreatedAt: util.Now(),
	})
	if err != nil {
		return err
	}

	if err := s.repo.InvalidateOtherRefreshTokens(ctx, subject, AudienceApp, hash); err != nil {
		return err
	}

	return s.redis.Set(ctx, auth.RefreshRedisKey(AudienceApp, hash), "active", time.Until(expires)).Err()
}

// rolesFor deriva os papéis do token a partir do perfil. Donas só carregam o
// papel SALON depois de aprovadas.
func rolesFor(profile repo.Profile) []string {
	role := strings.ToUpper(profile.Role)
	if profile.Role == repo.RoleSalon && profile.Status != repo.StatusApproved {
		role = strings.ToUpper(repo.RoleCollaborator)
	}
	return []string{role}
}
