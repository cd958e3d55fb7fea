package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/guiabeleza/salao/internal/auth"
	"github.com/guiabeleza/salao/internal/repo"
)

type stubAuthRepo struct {
	profilesByEmail map[string]repo.Profile
	profilesByID    map[uuid.UUID]repo.Profile
	refreshByHash   map[string]repo.RefreshToken
	inserted        []repo.InsertProfileParams
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{
		profilesByEmail: map[string]repo.Profile{},
		profilesByID:    map[uuid.UUID]repo.Profile{},
		refreshByHash:   map[string]repo.RefreshToken{},
	}
}

func (s *stubAuthRepo) addProfile(p repo.Profile) {
	s.profilesByEmail[p.Email] = p
	s.profilesByID[p.ID] = p
}

func (s *stubAuthRepo) GetProfileByEmail(_ context.Context, email string) (repo.Profile, error) {
	p, ok := s.profilesByEmail[email]
	if !ok {
		return repo.Profile{}, repo.ErrNotFound
	}
	return p, nil
}

func (s *stubAuthRepo) GetProfileByID(_ context.Context, id uuid.UUID) (repo.Profile, error) {
	p, ok := s.profilesByID[id]
	if !ok {
		return repo.Profile{}, repo.ErrNotFound
	}
	return p, nil
}

func (s *stubAuthRepo) InsertProfile(_ context.Context, arg repo.InsertProfileParams) (repo.Profile, error) {
	if _, exists := s.profilesByEmail[arg.Email]; exists {
		return repo.Profile{}, repo.ErrEmailTaken
	}
	s.inserted = append(s.inserted, arg)
	p := repo.Profile{
		ID:         arg.ID,
		Name:       arg.Name,
		Email:      arg.Email,
		Role:       arg.Role,
		Status:     arg.Status,
		WantsSalon: arg.WantsSalon,
		Active:     true,
	}
	s.addProfile(p)
	return p, nil
}

func (s *stubAuthRepo) GetRefreshTokenByHash(_ context.Context, tokenHash string) (repo.RefreshToken, error) {
	t, ok := s.refreshByHash[tokenHash]
	if !ok {
		return repo.RefreshToken{}, repo.ErrNotFound
	}
	return t, nil
}

func (s *stubAuthRepo) InsertRefreshToken(_ context.Context, arg repo.InsertRefreshTokenParams) (repo.RefreshToken, error) {
	t := repo.RefreshToken{
		ID:        arg.ID,
		Subject:   arg.Subject,
		Audience:  arg.Audience,
		TokenHash: arg.TokenHash,
		ExpiresAt: arg.ExpiresAt,
		CreatedAt: arg.CreatedAt,
	}
	s.refreshByHash[arg.TokenHash] = t
	return t, nil
}

func (s *stubAuthRepo) InvalidateOtherRefreshTokens(_ context.Context, subject uuid.UUID, audience, keepHash string) error {
	for hash, t := range s.refreshByHash {
		if t.Subject == subject && t.Audience == audience && hash != keepHash {
			t.Revoked = true
			s.refreshByHash[hash] = t
		}
	}
	return nil
}

func (s *stubAuthRepo) RevokeRefreshToken(_ context.Context, tokenHash string) error {
	t, ok := s.refreshByHash[tokenHash]
	if !ok {
		return repo.ErrNotFound
	}
	t.Revoked = true
	s.refreshByHash[tokenHash] = t
	return nil
}

type stubRedis struct {
	store map[string]string
}

func newStubRedis() *stubRedis { return &stubRedis{store: map[string]string{}} }

func (s *stubRedis) Set(ctx context.Context, key string, value any, _ time.Duration) *redis.StatusCmd {
	s.store[key] = value.(string)
	return redis.NewStatusResult("OK", nil)
}

func (s *stubRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	if v, ok := s.store[key]; ok {
		return redis.NewStringResult(v, nil)
	}
	return redis.NewStringResult("", redis.Nil)
}

func (s *stubRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := s.store[k]; ok {
			delete(s.store, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func newTestAuthService(r *stubAuthRepo, rc *stubRedis) *AuthService {
	return &AuthService{
		repo:       r,
		redis:      rc,
		jwt:        auth.NewJWTManager("segredo-de-teste", 15*time.Minute),
		refreshTTL: 24 * time.Hour,
	}
}

func seedProfile(t *testing.T, r *stubAuthRepo, role, status, password string) repo.Profile {
	t.Helper()
	hash, err := auth.Hash(password)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	p := repo.Profile{
		ID:           uuid.New(),
		Name:         "Maria",
		Email:        "maria@salao.com",
		PasswordHash: hash,
		Role:         role,
		Status:       status,
		Active:       true,
	}
	r.addProfile(p)
	return p
}

func TestLoginIssuesSessionWithRoles(t *testing.T) {
	repoStub := newStubAuthRepo()
	redisStub := newStubRedis()
	seedProfile(t, repoStub, repo.RoleSalon, repo.StatusApproved, "senha-forte-123")
	svc := newTestAuthService(repoStub, redisStub)

	res, err := svc.Login(context.Background(), "maria@salao.com", "senha-forte-123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.AccessToken == "" || res.RefreshToken == "" {
		t.Error("tokens não emitidos")
	}
	if len(res.Roles) != 1 || res.Roles[0] != "SALON" {
		t.Errorf("roles = %v", res.Roles)
	}

	hash := auth.HashRefreshToken(res.RefreshToken)
	if _, ok := repoStub.refreshByHash[hash]; !ok {
		t.Error("refresh token não persistido")
	}
	if redisStub.store[auth.RefreshRedisKey(AudienceApp, hash)] != "active" {
		t.Error("estado do refresh não marcado como active no redis")
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	repoStub := newStubAuthRepo()
	seedProfile(t, repoStub, repo.RoleCollaborator, repo.StatusApproved, "senha-forte-123")
	svc := newTestAuthService(repoStub, newStubRedis())

	if _, err := svc.Login(context.Background(), "maria@salao.com", "outra-senha"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("err = %v, esperava ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(context.Background(), "ninguem@salao.com", "x"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("err = %v, esperava ErrInvalidCredentials", err)
	}
}

func TestLoginRejectsDisabledAccount(t *testing.T) {
	repoStub := newStubAuthRepo()
	p := seedProfile(t, repoStub, repo.RoleCollaborator, repo.StatusApproved, "senha-forte-123")
	p.Active = false
	repoStub.addProfile(p)
	svc := newTestAuthService(repoStub, newStubRedis())

	if _, err := svc.Login(context.Background(), p.Email, "senha-forte-123"); !errors.Is(err, ErrAccountDisabled) {
		t.Errorf("err = %v, esperava ErrAccountDisabled", err)
	}
}

func TestRefreshRotatesToken(t *testing.T) {
	repoStub := newStubAuthRepo()
	redisStub := newStubRedis()
	seedProfile(t, repoStub, repo.RoleAdmin, repo.StatusApproved, "senha-forte-123")
	svc := newTestAuthService(repoStub, redisStub)

	first, err := svc.Login(context.Background(), "maria@salao.com", "senha-forte-123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	second, err := svc.Refresh(context.Background(), first.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if second.RefreshToken == first.RefreshToken {
		t.Error("refresh deveria emitir token novo")
	}

	// o token antigo foi revogado na rotação
	if _, err := svc.Refresh(context.Background(), first.RefreshToken); !errors.Is(err, ErrRefreshInvalid) {
		t.Errorf("reuso do refresh antigo: err = %v, esperava ErrRefreshInvalid", err)
	}
}

func TestLogoutRevokesRefresh(t *testing.T) {
	repoStub := newStubAuthRepo()
	seedProfile(t, repoStub, repo.RoleCollaborator, repo.StatusApproved, "senha-forte-123")
	svc := newTestAuthService(repoStub, newStubRedis())

	res, err := svc.Login(context.Background(), "maria@salao.com", "senha-forte-123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := svc.Logout(context.Background(), res.RefreshToken); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, err := svc.Refresh(context.Background(), res.RefreshToken); !errors.Is(err, ErrRefreshInvalid) {
		t.Errorf("refresh após logout: err = %v, esperava ErrRefreshInvalid", err)
	}
}

func TestSignupWantsSalonStartsPending(t *testing.T) {
	repoStub := newStubAuthRepo()
	svc := newTestAuthService(repoStub, newStubRedis())

	profile, err := svc.Signup(context.Background(), SignupInput{
		Name:       "Ana",
		Email:      "Ana@Exemplo.com",
		Password:   "senha-forte-123",
		WantsSalon: true,
	})
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if profile.Email != "ana@exemplo.com" {
		t.Errorf("e-mail não normalizado: %q", profile.Email)
	}
	if profile.Role != repo.RoleCollaborator || profile.Status != repo.StatusPending {
		t.Errorf("perfil = %s/%s, esperava collaborator/pending", profile.Role, profile.Status)
	}

	// sem intenção de salão, a conta nasce aprovada
	other, err := svc.Signup(context.Background(), SignupInput{Name: "Bia", Email: "bia@exemplo.com", Password: "senha-forte-123"})
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if other.Status != repo.StatusApproved {
		t.Errorf("status = %q, esperava approved", other.Status)
	}
}

func TestRolesForDemotesUnapprovedOwner(t *testing.T) {
	p := repo.Profile{Role: repo.RoleSalon, Status: repo.StatusPending}
	if roles := rolesFor(p); roles[0] != "COLLABORATOR" {
		t.Errorf("roles = %v", roles)
	}
	p.Status = repo.StatusApproved
	if roles := rolesFor(p); roles[0] != "SALON" {
		t.Errorf("roles = %v", roles)
	}
}
