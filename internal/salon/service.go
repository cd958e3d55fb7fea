package salon

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/guiabeleza/salao/internal/geo"
	"github.com/guiabeleza/salao/internal/util"
)

const (
	cacheTTL        = 30 * time.Second
	slugRetries     = 3
	slugRetryJitter = time.Millisecond
)

type cacheEntry struct {
	salon     *Salon
	expiresAt time.Time
}

// Service resolve salões por slug com cache em memória e orquestra a vitrine
// de proximidade.
type Service struct {
	repo  *Repository
	cache sync.Map // slug -> cacheEntry
}

// NewService cria o serviço de salões.
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Resolve devolve o salão pelo slug, usando cache com TTL curto para aliviar
// o banco nas páginas públicas de cardápio.
func (s *Service) Resolve(ctx context.Context, slug string) (*Salon, error) {
	if v, ok := s.cache.Load(slug); ok {
		entry := v.(cacheEntry)
		if time.Now().Before(entry.expiresAt) {
			return entry.salon, nil
		}
		s.cache.Delete(slug)
	}

	salon, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !salon.IsActive {
		return nil, ErrNotFound
	}

	s.cache.Store(slug, cacheEntry{salon: salon, expiresAt: time.Now().Add(cacheTTL)})
	return salon, nil
}

// Invalidate descarta a entrada de cache de um slug após edição.
func (s *Service) Invalidate(slug string) {
	s.cache.Delete(slug)
}

// Create insere um salão gerando o slug a partir do nome. Em caso raro de
// colisão do sufixo temporal, gera outro sufixo e tenta de novo.
func (s *Service) Create(ctx context.Context, input CreateSalonInput) (*Salon, error) {
	for attempt := 0; attempt < slugRetries; attempt++ {
		input.Slug = UniqueSlug(input.Name, util.Now().Add(time.Duration(attempt)*slugRetryJitter))
		salon, err := s.repo.Create(ctx, input)
		if err == nil {
			return salon, nil
		}
		if !errors.Is(err, ErrSlugTaken) {
			return nil, err
		}
	}
	return nil, ErrSlugTaken
}

// Get busca um salão pelo identificador.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Salon, error) {
	return s.repo.GetByID(ctx, id)
}

// GetByOwner busca o salão da dona informada.
func (s *Service) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*Salon, error) {
	return s.repo.GetByOwner(ctx, ownerID)
}

// List devolve os salões; all inclui os desativados (visão administrativa).
func (s *Service) List(ctx context.Context, all bool) ([]Salon, error) {
	if all {
		return s.repo.ListAll(ctx)
	}
	return s.repo.ListActive(ctx)
}

// Delete remove o salão e invalida o cache.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	salon, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.Invalidate(salon.Slug)
	return nil
}

// Update persiste a edição e invalida o cache de slug.
func (s *Service) Update(ctx context.Context, input UpdateSalonInput) error {
	salon, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return err
	}
	if err := s.repo.Update(ctx, input); err != nil {
		return err
	}
	s.Invalidate(salon.Slug)
	return nil
}

// UpdatePhoto troca a foto de capa e invalida o cache.
func (s *Service) UpdatePhoto(ctx context.Context, id uuid.UUID, photoURL string) error {
	salon, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePhoto(ctx, id, photoURL); err != nil {
		return err
	}
	s.Invalidate(salon.Slug)
	return nil
}

// UpdatePlan troca o plano do salão e invalida o cache.
func (s *Service) UpdatePlan(ctx context.Context, id uuid.UUID, plan string) error {
	salon, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePlan(ctx, id, plan); err != nil {
		return err
	}
	s.Invalidate(salon.Slug)
	return nil
}

// SetActive liga/desliga a exibição pública.
func (s *Service) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	salon, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.SetActive(ctx, id, active); err != nil {
		return err
	}
	s.Invalidate(salon.Slug)
	return nil
}

// Nearby monta a vitrine pública: resolve coordenadas, calcula distâncias a
// partir da posição da visitante, filtra pelo raio pedido e ordena por
// proximidade com desempate alfabético.
func (s *Service) Nearby(ctx context.Context, user *geo.Point, radius geo.Radius) ([]Nearby, error) {
	salons, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	items := Locate(salons)
	ComputeDistances(items, user)
	items = FilterByRadius(items, user, radius)
	SortByProximity(items, user)
	return items, nil
}
