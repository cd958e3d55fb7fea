package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/guiabeleza/salao/internal/salon"
)

// Store abstrai a persistência do catálogo para o serviço.
type Store interface {
	ListCategories(ctx context.Context) ([]Category, error)
	ListTreatments(ctx context.Context, onlyActive bool) ([]Treatment, error)
	ListOverrides(ctx context.Context, salonID uuid.UUID) ([]SalonTreatment, error)
	ListBanners(ctx context.Context, salonID uuid.UUID, onlyActive bool) ([]Banner, error)
}

// Menu é o cardápio digital completo de um salão.
type Menu struct {
	Salon    *salon.Salon  `json:"salon"`
	Sections []MenuSection `json:"sections"`
	Banners  []Banner      `json:"banners"`
}

// Service monta o cardápio digital a partir do catálogo global e das ofertas
// do salão.
type Service struct {
	store Store
}

// NewService cria o serviço de catálogo.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// BuildMenu compõe o cardápio público: tratamentos ativos agrupados por
// categoria na ordem de exibição, com o preço efetivo do salão. Um tratamento
// cuja oferta do salão esteja desativada fica de fora; sem oferta, vale o
// preço base. Categorias sem itens não aparecem.
func (s *Service) BuildMenu(ctx context.Context, sal *salon.Salon) (*Menu, error) {
	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	treatments, err := s.store.ListTreatments(ctx, true)
	if err != nil {
		return nil, err
	}
	overrides, err := s.store.ListOverrides(ctx, sal.ID)
	if err != nil {
		return nil, err
	}
	banners, err := s.store.ListBanners(ctx, sal.ID, true)
	if err != nil {
		return nil, err
	}

	overrideByTreatment := make(map[uuid.UUID]*SalonTreatment, len(overrides))
	for i := range overrides {
		overrideByTreatment[overrides[i].TreatmentID] = &overrides[i]
	}

	itemsByCategory := make(map[uuid.UUID][]MenuItem)
	for _, t := range treatments {
		override := overrideByTreatment[t.ID]
		if override != nil && !override.IsActive {
			continue
		}
		itemsByCategory[t.CategoryID] = append(itemsByCategory[t.CategoryID], MenuItem{
			Treatment: t,
			Price:     EffectivePrice(t, override),
		})
	}

	menu := &Menu{Salon: sal, Banners: banners}
	for _, c := range categories {
		items := itemsByCategory[c.ID]
		if len(items) == 0 {
			continue
		}
		menu.Sections = append(menu.Sections, MenuSection{Category: c, Items: items})
	}
	return menu, nil
}
