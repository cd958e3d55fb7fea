package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/guiabeleza/salao/internal/salon"
)

type stubStore struct {
	categories []Category
	treatments []Treatment
	overrides  []SalonTreatment
	banners    []Banner
}

func (s *stubStore) ListCategories(context.Context) ([]Category, error) {
	return s.categories, nil
}

func (s *stubStore) ListTreatments(_ context.Context, onlyActive bool) ([]Treatment, error) {
	if !onlyActive {
		return s.treatments, nil
	}
	var out []Treatment
	for _, t := range s.treatments {
		if t.IsActive {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *stubStore) ListOverrides(context.Context, uuid.UUID) ([]SalonTreatment, error) {
	return s.overrides, nil
}

func (s *stubStore) ListBanners(context.Context, uuid.UUID, bool) ([]Banner, error) {
	return s.banners, nil
}

func priceOf(t *testing.T, menu *Menu, name string) float64 {
	t.Helper()
	for _, sec := range menu.Sections {
		for _, item := range sec.Items {
			if item.Name == name {
				return item.Price
			}
		}
	}
	t.Fatalf("item %q não está no cardápio", name)
	return 0
}

func TestBuildMenu(t *testing.T) {
	salonID := uuid.New()
	cabelo := Category{ID: uuid.New(), Name: "Cabelo", SortOrder: 1}
	unhas := Category{ID: uuid.New(), Name: "Unhas", SortOrder: 2}
	vazia := Category{ID: uuid.New(), Name: "Estética", SortOrder: 3}

	corte := Treatment{ID: uuid.New(), CategoryID: cabelo.ID, Name: "Corte", BasePrice: 80, IsActive: true}
	escova := Treatment{ID: uuid.New(), CategoryID: cabelo.ID, Name: "Escova", BasePrice: 60, IsActive: true}
	manicure := Treatment{ID: uuid.New(), CategoryID: unhas.ID, Name: "Manicure", BasePrice: 45, IsActive: true}
	inativo := Treatment{ID: uuid.New(), CategoryID: unhas.ID, Name: "Spa dos pés", BasePrice: 120, IsActive: false}

	custom := 95.0
	store := &stubStore{
		categories: []Category{cabelo, unhas, vazia},
		treatments: []Treatment{corte, escova, manicure, inativo},
		overrides: []SalonTreatment{
			{SalonID: salonID, TreatmentID: corte.ID, CustomPrice: &custom, IsActive: true},
			{SalonID: salonID, TreatmentID: escova.ID, IsActive: false},
		},
		banners: []Banner{{ID: uuid.New(), SalonID: salonID, ImageURL: "https://cdn/banner.jpg", IsActive: true}},
	}

	menu, err := NewService(store).BuildMenu(context.Background(), &salon.Salon{ID: salonID, Name: "Studio X"})
	if err != nil {
		t.Fatalf("BuildMenu: %v", err)
	}

	if len(menu.Sections) != 2 {
		t.Fatalf("esperava 2 seções, obteve %d", len(menu.Sections))
	}
	if menu.Sections[0].Category.Name != "Cabelo" || menu.Sections[1].Category.Name != "Unhas" {
		t.Errorf("ordem das seções: %q, %q", menu.Sections[0].Category.Name, menu.Sections[1].Category.Name)
	}

	if got := priceOf(t, menu, "Corte"); got != 95 {
		t.Errorf("preço do corte = %v, esperava o customizado 95", got)
	}
	if got := priceOf(t, menu, "Manicure"); got != 45 {
		t.Errorf("preço da manicure = %v, esperava o base 45", got)
	}

	for _, sec := range menu.Sections {
		for _, item := range sec.Items {
			if item.Name == "Escova" {
				t.Error("oferta desativada não deveria aparecer no cardápio")
			}
			if item.Name == "Spa dos pés" {
				t.Error("tratamento inativo não deveria aparecer no cardápio")
			}
		}
	}

	if len(menu.Banners) != 1 {
		t.Errorf("esperava 1 banner, obteve %d", len(menu.Banners))
	}
}

func TestEffectivePrice(t *testing.T) {
	base := Treatment{BasePrice: 50}
	if got := EffectivePrice(base, nil); got != 50 {
		t.Errorf("sem oferta: %v", got)
	}
	if got := EffectivePrice(base, &SalonTreatment{IsActive: true}); got != 50 {
		t.Errorf("oferta sem preço customizado: %v", got)
	}
	custom := 70.0
	if got := EffectivePrice(base, &SalonTreatment{CustomPrice: &custom, IsActive: true}); got != 70 {
		t.Errorf("oferta com preço customizado: %v", got)
	}
}
