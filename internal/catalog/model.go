package catalog

import (
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("registro não encontrado")

// Category agrupa tratamentos no cardápio (cabelo, unhas, estética...).
type Category struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	SortOrder int       `json:"sort_order"`
}

// Treatment é um serviço do catálogo global, com preço base sugerido.
type Treatment struct {
	ID              uuid.UUID `json:"id"`
	CategoryID      uuid.UUID `json:"category_id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	DurationMinutes *int      `json:"duration_minutes,omitempty"`
	BasePrice       float64   `json:"base_price"`
	IsActive        bool      `json:"is_active"`
}

// SalonTreatment é a oferta de um tratamento por um salão, podendo
// sobrescrever o preço base.
type SalonTreatment struct {
	SalonID     uuid.UUID `json:"salon_id"`
	TreatmentID uuid.UUID `json:"treatment_id"`
	CustomPrice *float64  `json:"custom_price,omitempty"`
	IsActive    bool      `json:"is_active"`
}

// Banner é um destaque visual exibido no cardápio do salão.
type Banner struct {
	ID        uuid.UUID `json:"id"`
	SalonID   uuid.UUID `json:"salon_id"`
	ImageURL  string    `json:"image_url"`
	LinkURL   *string   `json:"link_url,omitempty"`
	SortOrder int       `json:"sort_order"`
	IsActive  bool      `json:"is_active"`
}

// MenuItem é um tratamento já com o preço efetivo do salão aplicado.
type MenuItem struct {
	Treatment
	Price float64 `json:"price"`
}

// MenuSection agrupa os itens do cardápio por categoria.
type MenuSection struct {
	Category Category   `json:"category"`
	Items    []MenuItem `json:"items"`
}

// EffectivePrice devolve o preço a exibir: o customizado quando definido,
// senão o base do catálogo.
func EffectivePrice(t Treatment, override *SalonTreatment) float64 {
	if override != nil && override.CustomPrice != nil {
		return *override.CustomPrice
	}
	return t.BasePrice
}
