package salon

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound  = errors.New("salão não encontrado")
	ErrSlugTaken = errors.New("slug já utilizado")
)

// Planos disponíveis para um salão.
const (
	PlanBasico            = "basico"
	PlanVerificadoAzul    = "verificado_azul"
	PlanVerificadoDourado = "verificado_dourado"
)

// Salon representa um salão cadastrado na plataforma, com seu cardápio
// digital acessível pelo slug.
type Salon struct {
	ID               uuid.UUID  `json:"id"`
	OwnerID          *uuid.UUID `json:"owner_id,omitempty"`
	Name             string     `json:"name"`
	Slug             string     `json:"slug"`
	Phone            *string    `json:"phone,omitempty"`
	Address          *string    `json:"address,omitempty"`
	City             *string    `json:"city,omitempty"`
	State            *string    `json:"state,omitempty"`
	PostalCode       *string    `json:"postal_code,omitempty"`
	Instagram        *string    `json:"instagram,omitempty"`
	PhotoURL         *string    `json:"photo_url,omitempty"`
	PlanType         string     `json:"plan_type"`
	IsActive         bool       `json:"is_active"`
	Latitude         *float64   `json:"latitude,omitempty"`
	Longitude        *float64   `json:"longitude,omitempty"`
	ResponsibleName  *string    `json:"responsible_name,omitempty"`
	ResponsibleEmail *string    `json:"responsible_email,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// CreateSalonInput contém os campos de criação de um salão.
type CreateSalonInput struct {
	OwnerID          *uuid.UUID
	Name             string
	Slug             string
	Phone            *string
	Address          *string
	City             *string
	State            *string
	PostalCode       *string
	Instagram        *string
	PlanType         string
	ResponsibleName  *string
	ResponsibleEmail *string
}

// UpdateSalonInput cobre edição feita pela dona ou por admin.
type UpdateSalonInput struct {
	ID         uuid.UUID
	Name       string
	Phone      *string
	Address    *string
	City       *string
	State      *string
	PostalCode *string
	Instagram  *string
	Latitude   *float64
	Longitude  *float64
}

// IsValidPlan informa se o plano é reconhecido.
func IsValidPlan(plan string) bool {
	switch plan {
	case PlanBasico, PlanVerificadoAzul, PlanVerificadoDourado:
		return true
	}
	return false
}

// NormalizePlan padroniza o plano informado, caindo em basico caso vazio.
func NormalizePlan(plan string) string {
	plan = strings.ToLower(strings.TrimSpace(plan))
	if plan == "" {
		return PlanBasico
	}
	return plan
}
