package access

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound       = errors.New("solicitação não encontrada")
	ErrAlreadyDecided = errors.New("solicitação já foi decidida")
	ErrDuplicate      = errors.New("já existe solicitação pendente para este perfil")
)

// Status de uma solicitação de acesso. Pendente é o único estado não
// terminal: aprovada/rejeitada nunca mudam de novo.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Request é o pedido de uma profissional para publicar seu salão. Os campos
// do futuro salão ficam congelados aqui até a decisão da equipe.
type Request struct {
	ID               uuid.UUID  `json:"id"`
	ProfileID        uuid.UUID  `json:"profile_id"`
	SalonName        string     `json:"salon_name"`
	Phone            *string    `json:"phone,omitempty"`
	Address          *string    `json:"address,omitempty"`
	City             *string    `json:"city,omitempty"`
	State            *string    `json:"state,omitempty"`
	PostalCode       *string    `json:"postal_code,omitempty"`
	Instagram        *string    `json:"instagram,omitempty"`
	ResponsibleName  *string    `json:"responsible_name,omitempty"`
	ResponsibleEmail *string    `json:"responsible_email,omitempty"`
	Status           string     `json:"status"`
	DecidedBy        *uuid.UUID `json:"decided_by,omitempty"`
	DecidedAt        *time.Time `json:"decided_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`

	// Preenchidos por join com profiles, somente leitura.
	RequesterName  string `json:"requester_name"`
	RequesterEmail string `json:"requester_email"`
}

// CreateRequestInput contém os campos de abertura de uma solicitação.
type CreateRequestInput struct {
	ProfileID        uuid.UUID
	SalonName        string
	Phone            *string
	Address          *string
	City             *string
	State            *string
	PostalCode       *string
	Instagram        *string
	ResponsibleName  *string
	ResponsibleEmail *string
}

// IsValidStatus informa se o status é reconhecido.
func IsValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}
