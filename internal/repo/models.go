package repo

import (
	"time"

	"github.com/google/uuid"
)

// Papéis reconhecidos pela plataforma.
const (
	RoleAdmin        = "admin"
	RoleSalon        = "salon"
	RoleCollaborator = "collaborator"
)

// Situações possíveis de um perfil.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Profile representa a conta de uma pessoa na plataforma (admin, dona de
// salão ou colaboradora). Concentra identidade e dados de contato.
type Profile struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Status       string    `json:"status"`
	HasSalon     bool      `json:"has_salon"`
	WantsSalon   bool      `json:"wants_salon"`
	Phone        *string   `json:"phone,omitempty"`
	Instagram    *string   `json:"instagram,omitempty"`
	Address      *string   `json:"address,omitempty"`
	Number       *string   `json:"number,omitempty"`
	Complement   *string   `json:"complement,omitempty"`
	PostalCode   *string   `json:"postal_code,omitempty"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// InsertProfileParams reúne campos de criação de perfil.
type InsertProfileParams struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         string
	Status       string
	WantsSalon   bool
	Phone        *string
	PostalCode   *string
	Address      *string
	Number       *string
	Complement   *string
}

// UpdateProfileParams cobre edição de dados de contato pelo próprio perfil.
type UpdateProfileParams struct {
	ID         uuid.UUID
	Name       string
	Phone      *string
	Instagram  *string
	Address    *string
	Number     *string
	Complement *string
	PostalCode *string
}

// RefreshToken modela a tabela de refresh tokens.
type RefreshToken struct {
	ID        uuid.UUID
	Subject   uuid.UUID
	Audience  string
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	Revoked   bool
}

// InsertRefreshTokenParams reúne campos de persistência de refresh.
type InsertRefreshTokenParams struct {
	ID        uuid.UUID
	Subject   uuid.UUID
	Audience  string
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsValidRole informa se o papel é reconhecido.
func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleSalon, RoleCollaborator:
		return true
	}
	return false
}

// IsValidStatus informa se a situação é reconhecida.
func IsValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}
