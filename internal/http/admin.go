package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/guiabeleza/salao/internal/access"
	"github.com/guiabeleza/salao/internal/catalog"
	"github.com/guiabeleza/salao/internal/repo"
	"github.com/guiabeleza/salao/internal/salon"
)

func parseIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "identificador inválido", nil)
		return uuid.Nil, false
	}
	return id, true
}

// ListAccessRequests lista solicitações de acesso, com filtro opcional
// ?status=pending|approved|rejected.
func (h *Handler) ListAccessRequests(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status != "" && !access.IsValidStatus(status) {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "status inválido", nil)
		return
	}

	requests, err := h.accessFlow.List(r.Context(), status)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível listar solicitações", nil)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"requests": requests, "total": len(requests)})
}

// ApproveAccessRequest aprova a solicitação, promove o perfil e publica o
// salão em uma única transação.
func (h *Handler) ApproveAccessRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}
	approver, err := h.subjectUUID(r)
	if err != nil {
		WriteError(w, http.StatusUnauthorized, "AUTH", "identificação inválida", nil)
		return
	}

	var payload struct {
		Plan string `json:"plan"`
	}
	if r.Body != nil {
		// corpo vazio é aceito: plano padrão básico
		_ = json.NewDecoder(r.Body).Decode(&payload)
	}
	plan := salon.NormalizePlan(payload.Plan)
	if !salon.IsValidPlan(plan) {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "plano inválido", nil)
		return
	}

	created, err := h.accessFlow.Approve(r.Context(), id, plan, approver)
	if err != nil {
		switch {
		case errors.Is(err, access.ErrNotFound):
			WriteError(w, http.StatusNotFound, "NOT_FOUND", "solicitação não encontrada", nil)
		case errors.Is(err, access.ErrAlreadyDecided):
			WriteError(w, http.StatusConflict, "CONFLICT", "solicitação já decidida", nil)
		default:
			WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível aprovar a solicitação", nil)
		}
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"status": "approved", "salon": created})
}

// RejectAccessRequest marca a solicitação e o status do perfil como
// rejeitados; papel e salão não mudam.
func (h *Handler) RejectAccessRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}
	approver, err := h.subjectUUID(r)
	if err != nil {
		WriteError(w, http.StatusUnauthorized, "AUTH", "identificação inválida", nil)
		return
	}

	if err := h.accessFlow.Reject(r.Context(), id, approver); err != nil {
		switch {
		case errors.Is(err, access.ErrNotFound):
			WriteError(w, http.StatusNotFound, "NOT_FOUND", "solicitação não encontrada", nil)
		case errors.Is(err, access.ErrAlreadyDecided):
			WriteError(w, http.StatusConflict, "CONFLICT", "solicitação já decidida", nil)
		default:
			WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível rejeitar a solicitação", nil)
		}
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"status": "rejected"})
}

// ListProfiles lista perfis, com filtro opcional ?role=.
func (h *Handler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.queries.ListProfiles(r.Context(), r.URL.Query().Get("role"))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível listar perfis", nil)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"profiles": profiles, "total": len(profiles)})
}

// UpdateProfileRole ajusta papel, status e ativação de um perfil.
func (h *Handler) UpdateProfileRole(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	current, err := h.queries.GetProfileByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "NOT_FOUND", "perfil não encontrado", nil)
			return
		}
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível carregar o perfil", nil)
		return
	}

	var payload struct {
		Role   *string `json:"role"`
		Status *string `json:"status"`
		Active *bool   `json:"active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido", nil)
		return
	}

	role := current.Role
	if payload.Role != nil {
		role = *payload.Role
	}
	status := current.Status
	if payload.Status != nil {
		status = *payload.Status
	}
	active := current.Active
	if payload.Active != nil {
		active = *payload.Active
	}

	switch role {
	case repo.RoleAdmin, repo.RoleSalon, repo.RoleCollaborator:
	default:
		WriteError(w, http.StatusBadRequest, "VALIDATION", "papel inválido", nil)
		return
	}
	switch status {
	case repo.StatusPending, repo.StatusApproved, repo.StatusRejected:
	default:
		WriteError(w, http.StatusBadRequest, "VALIDATION", "status inválido", nil)
		return
	}

	if err := h.queries.UpdateProfileRole(r.Context(), id, role, status, active); err != nil {
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível atualizar o perfil", nil)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// DeleteProfile remove o perfil e seus tokens (cascata no banco).
func (h *Handler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	if err := h.queries.DeleteProfile(r.Context(), id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "NOT_FOUND", "perfil não encontrado", nil)
			return
		}
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível excluir o perfil", nil)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// AdminListSalons lista todos os salões, incluindo os inativos.
func (h *Handler) AdminListSalons(w http.ResponseWriter, r *http.Request) {
	salons, err := h.salons.List(r.Context(), true)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível listar salões", nil)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"salons": salons, "total": len(salons)})
}

// AdminUpdateSalon aplica alterações parciais: plano, ativação e dados
// cadastrais, cada um pelo caminho próprio do serviço.
func (h *Handler) AdminUpdateSalon(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	sal, err := h.salons.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, salon.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "NOT_FOUND", "salão não encontrado", nil)
			return
		}
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível carregar o salão", nil)
		return
	}

	var payload struct {
		PlanType   *string  `json:"plan_type"`
		IsActive   *bool    `json:"is_active"`
		Name       *string  `json:"name"`
		Phone      *string  `json:"phone"`
		Address    *string  `json:"address"`
		City       *string  `json:"city"`
		State      *string  `json:"state"`
		PostalCode *string  `json:"postal_code"`
		Instagram  *string  `json:"instagram"`
		Latitude   *float64 `json:"latitude"`
		Longitude  *float64 `json:"longitude"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido", nil)
		return
	}

	if payload.PlanType != nil {
		plan := salon.NormalizePlan(*payload.PlanType)
		if !salon.IsValidPlan(plan) {
			WriteError(w, http.StatusBadRequest, "VALIDATION", "plano inválido", nil)
			return
		}
		if err := h.salons.UpdatePlan(r.Context(), id, plan); err != nil {
			WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível alterar o plano", nil)
			return
		}
	}

	if payload.IsActive != nil {
		if err := h.salons.SetActive(r.Context(), id, *payload.IsActive); err != nil {
			WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível alterar a ativação", nil)
			return
		}
	}

	if payload.Name != nil || payload.Phone != nil || payload.Address != nil ||
		payload.City != nil || payload.State != nil || payload.PostalCode != nil ||
		payload.Instagram != nil || payload.Latitude != nil || payload.Longitude != nil {
		input := salon.UpdateSalonInput{
			ID:         id,
			Name:       sal.Name,
			Phone:      sal.Phone,
			Address:    sal.Address,
			City:       sal.City,
			State:      sal.State,
			PostalCode: sal.PostalCode,
			Instagram:  sal.Instagram,
			Latitude:   sal.Latitude,
			Longitude:  sal.Longitude,
		}
		if payload.Name != nil {
			input.Name = *payload.Name
		}
		if payload.Phone != nil {
			input.Phone = payload.Phone
		}
		if payload.Address != nil {
			input.Address = payload.Address
		}
		if payload.City != nil {
			input.City = payload.City
		}
		if payload.State != nil {
			input.State = payload.State
		}
		if payload.PostalCode != nil {
			input.PostalCode = payload.PostalCode
		}
		if payload.Instagram != nil {
			input.Instagram = payload.Instagram
		}
		if payload.Latitude != nil {
			input.Latitude = payload.Latitude
		}
		if payload.Longitude != nil {
			input.Longitude = payload.Longitude
		}
		if err := h.salons.Update(r.Context(), input); err != nil {
			WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível atualizar o salão", nil)
			return
		}
	}

	WriteJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// AdminDeleteSalon exclui o salão definitivamente.
func (h *Handler) AdminDeleteSalon(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	if err := h.salons.Delete(r.Context(), id); err != nil {
		if errors.Is(err, salon.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "NOT_FOUND", "salão não encontrado", nil)
			return
		}
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível excluir o salão", nil)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// AdminListTreatments lista o catálogo completo, inclusive inativos.
func (h *Handler) AdminListTreatments(w http.ResponseWriter, r *http.Request) {
	treatments, err := h.catalog.ListTreatments(r.Context(), false)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível listar tratamentos", nil)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"treatments": treatments, "total": len(treatments)})
}

// AdminCreateTreatment cadastra um tratamento no catálogo global.
func (h *Handler) AdminCreateTreatment(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		CategoryID      uuid.UUID `json:"category_id"`
		Name            string    `json:"name"`
		Description     *string   `json:"description"`
		DurationMinutes *int      `json:"duration_minutes"`
		BasePrice       float64   `json:"base_price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido", nil)
		return
	}
	if payload.Name == "" || payload.CategoryID == uuid.Nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "nome e categoria são obrigatórios", nil)
		return
	}
	if payload.BasePrice < 0 {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "preço não pode ser negativo", nil)
		return
	}

	created, err := h.catalog.CreateTreatment(r.Context(), catalog.Treatment{
		CategoryID:      payload.CategoryID,
		Name:            payload.Name,
		Description:     payload.Description,
		DurationMinutes: payload.DurationMinutes,
		BasePrice:       payload.BasePrice,
	})
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível criar o tratamento", nil)
		return
	}

	WriteJSON(w, http.StatusCreated, created)
}

// AdminUpdateTreatment atualiza um tratamento do catálogo.
func (h *Handler) AdminUpdateTreatment(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var payload struct {
		CategoryID      uuid.UUID `json:"category_id"`
		Name            string    `json:"name"`
		Description     *string   `json:"description"`
		DurationMinutes *int      `json:"duration_minutes"`
		BasePrice       float64   `json:"base_price"`
		IsActive        bool      `json:"is_active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido", nil)
		return
	}
	if payload.Name == "" || payload.CategoryID == uuid.Nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "nome e categoria são obrigatórios", nil)
		return
	}

	err := h.catalog.UpdateTreatment(r.Context(), catalog.Treatment{
		ID:              id,
		CategoryID:      payload.CategoryID,
		Name:            payload.Name,
		Description:     payload.Description,
		DurationMinutes: payload.DurationMinutes,
		BasePrice:       payload.BasePrice,
		IsActive:        payload.IsActive,
	})
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "NOT_FOUND", "tratamento não encontrado", nil)
			return
		}
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível atualizar o tratamento", nil)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// AdminDeleteTreatment remove o tratamento e suas ofertas (cascata).
func (h *Handler) AdminDeleteTreatment(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	if err := h.catalog.DeleteTreatment(r.Context(), id); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "NOT_FOUND", "tratamento não encontrado", nil)
			return
		}
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível excluir o tratamento", nil)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// AdminListCategories lista as categorias na ordem do cardápio.
func (h *Handler) AdminListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.ListCategories(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível listar categorias", nil)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"categories": categories, "total": len(categories)})
}

// AdminCreateCategory cadastra uma categoria do cardápio.
func (h *Handler) AdminCreateCategory(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name      string `json:"name"`
		SortOrder int    `json:"sort_order"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido", nil)
		return
	}
	if payload.Name == "" {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "nome é obrigatório", nil)
		return
	}

	created, err := h.catalog.CreateCategory(r.Context(), payload.Name, payload.SortOrder)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível criar a categoria", nil)
		return
	}

	WriteJSON(w, http.StatusCreated, created)
}

// AdminUpdateCategory renomeia ou reordena uma categoria.
func (h *Handler) AdminUpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var payload struct {
		Name      string `json:"name"`
		SortOrder int    `json:"sort_order"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido", nil)
		return
	}
	if payload.Name == "" {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "nome é obrigatório", nil)
		return
	}

	err := h.catalog.UpdateCategory(r.Context(), catalog.Category{
		ID:        id,
		Name:      payload.Name,
		SortOrder: payload.SortOrder,
	})
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "NOT_FOUND", "categoria não encontrada", nil)
			return
		}
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível atualizar a categoria", nil)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// AdminDeleteCategory exclui a categoria; tratamentos dela ficam órfãos de
// cardápio até serem recategorizados.
func (h *Handler) AdminDeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	if err := h.catalog.DeleteCategory(r.Context(), id); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "NOT_FOUND", "categoria não encontrada", nil)
			return
		}
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível excluir a categoria", nil)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// AdminListBanners lista os banners de um salão, inclusive inativos.
func (h *Handler) AdminListBanners(w http.ResponseWriter, r *http.Request) {
	salonID, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	banners, err := h.catalog.ListBanners(r.Context(), salonID, false)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível listar banners", nil)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"banners": banners, "total": len(banners)})
}

// AdminCreateBanner cadastra um banner promocional no salão.
func (h *Handler) AdminCreateBanner(w http.ResponseWriter, r *http.Request) {
	salonID, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var payload struct {
		ImageURL  string  `json:"image_url"`
		LinkURL   *string `json:"link_url"`
		SortOrder int     `json:"sort_order"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido", nil)
		return
	}
	if payload.ImageURL == "" {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "image_url é obrigatório", nil)
		return
	}

	created, err := h.catalog.CreateBanner(r.Context(), catalog.Banner{
		SalonID:   salonID,
		ImageURL:  payload.ImageURL,
		LinkURL:   payload.LinkURL,
		SortOrder: payload.SortOrder,
		IsActive:  true,
	})
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível criar o banner", nil)
		return
	}

	WriteJSON(w, http.StatusCreated, created)
}

// AdminUpdateBanner atualiza imagem, link, ordem e ativação de um banner.
func (h *Handler) AdminUpdateBanner(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var payload struct {
		ImageURL  string  `json:"image_url"`
		LinkURL   *string `json:"link_url"`
		SortOrder int     `json:"sort_order"`
		IsActive  bool    `json:"is_active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido", nil)
		return
	}
	if payload.ImageURL == "" {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "image_url é obrigatório", nil)
		return
	}

	err := h.catalog.UpdateBanner(r.Context(), catalog.Banner{
		ID:        id,
		ImageURL:  payload.ImageURL,
		LinkURL:   payload.LinkURL,
		SortOrder: payload.SortOrder,
		IsActive:  payload.IsActive,
	})
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "NOT_FOUND", "banner não encontrado", nil)
			return
		}
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível atualizar o banner", nil)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// AdminDeleteBanner exclui o banner.
func (h *Handler) AdminDeleteBanner(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	if err := h.catalog.DeleteBanner(r.Context(), id); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "NOT_FOUND", "banner não encontrado", nil)
			return
		}
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível excluir o banner", nil)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
