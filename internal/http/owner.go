package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/guiabeleza/salao/internal/catalog"
	"github.com/guiabeleza/salao/internal/salon"
	"github.com/guiabeleza/salao/internal/storage"
)

const maxPhotoSize = 8 << 20 // 8 MiB

// ownerSalon carrega o salão da dona autenticada.
func (h *Handler) ownerSalon(w http.ResponseWriter, r *http.Request) (*salon.Salon, bool) {
	subject, err := h.subjectUUID(r)
	if err != nil {
		WriteError(w, http.StatusUnauthorized, "AUTH", "identificação inválida", nil)
		return nil, false
	}

	sal, err := h.salons.GetByOwner(r.Context(), subject)
	if err != nil {
		if errors.Is(err, salon.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "NOT_FOUND", "você ainda não tem salão publicado", nil)
			return nil, false
		}
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível carregar o salão", nil)
		return nil, false
	}
	return sal, true
}

// OwnerGetSalon devolve o salão da dona autenticada.
func (h *Handler) OwnerGetSalon(w http.ResponseWriter, r *http.Request) {
	sal, ok := h.ownerSalon(w, r)
	if !ok {
		return
	}
	WriteJSON(w, http.StatusOK, sal)
}

// OwnerCreateSalon cria o salão da dona quando ela ainda não tem um (fluxo
// de autosserviço para contas já aprovadas).
func (h *Handler) OwnerCreateSalon(w http.ResponseWriter, r *http.Request) {
	subject, err := h.subjectUUID(r)
	if err != nil {
		WriteError(w, http.StatusUnauthorized, "AUTH", "identificação inválida", nil)
		return
	}

	if _, err := h.salons.GetByOwner(r.Context(), subject); err == nil {
		WriteError(w, http.StatusConflict, "CONFLICT", "você já tem um salão publicado", nil)
		return
	} else if !errors.Is(err, salon.ErrNotFound) {
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível verificar o salão", nil)
		return
	}

	var payload struct {
		Name       string  `json:"name"`
		Phone      *string `json:"phone"`
		Address    *string `json:"address"`
		City       *string `json:"city"`
		State      *string `json:"state"`
		PostalCode *string `json:"postal_code"`
		Instagram  *string `json:"instagram"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido", nil)
		return
	}
	if payload.Name == "" {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "nome é obrigatório", nil)
		return
	}

	created, err := h.salons.Create(r.Context(), salon.CreateSalonInput{
		OwnerID:    &subject,
		Name:       payload.Name,
		Phone:      payload.Phone,
		Address:    payload.Address,
		City:       payload.City,
		State:      payload.State,
		PostalCode: payload.PostalCode,
		Instagram:  payload.Instagram,
		PlanType:   salon.PlanBasico,
	})
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível criar o salão", nil)
		return
	}

	if err := h.queries.SetProfileHasSalon(r.Context(), subject, true); err != nil {
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível atualizar o perfil", nil)
		return
	}

	WriteJSON(w, http.StatusCreated, created)
}

// OwnerUpdateSalon edita os dados cadastrais do salão da dona.
func (h *Handler) OwnerUpdateSalon(w http.ResponseWriter, r *http.Request) {
	sal, ok := h.ownerSalon(w, r)
	if !ok {
		return
	}

	var payload struct {
		Name       string   `json:"name"`
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
	if payload.Name == "" {
		payload.Name = sal.Name
	}

	err := h.salons.Update(r.Context(), salon.UpdateSalonInput{
		ID:         sal.ID,
		Name:       payload.Name,
		Phone:      payload.Phone,
		Address:    payload.Address,
		City:       payload.City,
		State:      payload.State,
		PostalCode: payload.PostalCode,
		Instagram:  payload.Instagram,
		Latitude:   payload.Latitude,
		Longitude:  payload.Longitude,
	})
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível salvar o salão", nil)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// OwnerUploadPhoto recebe a foto de capa por multipart e grava no bucket.
func (h *Handler) OwnerUploadPhoto(w http.ResponseWriter, r *http.Request) {
	sal, ok := h.ownerSalon(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxPhotoSize); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "arquivo inválido ou grande demais", nil)
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "campo photo ausente", nil)
		return
	}
	defer file.Close()

	body, err := io.ReadAll(io.LimitReader(file, maxPhotoSize))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "não foi possível ler o arquivo", nil)
		return
	}

	result, err := h.storage.Upload(r.Context(), storage.UploadInput{
		Key:          storage.PhotoKey(sal.ID, header.Filename),
		Body:         body,
		ContentType:  header.Header.Get("Content-Type"),
		CacheControl: "public, max-age=86400",
	})
	if err != nil {
		WriteError(w, http.StatusBadGateway, "UPSTREAM", "não foi possível enviar a foto", nil)
		return
	}

	if err := h.salons.UpdatePhoto(r.Context(), sal.ID, result.URL); err != nil {
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível salvar a foto", nil)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"photo_url": result.URL})
}

// OwnerListTreatments lista o catálogo com as ofertas do salão aplicadas.
func (h *Handler) OwnerListTreatments(w http.ResponseWriter, r *http.Request) {
	sal, ok := h.ownerSalon(w, r)
	if !ok {
		return
	}

	treatments, err := h.catalog.ListTreatments(r.Context(), true)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível listar tratamentos", nil)
		return
	}
	overrides, err := h.catalog.ListOverrides(r.Context(), sal.ID)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível listar ofertas", nil)
		return
	}

	overrideByTreatment := make(map[uuid.UUID]*catalog.SalonTreatment, len(overrides))
	for i := range overrides {
		overrideByTreatment[overrides[i].TreatmentID] = &overrides[i]
	}

	type ownerTreatment struct {
		catalog.Treatment
		Offered     bool     `json:"offered"`
		CustomPrice *float64 `json:"custom_price,omitempty"`
		Price       float64  `json:"price"`
	}

	out := make([]ownerTreatment, 0, len(treatments))
	for _, t := range treatments {
		override := overrideByTreatment[t.ID]
		item := ownerTreatment{
			Treatment: t,
			Offered:   override == nil || override.IsActive,
			Price:     catalog.EffectivePrice(t, override),
		}
		if override != nil {
			item.CustomPrice = override.CustomPrice
		}
		out = append(out, item)
	}

	WriteJSON(w, http.StatusOK, map[string]any{"treatments": out})
}

// OwnerUpsertTreatment define preço customizado e disponibilidade de um
// tratamento no salão.
func (h *Handler) OwnerUpsertTreatment(w http.ResponseWriter, r *http.Request) {
	sal, ok := h.ownerSalon(w, r)
	if !ok {
		return
	}

	treatmentID, err := uuid.Parse(chi.URLParam(r, "treatmentID"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "tratamento inválido", nil)
		return
	}

	var payload struct {
		CustomPrice *float64 `json:"custom_price"`
		IsActive    *bool    `json:"is_active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido", nil)
		return
	}
	if payload.CustomPrice != nil && *payload.CustomPrice < 0 {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "preço não pode ser negativo", nil)
		return
	}

	active := true
	if payload.IsActive != nil {
		active = *payload.IsActive
	}

	err = h.catalog.UpsertOverride(r.Context(), catalog.SalonTreatment{
		SalonID:     sal.ID,
		TreatmentID: treatmentID,
		CustomPrice: payload.CustomPrice,
		IsActive:    active,
	})
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível salvar a oferta", nil)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// OwnerDeleteTreatment remove a oferta, voltando ao preço base do catálogo.
func (h *Handler) OwnerDeleteTreatment(w http.ResponseWriter, r *http.Request) {
	sal, ok := h.ownerSalon(w, r)
	if !ok {
		return
	}

	treatmentID, err := uuid.Parse(chi.URLParam(r, "treatmentID"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "tratamento inválido", nil)
		return
	}

	if err := h.catalog.DeleteOverride(r.Context(), sal.ID, treatmentID); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "NOT_FOUND", "oferta não encontrada", nil)
			return
		}
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível remover a oferta", nil)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
