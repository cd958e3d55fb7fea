package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/guiabeleza/salao/internal/cep"
	"github.com/guiabeleza/salao/internal/geo"
	"github.com/guiabeleza/salao/internal/salon"
)

// ListSalons devolve a vitrine pública ordenada por proximidade. lat/lng são
// opcionais: sem posição, a listagem sai em ordem alfabética e o raio não
// esconde ninguém.
func (h *Handler) ListSalons(w http.ResponseWriter, r *http.Request) {
	user, err := parseLocation(r.URL.Query().Get("lat"), r.URL.Query().Get("lng"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", err.Error(), nil)
		return
	}
	radius := geo.ParseRadius(r.URL.Query().Get("radius"))

	items, err := h.salons.Nearby(r.Context(), user, radius)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível listar salões", nil)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"salons": items,
		"total":  len(items),
	})
}

// Menu devolve o cardápio digital completo de um salão pelo slug.
func (h *Handler) Menu(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimSpace(chi.URLParam(r, "slug"))
	if slug == "" {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "slug ausente", nil)
		return
	}

	sal, err := h.salons.Resolve(r.Context(), slug)
	if err != nil {
		if errors.Is(err, salon.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "NOT_FOUND", "salão não encontrado", nil)
			return
		}
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível carregar o salão", nil)
		return
	}

	menu, err := h.menu.BuildMenu(r.Context(), sal)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível montar o cardápio", nil)
		return
	}

	WriteJSON(w, http.StatusOK, menu)
}

// LookupCEP consulta o endereço de um CEP no ViaCEP.
func (h *Handler) LookupCEP(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	addr, err := h.cep.Lookup(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, cep.ErrInvalidCEP):
			WriteError(w, http.StatusBadRequest, "VALIDATION", "cep inválido", nil)
		case errors.Is(err, cep.ErrNotFound):
			WriteError(w, http.StatusNotFound, "NOT_FOUND", "cep não encontrado", nil)
		default:
			WriteError(w, http.StatusBadGateway, "UPSTREAM", "não foi possível consultar o cep", nil)
		}
		return
	}

	WriteJSON(w, http.StatusOK, addr)
}

// parseLocation interpreta lat/lng da query. Ambos precisam vir juntos e
// dentro dos limites geográficos.
func parseLocation(latStr, lngStr string) (*geo.Point, error) {
	latStr = strings.TrimSpace(latStr)
	lngStr = strings.TrimSpace(lngStr)
	if latStr == "" && lngStr == "" {
		return nil, nil
	}
	if latStr == "" || lngStr == "" {
		return nil, errors.New("lat e lng devem ser informados juntos")
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return nil, errors.New("lat inválida")
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return nil, errors.New("lng inválida")
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, errors.New("coordenadas fora dos limites")
	}

	return &geo.Point{Lat: lat, Lng: lng}, nil
}
