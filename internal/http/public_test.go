package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/guiabeleza/salao/internal/catalog"
	"github.com/guiabeleza/salao/internal/geo"
	"github.com/guiabeleza/salao/internal/salon"
)

type stubDirectory struct {
	resolveFn    func(ctx context.Context, slug string) (*salon.Salon, error)
	nearbyFn     func(ctx context.Context, user *geo.Point, radius geo.Radius) ([]salon.Nearby, error)
	getByOwnerFn func(ctx context.Context, ownerID uuid.UUID) (*salon.Salon, error)
}

var errStubNotWired = errors.New("stub sem implementação")

func (s *stubDirectory) Resolve(ctx context.Context, slug string) (*salon.Salon, error) {
	if s.resolveFn == nil {
		return nil, errStubNotWired
	}
	return s.resolveFn(ctx, slug)
}

func (s *stubDirectory) Nearby(ctx context.Context, user *geo.Point, radius geo.Radius) ([]salon.Nearby, error) {
	if s.nearbyFn == nil {
		return nil, errStubNotWired
	}
	return s.nearbyFn(ctx, user, radius)
}

func (s *stubDirectory) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*salon.Salon, error) {
	if s.getByOwnerFn == nil {
		return nil, errStubNotWired
	}
	return s.getByOwnerFn(ctx, ownerID)
}

func (s *stubDirectory) Get(context.Context, uuid.UUID) (*salon.Salon, error) {
	return nil, errStubNotWired
}

func (s *stubDirectory) List(context.Context, bool) ([]salon.Salon, error) {
	return nil, errStubNotWired
}

func (s *stubDirectory) Create(context.Context, salon.CreateSalonInput) (*salon.Salon, error) {
	return nil, errStubNotWired
}

func (s *stubDirectory) Update(context.Context, salon.UpdateSalonInput) error { return errStubNotWired }

func (s *stubDirectory) UpdatePhoto(context.Context, uuid.UUID, string) error {
	return errStubNotWired
}

func (s *stubDirectory) UpdatePlan(context.Context, uuid.UUID, string) error { return errStubNotWired }

func (s *stubDirectory) SetActive(context.Context, uuid.UUID, bool) error { return errStubNotWired }

func (s *stubDirectory) Delete(context.Context, uuid.UUID) error { return errStubNotWired }

type stubMenu struct {
	buildFn func(ctx context.Context, sal *salon.Salon) (*catalog.Menu, error)
}

func (s *stubMenu) BuildMenu(ctx context.Context, sal *salon.Salon) (*catalog.Menu, error) {
	if s.buildFn == nil {
		return nil, errStubNotWired
	}
	return s.buildFn(ctx, sal)
}

func newPublicRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/salons", h.ListSalons)
	r.Get("/menu/{slug}", h.Menu)
	return r
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("resposta não é JSON: %v", err)
	}
	return envelope
}

func TestListSalonsPassesLocationAndRadius(t *testing.T) {
	var gotUser *geo.Point
	var gotRadius geo.Radius

	dist := 3.2
	dir := &stubDirectory{
		nearbyFn: func(_ context.Context, user *geo.Point, radius geo.Radius) ([]salon.Nearby, error) {
			gotUser = user
			gotRadius = radius
			return []salon.Nearby{
				{
					Salon:      salon.Salon{Name: "Studio Ana", Slug: "studio-ana-1"},
					Location:   geo.Point{Lat: -23.5, Lng: -46.6},
					DistanceKm: &dist,
				},
			}, nil
		},
	}
	h := &Handler{salons: dir}

	req := httptest.NewRequest(http.MethodGet, "/salons?lat=-23.55&lng=-46.63&radius=50", nil)
	rec := httptest.NewRecorder()
	newPublicRouter(h).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, esperado 200", rec.Code)
	}
	if gotUser == nil || gotUser.Lat != -23.55 || gotUser.Lng != -46.63 {
		t.Fatalf("posição repassada errada: %+v", gotUser)
	}
	if gotRadius.All || gotRadius.Km != 50 {
		t.Fatalf("raio repassado errado: %+v", gotRadius)
	}

	var data struct {
		Total  int           `json:"total"`
		Salons []salon.Nearby `json:"salons"`
	}
	envelope := decodeEnvelope(t, rec)
	if err := json.Unmarshal(envelope["data"], &data); err != nil {
		t.Fatalf("data inválido: %v", err)
	}
	if data.Total != 1 || len(data.Salons) != 1 {
		t.Fatalf("esperava 1 salão, veio %d", data.Total)
	}
	if data.Salons[0].DistanceKm == nil || *data.Salons[0].DistanceKm != 3.2 {
		t.Fatalf("distância não serializada: %+v", data.Salons[0])
	}
}

func TestListSalonsWithoutLocation(t *testing.T) {
	dir := &stubDirectory{
		nearbyFn: func(_ context.Context, user *geo.Point, radius geo.Radius) ([]salon.Nearby, error) {
			if user != nil {
				t.Fatalf("sem lat/lng o usuário deveria ser nil, veio %+v", user)
			}
			if !radius.All {
				t.Fatalf("sem raio a busca deveria ser irrestrita")
			}
			return []salon.Nearby{}, nil
		},
	}
	h := &Handler{salons: dir}

	req := httptest.NewRequest(http.MethodGet, "/salons", nil)
	rec := httptest.NewRecorder()
	newPublicRouter(h).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, esperado 200", rec.Code)
	}
}

func TestListSalonsRejectsHalfLocation(t *testing.T) {
	h := &Handler{salons: &stubDirectory{}}

	req := httptest.NewRequest(http.MethodGet, "/salons?lat=-23.55", nil)
	rec := httptest.NewRecorder()
	newPublicRouter(h).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, esperado 400", rec.Code)
	}
}

func TestMenuBySlug(t *testing.T) {
	sal := &salon.Salon{ID: uuid.New(), Name: "Espaço Bela Flor", Slug: "espaco-bela-flor-1", IsActive: true}
	dir := &stubDirectory{
		resolveFn: func(_ context.Context, slug string) (*salon.Salon, error) {
			if slug != sal.Slug {
				return nil, salon.ErrNotFound
			}
			return sal, nil
		},
	}
	menu := &stubMenu{
		buildFn: func(_ context.Context, got *salon.Salon) (*catalog.Menu, error) {
			if got != sal {
				t.Fatalf("cardápio montado para outro salão")
			}
			return &catalog.Menu{Salon: sal, Sections: []catalog.MenuSection{}}, nil
		},
	}
	h := &Handler{salons: dir, menu: menu}
	router := newPublicRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/menu/espaco-bela-flor-1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, esperado 200", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/menu/nao-existe", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("slug desconhecido: status = %d, esperado 404", rec.Code)
	}
}

func TestParseLocation(t *testing.T) {
	tests := []struct {
		name    string
		lat     string
		lng     string
		want    *geo.Point
		wantErr bool
	}{
		{name: "vazio", lat: "", lng: "", want: nil},
		{name: "completo", lat: "-23.55", lng: "-46.63", want: &geo.Point{Lat: -23.55, Lng: -46.63}},
		{name: "só lat", lat: "-23.55", lng: "", wantErr: true},
		{name: "só lng", lat: "", lng: "-46.63", wantErr: true},
		{name: "lat não numérica", lat: "abc", lng: "-46.63", wantErr: true},
		{name: "lat fora do limite", lat: "91", lng: "0", wantErr: true},
		{name: "lng fora do limite", lat: "0", lng: "-181", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseLocation(tt.lat, tt.lng)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("esperava erro, veio %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("erro inesperado: %v", err)
			}
			if tt.want == nil {
				if got != nil {
					t.Fatalf("esperava nil, veio %+v", got)
				}
				return
			}
			if got == nil || got.Lat != tt.want.Lat || got.Lng != tt.want.Lng {
				t.Fatalf("ponto = %+v, esperado %+v", got, tt.want)
			}
		})
	}
}
