package salon

import (
	"sort"

	"github.com/guiabeleza/salao/internal/geo"
)

// Nearby é um salão com coordenada resolvida e, quando a visitante informou
// localização, a distância computada até ela.
type Nearby struct {
	Salon
	Location   geo.Point `json:"location"`
	DistanceKm *float64  `json:"distance_km,omitempty"`
}

// Locate resolve a coordenada de exibição de cada salão. Salões sem
// latitude/longitude reais recebem um ponto sintético estável.
func Locate(salons []Salon) []Nearby {
	items := make([]Nearby, 0, len(salons))
	for _, s := range salons {
		candidate := geo.Candidate{
			ID:        s.ID.String(),
			Latitude:  s.Latitude,
			Longitude: s.Longitude,
		}
		if s.City != nil {
			candidate.City = *s.City
		}
		if s.State != nil {
			candidate.State = *s.State
		}
		items = append(items, Nearby{Salon: s, Location: geo.Resolve(candidate)})
	}
	return items
}

// ComputeDistances recalcula a distância de cada salão até a visitante.
// Sem localização, as distâncias são zeradas (valor derivado, nunca stale).
func ComputeDistances(items []Nearby, user *geo.Point) {
	for i := range items {
		if user == nil {
			items[i].DistanceKm = nil
			continue
		}
		d := geo.DistanceKm(*user, items[i].Location)
		items[i].DistanceKm = &d
	}
}

// FilterByRadius mantém apenas salões dentro do raio. A política é
// permissiva: sem localização da visitante, ou sem distância computada para
// o salão, nada é escondido — falta de informação nunca exclui resultado.
func FilterByRadius(items []Nearby, user *geo.Point, radius geo.Radius) []Nearby {
	if radius.All {
		return items
	}

	filtered := make([]Nearby, 0, len(items))
	for _, item := range items {
		if user == nil || item.DistanceKm == nil || *item.DistanceKm <= radius.Km {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// SortByProximity ordena por distância crescente quando há localização e
// ambos os salões têm distância; caso contrário (e como desempate) ordena
// pelo nome em pt-BR.
func SortByProximity(items []Nearby, user *geo.Point) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if user != nil && a.DistanceKm != nil && b.DistanceKm != nil && *a.DistanceKm != *b.DistanceKm {
			return *a.DistanceKm < *b.DistanceKm
		}
		return geo.CompareNames(a.Name, b.Name) < 0
	})
}
