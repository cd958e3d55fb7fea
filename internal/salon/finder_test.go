package salon

import (
	"testing"

	"github.com/google/uuid"

	"github.com/guiabeleza/salao/internal/geo"
)

func floatPtr(f float64) *float64 { return &f }
func strPtr(s string) *string     { return &s }

func nearbyWith(name string, distance *float64) Nearby {
	return Nearby{
		Salon:      Salon{ID: uuid.New(), Name: name},
		DistanceKm: distance,
	}
}

func TestFilterByRadiusPermissive(t *testing.T) {
	user := &geo.Point{Lat: -23.55, Lng: -46.63}
	items := []Nearby{
		nearbyWith("A", floatPtr(10)),
		nearbyWith("B", floatPtr(60)),
		nearbyWith("C", nil),
	}

	got := FilterByRadius(items, user, geo.ParseRadius("50"))
	if len(got) != 2 || got[0].Name != "A" || got[1].Name != "C" {
		names := make([]string, 0, len(got))
		for _, g := range got {
			names = append(names, g.Name)
		}
		t.Fatalf("raio 50 deveria manter [A C], veio %v", names)
	}
}

func TestFilterByRadiusAll(t *testing.T) {
	items := []Nearby{nearbyWith("A", floatPtr(999)), nearbyWith("B", nil)}
	got := FilterByRadius(items, nil, geo.ParseRadius("all"))
	if len(got) != 2 {
		t.Fatalf("raio all não deveria excluir ninguém, sobraram %d", len(got))
	}
}

func TestFilterByRadiusWithoutUserLocation(t *testing.T) {
	items := []Nearby{nearbyWith("A", floatPtr(400))}
	got := FilterByRadius(items, nil, geo.ParseRadius("50"))
	if len(got) != 1 {
		t.Fatal("sem localização da visitante nada pode ser escondido")
	}
}

func TestSortByProximity(t *testing.T) {
	user := &geo.Point{Lat: -23.55, Lng: -46.63}
	items := []Nearby{
		nearbyWith("Zeta", floatPtr(5)),
		nearbyWith("Alpha", floatPtr(2)),
		nearbyWith("Beta", nil),
	}

	SortByProximity(items, user)
	if items[0].Name != "Alpha" || items[1].Name != "Zeta" {
		t.Fatalf("ordenação por distância falhou: %s, %s", items[0].Name, items[1].Name)
	}
}

func TestSortByProximityNameFallback(t *testing.T) {
	items := []Nearby{nearbyWith("Zeta", nil), nearbyWith("Alpha", nil)}
	SortByProximity(items, nil)
	if items[0].Name != "Alpha" || items[1].Name != "Zeta" {
		t.Fatalf("sem localização a ordem deveria ser alfabética: %s, %s", items[0].Name, items[1].Name)
	}
}

func TestComputeDistancesRecomputesOnLocationChange(t *testing.T) {
	sp := geo.Point{Lat: -23.5505, Lng: -46.6333}
	rio := geo.Point{Lat: -22.9068, Lng: -43.1729}
	items := []Nearby{{
		Salon:    Salon{ID: uuid.New(), Name: "Studio", City: strPtr("são paulo")},
		Location: sp,
	}}

	ComputeDistances(items, nil)
	if items[0].DistanceKm != nil {
		t.Fatal("sem localização não há distância")
	}

	ComputeDistances(items, &rio)
	if items[0].DistanceKm == nil || *items[0].DistanceKm < 357 || *items[0].DistanceKm > 362 {
		t.Fatalf("distância deveria ser recalculada para ~360 km, veio %v", items[0].DistanceKm)
	}
}
