package geo

import (
	"math"
	"testing"
)

func TestResolveDeterministic(t *testing.T) {
	ids := []string{"a", "salon-123", "7b0c9f4e-1d2a-4c3b-9e8f-001122334455", ""}
	for _, id := range ids {
		first := Resolve(Candidate{ID: id, City: "Campinas"})
		second := Resolve(Candidate{ID: id, City: "Campinas"})
		if first != second {
			t.Fatalf("id %q: coordenada variou entre chamadas: %v vs %v", id, first, second)
		}
	}
}

func TestResolvePassThrough(t *testing.T) {
	lat, lng := -23.5505, -46.6333
	got := Resolve(Candidate{ID: "x", City: "Manaus", Latitude: &lat, Longitude: &lng})
	if got.Lat != lat || got.Lng != lng {
		t.Fatalf("coordenada real deveria passar intacta, veio %v", got)
	}
}

func TestResolveIgnoresZeroCoordinates(t *testing.T) {
	zero := 0.0
	got := Resolve(Candidate{ID: "x", City: "manaus", Latitude: &zero, Longitude: &zero})
	base := cityCoordinates["manaus"]
	if math.Abs(got.Lat-base.Lat) > cityJitter/2 || math.Abs(got.Lng-base.Lng) > cityJitter/2 {
		t.Fatalf("(0,0) deveria cair no resolvedor de cidade, veio %v", got)
	}
}

func TestResolveCityJitterBound(t *testing.T) {
	base := cityCoordinates["são paulo"]
	ids := []string{"1", "2", "abc", "salon-9f", "zzzzzzzz", "áéíóú"}
	for _, id := range ids {
		got := Resolve(Candidate{ID: id, City: "São Paulo"})
		if math.Abs(got.Lat-base.Lat) > 0.025 || math.Abs(got.Lng-base.Lng) > 0.025 {
			t.Fatalf("id %q fora do jitter de cidade: %v (base %v)", id, got, base)
		}
	}
}

func TestResolveStateFallback(t *testing.T) {
	capital := stateCapitals["BA"]
	got := Resolve(Candidate{ID: "any", City: "cidade inexistente", State: "ba"})
	if math.Abs(got.Lat-capital.Lat) > 0.5 || math.Abs(got.Lng-capital.Lng) > 0.5 {
		t.Fatalf("fallback de estado fora da amplitude: %v (capital %v)", got, capital)
	}
}

func TestResolveCountryFallback(t *testing.T) {
	got := Resolve(Candidate{ID: "any"})
	if math.Abs(got.Lat-brazilCentroid.Lat) > 2.5 || math.Abs(got.Lng-brazilCentroid.Lng) > 2.5 {
		t.Fatalf("fallback de país fora da amplitude: %v", got)
	}
}

func TestHashStringRolling(t *testing.T) {
	// h("ab") = 'a'*31 + 'b' com wraparound de 32 bits.
	if got := hashString("ab"); got != 97*31+98 {
		t.Fatalf("hash de \"ab\" = %d", got)
	}
	if hashString("abc") == hashString("acb") {
		t.Fatal("hash não deveria ser comutativo")
	}
}
