package geo

import (
	"math"
	"strconv"
	"strings"
)

// earthRadiusKm é o raio médio da Terra usado no cálculo de Haversine.
const earthRadiusKm = 6371.0

// Point representa uma coordenada geográfica (WGS 84).
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// DistanceKm calcula a distância de grande círculo entre dois pontos
// (fórmula de Haversine), em quilômetros.
func DistanceKm(a, b Point) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// Radius representa o raio de busca escolhido pela visitante.
type Radius struct {
	Km  float64
	All bool
}

// ParseRadius interpreta o parâmetro de raio ("50", "100" ou "all").
// Valores vazios ou não numéricos caem em busca sem limite.
func ParseRadius(raw string) Radius {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" || raw == "all" {
		return Radius{All: true}
	}
	km, err := strconv.ParseFloat(raw, 64)
	if err != nil || km <= 0 {
		return Radius{All: true}
	}
	return Radius{Km: km}
}
