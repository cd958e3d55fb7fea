package geo

import (
	"math"
	"strings"
)

// Amplitudes de jitter por nível de precisão da origem do ponto.
// Cidade conhecida: ±2,5 km; só o estado: ±50 km; nada: ±250 km.
const (
	cityJitter    = 0.05
	stateJitter   = 1.0
	countryJitter = 5.0
)

// brazilCentroid é o ponto usado quando nem cidade nem estado são conhecidos.
var brazilCentroid = Point{Lat: -15.7942, Lng: -47.8825}

// Candidate descreve os dados de localização conhecidos de um salão.
// Latitude/Longitude só são considerados quando ambos existem e não são zero.
type Candidate struct {
	ID        string
	City      string
	State     string
	Latitude  *float64
	Longitude *float64
}

// Resolve produz uma coordenada estável para o candidato. Coordenadas reais
// passam intactas; sem elas, a cidade (ou capital do estado, ou o centróide
// do país) ancora o ponto e um deslocamento determinístico derivado do ID
// evita que salões co-localizados se sobreponham no mapa.
//
// A função é pura: mesmo ID + mesma cidade/estado sempre devolvem o mesmo
// ponto, sem chamadas de rede e sem caminho de erro.
func Resolve(c Candidate) Point {
	if c.Latitude != nil && c.Longitude != nil {
		lat, lng := *c.Latitude, *c.Longitude
		if validCoordinate(lat, lng) {
			return Point{Lat: lat, Lng: lng}
		}
	}

	h := hashString(c.ID)

	if city, ok := cityCoordinates[normalizeName(c.City)]; ok {
		return jitter(city, h, cityJitter)
	}

	if capital, ok := stateCapitals[normalizeState(c.State)]; ok {
		return jitter(capital, h, stateJitter)
	}

	return jitter(brazilCentroid, h, countryJitter)
}

// hashString implementa o rolling hash 31 clássico com wraparound de 32 bits.
// Não é criptográfico; só precisa ser estável entre execuções.
func hashString(s string) uint32 {
	var h uint32
	for _, c := range s {
		h = h*31 + uint32(c)
	}
	return h
}

func jitter(base Point, h uint32, amplitude float64) Point {
	dLat := (float64(h%1000)/1000 - 0.5) * amplitude
	dLng := (float64((h>>10)%1000)/1000 - 0.5) * amplitude
	return Point{Lat: base.Lat + dLat, Lng: base.Lng + dLng}
}

func validCoordinate(lat, lng float64) bool {
	if lat == 0 && lng == 0 {
		return false
	}
	if math.IsNaN(lat) || math.IsNaN(lng) {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func normalizeState(uf string) string {
	return strings.ToUpper(strings.TrimSpace(uf))
}
