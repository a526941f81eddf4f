package helper

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"GeradorRoles-App/internal/domain/model"
)

// DistanceKm calcula a distância em linha reta entre duas coordenadas (km)
func DistanceKm(a, b model.Location) float64 {
	p1 := orb.Point{a.Longitude, a.Latitude}
	p2 := orb.Point{b.Longitude, b.Latitude}
	return geo.DistanceHaversine(p1, p2) / 1000.0
}

// RoadDistanceKm estima a distância rodoviária entre dois destinos a partir
// das coordenadas, aplicando um fator de sinuosidade sobre a linha reta.
// Retorna 0 quando algum dos destinos não tem coordenadas.
func RoadDistanceKm(from, to *model.Destination) float64 {
	if from == nil || to == nil || !from.HasLocation() || !to.HasLocation() {
		return 0
	}
	// estradas raramente são retas; 1.3 aproxima o traçado real
	return math.Round(DistanceKm(*from.Location, *to.Location) * 1.3)
}
