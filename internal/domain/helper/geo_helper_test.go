package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"GeradorRoles-App/internal/domain/model"
)

var (
	saoPaulo = model.Location{Latitude: -23.5505, Longitude: -46.6333}
	santos   = model.Location{Latitude: -23.9618, Longitude: -46.3322}
)

func TestDistanceKm(t *testing.T) {
	t.Run("São Paulo a Santos fica perto de 55km em linha reta", func(t *testing.T) {
		assert.InDelta(t, 55.0, DistanceKm(saoPaulo, santos), 3.0)
	})

	t.Run("mesmo ponto dá zero", func(t *testing.T) {
		assert.InDelta(t, 0.0, DistanceKm(saoPaulo, saoPaulo), 0.001)
	})

	t.Run("é simétrica", func(t *testing.T) {
		assert.InDelta(t, DistanceKm(saoPaulo, santos), DistanceKm(santos, saoPaulo), 0.001)
	})
}

func TestRoadDistanceKm(t *testing.T) {
	from := &model.Destination{Name: "São Paulo", Location: &saoPaulo}
	to := &model.Destination{Name: "Santos", Location: &santos}

	t.Run("aplica o fator de sinuosidade sobre a linha reta", func(t *testing.T) {
		road := RoadDistanceKm(from, to)
		straight := DistanceKm(saoPaulo, santos)
		assert.Greater(t, road, straight)
		assert.InDelta(t, straight*1.3, road, 1.0)
	})

	t.Run("destino sem coordenadas dá zero", func(t *testing.T) {
		assert.Equal(t, 0.0, RoadDistanceKm(from, &model.Destination{Name: "Sem GPS"}))
		assert.Equal(t, 0.0, RoadDistanceKm(nil, to))
	})
}
