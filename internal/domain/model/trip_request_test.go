package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPayload() *TripRequestPayload {
	return &TripRequestPayload{
		StartAddress:          "Penha, SP",
		DepartureTime:         "08:00",
		ReturnTime:            "18:00",
		TankCapacityLiters:    17,
		FuelEconomyKmPerLiter: 22,
		RidingProfile:         "moderado",
		DesiredExperience:     "café da manhã",
	}
}

func TestNewTripRequest(t *testing.T) {
	t.Run("payload completo é aceito", func(t *testing.T) {
		req, err := NewTripRequest(validPayload())
		require.NoError(t, err)
		assert.Equal(t, "Penha, SP", req.StartAddress)
		assert.Equal(t, ProfileModerate, req.RidingProfile)
		assert.InDelta(t, 374.0, req.RangeKm(), 0.001)
	})

	t.Run("campos obrigatórios ausentes são rejeitados", func(t *testing.T) {
		payload := validPayload()
		payload.StartAddress = "  "
		payload.DesiredExperience = ""

		_, err := NewTripRequest(payload)
		require.Error(t, err)

		incomplete, ok := err.(*RequestIncompleteError)
		require.True(t, ok, "esperado *RequestIncompleteError, veio %T", err)
		assert.Contains(t, incomplete.Fields, "endereco_partida")
		assert.Contains(t, incomplete.Fields, "experiencia_desejada")
	})

	t.Run("horário malformado é rejeitado", func(t *testing.T) {
		payload := validPayload()
		payload.DepartureTime = "25:99"

		_, err := NewTripRequest(payload)
		require.Error(t, err)

		incomplete, ok := err.(*RequestIncompleteError)
		require.True(t, ok)
		assert.Equal(t, []string{"horario_saida"}, incomplete.Fields)
	})

	t.Run("perfil desconhecido vira moderado", func(t *testing.T) {
		payload := validPayload()
		payload.RidingProfile = "turbo"

		req, err := NewTripRequest(payload)
		require.NoError(t, err)
		assert.Equal(t, ProfileModerate, req.RidingProfile)
	})
}

func TestAvailableHours(t *testing.T) {
	t.Run("janela normal", func(t *testing.T) {
		req, err := NewTripRequest(validPayload())
		require.NoError(t, err)
		assert.InDelta(t, 10.0, req.AvailableHours(), 0.001)
	})

	t.Run("janela que cruza a meia-noite", func(t *testing.T) {
		payload := validPayload()
		payload.DepartureTime = "22:00"
		payload.ReturnTime = "02:00"

		req, err := NewTripRequest(payload)
		require.NoError(t, err)
		assert.InDelta(t, 4.0, req.AvailableHours(), 0.001, "a janela deve dar a volta à meia-noite, nunca ficar negativa")
	})
}

func TestVehicleClassDescription(t *testing.T) {
	cases := []struct {
		economy float64
		want    string
	}{
		{12, "moto de alta cilindrada (1000cc+)"},
		{18, "moto de alta cilindrada (1000cc+)"},
		{22, "moto de média-alta cilindrada (600-800cc)"},
		{30, "moto de média cilindrada (250-400cc)"},
		{40, "moto de baixa cilindrada (125-150cc)"},
	}

	for _, tc := range cases {
		req := &TripRequest{FuelEconomyKmPerLiter: tc.economy}
		assert.Equal(t, tc.want, req.VehicleClassDescription(), "consumo %.0f km/l", tc.economy)
	}
}

func TestTimeOfDay(t *testing.T) {
	t.Run("parse e formatação", func(t *testing.T) {
		tod, err := ParseTimeOfDay("07:05")
		require.NoError(t, err)
		assert.Equal(t, "07:05", tod.String())
	})

	t.Run("soma com volta à meia-noite", func(t *testing.T) {
		tod := TimeOfDay{Hour: 23, Minute: 30}
		assert.Equal(t, "00:15", tod.AddMinutes(45).String())
	})

	t.Run("formatos inválidos", func(t *testing.T) {
		for _, input := range []string{"", "8h30", "12", "12:60", "ab:cd"} {
			_, err := ParseTimeOfDay(input)
			assert.Error(t, err, "entrada %q deveria falhar", input)
		}
	})
}
