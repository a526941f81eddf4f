package model

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeOfDay representa um horário no formato HH:MM (sem data, sem fuso)
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay converte uma string "HH:MM" em TimeOfDay
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return TimeOfDay{}, fmt.Errorf("horário inválido: %q (esperado HH:MM)", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return TimeOfDay{}, fmt.Errorf("hora inválida em %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("minuto inválido em %q", s)
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// String formata o horário como "HH:MM"
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// MinutesOfDay retorna o horário em minutos desde a meia-noite
func (t TimeOfDay) MinutesOfDay() int {
	return t.Hour*60 + t.Minute
}

// AddMinutes soma minutos ao horário, dando a volta à meia-noite quando necessário
func (t TimeOfDay) AddMinutes(minutes int) TimeOfDay {
	total := (t.MinutesOfDay() + minutes) % (24 * 60)
	if total < 0 {
		total += 24 * 60
	}
	return TimeOfDay{Hour: total / 60, Minute: total % 60}
}

// RidingProfile é o perfil de pilotagem informado pelo usuário
type RidingProfile string

const (
	ProfileConservative RidingProfile = "conservador"
	ProfileModerate     RidingProfile = "moderado"
	ProfileSporty       RidingProfile = "esportivo"
)

// TripRequest é o objeto de valor imutável com as condições do rolê desejado.
// É construído uma vez por submissão via NewTripRequest e não deve ser alterado.
type TripRequest struct {
	StartAddress          string
	DepartureTime         TimeOfDay
	ReturnTime            TimeOfDay
	TankCapacityLiters    float64
	FuelEconomyKmPerLiter float64
	RidingProfile         RidingProfile
	DesiredExperience     string
	BudgetBRL             *float64
}

// TripRequestPayload é o corpo JSON recebido pela API (horários como string)
type TripRequestPayload struct {
	StartAddress          string   `json:"endereco_partida"`
	DepartureTime         string   `json:"horario_saida"`
	ReturnTime            string   `json:"horario_retorno"`
	TankCapacityLiters    float64  `json:"capacidade_tanque_litros"`
	FuelEconomyKmPerLiter float64  `json:"consumo_km_por_litro"`
	RidingProfile         string   `json:"perfil_pilotagem"`
	DesiredExperience     string   `json:"experiencia_desejada"`
	BudgetBRL             *float64 `json:"orcamento_brl"`
}

// NewTripRequest valida e normaliza o payload em um TripRequest completo.
// Uma requisição incompleta é rejeitada com *RequestIncompleteError.
func NewTripRequest(p *TripRequestPayload) (*TripRequest, error) {
	var missing []string

	if strings.TrimSpace(p.StartAddress) == "" {
		missing = append(missing, "endereco_partida")
	}
	if strings.TrimSpace(p.DepartureTime) == "" {
		missing = append(missing, "horario_saida")
	}
	if strings.TrimSpace(p.ReturnTime) == "" {
		missing = append(missing, "horario_retorno")
	}
	if p.TankCapacityLiters <= 0 {
		missing = append(missing, "capacidade_tanque_litros")
	}
	if p.FuelEconomyKmPerLiter <= 0 {
		missing = append(missing, "consumo_km_por_litro")
	}
	if strings.TrimSpace(p.DesiredExperience) == "" {
		missing = append(missing, "experiencia_desejada")
	}
	if len(missing) > 0 {
		return nil, &RequestIncompleteError{Fields: missing}
	}

	departure, err := ParseTimeOfDay(p.DepartureTime)
	if err != nil {
		return nil, &RequestIncompleteError{Fields: []string{"horario_saida"}}
	}
	ret, err := ParseTimeOfDay(p.ReturnTime)
	if err != nil {
		return nil, &RequestIncompleteError{Fields: []string{"horario_retorno"}}
	}

	profile := RidingProfile(strings.ToLower(strings.TrimSpace(p.RidingProfile)))
	switch profile {
	case ProfileConservative, ProfileModerate, ProfileSporty:
	default:
		profile = ProfileModerate
	}

	return &TripRequest{
		StartAddress:          strings.TrimSpace(p.StartAddress),
		DepartureTime:         departure,
		ReturnTime:            ret,
		TankCapacityLiters:    p.TankCapacityLiters,
		FuelEconomyKmPerLiter: p.FuelEconomyKmPerLiter,
		RidingProfile:         profile,
		DesiredExperience:     strings.TrimSpace(p.DesiredExperience),
		BudgetBRL:             p.BudgetBRL,
	}, nil
}

// AvailableMinutes retorna a janela de tempo disponível em minutos,
// dando a volta à meia-noite quando o retorno é antes da saída
func (r *TripRequest) AvailableMinutes() int {
	diff := r.ReturnTime.MinutesOfDay() - r.DepartureTime.MinutesOfDay()
	if diff < 0 {
		diff += 24 * 60
	}
	return diff
}

// AvailableHours retorna a janela de tempo disponível em horas
func (r *TripRequest) AvailableHours() float64 {
	return float64(r.AvailableMinutes()) / 60.0
}

// RangeKm retorna a autonomia estimada com um tanque cheio
func (r *TripRequest) RangeKm() float64 {
	return r.TankCapacityLiters * r.FuelEconomyKmPerLiter
}

// VehicleClassDescription classifica a moto em uma faixa de cilindrada a partir
// do consumo informado. Uso puramente narrativo no prompt, sem efeito nos custos.
func (r *TripRequest) VehicleClassDescription() string {
	switch {
	case r.FuelEconomyKmPerLiter <= 18:
		return "moto de alta cilindrada (1000cc+)"
	case r.FuelEconomyKmPerLiter <= 25:
		return "moto de média-alta cilindrada (600-800cc)"
	case r.FuelEconomyKmPerLiter <= 35:
		return "moto de média cilindrada (250-400cc)"
	default:
		return "moto de baixa cilindrada (125-150cc)"
	}
}

// BudgetDescription descreve o orçamento para uso no prompt
func (r *TripRequest) BudgetDescription() string {
	if r.BudgetBRL == nil {
		return "sem limite definido"
	}
	return fmt.Sprintf("R$ %.2f", *r.BudgetBRL)
}
