package service

import (
	"fmt"
	"math"
	"strings"

	"GeradorRoles-App/internal/domain/helper"
	"GeradorRoles-App/internal/domain/model"
)

// FallbackGenerator sintetiza roteiros determinísticos e offline a partir da
// tabela estática de destinos. É o caminho usado quando a chamada de geração
// falha ou devolve conteúdo inutilizável: sempre produz exatamente 3 sugestões,
// uma por tier, para a mesma requisição e tabela.
type FallbackGenerator struct {
	destinations []model.Destination
	byTier       map[model.Tier][]model.Destination
}

// NewFallbackGenerator cria o gerador com a tabela de destinos congelada
func NewFallbackGenerator(destinations []model.Destination) *FallbackGenerator {
	byTier := make(map[model.Tier][]model.Destination)
	for _, dest := range destinations {
		byTier[dest.Tier] = append(byTier[dest.Tier], dest)
	}
	return &FallbackGenerator{
		destinations: destinations,
		byTier:       byTier,
	}
}

// cityPairDistancesKm é a tabela de distâncias rodoviárias entre pares de
// destinos conhecidos. Pares ausentes caem na estimativa por coordenadas,
// e por último no padrão de 30km.
var cityPairDistancesKm = map[string]float64{
	pairKey("Embu das Artes", "Itu"):            85,
	pairKey("Embu das Artes", "São Roque"):      45,
	pairKey("Guararema", "Itu"):                 160,
	pairKey("São Roque", "Itu"):                 55,
	pairKey("Santos", "São Vicente"):            10,
	pairKey("Santos", "Guarujá"):                15,
	pairKey("São Roque", "Atibaia"):             95,
	pairKey("Atibaia", "Campos do Jordão"):      130,
	pairKey("Campos do Jordão", "Santo Antônio do Pinhal"): 25,
	pairKey("Campos do Jordão", "Cunha"):        150,
	pairKey("Cunha", "Paraty"):                  45,
}

// pairKey normaliza um par de cidades em uma chave única independente da ordem
func pairKey(a, b string) string {
	na, nb := helper.NormalizeText(a), helper.NormalizeText(b)
	if na > nb {
		na, nb = nb, na
	}
	return na + "|" + nb
}

// Generate produz exatamente 3 sugestões (ECONOMIC, BALANCED, PREMIUM).
// Só falha, com *model.GenerationError, quando a tabela de destinos está vazia.
func (g *FallbackGenerator) Generate(req *model.TripRequest) ([]model.Suggestion, error) {
	if len(g.destinations) == 0 {
		return nil, &model.GenerationError{Reason: "tabela de destinos vazia"}
	}

	suggestions := make([]model.Suggestion, 0, 3)
	for _, tier := range model.GetAllTiers() {
		suggestions = append(suggestions, g.buildSuggestion(req, tier))
	}
	return suggestions, nil
}

// destinationsForTier retorna os destinos do tier; quando o tier não tem
// entradas, empresta a tabela inteira para nunca devolver um roteiro vazio
func (g *FallbackGenerator) destinationsForTier(tier model.Tier) []model.Destination {
	if dests := g.byTier[tier]; len(dests) > 0 {
		return dests
	}
	return g.destinations
}

// maxStopsForWindow limita a quantidade de paradas pela janela de tempo.
// Zero significa sem limite (usa todos os destinos do tier).
func maxStopsForWindow(availableHours float64) int {
	switch {
	case availableHours <= 4:
		return 1
	case availableHours <= 6:
		return 2
	case availableHours <= 8:
		return 3
	default:
		return 0
	}
}

// legDistanceKm resolve a distância de um trecho: tabela de pares conhecidos,
// depois estimativa por coordenadas, depois o padrão de 30km. O primeiro
// trecho usa a distância do destino até a origem.
func legDistanceKm(prev, next *model.Destination) float64 {
	if prev == nil {
		return next.DistanceFromOriginKm
	}
	if dist, ok := cityPairDistancesKm[pairKey(prev.Name, next.Name)]; ok {
		return dist
	}
	if dist := helper.RoadDistanceKm(prev, next); dist > 0 {
		return dist
	}
	return model.DefaultLegDistanceKm
}

// buildSuggestion monta o roteiro completo de um tier
func (g *FallbackGenerator) buildSuggestion(req *model.TripRequest, tier model.Tier) model.Suggestion {
	candidates := helper.StablePartitionByExperience(g.destinationsForTier(tier), req.DesiredExperience)
	if limit := maxStopsForWindow(req.AvailableHours()); limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}

	var (
		stops           []model.Stop
		totalDistanceKm float64
		totalMinutes    int
		prev            *model.Destination
	)

	cursor := req.DepartureTime
	for i := range candidates {
		dest := candidates[i]
		distance := legDistanceKm(prev, &dest)
		travelMinutes := int(math.Ceil(distance / model.CruiseSpeedKmH * 60))
		arrival := cursor.AddMinutes(travelMinutes)

		dwell := dest.DwellTimeMinutes
		if dwell <= 0 {
			dwell = model.DefaultDwellMinutes
		}

		tips := dest.Tips
		if len(tips) == 0 {
			tips = model.DefaultRiderTips
		}

		stops = append(stops, model.Stop{
			Name:               dest.Name,
			Address:            dest.Address,
			DistanceFromPrevKm: distance,
			ArrivalTime:        arrival,
			ArrivalTimeText:    arrival.String(),
			DwellTimeMinutes:   dwell,
			Description:        dest.Description,
			EstimatedCostBRL:   dest.EntryCostBRL,
			RiderTips:          tips,
		})

		cursor = arrival.AddMinutes(dwell)
		totalDistanceKm += distance
		totalMinutes += travelMinutes + dwell
		prev = &candidates[i]
	}

	costs := g.CalculateSmartCosts(req, totalDistanceKm, tier)

	suggestion := model.Suggestion{
		Tier:               tier,
		Title:              fmt.Sprintf("Rolê %s: %s", model.GetTierName(tier), stops[0].Name),
		Summary:            g.buildSummary(req, tier, len(stops)),
		TotalDistanceKm:    totalDistanceKm,
		TotalDurationHours: math.Round(float64(totalMinutes)/60.0*10) / 10,
		Difficulty:         difficultyForDistance(totalDistanceKm),
		Stops:              stops,
		Costs:              costs,
		Notes:              g.buildNotes(req, candidates),
		ImageURL:           model.PlaceholderImageURL,
	}
	return suggestion
}

// buildSummary descreve o roteiro em uma frase
func (g *FallbackGenerator) buildSummary(req *model.TripRequest, tier model.Tier, stopCount int) string {
	plural := "parada"
	if stopCount > 1 {
		plural = "paradas"
	}
	return fmt.Sprintf("Roteiro %s com %d %s partindo de %s, pensado para quem busca %s.",
		strings.ToLower(model.GetTierName(tier)), stopCount, plural, req.StartAddress, req.DesiredExperience)
}

// difficultyForDistance classifica a dificuldade pela quilometragem total
func difficultyForDistance(totalDistanceKm float64) model.Difficulty {
	switch {
	case totalDistanceKm <= 120:
		return model.DifficultyEasy
	case totalDistanceKm <= 250:
		return model.DifficultyModerate
	default:
		return model.DifficultyHard
	}
}

// CalculateSmartCosts sintetiza os custos do roteiro. Também é usado pelo
// parser quando a resposta da IA não traz os quatro componentes numéricos.
func (g *FallbackGenerator) CalculateSmartCosts(req *model.TripRequest, totalDistanceKm float64, tier model.Tier) model.Costs {
	economy := req.FuelEconomyKmPerLiter
	if economy <= 0 {
		economy = model.DefaultFuelEconomyKmL
	}
	fuel := math.Round(totalDistanceKm / economy * model.FuelPricePerLiterBRL)

	foodBase := model.SnackBaseBRL
	if req.AvailableHours() >= model.FullMealThresholdHrs {
		foodBase = model.FullMealBaseBRL
	}
	food := math.Round(foodBase * model.FoodMultiplierByTier[tier])

	var entryFees float64
	if helper.ContainsAnyKeyword(req.DesiredExperience, model.EntryFeeKeywords) {
		entryFees = model.EntryFeeByTier[tier]
	}

	var other float64
	if totalDistanceKm > model.TollDistanceKm {
		other += model.TollSurchargeBRL
	}
	if tier == model.TierPremium {
		other += model.PremiumServiceFeeBRL
	}

	costs := model.Costs{
		Fuel:      fuel,
		Food:      food,
		EntryFees: entryFees,
		Other:     other,
	}
	costs.Recalculate()
	return costs
}

// buildNotes monta as observações condicionais do roteiro (no máximo 4)
func (g *FallbackGenerator) buildNotes(req *model.TripRequest, dests []model.Destination) []string {
	var notes []string

	if destsMatchKeywords(dests, model.MountainKeywords) {
		notes = append(notes, "Leve um casaco: na serra a temperatura cai uns 10°C em relação à capital.")
	}
	if destsMatchKeywords(dests, model.CoastalKeywords) {
		notes = append(notes, "Protetor solar e atenção à maresia: o litoral castiga a moto e o piloto.")
	}
	if len(dests) > 0 {
		notes = append(notes, fmt.Sprintf("Confirme o horário de funcionamento de %s antes de sair.", dests[0].Name))
	}

	hours := req.AvailableHours()
	if hours <= 6 {
		notes = append(notes, "Janela de tempo apertada: evite esticar as paradas para voltar no horário.")
	} else if hours >= 10 {
		notes = append(notes, "Com essa janela folgada dá para curtir cada parada sem pressa.")
	}

	if len(notes) > model.MaxNotesPerSuggestion {
		notes = notes[:model.MaxNotesPerSuggestion]
	}
	return notes
}

// destsMatchKeywords verifica nome, descrição e tags dos destinos
func destsMatchKeywords(dests []model.Destination, keywords []string) bool {
	for _, dest := range dests {
		combined := dest.Name + " " + dest.Description + " " + strings.Join(dest.ExperienceTags, " ")
		if helper.ContainsAnyKeyword(combined, keywords) {
			return true
		}
	}
	return false
}
