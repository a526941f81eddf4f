package service

import (
	"encoding/json"
	"log"
	"math"
	"regexp"
	"strconv"
	"strings"

	"GeradorRoles-App/internal/domain/helper"
	"GeradorRoles-App/internal/domain/model"
)

// jsonSpanPattern localiza o primeiro bloco {...} no texto bruto, mesmo quando
// a IA embrulha o JSON em prosa
var jsonSpanPattern = regexp.MustCompile(`\{[\s\S]*\}`)

// ResponseParser converte o texto bruto devolvido pela IA em sugestões
// canônicas. Parse estrito primeiro; qualquer falha estrutural degrada para o
// gerador determinístico em vez de virar erro na tela do usuário.
type ResponseParser struct {
	fallback *FallbackGenerator
}

// NewResponseParser cria o parser com o gerador de fallback injetado
func NewResponseParser(fallback *FallbackGenerator) *ResponseParser {
	return &ResponseParser{fallback: fallback}
}

// rawResponse é o esquema esperado da resposta da IA
type rawResponse struct {
	Sugestoes []rawSuggestion `json:"sugestoes"`
}

// rawSuggestion aceita campos com tipo frouxo: a IA às vezes devolve números
// como string ("120 km", "R$ 45")
type rawSuggestion struct {
	Nome           interface{} `json:"nome"`
	Endereco       interface{} `json:"endereco"`
	Experiencia    interface{} `json:"experiencia"`
	Distancia      interface{} `json:"distancia"`
	TempoViagem    interface{} `json:"tempoViagem"`
	Custos         rawCosts    `json:"custos"`
	Logistica      interface{} `json:"logistica"`
	PorquePerfeito interface{} `json:"porquePerfeito"`
	CustoEstimado  interface{} `json:"custo_estimado"`
	Dicas          []string    `json:"dicas_motociclista"`
}

type rawCosts struct {
	Gasolina interface{} `json:"gasolina"`
	Pedagio  interface{} `json:"pedagio"`
	Local    interface{} `json:"local"`
	Total    interface{} `json:"total"`
}

// Parse extrai sugestões do texto bruto. Nunca devolve lista vazia: falha
// estrutural cai no gerador determinístico. O único erro possível é
// *model.GenerationError quando o próprio fallback está sem tabela de destinos.
func (p *ResponseParser) Parse(rawText string, req *model.TripRequest) ([]model.Suggestion, error) {
	if suggestions, ok := p.tryParse(rawText, req); ok && len(suggestions) > 0 {
		return suggestions, nil
	}

	log.Printf("⚠️ Resposta da IA inutilizável, usando gerador determinístico")
	return p.fallback.Generate(req)
}

// tryParse é o caminho estrito: extrai o bloco JSON, valida o formato
// `sugestoes` e mapeia cada elemento para o registro canônico
func (p *ResponseParser) tryParse(rawText string, req *model.TripRequest) ([]model.Suggestion, bool) {
	span := jsonSpanPattern.FindString(rawText)
	if span == "" {
		return nil, false
	}

	var parsed rawResponse
	if err := json.Unmarshal([]byte(span), &parsed); err != nil {
		return nil, false
	}
	if len(parsed.Sugestoes) == 0 {
		return nil, false
	}

	suggestions := make([]model.Suggestion, 0, len(parsed.Sugestoes))
	for _, rs := range parsed.Sugestoes {
		suggestions = append(suggestions, p.mapSuggestion(rs, req))
	}
	return suggestions, true
}

// mapSuggestion converte um elemento bruto em Suggestion, preenchendo todo
// campo ausente com o valor padrão documentado (nunca deixa campo zero-valor
// sem decisão explícita)
func (p *ResponseParser) mapSuggestion(rs rawSuggestion, req *model.TripRequest) model.Suggestion {
	name := coerceString(rs.Nome, "Destino")
	address := coerceString(rs.Endereco, "Região de São Paulo")
	highlight := coerceString(rs.PorquePerfeito, "")
	description := coerceString(rs.Experiencia, coerceString(rs.Logistica, "Roteiro sugerido para o seu perfil"))

	tier := InferTierFromHighlight(highlight)

	distance, ok := coerceFloat(rs.Distancia)
	if !ok || distance <= 0 {
		distance = model.DefaultLegDistanceKm
	}

	travelMinutes := int(math.Ceil(distance / model.CruiseSpeedKmH * 60))
	arrival := req.DepartureTime.AddMinutes(travelMinutes)

	duration, ok := coerceFloat(rs.TempoViagem)
	if !ok || duration <= 0 {
		duration = math.Round((float64(travelMinutes)+float64(model.DefaultDwellMinutes))/60*10) / 10
	}

	stopCost, ok := coerceFloat(rs.Custos.Local)
	if !ok {
		stopCost, _ = coerceFloat(rs.CustoEstimado)
	}

	tips := rs.Dicas
	if len(tips) == 0 {
		tips = model.DefaultRiderTips
	}

	stop := model.Stop{
		Name:               name,
		Address:            address,
		DistanceFromPrevKm: distance,
		ArrivalTime:        arrival,
		ArrivalTimeText:    arrival.String(),
		DwellTimeMinutes:   model.DefaultDwellMinutes,
		Description:        description,
		EstimatedCostBRL:   stopCost,
		RiderTips:          tips,
	}

	summary := highlight
	if summary == "" {
		summary = description
	}

	var notes []string
	if logistics := coerceString(rs.Logistica, ""); logistics != "" && logistics != description {
		notes = append(notes, logistics)
	}
	stops := []model.Stop{stop}
	if helper.AnyStopMatches(stops, model.MountainKeywords) {
		notes = append(notes, "Leve um casaco: na serra a temperatura cai uns 10°C em relação à capital.")
	}
	if helper.AnyStopMatches(stops, model.CoastalKeywords) {
		notes = append(notes, "Protetor solar e atenção à maresia: o litoral castiga a moto e o piloto.")
	}
	if len(notes) > model.MaxNotesPerSuggestion {
		notes = notes[:model.MaxNotesPerSuggestion]
	}

	return model.Suggestion{
		Tier:               tier,
		Title:              name,
		Summary:            summary,
		TotalDistanceKm:    distance,
		TotalDurationHours: duration,
		Difficulty:         difficultyForDistance(distance),
		Stops:              stops,
		Costs:              p.mapCosts(rs.Custos, req, distance, tier),
		Notes:              notes,
		ImageURL:           model.PlaceholderImageURL,
	}
}

// mapCosts recompõe os custos canônicos. Quando gasolina, pedágio e gasto no
// local são todos numéricos, o total é recalculado pela soma; caso contrário
// aplica a fórmula determinística do tier.
func (p *ResponseParser) mapCosts(rc rawCosts, req *model.TripRequest, distanceKm float64, tier model.Tier) model.Costs {
	fuel, okFuel := coerceFloat(rc.Gasolina)
	toll, okToll := coerceFloat(rc.Pedagio)
	local, okLocal := coerceFloat(rc.Local)

	if okFuel && okToll && okLocal {
		costs := model.Costs{
			Fuel:      fuel,
			Food:      local,
			EntryFees: 0,
			Other:     toll,
		}
		costs.Recalculate()
		return costs
	}

	return p.fallback.CalculateSmartCosts(req, distanceKm, tier)
}

// InferTierFromHighlight infere o tier a partir de palavras-chave no texto
// livre "por que é perfeito". Heurística frágil por natureza; isolada aqui
// para poder ser trocada sem tocar no resto do pipeline. Ambíguo vira BALANCED.
func InferTierFromHighlight(text string) model.Tier {
	normalized := strings.ToLower(text)
	switch {
	case strings.Contains(normalized, "econômic") || strings.Contains(normalized, "economic"):
		return model.TierEconomic
	case strings.Contains(normalized, "premium"):
		return model.TierPremium
	default:
		return model.TierBalanced
	}
}

// coerceString extrai uma string não vazia ou devolve o padrão
func coerceString(v interface{}, def string) string {
	if s, ok := v.(string); ok {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			return trimmed
		}
	}
	return def
}

// coerceFloat aceita número JSON ou string com ruído ("120 km", "R$ 45,50")
func coerceFloat(v interface{}) (float64, bool) {
	switch value := v.(type) {
	case float64:
		return value, true
	case json.Number:
		f, err := value.Float64()
		return f, err == nil
	case string:
		cleaned := strings.NewReplacer("R$", "", "km", "", "h", "", " ", "", ",", ".").Replace(value)
		f, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
