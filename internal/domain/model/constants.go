package model

import "time"

// Constantes de custo usadas pela síntese determinística de roteiros
const (
	FuelPricePerLiterBRL  = 6.60 // preço médio da gasolina
	DefaultFuelEconomyKmL = 22.0 // consumo assumido quando o usuário não informa
	CruiseSpeedKmH        = 60.0 // velocidade média usada no cálculo de deslocamento

	DefaultLegDistanceKm  = 30.0 // distância assumida entre paradas desconhecidas
	DefaultDwellMinutes   = 90   // tempo de parada assumido quando não especificado
	TollSurchargeBRL      = 35.0 // pedágio estimado para rolês longos (>150km)
	TollDistanceKm        = 150.0
	PremiumServiceFeeBRL  = 60.0 // serviços extras do tier PREMIUM (estacionamento, guia)
	FullMealBaseBRL       = 55.0 // refeição completa (janela >= 8h)
	SnackBaseBRL          = 25.0 // lanche (janela curta)
	FullMealThresholdHrs  = 8.0
	MaxNotesPerSuggestion = 4

	CacheTTL       = 30 * time.Minute
	CacheKeyLength = 20

	ProposalTTLHours = 24

	// PlaceholderImageURL é a imagem usada quando a busca de imagem falha
	PlaceholderImageURL = "https://images.unsplash.com/photo-1558981403-c5f9899a28bc?w=800"
)

// FoodMultiplierByTier são os multiplicadores de alimentação por tier
var FoodMultiplierByTier = map[Tier]float64{
	TierEconomic: 0.7,
	TierBalanced: 1.0,
	TierPremium:  1.8,
}

// EntryFeeByTier são as taxas de entrada por tier, aplicadas apenas a experiências de turismo
var EntryFeeByTier = map[Tier]float64{
	TierEconomic: 0,
	TierBalanced: 25,
	TierPremium:  80,
}

// TierNameMap mapeia o tier para o nome exibido em português
var TierNameMap = map[Tier]string{
	TierEconomic: "Econômico",
	TierBalanced: "Equilibrado",
	TierPremium:  "Premium",
}

// EntryFeeKeywords são os termos de experiência que habilitam taxa de entrada
var EntryFeeKeywords = []string{"turismo", "aventura", "paisagem", "trilha", "cachoeira", "natureza", "museu"}

// MountainKeywords marcam destinos de serra (observação de agasalho)
var MountainKeywords = []string{"serra", "montanha", "frio", "altitude"}

// CoastalKeywords marcam destinos litorâneos (observação de protetor solar)
var CoastalKeywords = []string{"praia", "litoral", "orla", "mar"}

// DefaultRiderTips são as dicas genéricas usadas quando a resposta da IA não traz nenhuma
var DefaultRiderTips = []string{
	"Confira a calibragem dos pneus antes de sair",
	"Leve capa de chuva, o tempo na estrada muda rápido",
	"Abasteça antes de pegar trechos longos sem posto",
}

// GetTierName retorna o nome em português do tier
func GetTierName(tier Tier) string {
	if name, ok := TierNameMap[tier]; ok {
		return name
	}
	return string(tier)
}

// GetAllTiers retorna os tiers na ordem canônica de apresentação
func GetAllTiers() []Tier {
	return []Tier{TierEconomic, TierBalanced, TierPremium}
}
