package model

import "time"

// Tier é a classificação de custo/qualidade aplicada a cada sugestão
type Tier string

const (
	TierEconomic Tier = "ECONOMIC"
	TierBalanced Tier = "BALANCED"
	TierPremium  Tier = "PREMIUM"
)

// Difficulty é o nível de dificuldade do trajeto
type Difficulty string

const (
	DifficultyEasy     Difficulty = "facil"
	DifficultyModerate Difficulty = "moderada"
	DifficultyHard     Difficulty = "dificil"
)

// Costs agrupa os custos estimados do rolê em BRL.
// Invariante pós-construção: Total == Fuel + Food + EntryFees + Other.
type Costs struct {
	Fuel      float64 `json:"gasolina" firestore:"gasolina"`
	Food      float64 `json:"alimentacao" firestore:"alimentacao"`
	EntryFees float64 `json:"entradas" firestore:"entradas"`
	Other     float64 `json:"outros" firestore:"outros"`
	Total     float64 `json:"total" firestore:"total"`
}

// Recalculate recalcula o total a partir dos componentes
func (c *Costs) Recalculate() {
	c.Total = c.Fuel + c.Food + c.EntryFees + c.Other
}

// Stop é uma parada dentro de um roteiro sugerido
type Stop struct {
	Name               string    `json:"nome" firestore:"nome"`
	Address            string    `json:"endereco" firestore:"endereco"`
	DistanceFromPrevKm float64   `json:"distancia_km" firestore:"distancia_km"`
	ArrivalTime        TimeOfDay `json:"-" firestore:"-"`
	ArrivalTimeText    string    `json:"horario_chegada" firestore:"horario_chegada"`
	DwellTimeMinutes   int       `json:"tempo_parada_minutos" firestore:"tempo_parada_minutos"`
	Description        string    `json:"descricao" firestore:"descricao"`
	EstimatedCostBRL   float64   `json:"custo_estimado_brl" firestore:"custo_estimado_brl"`
	RiderTips          []string  `json:"dicas_motociclista" firestore:"dicas_motociclista"`
}

// Suggestion é o registro canônico de roteiro consumido pela camada de renderização.
// Imutável após a construção; chamadores não devem alterar uma sugestão retornada
// (ela pode estar compartilhada pelo cache).
type Suggestion struct {
	Tier               Tier       `json:"tier" firestore:"tier"`
	Title              string     `json:"titulo" firestore:"titulo"`
	Summary            string     `json:"resumo" firestore:"resumo"`
	TotalDistanceKm    float64    `json:"distancia_total_km" firestore:"distancia_total_km"`
	TotalDurationHours float64    `json:"duracao_total_horas" firestore:"duracao_total_horas"`
	Difficulty         Difficulty `json:"dificuldade" firestore:"dificuldade"`
	Stops              []Stop     `json:"paradas" firestore:"paradas"`
	Costs              Costs      `json:"custos" firestore:"custos"`
	Notes              []string   `json:"observacoes" firestore:"observacoes"`
	ImageURL           string     `json:"imagem_url" firestore:"imagem_url"`
}

// RoleProposal é um conjunto de sugestões persistido para consulta posterior
type RoleProposal struct {
	ProposalID        string       `json:"proposal_id"`
	DesiredExperience string       `json:"experiencia_desejada"`
	StartAddress      string       `json:"endereco_partida"`
	Suggestions       []Suggestion `json:"sugestoes"`
	CreatedAt         time.Time    `json:"criado_em"`
}

// FirestoreRoleProposal é a representação persistida no Firestore com TTL
type FirestoreRoleProposal struct {
	DesiredExperience string       `firestore:"experiencia_desejada"`
	StartAddress      string       `firestore:"endereco_partida"`
	Suggestions       []Suggestion `firestore:"sugestoes"`
	CreatedAt         time.Time    `firestore:"criado_em"`
	ExpireAt          time.Time    `firestore:"expireAt"`
}

// ToFirestoreRoleProposal converte para o formato persistido, aplicando o TTL
func (rp *RoleProposal) ToFirestoreRoleProposal(ttlHours int) *FirestoreRoleProposal {
	return &FirestoreRoleProposal{
		DesiredExperience: rp.DesiredExperience,
		StartAddress:      rp.StartAddress,
		Suggestions:       rp.Suggestions,
		CreatedAt:         rp.CreatedAt,
		ExpireAt:          rp.CreatedAt.Add(time.Duration(ttlHours) * time.Hour),
	}
}

// ToRoleProposal reconstrói o RoleProposal a partir do documento persistido
func (frp *FirestoreRoleProposal) ToRoleProposal(proposalID string) *RoleProposal {
	return &RoleProposal{
		ProposalID:        proposalID,
		DesiredExperience: frp.DesiredExperience,
		StartAddress:      frp.StartAddress,
		Suggestions:       frp.Suggestions,
		CreatedAt:         frp.CreatedAt,
	}
}
