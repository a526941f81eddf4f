package repository

import (
	"context"

	"GeradorRoles-App/internal/domain/model"
	"GeradorRoles-App/internal/domain/repository"
)

// StaticDestinationsRepository é a tabela de destinos embutida no binário.
// É a fonte de última instância: sempre disponível, sem rede, e garante que o
// gerador determinístico nunca fique sem conteúdo.
type StaticDestinationsRepository struct{}

// NewStaticDestinationsRepository cria o repositório estático
func NewStaticDestinationsRepository() repository.DestinationsRepository {
	return &StaticDestinationsRepository{}
}

// ListDestinations retorna a tabela embutida (3 destinos por tier, região de SP)
func (r *StaticDestinationsRepository) ListDestinations(ctx context.Context) ([]model.Destination, error) {
	return staticDestinations, nil
}

var staticDestinations = []model.Destination{
	{
		Name:                 "Embu das Artes",
		Address:              "Centro Histórico, Embu das Artes - SP",
		Tier:                 model.TierEconomic,
		DistanceFromOriginKm: 35,
		EntryCostBRL:         0,
		DwellTimeMinutes:     120,
		ExperienceTags:       []string{"arte", "feira", "artesanato", "gastronomia", "café"},
		Tips: []string{
			"A feira de artesanato funciona melhor de manhã, antes de lotar",
			"Estacionamento para motos na rua da matriz costuma ter vaga",
		},
		Description: "Feira de arte e artesanato com casarões coloniais e boa comida de rua",
		Location:    &model.Location{Latitude: -23.6489, Longitude: -46.8522},
	},
	{
		Name:                 "Guararema",
		Address:              "Centro, Guararema - SP",
		Tier:                 model.TierEconomic,
		DistanceFromOriginKm: 80,
		EntryCostBRL:         0,
		DwellTimeMinutes:     90,
		ExperienceTags:       []string{"rio", "paisagem", "café da manhã", "estrada", "interior"},
		Tips: []string{
			"A padaria da praça abre cedo, ponto clássico de café da manhã de motociclista",
			"A beira do rio Paraíba rende boas fotos com a moto",
		},
		Description: "Cidadezinha à beira do Paraíba do Sul, parada tradicional de café da manhã",
		Location:    &model.Location{Latitude: -23.4151, Longitude: -46.0352},
	},
	{
		Name:                 "Itu",
		Address:              "Centro Histórico, Itu - SP",
		Tier:                 model.TierEconomic,
		DistanceFromOriginKm: 100,
		EntryCostBRL:         0,
		DwellTimeMinutes:     90,
		ExperienceTags:       []string{"história", "turismo", "café", "centro histórico"},
		Tips: []string{
			"O centro histórico tem piso de paralelepípedo, atenção com piso molhado",
		},
		Description: "Cidade histórica famosa pelos exageros, com bom circuito de cafés no centro",
		Location:    &model.Location{Latitude: -23.2642, Longitude: -47.2992},
	},
	{
		Name:                 "Santos",
		Address:              "Orla da Praia do Gonzaga, Santos - SP",
		Tier:                 model.TierBalanced,
		DistanceFromOriginKm: 80,
		EntryCostBRL:         0,
		DwellTimeMinutes:     150,
		ExperienceTags:       []string{"praia", "litoral", "orla", "mar", "café da manhã"},
		Tips: []string{
			"Desça a serra cedo para pegar a Anchieta vazia",
			"Lave a moto depois do rolê, a maresia acelera a ferrugem",
		},
		Description: "Descida clássica da serra com orla extensa e café na praia",
		Location:    &model.Location{Latitude: -23.9618, Longitude: -46.3322},
	},
	{
		Name:                 "São Roque",
		Address:              "Estrada do Vinho, São Roque - SP",
		Tier:                 model.TierBalanced,
		DistanceFromOriginKm: 65,
		EntryCostBRL:         30,
		DwellTimeMinutes:     120,
		ExperienceTags:       []string{"vinho", "gastronomia", "serra", "curvas", "estrada"},
		Tips: []string{
			"A Estrada do Vinho tem curvas fechadas e trânsito de pedestres aos fins de semana",
			"Degustação e pilotagem não combinam, deixe o vinho para levar",
		},
		Description: "Roteiro gastronômico da Estrada do Vinho com vinícolas e restaurantes de serra",
		Location:    &model.Location{Latitude: -23.5292, Longitude: -47.1357},
	},
	{
		Name:                 "Atibaia",
		Address:              "Pedra Grande, Atibaia - SP",
		Tier:                 model.TierBalanced,
		DistanceFromOriginKm: 70,
		EntryCostBRL:         15,
		DwellTimeMinutes:     120,
		ExperienceTags:       []string{"natureza", "paisagem", "trilha", "montanha", "voo livre"},
		Tips: []string{
			"A subida da Pedra Grande tem trechos de terra, vá com calma em moto de rua",
			"O mirante lota no fim da tarde, chegue antes das 16h",
		},
		Description: "Mirante da Pedra Grande com vista panorâmica e rampa de voo livre",
		Location:    &model.Location{Latitude: -23.1171, Longitude: -46.5563},
	},
	{
		Name:                 "Campos do Jordão",
		Address:              "Vila Capivari, Campos do Jordão - SP",
		Tier:                 model.TierPremium,
		DistanceFromOriginKm: 170,
		EntryCostBRL:         80,
		DwellTimeMinutes:     180,
		ExperienceTags:       []string{"serra", "montanha", "frio", "gastronomia", "paisagem"},
		Tips: []string{
			"A subida da SP-123 é um dos melhores trechos de curvas do estado",
			"Mesmo no verão a noite é fria, leve segunda pele",
		},
		Description: "Suíça paulista: subida de serra memorável, fondue e arquitetura alpina",
		Location:    &model.Location{Latitude: -22.7395, Longitude: -45.5913},
	},
	{
		Name:                 "Cunha",
		Address:              "Lavandário, Cunha - SP",
		Tier:                 model.TierPremium,
		DistanceFromOriginKm: 230,
		EntryCostBRL:         40,
		DwellTimeMinutes:     150,
		ExperienceTags:       []string{"serra", "lavanda", "cerâmica", "paisagem", "curvas"},
		Tips: []string{
			"A SP-171 para Paraty tem neblina frequente no fim da tarde",
			"Os ateliês de cerâmica fecham cedo durante a semana",
		},
		Description: "Campos de lavanda, ateliês de cerâmica e estrada de serra com visual de cinema",
		Location:    &model.Location{Latitude: -23.0744, Longitude: -44.9608},
	},
	{
		Name:                 "Paraty",
		Address:              "Centro Histórico, Paraty - RJ",
		Tier:                 model.TierPremium,
		DistanceFromOriginKm: 250,
		EntryCostBRL:         0,
		DwellTimeMinutes:     180,
		ExperienceTags:       []string{"litoral", "praia", "história", "centro histórico", "turismo"},
		Tips: []string{
			"O calçamento colonial é proibido para motos, estacione na entrada do centro",
			"A Rio-Santos exige atenção redobrada com caminhões nas curvas",
		},
		Description: "Centro histórico colonial à beira-mar, fim de linha clássico de viagem de moto",
		Location:    &model.Location{Latitude: -23.2178, Longitude: -44.7131},
	},
}
