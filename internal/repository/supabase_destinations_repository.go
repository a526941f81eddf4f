package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"GeradorRoles-App/internal/domain/model"
	"GeradorRoles-App/internal/domain/repository"
	"GeradorRoles-App/internal/infrastructure/database"
)

// SupabaseDestinationsRepository carrega a tabela de destinos via PostgREST
// (alternativa ao acesso direto quando só a anon key está disponível)
type SupabaseDestinationsRepository struct {
	client *database.SupabaseClient
}

// NewSupabaseDestinationsRepository cria o repositório Supabase de destinos
func NewSupabaseDestinationsRepository(client *database.SupabaseClient) repository.DestinationsRepository {
	return &SupabaseDestinationsRepository{
		client: client,
	}
}

// destinationRow é a linha da tabela destinations no formato PostgREST
type destinationRow struct {
	Name           string   `json:"name"`
	Address        string   `json:"address"`
	Tier           string   `json:"tier"`
	DistanceKm     float64  `json:"distance_km"`
	EntryCost      float64  `json:"entry_cost"`
	DwellMinutes   int      `json:"dwell_minutes"`
	ExperienceTags []string `json:"experience_tags"`
	Tips           []string `json:"tips"`
	Description    string   `json:"description"`
	Lat            *float64 `json:"lat"`
	Lng            *float64 `json:"lng"`
}

// ListDestinations lê todas as linhas da tabela destinations
func (r *SupabaseDestinationsRepository) ListDestinations(ctx context.Context) ([]model.Destination, error) {
	data, count, err := r.client.GetClient().From("destinations").Select("*", "exact", false).Execute()
	if err != nil {
		return nil, fmt.Errorf("falha ao buscar destinos no Supabase: %w", err)
	}
	_ = count

	var rows []destinationRow
	if err := json.Unmarshal([]byte(data), &rows); err != nil {
		return nil, fmt.Errorf("falha no unmarshal dos destinos: %w", err)
	}

	destinations := make([]model.Destination, 0, len(rows))
	for _, row := range rows {
		dest := model.Destination{
			Name:                 row.Name,
			Address:              row.Address,
			Tier:                 model.Tier(row.Tier),
			DistanceFromOriginKm: row.DistanceKm,
			EntryCostBRL:         row.EntryCost,
			DwellTimeMinutes:     row.DwellMinutes,
			ExperienceTags:       row.ExperienceTags,
			Tips:                 row.Tips,
			Description:          row.Description,
		}
		if row.Lat != nil && row.Lng != nil {
			dest.Location = &model.Location{Latitude: *row.Lat, Longitude: *row.Lng}
		}
		destinations = append(destinations, dest)
	}
	return destinations, nil
}
