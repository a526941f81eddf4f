package repository

import (
	"context"
	"fmt"

	"github.com/lib/pq"

	"GeradorRoles-App/internal/domain/model"
	"GeradorRoles-App/internal/domain/repository"
	"GeradorRoles-App/internal/infrastructure/database"
)

// PostgresDestinationsRepository carrega a tabela de destinos do PostgreSQL
// do Supabase (conexão direta via pooler)
type PostgresDestinationsRepository struct {
	client *database.PostgreSQLClient
}

// NewPostgresDestinationsRepository cria o repositório Postgres de destinos
func NewPostgresDestinationsRepository(client *database.PostgreSQLClient) repository.DestinationsRepository {
	return &PostgresDestinationsRepository{
		client: client,
	}
}

// ListDestinations lê todas as linhas da tabela destinations
func (r *PostgresDestinationsRepository) ListDestinations(ctx context.Context) ([]model.Destination, error) {
	query := `
		SELECT name, address, tier, distance_km, entry_cost, dwell_minutes,
		       experience_tags, tips, description, lat, lng
		FROM destinations
		ORDER BY tier, distance_km`

	rows, err := r.client.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("falha ao consultar destinos: %w", err)
	}
	defer rows.Close()

	var destinations []model.Destination
	for rows.Next() {
		var (
			dest model.Destination
			tier string
			lat  *float64
			lng  *float64
		)
		if err := rows.Scan(
			&dest.Name,
			&dest.Address,
			&tier,
			&dest.DistanceFromOriginKm,
			&dest.EntryCostBRL,
			&dest.DwellTimeMinutes,
			pq.Array(&dest.ExperienceTags),
			pq.Array(&dest.Tips),
			&dest.Description,
			&lat,
			&lng,
		); err != nil {
			return nil, fmt.Errorf("falha ao ler linha de destino: %w", err)
		}

		dest.Tier = model.Tier(tier)
		if lat != nil && lng != nil {
			dest.Location = &model.Location{Latitude: *lat, Longitude: *lng}
		}
		destinations = append(destinations, dest)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("falha ao iterar destinos: %w", err)
	}
	return destinations, nil
}
