package repository

import (
	"GeradorRoles-App/internal/domain/model"
	"context"
)

// DestinationsRepository fornece a tabela de destinos usada pelo gerador
// determinístico. A tabela é lida uma vez na inicialização e congelada em
// memória; o core nunca consulta a fonte durante a geração.
type DestinationsRepository interface {
	ListDestinations(ctx context.Context) ([]model.Destination, error)
}
