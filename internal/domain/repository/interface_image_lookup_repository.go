package repository

import "context"

// ImageLookupRepository busca uma URL de imagem ilustrativa para um destino.
// Falhas são convertidas em imagem placeholder pelo chamador, nunca propagadas.
type ImageLookupRepository interface {
	FetchImageURL(ctx context.Context, query string) (string, error)
}
