package images

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"GeradorRoles-App/internal/domain/repository"
)

// UnsplashClient busca imagens ilustrativas de destino na API do Unsplash.
// Implementa repository.ImageLookupRepository.
type UnsplashClient struct {
	accessKey  string
	baseURL    string
	httpClient *http.Client
}

// NewUnsplashClient cria um novo cliente Unsplash
func NewUnsplashClient(accessKey string) *UnsplashClient {
	return &UnsplashClient{
		accessKey: accessKey,
		baseURL:   "https://api.unsplash.com/search/photos",
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewUnsplashImageLookupRepository expõe o cliente como a interface do domínio
func NewUnsplashImageLookupRepository(accessKey string) repository.ImageLookupRepository {
	return NewUnsplashClient(accessKey)
}

type unsplashSearchResponse struct {
	Results []struct {
		URLs struct {
			Regular string `json:"regular"`
		} `json:"urls"`
	} `json:"results"`
}

// FetchImageURL devolve a URL da primeira foto encontrada para a consulta.
// O chamador converte qualquer erro em imagem placeholder.
func (c *UnsplashClient) FetchImageURL(ctx context.Context, query string) (string, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("per_page", "1")
	params.Set("orientation", "landscape")

	reqURL := c.baseURL + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("falha ao criar a requisição: %w", err)
	}
	req.Header.Set("Authorization", "Client-ID "+c.accessKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("falha na chamada ao Unsplash: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Unsplash retornou status de erro: %s", resp.Status)
	}

	var searchResp unsplashSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return "", fmt.Errorf("falha ao parsear a resposta do Unsplash: %w", err)
	}

	if len(searchResp.Results) == 0 {
		return "", errors.New("nenhuma imagem encontrada para a consulta")
	}

	return searchResp.Results[0].URLs.Regular, nil
}
