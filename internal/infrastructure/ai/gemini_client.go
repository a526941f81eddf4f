package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"GeradorRoles-App/internal/domain/model"
	"GeradorRoles-App/internal/domain/repository"
)

// GeminiClient é o cliente de comunicação com a API Gemini. Implementa
// repository.TextGenerationRepository: o core só enxerga a capacidade
// abstrata de geração de texto.
type GeminiClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewGeminiClient cria um novo cliente Gemini
func NewGeminiClient(apiKey string) *GeminiClient {
	return &GeminiClient{
		apiKey:  apiKey,
		baseURL: "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.5-flash:generateContent",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NewGeminiTextGenerationRepository expõe o cliente como a interface do domínio
func NewGeminiTextGenerationRepository(apiKey string) repository.TextGenerationRepository {
	return NewGeminiClient(apiKey)
}

// GeminiRequest é a estrutura de requisição da API Gemini
type GeminiRequest struct {
	Contents []Content `json:"contents"`
}

// Content é o conteúdo da requisição
type Content struct {
	Parts []Part `json:"parts"`
}

// Part é uma parte de texto
type Part struct {
	Text string `json:"text"`
}

// GeminiResponse é a estrutura de resposta da API Gemini
type GeminiResponse struct {
	Candidates []Candidate `json:"candidates"`
}

// Candidate é um candidato gerado
type Candidate struct {
	Content Content `json:"content"`
}

// GenerateContent gera texto via API Gemini. Falhas de transporte viram
// *model.NetworkError e status != 200 vira *model.UpstreamError; o chamador
// decide o fallback, nenhum retry acontece aqui.
func (c *GeminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	req := GeminiRequest{
		Contents: []Content{
			{
				Parts: []Part{
					{Text: prompt},
				},
			},
		},
	}

	reqBody, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("falha ao serializar a requisição: %w", err)
	}

	url := fmt.Sprintf("%s?key=%s", c.baseURL, c.apiKey)

	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(reqBody))
	if err != nil {
		return "", fmt.Errorf("falha ao criar a requisição HTTP: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", &model.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", &model.UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &model.NetworkError{Err: err}
	}

	var geminiResp GeminiResponse
	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return "", fmt.Errorf("falha ao parsear a resposta: %w", err)
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("nenhuma resposta válida foi gerada")
	}

	return geminiResp.Candidates[0].Content.Parts[0].Text, nil
}
