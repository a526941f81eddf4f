package service

import (
	"encoding/base64"
	"fmt"
	"sync"
	"time"

	"GeradorRoles-App/internal/domain/model"
)

// ResponseCache guarda em memória as sugestões já geradas, indexadas por um
// fingerprint da requisição. Vive apenas durante o processo: sem persistência,
// sem limite de capacidade, expiração preguiçosa por TTL na leitura.
type ResponseCache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

type cacheEntry struct {
	suggestions []model.Suggestion
	storedAt    time.Time
}

// NewResponseCache cria o cache com o TTL padrão de 30 minutos
func NewResponseCache() *ResponseCache {
	return NewResponseCacheWithClock(model.CacheTTL, time.Now)
}

// NewResponseCacheWithClock cria o cache com TTL e relógio customizados
// (o relógio injetável existe para os testes de expiração)
func NewResponseCacheWithClock(ttl time.Duration, now func() time.Time) *ResponseCache {
	return &ResponseCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     now,
	}
}

// MakeKey deriva o fingerprint da requisição: prefixo do prompt + endereço de
// partida + experiência + orçamento, em base64 truncado para 20 caracteres.
// É uma heurística fraca de propósito — colisões entre requisições distintas
// são aceitas (no pior caso um hit errado, limitado pelo TTL de 30 minutos).
func (c *ResponseCache) MakeKey(prompt string, req *model.TripRequest) string {
	prefix := prompt
	if len(prefix) > 40 {
		prefix = prefix[:40]
	}

	budget := "sem-orcamento"
	if req.BudgetBRL != nil {
		budget = fmt.Sprintf("%.2f", *req.BudgetBRL)
	}

	// os campos da requisição vêm antes do prefixo do prompt: o truncamento
	// para 20 caracteres só preserva o começo do base64, e é aí que os campos
	// que distinguem requisições precisam estar
	raw := req.StartAddress + "|" + req.DesiredExperience + "|" + budget + "|" + prefix
	encoded := base64.StdEncoding.EncodeToString([]byte(raw))
	if len(encoded) > model.CacheKeyLength {
		encoded = encoded[:model.CacheKeyLength]
	}
	return encoded
}

// Get devolve as sugestões cacheadas para a chave, removendo e ignorando
// entradas expiradas (expiração só acontece na leitura, nunca por varredura)
func (c *ResponseCache) Get(key string) ([]model.Suggestion, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.storedAt) >= c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return entry.suggestions, true
}

// Set armazena as sugestões com o timestamp atual, substituindo qualquer
// entrada anterior da mesma chave
func (c *ResponseCache) Set(key string, suggestions []model.Suggestion) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{
		suggestions: suggestions,
		storedAt:    c.now(),
	}
}
