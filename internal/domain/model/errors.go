package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrProposalNotFound indica que um proposal_id não existe ou expirou
var ErrProposalNotFound = errors.New("proposta de rolê não encontrada")

// RequestIncompleteError indica que campos obrigatórios estão faltando na submissão
type RequestIncompleteError struct {
	Fields []string
}

func (e *RequestIncompleteError) Error() string {
	return fmt.Sprintf("requisição incompleta, campos obrigatórios ausentes ou inválidos: %s", strings.Join(e.Fields, ", "))
}

// NetworkError indica falha de transporte ao chamar o serviço de geração de texto
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("falha de rede na chamada de geração: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// UpstreamError indica resposta de erro do serviço de geração de texto
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("erro do serviço de geração (status: %d): %s", e.StatusCode, e.Body)
}

// GenerationError indica que nem o caminho determinístico conseguiu produzir
// sugestões (tabela de destinos vazia ou mal configurada). É o único erro de
// geração que o orquestrador propaga ao chamador.
type GenerationError struct {
	Reason string
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("não foi possível gerar sugestões: %s", e.Reason)
}
