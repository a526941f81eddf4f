package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPrompt(t *testing.T) {
	builder := NewPromptBuilder()

	t.Run("é determinístico para a mesma requisição", func(t *testing.T) {
		req := newTestRequest(t, "08:00", "18:00", "café da manhã")
		assert.Equal(t, builder.BuildPrompt(req), builder.BuildPrompt(req))
	})

	t.Run("carrega os dados da requisição e o esquema de saída", func(t *testing.T) {
		req := newTestRequest(t, "08:00", "18:00", "café da manhã")
		prompt := builder.BuildPrompt(req)

		assert.Contains(t, prompt, "Penha, SP")
		assert.Contains(t, prompt, "08:00")
		assert.Contains(t, prompt, "18:00")
		assert.Contains(t, prompt, "janela de 10.0 horas")
		assert.Contains(t, prompt, "café da manhã")
		assert.Contains(t, prompt, `"sugestoes"`)
		assert.Contains(t, prompt, `"porquePerfeito"`)

		// tanque 17L x 22 km/l = 374 km de autonomia, classe média-alta
		assert.Contains(t, prompt, "374 km")
		assert.Contains(t, prompt, "média-alta cilindrada")
	})

	t.Run("orçamento ausente vira texto aberto", func(t *testing.T) {
		req := newTestRequest(t, "08:00", "18:00", "praia")
		require.Nil(t, req.BudgetBRL)
		assert.Contains(t, builder.BuildPrompt(req), req.BudgetDescription())
	})

	t.Run("orçamento informado aparece em reais", func(t *testing.T) {
		req := newTestRequest(t, "08:00", "18:00", "praia")
		budget := 150.0
		req.BudgetBRL = &budget
		assert.Contains(t, builder.BuildPrompt(req), "150")
	})
}
