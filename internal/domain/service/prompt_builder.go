package service

import (
	"fmt"

	"GeradorRoles-App/internal/domain/model"
)

// PromptBuilder monta o prompt de geração de roteiros a partir de um TripRequest.
// Função pura: sem I/O, sem relógio, determinística para a mesma requisição.
type PromptBuilder struct{}

// NewPromptBuilder cria um novo PromptBuilder
func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildPrompt renderiza o prompt em português instruindo a IA a devolver
// exatamente 3 sugestões como JSON no esquema fixo `sugestoes`
func (b *PromptBuilder) BuildPrompt(req *model.TripRequest) string {
	return fmt.Sprintf(`Você é um especialista em viagens de moto na região de São Paulo.
Monte 3 sugestões de rolê de moto para o seguinte motociclista:

【Condições do rolê】
Ponto de partida: %s
Saída: %s / Retorno: %s (janela de %.1f horas)
Moto: %s, autonomia de aproximadamente %.0f km com tanque cheio
Perfil de pilotagem: %s
Experiência desejada: %s
Orçamento: %s

【Requisitos】
- Exatamente 3 sugestões: uma econômica, uma equilibrada e uma premium
- Destinos reais alcançáveis dentro da janela de tempo e da autonomia
- Custos realistas em reais (BRL)

【Formato de saída】
Responda APENAS com JSON válido, exatamente neste esquema:
{"sugestoes":[{"nome":"...","endereco":"...","experiencia":"...","distancia":0,"tempoViagem":0,"custos":{"gasolina":0,"pedagio":0,"local":0,"total":0},"logistica":"...","porquePerfeito":"..."}]}`,
		req.StartAddress,
		req.DepartureTime.String(),
		req.ReturnTime.String(),
		req.AvailableHours(),
		req.VehicleClassDescription(),
		req.RangeKm(),
		string(req.RidingProfile),
		req.DesiredExperience,
		req.BudgetDescription(),
	)
}
