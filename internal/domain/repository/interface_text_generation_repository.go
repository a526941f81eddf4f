package repository

import "context"

// TextGenerationRepository é a capacidade abstrata de geração de texto.
// O core trata a implementação como caixa-preta: o texto retornado pode conter
// JSON válido embutido em prosa, JSON malformado, ou a chamada pode falhar com
// *model.NetworkError ou *model.UpstreamError. Nenhum retry acontece aqui.
type TextGenerationRepository interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}
