package usecase

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"GeradorRoles-App/internal/domain/model"
	"GeradorRoles-App/internal/domain/repository"
	"GeradorRoles-App/internal/domain/service"
)

type RoleGenerationUseCase interface {
	// GenerateRole executa o pipeline completo: cache → prompt → IA → parse →
	// fallback → imagens → cache. Nunca devolve lista vazia; o único erro
	// possível é *model.GenerationError com a tabela de destinos vazia.
	GenerateRole(ctx context.Context, req *model.TripRequest) ([]model.Suggestion, error)

	// GenerateProposal gera o rolê e persiste a proposta para consulta posterior
	GenerateProposal(ctx context.Context, req *model.TripRequest) (*model.RoleProposal, error)

	// GetRoleProposal busca uma proposta persistida pelo id
	GetRoleProposal(ctx context.Context, proposalID string) (*model.RoleProposal, error)
}

// roleGenerationUseCaseImpl é o orquestrador. É dono do cache e do conjunto de
// chamadas em voo: requisições concorrentes com o mesmo fingerprint
// compartilham uma única chamada à IA.
type roleGenerationUseCaseImpl struct {
	promptBuilder *service.PromptBuilder
	parser        *service.ResponseParser
	fallback      *service.FallbackGenerator
	cache         *service.ResponseCache
	textGenRepo   repository.TextGenerationRepository
	imageRepo     repository.ImageLookupRepository
	roleStore     repository.RoleStoreRepository

	mu       sync.Mutex
	inflight map[string]*inflightCall
}

type inflightCall struct {
	done        chan struct{}
	suggestions []model.Suggestion
	err         error
}

// NewRoleGenerationUseCase cria o orquestrador. imageRepo e roleStore podem
// ser nil: sem busca de imagens fica o placeholder, sem store a consulta por
// id responde não-encontrado.
func NewRoleGenerationUseCase(
	promptBuilder *service.PromptBuilder,
	parser *service.ResponseParser,
	fallback *service.FallbackGenerator,
	cache *service.ResponseCache,
	textGenRepo repository.TextGenerationRepository,
	imageRepo repository.ImageLookupRepository,
	roleStore repository.RoleStoreRepository,
) RoleGenerationUseCase {
	return &roleGenerationUseCaseImpl{
		promptBuilder: promptBuilder,
		parser:        parser,
		fallback:      fallback,
		cache:         cache,
		textGenRepo:   textGenRepo,
		imageRepo:     imageRepo,
		roleStore:     roleStore,
		inflight:      make(map[string]*inflightCall),
	}
}

// GenerateRole executa o pipeline com deduplicação de chamadas em voo
func (u *roleGenerationUseCaseImpl) GenerateRole(ctx context.Context, req *model.TripRequest) ([]model.Suggestion, error) {
	prompt := u.promptBuilder.BuildPrompt(req)
	key := u.cache.MakeKey(prompt, req)

	if cached, ok := u.cache.Get(key); ok {
		log.Printf("📦 Cache hit para %s, sem chamada à IA", key)
		return cached, nil
	}

	u.mu.Lock()
	if call, ok := u.inflight[key]; ok {
		u.mu.Unlock()
		log.Printf("⏳ Chamada em voo para %s, aguardando resultado compartilhado", key)
		select {
		case <-call.done:
			return call.suggestions, call.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	call := &inflightCall{done: make(chan struct{})}
	u.inflight[key] = call
	u.mu.Unlock()

	suggestions, err := u.generate(ctx, req, prompt, key)

	call.suggestions, call.err = suggestions, err
	close(call.done)

	u.mu.Lock()
	delete(u.inflight, key)
	u.mu.Unlock()

	return suggestions, err
}

// generate é o miolo do pipeline após cache e deduplicação
func (u *roleGenerationUseCaseImpl) generate(ctx context.Context, req *model.TripRequest, prompt, key string) ([]model.Suggestion, error) {
	log.Printf("🚀 Geração de rolê iniciada (partida: %s, experiência: %s)", req.StartAddress, req.DesiredExperience)

	var suggestions []model.Suggestion

	rawText, err := u.textGenRepo.GenerateContent(ctx, prompt)
	if err != nil {
		// falha de rede/upstream pula o parser e vai direto para o determinístico
		log.Printf("⚠️ Chamada de geração falhou, usando gerador determinístico: %v", err)
		suggestions, err = u.fallback.Generate(req)
		if err != nil {
			return nil, err
		}
	} else {
		suggestions, err = u.parser.Parse(rawText, req)
		if err != nil {
			return nil, err
		}
	}

	u.enrichWithImages(ctx, suggestions)

	u.cache.Set(key, suggestions)
	log.Printf("🎉 Geração de rolê concluída (%d sugestões)", len(suggestions))
	return suggestions, nil
}

// enrichWithImages busca uma imagem por sugestão em paralelo. Falha individual
// vira placeholder e nunca derruba as demais buscas nem a chamada como um todo.
func (u *roleGenerationUseCaseImpl) enrichWithImages(ctx context.Context, suggestions []model.Suggestion) {
	if u.imageRepo == nil {
		return
	}

	log.Printf("🖼️ Buscando imagens para %d sugestões em paralelo...", len(suggestions))

	type imageResult struct {
		index int
		url   string
		err   error
	}

	resultChan := make(chan imageResult, len(suggestions))
	var wg sync.WaitGroup

	for i := range suggestions {
		query := suggestions[i].Title
		if len(suggestions[i].Stops) > 0 {
			query = suggestions[i].Stops[0].Name
		}

		wg.Add(1)
		go func(idx int, q string) {
			defer wg.Done()
			url, err := u.imageRepo.FetchImageURL(ctx, q+" viagem de moto")
			resultChan <- imageResult{index: idx, url: url, err: err}
		}(i, query)
	}

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	for result := range resultChan {
		if result.err != nil || result.url == "" {
			log.Printf("⚠️ Busca de imagem da sugestão %d falhou, usando placeholder: %v", result.index+1, result.err)
			suggestions[result.index].ImageURL = model.PlaceholderImageURL
			continue
		}
		suggestions[result.index].ImageURL = result.url
	}
}

// GenerateProposal gera as sugestões e persiste a proposta (best effort: falha
// de persistência é registrada, nunca derruba a geração)
func (u *roleGenerationUseCaseImpl) GenerateProposal(ctx context.Context, req *model.TripRequest) (*model.RoleProposal, error) {
	suggestions, err := u.GenerateRole(ctx, req)
	if err != nil {
		return nil, err
	}

	proposal := &model.RoleProposal{
		ProposalID:        fmt.Sprintf("role_%s", uuid.New().String()),
		DesiredExperience: req.DesiredExperience,
		StartAddress:      req.StartAddress,
		Suggestions:       suggestions,
		CreatedAt:         time.Now(),
	}

	if u.roleStore != nil {
		log.Printf("💾 Persistindo proposta %s...", proposal.ProposalID)
		savedID, err := u.roleStore.SaveRoleProposal(ctx, proposal, model.ProposalTTLHours)
		if err != nil {
			log.Printf("⚠️ Falha ao persistir proposta, seguindo sem persistência: %v", err)
		} else {
			proposal.ProposalID = savedID
		}
	}

	return proposal, nil
}

// GetRoleProposal busca uma proposta persistida
func (u *roleGenerationUseCaseImpl) GetRoleProposal(ctx context.Context, proposalID string) (*model.RoleProposal, error) {
	if u.roleStore == nil {
		return nil, model.ErrProposalNotFound
	}

	log.Printf("📖 Buscando proposta %s", proposalID)
	proposal, err := u.roleStore.GetRoleProposal(ctx, proposalID)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Proposta %s encontrada", proposalID)
	return proposal, nil
}
