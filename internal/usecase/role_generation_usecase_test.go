package usecase

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"GeradorRoles-App/internal/domain/model"
	"GeradorRoles-App/internal/domain/repository"
	"GeradorRoles-App/internal/domain/service"
)

// stubTextGen registra as chamadas e devolve uma resposta fixa. O gate, quando
// presente, segura a chamada até o teste liberar (para os testes de concorrência).
type stubTextGen struct {
	mu       sync.Mutex
	calls    int
	response string
	err      error
	started  chan struct{}
	gate     chan struct{}
}

func (s *stubTextGen) GenerateContent(ctx context.Context, prompt string) (string, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if s.started != nil {
		s.started <- struct{}{}
	}
	if s.gate != nil {
		<-s.gate
	}
	return s.response, s.err
}

func (s *stubTextGen) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

type stubImages struct {
	calls int32
	url   string
	err   error
}

func (s *stubImages) FetchImageURL(ctx context.Context, query string) (string, error) {
	atomic.AddInt32(&s.calls, 1)
	return s.url, s.err
}

type stubRoleStore struct {
	saved   map[string]*model.RoleProposal
	saveErr error
}

func newStubRoleStore() *stubRoleStore {
	return &stubRoleStore{saved: make(map[string]*model.RoleProposal)}
}

func (s *stubRoleStore) SaveRoleProposal(ctx context.Context, proposal *model.RoleProposal, ttlHours int) (string, error) {
	if s.saveErr != nil {
		return "", s.saveErr
	}
	s.saved[proposal.ProposalID] = proposal
	return proposal.ProposalID, nil
}

func (s *stubRoleStore) GetRoleProposal(ctx context.Context, proposalID string) (*model.RoleProposal, error) {
	proposal, ok := s.saved[proposalID]
	if !ok {
		return nil, model.ErrProposalNotFound
	}
	return proposal, nil
}

func testDestinations() []model.Destination {
	return []model.Destination{
		{Name: "Embu das Artes", Address: "Embu das Artes - SP", Tier: model.TierEconomic, DistanceFromOriginKm: 35, DwellTimeMinutes: 60, ExperienceTags: []string{"arte", "café"}},
		{Name: "Santos", Address: "Santos - SP", Tier: model.TierBalanced, DistanceFromOriginKm: 80, DwellTimeMinutes: 90, ExperienceTags: []string{"praia"}},
		{Name: "Campos do Jordão", Address: "Campos do Jordão - SP", Tier: model.TierPremium, DistanceFromOriginKm: 170, DwellTimeMinutes: 120, ExperienceTags: []string{"serra"}},
	}
}

func newTestRequest(t *testing.T, experience string) *model.TripRequest {
	t.Helper()
	req, err := model.NewTripRequest(&model.TripRequestPayload{
		StartAddress:          "Penha, SP",
		DepartureTime:         "08:00",
		ReturnTime:            "18:00",
		TankCapacityLiters:    17,
		FuelEconomyKmPerLiter: 22,
		RidingProfile:         "moderado",
		DesiredExperience:     experience,
	})
	require.NoError(t, err)
	return req
}

type useCaseFixture struct {
	useCase RoleGenerationUseCase
	textGen *stubTextGen
	clock   *time.Time
}

func newUseCaseFixture(textGen *stubTextGen, imageRepo *stubImages, store *stubRoleStore) *useCaseFixture {
	current := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	fallback := service.NewFallbackGenerator(testDestinations())
	cache := service.NewResponseCacheWithClock(model.CacheTTL, func() time.Time { return current })

	// interfaces tipadas explicitamente: um ponteiro nil embrulhado em
	// interface não seria visto como nil pelo orquestrador
	var images repository.ImageLookupRepository
	if imageRepo != nil {
		images = imageRepo
	}
	var roleStore repository.RoleStoreRepository
	if store != nil {
		roleStore = store
	}

	uc := NewRoleGenerationUseCase(
		service.NewPromptBuilder(),
		service.NewResponseParser(fallback),
		fallback,
		cache,
		textGen,
		images,
		roleStore,
	)
	return &useCaseFixture{useCase: uc, textGen: textGen, clock: &current}
}

func TestGenerateRole_Cache(t *testing.T) {
	t.Run("segunda requisição idêntica não chama a IA de novo", func(t *testing.T) {
		textGen := &stubTextGen{response: "sem json nenhum"}
		fx := newUseCaseFixture(textGen, nil, nil)
		req := newTestRequest(t, "café da manhã")

		first, err := fx.useCase.GenerateRole(context.Background(), req)
		require.NoError(t, err)
		require.Len(t, first, 3)

		second, err := fx.useCase.GenerateRole(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Equal(t, 1, textGen.callCount())
	})

	t.Run("depois do TTL a IA é chamada de novo", func(t *testing.T) {
		textGen := &stubTextGen{response: "sem json nenhum"}
		fx := newUseCaseFixture(textGen, nil, nil)
		req := newTestRequest(t, "café da manhã")

		_, err := fx.useCase.GenerateRole(context.Background(), req)
		require.NoError(t, err)

		*fx.clock = fx.clock.Add(31 * time.Minute)

		_, err = fx.useCase.GenerateRole(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 2, textGen.callCount())
	})

	t.Run("experiências diferentes não compartilham cache", func(t *testing.T) {
		textGen := &stubTextGen{response: "sem json nenhum"}
		fx := newUseCaseFixture(textGen, nil, nil)

		_, err := fx.useCase.GenerateRole(context.Background(), newTestRequest(t, "café da manhã"))
		require.NoError(t, err)
		_, err = fx.useCase.GenerateRole(context.Background(), newTestRequest(t, "praia e litoral"))
		require.NoError(t, err)
		assert.Equal(t, 2, textGen.callCount())
	})
}

func TestGenerateRole_NetworkFailure(t *testing.T) {
	t.Run("falha de rede cai no gerador determinístico e o resultado é cacheado", func(t *testing.T) {
		textGen := &stubTextGen{err: &model.NetworkError{Err: context.DeadlineExceeded}}
		fx := newUseCaseFixture(textGen, nil, nil)
		req := newTestRequest(t, "praia")

		suggestions, err := fx.useCase.GenerateRole(context.Background(), req)
		require.NoError(t, err)
		require.Len(t, suggestions, 3)
		assert.Equal(t, model.TierEconomic, suggestions[0].Tier)
		assert.Equal(t, model.TierBalanced, suggestions[1].Tier)
		assert.Equal(t, model.TierPremium, suggestions[2].Tier)

		// até o fallback vale como resposta: a próxima requisição vem do cache
		_, err = fx.useCase.GenerateRole(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 1, textGen.callCount())
	})
}

func TestGenerateRole_Images(t *testing.T) {
	t.Run("imagem encontrada substitui o placeholder", func(t *testing.T) {
		images := &stubImages{url: "https://images.example/moto.jpg"}
		fx := newUseCaseFixture(&stubTextGen{response: "x"}, images, nil)

		suggestions, err := fx.useCase.GenerateRole(context.Background(), newTestRequest(t, "serra"))
		require.NoError(t, err)
		for _, s := range suggestions {
			assert.Equal(t, "https://images.example/moto.jpg", s.ImageURL)
		}
		assert.Equal(t, int32(3), atomic.LoadInt32(&images.calls))
	})

	t.Run("falha na busca de imagem vira placeholder, não erro", func(t *testing.T) {
		images := &stubImages{err: &model.UpstreamError{StatusCode: 503}}
		fx := newUseCaseFixture(&stubTextGen{response: "x"}, images, nil)

		suggestions, err := fx.useCase.GenerateRole(context.Background(), newTestRequest(t, "serra"))
		require.NoError(t, err)
		for _, s := range suggestions {
			assert.Equal(t, model.PlaceholderImageURL, s.ImageURL)
		}
	})

	t.Run("sem repositório de imagens fica o placeholder", func(t *testing.T) {
		fx := newUseCaseFixture(&stubTextGen{response: "x"}, nil, nil)

		suggestions, err := fx.useCase.GenerateRole(context.Background(), newTestRequest(t, "serra"))
		require.NoError(t, err)
		for _, s := range suggestions {
			assert.Equal(t, model.PlaceholderImageURL, s.ImageURL)
		}
	})
}

func TestGenerateRole_InflightDedup(t *testing.T) {
	t.Run("requisições concorrentes iguais compartilham uma chamada", func(t *testing.T) {
		textGen := &stubTextGen{
			response: "sem json nenhum",
			started:  make(chan struct{}, 2),
			gate:     make(chan struct{}),
		}
		fx := newUseCaseFixture(textGen, nil, nil)

		requests := []*model.TripRequest{newTestRequest(t, "café"), newTestRequest(t, "café")}

		var wg sync.WaitGroup
		results := make([][]model.Suggestion, 2)
		errs := make([]error, 2)
		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func(idx int) {
				defer wg.Done()
				results[idx], errs[idx] = fx.useCase.GenerateRole(context.Background(), requests[idx])
			}(i)
		}

		// espera a primeira goroutine chegar na IA e dá tempo para a segunda
		// estacionar na chamada em voo antes de liberar a resposta
		<-textGen.started
		time.Sleep(50 * time.Millisecond)
		close(textGen.gate)
		wg.Wait()

		require.NoError(t, errs[0])
		require.NoError(t, errs[1])
		assert.Equal(t, results[0], results[1])
		assert.Equal(t, 1, textGen.callCount())
	})

	t.Run("contexto cancelado enquanto aguarda a chamada em voo", func(t *testing.T) {
		textGen := &stubTextGen{
			response: "sem json nenhum",
			started:  make(chan struct{}, 2),
			gate:     make(chan struct{}),
		}
		fx := newUseCaseFixture(textGen, nil, nil)

		req := newTestRequest(t, "café")

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = fx.useCase.GenerateRole(context.Background(), req)
		}()
		<-textGen.started

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := fx.useCase.GenerateRole(ctx, newTestRequest(t, "café"))
		assert.ErrorIs(t, err, context.Canceled)

		close(textGen.gate)
		wg.Wait()
		assert.Equal(t, 1, textGen.callCount())
	})
}

func TestGenerateProposal(t *testing.T) {
	t.Run("persiste a proposta e devolve o id salvo", func(t *testing.T) {
		store := newStubRoleStore()
		fx := newUseCaseFixture(&stubTextGen{response: "x"}, nil, store)

		proposal, err := fx.useCase.GenerateProposal(context.Background(), newTestRequest(t, "praia"))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(proposal.ProposalID, "role_"))
		assert.Len(t, proposal.Suggestions, 3)
		assert.Contains(t, store.saved, proposal.ProposalID)

		found, err := fx.useCase.GetRoleProposal(context.Background(), proposal.ProposalID)
		require.NoError(t, err)
		assert.Equal(t, proposal.ProposalID, found.ProposalID)
	})

	t.Run("falha de persistência não derruba a geração", func(t *testing.T) {
		store := newStubRoleStore()
		store.saveErr = &model.UpstreamError{StatusCode: 500}
		fx := newUseCaseFixture(&stubTextGen{response: "x"}, nil, store)

		proposal, err := fx.useCase.GenerateProposal(context.Background(), newTestRequest(t, "praia"))
		require.NoError(t, err)
		assert.Len(t, proposal.Suggestions, 3)
	})

	t.Run("sem store configurado a geração funciona e a busca responde não-encontrado", func(t *testing.T) {
		fx := newUseCaseFixture(&stubTextGen{response: "x"}, nil, nil)

		proposal, err := fx.useCase.GenerateProposal(context.Background(), newTestRequest(t, "praia"))
		require.NoError(t, err)
		require.NotNil(t, proposal)

		_, err = fx.useCase.GetRoleProposal(context.Background(), proposal.ProposalID)
		assert.ErrorIs(t, err, model.ErrProposalNotFound)
	})

	t.Run("id desconhecido responde não-encontrado", func(t *testing.T) {
		store := newStubRoleStore()
		fx := newUseCaseFixture(&stubTextGen{response: "x"}, nil, store)

		_, err := fx.useCase.GetRoleProposal(context.Background(), "role_inexistente")
		assert.ErrorIs(t, err, model.ErrProposalNotFound)
	})
}
