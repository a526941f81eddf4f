package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"GeradorRoles-App/internal/domain/model"
	"GeradorRoles-App/internal/domain/repository"
	"GeradorRoles-App/internal/domain/service"
	"GeradorRoles-App/internal/handler"
	"GeradorRoles-App/internal/infrastructure/ai"
	"GeradorRoles-App/internal/infrastructure/database"
	fsinfra "GeradorRoles-App/internal/infrastructure/firestore"
	"GeradorRoles-App/internal/infrastructure/images"
	repoimpl "GeradorRoles-App/internal/repository"
	"GeradorRoles-App/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: arquivo .env não encontrado, usando variáveis de ambiente do sistema")
	}

	geminiAPIKey := os.Getenv("GEMINI_API_KEY")
	if geminiAPIKey == "" {
		fmt.Println("⚠️ Variável de ambiente obrigatória ausente: GEMINI_API_KEY")
		fmt.Println("Crie um arquivo .env ou defina a variável no ambiente")
		log.Fatal("Environment variables not set")
	}

	ctx := context.Background()

	// a tabela de destinos é congelada em memória na inicialização;
	// o pipeline de geração nunca volta à fonte durante uma requisição
	destinations := loadDestinations(ctx)
	log.Printf("✅ Tabela de destinos carregada (%d entradas)", len(destinations))

	promptBuilder := service.NewPromptBuilder()
	fallbackGen := service.NewFallbackGenerator(destinations)
	parser := service.NewResponseParser(fallbackGen)
	cache := service.NewResponseCache()
	textGenRepo := ai.NewGeminiTextGenerationRepository(geminiAPIKey)

	var imageRepo repository.ImageLookupRepository
	if accessKey := os.Getenv("UNSPLASH_ACCESS_KEY"); accessKey != "" {
		imageRepo = images.NewUnsplashImageLookupRepository(accessKey)
	} else {
		log.Printf("⚠️ UNSPLASH_ACCESS_KEY não definida, sugestões usarão imagem placeholder")
	}

	var roleStore repository.RoleStoreRepository
	if projectID := os.Getenv("FIRESTORE_PROJECT_ID"); projectID != "" {
		fsClient, err := fsinfra.NewFirestoreClient(ctx, projectID)
		if err != nil {
			log.Printf("⚠️ Firestore indisponível, seguindo sem persistência de propostas: %v", err)
		} else {
			defer fsClient.Close()
			roleStore = repoimpl.NewFirestoreRoleRepository(fsClient.GetClient())
		}
	} else {
		log.Printf("⚠️ FIRESTORE_PROJECT_ID não definida, propostas não serão persistidas")
	}

	roleUseCase := usecase.NewRoleGenerationUseCase(
		promptBuilder,
		parser,
		fallbackGen,
		cache,
		textGenRepo,
		imageRepo,
		roleStore,
	)
	roleHandler := handler.NewRoleProposalHandler(roleUseCase)

	r := gin.Default()
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "service": "gerador-roles"})
	})
	r.POST("/roles/proposals", roleHandler.PostRoleProposals)
	r.GET("/roles/proposals/:id", roleHandler.GetRoleProposal)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("Gerador de Rolês iniciando na porta :%s...\n", port)
	log.Fatal(r.Run(":" + port))
}

// loadDestinations tenta carregar a tabela de destinos do Postgres, depois do
// Supabase via PostgREST, e por último usa a tabela embutida no binário
func loadDestinations(ctx context.Context) []model.Destination {
	if os.Getenv("SUPABASE_URL") != "" && os.Getenv("SUPABASE_DB_PASSWORD") != "" {
		pgClient, err := database.NewPostgreSQLClientWithRetry(3, 2*time.Second)
		if err != nil {
			log.Printf("⚠️ Conexão PostgreSQL falhou: %v", err)
		} else {
			dests, err := repoimpl.NewPostgresDestinationsRepository(pgClient).ListDestinations(ctx)
			pgClient.Close()
			if err == nil && len(dests) > 0 {
				log.Printf("💾 Destinos carregados do PostgreSQL")
				return dests
			}
			log.Printf("⚠️ Leitura de destinos no PostgreSQL falhou: %v", err)
		}
	}

	if os.Getenv("SUPABASE_URL") != "" && os.Getenv("SUPABASE_ANON_KEY") != "" {
		sbClient, err := database.NewSupabaseClient()
		if err != nil {
			log.Printf("⚠️ Cliente Supabase falhou: %v", err)
		} else {
			dests, err := repoimpl.NewSupabaseDestinationsRepository(sbClient).ListDestinations(ctx)
			if err == nil && len(dests) > 0 {
				log.Printf("💾 Destinos carregados do Supabase (PostgREST)")
				return dests
			}
			log.Printf("⚠️ Leitura de destinos no Supabase falhou: %v", err)
		}
	}

	log.Printf("📦 Usando a tabela de destinos embutida")
	dests, _ := repoimpl.NewStaticDestinationsRepository().ListDestinations(ctx)
	return dests
}
