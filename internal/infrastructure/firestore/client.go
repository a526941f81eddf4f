package firestore

import (
	"context"
	"fmt"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
)

type FirestoreClient struct {
	client *firestore.Client
}

func NewFirestoreClient(ctx context.Context, projectID string) (*FirestoreClient, error) {
	var client *firestore.Client
	var err error

	// detecção de ambiente Cloud Run
	isCloudRun := os.Getenv("K_SERVICE") != "" || os.Getenv("PORT") != ""

	if isCloudRun {
		// no Cloud Run a autenticação padrão resolve as credenciais
		log.Printf("☁️ Ambiente Cloud Run: usando autenticação padrão")
		client, err = firestore.NewClient(ctx, projectID)
		if err != nil {
			return nil, fmt.Errorf("falha ao criar cliente Firestore com autenticação padrão: %w", err)
		}
		log.Printf("✅ Cliente Firestore inicializado para o projeto: %s (Cloud Run)", projectID)
	} else {
		// localmente usa variável de ambiente ou arquivo de credenciais
		credentialsFile := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")

		if credentialsFile == "" {
			credentialsFile = "gerador-roles-firestore-key.json"
		}

		if _, fileErr := os.Stat(credentialsFile); fileErr != nil {
			log.Printf("⚠️ Arquivo de credenciais não encontrado: %s, tentando autenticação padrão", credentialsFile)
			client, err = firestore.NewClient(ctx, projectID)
		} else {
			log.Printf("📄 Usando arquivo de credenciais: %s", credentialsFile)
			opt := option.WithCredentialsFile(credentialsFile)
			client, err = firestore.NewClient(ctx, projectID, opt)
		}

		if err != nil {
			return nil, fmt.Errorf("falha ao criar cliente Firestore: %w", err)
		}
		log.Printf("✅ Cliente Firestore inicializado para o projeto: %s", projectID)
	}

	return &FirestoreClient{client: client}, nil
}

func (fc *FirestoreClient) Close() error {
	return fc.client.Close()
}

func (fc *FirestoreClient) GetClient() *firestore.Client {
	return fc.client
}
