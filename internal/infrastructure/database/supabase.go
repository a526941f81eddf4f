package database

import (
	"fmt"
	"os"

	"github.com/supabase-community/supabase-go"
)

// SupabaseClient é o wrapper do cliente Supabase (PostgREST)
type SupabaseClient struct {
	Client *supabase.Client
}

// NewSupabaseClient cria um novo cliente Supabase
func NewSupabaseClient() (*SupabaseClient, error) {
	supabaseURL := os.Getenv("SUPABASE_URL")
	supabaseAnonKey := os.Getenv("SUPABASE_ANON_KEY")

	if supabaseURL == "" {
		return nil, fmt.Errorf("variável de ambiente SUPABASE_URL não definida")
	}
	if supabaseAnonKey == "" {
		return nil, fmt.Errorf("variável de ambiente SUPABASE_ANON_KEY não definida")
	}

	client, err := supabase.NewClient(supabaseURL, supabaseAnonKey, &supabase.ClientOptions{})
	if err != nil {
		return nil, fmt.Errorf("falha ao inicializar o cliente Supabase: %w", err)
	}

	return &SupabaseClient{
		Client: client,
	}, nil
}

// GetClient retorna o cliente Supabase
func (sc *SupabaseClient) GetClient() *supabase.Client {
	return sc.Client
}

// HealthCheck verifica a inicialização do cliente
func (sc *SupabaseClient) HealthCheck() error {
	if sc.Client == nil {
		return fmt.Errorf("cliente Supabase não inicializado")
	}
	return nil
}
