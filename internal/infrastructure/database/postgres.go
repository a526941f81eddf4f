package database

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"
)

// PostgreSQLClient é o cliente de conexão direta com o PostgreSQL do Supabase
type PostgreSQLClient struct {
	DB *sql.DB
}

// NewPostgreSQLClient cria um novo cliente PostgreSQL
func NewPostgreSQLClient() (*PostgreSQLClient, error) {
	supabaseURL := os.Getenv("SUPABASE_URL")
	supabasePassword := os.Getenv("SUPABASE_DB_PASSWORD")

	if supabaseURL == "" {
		return nil, fmt.Errorf("variável de ambiente SUPABASE_URL não definida")
	}
	if supabasePassword == "" {
		return nil, fmt.Errorf("variável de ambiente SUPABASE_DB_PASSWORD não definida")
	}

	// extrai o host da URL do Supabase (https://xxx.supabase.co -> xxx.supabase.co)
	host := supabaseURL[8:]

	// string de conexão do pooler do Supabase (porta 6543)
	connStr := fmt.Sprintf(
		"host=db.%s port=6543 user=postgres password=%s dbname=postgres sslmode=require",
		host, supabasePassword,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("falha ao inicializar a conexão PostgreSQL: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("falha ao conectar no PostgreSQL: %w", err)
	}

	return &PostgreSQLClient{
		DB: db,
	}, nil
}

// NewPostgreSQLClientWithRetry tenta conectar com retries em intervalo fixo
func NewPostgreSQLClientWithRetry(maxAttempts int, interval time.Duration) (*PostgreSQLClient, error) {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		client, err := NewPostgreSQLClient()
		if err == nil {
			return client, nil
		}
		lastErr = err
		if attempt < maxAttempts {
			time.Sleep(interval)
		}
	}
	return nil, fmt.Errorf("conexão PostgreSQL falhou após %d tentativas: %w", maxAttempts, lastErr)
}

// Close fecha a conexão com o banco
func (pc *PostgreSQLClient) Close() error {
	if pc.DB != nil {
		return pc.DB.Close()
	}
	return nil
}

// HealthCheck verifica a saúde da conexão com o banco
func (pc *PostgreSQLClient) HealthCheck() error {
	if pc.DB == nil {
		return fmt.Errorf("cliente PostgreSQL não inicializado")
	}
	return pc.DB.Ping()
}
