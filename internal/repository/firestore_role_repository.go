package repository

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"GeradorRoles-App/internal/domain/model"
	"GeradorRoles-App/internal/domain/repository"
)

const roleProposalsCollection = "roleProposals"

// FirestoreRoleRepository persiste propostas de rolê no Firestore com TTL
type FirestoreRoleRepository struct {
	client *firestore.Client
}

// NewFirestoreRoleRepository cria o repositório de propostas
func NewFirestoreRoleRepository(client *firestore.Client) repository.RoleStoreRepository {
	return &FirestoreRoleRepository{
		client: client,
	}
}

// SaveRoleProposal salva a proposta e retorna o proposal_id usado no documento
func (r *FirestoreRoleRepository) SaveRoleProposal(ctx context.Context, proposal *model.RoleProposal, ttlHours int) (string, error) {
	proposalID := proposal.ProposalID
	if proposalID == "" {
		proposalID = fmt.Sprintf("role_%s", uuid.New().String())
	}

	firestoreData := proposal.ToFirestoreRoleProposal(ttlHours)

	_, err := r.client.Collection(roleProposalsCollection).Doc(proposalID).Set(ctx, firestoreData)
	if err != nil {
		log.Printf("❌ Falha ao salvar proposta %s: %v", proposalID, err)
		return "", fmt.Errorf("falha ao salvar a proposta de rolê: %w", err)
	}

	log.Printf("✅ Proposta salva: %s (expira em %d horas)", proposalID, ttlHours)
	return proposalID, nil
}

// GetRoleProposal busca uma proposta pelo id. Documentos expirados são
// tratados como não encontrados mesmo antes da limpeza do TTL do Firestore.
func (r *FirestoreRoleRepository) GetRoleProposal(ctx context.Context, proposalID string) (*model.RoleProposal, error) {
	doc, err := r.client.Collection(roleProposalsCollection).Doc(proposalID).Get(ctx)
	if err != nil {
		if status := err.Error(); strings.Contains(status, "NotFound") || strings.Contains(status, "not found") {
			return nil, model.ErrProposalNotFound
		}
		return nil, fmt.Errorf("falha ao buscar a proposta de rolê: %w", err)
	}

	var firestoreData model.FirestoreRoleProposal
	if err := doc.DataTo(&firestoreData); err != nil {
		return nil, fmt.Errorf("falha ao converter o documento da proposta: %w", err)
	}

	if time.Now().After(firestoreData.ExpireAt) {
		return nil, model.ErrProposalNotFound
	}

	log.Printf("✅ Proposta recuperada: %s", proposalID)
	return firestoreData.ToRoleProposal(proposalID), nil
}
