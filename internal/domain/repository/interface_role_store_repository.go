package repository

import (
	"GeradorRoles-App/internal/domain/model"
	"context"
)

// RoleStoreRepository persiste propostas de rolê geradas para consulta posterior
type RoleStoreRepository interface {
	// SaveRoleProposal salva a proposta com TTL e retorna o proposal_id gerado
	SaveRoleProposal(ctx context.Context, proposal *model.RoleProposal, ttlHours int) (string, error)

	// GetRoleProposal busca uma proposta pelo id; retorna model.ErrProposalNotFound
	// quando o id não existe ou o documento expirou
	GetRoleProposal(ctx context.Context, proposalID string) (*model.RoleProposal, error)
}
