package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"GeradorRoles-App/internal/domain/model"
	"GeradorRoles-App/internal/usecase"
)

// RoleProposalHandler é o handler da API de geração de rolês
type RoleProposalHandler struct {
	roleUseCase usecase.RoleGenerationUseCase
}

// NewRoleProposalHandler cria um novo RoleProposalHandler
func NewRoleProposalHandler(roleUseCase usecase.RoleGenerationUseCase) *RoleProposalHandler {
	return &RoleProposalHandler{
		roleUseCase: roleUseCase,
	}
}

// PostRoleProposals gera as sugestões de rolê
// POST /roles/proposals
func (h *RoleProposalHandler) PostRoleProposals(c *gin.Context) {
	var payload model.TripRequestPayload

	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "formato de requisição inválido",
			"details": err.Error(),
		})
		return
	}

	if err := h.validatePayload(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "erro de validação",
			"details": err.Error(),
		})
		return
	}

	req, err := model.NewTripRequest(&payload)
	if err != nil {
		var incomplete *model.RequestIncompleteError
		if errors.As(err, &incomplete) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "requisição incompleta",
				"details": incomplete.Error(),
				"campos":  incomplete.Fields,
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "requisição inválida",
			"details": err.Error(),
		})
		return
	}

	proposal, err := h.roleUseCase.GenerateProposal(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "falha na geração do rolê",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, proposal)
}

// validatePayload faz a validação detalhada de faixas dos campos
func (h *RoleProposalHandler) validatePayload(payload *model.TripRequestPayload) error {
	if payload.TankCapacityLiters < 0 || payload.TankCapacityLiters > 60 {
		return &ValidationError{Field: "capacidade_tanque_litros", Message: "informe a capacidade do tanque entre 1 e 60 litros"}
	}
	if payload.FuelEconomyKmPerLiter < 0 || payload.FuelEconomyKmPerLiter > 100 {
		return &ValidationError{Field: "consumo_km_por_litro", Message: "informe o consumo entre 1 e 100 km/l"}
	}
	if payload.BudgetBRL != nil && *payload.BudgetBRL < 0 {
		return &ValidationError{Field: "orcamento_brl", Message: "o orçamento não pode ser negativo"}
	}
	return nil
}

// ValidationError representa um erro de validação de campo
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// GetRoleProposal busca uma proposta de rolê persistida
// GET /roles/proposals/:id
func (h *RoleProposalHandler) GetRoleProposal(c *gin.Context) {
	proposalID := c.Param("id")
	if proposalID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "proposal_id não informado",
		})
		return
	}

	proposal, err := h.roleUseCase.GetRoleProposal(c.Request.Context(), proposalID)
	if err != nil {
		if errors.Is(err, model.ErrProposalNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "proposta de rolê não encontrada",
				"details": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "falha ao buscar a proposta de rolê",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, proposal)
}
