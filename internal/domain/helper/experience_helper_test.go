package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"GeradorRoles-App/internal/domain/model"
)

func TestMatchesExperience(t *testing.T) {
	dest := &model.Destination{
		Name:           "Guararema",
		ExperienceTags: []string{"rio", "café da manhã", "estrada"},
	}

	t.Run("tag contida na experiência casa", func(t *testing.T) {
		assert.True(t, MatchesExperience(dest, "quero um rio com paisagem"))
	})

	t.Run("experiência contida na tag casa", func(t *testing.T) {
		assert.True(t, MatchesExperience(dest, "café"))
	})

	t.Run("sem interseção não casa", func(t *testing.T) {
		assert.False(t, MatchesExperience(dest, "balada e vida noturna"))
	})

	t.Run("experiência vazia nunca casa", func(t *testing.T) {
		assert.False(t, MatchesExperience(dest, "  "))
	})
}

func TestStablePartitionByExperience(t *testing.T) {
	destinations := []model.Destination{
		{Name: "A", ExperienceTags: []string{"praia"}},
		{Name: "B", ExperienceTags: []string{"serra"}},
		{Name: "C", ExperienceTags: []string{"praia", "história"}},
		{Name: "D", ExperienceTags: []string{"arte"}},
	}

	t.Run("quem casa vem primeiro, ordem relativa preservada", func(t *testing.T) {
		ordered := StablePartitionByExperience(destinations, "praia")
		names := []string{ordered[0].Name, ordered[1].Name, ordered[2].Name, ordered[3].Name}
		assert.Equal(t, []string{"A", "C", "B", "D"}, names)
	})

	t.Run("sem match mantém a ordem original", func(t *testing.T) {
		ordered := StablePartitionByExperience(destinations, "zzz")
		names := []string{ordered[0].Name, ordered[1].Name, ordered[2].Name, ordered[3].Name}
		assert.Equal(t, []string{"A", "B", "C", "D"}, names)
	})

	t.Run("não altera a fatia de entrada", func(t *testing.T) {
		_ = StablePartitionByExperience(destinations, "serra")
		assert.Equal(t, "A", destinations[0].Name)
		assert.Equal(t, "B", destinations[1].Name)
	})
}

func TestContainsAnyKeyword(t *testing.T) {
	keywords := []string{"serra", "montanha"}

	assert.True(t, ContainsAnyKeyword("Subida da Serra do Mar", keywords))
	assert.True(t, ContainsAnyKeyword("MONTANHA gelada", keywords))
	assert.False(t, ContainsAnyKeyword("orla da praia", keywords))
	assert.False(t, ContainsAnyKeyword("", keywords))
}
