package helper

import (
	"strings"

	"GeradorRoles-App/internal/domain/model"
)

// NormalizeText prepara texto livre para comparação por substring
func NormalizeText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ContainsAnyKeyword verifica se o texto contém alguma das palavras-chave
// (comparação por substring, sem diferenciar maiúsculas)
func ContainsAnyKeyword(text string, keywords []string) bool {
	normalized := NormalizeText(text)
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(normalized, NormalizeText(kw)) {
			return true
		}
	}
	return false
}

// MatchesExperience verifica se alguma tag do destino aparece na experiência
// desejada, ou vice-versa (interseção por substring nos dois sentidos)
func MatchesExperience(dest *model.Destination, desiredExperience string) bool {
	experience := NormalizeText(desiredExperience)
	if experience == "" {
		return false
	}
	for _, tag := range dest.ExperienceTags {
		normalizedTag := NormalizeText(tag)
		if normalizedTag == "" {
			continue
		}
		if strings.Contains(experience, normalizedTag) || strings.Contains(normalizedTag, experience) {
			return true
		}
	}
	return false
}

// StablePartitionByExperience reordena os destinos colocando primeiro os que
// casam com a experiência desejada, preservando a ordem relativa original
// dentro de cada grupo (partição estável, não uma ordenação completa)
func StablePartitionByExperience(destinations []model.Destination, desiredExperience string) []model.Destination {
	matching := make([]model.Destination, 0, len(destinations))
	rest := make([]model.Destination, 0, len(destinations))
	for _, dest := range destinations {
		d := dest
		if MatchesExperience(&d, desiredExperience) {
			matching = append(matching, d)
		} else {
			rest = append(rest, d)
		}
	}
	return append(matching, rest...)
}

// AnyStopMatches verifica se alguma parada contém alguma das palavras-chave
// no nome, endereço ou descrição
func AnyStopMatches(stops []model.Stop, keywords []string) bool {
	for _, stop := range stops {
		combined := stop.Name + " " + stop.Address + " " + stop.Description
		if ContainsAnyKeyword(combined, keywords) {
			return true
		}
	}
	return false
}
