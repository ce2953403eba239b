package service

import "marauder-server/internal/models"

// LevelForExperience выводит уровень из опыта: level = xp/1000 + 1.
// Уровень никогда не хранится независимо от опыта. Каноническая формула;
// начисление опыта применяет то же выражение в SQL
// (ProfileRepository.AddExperienceTx), чтобы пересчет шел в одном UPDATE.
func LevelForExperience(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/models.ExperiencePerLevel + 1
}
