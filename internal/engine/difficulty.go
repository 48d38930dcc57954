package engine

import "github.com/jengzang/geopick-backend-go/internal/models"

// pickTier draws a target difficulty from the mode's cumulative weights
func (e *Engine) pickTier() models.Difficulty {
	r := e.rng.Float64()
	switch {
	case r < e.cfg.EasyWeight:
		return models.DifficultyEasy
	case r < e.cfg.EasyWeight+e.cfg.MediumWeight:
		return models.DifficultyMedium
	default:
		return models.DifficultyHard
	}
}

// tierFallbackOrder returns the fixed tier preference for a target:
// target first, then adjacent, then the remaining tier
func tierFallbackOrder(target models.Difficulty) []models.Difficulty {
	switch target {
	case models.DifficultyEasy:
		return []models.Difficulty{models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard}
	case models.DifficultyHard:
		return []models.Difficulty{models.DifficultyHard, models.DifficultyMedium, models.DifficultyEasy}
	default:
		return []models.Difficulty{models.DifficultyMedium, models.DifficultyEasy, models.DifficultyHard}
	}
}
