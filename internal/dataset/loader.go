package dataset

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jengzang/geopick-backend-go/internal/models"
)

// Load reads the curated location list and partitions it by mode tag
func Load(path string) (map[models.Mode][]models.LocationRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	var records []models.LocationRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse dataset: %w", err)
	}

	byMode := make(map[models.Mode][]models.LocationRecord)
	for _, rec := range records {
		byMode[rec.Mode] = append(byMode[rec.Mode], rec)
	}
	return byMode, nil
}
