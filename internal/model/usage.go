package model

import (
	"wrapsite_backend/pkg/database"

	"gorm.io/gorm"
)

// ConfiguratorCostPerUse is de kostprijs per AI-generatie in euro's.
const ConfiguratorCostPerUse = 0.15

// AIUsageRecord is een append-only kostenregel per configurator-gebruik.
// Records worden nooit verwijderd, ook niet als de bijbehorende lead
// verwijderd wordt: de teller is een monotone kostenweergave, geen leadtelling.
type AIUsageRecord struct {
	gorm.Model
	SubmissionID string  `json:"submission_id" gorm:"index"`
	CostEUR      float64 `json:"cost_eur" gorm:"not null"`
}

// TotalAIUsageCost sommeert alle kostregels.
func TotalAIUsageCost() (float64, error) {
	var total float64
	err := database.GetDB().Model(&AIUsageRecord{}).
		Select("COALESCE(SUM(cost_eur), 0)").
		Scan(&total).Error
	return total, err
}
