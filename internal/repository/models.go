package repository

import "time"

const (
	StatusSubmitted = "submitted"
	StatusFailed    = "failed"
)

// Transaction is a journal entry for one state-changing contract call made
// from this wallet, whether or not the node accepted it.
type Transaction struct {
	ID              string    `gorm:"primaryKey;size:36"`
	TransactionHash string    `gorm:"size:66;index"` // empty when submission failed
	Method          string    `gorm:"size:64;not null"`
	FromAddress     string    `gorm:"size:42;not null;index"`
	CampaignID      *int64    // nil for createCampaign
	Value           string    `gorm:"size:100;not null"` // wei
	Status          string    `gorm:"size:16;not null"`
	Error           string    `gorm:"type:text"`
	CreatedAt       time.Time `gorm:"not null"`
}
