package db

import (
	"fmt"

	"github.com/provlabs/funding-trading-bridge/db/models"
	"github.com/provlabs/funding-trading-bridge/types"
	"gorm.io/gorm"
)

// RecordExchange appends one completed operation to the durable journal.
func RecordExchange(db *gorm.DB, exchange models.Exchange) error {
	if err := db.Create(&exchange).Error; err != nil {
		return fmt.Errorf("%w: recording exchange [%s]: %v", types.ErrStorage, exchange.RequestID, err)
	}
	return nil
}

// GetRecentExchanges returns up to limit journal entries, newest first.
func GetRecentExchanges(db *gorm.DB, limit int) ([]models.Exchange, error) {
	var exchanges []models.Exchange
	result := db.Order("id DESC").Limit(limit).Find(&exchanges)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: listing exchanges: %v", types.ErrStorage, result.Error)
	}
	return exchanges, nil
}

// GetExchangeCount reports the journal size.
func GetExchangeCount(db *gorm.DB) (int64, error) {
	var count int64
	if err := db.Model(&models.Exchange{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("%w: counting exchanges: %v", types.ErrStorage, err)
	}
	return count, nil
}
