package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Exchange is one completed fund or withdraw operation in the durable
// journal.
type Exchange struct {
	ID              uint   `gorm:"primaryKey"`
	RequestID       string `gorm:"uniqueIndex"`
	Action          string `gorm:"index"`
	Sender          string `gorm:"index"`
	InputDenom      string
	InputAmount     decimal.Decimal `gorm:"type:decimal(78,0);"`
	OutputDenom     string
	OutputAmount    decimal.Decimal `gorm:"type:decimal(78,0);"`
	RemainderAmount decimal.Decimal `gorm:"type:decimal(78,0);"`
	TimeStamp       time.Time
}
