package models

// ContractState is the singleton configuration row for a deployed bridge.
// Attribute lists are stored as comma-joined text; attribute names never
// contain commas.
type ContractState struct {
	ID                         uint `gorm:"primaryKey"`
	Admin                      string
	ContractName               string
	ContractType               string
	ContractVersion            string
	DepositMarkerName          string
	DepositMarkerPrecision     uint64
	TradingMarkerName          string
	TradingMarkerPrecision     uint64
	RequiredDepositAttributes  string
	RequiredWithdrawAttributes string
}
