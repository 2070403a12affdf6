package models

import (
	"gorm.io/gorm"
)

// PurchaseStatus defines the status of a gold purchase
type PurchaseStatus string

const (
	PurchaseStatusSuccess PurchaseStatus = "success"
	PurchaseStatusPending PurchaseStatus = "pending"
	PurchaseStatusFailed  PurchaseStatus = "failed"
)

// Purchase is an immutable log entry of one digital gold acquisition.
// GoldGrams is always Amount / GoldPricePerGram at the stored price.
type Purchase struct {
	gorm.Model
	UserID           string         `gorm:"type:varchar(100);not null;index" json:"userId"`
	Amount           float64        `gorm:"not null" json:"amount"`
	GoldGrams        float64        `gorm:"not null" json:"goldGrams"`
	TransactionID    string         `gorm:"type:varchar(100);uniqueIndex;not null" json:"transactionId"`
	GoldPricePerGram float64        `gorm:"default:5500" json:"goldPricePerGram"`
	Status           PurchaseStatus `gorm:"type:varchar(20);default:'success'" json:"status"`
}

func (Purchase) TableName() string {
	return "purchases"
}
