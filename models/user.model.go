package models

import (
	"gorm.io/gorm"
)

// User holds the running investment totals for one customer. Rows are
// created on first purchase and only ever incremented after that.
type User struct {
	gorm.Model      `json:"-"`
	UserID          string  `gorm:"type:varchar(100);uniqueIndex;not null" json:"userId"`
	Name            string  `gorm:"type:varchar(255);default:'Anonymous User'" json:"name"`
	Email           string  `gorm:"type:varchar(255);default:''" json:"email"`
	TotalInvestment float64 `gorm:"default:0" json:"totalInvestment"`
	TotalGoldGrams  float64 `gorm:"default:0" json:"totalGoldGrams"`
}

func (User) TableName() string {
	return "users"
}
