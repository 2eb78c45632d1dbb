package models

import (
	"time"

	"gorm.io/gorm"
)

// Expense is a cost recorded against a batch, deducted before profit sharing
type Expense struct {
	gorm.Model
	BatchID     uint      `json:"batch_id" gorm:"index;not null"`
	Amount      int64     `json:"amount" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text"`
	ExpenseDate time.Time `json:"expense_date"`
	IsDeleted   bool      `gorm:"default:false"`

	// Relations - omit in JSON by default (only load when needed)
	Batch Batch `gorm:"foreignKey:BatchID" json:"-"`
}
