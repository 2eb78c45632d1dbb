package models

import (
	"time"

	"gorm.io/gorm"
)

// InstallmentStatus defines the state of a single scheduled installment
type InstallmentStatus string

const (
	InstallmentStatusPending InstallmentStatus = "PENDING"
	InstallmentStatusPaid    InstallmentStatus = "PAID"
	InstallmentStatusOverdue InstallmentStatus = "OVERDUE"
)

// DueType defines how an installment's due date was derived
type DueType string

const (
	DueTypeEnrollment        DueType = "ENROLLMENT"
	DueTypeCourseStartPlus4W DueType = "COURSE_START_PLUS_4W"
)

// Installment is one scheduled partial payment belonging to a Payment.
// The installment amounts of a payment always sum to its TotalAmount.
type Installment struct {
	gorm.Model
	PaymentID uint `json:"payment_id" gorm:"index;not null"`

	Number  int       `json:"number" gorm:"not null"` // 1 or 2
	Amount  int64     `json:"amount" gorm:"not null"`
	DueType DueType   `json:"due_type" gorm:"type:varchar(30);not null"`
	DueDate time.Time `json:"due_date"`

	Status        InstallmentStatus `json:"status" gorm:"type:varchar(20);default:'PENDING'"`
	PaidDate      *time.Time        `json:"paid_date"`
	PaymentMethod string            `json:"payment_method" gorm:"type:varchar(50)"`
	Notes         string            `json:"notes" gorm:"type:text"`
	ReceiptRef    string            `json:"receipt_ref" gorm:"type:varchar(64)"` // set when paid

	// Relations - omit in JSON by default (only load when needed)
	Payment Payment `gorm:"foreignKey:PaymentID" json:"-"`
}

func (Installment) TableName() string {
	return "installments"
}
