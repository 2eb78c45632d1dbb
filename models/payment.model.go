package models

import "gorm.io/gorm"

// PaymentStatus defines the settlement state of a tuition payment
type PaymentStatus string

const (
	PaymentStatusPartial PaymentStatus = "PARTIAL"
	PaymentStatusPaid    PaymentStatus = "PAID"
)

// PlanType defines how the tuition total is split into installments
type PlanType string

const (
	PlanTypeFull         PlanType = "FULL"
	PlanTypeInstallment2 PlanType = "INSTALLMENT_2"
)

// Payment is the aggregate tuition obligation for one enrollment.
// All amounts are whole currency units; PaidAmount never exceeds TotalAmount.
type Payment struct {
	gorm.Model
	EnrollmentID uint `json:"enrollment_id" gorm:"uniqueIndex;not null"`

	BaseAmount     int64 `json:"base_amount" gorm:"not null"`     // course fee at enrollment time
	DiscountAmount int64 `json:"discount_amount" gorm:"default:0"`
	TotalAmount    int64 `json:"total_amount" gorm:"not null"` // base - discount, floored at 0
	PaidAmount     int64 `json:"paid_amount" gorm:"default:0"`

	Status   PaymentStatus `json:"status" gorm:"type:varchar(20);default:'PARTIAL'"`
	PlanType PlanType      `json:"plan_type" gorm:"type:varchar(20);not null"`

	MultiCourseDiscount bool   `json:"multi_course_discount" gorm:"default:false"`
	DiscountNote        string `json:"discount_note" gorm:"type:text"`

	// Relations - omit in JSON by default (only load when needed)
	Enrollment Enrollment `gorm:"foreignKey:EnrollmentID" json:"-"`
}

func (Payment) TableName() string {
	return "payments"
}
