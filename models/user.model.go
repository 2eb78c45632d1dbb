package models

import (
	"time"

	"gorm.io/gorm"
)

// PaymentModel defines how an instructor is compensated
type PaymentModel string

const (
	PaymentModelFixedSalary PaymentModel = "FIXED_SALARY"
	PaymentModelProfitShare PaymentModel = "PROFIT_SHARE"
)

const (
	RoleStudent    = "STUDENT"
	RoleInstructor = "INSTRUCTOR"
	RoleAdmin      = "ADMIN"
)

type User struct {
	gorm.Model
	ProfileImage string `gorm:"default:''"`
	Name         string `gorm:"default:''"`
	Email        string `gorm:"unique;not null"`
	Mobile       string `gorm:"default:''"`
	Role         string `gorm:"default:'STUDENT'"` // STUDENT, INSTRUCTOR, ADMIN
	Password     string `gorm:"default:''"`

	// Instructor compensation settings (ignored for other roles)
	PaymentModel       PaymentModel `gorm:"type:varchar(20);default:'FIXED_SALARY'" json:"paymentModel"`
	ProfitSharePercent float64      `gorm:"default:0" json:"profitSharePercent"` // 0-100, PROFIT_SHARE only

	LastLogin time.Time `gorm:"default:NULL"`
	IsDeleted bool      `gorm:"default:false"`
}
