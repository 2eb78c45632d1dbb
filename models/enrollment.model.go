package models

import (
	"time"

	"gorm.io/gorm"
)

const EnrollmentStatusActive = "ACTIVE"

// Enrollment links one student to one batch
type Enrollment struct {
	gorm.Model
	StudentID    uint      `json:"student_id" gorm:"not null;uniqueIndex:idx_student_batch"`
	BatchID      uint      `json:"batch_id" gorm:"not null;uniqueIndex:idx_student_batch"`
	Status       string    `json:"status" gorm:"default:'ACTIVE'"`
	EnrolledDate time.Time `json:"enrolled_date"`

	// Relations - omit in JSON by default (only load when needed)
	Student User  `gorm:"foreignKey:StudentID" json:"-"`
	Batch   Batch `gorm:"foreignKey:BatchID" json:"-"`
}
