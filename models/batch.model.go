package models

import (
	"time"

	"gorm.io/gorm"
)

// Batch is a scheduled offering of a course with an assigned instructor and a capacity
type Batch struct {
	gorm.Model
	CourseID     uint      `json:"course_id" gorm:"index;not null"`
	InstructorID uint      `json:"instructor_id" gorm:"index;not null"`
	Name         string    `json:"name"`
	MaxStudents  int       `json:"max_students" gorm:"default:0"`
	StartDate    time.Time `json:"start_date"`

	// Derived figure, owned by the salary recalculator. Never edited by hand.
	InstructorSalary int64 `json:"instructor_salary" gorm:"default:0"`

	IsDeleted bool `gorm:"default:false"`

	// Relations - omit in JSON by default (only load when needed)
	Course     Course `gorm:"foreignKey:CourseID" json:"-"`
	Instructor User   `gorm:"foreignKey:InstructorID" json:"-"`
}
