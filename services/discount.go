package services

import (
	"github.com/WaiYanHtun11/LLPMM-Online-Campus-sub001/models"

	"gorm.io/gorm"
)

// MultiCourseDiscountAmount is the flat discount for returning students,
// in whole currency units.
const MultiCourseDiscountAmount int64 = 10000

// ComputeDiscount checks a student's enrollment history and returns whether
// the multi-course discount applies and by how much. A student with at least
// one prior enrollment (any batch, any time) qualifies.
func ComputeDiscount(db *gorm.DB, studentID uint) (bool, int64, error) {
	var count int64
	if err := db.Model(&models.Enrollment{}).Where("student_id = ?", studentID).Count(&count).Error; err != nil {
		return false, 0, err
	}

	if count > 0 {
		return true, MultiCourseDiscountAmount, nil
	}
	return false, 0, nil
}
