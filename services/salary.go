package services

import (
	"fmt"
	"math"

	"github.com/WaiYanHtun11/LLPMM-Online-Campus-sub001/models"

	"gorm.io/gorm"
)

// RecalculateBatchSalary recomputes the instructor's profit-share salary for
// a batch from the full set of its payments and expenses. It is not
// incremental, which makes it idempotent and safe to call after any event
// that changes batch income. Instructors on a fixed salary are a no-op.
//
// salary = round((total income - total expenses) * percent / 100), rounded
// half away from zero (math.Round).
func RecalculateBatchSalary(db *gorm.DB, batchID uint) (bool, int64, error) {
	var batch models.Batch
	if err := db.Where("id = ? AND is_deleted = false", batchID).First(&batch).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, 0, ErrBatchNotFound
		}
		return false, 0, err
	}

	var instructor models.User
	if err := db.Where("id = ? AND is_deleted = false", batch.InstructorID).First(&instructor).Error; err != nil {
		return false, 0, fmt.Errorf("load instructor for batch %d: %w", batchID, err)
	}

	if instructor.PaymentModel != models.PaymentModelProfitShare {
		return false, 0, nil
	}

	// Batch income is the obligated total of every enrollment, paid or not
	var totalIncome int64
	err := db.Model(&models.Payment{}).
		Joins("JOIN enrollments ON enrollments.id = payments.enrollment_id").
		Where("enrollments.batch_id = ? AND enrollments.deleted_at IS NULL", batchID).
		Select("COALESCE(SUM(payments.total_amount), 0)").
		Scan(&totalIncome).Error
	if err != nil {
		return false, 0, fmt.Errorf("sum batch income: %w", err)
	}

	var totalExpenses int64
	err = db.Model(&models.Expense{}).
		Where("batch_id = ? AND is_deleted = false", batchID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&totalExpenses).Error
	if err != nil {
		return false, 0, fmt.Errorf("sum batch expenses: %w", err)
	}

	profit := totalIncome - totalExpenses
	salary := int64(math.Round(float64(profit) * instructor.ProfitSharePercent / 100))

	if err := db.Model(&models.Batch{}).Where("id = ?", batch.ID).Update("instructor_salary", salary).Error; err != nil {
		return false, 0, fmt.Errorf("persist instructor salary: %w", err)
	}

	return true, salary, nil
}
