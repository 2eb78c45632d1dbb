package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/WaiYanHtun11/LLPMM-Online-Campus-sub001/models"

	"gorm.io/gorm"
)

// EnrollRequest carries the validated input for a new enrollment
type EnrollRequest struct {
	BatchID   uint
	StudentID uint
	PlanType  models.PlanType
	Initial   *InitialPayment
}

// EnrollResult is returned on a successful enrollment
type EnrollResult struct {
	EnrollmentID    uint
	DiscountApplied bool
	DiscountAmount  int64
	SalaryWarning   string // set when the post-commit salary recalc failed
}

// EnrollStudent atomically creates an enrollment, its payment and its
// installment schedule, then recalculates the instructor's salary.
//
// The capacity and duplicate checks run under a per-batch lock so two
// concurrent enrollments cannot both pass them; all writes share one
// database transaction, so a failure at any step leaves no partial rows.
func EnrollStudent(db *gorm.DB, req EnrollRequest) (*EnrollResult, error) {
	mu := lockBatch(req.BatchID)
	mu.Lock()
	defer mu.Unlock()

	var batch models.Batch
	if err := db.Where("id = ? AND is_deleted = false", req.BatchID).First(&batch).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrBatchNotFound
		}
		return nil, err
	}

	var student models.User
	if err := db.Where("id = ? AND role = ? AND is_deleted = false", req.StudentID, models.RoleStudent).First(&student).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	var enrolledCount int64
	if err := db.Model(&models.Enrollment{}).Where("batch_id = ?", req.BatchID).Count(&enrolledCount).Error; err != nil {
		return nil, err
	}
	if enrolledCount >= int64(batch.MaxStudents) {
		return nil, ErrBatchFull
	}

	var existing models.Enrollment
	err := db.Where("student_id = ? AND batch_id = ?", req.StudentID, req.BatchID).First(&existing).Error
	if err == nil {
		return nil, ErrAlreadyEnrolled
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	var course models.Course
	if err := db.Where("id = ?", batch.CourseID).First(&course).Error; err != nil {
		return nil, fmt.Errorf("load course for batch %d: %w", req.BatchID, err)
	}

	multiCourse, discount, err := ComputeDiscount(db, req.StudentID)
	if err != nil {
		return nil, err
	}
	// Clamp so TotalAmount = BaseAmount - DiscountAmount never goes negative
	if discount > course.Fee {
		discount = course.Fee
	}
	finalAmount := course.Fee - discount

	now := time.Now()

	tx := db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	enrollment := models.Enrollment{
		StudentID:    req.StudentID,
		BatchID:      req.BatchID,
		Status:       models.EnrollmentStatusActive,
		EnrolledDate: now,
	}
	if err := tx.Create(&enrollment).Error; err != nil {
		tx.Rollback()
		if isDuplicateKey(err) {
			// Unique index caught a concurrent enrollment from another process
			return nil, ErrAlreadyEnrolled
		}
		return nil, err
	}

	discountNote := ""
	if multiCourse {
		discountNote = "Multi-course student discount"
	}
	// Status is derived from paid vs total; a fully discounted fee leaves
	// nothing to collect, so it starts settled
	paymentStatus := models.PaymentStatusPartial
	if finalAmount == 0 {
		paymentStatus = models.PaymentStatusPaid
	}
	payment := models.Payment{
		EnrollmentID:        enrollment.ID,
		BaseAmount:          course.Fee,
		DiscountAmount:      discount,
		TotalAmount:         finalAmount,
		PaidAmount:          0,
		Status:              paymentStatus,
		PlanType:            req.PlanType,
		MultiCourseDiscount: multiCourse,
		DiscountNote:        discountNote,
	}
	if err := tx.Create(&payment).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	installments := BuildInstallmentPlan(finalAmount, req.PlanType, now, batch.StartDate, req.Initial)
	for i := range installments {
		installments[i].PaymentID = payment.ID
	}
	if err := tx.Create(&installments).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	// An initial payment settles the first installment on the spot
	if req.Initial != nil {
		paidAmount := installments[0].Amount
		status := models.PaymentStatusPartial
		if paidAmount >= payment.TotalAmount {
			status = models.PaymentStatusPaid
		}
		if err := tx.Model(&models.Payment{}).Where("id = ?", payment.ID).
			Updates(map[string]interface{}{"paid_amount": paidAmount, "status": status}).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	result := &EnrollResult{
		EnrollmentID:    enrollment.ID,
		DiscountApplied: multiCourse,
		DiscountAmount:  discount,
	}

	// Derived state only: a failure here must not undo the enrollment
	if _, _, err := RecalculateBatchSalary(db, req.BatchID); err != nil {
		log.Printf("Salary recalculation failed for batch %d after enrollment %d: %v", req.BatchID, enrollment.ID, err)
		result.SalaryWarning = "enrollment saved, but instructor salary recalculation failed"
	}

	return result, nil
}

// UnenrollStudent removes an enrollment together with its payment and
// installments, then recalculates the instructor's salary for the batch.
func UnenrollStudent(db *gorm.DB, enrollmentID uint) (uint, error) {
	var enrollment models.Enrollment
	if err := db.Where("id = ?", enrollmentID).First(&enrollment).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, ErrEnrollmentNotFound
		}
		return 0, err
	}

	mu := lockBatch(enrollment.BatchID)
	mu.Lock()
	defer mu.Unlock()

	tx := db.Begin()
	if tx.Error != nil {
		return 0, tx.Error
	}

	// Hard deletes: the unique (student, batch) index must allow re-enrollment
	var payment models.Payment
	err := tx.Where("enrollment_id = ?", enrollment.ID).First(&payment).Error
	if err == nil {
		if err := tx.Unscoped().Where("payment_id = ?", payment.ID).Delete(&models.Installment{}).Error; err != nil {
			tx.Rollback()
			return 0, err
		}
		if err := tx.Unscoped().Delete(&payment).Error; err != nil {
			tx.Rollback()
			return 0, err
		}
	} else if err != gorm.ErrRecordNotFound {
		tx.Rollback()
		return 0, err
	}

	if err := tx.Unscoped().Delete(&enrollment).Error; err != nil {
		tx.Rollback()
		return 0, err
	}

	if err := tx.Commit().Error; err != nil {
		return 0, err
	}

	if _, _, err := RecalculateBatchSalary(db, enrollment.BatchID); err != nil {
		log.Printf("Salary recalculation failed for batch %d after unenrollment %d: %v", enrollment.BatchID, enrollmentID, err)
	}

	return enrollment.BatchID, nil
}

// isDuplicateKey reports whether err is a unique constraint violation
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}
