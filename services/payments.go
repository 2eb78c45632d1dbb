package services

import (
	"log"
	"time"

	"github.com/WaiYanHtun11/LLPMM-Online-Campus-sub001/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecordPaymentRequest carries the validated input for settling one installment
type RecordPaymentRequest struct {
	InstallmentID uint
	PaymentID     uint
	PaidDate      time.Time
	Method        string
	Notes         string
}

// PaymentResult is returned on a successfully recorded installment payment
type PaymentResult struct {
	PaidAmount    int64
	PaymentStatus models.PaymentStatus
	ReceiptRef    string
	SalaryWarning string
}

// RecordInstallmentPayment marks an installment paid and rolls its amount up
// into the parent payment's paid total and status. Both updates share one
// transaction, so a failed payment update also reverts the installment. The
// instructor salary is recalculated afterwards so the ledger and the derived
// figure stay in step for every income event.
func RecordInstallmentPayment(db *gorm.DB, req RecordPaymentRequest) (*PaymentResult, error) {
	var installment models.Installment
	if err := db.Where("id = ?", req.InstallmentID).First(&installment).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrInstallmentNotFound
		}
		return nil, err
	}

	if installment.PaymentID != req.PaymentID {
		return nil, ErrPaymentNotFound
	}

	if installment.Status == models.InstallmentStatusPaid {
		return nil, ErrAlreadyPaid
	}

	var payment models.Payment
	if err := db.Where("id = ?", req.PaymentID).First(&payment).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			// Violates the one-payment-per-enrollment invariant; data needs repair
			log.Printf("Integrity error: installment %d references missing payment %d", installment.ID, req.PaymentID)
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}

	paidDate := req.PaidDate
	if paidDate.IsZero() {
		paidDate = time.Now()
	}
	receiptRef := uuid.NewString()

	tx := db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	// Guarded update: a concurrent recording of the same installment loses here
	res := tx.Model(&models.Installment{}).
		Where("id = ? AND status <> ?", installment.ID, models.InstallmentStatusPaid).
		Updates(map[string]interface{}{
			"status":         models.InstallmentStatusPaid,
			"paid_date":      paidDate,
			"payment_method": req.Method,
			"notes":          req.Notes,
			"receipt_ref":    receiptRef,
		})
	if res.Error != nil {
		tx.Rollback()
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		return nil, ErrAlreadyPaid
	}

	// Increment and derive the status in SQL so concurrent recordings of the
	// payment's other installments cannot lose an update
	err := tx.Model(&models.Payment{}).Where("id = ?", payment.ID).
		Updates(map[string]interface{}{
			"paid_amount": gorm.Expr("paid_amount + ?", installment.Amount),
			"status": gorm.Expr(
				"CASE WHEN paid_amount + ? >= total_amount THEN ? ELSE ? END",
				installment.Amount, models.PaymentStatusPaid, models.PaymentStatusPartial,
			),
		}).Error
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Where("id = ?", payment.ID).First(&payment).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	result := &PaymentResult{
		PaidAmount:    payment.PaidAmount,
		PaymentStatus: payment.Status,
		ReceiptRef:    receiptRef,
	}

	var enrollment models.Enrollment
	if err := db.Where("id = ?", payment.EnrollmentID).First(&enrollment).Error; err == nil {
		if _, _, err := RecalculateBatchSalary(db, enrollment.BatchID); err != nil {
			log.Printf("Salary recalculation failed for batch %d after payment on installment %d: %v", enrollment.BatchID, installment.ID, err)
			result.SalaryWarning = "payment saved, but instructor salary recalculation failed"
		}
	}

	return result, nil
}
