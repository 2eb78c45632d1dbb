package services

import (
	"time"

	"github.com/WaiYanHtun11/LLPMM-Online-Campus-sub001/models"

	"github.com/google/uuid"
)

// secondInstallmentOffsetDays is how long after batch start the second
// installment falls due.
const secondInstallmentOffsetDays = 28

// InitialPayment describes a payment made at the enrollment desk, applied
// to the first installment of the plan.
type InitialPayment struct {
	PaidDate time.Time
	Method   string
	Notes    string
}

// BuildInstallmentPlan splits finalAmount into the installment schedule for
// the given plan. Amounts are whole currency units and always sum exactly to
// finalAmount: the first installment of a two-part plan takes the ceiling of
// the half so it is never smaller than the second.
func BuildInstallmentPlan(finalAmount int64, planType models.PlanType, enrolledDate, batchStart time.Time, initial *InitialPayment) []models.Installment {
	if planType == models.PlanTypeInstallment2 {
		first := (finalAmount + 1) / 2
		second := finalAmount - first

		firstInst := models.Installment{
			Number:  1,
			Amount:  first,
			DueType: models.DueTypeEnrollment,
			DueDate: enrolledDate,
			Status:  models.InstallmentStatusPending,
		}
		applyInitialPayment(&firstInst, initial)

		return []models.Installment{
			firstInst,
			{
				Number:  2,
				Amount:  second,
				DueType: models.DueTypeCourseStartPlus4W,
				DueDate: batchStart.AddDate(0, 0, secondInstallmentOffsetDays),
				Status:  models.InstallmentStatusPending,
			},
		}
	}

	// FULL plan: the whole amount is due at enrollment
	inst := models.Installment{
		Number:  1,
		Amount:  finalAmount,
		DueType: models.DueTypeEnrollment,
		DueDate: enrolledDate,
		Status:  models.InstallmentStatusPending,
	}
	applyInitialPayment(&inst, initial)

	return []models.Installment{inst}
}

// applyInitialPayment marks an installment paid with the details collected
// at the enrollment desk
func applyInitialPayment(inst *models.Installment, initial *InitialPayment) {
	if initial == nil {
		return
	}
	paidDate := initial.PaidDate
	inst.Status = models.InstallmentStatusPaid
	inst.PaidDate = &paidDate
	inst.PaymentMethod = initial.Method
	inst.Notes = initial.Notes
	inst.ReceiptRef = uuid.NewString()
}
