package utils

import (
	"log"
	"time"

	"github.com/WaiYanHtun11/LLPMM-Online-Campus-sub001/database"
	"github.com/WaiYanHtun11/LLPMM-Online-Campus-sub001/models"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[INSTALLMENT-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// MarkOverdueInstallments flips pending installments past their due date to
// OVERDUE and sends the student a payment reminder. Returns how many
// installments were flipped.
func MarkOverdueInstallments() int {
	db := database.Database.Db
	now := time.Now()

	var overdue []models.Installment
	if err := db.Where("status = ? AND due_date < ?", models.InstallmentStatusPending, now).
		Find(&overdue).Error; err != nil {
		logScheduler("Error fetching overdue installments: " + err.Error())
		return 0
	}

	flipped := 0
	for _, inst := range overdue {
		err := db.Model(&models.Installment{}).Where("id = ? AND status = ?", inst.ID, models.InstallmentStatusPending).
			Update("status", models.InstallmentStatusOverdue).Error
		if err != nil {
			logScheduler("Error marking installment overdue: " + err.Error())
			continue
		}
		flipped++

		// Notify the student (async)
		go func(inst models.Installment) {
			var payment models.Payment
			if err := database.Database.Db.Where("id = ?", inst.PaymentID).First(&payment).Error; err != nil {
				return
			}
			var enrollment models.Enrollment
			if err := database.Database.Db.Where("id = ?", payment.EnrollmentID).First(&enrollment).Error; err != nil {
				return
			}
			var student models.User
			if err := database.Database.Db.Select("name, mobile").Where("id = ?", enrollment.StudentID).First(&student).Error; err != nil {
				return
			}
			var batch models.Batch
			if err := database.Database.Db.Where("id = ?", enrollment.BatchID).First(&batch).Error; err != nil {
				return
			}
			var course models.Course
			if err := database.Database.Db.Where("id = ?", batch.CourseID).First(&course).Error; err != nil {
				return
			}
			SendPaymentReminderSMS(student.Mobile, inst.Amount, course.Title)
		}(inst)
	}

	if flipped > 0 {
		logScheduler("Marked overdue installments: " + time.Now().Format("2006-01-02"))
	}
	return flipped
}

// InitializeInstallmentScheduler sets up the nightly overdue sweep
func InitializeInstallmentScheduler() *cron.Cron {
	logScheduler("Initializing installment scheduler...")

	c := cron.New()

	// Run daily just after midnight
	c.AddFunc("15 0 * * *", func() {
		logScheduler("Running nightly overdue sweep...")
		MarkOverdueInstallments()
	})

	c.Start()

	logScheduler("Installment scheduler started - runs daily at 00:15")
	return c
}
