package paymentController

import (
	"time"

	"github.com/WaiYanHtun11/LLPMM-Online-Campus-sub001/database"
	"github.com/WaiYanHtun11/LLPMM-Online-Campus-sub001/middleware"
	"github.com/WaiYanHtun11/LLPMM-Online-Campus-sub001/models"
	"github.com/WaiYanHtun11/LLPMM-Online-Campus-sub001/services"
	"github.com/WaiYanHtun11/LLPMM-Online-Campus-sub001/utils"

	"github.com/gofiber/fiber/v2"
)

// RecordPayment settles one installment and updates the parent payment totals
func RecordPayment(c *fiber.Ctx) error {
	// Check admin role
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.Role != models.RoleAdmin {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	reqData, ok := c.Locals("validatedRecordPayment").(*struct {
		InstallmentID uint   `json:"installment_id"`
		PaymentID     uint   `json:"payment_id"`
		PaidDate      string `json:"paid_date"`
		PaymentMethod string `json:"payment_method"`
		Notes         string `json:"notes"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	paidDate := time.Now()
	if reqData.PaidDate != "" {
		// Format already checked by the validator
		paidDate, _ = time.Parse("2006-01-02", reqData.PaidDate)
	}

	result, err := services.RecordInstallmentPayment(database.Database.Db, services.RecordPaymentRequest{
		InstallmentID: reqData.InstallmentID,
		PaymentID:     reqData.PaymentID,
		PaidDate:      paidDate,
		Method:        reqData.PaymentMethod,
		Notes:         reqData.Notes,
	})
	if err != nil {
		switch {
		case services.IsNotFound(err):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, err.Error(), nil)
		case services.IsConflict(err):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
		default:
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record payment!", nil)
		}
	}

	// Send receipt email (async, best-effort)
	go sendPaymentReceipt(reqData.InstallmentID, result.ReceiptRef)

	data := fiber.Map{
		"paid_amount":    result.PaidAmount,
		"payment_status": result.PaymentStatus,
		"receipt_ref":    result.ReceiptRef,
	}
	if result.SalaryWarning != "" {
		data["warning"] = result.SalaryWarning
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment recorded successfully!", data)
}

// sendPaymentReceipt mails the student a receipt for a settled installment
func sendPaymentReceipt(installmentID uint, receiptRef string) {
	db := database.Database.Db

	var installment models.Installment
	if err := db.Where("id = ?", installmentID).First(&installment).Error; err != nil {
		return
	}

	var payment models.Payment
	if err := db.Where("id = ?", installment.PaymentID).First(&payment).Error; err != nil {
		return
	}

	var enrollment models.Enrollment
	if err := db.Where("id = ?", payment.EnrollmentID).First(&enrollment).Error; err != nil {
		return
	}

	var student models.User
	if err := db.Select("name, email").Where("id = ?", enrollment.StudentID).First(&student).Error; err != nil || student.Email == "" {
		return
	}

	utils.SendPaymentReceiptEmail(student.Email, student.Name, installment.Amount, receiptRef)
}
