package enrollmentController

import (
	"time"

	"github.com/WaiYanHtun11/LLPMM-Online-Campus-sub001/database"
	"github.com/WaiYanHtun11/LLPMM-Online-Campus-sub001/middleware"
	"github.com/WaiYanHtun11/LLPMM-Online-Campus-sub001/models"
	"github.com/WaiYanHtun11/LLPMM-Online-Campus-sub001/services"
	"github.com/WaiYanHtun11/LLPMM-Online-Campus-sub001/utils"

	"github.com/gofiber/fiber/v2"
)

// EnrollStudent enrolls a student into a batch with a payment plan
func EnrollStudent(c *fiber.Ctx) error {
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

	// Get validated request data
	reqData, ok := c.Locals("validatedEnrollment").(*struct {
		BatchID        uint   `json:"batch_id"`
		StudentID      uint   `json:"student_id"`
		PaymentPlan    string `json:"payment_plan"`
		InitialPayment bool   `json:"initial_payment"`
		PaymentMethod  string `json:"payment_method"`
		PaymentDate    string `json:"payment_date"`
		PaymentNotes   string `json:"payment_notes"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	req := services.EnrollRequest{
		BatchID:   reqData.BatchID,
		StudentID: reqData.StudentID,
		PlanType:  models.PlanType(reqData.PaymentPlan),
	}

	if reqData.InitialPayment {
		paidDate := time.Now()
		if reqData.PaymentDate != "" {
			// Format already checked by the validator
			paidDate, _ = time.Parse("2006-01-02", reqData.PaymentDate)
		}
		req.Initial = &services.InitialPayment{
			PaidDate: paidDate,
			Method:   reqData.PaymentMethod,
			Notes:    reqData.PaymentNotes,
		}
	}

	result, err := services.EnrollStudent(database.Database.Db, req)
	if err != nil {
		switch {
		case services.IsNotFound(err):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, err.Error(), nil)
		case services.IsConflict(err):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
		default:
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll student!", nil)
		}
	}

	// Send confirmation email (async, best-effort)
	go sendEnrollmentConfirmation(reqData.StudentID, reqData.BatchID)

	data := fiber.Map{
		"enrollment_id":    result.EnrollmentID,
		"discount_applied": result.DiscountApplied,
	}
	if result.SalaryWarning != "" {
		data["warning"] = result.SalaryWarning
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Student enrolled successfully!", data)
}

// UnenrollStudent removes an enrollment and its payment records
func UnenrollStudent(c *fiber.Ctx) error {
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

	enrollmentID := c.Locals("enrollmentID").(int)

	if _, err := services.UnenrollStudent(database.Database.Db, uint(enrollmentID)); err != nil {
		if services.IsNotFound(err) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to remove enrollment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Student unenrolled successfully!", nil)
}

// GetEnrollmentLedger returns the payment and installments for one enrollment
func GetEnrollmentLedger(c *fiber.Ctx) error {
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

	enrollmentID := c.Locals("enrollmentID").(int)

	var enrollment models.Enrollment
	if err := database.Database.Db.Where("id = ?", enrollmentID).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	var payment models.Payment
	if err := database.Database.Db.Where("enrollment_id = ?", enrollment.ID).First(&payment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Payment not found for enrollment!", nil)
	}

	var installments []models.Installment
	database.Database.Db.Where("payment_id = ?", payment.ID).Order("number asc").Find(&installments)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment ledger fetched successfully!", fiber.Map{
		"enrollment":   enrollment,
		"payment":      payment,
		"installments": installments,
	})
}

// sendEnrollmentConfirmation mails the student after a successful enrollment
func sendEnrollmentConfirmation(studentID, batchID uint) {
	db := database.Database.Db

	var student models.User
	if err := db.Select("name, email").Where("id = ?", studentID).First(&student).Error; err != nil || student.Email == "" {
		return
	}

	var batch models.Batch
	if err := db.Where("id = ?", batchID).First(&batch).Error; err != nil {
		return
	}

	var course models.Course
	if err := db.Where("id = ?", batch.CourseID).First(&course).Error; err != nil {
		return
	}

	utils.SendEnrollmentEmail(student.Email, student.Name, course.Title, batch.Name)
}
