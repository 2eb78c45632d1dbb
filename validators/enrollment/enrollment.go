package enrollmentValidator

import (
	"strconv"
	"strings"
	"time"

	"github.com/WaiYanHtun11/LLPMM-Online-Campus-sub001/middleware"
	"github.com/WaiYanHtun11/LLPMM-Online-Campus-sub001/models"

	"github.com/gofiber/fiber/v2"
)

// Enroll validates a new enrollment request
func Enroll() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			BatchID        uint   `json:"batch_id"`
			StudentID      uint   `json:"student_id"`
			PaymentPlan    string `json:"payment_plan"`
			InitialPayment bool   `json:"initial_payment"`
			PaymentMethod  string `json:"payment_method"`
			PaymentDate    string `json:"payment_date"`
			PaymentNotes   string `json:"payment_notes"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.BatchID == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Batch ID is required!", nil)
		}

		if reqData.StudentID == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Student ID is required!", nil)
		}

		errors := make(map[string]string)

		reqData.PaymentPlan = strings.ToUpper(strings.TrimSpace(reqData.PaymentPlan))
		reqData.PaymentMethod = strings.TrimSpace(reqData.PaymentMethod)
		reqData.PaymentDate = strings.TrimSpace(reqData.PaymentDate)
		reqData.PaymentNotes = strings.TrimSpace(reqData.PaymentNotes)

		if reqData.PaymentPlan == "" {
			errors["payment_plan"] = "Payment plan is required!"
		} else if reqData.PaymentPlan != string(models.PlanTypeFull) && reqData.PaymentPlan != string(models.PlanTypeInstallment2) {
			errors["payment_plan"] = "Payment plan must be FULL or INSTALLMENT_2!"
		}

		if reqData.InitialPayment {
			if reqData.PaymentMethod == "" {
				errors["payment_method"] = "Payment method is required for an initial payment!"
			}
			if reqData.PaymentDate != "" {
				if _, err := time.Parse("2006-01-02", reqData.PaymentDate); err != nil {
					errors["payment_date"] = "Payment date must be in YYYY-MM-DD format!"
				}
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedEnrollment", reqData)
		return c.Next()
	}
}

// EnrollmentID validates the enrollment id path parameter
func EnrollmentID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		enrollmentIDStr := strings.TrimSpace(c.Params("id"))
		if enrollmentIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Enrollment ID is required!", nil)
		}

		enrollmentID, err := strconv.Atoi(enrollmentIDStr)
		if err != nil || enrollmentID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Enrollment ID!", nil)
		}

		c.Locals("enrollmentID", enrollmentID)
		return c.Next()
	}
}
