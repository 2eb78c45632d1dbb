package paymentValidator

import (
	"strings"
	"time"

	"github.com/WaiYanHtun11/LLPMM-Online-Campus-sub001/middleware"

	"github.com/gofiber/fiber/v2"
)

// RecordPayment validates an installment payment request
func RecordPayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			InstallmentID uint   `json:"installment_id"`
			PaymentID     uint   `json:"payment_id"`
			PaidDate      string `json:"paid_date"`
			PaymentMethod string `json:"payment_method"`
			Notes         string `json:"notes"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.InstallmentID == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Installment ID is required!", nil)
		}

		if reqData.PaymentID == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Payment ID is required!", nil)
		}

		errors := make(map[string]string)

		reqData.PaidDate = strings.TrimSpace(reqData.PaidDate)
		reqData.PaymentMethod = strings.TrimSpace(reqData.PaymentMethod)
		reqData.Notes = strings.TrimSpace(reqData.Notes)

		if reqData.PaymentMethod == "" {
			errors["payment_method"] = "Payment method is required!"
		}

		if reqData.PaidDate != "" {
			if _, err := time.Parse("2006-01-02", reqData.PaidDate); err != nil {
				errors["paid_date"] = "Paid date must be in YYYY-MM-DD format!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRecordPayment", reqData)
		return c.Next()
	}
}
