package batchValidator

import (
	"strconv"
	"strings"
	"time"

	"github.com/WaiYanHtun11/LLPMM-Online-Campus-sub001/middleware"

	"github.com/gofiber/fiber/v2"
)

// Recalculate validates a salary recalculation request
func Recalculate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			BatchID uint `json:"batchId"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.BatchID == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Batch ID is required!", nil)
		}

		c.Locals("validatedRecalculate", reqData)
		return c.Next()
	}
}

// BatchID validates the batch id path parameter
func BatchID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		batchIDStr := strings.TrimSpace(c.Params("id"))
		if batchIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Batch ID is required!", nil)
		}

		batchID, err := strconv.Atoi(batchIDStr)
		if err != nil || batchID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Batch ID!", nil)
		}

		c.Locals("batchID", batchID)
		return c.Next()
	}
}

// BatchList validates batch list pagination parameters
func BatchList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `json:"page"`
			Limit *int `json:"limit"`
		})

		if page, err := strconv.Atoi(c.Query("page", "1")); err == nil {
			reqData.Page = &page
		}
		if limit, err := strconv.Atoi(c.Query("limit", "10")); err == nil {
			reqData.Limit = &limit
		}

		c.Locals("validatedBatchList", reqData)
		return c.Next()
	}
}

// Expense validates an expense creation request
func Expense() fiber.Handler {
	return func(c *fiber.Ctx) error {
		batchIDStr := strings.TrimSpace(c.Params("id"))
		if batchIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Batch ID is required!", nil)
		}

		batchID, err := strconv.Atoi(batchIDStr)
		if err != nil || batchID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Batch ID!", nil)
		}

		reqData := new(struct {
			Amount      int64  `json:"amount"`
			Description string `json:"description"`
			ExpenseDate string `json:"expense_date"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Description = strings.TrimSpace(reqData.Description)
		reqData.ExpenseDate = strings.TrimSpace(reqData.ExpenseDate)

		if reqData.Amount <= 0 {
			errors["amount"] = "Amount must be a positive number!"
		}

		if reqData.Description == "" {
			errors["description"] = "Description is required!"
		}

		if reqData.ExpenseDate != "" {
			if _, err := time.Parse("2006-01-02", reqData.ExpenseDate); err != nil {
				errors["expense_date"] = "Expense date must be in YYYY-MM-DD format!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("batchID", batchID)
		c.Locals("validatedExpense", reqData)
		return c.Next()
	}
}
