package batchController

import (
	"log"
	"time"

	"github.com/WaiYanHtun11/LLPMM-Online-Campus-sub001/database"
	"github.com/WaiYanHtun11/LLPMM-Online-Campus-sub001/middleware"
	"github.com/WaiYanHtun11/LLPMM-Online-Campus-sub001/models"
	"github.com/WaiYanHtun11/LLPMM-Online-Campus-sub001/services"

	"github.com/gofiber/fiber/v2"
)

// RecalculateSalary recomputes the instructor's profit-share salary for a batch
func RecalculateSalary(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRecalculate").(*struct {
		BatchID uint `json:"batchId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	updated, salary, err := services.RecalculateBatchSalary(database.Database.Db, reqData.BatchID)
	if err != nil {
		if services.IsNotFound(err) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Batch not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to recalculate salary!", nil)
	}

	data := fiber.Map{"updated": updated}
	if updated {
		data["salary"] = salary
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Salary recalculation completed!", data)
}

// DeleteBatch removes a batch that has no enrollments left
func DeleteBatch(c *fiber.Ctx) error {
	batchID := c.Locals("batchID").(int)

	var batch models.Batch
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", batchID, false).First(&batch).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Batch not found!", nil)
	}

	var enrollmentCount int64
	database.Database.Db.Model(&models.Enrollment{}).Where("batch_id = ?", batchID).Count(&enrollmentCount)
	if enrollmentCount > 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Batch still has enrollments! Unenroll all students first.", nil)
	}

	batch.IsDeleted = true
	if err := database.Database.Db.Save(&batch).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete batch!", nil)
	}

	// Cascade: retire the batch's expenses along with it
	database.Database.Db.Model(&models.Expense{}).Where("batch_id = ?", batchID).Update("is_deleted", true)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Batch deleted successfully!", nil)
}

// ListBatches lists all batches for the back office
func ListBatches(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedBatchList").(*struct {
		Page  *int `json:"page"`
		Limit *int `json:"limit"`
	})

	page := 1
	limit := 10
	if ok && reqData.Page != nil && *reqData.Page > 0 {
		page = *reqData.Page
	}
	if ok && reqData.Limit != nil && *reqData.Limit > 0 {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	var batches []models.Batch
	var total int64

	db := database.Database.Db.Model(&models.Batch{}).Where("is_deleted = ?", false)
	db.Count(&total)

	if err := db.Offset(offset).Limit(limit).Order("start_date desc").Find(&batches).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch batches!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Batches fetched successfully!", fiber.Map{
		"batches": batches,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetBatchDetails returns a batch with its ledger summary
func GetBatchDetails(c *fiber.Ctx) error {
	batchID := c.Locals("batchID").(int)

	var batch models.Batch
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", batchID, false).First(&batch).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Batch not found!", nil)
	}

	var enrollmentCount int64
	database.Database.Db.Model(&models.Enrollment{}).Where("batch_id = ?", batchID).Count(&enrollmentCount)

	var totalIncome int64
	database.Database.Db.Model(&models.Payment{}).
		Joins("JOIN enrollments ON enrollments.id = payments.enrollment_id").
		Where("enrollments.batch_id = ? AND enrollments.deleted_at IS NULL", batchID).
		Select("COALESCE(SUM(payments.total_amount), 0)").
		Scan(&totalIncome)

	var totalExpenses int64
	database.Database.Db.Model(&models.Expense{}).
		Where("batch_id = ? AND is_deleted = false", batchID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&totalExpenses)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Batch details fetched successfully!", fiber.Map{
		"batch":            batch,
		"enrollment_count": enrollmentCount,
		"total_income":     totalIncome,
		"total_expenses":   totalExpenses,
	})
}

// AddExpense records a cost against a batch
func AddExpense(c *fiber.Ctx) error {
	batchID := c.Locals("batchID").(int)

	var batch models.Batch
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", batchID, false).First(&batch).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Batch not found!", nil)
	}

	reqData, ok := c.Locals("validatedExpense").(*struct {
		Amount      int64  `json:"amount"`
		Description string `json:"description"`
		ExpenseDate string `json:"expense_date"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	expenseDate := time.Now()
	if reqData.ExpenseDate != "" {
		// Format already checked by the validator
		expenseDate, _ = time.Parse("2006-01-02", reqData.ExpenseDate)
	}

	expense := models.Expense{
		BatchID:     uint(batchID),
		Amount:      reqData.Amount,
		Description: reqData.Description,
		ExpenseDate: expenseDate,
	}
	if err := database.Database.Db.Create(&expense).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record expense!", nil)
	}

	// Expenses change the profit base, so refresh the derived salary
	if _, _, err := services.RecalculateBatchSalary(database.Database.Db, uint(batchID)); err != nil {
		log.Printf("Salary recalculation failed for batch %d after expense %d: %v", batchID, expense.ID, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Expense recorded successfully!", expense)
}

// ListExpenses lists the expenses recorded against a batch
func ListExpenses(c *fiber.Ctx) error {
	batchID := c.Locals("batchID").(int)

	var batch models.Batch
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", batchID, false).First(&batch).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Batch not found!", nil)
	}

	var expenses []models.Expense
	if err := database.Database.Db.Where("batch_id = ? AND is_deleted = ?", batchID, false).
		Order("expense_date desc").Find(&expenses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch expenses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Expenses fetched successfully!", fiber.Map{
		"expenses": expenses,
	})
}
