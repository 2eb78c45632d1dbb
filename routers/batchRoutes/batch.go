package batchRoutes

import (
	controllers "github.com/WaiYanHtun11/LLPMM-Online-Campus-sub001/controllers/batch"
	"github.com/WaiYanHtun11/LLPMM-Online-Campus-sub001/middleware"
	"github.com/WaiYanHtun11/LLPMM-Online-Campus-sub001/models"
	validators "github.com/WaiYanHtun11/LLPMM-Online-Campus-sub001/validators/batch"

	"github.com/gofiber/fiber/v2"
)

// SetupBatchRoutes sets up all batch routes
func SetupBatchRoutes(app *fiber.App) {
	batchGroup := app.Group("/batches")
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	batchGroup.Get("/list", middleware.JWTMiddleware, adminOnly, validators.BatchList(), controllers.ListBatches)
	batchGroup.Post("/recalculate-salary", middleware.JWTMiddleware, adminOnly, validators.Recalculate(), controllers.RecalculateSalary)
	batchGroup.Get("/:id", middleware.JWTMiddleware, adminOnly, validators.BatchID(), controllers.GetBatchDetails)
	batchGroup.Delete("/:id", middleware.JWTMiddleware, adminOnly, validators.BatchID(), controllers.DeleteBatch)
	batchGroup.Post("/:id/expenses", middleware.JWTMiddleware, adminOnly, validators.Expense(), controllers.AddExpense)
	batchGroup.Get("/:id/expenses", middleware.JWTMiddleware, adminOnly, validators.BatchID(), controllers.ListExpenses)
}
