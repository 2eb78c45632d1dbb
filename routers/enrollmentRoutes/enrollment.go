package enrollmentRoutes

import (
	controllers "github.com/WaiYanHtun11/LLPMM-Online-Campus-sub001/controllers/enrollment"
	"github.com/WaiYanHtun11/LLPMM-Online-Campus-sub001/middleware"
	validators "github.com/WaiYanHtun11/LLPMM-Online-Campus-sub001/validators/enrollment"

	"github.com/gofiber/fiber/v2"
)

// SetupEnrollmentRoutes sets up all enrollment routes
func SetupEnrollmentRoutes(app *fiber.App) {
	enrollmentGroup := app.Group("/enrollments")

	enrollmentGroup.Post("/", middleware.JWTMiddleware, validators.Enroll(), controllers.EnrollStudent)
	enrollmentGroup.Delete("/:id", middleware.JWTMiddleware, validators.EnrollmentID(), controllers.UnenrollStudent)
	enrollmentGroup.Get("/:id/ledger", middleware.JWTMiddleware, validators.EnrollmentID(), controllers.GetEnrollmentLedger)
}
