package paymentRoutes

import (
	controllers "github.com/WaiYanHtun11/LLPMM-Online-Campus-sub001/controllers/payment"
	"github.com/WaiYanHtun11/LLPMM-Online-Campus-sub001/middleware"
	validators "github.com/WaiYanHtun11/LLPMM-Online-Campus-sub001/validators/payment"

	"github.com/gofiber/fiber/v2"
)

// SetupPaymentRoutes sets up all payment routes
func SetupPaymentRoutes(app *fiber.App) {
	paymentGroup := app.Group("/payments")

	paymentGroup.Post("/record", middleware.JWTMiddleware, validators.RecordPayment(), controllers.RecordPayment)
}
