package main

import (
	"log"

	"github.com/WaiYanHtun11/LLPMM-Online-Campus-sub001/config"
	"github.com/WaiYanHtun11/LLPMM-Online-Campus-sub001/database"
	batchRoutes "github.com/WaiYanHtun11/LLPMM-Online-Campus-sub001/routers/batchRoutes"
	enrollmentRoutes "github.com/WaiYanHtun11/LLPMM-Online-Campus-sub001/routers/enrollmentRoutes"
	paymentRoutes "github.com/WaiYanHtun11/LLPMM-Online-Campus-sub001/routers/paymentRoutes"
	"github.com/WaiYanHtun11/LLPMM-Online-Campus-sub001/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	enrollmentRoutes.SetupEnrollmentRoutes(app)
	paymentRoutes.SetupPaymentRoutes(app)
	batchRoutes.SetupBatchRoutes(app)

	// Nightly overdue-installment sweep
	utils.InitializeInstallmentScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
