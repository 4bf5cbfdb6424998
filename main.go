package main

import (
	"vidya/config"
	"vidya/database"
	adminRoutes "vidya/routers/adminRoutes"
	authRoutes "vidya/routers/authRoutes"
	batchRoutes "vidya/routers/batchRoutes"
	notesRoutes "vidya/routers/notesRoutes"
	quizRoutes "vidya/routers/quizRoutes"
	videoRoutes "vidya/routers/videoRoutes"
	"vidya/utils"

	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	// Hourly sweep for secure video records orphaned by pre-transactional writes
	utils.StartReconciler()

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

	authRoutes.SetupAuthRoutes(app)
	batchRoutes.SetupBatchRoutes(app)
	batchRoutes.SetupAdminBatchRoutes(app)
	videoRoutes.SetupVideoRoutes(app)
	quizRoutes.SetupQuizRoutes(app)
	notesRoutes.SetupTutorRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
