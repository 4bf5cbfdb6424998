package batchRoutes

import (
	controllers "vidya/controllers/batch"
	"vidya/middleware"
	validators "vidya/validators/batch"

	"github.com/gofiber/fiber/v2"
)

// SetupBatchRoutes sets up student-facing batch routes
func SetupBatchRoutes(app *fiber.App) {
	batchGroup := app.Group("/batch")

	batchGroup.Get("/list", middleware.JWTMiddleware, controllers.GetMyBatches)
	batchGroup.Get("/:id/syllabus", middleware.JWTMiddleware, validators.GetSyllabus(), controllers.GetSyllabus)
}

// SetupAdminBatchRoutes sets up batch and content management for admins
func SetupAdminBatchRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/batch", middleware.JWTMiddleware, middleware.RequireAdmin)

	adminGroup.Post("/create", validators.CreateBatch(), controllers.AdminCreateBatch)
	adminGroup.Get("/list", controllers.AdminGetBatches)
	adminGroup.Post("/:id/enroll", validators.EnrollStudent(), controllers.AdminEnrollStudent)
	adminGroup.Post("/:id/content", validators.AddContent(), controllers.AdminAddContent)
	adminGroup.Delete("/:id/content/:content_id", validators.DeleteContent(), controllers.AdminDeleteContent)
}
