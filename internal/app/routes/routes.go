package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arda/campusconnect/internal/app/controllers"
	"github.com/arda/campusconnect/internal/app/models"
	"github.com/arda/campusconnect/internal/app/models/dto"
	"github.com/arda/campusconnect/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	noticeController *controllers.NoticeController,
	eventController *controllers.EventController,
	materialController *controllers.MaterialController,
	resumeController *controllers.ResumeController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	// --- Public Auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	authSession := authenticated.Group("/auth")
	{
		authSession.GET("/me", authController.Me)
		authSession.POST("/logout", authController.Logout)
	}

	notices := authenticated.Group("/notices")
	{
		notices.GET("", noticeController.List)
		notices.GET("/:id", noticeController.Get)

		noticesStaff := notices.Group("")
		noticesStaff.Use(authMiddleware.RoleRequired(models.RoleFaculty, models.RoleAdmin))
		{
			noticesStaff.POST("", noticeController.Create)
		}
		// Update and delete check authorship in the service, so admins can
		// manage notices they did not author.
		notices.PUT("/:id", noticeController.Update)
		notices.DELETE("/:id", noticeController.Delete)
	}

	events := authenticated.Group("/events")
	{
		events.GET("", eventController.List)
		events.GET("/:id", eventController.Get)

		eventsStaff := events.Group("")
		eventsStaff.Use(authMiddleware.RoleRequired(models.RoleFaculty, models.RoleAdmin))
		{
			eventsStaff.POST("", eventController.Create)
		}
		events.PUT("/:id", eventController.Update)
		events.DELETE("/:id", eventController.Delete)

		eventsStudent := events.Group("")
		eventsStudent.Use(authMiddleware.RoleRequired(models.RoleStudent))
		{
			eventsStudent.POST("/:id/register", eventController.Register)
			eventsStudent.DELETE("/:id/register", eventController.Unregister)
		}
	}

	materials := authenticated.Group("/materials")
	{
		materials.GET("", materialController.List)
		materials.GET("/:id", materialController.Get)
		materials.GET("/:id/download", materialController.Download)

		materialsStaff := materials.Group("")
		materialsStaff.Use(authMiddleware.RoleRequired(models.RoleFaculty, models.RoleAdmin))
		{
			materialsStaff.GET("/stats/overview", materialController.Stats)
			materialsStaff.POST("", materialController.Create)
		}
		materials.PUT("/:id", materialController.Update)
		materials.DELETE("/:id", materialController.Delete)
	}

	resumes := authenticated.Group("/resumes")
	{
		resumes.GET("", resumeController.List)
		resumes.GET("/:id", resumeController.Get)
		resumes.GET("/:id/download", resumeController.Download)

		resumesStudent := resumes.Group("")
		resumesStudent.Use(authMiddleware.RoleRequired(models.RoleStudent))
		{
			resumesStudent.GET("/my/list", resumeController.ListMine)
			resumesStudent.POST("", resumeController.Create)
		}
		resumes.PUT("/:id", resumeController.Update)
		resumes.PUT("/:id/visibility", resumeController.SetVisibility)
		resumes.DELETE("/:id", resumeController.Delete)
	}

	// Health check endpoint (public)
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"status": "ok"}, ""))
	})
}
