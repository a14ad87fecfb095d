package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acadbase/acadbase/internal/app/controllers"
	"github.com/acadbase/acadbase/internal/app/models"
	"github.com/acadbase/acadbase/internal/app/models/dto"
	"github.com/acadbase/acadbase/internal/middleware"
)

// SetupRoutes registers every endpoint under /api/v1. Route-level role
// checks gate whole endpoints; finer ownership rules live in the services.
func SetupRoutes(router *gin.Engine, ctrl *controllers.Controllers, authMiddleware *middleware.AuthMiddleware) {
	admin := string(models.RoleAdmin)
	hod := string(models.RoleHOD)
	faculty := string(models.RoleFaculty)

	v1 := router.Group("/api/v1")

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewMessageResponse("ok"))
	})

	auth := v1.Group("/auth")
	{
		auth.POST("/login", ctrl.AuthController.Login)
		auth.POST("/refresh", ctrl.AuthController.RefreshToken)
		auth.POST("/logout", authMiddleware.JWTAuth(), ctrl.AuthController.Logout)
	}

	v1.GET("/users/me", authMiddleware.JWTAuth(), ctrl.AuthController.Me)

	departments := v1.Group("/departments", authMiddleware.JWTAuth())
	{
		departments.GET("", ctrl.DepartmentController.List)
		departments.GET("/:id", ctrl.DepartmentController.GetByID)
		departments.POST("", authMiddleware.RoleRequired(admin), ctrl.DepartmentController.Create)
		departments.PUT("/:id", authMiddleware.RoleRequired(admin), ctrl.DepartmentController.Update)
		departments.PUT("/:id/details", authMiddleware.RoleRequired(admin, hod), ctrl.DepartmentController.UpdateDetails)
		departments.DELETE("/:id", authMiddleware.RoleRequired(admin), ctrl.DepartmentController.Delete)
	}

	facultyGroup := v1.Group("/faculty", authMiddleware.JWTAuth())
	{
		facultyGroup.GET("", ctrl.FacultyController.List)
		facultyGroup.GET("/:id", ctrl.FacultyController.GetByID)
		facultyGroup.POST("", authMiddleware.RoleRequired(admin, hod), ctrl.FacultyController.Create)
		facultyGroup.PUT("/:id/department", authMiddleware.RoleRequired(admin, hod), ctrl.FacultyController.ReassignDepartment)
		facultyGroup.GET("/:id/contributions", ctrl.FacultyController.ListContributions)
		facultyGroup.GET("/:id/memberships", ctrl.FacultyController.ListMemberships)
		facultyGroup.GET("/:id/publications", ctrl.PublicationController.ListByFaculty)
		facultyGroup.GET("/:id/awards", ctrl.AwardController.ListByFaculty)
	}

	publications := v1.Group("/publications", authMiddleware.JWTAuth())
	{
		publications.GET("", ctrl.PublicationController.ListAll)
		publications.POST("", authMiddleware.RoleRequired(admin, hod, faculty), ctrl.PublicationController.Create)
		publications.PUT("/:id", authMiddleware.RoleRequired(admin, hod, faculty), ctrl.PublicationController.Update)
		publications.DELETE("/:id", authMiddleware.RoleRequired(admin, hod, faculty), ctrl.PublicationController.Delete)
	}

	awards := v1.Group("/awards", authMiddleware.JWTAuth())
	{
		awards.GET("", ctrl.AwardController.ListAll)
		awards.POST("", authMiddleware.RoleRequired(admin, hod, faculty), ctrl.AwardController.Create)
		awards.PUT("/:id", authMiddleware.RoleRequired(admin, hod, faculty), ctrl.AwardController.Update)
		awards.PUT("/:id/certificate", authMiddleware.RoleRequired(admin, hod, faculty), ctrl.AwardController.ReplaceCertificate)
		awards.DELETE("/:id", authMiddleware.RoleRequired(admin, hod, faculty), ctrl.AwardController.Delete)
	}

	reports := v1.Group("/reports", authMiddleware.JWTAuth())
	{
		reports.GET("/biodata/:id", ctrl.ReportController.GenerateBiodata)
		reports.GET("/comprehensive/:id", ctrl.ReportController.GenerateComprehensive)
		reports.POST("/institutional", ctrl.ReportController.GenerateInstitutional)
		reports.GET("/institutional/:type/download", ctrl.ReportController.DownloadInstitutional)
	}

	adminGroup := v1.Group("/admin", authMiddleware.JWTAuth(), authMiddleware.RoleRequired(admin))
	{
		adminGroup.POST("/query", ctrl.AdminController.RunQuery)
	}
}
