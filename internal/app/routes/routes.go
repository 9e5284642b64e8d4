package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/jdelacruz/campusrecords/internal/app/controllers"
	"github.com/jdelacruz/campusrecords/internal/middleware"
)

// SetupRouter configures all application routes. Every student-scoped
// route sits behind the session gate.
func SetupRouter(
	router *gin.Engine,
	profileController *controllers.ProfileController,
	enrollmentController *controllers.EnrollmentController,
	gradeController *controllers.GradeController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.RequireSession())
	{
		profile := authenticated.Group("/profile")
		{
			profile.GET("", profileController.GetProfile)
			profile.PUT("", profileController.UpdateProfile)
		}

		authenticated.GET("/dashboard", enrollmentController.GetDashboard)
		authenticated.GET("/schedule", enrollmentController.GetSchedule)
		authenticated.GET("/enrollments", enrollmentController.ListEnrollments)
		authenticated.GET("/grades", gradeController.GetGradeReport)
	}
}
