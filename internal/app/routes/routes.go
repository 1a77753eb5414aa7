package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/courseplan/courseplan/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	catalogController *controllers.CatalogController,
	progressController *controllers.ProgressController,
	recommendController *controllers.RecommendController,
	relayController *controllers.RelayController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Catalog routes
	courses := v1.Group("/courses")
	{
		courses.POST("", catalogController.UploadCourses)
		courses.GET("", catalogController.ListCourses)
	}

	departments := v1.Group("/departments")
	{
		departments.GET("", catalogController.ListDepartments)
		departments.GET("/:code/courses", catalogController.ListDepartmentCourses)
	}

	// Progress routes
	v1.GET("/requirements", progressController.GetRequirements)
	v1.POST("/progress/gaps", progressController.AnalyzeGaps)

	// Recommendation routes
	v1.POST("/recommendations", recommendController.GetRecommendations)

	// Relay route, kept at the path the frontend proxy used. Any so
	// non-POST methods receive 405 with an Allow header instead of 404.
	router.Any("/api/deepseek/v1/chat/completions", relayController.Forward)
}
