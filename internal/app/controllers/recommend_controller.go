package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/courseplan/courseplan/internal/app/models"
	"github.com/courseplan/courseplan/internal/app/models/dto"
	"github.com/courseplan/courseplan/internal/app/services"
	"github.com/courseplan/courseplan/internal/middleware"
	"github.com/courseplan/courseplan/internal/pkg/apperrors"
)

// RecommendController handles recommendation requests
type RecommendController struct {
	catalogService   *services.CatalogService
	recommendService *services.RecommendService
}

// NewRecommendController creates a new RecommendController
func NewRecommendController(catalogService *services.CatalogService, recommendService *services.RecommendService) *RecommendController {
	return &RecommendController{
		catalogService:   catalogService,
		recommendService: recommendService,
	}
}

// GetRecommendations ranks available courses against interest text
// @Summary Recommend courses for interest keywords
// @Description Scores non-completed courses against free-text interests. Mode "semantic" delegates ranking to the external chat service and degrades to an empty list when it is unavailable.
// @Tags recommendations
// @Accept json
// @Produce json
// @Param request body dto.RecommendRequest true "Interest text, completed courses and mode"
// @Success 200 {object} dto.APIResponse{data=[]models.Recommendation} "Recommendations"
// @Failure 400 {object} dto.ErrorResponse "Missing interests or no course data"
// @Router /recommendations [post]
func (c *RecommendController) GetRecommendations(ctx *gin.Context) {
	var req dto.RecommendRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid recommendation request")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	courses := c.catalogService.Courses()
	if len(courses) == 0 {
		middleware.HandleAPIError(ctx, apperrors.ErrNoCourseData)
		return
	}

	completed := services.NewCompletionSet(req.CompletedCourses)

	var recommendations []models.Recommendation
	if req.Mode == dto.RecommendModeSemantic {
		recommendations = c.recommendService.RecommendSemantic(ctx.Request.Context(), courses, req.Interests, completed)
	} else {
		recommendations = c.recommendService.Recommend(courses, req.Interests, completed)
	}

	message := ""
	if len(recommendations) == 0 {
		message = "No matching courses found. Try different interest keywords."
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      recommendations,
		Message:   message,
		Timestamp: time.Now(),
	})
}
