package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/courseplan/courseplan/internal/app/models/dto"
	"github.com/courseplan/courseplan/internal/app/services"
)

// ProgressController handles degree-progress operations
type ProgressController struct {
	progressService *services.ProgressService
}

// NewProgressController creates a new ProgressController
func NewProgressController(progressService *services.ProgressService) *ProgressController {
	return &ProgressController{
		progressService: progressService,
	}
}

// GetRequirements returns the active requirement catalog
// @Summary Get the degree requirement catalog
// @Tags progress
// @Produce json
// @Success 200 {object} dto.APIResponse{data=models.RequirementCatalog} "Requirement catalog"
// @Router /requirements [get]
func (c *ProgressController) GetRequirements(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.progressService.Catalog(),
		Timestamp: time.Now(),
	})
}

// AnalyzeGaps computes missing requirements for a completion set
// @Summary Analyze degree-requirement gaps
// @Description Computes which required courses are still missing, overall and per category
// @Tags progress
// @Accept json
// @Produce json
// @Param request body dto.GapAnalysisRequest true "Completed course identifiers"
// @Success 200 {object} dto.APIResponse{data=models.GapReport} "Gap report"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /progress/gaps [post]
func (c *ProgressController) AnalyzeGaps(ctx *gin.Context) {
	var req dto.GapAnalysisRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid gap analysis request")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	report := c.progressService.ComputeGaps(req.CompletedCourses)

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      report,
		Timestamp: time.Now(),
	})
}
