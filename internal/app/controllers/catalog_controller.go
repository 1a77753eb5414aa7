package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/courseplan/courseplan/internal/app/models/dto"
	"github.com/courseplan/courseplan/internal/app/services"
	"github.com/courseplan/courseplan/internal/middleware"
)

// CatalogController handles course-catalog operations
type CatalogController struct {
	catalogService *services.CatalogService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService *services.CatalogService) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// UploadCourses replaces the loaded course catalog
// @Summary Upload course data
// @Description Parses raw delimited course data and replaces the in-memory catalog
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body dto.UploadCoursesRequest true "Raw course data"
// @Success 200 {object} dto.APIResponse{data=dto.UploadCoursesResponse} "Catalog loaded"
// @Failure 400 {object} dto.ErrorResponse "Invalid or empty course data"
// @Router /courses [post]
func (c *CatalogController) UploadCourses(ctx *gin.Context) {
	var req dto.UploadCoursesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid upload request")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	count, err := c.catalogService.LoadCourses(req.CSV)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.UploadCoursesResponse{
			Count:       count,
			Departments: c.catalogService.Departments(),
		},
		Timestamp: time.Now(),
	})
}

// ListCourses returns the full loaded catalog
// @Summary List all courses
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.CourseRecord} "Courses retrieved"
// @Router /courses [get]
func (c *CatalogController) ListCourses(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.catalogService.Courses(),
		Timestamp: time.Now(),
	})
}

// ListDepartments returns the departments of the loaded catalog
// @Summary List departments
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.DepartmentListResponse} "Departments retrieved"
// @Router /departments [get]
func (c *CatalogController) ListDepartments(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.DepartmentListResponse{
			Departments: c.catalogService.Departments(),
		},
		Timestamp: time.Now(),
	})
}

// ListDepartmentCourses returns all course records of one department
// @Summary List courses of a department
// @Tags catalog
// @Produce json
// @Param code path string true "Department code"
// @Success 200 {object} dto.APIResponse{data=[]models.CourseRecord} "Courses retrieved"
// @Failure 400 {object} dto.ErrorResponse "No course data loaded"
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Router /departments/{code}/courses [get]
func (c *CatalogController) ListDepartmentCourses(ctx *gin.Context) {
	courses, err := c.catalogService.CoursesByDepartment(ctx.Param("code"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      courses,
		Timestamp: time.Now(),
	})
}
