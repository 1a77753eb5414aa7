package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courseplan/courseplan/internal/app/models"
	"github.com/courseplan/courseplan/internal/app/services"
)

const uploadBody = `{"csv":"subject,catalog,name,description,capacity,enrolled\nECON,UB 1,Microeconomics,Price theory and market structure,40,12\nSTAT,UB 103,Statistics for Business Control,Data analysis for decision making,35,35\n"}`

// newAPIRouter wires the v1 routes the way bootstrap does, minus the
// relay (covered separately) and the external chat service.
func newAPIRouter() (*gin.Engine, *services.CatalogService) {
	gin.SetMode(gin.TestMode)

	catalogService := services.NewCatalogService(zerolog.Nop())
	progressService := services.NewProgressService(nil)
	recommendService := services.NewRecommendService(services.RecommendConfig{}, nil, zerolog.Nop())

	catalogController := NewCatalogController(catalogService)
	progressController := NewProgressController(progressService)
	recommendController := NewRecommendController(catalogService, recommendService)

	router := gin.New()
	v1 := router.Group("/api/v1")
	v1.POST("/courses", catalogController.UploadCourses)
	v1.GET("/courses", catalogController.ListCourses)
	v1.GET("/departments", catalogController.ListDepartments)
	v1.GET("/departments/:code/courses", catalogController.ListDepartmentCourses)
	v1.GET("/requirements", progressController.GetRequirements)
	v1.POST("/progress/gaps", progressController.AnalyzeGaps)
	v1.POST("/recommendations", recommendController.GetRecommendations)

	return router, catalogService
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestUploadCourses(t *testing.T) {
	router, catalogService := newAPIRouter()

	recorder := doJSON(router, http.MethodPost, "/api/v1/courses", uploadBody)
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp struct {
		Data struct {
			Count       int      `json:"count"`
			Departments []string `json:"departments"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Data.Count)
	assert.Equal(t, []string{"ECON", "STAT"}, resp.Data.Departments)
	assert.Equal(t, 2, catalogService.Count())
}

func TestUploadCoursesValidation(t *testing.T) {
	router, _ := newAPIRouter()

	// Missing required field.
	recorder := doJSON(router, http.MethodPost, "/api/v1/courses", `{}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "VAL_001")

	// Bound but unusable payload.
	recorder = doJSON(router, http.MethodPost, "/api/v1/courses", `{"csv":"garbage"}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestListCourses(t *testing.T) {
	router, _ := newAPIRouter()
	doJSON(router, http.MethodPost, "/api/v1/courses", uploadBody)

	recorder := doJSON(router, http.MethodGet, "/api/v1/courses", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp struct {
		Data []models.CourseRecord `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "ECON-UB 1", resp.Data[0].CourseID)
	assert.Equal(t, models.CourseStatusClosed, resp.Data[1].Status)
}

func TestListDepartmentCourses(t *testing.T) {
	router, _ := newAPIRouter()
	doJSON(router, http.MethodPost, "/api/v1/courses", uploadBody)

	recorder := doJSON(router, http.MethodGet, "/api/v1/departments/ECON/courses", "")
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = doJSON(router, http.MethodGet, "/api/v1/departments/ART/courses", "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "RES_001")
}

func TestListDepartmentCoursesNoData(t *testing.T) {
	router, _ := newAPIRouter()

	recorder := doJSON(router, http.MethodGet, "/api/v1/departments/ECON/courses", "")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGetRequirements(t *testing.T) {
	router, _ := newAPIRouter()

	recorder := doJSON(router, http.MethodGet, "/api/v1/requirements", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp struct {
		Data models.RequirementCatalog `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Contains(t, resp.Data.RequiredCourses, "MATH-UB 121")
	assert.Equal(t, 128, resp.Data.CreditsRequired)
}

func TestAnalyzeGaps(t *testing.T) {
	router, _ := newAPIRouter()

	recorder := doJSON(router, http.MethodPost, "/api/v1/progress/gaps",
		`{"completedCourses":["MATH-UB 121","MULT-UB 100","CORE-UA 400","CORE-UA 500"]}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp struct {
		Data models.GapReport `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Contains(t, resp.Data.MissingRequired, "ECON-UB 1")
	assert.NotContains(t, resp.Data.MissingRequired, "MATH-UB 121")
	// The Liberal Arts Core is fully satisfied and must be omitted.
	assert.NotContains(t, resp.Data.MissingByCategory, "Liberal Arts Core")
	assert.Contains(t, resp.Data.MissingByCategory, "Business Tools")
}

func TestAnalyzeGapsValidation(t *testing.T) {
	router, _ := newAPIRouter()

	recorder := doJSON(router, http.MethodPost, "/api/v1/progress/gaps", `{}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "VAL_001")
}

func TestGetRecommendations(t *testing.T) {
	router, _ := newAPIRouter()
	doJSON(router, http.MethodPost, "/api/v1/courses", uploadBody)

	recorder := doJSON(router, http.MethodPost, "/api/v1/recommendations",
		`{"interests":"data statistics"}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp struct {
		Data    []models.Recommendation `json:"data"`
		Message string                  `json:"message"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "STAT-UB 103", resp.Data[0].CourseID)
	assert.Empty(t, resp.Message)
}

func TestGetRecommendationsNoMatches(t *testing.T) {
	router, _ := newAPIRouter()
	doJSON(router, http.MethodPost, "/api/v1/courses", uploadBody)

	recorder := doJSON(router, http.MethodPost, "/api/v1/recommendations",
		`{"interests":"astrophysics"}`)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "No matching courses found. Try different interest keywords.")
}

func TestGetRecommendationsNoCatalog(t *testing.T) {
	router, _ := newAPIRouter()

	recorder := doJSON(router, http.MethodPost, "/api/v1/recommendations",
		`{"interests":"data"}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGetRecommendationsValidation(t *testing.T) {
	router, _ := newAPIRouter()
	doJSON(router, http.MethodPost, "/api/v1/courses", uploadBody)

	recorder := doJSON(router, http.MethodPost, "/api/v1/recommendations", `{}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = doJSON(router, http.MethodPost, "/api/v1/recommendations",
		`{"interests":"data","mode":"psychic"}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGetRecommendationsSemanticDegrades(t *testing.T) {
	router, _ := newAPIRouter()
	doJSON(router, http.MethodPost, "/api/v1/courses", uploadBody)

	// No chat service is wired; semantic mode must still answer 200
	// with an empty list.
	recorder := doJSON(router, http.MethodPost, "/api/v1/recommendations",
		`{"interests":"data analysis","mode":"semantic"}`)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "No matching courses found.")
}
