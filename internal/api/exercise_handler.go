package api

import (
	"net/http"

	"waltgoat/walker-app/internal/service"

	"github.com/gin-gonic/gin"
)

// ExerciseHandler holds the exercise service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// ListExercises godoc
// @Summary Exercise catalog
// @Tags Exercises
// @Produce json
// @Param categoria query string false "Category filter"
// @Success 200 {array} domain.ExerciseDefinition
// @Failure 400 {object} gin.H "Unknown category"
// @Router /exercises [get]
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	exercises, err := h.exerciseService.ListExercises(c.Request.Context(), c.Query("categoria"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, exercises)
}

// GetExercise godoc
// @Summary One catalog exercise
// @Tags Exercises
// @Produce json
// @Param exerciseId path string true "Exercise ID"
// @Success 200 {object} domain.ExerciseDefinition
// @Failure 404 {object} gin.H
// @Router /exercises/{exerciseId} [get]
func (h *ExerciseHandler) GetExercise(c *gin.Context) {
	ex, err := h.exerciseService.GetExerciseByID(c.Request.Context(), c.Param("exerciseId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ex)
}

// Categories godoc
// @Summary Exercise categories
// @Tags Exercises
// @Produce json
// @Success 200 {array} string
// @Router /exercises/categories [get]
func (h *ExerciseHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, h.exerciseService.Categories(c.Request.Context()))
}

// Bands godoc
// @Summary Resistance band colours and their kg equivalent
// @Tags Exercises
// @Produce json
// @Success 200 {array} domain.BandInfo
// @Router /elastici [get]
func (h *ExerciseHandler) Bands(c *gin.Context) {
	c.JSON(http.StatusOK, h.exerciseService.Bands(c.Request.Context()))
}
