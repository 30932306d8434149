package api

import (
	"fmt"
	"net/http"

	"waltgoat/walker-app/internal/domain"
	"waltgoat/walker-app/internal/planner"
	"waltgoat/walker-app/internal/service"

	"github.com/gin-gonic/gin"
)

type PlanHandler struct {
	planService service.PlanService
}

func NewPlanHandler(planService service.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

type GeneratePlanRequest struct {
	Energy          int                `json:"energia"`
	FocusCategories []domain.Category  `json:"focus_categorie"`
	JointPain       []domain.JointPain `json:"dolori_articolari"`
}

type CreatePlanRequest struct {
	Name string           `json:"nome" binding:"required"`
	Days []domain.PlanDay `json:"giorni" binding:"required"`
}

// UpdateActivityRequest addresses one activity by position. Indexes are
// pointers so a missing index is told apart from zero.
type UpdateActivityRequest struct {
	DayIndex      *int     `json:"giorno_index" binding:"required"`
	ActivityIndex *int     `json:"esercizio_index" binding:"required"`
	Sets          *int     `json:"serie"`
	Reps          *int     `json:"ripetizioni"`
	WeightKg      *float64 `json:"peso_kg"`
}

// GeneratePlan godoc
// @Summary Generate and activate a plan from the profile
// @Tags Plans
// @Accept json
// @Produce json
// @Param options body GeneratePlanRequest false "Generation options"
// @Success 201 {object} domain.WorkoutPlan
// @Failure 400 {object} gin.H
// @Router /plans/generate [post]
func (h *PlanHandler) GeneratePlan(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req GeneratePlanRequest
	// an empty body means default options
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
			return
		}
	}

	plan, err := h.planService.GeneratePlan(c.Request.Context(), userID, planner.Options{
		Energy:          req.Energy,
		FocusCategories: req.FocusCategories,
		JointPain:       req.JointPain,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, plan)
}

// CreatePlan godoc
// @Summary Create and activate a custom plan
// @Tags Plans
// @Accept json
// @Produce json
// @Param plan body CreatePlanRequest true "Plan"
// @Success 201 {object} domain.WorkoutPlan
// @Failure 400 {object} gin.H
// @Router /plans [post]
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	plan, err := h.planService.CreatePlan(c.Request.Context(), userID, service.CustomPlanInput{Name: req.Name, Days: req.Days})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, plan)
}

// ListPlans godoc
// @Summary All plans of the user
// @Tags Plans
// @Produce json
// @Success 200 {array} domain.WorkoutPlan
// @Router /plans [get]
func (h *PlanHandler) ListPlans(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	plans, err := h.planService.ListPlans(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

// GetActivePlan godoc
// @Summary The active plan
// @Tags Plans
// @Produce json
// @Success 200 {object} domain.WorkoutPlan
// @Failure 404 {object} gin.H "No active plan"
// @Router /plans/active [get]
func (h *PlanHandler) GetActivePlan(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	plan, err := h.planService.GetActivePlan(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// UpdateActivity godoc
// @Summary Change sets, reps or weight of one plan activity
// @Tags Plans
// @Accept json
// @Produce json
// @Param planId path string true "Plan ID"
// @Param update body UpdateActivityRequest true "Update"
// @Success 200 {object} domain.WorkoutPlan
// @Failure 400 {object} gin.H "Index out of range"
// @Failure 404 {object} gin.H
// @Router /plans/{planId}/exercise [put]
func (h *PlanHandler) UpdateActivity(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	plan, err := h.planService.UpdatePlanActivity(c.Request.Context(), userID, c.Param("planId"),
		*req.DayIndex, *req.ActivityIndex, service.ActivityUpdate{
			Sets:     req.Sets,
			Reps:     req.Reps,
			WeightKg: req.WeightKg,
		})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// ActivatePlan godoc
// @Summary Make a stored plan the active one
// @Tags Plans
// @Produce json
// @Param planId path string true "Plan ID"
// @Success 200 {object} domain.WorkoutPlan
// @Failure 404 {object} gin.H
// @Router /plans/{planId}/activate [put]
func (h *PlanHandler) ActivatePlan(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	plan, err := h.planService.ActivatePlan(c.Request.Context(), userID, c.Param("planId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}
