package api

import (
	"fmt"
	"net/http"

	"waltgoat/walker-app/internal/domain"
	"waltgoat/walker-app/internal/service"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileService service.ProfileService
}

func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

type ProfileRequest struct {
	Name          string             `json:"nome"`
	Age           int                `json:"eta"`
	WeightKg      float64            `json:"peso"`
	HeightCm      float64            `json:"altezza"`
	Level         string             `json:"livello"`
	Goal          string             `json:"obiettivo"`
	AvailableDays []string           `json:"giorni_disponibili"`
	JointPain     []domain.JointPain `json:"dolori_articolari"`
}

// Me godoc
// @Summary Identity of the token owner
// @Tags Profile
// @Produce json
// @Success 200 {object} gin.H
// @Router /me [get]
func (h *ProfileHandler) Me(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	user, err := h.profileService.GetUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user_id":          user.ID,
		"email":            user.Email,
		"nome":             user.Name,
		"profile_complete": user.ProfileComplete,
	})
}

// GetProfile godoc
// @Summary Current user profile
// @Tags Profile
// @Produce json
// @Success 200 {object} domain.User
// @Failure 404 {object} gin.H
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	user, err := h.profileService.GetUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateProfile godoc
// @Summary Replace the training profile
// @Tags Profile
// @Accept json
// @Produce json
// @Param profile body ProfileRequest true "Profile"
// @Success 200 {object} domain.User
// @Failure 400 {object} gin.H
// @Router /profile [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	user, err := h.profileService.UpdateProfile(c.Request.Context(), userID, service.ProfileInput{
		Name:          req.Name,
		Age:           req.Age,
		WeightKg:      req.WeightKg,
		HeightCm:      req.HeightCm,
		Level:         req.Level,
		Goal:          req.Goal,
		AvailableDays: req.AvailableDays,
		JointPain:     req.JointPain,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
