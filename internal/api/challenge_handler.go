package api

import (
	"net/http"

	"waltgoat/walker-app/internal/service"

	"github.com/gin-gonic/gin"
)

type ChallengeHandler struct {
	challengeService service.ChallengeService
}

func NewChallengeHandler(challengeService service.ChallengeService) *ChallengeHandler {
	return &ChallengeHandler{challengeService: challengeService}
}

// ListChallenges godoc
// @Summary All challenges of the user, newest first
// @Tags Challenges
// @Produce json
// @Success 200 {array} domain.Challenge
// @Router /sfide [get]
func (h *ChallengeHandler) ListChallenges(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	list, err := h.challengeService.ListChallenges(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GenerateChallenges godoc
// @Summary Hand out a new batch of weekly challenges
// @Tags Challenges
// @Produce json
// @Success 201 {array} domain.Challenge
// @Router /sfide/generate [post]
func (h *ChallengeHandler) GenerateChallenges(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	batch, err := h.challengeService.GenerateChallenges(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, batch)
}

// CheckProgress godoc
// @Summary Evaluate pending challenges against the last seven days
// @Tags Challenges
// @Produce json
// @Success 200 {object} service.ProgressResult
// @Router /sfide/check-progress [post]
func (h *ChallengeHandler) CheckProgress(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	res, err := h.challengeService.CheckProgress(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
