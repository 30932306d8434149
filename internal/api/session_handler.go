package api

import (
	"fmt"
	"net/http"

	"waltgoat/walker-app/internal/domain"
	"waltgoat/walker-app/internal/service"

	"github.com/gin-gonic/gin"
)

// SessionHandler serves the walk and circuit logs.
type SessionHandler struct {
	sessionService service.SessionService
}

func NewSessionHandler(sessionService service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

type LogWalkRequest struct {
	DistanceKm  float64            `json:"distanza_km"`
	DurationSec int                `json:"tempo_secondi"`
	Steps       int                `json:"passi"`
	AvgSpeedKmh float64            `json:"velocita_media_kmh"`
	Path        []domain.PathPoint `json:"percorso"`
	Note        string             `json:"note"`
}

type LogCircuitRequest struct {
	DurationMinutes int                  `json:"durata_minuti"`
	Exercises       []domain.ExerciseLog `json:"esercizi"`
	Note            string               `json:"note"`
}

// LogWalk godoc
// @Summary Log a finished walk
// @Tags Sessions
// @Accept json
// @Produce json
// @Param walk body LogWalkRequest true "Walk"
// @Success 201 {object} domain.WalkSession
// @Failure 400 {object} gin.H
// @Router /walks [post]
func (h *SessionHandler) LogWalk(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req LogWalkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	walk, err := h.sessionService.LogWalk(c.Request.Context(), userID, service.WalkInput{
		DistanceKm:  req.DistanceKm,
		DurationSec: req.DurationSec,
		Steps:       req.Steps,
		AvgSpeedKmh: req.AvgSpeedKmh,
		Path:        req.Path,
		Note:        req.Note,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, walk)
}

// ListWalks godoc
// @Summary Walk history, most recent first
// @Tags Sessions
// @Produce json
// @Success 200 {array} domain.WalkSession
// @Router /walks [get]
func (h *SessionHandler) ListWalks(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	walks, err := h.sessionService.ListWalks(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, walks)
}

// GetWalkTrack godoc
// @Summary GPS track of a walk
// @Description Inline points, or a presigned download URL for archived tracks.
// @Tags Sessions
// @Produce json
// @Param walkId path string true "Walk ID"
// @Success 200 {object} service.WalkTrack
// @Failure 404 {object} gin.H
// @Router /walks/{walkId}/track [get]
func (h *SessionHandler) GetWalkTrack(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	track, err := h.sessionService.GetWalkTrack(c.Request.Context(), userID, c.Param("walkId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, track)
}

// LogCircuit godoc
// @Summary Log a finished circuit
// @Tags Sessions
// @Accept json
// @Produce json
// @Param circuit body LogCircuitRequest true "Circuit"
// @Success 201 {object} domain.CircuitSession
// @Failure 400 {object} gin.H
// @Router /circuits [post]
func (h *SessionHandler) LogCircuit(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req LogCircuitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	circuit, err := h.sessionService.LogCircuit(c.Request.Context(), userID, service.CircuitInput{
		DurationMinutes: req.DurationMinutes,
		Exercises:       req.Exercises,
		Note:            req.Note,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, circuit)
}

// ListCircuits godoc
// @Summary Circuit history, most recent first
// @Tags Sessions
// @Produce json
// @Success 200 {array} domain.CircuitSession
// @Router /circuits [get]
func (h *SessionHandler) ListCircuits(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	circuits, err := h.sessionService.ListCircuits(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, circuits)
}
