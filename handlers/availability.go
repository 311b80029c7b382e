package handlers

import (
	"net/http"
	"time"

	"tutorbase/models"
	"tutorbase/services/availability"
	"tutorbase/utils"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler serves trainer availability and blackout endpoints.
type AvailabilityHandler struct {
	Service availability.AvailabilityService
}

func NewAvailabilityHandler(svc availability.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

// SetupTimeslotsHandler replaces the authenticated trainer's weekly
// availability windows.
func (h *AvailabilityHandler) SetupTimeslotsHandler(c *gin.Context) {
	trainerID := c.GetString("trainerID")
	if trainerID == "" {
		trainerID = c.Param("id")
	}

	var req models.SetupTimeslotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Service.SetWeeklySlots(c.Request.Context(), trainerID, req.TimeSlots); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to set timeslots", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"trainerId": trainerID, "timeSlots": req.TimeSlots})
}

// DeclareBlockHandler records a blackout interval for a trainer and
// reports the sessions that had to be cancelled because of it.
func (h *AvailabilityHandler) DeclareBlockHandler(c *gin.Context) {
	trainerID := c.GetString("trainerID")
	if trainerID == "" {
		trainerID = c.Param("id")
	}

	var input struct {
		Start  time.Time `json:"start" binding:"required"`
		End    time.Time `json:"end" binding:"required"`
		Reason string    `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	block, cancelled, err := h.Service.DeclareBlock(c.Request.Context(), trainerID, input.Start, input.End, input.Reason)
	if err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "failed to declare block", err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"block":             block,
		"cancelledSessions": cancelled,
	})
}
