package handlers

import (
	"net/http"
	"time"

	trainerRepo "tutorbase/database/repository/trainer"
	"tutorbase/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler serves trainer authentication.
type AuthHandler struct {
	TrainerRepo trainerRepo.TrainerRepository
}

func NewAuthHandler(repo trainerRepo.TrainerRepository) *AuthHandler {
	return &AuthHandler{TrainerRepo: repo}
}

// TrainerLoginHandler authenticates a trainer by email and password and
// issues a JWT whose hash is stored for server-side revocation.
func (h *AuthHandler) TrainerLoginHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	trainer, err := h.TrainerRepo.GetByEmail(c.Request.Context(), input.Email)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials", "")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(trainer.PasswordHash), []byte(input.Password)); err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials", "")
		return
	}

	token, err := utils.GenerateToken(trainer.ID, "trainer", 24*time.Hour)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue token", err.Error())
		return
	}
	if err := h.TrainerRepo.SetTokenHash(c.Request.Context(), trainer.ID, utils.HashToken(token)); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to store token", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"trainerId": trainer.ID,
	})
}
