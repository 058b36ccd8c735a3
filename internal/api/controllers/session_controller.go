package controllers

import (
	"github.com/gin-gonic/gin"
	"log"
	"net/http"

	"wanderguard/internal/models/response_models"
	"wanderguard/pkg/utils"
)

type SessionController struct{}

func NewSessionController() *SessionController {
	return &SessionController{}
}

// CreateSession godoc
// @Summary Start an anonymous session
// @Description Issues the bearer token that scopes guide and plan operations
// @Tags Session
// @Produce json
// @Success 200 {object} response_models.SessionResponse
// @Router /session [post]
func (s *SessionController) CreateSession(c *gin.Context) {
	token, sessionID, err := utils.CreateSessionToken()
	if err != nil {
		log.Printf("Failed to mint session token %s: %v", sessionID, err)
		utils.RespondError(c, http.StatusInternalServerError, "Could not create session")
		return
	}
	utils.RespondSuccess(c, response_models.SessionResponse{Token: token}, "Session created")
}
