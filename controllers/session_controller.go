package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Srilaxmigavvalapally/AI-Personal-Health-Manager/services"
	"github.com/Srilaxmigavvalapally/AI-Personal-Health-Manager/utils"
)

// SessionController stands in for the external credential store in local
// setups: it mints a token carrying the identity claims that store would
// normally sign. Real deployments point JWT_SECRET at the shared secret and
// skip this endpoint entirely.
type SessionController struct {
	Users  *services.UserService
	Secret string
}

func NewSessionController(users *services.UserService, secret string) *SessionController {
	return &SessionController{Users: users, Secret: secret}
}

type sessionReq struct {
	Username string `json:"username" binding:"required"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

// POST /auth/session
func (sc *SessionController) Create(c *gin.Context) {
	var req sessionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	token, err := utils.GenerateJWT(sc.Secret, req.Username, req.Name, req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// GET /me
func (sc *SessionController) Me(c *gin.Context) {
	uid := c.GetUint("userID")
	user, err := sc.Users.GetUser(uid)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}
