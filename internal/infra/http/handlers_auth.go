package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type authResponse struct {
	Token        string    `json:"token"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

func (s *Server) handleLogin(c *gin.Context) {
	if !s.enforceLoginRateLimit(c) {
		return
	}
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeFailure(c, http.StatusBadRequest, statusError, "Invalid request body")
		return
	}
	result, err := s.loginUC.Execute(c.Request.Context(), req.Email, req.Password, c.ClientIP())
	if err != nil {
		writeTranslated(c, err)
		return
	}
	c.Header("Authorization", bearerPrefix+result.Token)
	c.Header("Access-Control-Expose-Headers", "Authorization")
	writeSuccess(c, http.StatusOK, "Login successfully", authResponse{
		Token:        result.Token,
		RefreshToken: result.RefreshToken,
		ExpiresAt:    result.ExpiresAt,
	})
}

func (s *Server) handleRegister(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeFailure(c, http.StatusBadRequest, statusError, "Invalid request body")
		return
	}
	result, err := s.registerUC.Execute(c.Request.Context(), req.Email, req.Password, req.Name, c.ClientIP())
	if err != nil {
		writeTranslated(c, err)
		return
	}
	writeSuccess(c, http.StatusCreated, "User registered successfully", authResponse{
		Token:        result.Token,
		RefreshToken: result.RefreshToken,
		ExpiresAt:    result.ExpiresAt,
	})
}
