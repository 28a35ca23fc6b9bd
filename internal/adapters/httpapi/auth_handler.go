package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jadwal/internal/domain"
	"jadwal/internal/ports/input"
)

type signUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role" binding:"omitempty,oneof=admin dosen mahasiswa"`
}

type signInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) signUp(c *gin.Context) {
	var req signUpRequest
	if err := bind(c, &req); err != nil {
		s.fail(c, err)
		return
	}
	user, err := s.auth.SignUp(c.Request.Context(), input.SignUpInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     req.Role,
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	s.ok(c, http.StatusCreated, "ok.saved", gin.H{"user": user})
}

func (s *Server) signIn(c *gin.Context) {
	var req signInRequest
	if err := bind(c, &req); err != nil {
		s.fail(c, err)
		return
	}
	session, err := s.auth.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		s.fail(c, err)
		return
	}
	s.ok(c, http.StatusOK, "", gin.H{"session": session})
}

func (s *Server) me(c *gin.Context) {
	claims := claimsFrom(c)
	if claims == nil {
		s.fail(c, domain.ErrUnauthorized)
		return
	}
	user, err := s.auth.Me(c.Request.Context(), claims.UserID)
	if err != nil {
		s.fail(c, err)
		return
	}
	s.ok(c, http.StatusOK, "", gin.H{"user": user})
}
