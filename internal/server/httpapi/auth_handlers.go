package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/talentumplus/talentum/internal/server/models"
	"github.com/talentumplus/talentum/internal/server/services"
)

type registerRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Nombre   string `json:"nombre" binding:"required"`
	Rol      string `json:"rol"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type authResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Email       string `json:"email"`
	Rol         string `json:"rol"`
	Nombre      string `json:"nombre"`
}

func newAuthResponse(res *services.AuthResult) authResponse {
	return authResponse{
		AccessToken: res.AccessToken,
		TokenType:   "bearer",
		Email:       res.User.Email,
		Rol:         res.User.Rol,
		Nombre:      res.User.Nombre,
	}
}

// POST /register
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Rol == "" {
		req.Rol = models.RoleCandidato
	}

	res, err := h.users.Register(c.Request.Context(), req.Email, req.Password, req.Nombre, req.Rol)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	h.log.Info(c.Request.Context(), "user registered", "email", res.User.Email, "rol", res.User.Rol)

	c.JSON(http.StatusCreated, newAuthResponse(res))
}

// POST /login
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newAuthResponse(res))
}

// GET /me
func (h *Handler) Me(c *gin.Context) {
	email, _ := callerIdentity(c)

	user, err := h.users.Me(c.Request.Context(), email)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
