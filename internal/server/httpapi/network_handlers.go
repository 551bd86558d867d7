package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/talentumplus/talentum/internal/server/models"
)

// GET /red/:email
//
// A user's confirmed network is visible to the user themselves and to
// admins.
func (h *Handler) Contacts(c *gin.Context) {
	caller, rol := callerIdentity(c)
	target := c.Param("email")

	if caller != target && rol != models.RoleAdmin {
		newErrorResponse(c, http.StatusForbidden, "not your network")
		return
	}

	result, err := h.network.Contacts(c.Request.Context(), target)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// POST /solicitudes
func (h *Handler) SendRequest(c *gin.Context) {
	var req struct {
		Destinatario string `json:"destinatario" binding:"required"`
		Mensaje      string `json:"mensaje"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	email, _ := callerIdentity(c)

	request, err := h.network.SendRequest(c.Request.Context(), email, req.Destinatario, req.Mensaje)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, request)
}

// GET /solicitudes/recibidas
func (h *Handler) PendingReceived(c *gin.Context) {
	email, _ := callerIdentity(c)

	result, err := h.network.PendingReceived(c.Request.Context(), email)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GET /solicitudes/enviadas
func (h *Handler) SentRequests(c *gin.Context) {
	email, _ := callerIdentity(c)

	result, err := h.network.Sent(c.Request.Context(), email)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// PUT /solicitudes/:id
func (h *Handler) RespondRequest(c *gin.Context) {
	var req struct {
		Accion string `json:"accion" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Accion != "aceptar" && req.Accion != "rechazar" {
		newErrorResponse(c, http.StatusBadRequest, "accion must be aceptar or rechazar")
		return
	}

	email, _ := callerIdentity(c)

	request, err := h.network.Respond(c.Request.Context(), email, c.Param("id"), req.Accion == "aceptar")
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, request)
}

// GET /usuarios/buscar?q=&limit=
func (h *Handler) SearchUsers(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	email, _ := callerIdentity(c)

	result, err := h.network.SearchUsers(c.Request.Context(), email, c.Query("q"), limit)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
