package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/talentumplus/talentum/internal/server/models"
	offersrepo "github.com/talentumplus/talentum/internal/server/repositories/offers"
)

// GET /ofertas?estado=&empresa=&modalidad=&ubicacion=&skill=
//
// Without an explicit estado only open offers are listed.
func (h *Handler) ListOffers(c *gin.Context) {
	filter := offersrepo.ListFilter{
		Estado:       c.DefaultQuery("estado", models.OfferOpen),
		EmpresaEmail: c.Query("empresa"),
		Modalidad:    c.Query("modalidad"),
		Ubicacion:    c.Query("ubicacion"),
		Skill:        c.Query("skill"),
	}

	result, err := h.offers.ListOffers(c.Request.Context(), filter)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// POST /ofertas (empresa, admin)
func (h *Handler) CreateOffer(c *gin.Context) {
	var offer models.Offer
	if err := c.ShouldBindJSON(&offer); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	email, _ := callerIdentity(c)

	created, err := h.offers.CreateOffer(c.Request.Context(), email, &offer)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GET /ofertas/:id
func (h *Handler) GetOffer(c *gin.Context) {
	offer, err := h.offers.GetOffer(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, offer)
}

// PUT /ofertas/:id (empresa, admin)
func (h *Handler) UpdateOffer(c *gin.Context) {
	var offer models.Offer
	if err := c.ShouldBindJSON(&offer); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	offer.ID = c.Param("id")

	email, rol := callerIdentity(c)

	updated, err := h.offers.UpdateOffer(c.Request.Context(), email, rol, &offer)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// POST /ofertas/:id/aplicar (candidato)
func (h *Handler) Apply(c *gin.Context) {
	email, _ := callerIdentity(c)

	application, err := h.offers.Apply(c.Request.Context(), email, c.Param("id"))
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, application)
}

// GET /ofertas/:id/aplicaciones (empresa, admin)
func (h *Handler) OfferApplications(c *gin.Context) {
	email, rol := callerIdentity(c)

	result, err := h.offers.OfferApplications(c.Request.Context(), email, rol, c.Param("id"))
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GET /aplicaciones (candidato)
func (h *Handler) MyApplications(c *gin.Context) {
	email, _ := callerIdentity(c)

	result, err := h.offers.MyApplications(c.Request.Context(), email)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// PUT /aplicaciones/:id/estado (empresa, admin)
func (h *Handler) UpdateApplicationEstado(c *gin.Context) {
	var req struct {
		Estado string `json:"estado" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	email, rol := callerIdentity(c)

	if err := h.offers.UpdateApplicationEstado(c.Request.Context(), email, rol, c.Param("id"), req.Estado); err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "estado actualizado"})
}
