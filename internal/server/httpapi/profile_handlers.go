package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/talentumplus/talentum/internal/server/services"
)

// GET /candidatos?skill=&seniority=&limit=
func (h *Handler) ListProfiles(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	result, err := h.profiles.List(c.Request.Context(), c.Query("skill"), c.Query("seniority"), limit)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GET /candidatos/:email
func (h *Handler) GetProfile(c *gin.Context) {
	profile, err := h.profiles.Get(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

type profileUpdateRequest struct {
	Seniority   *string   `json:"seniority"`
	Skills      *[]string `json:"skills"`
	Experiencia *string   `json:"experiencia"`
	Educacion   *string   `json:"educacion"`
}

// PUT /candidatos/:email
func (h *Handler) UpdateProfile(c *gin.Context) {
	var req profileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	profile, err := h.profiles.Update(c.Request.Context(), c.Param("email"), services.ProfileUpdate{
		Seniority:   req.Seniority,
		Skills:      req.Skills,
		Experiencia: req.Experiencia,
		Educacion:   req.Educacion,
	})
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// POST /candidatos/:email/skills
func (h *Handler) AddSkill(c *gin.Context) {
	var req struct {
		Skill string `json:"skill" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	profile, err := h.profiles.AddSkill(c.Request.Context(), c.Param("email"), req.Skill)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// DELETE /candidatos/:email/skills/:skill
func (h *Handler) RemoveSkill(c *gin.Context) {
	profile, err := h.profiles.RemoveSkill(c.Request.Context(), c.Param("email"), c.Param("skill"))
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// POST /candidatos/:email/cv
//
// Mints a presigned PUT URL and records the key on the profile. The client
// uploads the file straight to object storage.
func (h *Handler) PresignCVUpload(c *gin.Context) {
	key, url, err := h.storage.GetPresignedPutURL(c.Request.Context())
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	if _, err := h.profiles.SetCVKey(c.Request.Context(), c.Param("email"), key); err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"key": key, "upload_url": url})
}

// GET /candidatos/:email/cv
func (h *Handler) PresignCVDownload(c *gin.Context) {
	profile, err := h.profiles.Get(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	if profile.CVKey == "" {
		newErrorResponse(c, http.StatusNotFound, "no cv uploaded")
		return
	}

	url, err := h.storage.GetPresignedGetURL(c.Request.Context(), profile.CVKey)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"download_url": url})
}
