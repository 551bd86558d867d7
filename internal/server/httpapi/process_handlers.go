package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/talentumplus/talentum/internal/server/models"
)

// POST /procesos (empresa, admin)
func (h *Handler) CreateProcess(c *gin.Context) {
	var process models.Process
	if err := c.ShouldBindJSON(&process); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.processes.CreateProcess(c.Request.Context(), &process)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GET /procesos
func (h *Handler) ListProcesses(c *gin.Context) {
	email, rol := callerIdentity(c)

	result, err := h.processes.ListProcesses(c.Request.Context(), email, rol)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GET /procesos/:id
func (h *Handler) GetProcess(c *gin.Context) {
	email, rol := callerIdentity(c)

	process, err := h.processes.GetProcess(c.Request.Context(), email, rol, c.Param("id"))
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, process)
}

// PUT /procesos/:id (empresa, admin)
func (h *Handler) UpdateProcess(c *gin.Context) {
	var process models.Process
	if err := c.ShouldBindJSON(&process); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	process.ID = c.Param("id")

	updated, err := h.processes.UpdateProcess(c.Request.Context(), &process)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// GET /procesos/:id/resumen
func (h *Handler) ProcessSummary(c *gin.Context) {
	email, rol := callerIdentity(c)

	summary, err := h.processes.Summary(c.Request.Context(), email, rol, c.Param("id"))
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// POST /procesos/:id/entrevistas (empresa, admin)
func (h *Handler) CreateInterview(c *gin.Context) {
	var interview models.Interview
	if err := c.ShouldBindJSON(&interview); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	interview.ProcesoID = c.Param("id")

	created, err := h.processes.CreateInterview(c.Request.Context(), &interview)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GET /procesos/:id/entrevistas
func (h *Handler) ListInterviews(c *gin.Context) {
	email, rol := callerIdentity(c)

	result, err := h.processes.ListInterviews(c.Request.Context(), email, rol, c.Param("id"))
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// PUT /entrevistas/:id (empresa, admin)
func (h *Handler) UpdateInterview(c *gin.Context) {
	var interview models.Interview
	if err := c.ShouldBindJSON(&interview); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	interview.ID = c.Param("id")

	updated, err := h.processes.UpdateInterview(c.Request.Context(), &interview)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// GET /entrevistas (candidato)
func (h *Handler) MyInterviews(c *gin.Context) {
	email, _ := callerIdentity(c)

	result, err := h.processes.MyInterviews(c.Request.Context(), email)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// POST /procesos/:id/evaluaciones (empresa, admin)
func (h *Handler) CreateEvaluation(c *gin.Context) {
	var evaluation models.Evaluation
	if err := c.ShouldBindJSON(&evaluation); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	evaluation.ProcesoID = c.Param("id")

	created, err := h.processes.CreateEvaluation(c.Request.Context(), &evaluation)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GET /procesos/:id/evaluaciones
func (h *Handler) ListEvaluations(c *gin.Context) {
	email, rol := callerIdentity(c)

	result, err := h.processes.ListEvaluations(c.Request.Context(), email, rol, c.Param("id"))
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// PUT /evaluaciones/:id (empresa, admin)
func (h *Handler) UpdateEvaluation(c *gin.Context) {
	var evaluation models.Evaluation
	if err := c.ShouldBindJSON(&evaluation); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	evaluation.ID = c.Param("id")

	updated, err := h.processes.UpdateEvaluation(c.Request.Context(), &evaluation)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// GET /evaluaciones (candidato)
func (h *Handler) MyEvaluations(c *gin.Context) {
	email, _ := callerIdentity(c)

	result, err := h.processes.MyEvaluations(c.Request.Context(), email)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
