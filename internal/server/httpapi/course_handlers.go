package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/talentumplus/talentum/internal/server/models"
)

// GET /cursos?categoria=&nivel=
func (h *Handler) ListCourses(c *gin.Context) {
	result, err := h.courses.ListCourses(c.Request.Context(), c.Query("categoria"), c.Query("nivel"))
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// POST /cursos (admin)
func (h *Handler) CreateCourse(c *gin.Context) {
	var course models.Course
	if err := c.ShouldBindJSON(&course); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.courses.CreateCourse(c.Request.Context(), &course)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GET /cursos/:codigo
func (h *Handler) GetCourse(c *gin.Context) {
	course, err := h.courses.GetCourse(c.Request.Context(), c.Param("codigo"))
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, course)
}

// POST /cursos/:codigo/inscripcion (candidato)
func (h *Handler) Enroll(c *gin.Context) {
	email, _ := callerIdentity(c)

	enrollment, err := h.courses.Enroll(c.Request.Context(), email, c.Param("codigo"))
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, enrollment)
}

// GET /inscripciones (candidato)
func (h *Handler) MyEnrollments(c *gin.Context) {
	email, _ := callerIdentity(c)

	result, err := h.courses.MyEnrollments(c.Request.Context(), email)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// PUT /inscripciones/:id/progreso (candidato)
func (h *Handler) UpdateProgress(c *gin.Context) {
	var req struct {
		Progreso *float64 `json:"progreso" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	email, _ := callerIdentity(c)

	enrollment, err := h.courses.UpdateProgress(c.Request.Context(), email, c.Param("id"), *req.Progreso)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, enrollment)
}

// PUT /inscripciones/:id/calificar (admin)
func (h *Handler) GradeEnrollment(c *gin.Context) {
	var req struct {
		Calificacion *float64 `json:"calificacion" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	enrollment, err := h.courses.GradeEnrollment(c.Request.Context(), c.Param("id"), *req.Calificacion)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, enrollment)
}

// POST /inscripciones/:id/examen (candidato)
func (h *Handler) TakeExam(c *gin.Context) {
	email, _ := callerIdentity(c)

	enrollment, err := h.courses.TakeExam(c.Request.Context(), email, c.Param("id"))
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, enrollment)
}

// DELETE /inscripciones/:id (candidato)
func (h *Handler) Unenroll(c *gin.Context) {
	email, _ := callerIdentity(c)

	if err := h.courses.Unenroll(c.Request.Context(), email, c.Param("id")); err != nil {
		h.abortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
