// Package httpapi exposes the Talentum REST surface over gin. Handlers map
// service results onto HTTP statuses; auth and role gates live in
// middleware.go.
package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/talentumplus/talentum/internal/common"
	"github.com/talentumplus/talentum/internal/logging"
	"github.com/talentumplus/talentum/internal/server/config"
	"github.com/talentumplus/talentum/internal/server/models"
	"github.com/talentumplus/talentum/internal/server/services"
)

type Handler struct {
	users     *services.UserService
	profiles  *services.ProfileService
	courses   *services.CourseService
	offers    *services.OfferService
	processes *services.ProcessService
	network   *services.NetworkService
	storage   *services.StorageService
	config    *config.Config
	log       logging.Logger
}

func NewHandler(
	users *services.UserService,
	profiles *services.ProfileService,
	courses *services.CourseService,
	offers *services.OfferService,
	processes *services.ProcessService,
	network *services.NetworkService,
	storage *services.StorageService,
	cfg *config.Config,
	log logging.Logger,
) *Handler {
	return &Handler{
		users:     users,
		profiles:  profiles,
		courses:   courses,
		offers:    offers,
		processes: processes,
		network:   network,
		storage:   storage,
		config:    cfg,
		log:       log,
	}
}

type errorResponse struct {
	Message string `json:"message"`
}

func newErrorResponse(c *gin.Context, statusCode int, errMessage string) {
	c.AbortWithStatusJSON(statusCode, errorResponse{Message: errMessage})
}

// abortWithError translates the service sentinel errors into HTTP statuses.
func (h *Handler) abortWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		newErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, common.ErrorValidation),
		errors.Is(err, common.ErrorInvalidRole),
		errors.Is(err, common.ErrorCourseNotFinished):
		newErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, common.ErrorEmailTaken),
		errors.Is(err, common.ErrorAlreadyExists),
		errors.Is(err, common.ErrorAlreadyEnrolled),
		errors.Is(err, common.ErrorAlreadyApplied),
		errors.Is(err, common.ErrorAlreadyConnected),
		errors.Is(err, common.ErrorRequestPending),
		errors.Is(err, common.ErrorRequestProcessed),
		errors.Is(err, common.ErrorSelfRequest):
		newErrorResponse(c, http.StatusConflict, err.Error())
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		newErrorResponse(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, common.ErrorForbidden):
		newErrorResponse(c, http.StatusForbidden, err.Error())
	default:
		h.log.Error(c.Request.Context(), "unexpected handler error", "error", err)
		newErrorResponse(c, http.StatusInternalServerError, "internal error")
	}
}

// InitRoutes builds the gin engine with the full route surface.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	secret := []byte(h.config.SecretKey)

	router.POST("/register", h.Register)
	router.POST("/login", h.Login)

	api := router.Group("/", AuthMiddleware(secret))
	{
		api.GET("/me", h.Me)

		candidatos := api.Group("/candidatos")
		{
			candidatos.GET("", h.ListProfiles)
			candidatos.GET("/:email", h.GetProfile)
			candidatos.PUT("/:email", RequireSelfOrAdmin("email"), h.UpdateProfile)
			candidatos.POST("/:email/skills", RequireSelfOrAdmin("email"), h.AddSkill)
			candidatos.DELETE("/:email/skills/:skill", RequireSelfOrAdmin("email"), h.RemoveSkill)
			candidatos.POST("/:email/cv", RequireSelfOrAdmin("email"), h.PresignCVUpload)
			candidatos.GET("/:email/cv", h.PresignCVDownload)
		}

		cursos := api.Group("/cursos")
		{
			cursos.GET("", h.ListCourses)
			cursos.POST("", RequireRoles(models.RoleAdmin), h.CreateCourse)
			cursos.GET("/:codigo", h.GetCourse)
			cursos.POST("/:codigo/inscripcion", RequireRoles(models.RoleCandidato), h.Enroll)
		}

		inscripciones := api.Group("/inscripciones", RequireRoles(models.RoleCandidato))
		{
			inscripciones.GET("", h.MyEnrollments)
			inscripciones.PUT("/:id/progreso", h.UpdateProgress)
			inscripciones.POST("/:id/examen", h.TakeExam)
			inscripciones.DELETE("/:id", h.Unenroll)
		}

		// grading is an instructor action, outside the candidato-gated group
		api.PUT("/inscripciones/:id/calificar", RequireRoles(models.RoleAdmin), h.GradeEnrollment)

		ofertas := api.Group("/ofertas")
		{
			ofertas.GET("", h.ListOffers)
			ofertas.POST("", RequireRoles(models.RoleEmpresa, models.RoleAdmin), h.CreateOffer)
			ofertas.GET("/:id", h.GetOffer)
			ofertas.PUT("/:id", RequireRoles(models.RoleEmpresa, models.RoleAdmin), h.UpdateOffer)
			ofertas.POST("/:id/aplicar", RequireRoles(models.RoleCandidato), h.Apply)
			ofertas.GET("/:id/aplicaciones", RequireRoles(models.RoleEmpresa, models.RoleAdmin), h.OfferApplications)
		}

		api.GET("/aplicaciones", RequireRoles(models.RoleCandidato), h.MyApplications)
		api.PUT("/aplicaciones/:id/estado", RequireRoles(models.RoleEmpresa, models.RoleAdmin), h.UpdateApplicationEstado)

		procesos := api.Group("/procesos")
		{
			procesos.GET("", h.ListProcesses)
			procesos.POST("", RequireRoles(models.RoleEmpresa, models.RoleAdmin), h.CreateProcess)
			procesos.GET("/:id", h.GetProcess)
			procesos.PUT("/:id", RequireRoles(models.RoleEmpresa, models.RoleAdmin), h.UpdateProcess)
			procesos.GET("/:id/resumen", h.ProcessSummary)
			procesos.POST("/:id/entrevistas", RequireRoles(models.RoleEmpresa, models.RoleAdmin), h.CreateInterview)
			procesos.GET("/:id/entrevistas", h.ListInterviews)
			procesos.POST("/:id/evaluaciones", RequireRoles(models.RoleEmpresa, models.RoleAdmin), h.CreateEvaluation)
			procesos.GET("/:id/evaluaciones", h.ListEvaluations)
		}

		api.GET("/entrevistas", RequireRoles(models.RoleCandidato), h.MyInterviews)
		api.PUT("/entrevistas/:id", RequireRoles(models.RoleEmpresa, models.RoleAdmin), h.UpdateInterview)
		api.GET("/evaluaciones", RequireRoles(models.RoleCandidato), h.MyEvaluations)
		api.PUT("/evaluaciones/:id", RequireRoles(models.RoleEmpresa, models.RoleAdmin), h.UpdateEvaluation)

		api.GET("/red/:email", h.Contacts)
		solicitudes := api.Group("/solicitudes")
		{
			solicitudes.POST("", h.SendRequest)
			solicitudes.GET("/recibidas", h.PendingReceived)
			solicitudes.GET("/enviadas", h.SentRequests)
			solicitudes.PUT("/:id", h.RespondRequest)
		}
		api.GET("/usuarios/buscar", h.SearchUsers)
	}

	return router
}
