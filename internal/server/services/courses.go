package services

import (
	"context"
	"database/sql"
	"errors"
	"math/rand/v2"
	"time"

	"github.com/talentumplus/talentum/internal/common"
	"github.com/talentumplus/talentum/internal/dbx"
	"github.com/talentumplus/talentum/internal/server/cache"
	"github.com/talentumplus/talentum/internal/server/config"
	"github.com/talentumplus/talentum/internal/server/models"
	"github.com/talentumplus/talentum/internal/server/repositories/repomanager"
)

const examPassingGrade = 4

// randIntN is a seam for deterministic exam grades in tests.
var randIntN = rand.IntN

// CourseService covers the training catalog and a candidate's enrollments,
// including the final exam that feeds passed course skills back into the
// candidate's profile.
type CourseService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *config.Config
	catalog     *cache.Cache[[]*models.Course]
}

func NewCourseService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *CourseService {
	return &CourseService{
		db:          db,
		repomanager: m,
		config:      cfg,
		catalog:     cache.New[[]*models.Course](cfg.CatalogCacheTTL),
	}
}

func (s *CourseService) CreateCourse(ctx context.Context, course *models.Course) (*models.Course, error) {
	if course.Codigo == "" || course.Nombre == "" {
		return nil, common.ErrorValidation
	}
	course.Skills = normalizeSkills(course.Skills)

	created, err := s.repomanager.Courses(s.db).Create(ctx, course)
	if err != nil {
		return nil, err
	}

	s.catalog.Clear()
	return created, nil
}

// ListCourses serves unfiltered catalog reads from the in-process cache.
func (s *CourseService) ListCourses(ctx context.Context, categoria, nivel string) ([]*models.Course, error) {
	cacheable := categoria == "" && nivel == ""
	if cacheable {
		if cached, ok := s.catalog.Get("all"); ok {
			return cached, nil
		}
	}

	result, err := s.repomanager.Courses(s.db).List(ctx, categoria, nivel)
	if err != nil {
		return nil, err
	}

	if cacheable {
		s.catalog.Set("all", result)
	}
	return result, nil
}

func (s *CourseService) GetCourse(ctx context.Context, codigo string) (*models.Course, error) {
	return s.repomanager.Courses(s.db).GetByCode(ctx, codigo)
}

// Enroll signs the candidate up for a course. A second enrollment in the
// same course yields ErrorAlreadyEnrolled.
func (s *CourseService) Enroll(ctx context.Context, candidatoEmail, cursoCodigo string) (*models.Enrollment, error) {
	course, err := s.repomanager.Courses(s.db).GetByCode(ctx, cursoCodigo)
	if err != nil {
		return nil, err
	}

	enrollment := &models.Enrollment{
		CandidatoEmail: candidatoEmail,
		CursoCodigo:    course.Codigo,
	}
	created, err := s.repomanager.Enrollments(s.db).Create(ctx, enrollment)
	if err != nil {
		return nil, err
	}

	created.Curso = course
	return created, nil
}

func (s *CourseService) MyEnrollments(ctx context.Context, candidatoEmail string) ([]*models.Enrollment, error) {
	return s.repomanager.Enrollments(s.db).ListByCandidate(ctx, candidatoEmail)
}

// UpdateProgress moves the completion fraction. Values outside [0, 1] are
// rejected; reaching 1.0 marks the enrollment completado. Only the owning
// candidate may touch the enrollment.
func (s *CourseService) UpdateProgress(ctx context.Context, candidatoEmail, enrollmentID string, progreso float64) (*models.Enrollment, error) {
	if progreso < 0 || progreso > 1 {
		return nil, common.ErrorValidation
	}

	repo := s.repomanager.Enrollments(s.db)

	enrollment, err := repo.GetByID(ctx, enrollmentID)
	if err != nil {
		return nil, err
	}
	if enrollment.CandidatoEmail != candidatoEmail {
		return nil, common.ErrorForbidden
	}

	enrollment.Progreso = progreso
	enrollment.Completado = progreso >= 1

	if err := repo.Update(ctx, enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

// GradeEnrollment assigns the 0-100 final grade and forces the enrollment
// into the completed state.
func (s *CourseService) GradeEnrollment(ctx context.Context, enrollmentID string, calificacion float64) (*models.Enrollment, error) {
	if calificacion < 0 || calificacion > 100 {
		return nil, common.ErrorValidation
	}

	repo := s.repomanager.Enrollments(s.db)

	enrollment, err := repo.GetByID(ctx, enrollmentID)
	if err != nil {
		return nil, err
	}

	enrollment.Calificacion = &calificacion
	enrollment.Completado = true

	if err := repo.Update(ctx, enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

func (s *CourseService) Unenroll(ctx context.Context, candidatoEmail, enrollmentID string) error {
	repo := s.repomanager.Enrollments(s.db)

	enrollment, err := repo.GetByID(ctx, enrollmentID)
	if err != nil {
		return err
	}
	if enrollment.CandidatoEmail != candidatoEmail {
		return common.ErrorForbidden
	}

	return repo.Delete(ctx, enrollmentID)
}

// TakeExam grades the course's final exam. The course must be fully
// progressed first. Retakes can only improve: the new grade is drawn between
// the previous one and 10. Passing (>= 4) marks the exam aprobado and adds
// the course's skills to the candidate's profile in the same transaction.
func (s *CourseService) TakeExam(ctx context.Context, candidatoEmail, enrollmentID string) (*models.Enrollment, error) {
	enrollment, err := s.repomanager.Enrollments(s.db).GetByID(ctx, enrollmentID)
	if err != nil {
		return nil, err
	}
	if enrollment.CandidatoEmail != candidatoEmail {
		return nil, common.ErrorForbidden
	}
	if enrollment.Progreso < 1 {
		return nil, common.ErrorCourseNotFinished
	}

	course, err := s.repomanager.Courses(s.db).GetByCode(ctx, enrollment.CursoCodigo)
	if err != nil {
		return nil, err
	}

	nota := enrollment.NotaExamen + randIntN(10-enrollment.NotaExamen+1)
	now := time.Now()
	enrollment.NotaExamen = nota
	enrollment.FechaExamen = &now

	passed := nota >= examPassingGrade
	enrollment.Aprobado = passed

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Enrollments(tx).Update(ctx, enrollment); err != nil {
			return err
		}
		if passed {
			return s.grantCourseSkills(ctx, tx, candidatoEmail, course.Skills)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	enrollment.Curso = course
	return enrollment, nil
}

func (s *CourseService) grantCourseSkills(ctx context.Context, tx dbx.DBTX, candidatoEmail string, skills []string) error {
	if len(skills) == 0 {
		return nil
	}

	repo := s.repomanager.Profiles(tx)
	profile, err := repo.Get(ctx, candidatoEmail)
	if err != nil {
		// empresa accounts have no profile to receive skills
		if errors.Is(err, common.ErrorNotFound) {
			return nil
		}
		return err
	}

	profile.Skills = normalizeSkills(append(profile.Skills, skills...))
	_, err = repo.Upsert(ctx, profile)
	return err
}
