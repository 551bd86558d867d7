package services

import (
	"context"
	"database/sql"

	"github.com/talentumplus/talentum/internal/common"
	"github.com/talentumplus/talentum/internal/server/config"
	"github.com/talentumplus/talentum/internal/server/models"
	"github.com/talentumplus/talentum/internal/server/repositories/repomanager"
)

// ProcessSummary aggregates the scores recorded during a selection process.
type ProcessSummary struct {
	ProcesoID          string   `json:"proceso_id"`
	Entrevistas        int      `json:"entrevistas"`
	Evaluaciones       int      `json:"evaluaciones"`
	PromedioEntrevista *float64 `json:"promedio_entrevistas"`
	PromedioEvaluacion *float64 `json:"promedio_evaluaciones"`
}

// ProcessService tracks candidates through selection processes, their
// interviews and technical evaluations. Confidential notes are stripped
// for candidato callers.
type ProcessService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *config.Config
}

func NewProcessService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *ProcessService {
	return &ProcessService{
		db:          db,
		repomanager: m,
		config:      cfg,
	}
}

func (s *ProcessService) CreateProcess(ctx context.Context, process *models.Process) (*models.Process, error) {
	if process.CandidatoEmail == "" || process.Puesto == "" {
		return nil, common.ErrorValidation
	}
	if _, err := s.repomanager.Users(s.db).GetByEmail(ctx, process.CandidatoEmail); err != nil {
		return nil, err
	}
	return s.repomanager.Processes(s.db).Create(ctx, process)
}

// ListProcesses returns every process for staff callers, and only the
// caller's own, stripped of confidential notes, for candidatos.
func (s *ProcessService) ListProcesses(ctx context.Context, callerEmail, callerRol string) ([]*models.Process, error) {
	repo := s.repomanager.Processes(s.db)

	if callerRol == models.RoleCandidato {
		result, err := repo.ListByCandidate(ctx, callerEmail)
		if err != nil {
			return nil, err
		}
		for _, p := range result {
			p.NotasConfidenciales = ""
		}
		return result, nil
	}

	return repo.ListAll(ctx)
}

func (s *ProcessService) GetProcess(ctx context.Context, callerEmail, callerRol, id string) (*models.Process, error) {
	process, err := s.repomanager.Processes(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if callerRol == models.RoleCandidato {
		if process.CandidatoEmail != callerEmail {
			return nil, common.ErrorForbidden
		}
		process.NotasConfidenciales = ""
	}

	return process, nil
}

func (s *ProcessService) UpdateProcess(ctx context.Context, process *models.Process) (*models.Process, error) {
	repo := s.repomanager.Processes(s.db)

	stored, err := repo.GetByID(ctx, process.ID)
	if err != nil {
		return nil, err
	}

	process.CandidatoEmail = stored.CandidatoEmail
	if err := repo.Update(ctx, process); err != nil {
		return nil, err
	}
	return process, nil
}

func (s *ProcessService) CreateInterview(ctx context.Context, interview *models.Interview) (*models.Interview, error) {
	if interview.Tipo == "" || interview.Fecha.IsZero() {
		return nil, common.ErrorValidation
	}
	if interview.Estado == "" {
		interview.Estado = models.InterviewScheduled
	}
	if _, err := s.repomanager.Processes(s.db).GetByID(ctx, interview.ProcesoID); err != nil {
		return nil, err
	}
	return s.repomanager.Processes(s.db).CreateInterview(ctx, interview)
}

func (s *ProcessService) UpdateInterview(ctx context.Context, interview *models.Interview) (*models.Interview, error) {
	repo := s.repomanager.Processes(s.db)

	stored, err := repo.GetInterview(ctx, interview.ID)
	if err != nil {
		return nil, err
	}

	interview.ProcesoID = stored.ProcesoID
	if err := repo.UpdateInterview(ctx, interview); err != nil {
		return nil, err
	}
	return interview, nil
}

func (s *ProcessService) ListInterviews(ctx context.Context, callerEmail, callerRol, procesoID string) ([]*models.Interview, error) {
	if _, err := s.GetProcess(ctx, callerEmail, callerRol, procesoID); err != nil {
		return nil, err
	}
	return s.repomanager.Processes(s.db).ListInterviewsByProcess(ctx, procesoID)
}

func (s *ProcessService) MyInterviews(ctx context.Context, candidatoEmail string) ([]*models.Interview, error) {
	return s.repomanager.Processes(s.db).ListInterviewsByCandidate(ctx, candidatoEmail)
}

func (s *ProcessService) CreateEvaluation(ctx context.Context, evaluation *models.Evaluation) (*models.Evaluation, error) {
	if evaluation.Tipo == "" {
		return nil, common.ErrorValidation
	}
	if _, err := s.repomanager.Processes(s.db).GetByID(ctx, evaluation.ProcesoID); err != nil {
		return nil, err
	}
	return s.repomanager.Processes(s.db).CreateEvaluation(ctx, evaluation)
}

func (s *ProcessService) UpdateEvaluation(ctx context.Context, evaluation *models.Evaluation) (*models.Evaluation, error) {
	repo := s.repomanager.Processes(s.db)

	stored, err := repo.GetEvaluation(ctx, evaluation.ID)
	if err != nil {
		return nil, err
	}

	evaluation.ProcesoID = stored.ProcesoID
	if err := repo.UpdateEvaluation(ctx, evaluation); err != nil {
		return nil, err
	}
	return evaluation, nil
}

func (s *ProcessService) ListEvaluations(ctx context.Context, callerEmail, callerRol, procesoID string) ([]*models.Evaluation, error) {
	if _, err := s.GetProcess(ctx, callerEmail, callerRol, procesoID); err != nil {
		return nil, err
	}
	return s.repomanager.Processes(s.db).ListEvaluationsByProcess(ctx, procesoID)
}

func (s *ProcessService) MyEvaluations(ctx context.Context, candidatoEmail string) ([]*models.Evaluation, error) {
	return s.repomanager.Processes(s.db).ListEvaluationsByCandidate(ctx, candidatoEmail)
}

// Summary averages the scores recorded so far for one process.
func (s *ProcessService) Summary(ctx context.Context, callerEmail, callerRol, procesoID string) (*ProcessSummary, error) {
	if _, err := s.GetProcess(ctx, callerEmail, callerRol, procesoID); err != nil {
		return nil, err
	}

	repo := s.repomanager.Processes(s.db)

	interviews, err := repo.ListInterviewsByProcess(ctx, procesoID)
	if err != nil {
		return nil, err
	}
	evaluations, err := repo.ListEvaluationsByProcess(ctx, procesoID)
	if err != nil {
		return nil, err
	}

	summary := &ProcessSummary{
		ProcesoID:    procesoID,
		Entrevistas:  len(interviews),
		Evaluaciones: len(evaluations),
	}

	var scored int
	var total float64
	for _, iv := range interviews {
		if iv.Puntaje != nil {
			scored++
			total += float64(*iv.Puntaje)
		}
	}
	if scored > 0 {
		avg := total / float64(scored)
		summary.PromedioEntrevista = &avg
	}

	if len(evaluations) > 0 {
		var sum float64
		for _, ev := range evaluations {
			sum += ev.Puntaje
		}
		avg := sum / float64(len(evaluations))
		summary.PromedioEvaluacion = &avg
	}

	return summary, nil
}
