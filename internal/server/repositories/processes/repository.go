package processes

import (
	"context"

	"github.com/talentumplus/talentum/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, process *models.Process) (*models.Process, error)
	GetByID(ctx context.Context, id string) (*models.Process, error)
	Update(ctx context.Context, process *models.Process) error
	ListAll(ctx context.Context) ([]*models.Process, error)
	ListByCandidate(ctx context.Context, candidatoEmail string) ([]*models.Process, error)

	CreateInterview(ctx context.Context, interview *models.Interview) (*models.Interview, error)
	GetInterview(ctx context.Context, id string) (*models.Interview, error)
	UpdateInterview(ctx context.Context, interview *models.Interview) error
	ListInterviewsByProcess(ctx context.Context, procesoID string) ([]*models.Interview, error)
	ListInterviewsByCandidate(ctx context.Context, candidatoEmail string) ([]*models.Interview, error)

	CreateEvaluation(ctx context.Context, evaluation *models.Evaluation) (*models.Evaluation, error)
	GetEvaluation(ctx context.Context, id string) (*models.Evaluation, error)
	UpdateEvaluation(ctx context.Context, evaluation *models.Evaluation) error
	ListEvaluationsByProcess(ctx context.Context, procesoID string) ([]*models.Evaluation, error)
	ListEvaluationsByCandidate(ctx context.Context, candidatoEmail string) ([]*models.Evaluation, error)
}
