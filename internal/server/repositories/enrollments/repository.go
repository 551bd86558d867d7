package enrollments

import (
	"context"

	"github.com/talentumplus/talentum/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, enrollment *models.Enrollment) (*models.Enrollment, error)
	GetByID(ctx context.Context, id string) (*models.Enrollment, error)
	Update(ctx context.Context, enrollment *models.Enrollment) error
	Delete(ctx context.Context, id string) error
	ListByCandidate(ctx context.Context, candidatoEmail string) ([]*models.Enrollment, error)
}
