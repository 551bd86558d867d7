package applications

import (
	"context"

	"github.com/talentumplus/talentum/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, application *models.Application) (*models.Application, error)
	GetByID(ctx context.Context, id string) (*models.Application, error)
	UpdateEstado(ctx context.Context, id string, estado string) error
	ListByCandidate(ctx context.Context, candidatoEmail string) ([]*models.Application, error)
	ListByOffer(ctx context.Context, ofertaID string) ([]*models.Application, error)
}
