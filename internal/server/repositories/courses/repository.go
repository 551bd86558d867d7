package courses

import (
	"context"

	"github.com/talentumplus/talentum/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, course *models.Course) (*models.Course, error)
	GetByCode(ctx context.Context, codigo string) (*models.Course, error)
	List(ctx context.Context, categoria string, nivel string) ([]*models.Course, error)
}
