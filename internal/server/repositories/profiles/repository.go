package profiles

import (
	"context"

	"github.com/talentumplus/talentum/internal/server/models"
)

type Repository interface {
	Get(ctx context.Context, email string) (*models.Profile, error)
	Upsert(ctx context.Context, profile *models.Profile) (*models.Profile, error)
	List(ctx context.Context, skill string, seniority string, limit int) ([]*models.Profile, error)
}
