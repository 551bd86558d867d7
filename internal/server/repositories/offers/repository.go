package offers

import (
	"context"

	"github.com/talentumplus/talentum/internal/server/models"
)

// ListFilter narrows an offer listing. Zero values mean "any".
type ListFilter struct {
	Estado       string
	EmpresaEmail string
	Modalidad    string
	Ubicacion    string
	Skill        string
}

type Repository interface {
	Create(ctx context.Context, offer *models.Offer) (*models.Offer, error)
	GetByID(ctx context.Context, id string) (*models.Offer, error)
	Update(ctx context.Context, offer *models.Offer) error
	List(ctx context.Context, filter ListFilter) ([]*models.Offer, error)
}
