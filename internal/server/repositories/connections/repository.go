package connections

import (
	"context"

	"github.com/talentumplus/talentum/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, request *models.ConnectionRequest) (*models.ConnectionRequest, error)
	GetByID(ctx context.Context, id string) (*models.ConnectionRequest, error)
	UpdateEstado(ctx context.Context, id string, estado string) error
	// FindBetween returns any request between the two emails, in either
	// direction, whose estado is one of the given states.
	FindBetween(ctx context.Context, emailA string, emailB string, estados ...string) (*models.ConnectionRequest, error)
	ListReceived(ctx context.Context, email string, estado string) ([]*models.ConnectionRequest, error)
	ListSent(ctx context.Context, email string, estado string) ([]*models.ConnectionRequest, error)
	ListContacts(ctx context.Context, email string) ([]*models.Contact, error)
}
