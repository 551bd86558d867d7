package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/talentumplus/talentum/internal/common"
	"github.com/talentumplus/talentum/internal/server/config"
	"github.com/talentumplus/talentum/internal/server/models"
	"github.com/talentumplus/talentum/internal/server/repositories/repomanager"
)

// NetworkService implements the professional network: connection requests,
// accept/reject decisions, the resulting contact list, and user search.
type NetworkService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *config.Config
}

func NewNetworkService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *NetworkService {
	return &NetworkService{
		db:          db,
		repomanager: m,
		config:      cfg,
	}
}

// SendRequest creates a pending connection request. Requests to oneself,
// duplicates of a pending request (in either direction) and requests to an
// already connected user are rejected.
func (s *NetworkService) SendRequest(ctx context.Context, remitente, destinatario, mensaje string) (*models.ConnectionRequest, error) {
	if remitente == destinatario {
		return nil, common.ErrorSelfRequest
	}

	if _, err := s.repomanager.Users(s.db).GetByEmail(ctx, destinatario); err != nil {
		return nil, err
	}

	repo := s.repomanager.Connections(s.db)

	existing, err := repo.FindBetween(ctx, remitente, destinatario,
		models.RequestPending, models.RequestAccepted)
	if err != nil && !errors.Is(err, common.ErrorNotFound) {
		return nil, err
	}
	if existing != nil {
		if existing.Estado == models.RequestAccepted {
			return nil, common.ErrorAlreadyConnected
		}
		return nil, common.ErrorRequestPending
	}

	request := &models.ConnectionRequest{
		RemitenteEmail:    remitente,
		DestinatarioEmail: destinatario,
		Mensaje:           mensaje,
		Estado:            models.RequestPending,
	}
	return repo.Create(ctx, request)
}

// Respond accepts or rejects a pending request. Only the addressee may
// respond, and only once.
func (s *NetworkService) Respond(ctx context.Context, callerEmail, requestID string, accept bool) (*models.ConnectionRequest, error) {
	repo := s.repomanager.Connections(s.db)

	request, err := repo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.DestinatarioEmail != callerEmail {
		return nil, common.ErrorForbidden
	}
	if request.Estado != models.RequestPending {
		return nil, common.ErrorRequestProcessed
	}

	estado := models.RequestRejected
	if accept {
		estado = models.RequestAccepted
	}

	if err := repo.UpdateEstado(ctx, requestID, estado); err != nil {
		return nil, err
	}

	request.Estado = estado
	return request, nil
}

func (s *NetworkService) PendingReceived(ctx context.Context, email string) ([]*models.ConnectionRequest, error) {
	return s.repomanager.Connections(s.db).ListReceived(ctx, email, models.RequestPending)
}

func (s *NetworkService) Sent(ctx context.Context, email string) ([]*models.ConnectionRequest, error) {
	return s.repomanager.Connections(s.db).ListSent(ctx, email, "")
}

// Contacts lists the user's confirmed network.
func (s *NetworkService) Contacts(ctx context.Context, email string) ([]*models.Contact, error) {
	return s.repomanager.Connections(s.db).ListContacts(ctx, email)
}

// SearchUsers finds other accounts by name or email fragment. Queries need
// at least two characters; existing contacts and pending counterparts are
// left out of the results.
func (s *NetworkService) SearchUsers(ctx context.Context, callerEmail, query string, limit int) ([]*models.User, error) {
	if len(strings.TrimSpace(query)) < 2 {
		return nil, common.ErrorValidation
	}
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	return s.repomanager.Users(s.db).Search(ctx, query, callerEmail, limit)
}
