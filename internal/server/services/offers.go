package services

import (
	"context"
	"database/sql"

	"github.com/talentumplus/talentum/internal/common"
	"github.com/talentumplus/talentum/internal/server/config"
	"github.com/talentumplus/talentum/internal/server/models"
	"github.com/talentumplus/talentum/internal/server/repositories/offers"
	"github.com/talentumplus/talentum/internal/server/repositories/repomanager"
)

// OfferService manages job offers and candidate applications.
type OfferService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *config.Config
}

func NewOfferService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *OfferService {
	return &OfferService{
		db:          db,
		repomanager: m,
		config:      cfg,
	}
}

// CreateOffer publishes a new offer for the empresa. Requisitos given as a
// comma-separated line are also folded into the skill list.
func (s *OfferService) CreateOffer(ctx context.Context, empresaEmail string, offer *models.Offer) (*models.Offer, error) {
	if offer.Titulo == "" {
		return nil, common.ErrorValidation
	}

	offer.EmpresaEmail = empresaEmail
	if offer.Estado == "" {
		offer.Estado = models.OfferOpen
	}
	if !validOfferState(offer.Estado) {
		return nil, common.ErrorValidation
	}

	skills := offer.SkillsRequeridos
	skills = append(skills, common.SplitCommaList(offer.Requisitos)...)
	offer.SkillsRequeridos = normalizeSkills(skills)

	return s.repomanager.Offers(s.db).Create(ctx, offer)
}

func (s *OfferService) ListOffers(ctx context.Context, filter offers.ListFilter) ([]*models.Offer, error) {
	if filter.Skill != "" {
		filter.Skill = common.NormalizeSkill(filter.Skill)
	}
	return s.repomanager.Offers(s.db).List(ctx, filter)
}

func (s *OfferService) GetOffer(ctx context.Context, id string) (*models.Offer, error) {
	return s.repomanager.Offers(s.db).GetByID(ctx, id)
}

// UpdateOffer applies changes to an offer the caller owns. Admins may edit
// any offer.
func (s *OfferService) UpdateOffer(ctx context.Context, callerEmail, callerRol string, offer *models.Offer) (*models.Offer, error) {
	repo := s.repomanager.Offers(s.db)

	stored, err := repo.GetByID(ctx, offer.ID)
	if err != nil {
		return nil, err
	}
	if stored.EmpresaEmail != callerEmail && callerRol != models.RoleAdmin {
		return nil, common.ErrorForbidden
	}
	if !validOfferState(offer.Estado) {
		return nil, common.ErrorValidation
	}

	offer.EmpresaEmail = stored.EmpresaEmail
	offer.FechaPublicacion = stored.FechaPublicacion
	offer.SkillsRequeridos = normalizeSkills(offer.SkillsRequeridos)

	if err := repo.Update(ctx, offer); err != nil {
		return nil, err
	}
	return offer, nil
}

// Apply creates an application against an open offer. Applying twice to the
// same offer yields ErrorAlreadyApplied.
func (s *OfferService) Apply(ctx context.Context, candidatoEmail, ofertaID string) (*models.Application, error) {
	offer, err := s.repomanager.Offers(s.db).GetByID(ctx, ofertaID)
	if err != nil {
		return nil, err
	}
	if offer.Estado != models.OfferOpen {
		return nil, common.ErrorValidation
	}

	application := &models.Application{
		CandidatoEmail: candidatoEmail,
		OfertaID:       offer.ID,
		Estado:         models.ApplicationPending,
	}
	created, err := s.repomanager.Applications(s.db).Create(ctx, application)
	if err != nil {
		return nil, err
	}

	created.Oferta = offer
	return created, nil
}

func (s *OfferService) MyApplications(ctx context.Context, candidatoEmail string) ([]*models.Application, error) {
	return s.repomanager.Applications(s.db).ListByCandidate(ctx, candidatoEmail)
}

// OfferApplications lists applications to one offer, restricted to the
// owning empresa and admins.
func (s *OfferService) OfferApplications(ctx context.Context, callerEmail, callerRol, ofertaID string) ([]*models.Application, error) {
	offer, err := s.repomanager.Offers(s.db).GetByID(ctx, ofertaID)
	if err != nil {
		return nil, err
	}
	if offer.EmpresaEmail != callerEmail && callerRol != models.RoleAdmin {
		return nil, common.ErrorForbidden
	}

	return s.repomanager.Applications(s.db).ListByOffer(ctx, ofertaID)
}

// UpdateApplicationEstado moves an application through the pipeline, on
// behalf of the offer's empresa or an admin.
func (s *OfferService) UpdateApplicationEstado(ctx context.Context, callerEmail, callerRol, applicationID, estado string) error {
	if estado == "" {
		return common.ErrorValidation
	}

	application, err := s.repomanager.Applications(s.db).GetByID(ctx, applicationID)
	if err != nil {
		return err
	}

	offer, err := s.repomanager.Offers(s.db).GetByID(ctx, application.OfertaID)
	if err != nil {
		return err
	}
	if offer.EmpresaEmail != callerEmail && callerRol != models.RoleAdmin {
		return common.ErrorForbidden
	}

	return s.repomanager.Applications(s.db).UpdateEstado(ctx, applicationID, estado)
}

func validOfferState(estado string) bool {
	switch estado {
	case models.OfferOpen, models.OfferClosed, models.OfferPaused:
		return true
	}
	return false
}
