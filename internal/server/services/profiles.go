package services

import (
	"context"
	"database/sql"

	"github.com/talentumplus/talentum/internal/common"
	"github.com/talentumplus/talentum/internal/server/config"
	"github.com/talentumplus/talentum/internal/server/models"
	"github.com/talentumplus/talentum/internal/server/repositories/repomanager"
)

// ProfileUpdate carries the mutable profile fields. Nil pointers leave the
// stored value untouched.
type ProfileUpdate struct {
	Seniority   *string
	Skills      *[]string
	Experiencia *string
	Educacion   *string
}

type ProfileService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *config.Config
}

func NewProfileService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *ProfileService {
	return &ProfileService{
		db:          db,
		repomanager: m,
		config:      cfg,
	}
}

func (s *ProfileService) Get(ctx context.Context, email string) (*models.Profile, error) {
	return s.repomanager.Profiles(s.db).Get(ctx, email)
}

func (s *ProfileService) List(ctx context.Context, skill, seniority string, limit int) ([]*models.Profile, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	if skill != "" {
		skill = common.NormalizeSkill(skill)
	}
	return s.repomanager.Profiles(s.db).List(ctx, skill, seniority, limit)
}

// Update applies the non-nil fields of upd on top of the stored profile.
func (s *ProfileService) Update(ctx context.Context, email string, upd ProfileUpdate) (*models.Profile, error) {
	repo := s.repomanager.Profiles(s.db)

	profile, err := repo.Get(ctx, email)
	if err != nil {
		return nil, err
	}

	if upd.Seniority != nil {
		if *upd.Seniority != "" && !models.ValidSeniority(*upd.Seniority) {
			return nil, common.ErrorValidation
		}
		if *upd.Seniority == "" {
			profile.Seniority = nil
		} else {
			profile.Seniority = upd.Seniority
		}
	}
	if upd.Skills != nil {
		profile.Skills = normalizeSkills(*upd.Skills)
	}
	if upd.Experiencia != nil {
		profile.Experiencia = *upd.Experiencia
	}
	if upd.Educacion != nil {
		profile.Educacion = *upd.Educacion
	}

	return repo.Upsert(ctx, profile)
}

// AddSkill appends a normalized skill, keeping the list free of duplicates.
func (s *ProfileService) AddSkill(ctx context.Context, email, skill string) (*models.Profile, error) {
	skill = common.NormalizeSkill(skill)
	if skill == "" {
		return nil, common.ErrorValidation
	}

	repo := s.repomanager.Profiles(s.db)
	profile, err := repo.Get(ctx, email)
	if err != nil {
		return nil, err
	}

	for _, existing := range profile.Skills {
		if existing == skill {
			return profile, nil
		}
	}
	profile.Skills = append(profile.Skills, skill)

	return repo.Upsert(ctx, profile)
}

func (s *ProfileService) RemoveSkill(ctx context.Context, email, skill string) (*models.Profile, error) {
	skill = common.NormalizeSkill(skill)

	repo := s.repomanager.Profiles(s.db)
	profile, err := repo.Get(ctx, email)
	if err != nil {
		return nil, err
	}

	kept := profile.Skills[:0]
	for _, existing := range profile.Skills {
		if existing != skill {
			kept = append(kept, existing)
		}
	}
	profile.Skills = kept

	return repo.Upsert(ctx, profile)
}

// SetCVKey records the storage key of an uploaded CV.
func (s *ProfileService) SetCVKey(ctx context.Context, email, key string) (*models.Profile, error) {
	repo := s.repomanager.Profiles(s.db)

	profile, err := repo.Get(ctx, email)
	if err != nil {
		return nil, err
	}
	profile.CVKey = key

	return repo.Upsert(ctx, profile)
}

func normalizeSkills(skills []string) []string {
	var result []string
	seen := make(map[string]bool)
	for _, skill := range skills {
		normalized := common.NormalizeSkill(skill)
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true
		result = append(result, normalized)
	}
	return result
}
