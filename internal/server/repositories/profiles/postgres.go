package profiles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/talentumplus/talentum/internal/common"
	"github.com/talentumplus/talentum/internal/dbx"
	"github.com/talentumplus/talentum/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, email string) (*models.Profile, error) {
	query :=
		`SELECT p.email, u.nombre, p.seniority, p.skills, p.experiencia, p.educacion, p.cv_key, p.updated_at
		 FROM perfiles p
		 JOIN usuarios u ON u.email = p.email
		 WHERE p.email = $1
		 `

	profile := &models.Profile{}
	var skills dbx.StringList
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&profile.Email, &profile.Nombre, &profile.Seniority, &skills,
		&profile.Experiencia, &profile.Educacion, &profile.CVKey, &profile.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	profile.Skills = skills
	return profile, nil
}

// Upsert inserts the profile row or replaces its mutable fields if one
// already exists for the email.
func (r *PostgresRepository) Upsert(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	query :=
		`INSERT INTO perfiles (email, seniority, skills, experiencia, educacion, cv_key, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, now())
		 ON CONFLICT (email) DO UPDATE
		 SET seniority = EXCLUDED.seniority,
		     skills = EXCLUDED.skills,
		     experiencia = EXCLUDED.experiencia,
		     educacion = EXCLUDED.educacion,
		     cv_key = EXCLUDED.cv_key,
		     updated_at = now()
		 RETURNING updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		profile.Email, profile.Seniority, dbx.StringList(profile.Skills),
		profile.Experiencia, profile.Educacion, profile.CVKey).Scan(&profile.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return profile, nil
}

func (r *PostgresRepository) List(ctx context.Context, skill string, seniority string, limit int) ([]*models.Profile, error) {
	query :=
		`SELECT p.email, u.nombre, p.seniority, p.skills, p.experiencia, p.educacion, p.cv_key, p.updated_at
		 FROM perfiles p
		 JOIN usuarios u ON u.email = p.email
		 WHERE ($1 = '' OR p.skills @> to_jsonb(ARRAY[$1]))
		   AND ($2 = '' OR p.seniority = $2)
		 ORDER BY p.updated_at DESC
		 LIMIT $3
		 `

	rows, err := r.db.QueryContext(ctx, query, skill, seniority, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Profile
	for rows.Next() {
		profile := &models.Profile{}
		var skills dbx.StringList
		if err := rows.Scan(&profile.Email, &profile.Nombre, &profile.Seniority, &skills,
			&profile.Experiencia, &profile.Educacion, &profile.CVKey, &profile.UpdatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		profile.Skills = skills
		result = append(result, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
