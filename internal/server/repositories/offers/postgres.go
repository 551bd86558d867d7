package offers

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

const offerColumns = `id, titulo, empresa_email, descripcion, requisitos, skills_requeridos,
		        salario, ubicacion, modalidad, tipo_contrato, estado, fecha_publicacion`

func (r *PostgresRepository) Create(ctx context.Context, offer *models.Offer) (*models.Offer, error) {

	query :=
		`INSERT INTO ofertas (titulo, empresa_email, descripcion, requisitos, skills_requeridos,
		                      salario, ubicacion, modalidad, tipo_contrato, estado)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id, fecha_publicacion
		 `

	err := r.db.QueryRowContext(ctx, query,
		offer.Titulo, offer.EmpresaEmail, offer.Descripcion, offer.Requisitos,
		dbx.StringList(offer.SkillsRequeridos), offer.Salario, offer.Ubicacion,
		offer.Modalidad, offer.TipoContrato, offer.Estado).
		Scan(&offer.ID, &offer.FechaPublicacion)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return offer, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM ofertas WHERE id = $1`

	offer := &models.Offer{}
	var skills dbx.StringList
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&offer.ID, &offer.Titulo, &offer.EmpresaEmail, &offer.Descripcion, &offer.Requisitos,
		&skills, &offer.Salario, &offer.Ubicacion, &offer.Modalidad, &offer.TipoContrato,
		&offer.Estado, &offer.FechaPublicacion)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	offer.SkillsRequeridos = skills
	return offer, nil
}

func (r *PostgresRepository) Update(ctx context.Context, offer *models.Offer) error {
	query :=
		`UPDATE ofertas
		 SET titulo = $2, descripcion = $3, requisitos = $4, skills_requeridos = $5,
		     salario = $6, ubicacion = $7, modalidad = $8, tipo_contrato = $9, estado = $10
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query,
		offer.ID, offer.Titulo, offer.Descripcion, offer.Requisitos,
		dbx.StringList(offer.SkillsRequeridos), offer.Salario, offer.Ubicacion,
		offer.Modalidad, offer.TipoContrato, offer.Estado)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) List(ctx context.Context, filter ListFilter) ([]*models.Offer, error) {
	query :=
		`SELECT ` + offerColumns + `
		 FROM ofertas
		 WHERE ($1 = '' OR estado = $1)
		   AND ($2 = '' OR empresa_email = $2)
		   AND ($3 = '' OR modalidad = $3)
		   AND ($4 = '' OR ubicacion = $4)
		   AND ($5 = '' OR skills_requeridos @> to_jsonb(ARRAY[$5]))
		 ORDER BY fecha_publicacion DESC
		 `

	rows, err := r.db.QueryContext(ctx, query,
		filter.Estado, filter.EmpresaEmail, filter.Modalidad, filter.Ubicacion, filter.Skill)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Offer
	for rows.Next() {
		offer := &models.Offer{}
		var skills dbx.StringList
		if err := rows.Scan(
			&offer.ID, &offer.Titulo, &offer.EmpresaEmail, &offer.Descripcion, &offer.Requisitos,
			&skills, &offer.Salario, &offer.Ubicacion, &offer.Modalidad, &offer.TipoContrato,
			&offer.Estado, &offer.FechaPublicacion); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		offer.SkillsRequeridos = skills
		result = append(result, offer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
