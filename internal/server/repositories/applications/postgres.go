package applications

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

func (r *PostgresRepository) Create(ctx context.Context, application *models.Application) (*models.Application, error) {

	query :=
		`INSERT INTO aplicaciones (candidato_email, oferta_id, estado)
		 VALUES ($1, $2, $3)
		 RETURNING id, fecha_aplicacion
		 `

	err := r.db.QueryRowContext(ctx, query,
		application.CandidatoEmail, application.OfertaID, application.Estado).
		Scan(&application.ID, &application.FechaAplicacion)

	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorAlreadyApplied
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return application, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Application, error) {
	query :=
		`SELECT id, candidato_email, oferta_id, estado, fecha_aplicacion
		 FROM aplicaciones
		 WHERE id = $1
		 `

	a := &models.Application{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&a.ID, &a.CandidatoEmail, &a.OfertaID, &a.Estado, &a.FechaAplicacion)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return a, nil
}

func (r *PostgresRepository) UpdateEstado(ctx context.Context, id string, estado string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE aplicaciones SET estado = $2 WHERE id = $1`, id, estado)
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

// ListByCandidate returns the candidate's applications with the offer joined in.
func (r *PostgresRepository) ListByCandidate(ctx context.Context, candidatoEmail string) ([]*models.Application, error) {
	query :=
		`SELECT a.id, a.candidato_email, a.oferta_id, a.estado, a.fecha_aplicacion,
		        o.id, o.titulo, o.empresa_email, o.descripcion, o.requisitos, o.skills_requeridos,
		        o.salario, o.ubicacion, o.modalidad, o.tipo_contrato, o.estado, o.fecha_publicacion
		 FROM aplicaciones a
		 JOIN ofertas o ON o.id = a.oferta_id
		 WHERE a.candidato_email = $1
		 ORDER BY a.fecha_aplicacion DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, candidatoEmail)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Application
	for rows.Next() {
		a := &models.Application{Oferta: &models.Offer{}}
		var skills dbx.StringList
		if err := rows.Scan(
			&a.ID, &a.CandidatoEmail, &a.OfertaID, &a.Estado, &a.FechaAplicacion,
			&a.Oferta.ID, &a.Oferta.Titulo, &a.Oferta.EmpresaEmail, &a.Oferta.Descripcion,
			&a.Oferta.Requisitos, &skills, &a.Oferta.Salario, &a.Oferta.Ubicacion,
			&a.Oferta.Modalidad, &a.Oferta.TipoContrato, &a.Oferta.Estado,
			&a.Oferta.FechaPublicacion); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		a.Oferta.SkillsRequeridos = skills
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) ListByOffer(ctx context.Context, ofertaID string) ([]*models.Application, error) {
	query :=
		`SELECT id, candidato_email, oferta_id, estado, fecha_aplicacion
		 FROM aplicaciones
		 WHERE oferta_id = $1
		 ORDER BY fecha_aplicacion DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, ofertaID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Application
	for rows.Next() {
		a := &models.Application{}
		if err := rows.Scan(&a.ID, &a.CandidatoEmail, &a.OfertaID, &a.Estado, &a.FechaAplicacion); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
