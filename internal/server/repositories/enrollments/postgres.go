package enrollments

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

func (r *PostgresRepository) Create(ctx context.Context, enrollment *models.Enrollment) (*models.Enrollment, error) {

	query :=
		`INSERT INTO inscripciones (candidato_email, curso_codigo)
		 VALUES ($1, $2)
		 RETURNING id, fecha_inscripcion
		 `

	err := r.db.QueryRowContext(ctx, query,
		enrollment.CandidatoEmail, enrollment.CursoCodigo).
		Scan(&enrollment.ID, &enrollment.FechaInscripcion)

	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorAlreadyEnrolled
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return enrollment, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Enrollment, error) {
	query :=
		`SELECT id, candidato_email, curso_codigo, fecha_inscripcion, progreso,
		        calificacion, completado, nota_examen, aprobado, fecha_examen
		 FROM inscripciones
		 WHERE id = $1
		 `

	e := &models.Enrollment{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&e.ID, &e.CandidatoEmail, &e.CursoCodigo, &e.FechaInscripcion, &e.Progreso,
		&e.Calificacion, &e.Completado, &e.NotaExamen, &e.Aprobado, &e.FechaExamen)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return e, nil
}

func (r *PostgresRepository) Update(ctx context.Context, enrollment *models.Enrollment) error {
	query :=
		`UPDATE inscripciones
		 SET progreso = $2, calificacion = $3, completado = $4, nota_examen = $5,
		     aprobado = $6, fecha_examen = $7
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query,
		enrollment.ID, enrollment.Progreso, enrollment.Calificacion,
		enrollment.Completado, enrollment.NotaExamen, enrollment.Aprobado,
		enrollment.FechaExamen)
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

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM inscripciones WHERE id = $1`, id)
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

// ListByCandidate returns the candidate's enrollments with course data joined in.
func (r *PostgresRepository) ListByCandidate(ctx context.Context, candidatoEmail string) ([]*models.Enrollment, error) {
	query :=
		`SELECT i.id, i.candidato_email, i.curso_codigo, i.fecha_inscripcion, i.progreso,
		        i.calificacion, i.completado, i.nota_examen, i.aprobado, i.fecha_examen,
		        c.codigo, c.nombre, c.descripcion, c.duracion_horas, c.categoria, c.nivel,
		        c.recursos, c.instructor, c.skills
		 FROM inscripciones i
		 JOIN cursos c ON c.codigo = i.curso_codigo
		 WHERE i.candidato_email = $1
		 ORDER BY i.fecha_inscripcion DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, candidatoEmail)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Enrollment
	for rows.Next() {
		e := &models.Enrollment{Curso: &models.Course{}}
		var recursos, skills dbx.StringList
		if err := rows.Scan(
			&e.ID, &e.CandidatoEmail, &e.CursoCodigo, &e.FechaInscripcion, &e.Progreso,
			&e.Calificacion, &e.Completado, &e.NotaExamen, &e.Aprobado, &e.FechaExamen,
			&e.Curso.Codigo, &e.Curso.Nombre, &e.Curso.Descripcion, &e.Curso.DuracionHoras,
			&e.Curso.Categoria, &e.Curso.Nivel, &recursos, &e.Curso.Instructor, &skills); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		e.Curso.Recursos = recursos
		e.Curso.Skills = skills
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
