package processes

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

func (r *PostgresRepository) Create(ctx context.Context, process *models.Process) (*models.Process, error) {

	query :=
		`INSERT INTO procesos (candidato_email, puesto, estado, feedback, notas_confidenciales)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		process.CandidatoEmail, process.Puesto, process.Estado,
		process.Feedback, process.NotasConfidenciales).
		Scan(&process.ID, &process.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return process, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Process, error) {
	query :=
		`SELECT id, candidato_email, puesto, estado, feedback, notas_confidenciales, updated_at
		 FROM procesos
		 WHERE id = $1
		 `

	p := &models.Process{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.CandidatoEmail, &p.Puesto, &p.Estado,
		&p.Feedback, &p.NotasConfidenciales, &p.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return p, nil
}

func (r *PostgresRepository) Update(ctx context.Context, process *models.Process) error {
	query :=
		`UPDATE procesos
		 SET puesto = $2, estado = $3, feedback = $4, notas_confidenciales = $5, updated_at = now()
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query,
		process.ID, process.Puesto, process.Estado,
		process.Feedback, process.NotasConfidenciales)
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

func (r *PostgresRepository) ListAll(ctx context.Context) ([]*models.Process, error) {
	query :=
		`SELECT id, candidato_email, puesto, estado, feedback, notas_confidenciales, updated_at
		 FROM procesos
		 ORDER BY updated_at DESC
		 `
	return r.queryProcesses(ctx, query)
}

func (r *PostgresRepository) ListByCandidate(ctx context.Context, candidatoEmail string) ([]*models.Process, error) {
	query :=
		`SELECT id, candidato_email, puesto, estado, feedback, notas_confidenciales, updated_at
		 FROM procesos
		 WHERE candidato_email = $1
		 ORDER BY updated_at DESC
		 `
	return r.queryProcesses(ctx, query, candidatoEmail)
}

func (r *PostgresRepository) queryProcesses(ctx context.Context, query string, args ...any) ([]*models.Process, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Process
	for rows.Next() {
		p := &models.Process{}
		if err := rows.Scan(&p.ID, &p.CandidatoEmail, &p.Puesto, &p.Estado,
			&p.Feedback, &p.NotasConfidenciales, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) CreateInterview(ctx context.Context, interview *models.Interview) (*models.Interview, error) {

	query :=
		`INSERT INTO entrevistas (proceso_id, tipo, fecha, entrevistador, duracion_minutos, notas, puntaje, estado)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		interview.ProcesoID, interview.Tipo, interview.Fecha, interview.Entrevistador,
		interview.DuracionMinutos, interview.Notas, interview.Puntaje, interview.Estado).
		Scan(&interview.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return interview, nil
}

func (r *PostgresRepository) GetInterview(ctx context.Context, id string) (*models.Interview, error) {
	query :=
		`SELECT id, proceso_id, tipo, fecha, entrevistador, duracion_minutos, notas, puntaje, estado
		 FROM entrevistas
		 WHERE id = $1
		 `

	iv := &models.Interview{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&iv.ID, &iv.ProcesoID, &iv.Tipo, &iv.Fecha, &iv.Entrevistador,
		&iv.DuracionMinutos, &iv.Notas, &iv.Puntaje, &iv.Estado)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return iv, nil
}

func (r *PostgresRepository) UpdateInterview(ctx context.Context, interview *models.Interview) error {
	query :=
		`UPDATE entrevistas
		 SET tipo = $2, fecha = $3, entrevistador = $4, duracion_minutos = $5,
		     notas = $6, puntaje = $7, estado = $8
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query,
		interview.ID, interview.Tipo, interview.Fecha, interview.Entrevistador,
		interview.DuracionMinutos, interview.Notas, interview.Puntaje, interview.Estado)
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

func (r *PostgresRepository) ListInterviewsByProcess(ctx context.Context, procesoID string) ([]*models.Interview, error) {
	query :=
		`SELECT id, proceso_id, tipo, fecha, entrevistador, duracion_minutos, notas, puntaje, estado
		 FROM entrevistas
		 WHERE proceso_id = $1
		 ORDER BY fecha
		 `

	rows, err := r.db.QueryContext(ctx, query, procesoID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Interview
	for rows.Next() {
		iv := &models.Interview{}
		if err := rows.Scan(&iv.ID, &iv.ProcesoID, &iv.Tipo, &iv.Fecha, &iv.Entrevistador,
			&iv.DuracionMinutos, &iv.Notas, &iv.Puntaje, &iv.Estado); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

// ListInterviewsByCandidate joins through procesos so each interview carries
// the puesto it belongs to.
func (r *PostgresRepository) ListInterviewsByCandidate(ctx context.Context, candidatoEmail string) ([]*models.Interview, error) {
	query :=
		`SELECT e.id, e.proceso_id, e.tipo, e.fecha, e.entrevistador, e.duracion_minutos,
		        e.notas, e.puntaje, e.estado, p.puesto
		 FROM entrevistas e
		 JOIN procesos p ON p.id = e.proceso_id
		 WHERE p.candidato_email = $1
		 ORDER BY e.fecha
		 `

	rows, err := r.db.QueryContext(ctx, query, candidatoEmail)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Interview
	for rows.Next() {
		iv := &models.Interview{}
		if err := rows.Scan(&iv.ID, &iv.ProcesoID, &iv.Tipo, &iv.Fecha, &iv.Entrevistador,
			&iv.DuracionMinutos, &iv.Notas, &iv.Puntaje, &iv.Estado, &iv.Puesto); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) CreateEvaluation(ctx context.Context, evaluation *models.Evaluation) (*models.Evaluation, error) {

	query :=
		`INSERT INTO evaluaciones (proceso_id, tipo, plataforma, resultado, puntaje, feedback)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		evaluation.ProcesoID, evaluation.Tipo, evaluation.Plataforma,
		evaluation.Resultado, evaluation.Puntaje, evaluation.Feedback).
		Scan(&evaluation.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return evaluation, nil
}

func (r *PostgresRepository) GetEvaluation(ctx context.Context, id string) (*models.Evaluation, error) {
	query :=
		`SELECT id, proceso_id, tipo, plataforma, resultado, puntaje, feedback
		 FROM evaluaciones
		 WHERE id = $1
		 `

	ev := &models.Evaluation{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&ev.ID, &ev.ProcesoID, &ev.Tipo, &ev.Plataforma, &ev.Resultado, &ev.Puntaje, &ev.Feedback)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return ev, nil
}

func (r *PostgresRepository) UpdateEvaluation(ctx context.Context, evaluation *models.Evaluation) error {
	query :=
		`UPDATE evaluaciones
		 SET tipo = $2, plataforma = $3, resultado = $4, puntaje = $5, feedback = $6
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query,
		evaluation.ID, evaluation.Tipo, evaluation.Plataforma,
		evaluation.Resultado, evaluation.Puntaje, evaluation.Feedback)
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

func (r *PostgresRepository) ListEvaluationsByProcess(ctx context.Context, procesoID string) ([]*models.Evaluation, error) {
	query :=
		`SELECT id, proceso_id, tipo, plataforma, resultado, puntaje, feedback
		 FROM evaluaciones
		 WHERE proceso_id = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, procesoID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Evaluation
	for rows.Next() {
		ev := &models.Evaluation{}
		if err := rows.Scan(&ev.ID, &ev.ProcesoID, &ev.Tipo, &ev.Plataforma,
			&ev.Resultado, &ev.Puntaje, &ev.Feedback); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) ListEvaluationsByCandidate(ctx context.Context, candidatoEmail string) ([]*models.Evaluation, error) {
	query :=
		`SELECT e.id, e.proceso_id, e.tipo, e.plataforma, e.resultado, e.puntaje, e.feedback, p.puesto
		 FROM evaluaciones e
		 JOIN procesos p ON p.id = e.proceso_id
		 WHERE p.candidato_email = $1
		 ORDER BY e.id
		 `

	rows, err := r.db.QueryContext(ctx, query, candidatoEmail)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Evaluation
	for rows.Next() {
		ev := &models.Evaluation{}
		if err := rows.Scan(&ev.ID, &ev.ProcesoID, &ev.Tipo, &ev.Plataforma,
			&ev.Resultado, &ev.Puntaje, &ev.Feedback, &ev.Puesto); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
