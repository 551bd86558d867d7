package connections

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

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

func (r *PostgresRepository) Create(ctx context.Context, request *models.ConnectionRequest) (*models.ConnectionRequest, error) {

	query :=
		`INSERT INTO solicitudes_conexion (remitente_email, destinatario_email, mensaje, estado)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, fecha_solicitud
		 `

	err := r.db.QueryRowContext(ctx, query,
		request.RemitenteEmail, request.DestinatarioEmail, request.Mensaje, request.Estado).
		Scan(&request.ID, &request.FechaSolicitud)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return request, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.ConnectionRequest, error) {
	query :=
		`SELECT id, remitente_email, destinatario_email, mensaje, estado, fecha_solicitud
		 FROM solicitudes_conexion
		 WHERE id = $1
		 `

	req := &models.ConnectionRequest{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&req.ID, &req.RemitenteEmail, &req.DestinatarioEmail,
		&req.Mensaje, &req.Estado, &req.FechaSolicitud)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return req, nil
}

func (r *PostgresRepository) UpdateEstado(ctx context.Context, id string, estado string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE solicitudes_conexion SET estado = $2 WHERE id = $1`, id, estado)
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

func (r *PostgresRepository) FindBetween(ctx context.Context, emailA string, emailB string, estados ...string) (*models.ConnectionRequest, error) {
	query :=
		`SELECT id, remitente_email, destinatario_email, mensaje, estado, fecha_solicitud
		 FROM solicitudes_conexion
		 WHERE ((remitente_email = $1 AND destinatario_email = $2)
		     OR (remitente_email = $2 AND destinatario_email = $1))
		   AND estado = ANY(string_to_array($3, ','))
		 LIMIT 1
		 `

	req := &models.ConnectionRequest{}
	err := r.db.QueryRowContext(ctx, query, emailA, emailB, strings.Join(estados, ",")).Scan(
		&req.ID, &req.RemitenteEmail, &req.DestinatarioEmail,
		&req.Mensaje, &req.Estado, &req.FechaSolicitud)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return req, nil
}

// ListReceived returns requests addressed to email, enriched with the
// sender's name and role.
func (r *PostgresRepository) ListReceived(ctx context.Context, email string, estado string) ([]*models.ConnectionRequest, error) {
	query :=
		`SELECT s.id, s.remitente_email, s.destinatario_email, s.mensaje, s.estado, s.fecha_solicitud,
		        u.nombre, u.rol
		 FROM solicitudes_conexion s
		 JOIN usuarios u ON u.email = s.remitente_email
		 WHERE s.destinatario_email = $1
		   AND ($2 = '' OR s.estado = $2)
		 ORDER BY s.fecha_solicitud DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, email, estado)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.ConnectionRequest
	for rows.Next() {
		req := &models.ConnectionRequest{}
		if err := rows.Scan(&req.ID, &req.RemitenteEmail, &req.DestinatarioEmail,
			&req.Mensaje, &req.Estado, &req.FechaSolicitud,
			&req.RemitenteNombre, &req.RemitenteRol); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) ListSent(ctx context.Context, email string, estado string) ([]*models.ConnectionRequest, error) {
	query :=
		`SELECT s.id, s.remitente_email, s.destinatario_email, s.mensaje, s.estado, s.fecha_solicitud,
		        u.nombre, u.rol
		 FROM solicitudes_conexion s
		 JOIN usuarios u ON u.email = s.destinatario_email
		 WHERE s.remitente_email = $1
		   AND ($2 = '' OR s.estado = $2)
		 ORDER BY s.fecha_solicitud DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, email, estado)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.ConnectionRequest
	for rows.Next() {
		req := &models.ConnectionRequest{}
		if err := rows.Scan(&req.ID, &req.RemitenteEmail, &req.DestinatarioEmail,
			&req.Mensaje, &req.Estado, &req.FechaSolicitud,
			&req.DestinatarioNombre, &req.DestinatarioRol); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

// ListContacts resolves the accepted requests touching email into the
// counterpart users.
func (r *PostgresRepository) ListContacts(ctx context.Context, email string) ([]*models.Contact, error) {
	query :=
		`SELECT u.email, u.nombre, u.rol, s.fecha_solicitud
		 FROM solicitudes_conexion s
		 JOIN usuarios u ON u.email = CASE
		     WHEN s.remitente_email = $1 THEN s.destinatario_email
		     ELSE s.remitente_email
		 END
		 WHERE (s.remitente_email = $1 OR s.destinatario_email = $1)
		   AND s.estado = 'aceptada'
		 ORDER BY s.fecha_solicitud DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Contact
	for rows.Next() {
		c := &models.Contact{}
		if err := rows.Scan(&c.Email, &c.Nombre, &c.Rol, &c.FechaConexion); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
