package users

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

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO usuarios (email, password_hash, nombre, rol)
         VALUES ($1, $2, $3, $4)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.Email, user.PasswordHash, user.Nombre, user.Rol).Scan(&user.CreatedAt)

	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorEmailTaken
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query :=
		`SELECT email, password_hash, nombre, rol, created_at FROM usuarios
		 WHERE email = $1
		 `

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.Email, &user.PasswordHash, &user.Nombre, &user.Rol, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

// Search finds users whose email or nombre contains the query,
// case-insensitively. The caller's own account is excluded, as is anyone the
// caller is already connected with or has a pending request with, in either
// direction.
func (r *PostgresRepository) Search(ctx context.Context, query string, excludeEmail string, limit int) ([]*models.User, error) {
	q :=
		`SELECT email, nombre, rol, created_at FROM usuarios u
		 WHERE (u.email ILIKE '%' || $1 || '%' OR u.nombre ILIKE '%' || $1 || '%')
		   AND u.email <> $2
		   AND NOT EXISTS (
		       SELECT 1 FROM solicitudes_conexion s
		       WHERE s.estado = ANY(string_to_array($4, ','))
		         AND ((s.remitente_email = $2 AND s.destinatario_email = u.email)
		           OR (s.remitente_email = u.email AND s.destinatario_email = $2))
		   )
		 ORDER BY nombre
		 LIMIT $3
		 `

	estados := strings.Join([]string{models.RequestPending, models.RequestAccepted}, ",")
	rows, err := r.db.QueryContext(ctx, q, query, excludeEmail, limit, estados)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.User
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(&user.Email, &user.Nombre, &user.Rol, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
