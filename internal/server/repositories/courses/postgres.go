package courses

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

func (r *PostgresRepository) Create(ctx context.Context, course *models.Course) (*models.Course, error) {

	query :=
		`INSERT INTO cursos (codigo, nombre, descripcion, duracion_horas, categoria, nivel, recursos, instructor, skills)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 `

	_, err := r.db.ExecContext(ctx, query,
		course.Codigo, course.Nombre, course.Descripcion, course.DuracionHoras,
		course.Categoria, course.Nivel, dbx.StringList(course.Recursos),
		course.Instructor, dbx.StringList(course.Skills))

	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return course, nil
}

func (r *PostgresRepository) GetByCode(ctx context.Context, codigo string) (*models.Course, error) {
	query :=
		`SELECT codigo, nombre, descripcion, duracion_horas, categoria, nivel, recursos, instructor, skills
		 FROM cursos
		 WHERE codigo = $1
		 `

	course := &models.Course{}
	var recursos, skills dbx.StringList
	err := r.db.QueryRowContext(ctx, query, codigo).Scan(
		&course.Codigo, &course.Nombre, &course.Descripcion, &course.DuracionHoras,
		&course.Categoria, &course.Nivel, &recursos, &course.Instructor, &skills)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	course.Recursos = recursos
	course.Skills = skills
	return course, nil
}

func (r *PostgresRepository) List(ctx context.Context, categoria string, nivel string) ([]*models.Course, error) {
	query :=
		`SELECT codigo, nombre, descripcion, duracion_horas, categoria, nivel, recursos, instructor, skills
		 FROM cursos
		 WHERE ($1 = '' OR categoria = $1)
		   AND ($2 = '' OR nivel = $2)
		 ORDER BY codigo
		 `

	rows, err := r.db.QueryContext(ctx, query, categoria, nivel)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Course
	for rows.Next() {
		course := &models.Course{}
		var recursos, skills dbx.StringList
		if err := rows.Scan(&course.Codigo, &course.Nombre, &course.Descripcion, &course.DuracionHoras,
			&course.Categoria, &course.Nivel, &recursos, &course.Instructor, &skills); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		course.Recursos = recursos
		course.Skills = skills
		result = append(result, course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
