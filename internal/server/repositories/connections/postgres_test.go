package connections

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/talentumplus/talentum/internal/common"
	"github.com/talentumplus/talentum/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "fecha_solicitud"}).AddRow("req-1", time.Now())
	mock.ExpectQuery(`INSERT\s+INTO\s+solicitudes_conexion`).
		WithArgs("ana@test.com", "bob@test.com", "hola", models.RequestPending).
		WillReturnRows(rows)

	req := &models.ConnectionRequest{
		RemitenteEmail:    "ana@test.com",
		DestinatarioEmail: "bob@test.com",
		Mensaje:           "hola",
		Estado:            models.RequestPending,
	}
	got, err := repo.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != "req-1" {
		t.Fatalf("unexpected request: %+v", got)
	}
}

func TestFindBetween_EitherDirection(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "remitente_email", "destinatario_email", "mensaje", "estado", "fecha_solicitud"}).
		AddRow("req-1", "bob@test.com", "ana@test.com", "", models.RequestPending, time.Now())
	mock.ExpectQuery(`SELECT\s+id,\s*remitente_email`).
		WithArgs("ana@test.com", "bob@test.com", "pendiente,aceptada").
		WillReturnRows(rows)

	got, err := repo.FindBetween(context.Background(), "ana@test.com", "bob@test.com",
		models.RequestPending, models.RequestAccepted)
	if err != nil {
		t.Fatalf("FindBetween error: %v", err)
	}
	if got.RemitenteEmail != "bob@test.com" {
		t.Fatalf("unexpected request: %+v", got)
	}
}

func TestFindBetween_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+id,\s*remitente_email`).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindBetween(context.Background(), "ana@test.com", "bob@test.com", models.RequestPending)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestUpdateEstado_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE\s+solicitudes_conexion`).
		WithArgs("missing", models.RequestAccepted).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateEstado(context.Background(), "missing", models.RequestAccepted)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestListContacts_ResolvesCounterpart(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"email", "nombre", "rol", "fecha_solicitud"}).
		AddRow("bob@test.com", "Bob", models.RoleEmpresa, time.Now())
	mock.ExpectQuery(`SELECT\s+u\.email`).
		WithArgs("ana@test.com").
		WillReturnRows(rows)

	got, err := repo.ListContacts(context.Background(), "ana@test.com")
	if err != nil {
		t.Fatalf("ListContacts error: %v", err)
	}
	if len(got) != 1 || got[0].Email != "bob@test.com" {
		t.Fatalf("unexpected contacts: %+v", got)
	}
}
