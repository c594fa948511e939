package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db: &DB{
			DB:                 db,
			builder:            sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
			errorClassificator: NewPostgresErrorClassifier(),
			logger:             l,
		},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func userRows(id int64, email, hash string, sessionID, resetToken any) *sqlmock.Rows {
	return sqlmock.
		NewRows([]string{"id", "email", "hashed_password", "session_id", "reset_token"}).
		AddRow(id, email, hash, sessionID, resetToken)
}

func TestAddUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("a@b.com", "bcrypt-hash").
		WillReturnRows(userRows(1, "a@b.com", "bcrypt-hash", nil, nil))

	created, err := repo.AddUser(ctx, "a@b.com", "bcrypt-hash")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("expected ID=1, got %d", created.ID)
	}
	if created.Email != "a@b.com" {
		t.Errorf("expected email a@b.com, got %s", created.Email)
	}
	if created.SessionID != nil || created.ResetToken != nil {
		t.Error("fresh user must have no session or reset token")
	}
}

func TestAddUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.AddUser(ctx, "a@b.com", "hash")
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestAddUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))

	_, err := repo.AddUser(ctx, "a@b.com", "hash")
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestFindUserBy_Email(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id, email, hashed_password, session_id, reset_token FROM users").
		WithArgs("a@b.com").
		WillReturnRows(userRows(7, "a@b.com", "hash", "session-token", nil))

	found, err := repo.FindUserBy(ctx, ByEmail("a@b.com"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ID != 7 {
		t.Errorf("expected ID=7, got %d", found.ID)
	}
	if found.SessionID == nil || *found.SessionID != "session-token" {
		t.Errorf("expected session token to be scanned, got %v", found.SessionID)
	}
	if found.ResetToken != nil {
		t.Errorf("expected nil reset token, got %v", *found.ResetToken)
	}
}

func TestFindUserBy_ConjunctiveCriteria(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	// both conditions must appear as AND-ed placeholders, in order
	mock.ExpectQuery(`WHERE email = \$1 AND session_id = \$2`).
		WithArgs("a@b.com", "tok").
		WillReturnRows(userRows(1, "a@b.com", "hash", "tok", nil))

	criteria := Criteria{
		{Field: FieldEmail, Value: "a@b.com"},
		{Field: FieldSessionID, Value: "tok"},
	}
	if _, err := repo.FindUserBy(ctx, criteria); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFindUserBy_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id, email, hashed_password, session_id, reset_token FROM users").
		WithArgs("missing@b.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserBy(ctx, ByEmail("missing@b.com"))
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFindUserBy_InvalidAttribute(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	// no SQL may be issued for an invalid field
	_, err := repo.FindUserBy(ctx, Criteria{{Field: "no_such_field", Value: 1}})
	if !errors.Is(err, ErrInvalidAttribute) {
		t.Fatalf("expected ErrInvalidAttribute, got %v", err)
	}
	if err = mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected SQL was executed: %v", err)
	}
}

func TestFindUserBy_EmptyCriteria(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	_, err := repo.FindUserBy(context.Background(), Criteria{})
	if !errors.Is(err, ErrInvalidAttribute) {
		t.Fatalf("expected ErrInvalidAttribute, got %v", err)
	}
	if err = mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected SQL was executed: %v", err)
	}
}

func TestUpdateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec(`UPDATE users SET session_id = \$1 WHERE id = \$2`).
		WithArgs("new-token", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateUser(ctx, 1, Update{{Field: FieldSessionID, Value: "new-token"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdateUser_AtomicPasswordAndTokenReset(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	// both assignments must land in one statement
	mock.ExpectExec(`UPDATE users SET hashed_password = \$1, reset_token = \$2 WHERE id = \$3`).
		WithArgs("new-hash", nil, int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	update := Update{
		{Field: FieldHashedPassword, Value: "new-hash"},
		{Field: FieldResetToken, Value: nil},
	}
	if err := repo.UpdateUser(ctx, 4, update); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdateUser_InvalidAttribute(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	err := repo.UpdateUser(context.Background(), 1, Update{{Field: "id", Value: int64(9)}})
	if !errors.Is(err, ErrInvalidAttribute) {
		t.Fatalf("expected ErrInvalidAttribute for immutable id, got %v", err)
	}
	if err = mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected SQL was executed: %v", err)
	}
}

func TestUpdateUser_NonexistentID(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec(`UPDATE users SET session_id = \$1 WHERE id = \$2`).
		WithArgs(nil, int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateUser(ctx, 404, Update{{Field: FieldSessionID, Value: nil}})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound for nonexistent id, got %v", err)
	}
}
