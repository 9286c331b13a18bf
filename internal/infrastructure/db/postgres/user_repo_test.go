package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/cramdesk/auth-service/internal/domain"
)

func newMockRepo(t *testing.T) (*UserRepo, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
	})
	return NewUserRepo(db), mock
}

func userColumns() []string {
	return []string{"id", "email", "password_hash", "created_at"}
}

func requireRepoCode(t *testing.T, err error, code string) {
	t.Helper()
	var derr *domain.Error
	if !errors.As(err, &derr) {
		t.Fatalf("expected *domain.Error, got %T: %v", err, err)
	}
	if derr.Code != code {
		t.Fatalf("expected code %q, got %q", code, derr.Code)
	}
}

func TestUserRepo_GetByEmail(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()
		repo, mock := newMockRepo(t)

		created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		mock.ExpectQuery(`SELECT id, email, password_hash, created_at\s+FROM users\s+WHERE email = \$1`).
			WithArgs("a@test.com").
			WillReturnRows(sqlmock.NewRows(userColumns()).
				AddRow("u-1", "a@test.com", "hash", created))

		u, err := repo.GetByEmail(context.Background(), "a@test.com")
		if err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
		if u.ID != "u-1" || u.Email != "a@test.com" || !u.CreatedAt.Equal(created) {
			t.Fatalf("unexpected user: %+v", u)
		}
	})

	t.Run("email is normalized before the query", func(t *testing.T) {
		t.Parallel()
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`FROM users\s+WHERE email = \$1`).
			WithArgs("a@test.com").
			WillReturnRows(sqlmock.NewRows(userColumns()).
				AddRow("u-1", "a@test.com", "hash", time.Now()))

		if _, err := repo.GetByEmail(context.Background(), "  A@Test.COM "); err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
	})

	t.Run("no rows", func(t *testing.T) {
		t.Parallel()
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`FROM users\s+WHERE email = \$1`).
			WithArgs("missing@test.com").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByEmail(context.Background(), "missing@test.com")
		requireRepoCode(t, err, "user_not_found")
	})

	t.Run("empty email", func(t *testing.T) {
		t.Parallel()
		repo, _ := newMockRepo(t)

		_, err := repo.GetByEmail(context.Background(), "   ")
		requireRepoCode(t, err, "missing_field")
	})

	t.Run("connection failure", func(t *testing.T) {
		t.Parallel()
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`FROM users\s+WHERE email = \$1`).
			WithArgs("a@test.com").
			WillReturnError(errors.New("connection refused"))

		_, err := repo.GetByEmail(context.Background(), "a@test.com")
		requireRepoCode(t, err, "db_unavailable")
	})
}

func TestUserRepo_GetByID(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`FROM users\s+WHERE id = \$1`).
			WithArgs("u-1").
			WillReturnRows(sqlmock.NewRows(userColumns()).
				AddRow("u-1", "a@test.com", "hash", time.Now()))

		u, err := repo.GetByID(context.Background(), "u-1")
		if err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
		if u.Email != "a@test.com" {
			t.Fatalf("unexpected user: %+v", u)
		}
	})

	t.Run("no rows", func(t *testing.T) {
		t.Parallel()
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`FROM users\s+WHERE id = \$1`).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(context.Background(), "missing")
		requireRepoCode(t, err, "user_not_found")
	})

	t.Run("empty id", func(t *testing.T) {
		t.Parallel()
		repo, _ := newMockRepo(t)

		_, err := repo.GetByID(context.Background(), "")
		requireRepoCode(t, err, "missing_field")
	})
}

func TestUserRepo_Create(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		repo, mock := newMockRepo(t)

		created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		mock.ExpectQuery(`INSERT INTO users \(id, email, password_hash\)`).
			WithArgs("u-1", "a@test.com", "hash").
			WillReturnRows(sqlmock.NewRows(userColumns()).
				AddRow("u-1", "a@test.com", "hash", created))

		u, err := repo.Create(context.Background(), domain.User{
			ID:           "u-1",
			Email:        "A@Test.com",
			PasswordHash: "hash",
		})
		if err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
		if u.Email != "a@test.com" || !u.CreatedAt.Equal(created) {
			t.Fatalf("unexpected user: %+v", u)
		}
	})

	t.Run("unique violation becomes email_already_exists", func(t *testing.T) {
		t.Parallel()
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("u-2", "a@test.com", "hash").
			WillReturnError(&pgconn.PgError{
				Code:           "23505",
				ConstraintName: "users_email_key",
			})

		_, err := repo.Create(context.Background(), domain.User{
			ID:           "u-2",
			Email:        "a@test.com",
			PasswordHash: "hash",
		})
		requireRepoCode(t, err, "email_already_exists")
	})

	t.Run("other errors stay infrastructure", func(t *testing.T) {
		t.Parallel()
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("u-3", "a@test.com", "hash").
			WillReturnError(errors.New("connection reset"))

		_, err := repo.Create(context.Background(), domain.User{
			ID:           "u-3",
			Email:        "a@test.com",
			PasswordHash: "hash",
		})
		requireRepoCode(t, err, "db_unavailable")
	})

	t.Run("missing fields rejected before the query", func(t *testing.T) {
		t.Parallel()
		repo, _ := newMockRepo(t)

		_, err := repo.Create(context.Background(), domain.User{Email: "a@test.com", PasswordHash: "h"})
		requireRepoCode(t, err, "missing_field")

		_, err = repo.Create(context.Background(), domain.User{ID: "u-1", PasswordHash: "h"})
		requireRepoCode(t, err, "missing_field")

		_, err = repo.Create(context.Background(), domain.User{ID: "u-1", Email: "a@test.com"})
		requireRepoCode(t, err, "missing_field")
	})
}
