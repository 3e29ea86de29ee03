package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/fitrack/internal/error_values"
	"github.com/limbo/fitrack/internal/repository"
	"github.com/limbo/fitrack/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewUsersRepoWithConn(conn)
	user := entity.User{
		Name:         "test_user",
		PasswordHash: "test_password_hash",
	}
	query := regexp.QuoteMeta(`INSERT INTO users (name, password_hash) VALUES ($1, $2);`)
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc: "successfully created",
			MockPrepFunc: func() {
				conn.ExpectExec(query).WithArgs(user.Name, user.PasswordHash).WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			Desc:  "unique violation",
			Error: errorvalues.ErrUserExists,
			MockPrepFunc: func() {
				conn.ExpectExec(query).WithArgs(user.Name, user.PasswordHash).WillReturnError(&pgconn.PgError{Code: "23505"})
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("creating user db error: db error"),
			MockPrepFunc: func() {
				conn.ExpectExec(query).WithArgs(user.Name, user.PasswordHash).WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			err := repo.Create(ctx, &user)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestFindUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewUsersRepoWithConn(conn)
	user := entity.User{
		ID:           uuid.New(),
		Name:         "test_user",
		PasswordHash: "test_password_hash",
	}
	byName := regexp.QuoteMeta(`SELECT id, name, password_hash FROM users WHERE name = $1;`)
	byID := regexp.QuoteMeta(`SELECT id, name, password_hash FROM users WHERE id = $1;`)
	columns := []string{"id", "name", "password_hash"}
	ctx := context.Background()

	t.Run("found by name", func(t *testing.T) {
		conn.ExpectQuery(byName).WithArgs(user.Name).
			WillReturnRows(pgxmock.NewRows(columns).AddRow(user.ID, user.Name, user.PasswordHash))
		result, err := repo.FindByName(ctx, user.Name)
		require.NoError(t, err)
		assert.Equal(t, user, *result)
	})
	t.Run("found by id", func(t *testing.T) {
		conn.ExpectQuery(byID).WithArgs(user.ID).
			WillReturnRows(pgxmock.NewRows(columns).AddRow(user.ID, user.Name, user.PasswordHash))
		result, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, user, *result)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(byID).WithArgs(user.ID).WillReturnError(pgx.ErrNoRows)
		_, err := repo.FindByID(ctx, user.ID)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(byName).WithArgs(user.Name).WillReturnError(errors.New("db error"))
		_, err := repo.FindByName(ctx, user.Name)
		assert.EqualError(t, err, "searching user by name error: db error")
	})
}

func TestUpdateAndDeleteUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewUsersRepoWithConn(conn)
	user := entity.User{
		ID:           uuid.New(),
		Name:         "test_user",
		PasswordHash: "test_password_hash",
	}
	update := regexp.QuoteMeta(`UPDATE users SET name = $1, password_hash = $2 WHERE id = $3;`)
	del := regexp.QuoteMeta(`DELETE FROM users WHERE id = $1;`)
	ctx := context.Background()

	conn.ExpectExec(update).WithArgs(user.Name, user.PasswordHash, user.ID).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	assert.NoError(t, repo.Update(ctx, &user))

	conn.ExpectExec(update).WithArgs(user.Name, user.PasswordHash, user.ID).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	assert.ErrorIs(t, repo.Update(ctx, &user), errorvalues.ErrUserNotFound)

	conn.ExpectExec(del).WithArgs(user.ID).WillReturnResult(pgxmock.NewResult("DELETE", 1))
	assert.NoError(t, repo.Delete(ctx, user.ID))

	conn.ExpectExec(del).WithArgs(user.ID).WillReturnResult(pgxmock.NewResult("DELETE", 0))
	assert.ErrorIs(t, repo.Delete(ctx, user.ID), errorvalues.ErrUserNotFound)

	conn.ExpectExec(del).WithArgs(user.ID).WillReturnError(errors.New("db error"))
	assert.Error(t, repo.Delete(ctx, user.ID))
	assert.NoError(t, conn.ExpectationsWereMet())
}
