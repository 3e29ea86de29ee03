package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/fitrack/internal/error_values"
	"github.com/limbo/fitrack/pkg/entity"
)

type UsersRepository struct {
	conn PgConnection
}

func NewUsersRepoWithConn(conn PgConnection) *UsersRepository {
	mustPing(conn, "usersRepo")
	return &UsersRepository{
		conn: conn,
	}
}

func (ur *UsersRepository) Create(ctx context.Context, user *entity.User) error {
	if user == nil {
		return errors.New("user is nil")
	}
	_, err := ur.conn.Exec(ctx, `INSERT INTO users (name, password_hash) VALUES ($1, $2);`, user.Name, user.PasswordHash)
	if err != nil {
		var pgErr *pgconn.PgError
		// Unique violation
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return errorvalues.ErrUserExists
		}
		return errors.New("creating user db error: " + err.Error())
	}
	return nil
}

func (ur *UsersRepository) findOne(ctx context.Context, where string, arg any) (*entity.User, error) {
	var user entity.User
	row := ur.conn.QueryRow(ctx, `SELECT id, name, password_hash FROM users WHERE `+where+` = $1;`, arg)
	if err := row.Scan(&user.ID, &user.Name, &user.PasswordHash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by " + where + " error: " + err.Error())
	}
	return &user, nil
}

func (ur *UsersRepository) FindByName(ctx context.Context, name string) (*entity.User, error) {
	return ur.findOne(ctx, "name", name)
}

func (ur *UsersRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	return ur.findOne(ctx, "id", uid)
}

func (ur *UsersRepository) Update(ctx context.Context, user *entity.User) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET name = $1, password_hash = $2 WHERE id = $3;`,
		user.Name,
		user.PasswordHash,
		user.ID,
	)
	if err != nil {
		return errors.New("updating user error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (ur *UsersRepository) Delete(ctx context.Context, uid uuid.UUID) error {
	ct, err := ur.conn.Exec(ctx, `DELETE FROM users WHERE id = $1;`, uid)
	if err != nil {
		return errors.New("deleting user error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}
