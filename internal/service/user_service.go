package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/fitrack/internal/error_values"
	"github.com/limbo/fitrack/internal/repository"
	"github.com/limbo/fitrack/pkg/entity"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	repo repository.UsersRepositoryI
}

func NewUserService(usersRepo repository.UsersRepositoryI) *UserService {
	return &UserService{
		repo: usersRepo,
	}
}

func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (us *UserService) Register(ctx context.Context, req *RegisterRequest) (*entity.User, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	passwordHash, err := Hash(req.Password)
	if err != nil {
		return nil, errors.New("hashing password error: " + err.Error())
	}
	err = us.repo.Create(ctx, &entity.User{
		Name:         req.Name,
		PasswordHash: passwordHash,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			return nil, err
		}
		return nil, errors.New("repository creating error: " + err.Error())
	}
	user, err := us.repo.FindByName(ctx, req.Name)
	if err != nil {
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) Login(ctx context.Context, name, password string) (*entity.User, error) {
	user, err := us.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errorvalues.ErrWrongCredentials
	}
	return user, nil
}

func (us *UserService) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := us.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) GetByName(ctx context.Context, name string) (*entity.User, error) {
	user, err := us.repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) DeleteAccount(ctx context.Context, id uuid.UUID, password string) error {
	user, err := us.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return errorvalues.ErrWrongCredentials
	}
	err = us.repo.Delete(ctx, user.ID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return errors.New("repository deletion error: " + err.Error())
	}
	return nil
}
