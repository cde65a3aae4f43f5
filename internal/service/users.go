package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/mmeshcher/smartfold-lms/internal/model"
	"github.com/mmeshcher/smartfold-lms/internal/repository"
)

// Register регистрирует нового клиента с ролью USER.
func (s *Service) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u, err := s.repo.CreateUser(ctx, name, email, string(hash), model.RoleUser)
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, repository.ErrEmailTaken
		}
		return nil, err
	}
	return u, nil
}

// Login проверяет email и пароль и возвращает профиль. Токен не выдаётся.
func (s *Service) Login(ctx context.Context, email, password string) (*model.User, error) {
	u, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// ListUsers возвращает все учётные записи.
func (s *Service) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.ListUsers(ctx)
}

// HasUsers сообщает, есть ли в системе хотя бы одна учётная запись.
func (s *Service) HasUsers(ctx context.Context) (bool, error) {
	n, err := s.repo.CountUsers(ctx)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// SetUserRole меняет роль пользователя. Сначала проверяется существование пользователя, затем значение роли.
func (s *Service) SetUserRole(ctx context.Context, id int64, value string) (*model.User, error) {
	if _, err := s.repo.GetUserByID(ctx, id); err != nil {
		return nil, err
	}

	role, ok := model.ParseRole(value)
	if !ok {
		return nil, ErrInvalidRole
	}

	return s.repo.UpdateUserRole(ctx, id, role)
}

// DeleteUser удаляет учётную запись.
func (s *Service) DeleteUser(ctx context.Context, id int64) error {
	return s.repo.DeleteUser(ctx, id)
}
