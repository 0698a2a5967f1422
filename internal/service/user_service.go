package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	apperrors "staffdesk/internal/errors"
	"staffdesk/internal/model"
	"staffdesk/internal/repository"
)

// UserService handles profile reads and single-field updates.
type UserService interface {
	Profile(ctx context.Context, id uint) (*model.User, error)
	UpdateName(ctx context.Context, id uint, name string) (*model.User, error)
	UpdateSurname(ctx context.Context, id uint, surname string) (*model.User, error)
	UpdateEmail(ctx context.Context, id uint, email string) (*model.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Profile(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

func (s *userService) UpdateName(ctx context.Context, id uint, name string) (*model.User, error) {
	return s.update(ctx, id, func(u *model.User) { u.Name = name })
}

func (s *userService) UpdateSurname(ctx context.Context, id uint, surname string) (*model.User, error) {
	return s.update(ctx, id, func(u *model.User) { u.Surname = surname })
}

func (s *userService) UpdateEmail(ctx context.Context, id uint, email string) (*model.User, error) {
	return s.update(ctx, id, func(u *model.User) { u.Email = email })
}

func (s *userService) update(ctx context.Context, id uint, apply func(*model.User)) (*model.User, error) {
	user, err := s.Profile(ctx, id)
	if err != nil {
		return nil, err
	}
	apply(user)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}
