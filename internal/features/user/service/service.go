package service

import (
	"context"

	"userboard/internal/features/user/models"
	"userboard/internal/features/user/repository"
)

type UserService interface {
	List(ctx context.Context) ([]models.User, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// List fetches the full user listing. Repository and driver errors propagate
// to the caller unchanged.
func (s *userService) List(ctx context.Context) ([]models.User, error) {
	return s.repo.ListAll(ctx)
}
