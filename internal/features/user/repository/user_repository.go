package repository

import (
	"context"

	"gorm.io/gorm"

	"userboard/internal/features/user/models"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// ListAll returns every user ordered by primary key. The slice is never nil,
// so an empty table serializes as the literal [].
func (r *userRepository) ListAll(ctx context.Context) ([]models.User, error) {
	users := make([]models.User, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
