package repository

import (
	"context"

	"userboard/internal/features/user/models"
)

// UserRepository reads users from the backing store.
type UserRepository interface {
	// ListAll returns every user ordered by primary key, with no filtering
	// and no pagination.
	ListAll(ctx context.Context) ([]models.User, error)
}
