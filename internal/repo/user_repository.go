package repo

import (
	"context"

	"github.com/lucasvieira94/nola-god-level/internal/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetByUsername(ctx context.Context, username string) (models.User, error)
}
