package contracts

import (
	"context"
	"emr-service/internal/app/models"
)

type UserRepository interface {
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindByIDAndRole(ctx context.Context, userID, role string) (*models.User, error)
	FindByRole(ctx context.Context, role string) ([]models.User, error)
}
