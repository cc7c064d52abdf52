package repository

import (
	"context"

	"ubjewellers/internal/domain/entity"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	GetByID(ctx context.Context, id string) (*entity.Review, error)
	List(ctx context.Context) ([]*entity.Review, error)
	ListByProduct(ctx context.Context, productID string) ([]*entity.Review, error)

	// Like records one like per email. A repeated like is a conflict.
	Like(ctx context.Context, id, email string) (*entity.Review, error)
	DeleteByProduct(ctx context.Context, productID string) (int64, error)
}
