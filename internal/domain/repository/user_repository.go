package repository

import (
	"context"
	"time"

	"ubjewellers/internal/domain/entity"
)

type UserRepository interface {
	// Upsert writes profile fields and sets createdAt only when the user is new.
	Upsert(ctx context.Context, user *entity.User) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	// SetShippingAddress replaces the address; nil removes it.
	SetShippingAddress(ctx context.Context, email string, address *entity.Address) error
	UpdateRoles(ctx context.Context, email string, roles entity.RoleUpdate) error
	Delete(ctx context.Context, email string) error
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
}
