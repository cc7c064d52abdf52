package usecase

import (
	"context"
	"strings"

	"ubjewellers/internal/domain/entity"
	"ubjewellers/internal/domain/repository"
	"ubjewellers/pkg/errors"
)

type UserUseCase struct {
	userRepo repository.UserRepository
}

func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
	}
}

type UpsertUserInput struct {
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL"`
}

type UpdateRolesInput struct {
	IsAdmin  *bool `json:"isAdmin"`
	IsSeller *bool `json:"isSeller"`
}

// SaveProfile creates the caller's record on first sign-in and refreshes the
// profile fields afterwards.
func (uc *UserUseCase) SaveProfile(ctx context.Context, email string, input UpsertUserInput) (*entity.User, error) {
	return uc.userRepo.Upsert(ctx, &entity.User{
		Email:    email,
		Name:     strings.TrimSpace(input.Name),
		PhotoURL: input.PhotoURL,
	})
}

func (uc *UserUseCase) GetUser(ctx context.Context, email string) (*entity.User, error) {
	return uc.userRepo.GetByEmail(ctx, email)
}

func (uc *UserUseCase) ListUsers(ctx context.Context) ([]*entity.User, error) {
	return uc.userRepo.List(ctx)
}

func (uc *UserUseCase) SetShippingAddress(ctx context.Context, email string, address entity.Address) (*entity.User, error) {
	if err := uc.userRepo.SetShippingAddress(ctx, email, &address); err != nil {
		return nil, err
	}
	return uc.userRepo.GetByEmail(ctx, email)
}

func (uc *UserUseCase) RemoveShippingAddress(ctx context.Context, email string) error {
	return uc.userRepo.SetShippingAddress(ctx, email, nil)
}

func (uc *UserUseCase) UpdateRoles(ctx context.Context, actor Actor, email string, input UpdateRolesInput) (*entity.User, error) {
	if input.IsAdmin == nil && input.IsSeller == nil {
		return nil, errors.Validation("isAdmin or isSeller is required", nil)
	}
	if email == actor.Email && input.IsAdmin != nil && !*input.IsAdmin {
		return nil, errors.BadRequest("Admins cannot revoke their own admin role", nil)
	}

	if err := uc.userRepo.UpdateRoles(ctx, email, entity.RoleUpdate{IsAdmin: input.IsAdmin, IsSeller: input.IsSeller}); err != nil {
		return nil, err
	}
	return uc.userRepo.GetByEmail(ctx, email)
}

func (uc *UserUseCase) DeleteUser(ctx context.Context, actor Actor, email string) error {
	if email == actor.Email {
		return errors.BadRequest("Admins cannot delete their own account", nil)
	}
	return uc.userRepo.Delete(ctx, email)
}
