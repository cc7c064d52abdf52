package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"ubjewellers/internal/domain/entity"
	"ubjewellers/internal/domain/repository"
	"ubjewellers/pkg/errors"
)

type firestoreUserRepository struct {
	client *firestore.Client
}

func NewFirestoreUserRepository(client *firestore.Client) repository.UserRepository {
	return &firestoreUserRepository{
		client: client,
	}
}

func (r *firestoreUserRepository) col() *firestore.CollectionRef {
	return r.client.Collection(usersCollection)
}

func (r *firestoreUserRepository) Upsert(ctx context.Context, user *entity.User) (*entity.User, error) {
	ref := r.col().Doc(user.Email)
	var saved entity.User

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		now := time.Now()
		doc, err := tx.Get(ref)
		if err != nil && !isNotFound(err) {
			return err
		}

		if doc == nil || !doc.Exists() {
			saved = *user
			saved.CreatedAt = now
			saved.UpdatedAt = now
			return tx.Create(ref, &saved)
		}

		if err := doc.DataTo(&saved); err != nil {
			return err
		}
		saved.Name = user.Name
		saved.PhotoURL = user.PhotoURL
		saved.UpdatedAt = now
		return tx.Update(ref, []firestore.Update{
			{Path: "name", Value: user.Name},
			{Path: "photoURL", Value: user.PhotoURL},
			{Path: "updatedAt", Value: now},
		})
	})
	if err != nil {
		return nil, errors.Internal("Failed to save user", err)
	}
	return &saved, nil
}

func (r *firestoreUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return getDoc[entity.User](ctx, r.col().Doc(email), "User")
}

func (r *firestoreUserRepository) List(ctx context.Context) ([]*entity.User, error) {
	return decodeAll[entity.User](r.col().OrderBy("createdAt", firestore.Desc).Documents(ctx), "users")
}

func (r *firestoreUserRepository) update(ctx context.Context, email string, updates []firestore.Update) error {
	updates = append(updates, firestore.Update{Path: "updatedAt", Value: time.Now()})
	_, err := r.col().Doc(email).Update(ctx, updates)
	if err != nil {
		if isNotFound(err) {
			return errors.NotFound("User", err)
		}
		return errors.Internal("Failed to update user", err)
	}
	return nil
}

func (r *firestoreUserRepository) SetShippingAddress(ctx context.Context, email string, address *entity.Address) error {
	if address == nil {
		return r.update(ctx, email, []firestore.Update{{Path: "shippingAddress", Value: firestore.Delete}})
	}
	return r.update(ctx, email, []firestore.Update{{Path: "shippingAddress", Value: address}})
}

func (r *firestoreUserRepository) UpdateRoles(ctx context.Context, email string, roles entity.RoleUpdate) error {
	var updates []firestore.Update
	if roles.IsAdmin != nil {
		updates = append(updates, firestore.Update{Path: "isAdmin", Value: *roles.IsAdmin})
	}
	if roles.IsSeller != nil {
		updates = append(updates, firestore.Update{Path: "isSeller", Value: *roles.IsSeller})
	}
	return r.update(ctx, email, updates)
}

func (r *firestoreUserRepository) Delete(ctx context.Context, email string) error {
	_, err := r.col().Doc(email).Delete(ctx, firestore.Exists)
	if err != nil {
		if isNotFound(err) {
			return errors.NotFound("User", err)
		}
		return errors.Internal("Failed to delete user", err)
	}
	return nil
}

func (r *firestoreUserRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	q := r.col().Where("createdAt", ">=", from).Where("createdAt", "<", to)
	result, err := q.NewAggregationQuery().WithCount("count").Get(ctx)
	if err != nil {
		return 0, errors.Internal("Failed to count users", err)
	}
	return int64(aggregateNumber(result, "count")), nil
}
