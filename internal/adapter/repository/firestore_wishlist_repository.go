package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"ubjewellers/internal/domain/entity"
	"ubjewellers/internal/domain/repository"
	"ubjewellers/pkg/errors"
)

type firestoreWishlistRepository struct {
	client *firestore.Client
}

func NewFirestoreWishlistRepository(client *firestore.Client) repository.WishlistRepository {
	return &firestoreWishlistRepository{client: client}
}

func (r *firestoreWishlistRepository) col() *firestore.CollectionRef {
	return r.client.Collection(wishlistsCollection)
}

// One document per (email, product) pair keeps adds idempotent.
func wishlistID(email, productID string) string {
	return fmt.Sprintf("%s_%s", email, productID)
}

func (r *firestoreWishlistRepository) Add(ctx context.Context, email, productID string) (*entity.WishlistItem, error) {
	item := entity.WishlistItem{
		ID:        wishlistID(email, productID),
		Email:     email,
		ProductID: productID,
		AddedAt:   time.Now(),
	}

	_, err := r.col().Doc(item.ID).Create(ctx, item)
	if status.Code(err) == codes.AlreadyExists {
		return getDoc[entity.WishlistItem](ctx, r.col().Doc(item.ID), "Wishlist item")
	}
	if err != nil {
		return nil, errors.Internal("Failed to add to wishlist", err)
	}
	return &item, nil
}

func (r *firestoreWishlistRepository) ListByEmail(ctx context.Context, email string) ([]*entity.WishlistItem, error) {
	return decodeAll[entity.WishlistItem](r.col().Where("email", "==", email).Documents(ctx), "wishlist items")
}

func (r *firestoreWishlistRepository) Remove(ctx context.Context, email, productID string) error {
	_, err := r.col().Doc(wishlistID(email, productID)).Delete(ctx, firestore.Exists)
	if err != nil {
		if isNotFound(err) {
			return errors.NotFound("Wishlist item", err)
		}
		return errors.Internal("Failed to remove from wishlist", err)
	}
	return nil
}

func (r *firestoreWishlistRepository) DeleteByProduct(ctx context.Context, productID string) (int64, error) {
	return deleteWhere(ctx, r.client, r.col().Where("productId", "==", productID), "wishlist items")
}
