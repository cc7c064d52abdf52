package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"ubjewellers/internal/domain/entity"
	"ubjewellers/internal/domain/repository"
	"ubjewellers/pkg/errors"
)

type firestoreCartRepository struct {
	client *firestore.Client
}

func NewFirestoreCartRepository(client *firestore.Client) repository.CartRepository {
	return &firestoreCartRepository{client: client}
}

func (r *firestoreCartRepository) col() *firestore.CollectionRef {
	return r.client.Collection(cartsCollection)
}

// Add merges into the owner's existing line inside a transaction so two
// concurrent adds of the same product do not create two lines.
func (r *firestoreCartRepository) Add(ctx context.Context, item *entity.CartItem) (*entity.CartItem, error) {
	query := r.col().Where("email", "==", item.Email).Where("productId", "==", item.ProductID).Limit(1)
	var saved entity.CartItem

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		iter := tx.Documents(query)
		defer iter.Stop()

		doc, err := iter.Next()
		if err == iterator.Done {
			ref := r.col().NewDoc()
			saved = *item
			saved.ID = ref.ID
			return tx.Create(ref, &saved)
		}
		if err != nil {
			return err
		}

		if err := doc.DataTo(&saved); err != nil {
			return err
		}
		saved.Quantity += item.Quantity
		return tx.Update(doc.Ref, []firestore.Update{
			{Path: "quantity", Value: firestore.Increment(item.Quantity)},
		})
	})
	if err != nil {
		return nil, errors.Internal("Failed to add cart item", err)
	}
	return &saved, nil
}

func (r *firestoreCartRepository) GetByID(ctx context.Context, id string) (*entity.CartItem, error) {
	return getDoc[entity.CartItem](ctx, r.col().Doc(id), "Cart item")
}

func (r *firestoreCartRepository) ListByEmail(ctx context.Context, email string) ([]*entity.CartItem, error) {
	return decodeAll[entity.CartItem](r.col().Where("email", "==", email).Documents(ctx), "cart items")
}

func (r *firestoreCartRepository) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	_, err := r.col().Doc(id).Update(ctx, []firestore.Update{{Path: "quantity", Value: quantity}})
	if err != nil {
		if isNotFound(err) {
			return errors.NotFound("Cart item", err)
		}
		return errors.Internal("Failed to update cart item", err)
	}
	return nil
}

func (r *firestoreCartRepository) Delete(ctx context.Context, id string) error {
	_, err := r.col().Doc(id).Delete(ctx, firestore.Exists)
	if err != nil {
		if isNotFound(err) {
			return errors.NotFound("Cart item", err)
		}
		return errors.Internal("Failed to delete cart item", err)
	}
	return nil
}

func (r *firestoreCartRepository) ClearByEmail(ctx context.Context, email string) (int64, error) {
	return deleteWhere(ctx, r.client, r.col().Where("email", "==", email), "cart items")
}

func (r *firestoreCartRepository) DeleteByProduct(ctx context.Context, productID string) (int64, error) {
	return deleteWhere(ctx, r.client, r.col().Where("productId", "==", productID), "cart items")
}
