package repository

import (
	"context"
	"strings"
	"time"

	"cloud.google.com/go/firestore"

	"ubjewellers/internal/domain/entity"
	"ubjewellers/internal/domain/repository"
	"ubjewellers/pkg/errors"
)

type firestoreProductRepository struct {
	client *firestore.Client
}

func NewFirestoreProductRepository(client *firestore.Client) repository.ProductRepository {
	return &firestoreProductRepository{
		client: client,
	}
}

func (r *firestoreProductRepository) col() *firestore.CollectionRef {
	return r.client.Collection(productsCollection)
}

func (r *firestoreProductRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		product.ID = r.col().NewDoc().ID
	}

	now := time.Now()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now
	if product.Reviews == nil {
		product.Reviews = []entity.Review{}
	}

	if _, err := r.col().Doc(product.ID).Set(ctx, product); err != nil {
		return errors.Internal("Failed to create product", err)
	}
	return nil
}

func (r *firestoreProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return getDoc[entity.Product](ctx, r.col().Doc(id), "Product")
}

// List narrows by seller on the server; text and price filters run in memory
// because Firestore has no substring match.
func (r *firestoreProductRepository) List(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	query := r.col().Query
	if filter.SellerEmail != "" {
		query = query.Where("sellerEmail", "==", filter.SellerEmail)
	}

	all, err := decodeAll[entity.Product](query.Documents(ctx), "products")
	if err != nil {
		return nil, err
	}

	products := make([]*entity.Product, 0, len(all))
	for _, p := range all {
		if filter.Matches(p) {
			products = append(products, p)
		}
	}
	entity.SortProducts(products, filter.Sort)

	return products, nil
}

func (r *firestoreProductRepository) Update(ctx context.Context, product *entity.Product) error {
	product.UpdatedAt = time.Now()

	_, err := r.col().Doc(product.ID).Set(ctx, product)
	if err != nil {
		return errors.Internal("Failed to update product", err)
	}
	return nil
}

func (r *firestoreProductRepository) Delete(ctx context.Context, id string) error {
	_, err := r.col().Doc(id).Delete(ctx, firestore.Exists)
	if err != nil {
		if isNotFound(err) {
			return errors.NotFound("Product", err)
		}
		return errors.Internal("Failed to delete product", err)
	}
	return nil
}

func (r *firestoreProductRepository) AdjustStock(ctx context.Context, adjustments []entity.StockAdjustment) ([]string, error) {
	refs := make([]*firestore.DocumentRef, 0, len(adjustments))
	for _, a := range adjustments {
		refs = append(refs, r.col().Doc(a.ProductID))
	}

	var skipped []string
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		// the callback may be retried
		skipped = nil

		docs, err := tx.GetAll(refs)
		if err != nil {
			return err
		}

		present := make([]bool, len(docs))
		for i, doc := range docs {
			present[i] = doc.Exists()
			if present[i] {
				continue
			}
			if adjustments[i].Quantity > 0 {
				return errors.NotFound("Product "+adjustments[i].ProductID, nil)
			}
			skipped = append(skipped, adjustments[i].ProductID)
		}

		now := time.Now()
		for i, a := range adjustments {
			if !present[i] {
				continue
			}
			if err := tx.Update(refs[i], []firestore.Update{
				{Path: "sold", Value: firestore.Increment(a.Quantity)},
				{Path: "stock", Value: firestore.Increment(-a.Quantity)},
				{Path: "updatedAt", Value: now},
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, passAppError(err, "Failed to adjust product stock")
	}
	return skipped, nil
}

func (r *firestoreProductRepository) RenameCategory(ctx context.Context, oldName, newName string) (int64, error) {
	docs, err := r.col().Select("category").Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to query products", err)
	}

	bw := r.client.BulkWriter(ctx)
	var jobs []*firestore.BulkWriterJob
	now := time.Now()
	for _, doc := range docs {
		label, _ := doc.Data()["category"].(string)
		if !strings.EqualFold(label, oldName) {
			continue
		}
		job, err := bw.Update(doc.Ref, []firestore.Update{
			{Path: "category", Value: newName},
			{Path: "updatedAt", Value: now},
		})
		if err != nil {
			bw.End()
			return 0, errors.Internal("Failed to queue category rename", err)
		}
		jobs = append(jobs, job)
	}
	bw.End()

	var renamed int64
	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			return renamed, errors.Internal("Failed to rename product category", err)
		}
		renamed++
	}
	return renamed, nil
}

func (r *firestoreProductRepository) AddReview(ctx context.Context, productID string, review entity.Review) error {
	_, err := r.col().Doc(productID).Update(ctx, []firestore.Update{
		{Path: "reviews", Value: firestore.ArrayUnion(review)},
	})
	if err != nil {
		if isNotFound(err) {
			return errors.NotFound("Product", err)
		}
		return errors.Internal("Failed to add product review", err)
	}
	return nil
}

func (r *firestoreProductRepository) SetReviewLikes(ctx context.Context, productID string, review entity.Review) error {
	ref := r.col().Doc(productID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			if isNotFound(err) {
				return errors.NotFound("Product", err)
			}
			return err
		}

		var product entity.Product
		if err := doc.DataTo(&product); err != nil {
			return err
		}
		i, ok := product.ReviewByID(review.ID)
		if !ok {
			return nil
		}
		product.Reviews[i].LikeCount = review.LikeCount
		product.Reviews[i].LikedBy = review.LikedBy

		return tx.Update(ref, []firestore.Update{{Path: "reviews", Value: product.Reviews}})
	})
	if err != nil {
		return passAppError(err, "Failed to sync review likes")
	}
	return nil
}
