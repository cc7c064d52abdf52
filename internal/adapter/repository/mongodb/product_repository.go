package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ubjewellers/internal/domain/entity"
	"ubjewellers/internal/domain/repository"
	"ubjewellers/pkg/errors"
)

type productRepository struct {
	db *mongo.Database
}

func NewProductRepository(db *mongo.Database) repository.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) col() *mongo.Collection {
	return r.db.Collection(productsCollection)
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		product.ID = newID()
	}
	now := time.Now()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now
	if product.Reviews == nil {
		product.Reviews = []entity.Review{}
	}

	if _, err := r.col().InsertOne(ctx, product); err != nil {
		return errors.Internal("Failed to create product", err)
	}
	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return findOne[entity.Product](ctx, r.col(), byID(id), "Product")
}

func productQuery(f entity.ProductFilter) bson.D {
	filter := bson.D{}
	if f.SearchText != "" {
		filter = append(filter, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "name", Value: contains(f.SearchText)}},
			bson.D{{Key: "category", Value: contains(f.SearchText)}},
		}})
	}
	if f.Category != "" {
		filter = append(filter, bson.E{Key: "category", Value: contains(f.Category)})
	}
	if f.SellerEmail != "" {
		filter = append(filter, bson.E{Key: "sellerEmail", Value: f.SellerEmail})
	}

	price := bson.D{}
	if f.MinPrice != nil {
		price = append(price, bson.E{Key: "$gte", Value: *f.MinPrice})
	}
	if f.MaxPrice != nil {
		price = append(price, bson.E{Key: "$lte", Value: *f.MaxPrice})
	}
	if len(price) > 0 {
		filter = append(filter, bson.E{Key: "price", Value: price})
	}
	return filter
}

func productSort(key string) bson.D {
	switch key {
	case entity.SortPriceAsc:
		return bson.D{{Key: "price", Value: 1}}
	case entity.SortPriceDesc:
		return bson.D{{Key: "price", Value: -1}}
	case entity.SortNewest:
		return bson.D{{Key: "createdAt", Value: -1}}
	case entity.SortBestSelling:
		return bson.D{{Key: "sold", Value: -1}}
	}
	return nil
}

func (r *productRepository) List(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	opts := options.Find()
	if sort := productSort(filter.Sort); sort != nil {
		opts.SetSort(sort)
	}
	return findAll[entity.Product](ctx, r.col(), productQuery(filter), "products", opts)
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	product.UpdatedAt = time.Now()

	res, err := r.col().ReplaceOne(ctx, byID(product.ID), product)
	if err != nil {
		return errors.Internal("Failed to update product", err)
	}
	if res.MatchedCount == 0 {
		return errors.NotFound("Product", nil)
	}
	return nil
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	return deleteOne(ctx, r.col(), byID(id), "Product")
}

func (r *productRepository) AdjustStock(ctx context.Context, adjustments []entity.StockAdjustment) ([]string, error) {
	now := time.Now()
	var skipped []string
	err := withTransaction(ctx, r.db.Client(), func(sc mongo.SessionContext) error {
		// the callback may be retried
		skipped = nil
		for _, a := range adjustments {
			res, err := r.col().UpdateOne(sc, byID(a.ProductID), bson.D{
				{Key: "$inc", Value: bson.D{{Key: "sold", Value: a.Quantity}, {Key: "stock", Value: -a.Quantity}}},
				{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: now}}},
			})
			if err != nil {
				return err
			}
			if res.MatchedCount == 0 {
				if a.Quantity > 0 {
					return errors.NotFound("Product "+a.ProductID, nil)
				}
				skipped = append(skipped, a.ProductID)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return skipped, nil
}

func (r *productRepository) RenameCategory(ctx context.Context, oldName, newName string) (int64, error) {
	res, err := r.col().UpdateMany(ctx,
		bson.D{{Key: "category", Value: equalFold(oldName)}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "category", Value: newName}, {Key: "updatedAt", Value: time.Now()}}}},
	)
	if err != nil {
		return 0, errors.Internal("Failed to rename product category", err)
	}
	return res.ModifiedCount, nil
}

func (r *productRepository) AddReview(ctx context.Context, productID string, review entity.Review) error {
	return updateOne(ctx, r.col(), byID(productID),
		bson.D{{Key: "$push", Value: bson.D{{Key: "reviews", Value: review}}}},
		"Product")
}

func (r *productRepository) SetReviewLikes(ctx context.Context, productID string, review entity.Review) error {
	return updateOne(ctx, r.col(),
		bson.D{{Key: "_id", Value: productID}, {Key: "reviews._id", Value: review.ID}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "reviews.$.likeCount", Value: review.LikeCount},
			{Key: "reviews.$.likedBy", Value: review.LikedBy},
		}}},
		"Product review")
}
