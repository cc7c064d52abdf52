package repository

import (
	"context"
	stderrors "errors"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"ubjewellers/pkg/errors"
)

const (
	productsCollection   = "products"
	ordersCollection     = "orders"
	usersCollection      = "users"
	categoriesCollection = "categories"
	cartsCollection      = "carts"
	wishlistsCollection  = "wishlists"
	reviewsCollection    = "reviews"
)

// decodeAll drains a document iterator into typed records.
func decodeAll[T any](iter *firestore.DocumentIterator, what string) ([]*T, error) {
	defer iter.Stop()

	out := []*T{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate "+what, err)
		}
		var v T
		if err := doc.DataTo(&v); err != nil {
			return nil, errors.Internal("Failed to parse "+what+" data", err)
		}
		out = append(out, &v)
	}
	return out, nil
}

// getDoc loads one document, mapping a missing document to NotFound.
func getDoc[T any](ctx context.Context, ref *firestore.DocumentRef, what string) (*T, error) {
	doc, err := ref.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound(what, err)
		}
		return nil, errors.Internal("Failed to get "+what, err)
	}

	var v T
	if err := doc.DataTo(&v); err != nil {
		return nil, errors.Internal("Failed to parse "+what+" data", err)
	}
	return &v, nil
}

// deleteWhere removes every document matched by q through a BulkWriter.
func deleteWhere(ctx context.Context, client *firestore.Client, q firestore.Query, what string) (int64, error) {
	refs, err := q.Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to query "+what, err)
	}
	if len(refs) == 0 {
		return 0, nil
	}

	bw := client.BulkWriter(ctx)
	jobs := make([]*firestore.BulkWriterJob, 0, len(refs))
	for _, doc := range refs {
		job, err := bw.Delete(doc.Ref)
		if err != nil {
			bw.End()
			return 0, errors.Internal("Failed to queue "+what+" delete", err)
		}
		jobs = append(jobs, job)
	}
	bw.End()

	var deleted int64
	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			return deleted, errors.Internal("Failed to delete "+what, err)
		}
		deleted++
	}
	return deleted, nil
}

// passAppError keeps AppErrors raised inside a transaction callback and
// wraps anything else.
func passAppError(err error, message string) error {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}
	return errors.Internal(message, err)
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

// aggregateNumber reads a count or sum out of an aggregation result.
func aggregateNumber(result firestore.AggregationResult, alias string) float64 {
	switch v := result[alias].(type) {
	case *firestorepb.Value:
		switch n := v.GetValueType().(type) {
		case *firestorepb.Value_IntegerValue:
			return float64(n.IntegerValue)
		case *firestorepb.Value_DoubleValue:
			return n.DoubleValue
		}
	case int64:
		return float64(v)
	case float64:
		return v
	}
	return 0
}
