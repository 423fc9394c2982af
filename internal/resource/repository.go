package resource

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("record not found")

	ErrDuplicateKey = errors.New("duplicate key")
)

// Repository stores records of type T identified by a key of type K.
// Implementations return ErrNotFound and ErrDuplicateKey, possibly wrapped.
type Repository[T any, K comparable] interface {
	FindAll(ctx context.Context) ([]*T, error)
	Count(ctx context.Context) (int64, error)
	FindByKey(ctx context.Context, key K) (*T, error)
	FindOne(ctx context.Context, field string, value any) (*T, error)
	Insert(ctx context.Context, record *T) error
	Replace(ctx context.Context, key K, record *T) error
	Delete(ctx context.Context, key K) error
}
