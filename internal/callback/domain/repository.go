package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, record *CallbackRecord) error
	List(ctx context.Context, db *gorm.DB, limit, offset int) ([]CallbackRecord, int64, error)
	ListByCustomer(ctx context.Context, db *gorm.DB, customerID string) ([]CallbackRecord, error)
	Delete(ctx context.Context, db *gorm.DB, id int64) (bool, error)
}
