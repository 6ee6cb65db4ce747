package repository

import (
	"context"

	"github.com/consint/callbackd/internal/callback/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

// Insert persists the record; the store assigns the next id.
func (r *repo) Insert(ctx context.Context, db *gorm.DB, record *domain.CallbackRecord) error {
	return db.WithContext(ctx).Create(record).Error
}

// List returns one page ordered by created_at descending plus the unfiltered
// total. The id tie-break keeps ordering stable when timestamps collide.
// Negative limit or offset values are clamped to zero.
func (r *repo) List(ctx context.Context, db *gorm.DB, limit, offset int) ([]domain.CallbackRecord, int64, error) {
	if limit < 0 {
		limit = 0
	}
	if offset < 0 {
		offset = 0
	}

	var total int64
	if err := db.WithContext(ctx).Model(&domain.CallbackRecord{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	records := make([]domain.CallbackRecord, 0)
	err := db.WithContext(ctx).
		Model(&domain.CallbackRecord{}).
		Order("created_at desc, id desc").
		Limit(limit).
		Offset(offset).
		Find(&records).Error
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

func (r *repo) ListByCustomer(ctx context.Context, db *gorm.DB, customerID string) ([]domain.CallbackRecord, error) {
	var records []domain.CallbackRecord
	err := db.WithContext(ctx).
		Model(&domain.CallbackRecord{}).
		Where("customer_id = ?", customerID).
		Order("created_at desc, id desc").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Delete removes the record if present and reports whether a row was removed.
func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) (bool, error) {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(&domain.CallbackRecord{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
