package repository

import (
	"context"

	"gorm.io/gorm"
)

// Records is the single data-access implementation behind all five record
// types. Each entity gets its own instance, parameterized by model and list
// order; the CRUD surface is identical for all of them.
type Records[T any] struct {
	db    *gorm.DB
	order string
}

// NewRecords creates a record repository. order is a SQL order expression,
// e.g. "created_at DESC" or "nama_lengkap ASC".
func NewRecords[T any](db *gorm.DB, order string) *Records[T] {
	return &Records[T]{db: db, order: order}
}

// List returns the full collection in the repository's configured order.
func (r *Records[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	err := r.db.WithContext(ctx).
		Order(r.order).
		Find(&out).Error
	return out, translateError(err)
}

func (r *Records[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	var rec T
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&rec).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &rec, nil
}

func (r *Records[T]) Create(ctx context.Context, rec *T) error {
	return translateError(r.db.WithContext(ctx).Create(rec).Error)
}

// UpdateFields updates only the given columns of one record. The id is used
// as the match key and is never part of the column set, so callers control
// exactly which fields a submit may rewrite.
func (r *Records[T]) UpdateFields(ctx context.Context, id int64, fields map[string]any) error {
	res := r.db.WithContext(ctx).
		Model(new(T)).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Records[T]) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(new(T))
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
