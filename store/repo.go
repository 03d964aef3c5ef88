package store

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"services-marketplace-server/database"
)

// Repo is the CRUD surface shared by every table. Errors are passed through
// database.Translate, so callers match on database.ErrNotFound and the
// constraint sentinels.
type Repo[T any] struct {
	db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{db: db}
}

// Create inserts v and fills in its primary key. Associations are never written.
func (r Repo[T]) Create(ctx context.Context, v *T) error {
	return database.Translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(v).Error)
}

func (r Repo[T]) Get(ctx context.Context, id uint) (*T, error) {
	var v T
	if err := r.db.WithContext(ctx).First(&v, id).Error; err != nil {
		return nil, database.Translate(err)
	}
	return &v, nil
}

// Update replaces every column of row id with the values in v. v's own
// primary key must be zero or equal to id.
func (r Repo[T]) Update(ctx context.Context, id uint, v *T) error {
	res := r.db.WithContext(ctx).
		Model(v).
		Where("id = ?", id).
		Select("*").
		Omit(clause.Associations).
		Updates(v)
	if res.Error != nil {
		return database.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return database.ErrNotFound
	}
	return nil
}

// Delete removes row id. Dependent rows go with it through ON DELETE CASCADE.
func (r Repo[T]) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return database.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return database.ErrNotFound
	}
	return nil
}

// FindBy returns every row whose column equals value, ordered by id.
func (r Repo[T]) FindBy(ctx context.Context, column string, value any) ([]T, error) {
	out := []T{}
	err := r.db.WithContext(ctx).
		Where(clause.Eq{Column: clause.Column{Name: column}, Value: value}).
		Order("id").
		Find(&out).Error
	if err != nil {
		return nil, database.Translate(err)
	}
	return out, nil
}

// FirstBy returns the lowest-id row whose column equals value.
func (r Repo[T]) FirstBy(ctx context.Context, column string, value any) (*T, error) {
	var v T
	err := r.db.WithContext(ctx).
		Where(clause.Eq{Column: clause.Column{Name: column}, Value: value}).
		Order("id").
		First(&v).Error
	if err != nil {
		return nil, database.Translate(err)
	}
	return &v, nil
}
