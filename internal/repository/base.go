package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "github.com/soukly/api/internal/errors"
	"github.com/soukly/api/internal/model"
	"github.com/soukly/api/pkg/query"
)

// ListQuery configures a listing beyond the request's own query string:
// a preset scope for nested routes, the filter/sort column allow-list,
// the keyword search target and any associations to load.
type ListQuery struct {
	Preset   func(*gorm.DB) *gorm.DB
	Columns  map[string]string
	Search   query.Kind
	Preloads []string
}

// Repository is the generic persistence layer shared by every resource.
type Repository[T model.Entity] struct {
	db *gorm.DB
}

func NewRepository[T model.Entity](db *gorm.DB) *Repository[T] {
	return &Repository[T]{db: db}
}

// DB exposes the underlying handle for bespoke repositories built on top.
func (r *Repository[T]) DB() *gorm.DB {
	return r.db
}

// List counts the rows matching the preset scope plus the request's
// filters and keyword, then runs the paginate/filter/search/select/sort
// pipeline. The count and the page see the same predicate, so the
// pagination metadata always agrees with the data.
func (r *Repository[T]) List(ctx context.Context, params query.Params, q ListQuery) ([]T, query.Pagination, error) {
	scoped := func() *gorm.DB {
		tx := r.db.WithContext(ctx).Model(new(T))
		if q.Preset != nil {
			tx = q.Preset(tx)
		}
		return tx
	}

	counted := query.ApplyFilters(scoped(), params.Filters, q.Columns)
	counted = query.ApplySearch(counted, params.Keyword, q.Search)

	var total int64
	if err := counted.Count(&total).Error; err != nil {
		return nil, query.Pagination{}, err
	}

	builder := query.NewBuilder(scoped(), params, q.Columns).
		Paginate(total).
		Filter().
		Search(q.Search).
		SelectFields().
		Sort()

	tx := builder.DB()
	for _, preload := range q.Preloads {
		tx = tx.Preload(preload)
	}

	var items []T
	if err := tx.Find(&items).Error; err != nil {
		return nil, query.Pagination{}, err
	}
	return items, builder.Pagination, nil
}

// GetByID loads one record with its preloads, or a NotFound naming the id.
func (r *Repository[T]) GetByID(ctx context.Context, id uint, preloads ...string) (*T, error) {
	tx := r.db.WithContext(ctx)
	for _, preload := range preloads {
		tx = tx.Preload(preload)
	}

	var entity T
	if err := tx.First(&entity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("no record found for this id %d", id)
		}
		return nil, err
	}
	return &entity, nil
}

// Create inserts the record and leaves the generated id on it.
func (r *Repository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

// Update applies the non-zero fields of changes to the record, then
// reloads it so callers see database-computed state.
func (r *Repository[T]) Update(ctx context.Context, id uint, changes *T) (*T, error) {
	result := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(changes)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.NotFoundf("no record found for this id %d", id)
	}
	return r.GetByID(ctx, id)
}

// UpdateColumns applies an explicit column map, which unlike Update can
// set zero values (false, 0, empty string, NULL).
func (r *Repository[T]) UpdateColumns(ctx context.Context, id uint, columns map[string]any) (*T, error) {
	result := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(columns)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.NotFoundf("no record found for this id %d", id)
	}
	return r.GetByID(ctx, id)
}

// Delete removes the record; deleting an id that no longer exists is a
// NotFound, so a repeated delete reports 404 rather than succeeding twice.
func (r *Repository[T]) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(new(T), id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFoundf("no record found for this id %d", id)
	}
	return nil
}
