package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/soukly/api/internal/constants"
	"github.com/soukly/api/internal/model"
	"github.com/soukly/api/internal/repository"
	"github.com/soukly/api/internal/service"
	"github.com/soukly/api/pkg/query"
)

// ResourceOptions configures one generated resource.
type ResourceOptions[T model.Entity] struct {
	// Kind names the resource for the listing cache and keyword search.
	Kind string
	// Columns is the filter/sort allow-list: query key -> column.
	Columns map[string]string
	// Search selects the keyword search target columns.
	Search query.Kind
	// Preloads are loaded on reads.
	Preloads []string
	// Preset narrows every list query from route context (nested routes).
	Preset func(*gin.Context) func(*gorm.DB) *gorm.DB
	// Defaults fills zero fields of a create payload from route context.
	Defaults func(*gin.Context, *T)
	// Prepare derives computed fields before create and update.
	Prepare func(*T)
	// BeforeCreate rejects a create before it reaches the store.
	BeforeCreate func(context.Context, *gin.Context, *T) error
	// AfterSave runs after create and update commits.
	AfterSave func(context.Context, *T)
	// AfterDelete runs after a delete commits, with the removed record.
	AfterDelete func(context.Context, *T)
	// Cache, when set, serves repeated listings from redis and is
	// invalidated by every write through this resource.
	Cache *service.CacheService
}

// Resource bundles the five standard handlers for one entity. Domain
// handlers compose it and add their bespoke endpoints next to it.
type Resource[T model.Entity] struct {
	repo *repository.Repository[T]
	opts ResourceOptions[T]
}

func NewResource[T model.Entity](repo *repository.Repository[T], opts ResourceOptions[T]) *Resource[T] {
	return &Resource[T]{repo: repo, opts: opts}
}

// List handles GET /resource with filtering, keyword search, projection,
// sorting and pagination, enveloped as { pagination, count, data }.
func (r *Resource[T]) List(c *gin.Context) {
	ctx := c.Request.Context()

	var cacheKey string
	if r.opts.Cache != nil {
		cacheKey = r.opts.Cache.ListingKey(r.opts.Kind, c.Request.URL.Path+"?"+c.Request.URL.RawQuery)
		if body := r.opts.Cache.GetListing(ctx, cacheKey); body != nil {
			c.Data(http.StatusOK, "application/json; charset=utf-8", body)
			return
		}
	}

	params := query.Parse(c.Request.URL.Query())

	listQuery := repository.ListQuery{
		Columns:  r.opts.Columns,
		Search:   r.opts.Search,
		Preloads: r.opts.Preloads,
	}
	if r.opts.Preset != nil {
		listQuery.Preset = r.opts.Preset(c)
	}

	items, pagination, err := r.repo.List(ctx, params, listQuery)
	if err != nil {
		respondError(c, err)
		return
	}

	envelope := constants.BuildListResponse(pagination, len(items), items)
	if r.opts.Cache != nil {
		if body, err := json.Marshal(envelope); err == nil {
			r.opts.Cache.SetListing(ctx, cacheKey, body)
		}
	}
	c.JSON(http.StatusOK, envelope)
}

// GetOne handles GET /resource/:id.
func (r *Resource[T]) GetOne(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	entity, err := r.repo.GetByID(c.Request.Context(), id, r.opts.Preloads...)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, constants.BuildDataResponse(entity))
}

// Create handles POST /resource with full payload validation.
func (r *Resource[T]) Create(c *gin.Context) {
	var entity T
	if !bindJSON(c, &entity) {
		return
	}
	if r.opts.Defaults != nil {
		r.opts.Defaults(c, &entity)
	}
	if r.opts.Prepare != nil {
		r.opts.Prepare(&entity)
	}

	ctx := c.Request.Context()
	if r.opts.BeforeCreate != nil {
		if err := r.opts.BeforeCreate(ctx, c, &entity); err != nil {
			respondError(c, err)
			return
		}
	}

	if err := r.repo.Create(ctx, &entity); err != nil {
		respondError(c, err)
		return
	}
	if r.opts.AfterSave != nil {
		r.opts.AfterSave(ctx, &entity)
	}
	r.invalidate(ctx)

	c.JSON(http.StatusCreated, constants.BuildDataResponse(entity))
}

// Update handles PUT /resource/:id. The payload is partial, so it skips
// the create-time binding rules; unknown and zero fields are left alone.
func (r *Resource[T]) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var changes T
	if err := json.NewDecoder(c.Request.Body).Decode(&changes); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildValidationResponse([]string{err.Error()}))
		return
	}
	if r.opts.Prepare != nil {
		r.opts.Prepare(&changes)
	}

	ctx := c.Request.Context()
	entity, err := r.repo.Update(ctx, id, &changes)
	if err != nil {
		respondError(c, err)
		return
	}
	if r.opts.AfterSave != nil {
		r.opts.AfterSave(ctx, entity)
	}
	r.invalidate(ctx)

	c.JSON(http.StatusOK, constants.BuildDataResponse(entity))
}

// Delete handles DELETE /resource/:id. A repeated delete is a 404, never
// a silent second success.
func (r *Resource[T]) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	entity, err := r.repo.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := r.repo.Delete(ctx, id); err != nil {
		respondError(c, err)
		return
	}
	if r.opts.AfterDelete != nil {
		r.opts.AfterDelete(ctx, entity)
	}
	r.invalidate(ctx)

	c.Status(http.StatusNoContent)
}

func (r *Resource[T]) invalidate(ctx context.Context) {
	if r.opts.Cache != nil {
		r.opts.Cache.InvalidateKind(ctx, r.opts.Kind)
	}
}
