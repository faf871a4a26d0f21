package repository

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	apperrors "github.com/soukly/api/internal/errors"
	"github.com/soukly/api/internal/model"
	"github.com/soukly/api/pkg/query"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}
	return db, mock
}

var categoryColumns = map[string]string{
	"name":       "name",
	"slug":       "slug",
	"created_at": "created_at",
}

func TestListPaginationAgreesWithCount(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository[model.Category](db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "categories"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))
	mock.ExpectQuery(`SELECT .* FROM "categories"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug"}).
			AddRow(1, "Electronics", "electronics").
			AddRow(2, "Clothing", "clothing"))

	params := query.Parse(url.Values{})
	items, pagination, err := repo.List(context.Background(), params, ListQuery{Columns: categoryColumns})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(items) != 2 {
		t.Errorf("expected 2 items, got %d", len(items))
	}
	if pagination.CurrentPage != 1 || pagination.Limit != 20 {
		t.Errorf("unexpected pagination: %+v", pagination)
	}
	if pagination.NumberOfPages != 3 {
		t.Errorf("expected 3 pages for 42 rows at limit 20, got %d", pagination.NumberOfPages)
	}
	if pagination.Next == nil || *pagination.Next != 2 {
		t.Errorf("expected next page 2, got %v", pagination.Next)
	}
	if pagination.Prev != nil {
		t.Errorf("expected no prev on first page, got %v", *pagination.Prev)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository[model.Category](db)

	mock.ExpectQuery(`SELECT .* FROM "categories"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	_, err := repo.GetByID(context.Background(), 99)
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestUpdateMissingRecord(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository[model.Category](db)

	mock.ExpectExec(`UPDATE "categories" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.Update(context.Background(), 99, &model.Category{Name: "Renamed"})
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestDeleteIsNotIdempotent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository[model.Category](db)

	// soft delete: the second attempt matches zero rows
	mock.ExpectExec(`UPDATE "categories" SET "deleted_at"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "categories" SET "deleted_at"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), 7); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}
	err := repo.Delete(context.Background(), 7)
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("expected not-found on repeated delete, got %v", err)
	}
}
