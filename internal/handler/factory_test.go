package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/soukly/api/internal/model"
	"github.com/soukly/api/internal/repository"
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

func newCategoryRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock := newMockDB(t)
	resource := NewResource(repository.NewRepository[model.Category](db), ResourceOptions[model.Category]{
		Kind: "Category",
		Columns: map[string]string{
			"name":       "name",
			"created_at": "created_at",
		},
	})

	r := gin.New()
	r.GET("/categories", resource.List)
	r.GET("/categories/:id", resource.GetOne)
	r.POST("/categories", resource.Create)
	r.DELETE("/categories/:id", resource.Delete)
	return r, mock
}

func doRequest(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestResourceListEnvelope(t *testing.T) {
	r, mock := newCategoryRouter(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "categories"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`SELECT .* FROM "categories"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug"}).
			AddRow(1, "Electronics", "electronics").
			AddRow(2, "Clothing", "clothing"))

	w := doRequest(r, http.MethodGet, "/categories?limit=20", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var envelope struct {
		Pagination struct {
			CurrentPage   int `json:"currentPage"`
			NumberOfPages int `json:"numberOfPages"`
		} `json:"pagination"`
		Count int               `json:"count"`
		Data  []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("bad envelope: %v", err)
	}
	if envelope.Count != 2 || len(envelope.Data) != 2 {
		t.Errorf("expected count/data of 2, got %d/%d", envelope.Count, len(envelope.Data))
	}
	if envelope.Pagination.CurrentPage != 1 || envelope.Pagination.NumberOfPages != 1 {
		t.Errorf("unexpected pagination: %+v", envelope.Pagination)
	}
}

func TestResourceGetOneNotFound(t *testing.T) {
	r, mock := newCategoryRouter(t)

	mock.ExpectQuery(`SELECT .* FROM "categories"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	w := doRequest(r, http.MethodGet, "/categories/99", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if body["status"] != "fail" {
		t.Errorf("expected status fail, got %v", body["status"])
	}
}

func TestResourceCreateValidation(t *testing.T) {
	r, _ := newCategoryRouter(t)

	w := doRequest(r, http.MethodPost, "/categories", `{"name":"ab"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var body struct {
		Errors []string `json:"errors"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if len(body.Errors) == 0 {
		t.Errorf("expected field-level messages, got %s", w.Body.String())
	}
}

func TestResourceCreate(t *testing.T) {
	r, mock := newCategoryRouter(t)

	mock.ExpectQuery(`INSERT INTO "categories"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	w := doRequest(r, http.MethodPost, "/categories", `{"name":"Electronics"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Data model.Category `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if body.Data.ID != 5 {
		t.Errorf("expected generated id in envelope, got %+v", body.Data)
	}
}

func TestResourceDelete(t *testing.T) {
	r, mock := newCategoryRouter(t)

	mock.ExpectQuery(`SELECT .* FROM "categories"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(5, "Electronics"))
	mock.ExpectExec(`UPDATE "categories" SET "deleted_at"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	w := doRequest(r, http.MethodDelete, "/categories/5", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", w.Code, w.Body.String())
	}
}
