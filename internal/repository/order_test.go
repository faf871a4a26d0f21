package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	apperrors "github.com/soukly/api/internal/errors"
	"github.com/soukly/api/internal/model"
)

func testCart() *model.Cart {
	cart := &model.Cart{
		UserID:     3,
		TotalPrice: 59.98,
	}
	cart.ID = 11
	cart.Items = []model.CartItem{
		{CartID: 11, ProductID: 7, Quantity: 2, Price: 29.99},
	}
	return cart
}

func TestCreateFromCartCommits(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)
	cart := testCart()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(`INSERT INTO "order_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectExec(`UPDATE "products" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "cart_items" SET "deleted_at"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "carts" SET "deleted_at"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	order := &model.Order{
		UserID:     cart.UserID,
		Items:      []model.OrderItem{{ProductID: 7, Quantity: 2, Price: 29.99}},
		TotalPrice: 59.98,
	}
	if err := repo.CreateFromCart(context.Background(), order, cart); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.ID != 1 {
		t.Errorf("expected generated order id 1, got %d", order.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateFromCartRollsBackOnInsufficientStock(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)
	cart := testCart()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(`INSERT INTO "order_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	// stock guard matches zero rows, the whole order must roll back
	mock.ExpectExec(`UPDATE "products" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	order := &model.Order{
		UserID:     cart.UserID,
		Items:      []model.OrderItem{{ProductID: 7, Quantity: 2, Price: 29.99}},
		TotalPrice: 59.98,
	}
	err := repo.CreateFromCart(context.Background(), order, cart)
	if !errors.Is(err, apperrors.ErrOutOfStock) {
		t.Errorf("expected out-of-stock error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
