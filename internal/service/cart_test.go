package service

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/soukly/api/internal/model"
	"github.com/soukly/api/internal/repository"
)

func TestCartTotal(t *testing.T) {
	tests := []struct {
		name  string
		items []model.CartItem
		want  float64
	}{
		{
			"empty cart",
			nil,
			0,
		},
		{
			"single line",
			[]model.CartItem{{Quantity: 2, Price: 49.99}},
			99.98,
		},
		{
			"multiple lines",
			[]model.CartItem{
				{Quantity: 1, Price: 10.50},
				{Quantity: 3, Price: 5.25},
			},
			26.25,
		},
		{
			"binary float trap",
			[]model.CartItem{{Quantity: 3, Price: 0.1}},
			0.30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CartTotal(tt.items); got != tt.want {
				t.Errorf("CartTotal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDiscountedTotal(t *testing.T) {
	tests := []struct {
		name    string
		total   float64
		percent float64
		want    float64
	}{
		{"ten percent", 200, 10, 180},
		{"rounds to cents", 99.99, 15, 84.99},
		{"full discount", 50, 100, 0},
		{"zero discount", 75.50, 0, 75.50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DiscountedTotal(tt.total, tt.percent); got != tt.want {
				t.Errorf("DiscountedTotal(%v, %v) = %v, want %v", tt.total, tt.percent, got, tt.want)
			}
		})
	}
}

func TestAddProductMergesExistingLine(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewCartService(
		repository.NewCartRepository(db),
		repository.NewProductRepository(db),
		repository.NewRepository[model.Coupon](db),
	)

	productRow := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "title", "price", "quantity"}).
			AddRow(7, "Cotton Shirt", 10.50, 50)
	}
	cartRow := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "user_id", "total_price"}).
			AddRow(11, 3, 10.50)
	}
	itemRow := func(quantity int) *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "cart_id", "product_id", "color", "quantity", "price"}).
			AddRow(21, 11, 7, "red", quantity, 10.50)
	}

	// price lookup
	mock.ExpectQuery(`SELECT .* FROM "products"`).WillReturnRows(productRow())

	// cart load: the (product, color) pair is already a line
	mock.ExpectQuery(`SELECT .* FROM "carts"`).WillReturnRows(cartRow())
	mock.ExpectQuery(`SELECT .* FROM "cart_items"`).WillReturnRows(itemRow(1))
	mock.ExpectQuery(`SELECT .* FROM "products"`).WillReturnRows(productRow())

	// the existing line's quantity is bumped, no new line inserted
	mock.ExpectExec(`UPDATE "cart_items" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	// recalc reloads and rewrites the totals
	mock.ExpectQuery(`SELECT .* FROM "carts"`).WillReturnRows(cartRow())
	mock.ExpectQuery(`SELECT .* FROM "cart_items"`).WillReturnRows(itemRow(2))
	mock.ExpectQuery(`SELECT .* FROM "products"`).WillReturnRows(productRow())
	mock.ExpectExec(`UPDATE "carts" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	cart, err := svc.AddProduct(context.Background(), 3, 7, "red")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cart.Items) != 1 {
		t.Fatalf("expected a single merged line, got %d", len(cart.Items))
	}
	if cart.Items[0].Quantity != 2 {
		t.Errorf("expected quantity 2 after merge, got %d", cart.Items[0].Quantity)
	}
	if cart.TotalPrice != 21.00 {
		t.Errorf("expected recomputed total 21.00, got %v", cart.TotalPrice)
	}

	// an INSERT into cart_items would have tripped the ordered expectations
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
