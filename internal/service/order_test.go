package service

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/soukly/api/internal/model"
	"github.com/soukly/api/internal/repository"
	apilogger "github.com/soukly/api/pkg/logger"
	"github.com/soukly/api/pkg/payment"
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

func TestOrderTotal(t *testing.T) {
	discounted := 90.0

	tests := []struct {
		name     string
		cart     *model.Cart
		tax      float64
		shipping float64
		want     float64
	}{
		{
			"plain total",
			&model.Cart{TotalPrice: 100},
			0, 0,
			100,
		},
		{
			"discount wins over total",
			&model.Cart{TotalPrice: 100, TotalAfterDiscount: &discounted},
			0, 0,
			90,
		},
		{
			"tax and shipping added",
			&model.Cart{TotalPrice: 100, TotalAfterDiscount: &discounted},
			14.5, 5.25,
			109.75,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := orderTotal(tt.cart, tt.tax, tt.shipping); got != tt.want {
				t.Errorf("orderTotal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompleteCardOrderRedeliveredEvent(t *testing.T) {
	apilogger.SetLogger(zap.NewNop())
	db, mock := newMockDB(t)
	svc := NewOrderService(
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		repository.NewUserRepository(db),
		nil,
	)

	// the first delivery already placed the order and deleted the cart;
	// the lookup by payment reference must answer instead of the cart
	mock.ExpectQuery(`SELECT .* FROM "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "payment_ref", "payment_method", "is_paid"}).
			AddRow(9, 3, "pay_123", "card", true))

	order, err := svc.CompleteCardOrder(context.Background(), payment.CheckoutSession{
		Reference: "pay_123",
		ClientRef: "11",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.ID != 9 {
		t.Errorf("expected the already-placed order, got id %d", order.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
