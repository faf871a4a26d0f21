package query

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type widget struct {
	ID          uint
	Name        string
	Title       string
	Description string
	Price       float64
	CreatedAt   time.Time
}

var widgetColumns = map[string]string{
	"name":       "name",
	"title":      "title",
	"price":      "price",
	"created_at": "created_at",
}

func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	sqlDB, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		DryRun:                 true,
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}
	return db
}

func buildSQL(t *testing.T, b *Builder) string {
	t.Helper()
	var rows []widget
	stmt := b.DB().Find(&rows).Statement
	return stmt.SQL.String()
}

func TestBuilderFilter(t *testing.T) {
	db := newDryRunDB(t)
	params := Parse(url.Values{
		"name":       {"shirt"},
		"price[gte]": {"100"},
		"price[lt]":  {"500"},
		"quantity":   {"9"}, // not in the allow-list
	})

	sql := buildSQL(t, NewBuilder(db.Model(&widget{}), params, widgetColumns).Filter())

	if !strings.Contains(sql, "name = $") {
		t.Errorf("missing equality constraint in %q", sql)
	}
	if !strings.Contains(sql, "price >= $") {
		t.Errorf("missing gte constraint in %q", sql)
	}
	if !strings.Contains(sql, "price < $") {
		t.Errorf("missing lt constraint in %q", sql)
	}
	if strings.Contains(sql, "quantity") {
		t.Errorf("unlisted key leaked into SQL: %q", sql)
	}
}

func TestBuilderSearch(t *testing.T) {
	db := newDryRunDB(t)
	params := Parse(url.Values{ParamKeyword: {"cotton"}})

	sql := buildSQL(t, NewBuilder(db.Model(&widget{}), params, widgetColumns).Search(""))
	if !strings.Contains(sql, "name ILIKE $") {
		t.Errorf("expected name search, got %q", sql)
	}

	sql = buildSQL(t, NewBuilder(db.Model(&widget{}), params, widgetColumns).Search(KindProduct))
	if !strings.Contains(sql, "title ILIKE $") || !strings.Contains(sql, "description ILIKE $") {
		t.Errorf("expected title/description search, got %q", sql)
	}

	sql = buildSQL(t, NewBuilder(db.Model(&widget{}), Parse(url.Values{}), widgetColumns).Search(KindProduct))
	if strings.Contains(sql, "ILIKE") {
		t.Errorf("empty keyword must not add a constraint, got %q", sql)
	}
}

func TestBuilderSort(t *testing.T) {
	db := newDryRunDB(t)

	params := Parse(url.Values{ParamSort: {"-price,name,bogus"}})
	sql := buildSQL(t, NewBuilder(db.Model(&widget{}), params, widgetColumns).Sort())
	if !strings.Contains(sql, "ORDER BY price DESC, name ASC") {
		t.Errorf("unexpected order clause in %q", sql)
	}

	sql = buildSQL(t, NewBuilder(db.Model(&widget{}), Parse(url.Values{}), widgetColumns).Sort())
	if !strings.Contains(sql, "ORDER BY created_at DESC") {
		t.Errorf("expected newest-first default, got %q", sql)
	}
}

func TestBuilderSelectFields(t *testing.T) {
	db := newDryRunDB(t)
	params := Parse(url.Values{ParamFields: {"title,price,bogus"}})

	sql := buildSQL(t, NewBuilder(db.Model(&widget{}), params, widgetColumns).SelectFields())

	for _, col := range []string{"id", "title", "price"} {
		if !strings.Contains(sql, col) {
			t.Errorf("projection missing %q in %q", col, sql)
		}
	}
	if strings.Contains(sql, "description") {
		t.Errorf("projection must not include unrequested columns: %q", sql)
	}
}

func TestBuilderPaginate(t *testing.T) {
	db := newDryRunDB(t)

	tests := []struct {
		name      string
		page      int
		limit     int
		total     int64
		wantPages int
		wantNext  *int
		wantPrev  *int
	}{
		{"middle page", 2, 10, 35, 4, intPtr(3), intPtr(1)},
		{"first page", 1, 10, 35, 4, intPtr(2), nil},
		{"last page", 4, 10, 35, 4, nil, intPtr(3)},
		{"single page", 1, 20, 7, 1, nil, nil},
		{"empty result", 1, 20, 0, 0, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder(db.Model(&widget{}), Params{Page: tt.page, Limit: tt.limit}, widgetColumns).
				Paginate(tt.total)

			p := b.Pagination
			if p.CurrentPage != tt.page || p.Limit != tt.limit {
				t.Errorf("echoed page/limit wrong: %+v", p)
			}
			if p.NumberOfPages != tt.wantPages {
				t.Errorf("expected %d pages, got %d", tt.wantPages, p.NumberOfPages)
			}
			if !samePage(p.Next, tt.wantNext) {
				t.Errorf("next: expected %v, got %v", fmtPage(tt.wantNext), fmtPage(p.Next))
			}
			if !samePage(p.Prev, tt.wantPrev) {
				t.Errorf("prev: expected %v, got %v", fmtPage(tt.wantPrev), fmtPage(p.Prev))
			}
		})
	}
}

func intPtr(n int) *int { return &n }

func samePage(got, want *int) bool {
	if got == nil || want == nil {
		return got == want
	}
	return *got == *want
}

func fmtPage(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}
