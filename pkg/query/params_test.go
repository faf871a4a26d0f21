package query

import (
	"net/url"
	"testing"
)

func TestParseDefaults(t *testing.T) {
	params := Parse(url.Values{})

	if params.Page != DefaultPage {
		t.Errorf("expected page %d, got %d", DefaultPage, params.Page)
	}
	if params.Limit != DefaultLimit {
		t.Errorf("expected limit %d, got %d", DefaultLimit, params.Limit)
	}
	if len(params.Filters) != 0 {
		t.Errorf("expected no filters, got %v", params.Filters)
	}
}

func TestParsePageAndLimit(t *testing.T) {
	tests := []struct {
		name      string
		page      string
		limit     string
		wantPage  int
		wantLimit int
	}{
		{"explicit values", "3", "50", 3, 50},
		{"limit clamped to max", "1", "500", 1, MaxLimit},
		{"zero falls back", "0", "0", DefaultPage, DefaultLimit},
		{"negative falls back", "-2", "-5", DefaultPage, DefaultLimit},
		{"garbage falls back", "abc", "xyz", DefaultPage, DefaultLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{}
			values.Set(ParamPage, tt.page)
			values.Set(ParamLimit, tt.limit)

			params := Parse(values)
			if params.Page != tt.wantPage {
				t.Errorf("page: expected %d, got %d", tt.wantPage, params.Page)
			}
			if params.Limit != tt.wantLimit {
				t.Errorf("limit: expected %d, got %d", tt.wantLimit, params.Limit)
			}
		})
	}
}

func TestParseFilters(t *testing.T) {
	values := url.Values{}
	values.Set("category", "5")
	values.Set("price[gte]", "100")
	values.Set("price[lte]", "500")
	values.Set("ratingsAverage[gt]", "4")
	values.Set("title[weird]", "x")
	values.Set(ParamSort, "-price")

	params := Parse(values)

	byKey := map[string]Filter{}
	for _, f := range params.Filters {
		byKey[f.Key+"/"+f.Op] = f
	}

	if f, ok := byKey["category/"]; !ok || f.Value != "5" {
		t.Errorf("expected equality filter on category, got %v", params.Filters)
	}
	if f, ok := byKey["price/gte"]; !ok || f.Value != "100" {
		t.Errorf("expected price[gte] filter, got %v", params.Filters)
	}
	if f, ok := byKey["price/lte"]; !ok || f.Value != "500" {
		t.Errorf("expected price[lte] filter, got %v", params.Filters)
	}
	if f, ok := byKey["ratingsAverage/gt"]; !ok || f.Value != "4" {
		t.Errorf("expected ratingsAverage[gt] filter, got %v", params.Filters)
	}

	// unknown bracket suffix is kept as a literal equality key
	if f, ok := byKey["title[weird]/"]; !ok || f.Value != "x" {
		t.Errorf("expected literal key for unknown operator, got %v", params.Filters)
	}

	// reserved parameters never become filters
	for _, f := range params.Filters {
		if f.Key == ParamSort {
			t.Errorf("sort leaked into filters: %v", f)
		}
	}
}

func TestParseLists(t *testing.T) {
	values := url.Values{}
	values.Set(ParamSort, "-price, name ,")
	values.Set(ParamFields, "title,price")
	values.Set(ParamKeyword, "shirt")

	params := Parse(values)

	if len(params.Sorts) != 2 || params.Sorts[0] != "-price" || params.Sorts[1] != "name" {
		t.Errorf("unexpected sorts: %v", params.Sorts)
	}
	if len(params.Fields) != 2 || params.Fields[0] != "title" || params.Fields[1] != "price" {
		t.Errorf("unexpected fields: %v", params.Fields)
	}
	if params.Keyword != "shirt" {
		t.Errorf("unexpected keyword: %q", params.Keyword)
	}
}
