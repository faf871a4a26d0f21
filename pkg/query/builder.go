package query

import (
	"fmt"
	"math"
	"strings"

	"gorm.io/gorm"
)

// Kind selects which columns a keyword search targets.
type Kind string

const (
	// KindProduct searches title OR description; every other kind
	// searches the name column.
	KindProduct Kind = "Product"
)

// Pagination is the metadata attached to every list envelope.
type Pagination struct {
	CurrentPage   int  `json:"currentPage"`
	Limit         int  `json:"limit"`
	NumberOfPages int  `json:"numberOfPages"`
	Next          *int `json:"next,omitempty"`
	Prev          *int `json:"prev,omitempty"`
}

// Builder incrementally narrows a base gorm query. Each step returns the
// same builder so the pipeline chains; order of application matters because
// every step narrows the query further.
//
// Filter keys and sort fields are resolved against an allow-list mapping
// query keys to column names. Unknown keys are dropped rather than
// rejected, preserving the tolerant semantics of the query surface while
// keeping raw user input out of the SQL text.
type Builder struct {
	db      *gorm.DB
	params  Params
	columns map[string]string

	Pagination Pagination
}

// NewBuilder wraps a base query. columns maps accepted query keys to the
// column each one filters or sorts on (e.g. "category" -> "category_id").
func NewBuilder(db *gorm.DB, params Params, columns map[string]string) *Builder {
	return &Builder{db: db, params: params, columns: columns}
}

// DB returns the narrowed query for execution.
func (b *Builder) DB() *gorm.DB {
	return b.db
}

// Filter applies every non-reserved query parameter as a WHERE constraint:
// equality for plain keys, range comparison for field[gte|gt|lte|lt] keys.
func (b *Builder) Filter() *Builder {
	b.db = ApplyFilters(b.db, b.params.Filters, b.columns)
	return b
}

// ApplyFilters adds filter constraints to any gorm query. Shared with the
// repository's count step so pagination totals see the same predicate.
func ApplyFilters(db *gorm.DB, filters []Filter, columns map[string]string) *gorm.DB {
	for _, f := range filters {
		column, ok := columns[f.Key]
		if !ok {
			continue
		}
		op := "="
		if f.Op != "" {
			op = comparisonOps[f.Op]
		}
		db = db.Where(fmt.Sprintf("%s %s ?", column, op), f.Value)
	}
	return db
}

// Search ANDs a case-insensitive substring match when a keyword is present.
func (b *Builder) Search(kind Kind) *Builder {
	b.db = ApplySearch(b.db, b.params.Keyword, kind)
	return b
}

// ApplySearch adds the keyword constraint to any gorm query.
func ApplySearch(db *gorm.DB, keyword string, kind Kind) *gorm.DB {
	if keyword == "" {
		return db
	}
	pattern := "%" + keyword + "%"
	if kind == KindProduct {
		return db.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	return db.Where("name ILIKE ?", pattern)
}

// SelectFields projects the requested columns; without a fields parameter
// the full row is returned.
func (b *Builder) SelectFields() *Builder {
	if len(b.params.Fields) == 0 {
		return b
	}
	cols := make([]string, 0, len(b.params.Fields)+1)
	cols = append(cols, "id")
	for _, f := range b.params.Fields {
		if column, ok := b.columns[f]; ok && column != "id" {
			cols = append(cols, column)
		}
	}
	b.db = b.db.Select(cols)
	return b
}

// Sort applies the requested sort keys ("-price" means descending);
// without a sort parameter results come back newest first.
func (b *Builder) Sort() *Builder {
	var orders []string
	for _, s := range b.params.Sorts {
		desc := strings.HasPrefix(s, "-")
		key := strings.TrimPrefix(s, "-")
		column, ok := b.columns[key]
		if !ok {
			continue
		}
		if desc {
			orders = append(orders, column+" DESC")
		} else {
			orders = append(orders, column+" ASC")
		}
	}
	if len(orders) == 0 {
		orders = append(orders, "created_at DESC")
	}
	b.db = b.db.Order(strings.Join(orders, ", "))
	return b
}

// Paginate computes skip/limit from the parsed page parameters and derives
// the pagination metadata from the total matching-document count.
func (b *Builder) Paginate(total int64) *Builder {
	page := b.params.Page
	limit := b.params.Limit
	skip := (page - 1) * limit

	b.Pagination = Pagination{
		CurrentPage:   page,
		Limit:         limit,
		NumberOfPages: int(math.Ceil(float64(total) / float64(limit))),
	}
	if int64(skip+limit) < total {
		next := page + 1
		b.Pagination.Next = &next
	}
	if skip > 0 {
		prev := page - 1
		b.Pagination.Prev = &prev
	}

	b.db = b.db.Offset(skip).Limit(limit)
	return b
}
