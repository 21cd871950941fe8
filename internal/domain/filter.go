package domain

import "github.com/shopspring/decimal"

// CaseFilter holds the conjunctive predicates and ordering of a case view.
type CaseFilter struct {
	Status         *Status
	Stage          *Stage
	MinAmount      *decimal.Decimal
	MaxAmount      *decimal.Decimal
	MinDaysOverdue *int
	SortBy         string
	Ascending      bool
}

// CaseSearch is the ad-hoc search used by the /debt endpoints.
type CaseSearch struct {
	CustomerName  string
	InvoiceNumber string
	Status        *Status
	MinAmount     *decimal.Decimal
	MaxAmount     *decimal.Decimal
}

// PageRequest describes zero-based offset pagination.
type PageRequest struct {
	Page int
	Size int
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 200
)

// Normalize clamps page and size to sane bounds.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	return p
}

// Offset returns the row offset for the page.
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// Page is one slice of a paginated result.
type Page[T any] struct {
	Items         []T
	Page          int
	Size          int
	TotalElements int
	TotalPages    int
}

// NewPage builds a Page from items and the total count.
func NewPage[T any](items []T, req PageRequest, total int) Page[T] {
	pages := 0
	if req.Size > 0 {
		pages = (total + req.Size - 1) / req.Size
	}
	return Page[T]{
		Items:         items,
		Page:          req.Page,
		Size:          req.Size,
		TotalElements: total,
		TotalPages:    pages,
	}
}
