package model

import (
	"time"
)

// Model holds the columns every table carries.
type Model struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Page is a zero-based page request.
type Page struct {
	Size   int
	Number int
}

const (
	DefaultPageSize   = 20
	DefaultPageNumber = 0
	MaxPageSize       = 1000
)

func DefaultPage() Page {
	return Page{Size: DefaultPageSize, Number: DefaultPageNumber}
}

func (p Page) Limit() int {
	return p.Size
}

func (p Page) Offset() int {
	return p.Size * p.Number
}
