// file: internals/helpers/pagination.go
package helper

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 100
)

type Paging struct {
	Page      int
	PerPage   int
	SortBy    string
	SortOrder string // ASC|DESC
}

// ResolvePaging membaca ?page= & ?limit= (+ ?sort_by= & ?order=) dan normalisasi.
func ResolvePaging(c *fiber.Ctx, defaultSortBy, defaultSortOrder string) Paging {
	page := atoiDefault(strings.TrimSpace(c.Query("page")), DefaultPage)
	if page < 1 {
		page = DefaultPage
	}

	perPage := atoiDefault(strings.TrimSpace(c.Query("limit")), DefaultPerPage)
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}

	sortBy := strings.TrimSpace(c.Query("sort_by"))
	if sortBy == "" {
		sortBy = defaultSortBy
	}

	order := strings.ToUpper(strings.TrimSpace(c.Query("order")))
	if order != "ASC" && order != "DESC" {
		order = strings.ToUpper(defaultSortOrder)
		if order != "ASC" && order != "DESC" {
			order = "DESC"
		}
	}

	return Paging{Page: page, PerPage: perPage, SortBy: sortBy, SortOrder: order}
}

func (p Paging) Limit() int  { return p.PerPage }
func (p Paging) Offset() int { return (p.Page - 1) * p.PerPage }

// SafeOrderClause: kolom sort dari whitelist, jangan pernah dari input mentah.
func (p Paging) SafeOrderClause(allowed map[string]string, defaultKey string) (string, error) {
	key := p.SortBy
	if key == "" {
		key = defaultKey
	}
	col, ok := allowed[key]
	if !ok {
		return "", fmt.Errorf("sort_by %q tidak dikenal", p.SortBy)
	}
	dir := "DESC"
	if p.SortOrder == "ASC" {
		dir = "ASC"
	}
	return col + " " + dir, nil
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

/* ===============================
   Meta pagination untuk response
=================================*/

type Pagination struct {
	Total       int64 `json:"total"`
	PerPage     int   `json:"per_page"`
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
	From        *int  `json:"from,omitempty"`
	To          *int  `json:"to,omitempty"`
}

// BuildPagination: total dan rows dihitung dari predikat yang sama oleh caller.
func BuildPagination(total int64, p Paging) Pagination {
	totalPages := int((total + int64(p.PerPage) - 1) / int64(p.PerPage))
	return Pagination{
		Total:       total,
		PerPage:     p.PerPage,
		CurrentPage: p.Page,
		TotalPages:  totalPages,
	}
}

// WithRange menambah rentang baris 1-based inklusif halaman ini (0/0 jika kosong).
func (m Pagination) WithRange(p Paging, rowCount int) Pagination {
	from, to := 0, 0
	if rowCount > 0 {
		from = p.Offset() + 1
		to = p.Offset() + rowCount
	}
	m.From = &from
	m.To = &to
	return m
}
