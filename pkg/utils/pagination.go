package utils

import (
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const DefaultPage = 1

// PageParams carries parsed page/per-page query values.
type PageParams struct {
	Page    int
	PerPage int
}

// ParsePagination reads page and per_page from the query string, clamping to
// sane bounds. A fixed perPage (> 0) overrides whatever the client sent,
// which the public listing endpoints use for their fixed page size.
func ParsePagination(c *fiber.Ctx, defaultPerPage, maxPerPage int) PageParams {
	page := atoiDefault(c.Query("page"), DefaultPage)
	if page < 1 {
		page = DefaultPage
	}

	per := defaultPerPage
	if raw := strings.TrimSpace(c.Query("per_page")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			per = n
		}
	}
	if per > maxPerPage {
		per = maxPerPage
	}
	if per < 1 {
		per = defaultPerPage
	}

	return PageParams{Page: page, PerPage: per}
}

// FixedPagination returns params with a page from the query string and a
// fixed page size.
func FixedPagination(c *fiber.Ctx, perPage int) PageParams {
	page := atoiDefault(c.Query("page"), DefaultPage)
	if page < 1 {
		page = DefaultPage
	}
	return PageParams{Page: page, PerPage: perPage}
}

func (p PageParams) Limit() int  { return p.PerPage }
func (p PageParams) Offset() int { return (p.Page - 1) * p.PerPage }

// PageMeta is the pagination block attached to list responses.
type PageMeta struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

func BuildPageMeta(total int64, p PageParams) PageMeta {
	totalPages := 0
	if total > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(p.PerPage)))
	}
	return PageMeta{
		Page:       p.Page,
		PerPage:    p.PerPage,
		Total:      total,
		TotalPages: totalPages,
		HasPrev:    p.Page > 1,
		HasNext:    totalPages > 0 && p.Page < totalPages,
	}
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
