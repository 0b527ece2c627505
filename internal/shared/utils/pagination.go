package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"subcommerce/internal/shared/constants"
)

type Pagination struct {
	Page    int
	PerPage int
}

// Offset returns the row offset for the page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// ValidatePagination normalizes page and per-page values, capping per-page at MaxPageSize.
func ValidatePagination(page, perPage int) Pagination {
	if page < 1 {
		page = constants.DefaultPage
	}
	if perPage < 1 {
		perPage = constants.DefaultPageSize
	}
	if perPage > constants.MaxPageSize {
		perPage = constants.MaxPageSize
	}
	return Pagination{Page: page, PerPage: perPage}
}

// ParsePagination reads page and per_page from the query string.
func ParsePagination(c *gin.Context) Pagination {
	return ValidatePagination(
		parseQueryInt(c, "page", constants.DefaultPage),
		parseQueryInt(c, "per_page", constants.DefaultPageSize),
	)
}

func parseQueryInt(c *gin.Context, key string, defaultVal int) int {
	if val := c.Query(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n >= 1 {
			return n
		}
	}
	return defaultVal
}

// TotalPages returns the page count for total rows, at least 1.
func TotalPages(total int64, perPage int) int {
	if perPage <= 0 {
		return 1
	}
	pages := int((total + int64(perPage) - 1) / int64(perPage))
	if pages == 0 {
		return 1
	}
	return pages
}
