// internal/utils/pagination.go
package utils

import (
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"
	zlog "github.com/rs/zerolog/log"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// PaginationQuery holds sanitized pagination parameters, ready for LIMIT and
// OFFSET clauses.
type PaginationQuery struct {
	Page   int
	Limit  int
	Offset int
}

// ParsePaginationParams reads and validates the 'page' and 'limit' query
// parameters, falling back to defaults and capping the limit at MaxLimit.
func ParsePaginationParams(c *fiber.Ctx) PaginationQuery {
	pageStr := c.Query("page", strconv.Itoa(DefaultPage))
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		if pageStr != strconv.Itoa(DefaultPage) {
			zlog.Warn().Str("query_param", "page").Str("value", pageStr).Int("default", DefaultPage).Msg("Invalid or missing 'page' query parameter, using default")
		}
		page = DefaultPage
	}

	limitStr := c.Query("limit", strconv.Itoa(DefaultLimit))
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		if limitStr != strconv.Itoa(DefaultLimit) {
			zlog.Warn().Str("query_param", "limit").Str("value", limitStr).Int("default", DefaultLimit).Msg("Invalid or missing 'limit' query parameter, using default")
		}
		limit = DefaultLimit
	}

	if limit > MaxLimit {
		zlog.Warn().Int("requested_limit", limit).Int("max_limit", MaxLimit).Msg("Requested 'limit' exceeds maximum allowed, capping to max limit")
		limit = MaxLimit
	}

	return PaginationQuery{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// PaginationMeta is the page navigation metadata sent alongside paginated
// data.
type PaginationMeta struct {
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	TotalItems  int `json:"total_items"`
	TotalPages  int `json:"total_pages"`
}

// BuildPaginationMeta computes the metadata for a paginated response.
func BuildPaginationMeta(totalItems, limit, page int) PaginationMeta {
	totalPages := 0
	if totalItems > 0 && limit > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(limit)))
	} else if totalItems > 0 {
		totalPages = 1
	}

	// Keep the reported current page consistent even when the request asked
	// for a page past the end.
	currentPage := page
	if currentPage > totalPages && totalPages > 0 {
		currentPage = totalPages
	} else if totalPages == 0 && currentPage > 1 {
		currentPage = 1
	}

	return PaginationMeta{
		CurrentPage: currentPage,
		PerPage:     limit,
		TotalItems:  totalItems,
		TotalPages:  totalPages,
	}
}

// PaginatedResponse wraps one page of data with its metadata in the standard
// response envelope.
type PaginatedResponse[T any] struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    []T            `json:"data"`
	Meta    PaginationMeta `json:"meta"`
}

// NewPaginatedResponse builds a PaginatedResponse, normalizing nil data to an
// empty slice so the JSON is always `[]`, never `null`.
func NewPaginatedResponse[T any](message string, data []T, meta PaginationMeta) PaginatedResponse[T] {
	if data == nil {
		data = make([]T, 0)
	}
	return PaginatedResponse[T]{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    meta,
	}
}

// PaginatedResponseGeneric exists only for the Swagger docs, which cannot
// express Go generics. Use PaginatedResponse[T] in actual code.
type PaginatedResponseGeneric struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    []interface{}  `json:"data"`
	Meta    PaginationMeta `json:"meta"`
}
