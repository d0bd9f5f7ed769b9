package helpers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/arda/campusconnect/internal/app/models/dto"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	DefaultPage     = 1 // Pages are 1-based
)

// ParsePaginationParams extracts and validates page/limit query parameters.
func ParsePaginationParams(c *gin.Context) (page, limit int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = DefaultPage
	}

	limit, err = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultPageSize)))
	if err != nil || limit <= 0 || limit > MaxPageSize {
		limit = DefaultPageSize
	}

	return page, limit
}

// CalculateSliceIndices converts a 1-based page into slice bounds over the
// filtered set. Out-of-range pages collapse to an empty slice, not an error.
func CalculateSliceIndices(page, limit, totalItems int) (start, end int) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if page < 1 {
		page = DefaultPage
	}

	start = (page - 1) * limit
	end = start + limit

	if start >= totalItems {
		return totalItems, totalItems
	}
	if end > totalItems {
		end = totalItems
	}
	return start, end
}

// NewPaginationInfo builds the pagination block for a list response.
// The total always reflects the filtered (not paginated) set.
func NewPaginationInfo(totalItems, page, limit int) dto.PaginationInfo {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if page < 1 {
		page = DefaultPage
	}

	pages := 0
	if totalItems > 0 {
		pages = int(math.Ceil(float64(totalItems) / float64(limit)))
	}

	return dto.PaginationInfo{
		Total: totalItems,
		Page:  page,
		Limit: limit,
		Pages: pages,
	}
}
