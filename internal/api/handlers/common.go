package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// parsePagination reads page/page_size query parameters and converts them to
// limit/offset. Out-of-range values fall back to defaults.
func parsePagination(c *gin.Context) (page, pageSize, limit, offset int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize, pageSize, (page - 1) * pageSize
}

// parseDateQuery reads a required YYYY-MM-DD query parameter.
func parseDateQuery(c *gin.Context, name string) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, false
	}
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}

// listResponse is the standard shape for paginated collections.
func listResponse(key string, items interface{}, total int64, page, pageSize int) gin.H {
	return gin.H{
		key:         items,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	}
}
