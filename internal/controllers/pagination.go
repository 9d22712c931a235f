package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// paginationParams reads limit/page query parameters with the usual defaults.
func paginationParams(c *gin.Context) (limit, page int) {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit <= 0 {
		limit = 10
	}
	page, err = strconv.Atoi(c.Query("page"))
	if err != nil || page <= 0 {
		page = 1
	}
	return limit, page
}

func totalPages(total int64, limit int) int64 {
	return (total + int64(limit) - 1) / int64(limit)
}

func pagedResponse(data interface{}, total int64, limit, page int) gin.H {
	return gin.H{
		"data":       data,
		"total":      total,
		"limit":      limit,
		"page":       page,
		"totalPages": totalPages(total, limit),
	}
}
