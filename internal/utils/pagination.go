package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/unseenapp/unseen-users/internal/constants"
)

// PaginationParams holds the pagination parameters
type PaginationParams struct {
	Page   int
	Limit  int
	Offset int
}

// GetPaginationParams extracts and validates pagination parameters from
// the request. Pages are zero-based; a requested size outside
// [MinPageSize, MaxPageSize] silently becomes DefaultPageSize.
func GetPaginationParams(c *gin.Context) PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	elements, _ := strconv.Atoi(c.DefaultQuery("elements", strconv.Itoa(constants.DefaultPageSize)))

	if page < 0 {
		page = 0
	}
	if elements < constants.MinPageSize || elements > constants.MaxPageSize {
		elements = constants.DefaultPageSize
	}

	return PaginationParams{
		Page:   page,
		Limit:  elements,
		Offset: page * elements,
	}
}
