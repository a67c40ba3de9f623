package httpresp

import "github.com/gin-gonic/gin"

// ListResponse keeps the response envelope the front end already consumes.
type ListResponse[T any] struct {
	Success bool `json:"success"`
	Data    []T  `json:"data"`
	Count   int  `json:"count"`
}

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

func List[T any](c *gin.Context, data []T) {
	c.JSON(200, ListResponse[T]{
		Success: true,
		Data:    data,
		Count:   len(data),
	})
}
