package utils

import "github.com/gin-gonic/gin"

func CurrentAdminID(c *gin.Context) uint {
	v, _ := c.Get("adminId")
	switch id := v.(type) {
	case uint:
		return id
	case int:
		return uint(id)
	case int64:
		return uint(id)
	case float64:
		return uint(id)
	default:
		return 0
	}
}

func CurrentTableID(c *gin.Context) uint {
	v, _ := c.Get("tableId")
	if id, ok := v.(uint); ok {
		return id
	}
	return 0
}

func CurrentCustomerName(c *gin.Context) string {
	if v, ok := c.Get("customerName"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
