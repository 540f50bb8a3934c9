package ginutil

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// ParamInt64 extracts an int64 from path parameters
func ParamInt64(c *gin.Context, key string) (int64, error) {
	return strconv.ParseInt(c.Param(key), 10, 64)
}

// QueryTrimmed returns the query parameter with surrounding whitespace removed
func QueryTrimmed(c *gin.Context, key string) string {
	return strings.TrimSpace(c.Query(key))
}
