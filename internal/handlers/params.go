package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// uintParam parses a numeric path parameter; ok=false means the URL is
// malformed and the handler should answer 400.
func uintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		return 0, false
	}
	return uint(v), true
}
